package openaiclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/creative-dashboard-api/internal/config"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const systemPrompt = "Você é um especialista em análise de criativos publicitários com 10 anos de experiência em marketing digital e tráfego pago."

type Client interface {
	Complete(prompt string) (string, error)
	Enabled() bool
}

type OpenAIClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		config: cfg,
	}
}

// Enabled indica se há chave de API configurada. Sem chave, o serviço de
// análise trabalha só com a simulação determinística.
func (c *OpenAIClient) Enabled() bool {
	return c.config.OpenAI.APIKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete envia o prompt ao modelo de chat e devolve o texto da primeira
// escolha.
func (c *OpenAIClient) Complete(prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.config.OpenAI.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   c.config.OpenAI.MaxTokens,
		Temperature: c.config.OpenAI.Temperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.config.OpenAI.URL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.OpenAI.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.WrapSource(domain.ErrSourceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.WrapSource(
			domain.ErrSourceUnreachable,
			fmt.Errorf("modelo respondeu status %s", resp.Status),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.WrapSource(domain.ErrSourceUnreachable, err)
	}

	parsed := chatResponse{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", domain.WrapSource(domain.ErrParseFailure, err)
	}

	if len(parsed.Choices) == 0 {
		return "", domain.WrapSource(domain.ErrSourceEmpty, nil)
	}

	return parsed.Choices[0].Message.Content, nil
}
