package utils

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Requisições de fonte externa ganham timeout fixo para que uma fonte
// travada derrube para o próximo nível de fallback em vez de pendurar o
// carregamento do catálogo.
var sourceClient = &http.Client{
	Timeout: 10 * time.Second,
}

func MakeRequest(url string) ([]byte, error) {
	resp, err := sourceClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return data, nil
}
