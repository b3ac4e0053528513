package domain

import (
	"strings"
	"time"
)

// Metrics guarda as métricas de performance do criativo no formato de exibição
// do dashboard ("3.2%", "R$ 4.50"). Quem precisar de aritmética deve converter
// com utils.ParsePercent/utils.ParseCurrency.
type Metrics struct {
	CTR        string `json:"ctr"`
	Conversion string `json:"conversao"`
	CPM        string `json:"cpm"`
}

// Creative representa um criativo publicitário catalogado no dashboard.
type Creative struct {
	ID          int        `json:"id"`
	Name        string     `json:"nome"`
	Niche       string     `json:"nicho"`
	Mechanism   string     `json:"mecanismo"`
	ActiveTime  string     `json:"diasAtivos"`
	Color       string     `json:"cor"`
	Thumbnail   string     `json:"thumbnail"`
	VideoURL    *string    `json:"videoUrl,omitempty"`
	Saved       bool       `json:"salvo"`
	Description string     `json:"descricaoCompleta,omitempty"`
	Metrics     *Metrics   `json:"metricas,omitempty"`
	Analysis    *Analysis  `json:"analiseIA,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// UpdateCreativeRequest representa uma atualização parcial de criativo.
// Campos nulos não são alterados.
type UpdateCreativeRequest struct {
	Name       *string  `json:"nome,omitempty"`
	Niche      *string  `json:"nicho,omitempty"`
	Mechanism  *string  `json:"mecanismo,omitempty"`
	ActiveTime *string  `json:"diasAtivos,omitempty"`
	Color      *string  `json:"cor,omitempty"`
	Thumbnail  *string  `json:"thumbnail,omitempty"`
	VideoURL   *string  `json:"videoUrl,omitempty"`
	Saved      *bool    `json:"salvo,omitempty"`
	Metrics    *Metrics `json:"metricas,omitempty"`
}

// Potenciais de performance persistidos como texto de exibição.
const (
	PotentialHigh   = "Alto"
	PotentialMedium = "Médio"
	PotentialLow    = "Baixo"
)

// Analysis é o resultado da avaliação de um criativo, vinda do modelo remoto
// ou da simulação determinística.
type Analysis struct {
	Score       float64   `json:"nota"`
	Narrative   string    `json:"analise"`
	Potential   string    `json:"potencial"`
	Suggestions string    `json:"sugestoes"`
	GeneratedAt time.Time `json:"timestamp"`
	ByRealModel bool      `json:"analisadoPorIA"`
}

// SamePotential compara tiers de potencial ignorando caixa, já que o valor é
// persistido como texto livre localizado.
func SamePotential(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
