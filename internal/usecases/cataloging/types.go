package cataloging

import (
	"time"

	"github.com/vfg2006/creative-dashboard-api/internal/domain"
)

// Ordenações aceitas na listagem de criativos.
const (
	SortRecent      = "recentes"
	SortOldest      = "antigos"
	SortName        = "nome"
	SortPerformance = "performance"
)

// ListOptions filtra e ordena a listagem de criativos.
type ListOptions struct {
	Search    string
	Niche     string
	Sort      string
	SavedOnly bool
}

// CatalogResult é o retorno do carregamento do catálogo. SourceConnected
// indica se alguma fonte remota respondeu; quando falso, os dados exibidos
// vêm do catálogo estático embutido.
type CatalogResult struct {
	Creatives       []*domain.Creative `json:"criativos"`
	SourceConnected bool               `json:"conectado"`
	LastUpdate      *time.Time         `json:"ultimaAtualizacao,omitempty"`
}

// Stats resume o catálogo para o rodapé e o painel de estatísticas.
type Stats struct {
	TotalCreatives  int        `json:"totalCriativos"`
	SavedCreatives  int        `json:"criativosSalvos"`
	TotalNiches     int        `json:"totalNichos"`
	TopNiche        string     `json:"nichoDestaque,omitempty"`
	NewestCreative  string     `json:"maisRecente,omitempty"`
	BestCTRCreative string     `json:"melhorCTR,omitempty"`
	AvgCTR          float64    `json:"ctrMedio"`
	AvgCPM          float64    `json:"cpmMedio"`
	SourceConnected bool       `json:"conectado"`
	LastUpdate      *time.Time `json:"ultimaAtualizacao,omitempty"`
}
