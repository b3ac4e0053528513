package sheets

import (
	"strings"

	"github.com/vfg2006/creative-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/creative-dashboard-api/internal/config"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
	"github.com/vfg2006/creative-dashboard-api/pkg/log"
)

// Valores aplicados quando a célula correspondente está vazia na planilha.
const (
	fallbackName       = "Sem nome"
	fallbackNiche      = domain.NicheOther
	fallbackMechanism  = "Sem descrição"
	fallbackActiveTime = "0 horas"

	sheetThumbnail = "/api/placeholder/300/200"
)

type Integrator interface {
	FetchCreatives() ([]*domain.Creative, error)
}

type sheetsIntegrator struct {
	config *config.Config
	client sheetsclient.Client
	logger log.Logger
}

func New(cfg *config.Config, client sheetsclient.Client, logger log.Logger) Integrator {
	return &sheetsIntegrator{
		config: cfg,
		client: client,
		logger: logger,
	}
}

// FetchCreatives consulta a planilha e mapeia cada linha de dados para um
// criativo. A primeira linha é cabeçalho e linhas totalmente vazias são
// ignoradas. Falha de rede ou de parse sobe para o chamador decidir o
// próximo nível de fallback.
func (s *sheetsIntegrator) FetchCreatives() ([]*domain.Creative, error) {
	grid, err := s.client.FetchGrid()
	if err != nil {
		s.logger.WithError(err).Warn("Falha ao consultar a planilha de criativos")
		return nil, err
	}

	creatives := make([]*domain.Creative, 0, len(grid))
	for i, row := range grid {
		// Linha 0 é o cabeçalho do intervalo
		if i == 0 {
			continue
		}
		if emptyRow(row) {
			continue
		}

		niche := cellOrDefault(row, 1, fallbackNiche)

		// Colunas posicionais do intervalo: nome, nicho, mecanismo, tempo ativo
		creatives = append(creatives, &domain.Creative{
			ID:         len(creatives) + 1,
			Name:       cellOrDefault(row, 0, fallbackName),
			Niche:      niche,
			Mechanism:  cellOrDefault(row, 2, fallbackMechanism),
			ActiveTime: cellOrDefault(row, 3, fallbackActiveTime),
			Color:      domain.NicheColor(niche),
			Thumbnail:  sheetThumbnail,
		})
	}

	if len(creatives) == 0 {
		return nil, domain.WrapSource(domain.ErrSourceEmpty, nil)
	}

	s.logger.WithField("total", len(creatives)).Info("Criativos carregados da planilha")

	return creatives, nil
}

func cellOrDefault(row []string, idx int, fallback string) string {
	if idx >= len(row) {
		return fallback
	}

	value := strings.TrimSpace(row[idx])
	if value == "" {
		return fallback
	}

	return value
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
