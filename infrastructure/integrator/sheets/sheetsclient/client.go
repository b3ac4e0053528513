package sheetsclient

import (
	"fmt"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/creative-dashboard-api/internal/config"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
	"github.com/vfg2006/creative-dashboard-api/pkg/utils"
)

// O endpoint gviz devolve JSON embrulhado numa chamada de callback
// ("google.visualization.Query.setResponse(...)"). O prefixo tem tamanho
// fixo e o sufixo é ");".
const (
	gvizPrefixLen = 47
	gvizSuffixLen = 2
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	FetchGrid() ([][]string, error)
}

type SheetsClient struct {
	config *config.Config
}

// NewClient cria o cliente da planilha pública consultada via gviz.
func NewClient(cfg *config.Config) Client {
	return &SheetsClient{
		config: cfg,
	}
}

type gvizCell struct {
	V interface{} `json:"v"`
}

type gvizRow struct {
	C []*gvizCell `json:"c"`
}

type gvizResponse struct {
	Table struct {
		Rows []gvizRow `json:"rows"`
	} `json:"table"`
}

// FetchGrid busca o intervalo configurado e devolve a grade de células como
// texto, incluindo a linha de cabeçalho. Células vazias viram "".
func (c *SheetsClient) FetchGrid() ([][]string, error) {
	endpoint := fmt.Sprintf(
		"%s/d/%s/gviz/tq?tqx=out:json&range=%s",
		c.config.Sheets.BaseURL,
		c.config.Sheets.SpreadsheetID,
		url.QueryEscape(c.config.Sheets.Range),
	)

	body, err := utils.MakeRequest(endpoint)
	if err != nil {
		return nil, domain.WrapSource(domain.ErrSourceUnreachable, err)
	}

	payload, err := stripEnvelope(body)
	if err != nil {
		return nil, domain.WrapSource(domain.ErrParseFailure, err)
	}

	parsed := gvizResponse{}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, domain.WrapSource(domain.ErrParseFailure, err)
	}

	grid := make([][]string, 0, len(parsed.Table.Rows))
	for _, row := range parsed.Table.Rows {
		cells := make([]string, 0, len(row.C))
		for _, cell := range row.C {
			cells = append(cells, cellText(cell))
		}
		grid = append(grid, cells)
	}

	return grid, nil
}

// stripEnvelope remove o embrulho JSONP de tamanho fixo do gviz.
func stripEnvelope(body []byte) ([]byte, error) {
	if len(body) <= gvizPrefixLen+gvizSuffixLen {
		return nil, fmt.Errorf("resposta gviz curta demais (%d bytes)", len(body))
	}
	return body[gvizPrefixLen : len(body)-gvizSuffixLen], nil
}

func cellText(cell *gvizCell) string {
	if cell == nil || cell.V == nil {
		return ""
	}

	switch v := cell.V.(type) {
	case string:
		return v
	case float64:
		// Números inteiros da planilha chegam como float64 do JSON
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
