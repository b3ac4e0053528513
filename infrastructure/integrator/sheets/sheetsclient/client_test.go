package sheetsclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creative-dashboard-api/internal/config"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
)

const gvizEnvelopePrefix = "/*O_o*/\ngoogle.visualization.Query.setResponse("

func newTestClient(baseURL string) Client {
	return NewClient(&config.Config{
		Sheets: config.Sheets{
			BaseURL:       baseURL,
			SpreadsheetID: "sheet-test",
			Range:         "SPY FB!A:D",
		},
	})
}

func TestSheetsClient_FetchGrid(t *testing.T) {
	t.Run("Resposta gviz válida vira grade de células", func(t *testing.T) {
		payload := `{"table":{"rows":[` +
			`{"c":[{"v":"Nome"},{"v":"Nicho"},{"v":"Descrição"},{"v":"Dias"}]},` +
			`{"c":[{"v":"Criativo A"},{"v":"Diabetes"},null,{"v":12}]}` +
			`]}}`

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Path, "/d/sheet-test/gviz/tq")
			assert.Equal(t, "out:json", r.URL.Query().Get("tqx"))

			w.Write([]byte(gvizEnvelopePrefix + payload + ");"))
		}))
		defer server.Close()

		grid, err := newTestClient(server.URL).FetchGrid()

		assert.NoError(t, err)
		assert.Len(t, grid, 2)
		assert.Equal(t, []string{"Nome", "Nicho", "Descrição", "Dias"}, grid[0])
		// Célula nula vira string vazia e número inteiro perde o ".0"
		assert.Equal(t, []string{"Criativo A", "Diabetes", "", "12"}, grid[1])
	})

	t.Run("Resposta curta demais é falha de parse", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FetchGrid()

		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})

	t.Run("Envelope sem JSON válido é falha de parse", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(gvizEnvelopePrefix + "isto não é json" + ");"))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FetchGrid()

		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})

	t.Run("Status não-200 é fonte inacessível", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FetchGrid()

		assert.ErrorIs(t, err, domain.ErrSourceUnreachable)
	})

	t.Run("Servidor fora do ar é fonte inacessível", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newTestClient(server.URL).FetchGrid()

		assert.ErrorIs(t, err, domain.ErrSourceUnreachable)
	})
}

func TestStripEnvelope(t *testing.T) {
	body := []byte(gvizEnvelopePrefix + `{"table":{}}` + ");")

	payload, err := stripEnvelope(body)

	assert.NoError(t, err)
	assert.JSONEq(t, `{"table":{}}`, string(payload))
}
