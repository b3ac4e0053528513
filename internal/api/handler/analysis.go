package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/creative-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/creative-dashboard-api/pkg/apiErrors"
)

// AnalyzeCreative avalia um criativo do catálogo. A análise nunca falha para
// o cliente: sem modelo remoto disponível, a simulação determinística
// responde.
func AnalyzeCreative(catalog cataloging.CatalogService, analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := creativeID(w, r)
		if !ok {
			return
		}

		creative, err := catalog.GetCreative(id)
		if err != nil {
			if errors.Is(err, cataloging.ErrCreativeNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCreativeNotFound, "Criativo não encontrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar criativo", nil)
			return
		}

		analysis := analyzer.Analyze(creative)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analysis); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// AnalyzeAllCreatives avalia todos os criativos visíveis no catálogo.
func AnalyzeAllCreatives(catalog cataloging.CatalogService, analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creatives := catalog.List(cataloging.ListOptions{})

		results := analyzer.AnalyzeMany(creatives)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(results); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
