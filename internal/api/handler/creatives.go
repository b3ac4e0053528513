package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/creative-dashboard-api/pkg/apiErrors"
)

type ToggleSavedRequest struct {
	Saved bool `json:"salvo"`
}

type ToggleSavedResponse struct {
	ID    int  `json:"id"`
	Saved bool `json:"salvo"`
}

// ListCreatives lista o catálogo corrente com filtros e ordenação via query
// string: search, niche, sort (recentes|antigos|nome|performance) e saved.
func ListCreatives(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		opts := cataloging.ListOptions{
			Search:    query.Get("search"),
			Niche:     query.Get("niche"),
			Sort:      query.Get("sort"),
			SavedOnly: query.Get("saved") == "true",
		}

		if opts.Niche != "" {
			service.SelectNiche(opts.Niche)
		}

		creatives := service.List(opts)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(creatives); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetCreative(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := creativeID(w, r)
		if !ok {
			return
		}

		creative, err := service.GetCreative(id)
		if err != nil {
			if errors.Is(err, cataloging.ErrCreativeNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCreativeNotFound, "Criativo não encontrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar criativo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(creative); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ToggleSaved alterna o flag de salvo de um criativo. A resposta devolve o
// valor vigente após a tentativa de persistência: se a escrita falhou, o
// valor volta ao anterior e é isso que o cliente recebe.
func ToggleSaved(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := creativeID(w, r)
		if !ok {
			return
		}

		var req ToggleSavedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		final, err := service.SetSaved(id, req.Saved)
		if err != nil {
			if errors.Is(err, cataloging.ErrCreativeNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCreativeNotFound, "Criativo não encontrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao atualizar criativo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ToggleSavedResponse{ID: id, Saved: final}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// RefreshCatalog recarrega o catálogo das fontes remotas.
func RefreshCatalog(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := service.Refresh()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// LoadCatalog devolve o catálogo completo com o estado de conectividade.
func LoadCatalog(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := service.LoadCatalog()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetStats(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Stats()); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func creativeID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := strconv.Atoi(idStr)
	if err != nil {
		logrus.WithField("id", idStr).Warn("ID de criativo inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de criativo inválido", nil)
		return 0, false
	}

	return id, true
}
