package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
	"github.com/vfg2006/creative-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/creative-dashboard-api/pkg/apiErrors"
)

func ListNiches(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Niches()); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ReplaceNiches substitui a lista inteira de nichos de uma vez, do jeito que
// o gerenciador de nichos do dashboard envia.
func ReplaceNiches(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var niches []*domain.Niche
		if err := json.NewDecoder(r.Body).Decode(&niches); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result := service.SetNiches(niches)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateNiche(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var niche domain.Niche
		if err := json.NewDecoder(r.Body).Decode(&niche); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if niche.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do nicho é obrigatório", nil)
			return
		}

		created, err := service.CreateNiche(&niche)
		if err != nil {
			writeNicheError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateNiche(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var niche domain.Niche
		if err := json.NewDecoder(r.Body).Decode(&niche); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.UpdateNiche(&niche); err != nil {
			writeNicheError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(&niche); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteNiche(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		if err := service.DeleteNiche(name); err != nil {
			writeNicheError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeNicheError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cataloging.ErrReservedNiche):
		apiErrors.WriteError(w, apiErrors.ErrReservedNiche, "Nicho reservado não pode ser alterado", nil)
	case errors.Is(err, cataloging.ErrNicheNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNicheNotFound, "Nicho não encontrado", nil)
	case errors.Is(err, domain.ErrPersistenceFailure):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao persistir nicho", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar nicho", nil)
	}
}
