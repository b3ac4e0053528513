package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
	"github.com/vfg2006/creative-dashboard-api/internal/scheduler"
	"github.com/vfg2006/creative-dashboard-api/pkg/apiErrors"
)

type SyncResponse struct {
	Inserted int `json:"inseridos"`
}

// RunCatalogSync dispara manualmente a importação planilha -> banco, fora do
// cronograma do agendador.
func RunCatalogSync(syncService *scheduler.CatalogSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCatalogSync")

		inserted, err := syncService.RunNow()
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrSourceUnreachable), errors.Is(err, domain.ErrParseFailure):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar a planilha de criativos", nil)
			case errors.Is(err, domain.ErrPersistenceFailure):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar criativos no banco de dados", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar o catálogo", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(SyncResponse{Inserted: inserted}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
