package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
	"github.com/vfg2006/creative-dashboard-api/internal/usecases/cataloging/mocks"
	"go.uber.org/mock/gomock"
)

func TestCatalogSyncService_syncCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCatalogService(ctrl)

	service := &CatalogSyncService{
		catalogService: mockCatalog,
	}

	t.Run("Tick bem sucedido registra a conclusão", func(t *testing.T) {
		mockCatalog.EXPECT().SyncFromSheet().Return(3, nil)

		service.syncCatalog()

		assert.False(t, service.syncRunning)
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Falha da planilha não derruba o agendador", func(t *testing.T) {
		mockCatalog.EXPECT().
			SyncFromSheet().
			Return(0, domain.WrapSource(domain.ErrSourceUnreachable, assert.AnError))

		service.syncCatalog()

		assert.False(t, service.syncRunning)
	})

	t.Run("Tick sobreposto é ignorado", func(t *testing.T) {
		service.syncMutex.Lock()
		service.syncRunning = true
		service.syncMutex.Unlock()

		// Nenhuma expectativa no mock: SyncFromSheet não pode ser chamado
		service.syncCatalog()

		service.syncMutex.Lock()
		service.syncRunning = false
		service.syncMutex.Unlock()
	})
}

func TestCatalogSyncService_RunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCatalogService(ctrl)

	service := &CatalogSyncService{catalogService: mockCatalog}

	mockCatalog.EXPECT().SyncFromSheet().Return(5, nil)

	inserted, err := service.RunNow()

	assert.NoError(t, err)
	assert.Equal(t, 5, inserted)
}
