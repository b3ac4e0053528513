package cataloging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	sheetsmocks "github.com/vfg2006/creative-dashboard-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
	"github.com/vfg2006/creative-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func newTestService(
	creativeRepo *mocks.MockCreativeRepository,
	nicheRepo *mocks.MockNicheRepository,
	sheetsService *sheetsmocks.MockIntegrator,
) *catalogService {
	log.SetupTestLogger()

	return &catalogService{
		creativeRepo:  creativeRepo,
		nicheRepo:     nicheRepo,
		sheets:        sheetsService,
		logger:        log.L,
		creatives:     domain.DefaultCreatives(),
		niches:        domain.DefaultNiches(),
		selectedNiche: domain.NicheAll,
	}
}

func TestCatalogService_LoadCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)
	mockNicheRepo := mocks.NewMockNicheRepository(ctrl)
	mockSheets := sheetsmocks.NewMockIntegrator(ctrl)

	service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)

	dbCreatives := []*domain.Creative{
		{ID: 1, Name: "Criativo A", Niche: "Diabetes", ActiveTime: "3 dias"},
		{ID: 2, Name: "Criativo B", Niche: "Emagrecimento", ActiveTime: "8 dias"},
	}

	sheetCreatives := []*domain.Creative{
		{ID: 1, Name: "Linha 1", Niche: "Outros", ActiveTime: "2 dias"},
		{ID: 2, Name: "Linha 2", Niche: "Outros", ActiveTime: "5 dias"},
		{ID: 3, Name: "Linha 3", Niche: "Outros", ActiveTime: "9 dias"},
	}

	tests := []struct {
		name      string
		setup     func()
		total     int
		connected bool
	}{
		{
			name: "Banco acessível com registros - usa o banco",
			setup: func() {
				mockCreativeRepo.EXPECT().Probe().Return(nil)
				mockCreativeRepo.EXPECT().FetchAll().Return(dbCreatives, nil)
				mockNicheRepo.EXPECT().List().Return(nil, nil)
			},
			total:     2,
			connected: true,
		},
		{
			name: "Banco vazio - cai para a planilha",
			setup: func() {
				mockCreativeRepo.EXPECT().Probe().Return(nil)
				mockCreativeRepo.EXPECT().FetchAll().Return([]*domain.Creative{}, nil)
				mockSheets.EXPECT().FetchCreatives().Return(sheetCreatives, nil)
				mockNicheRepo.EXPECT().List().Return(nil, nil)
			},
			total:     3,
			connected: true,
		},
		{
			name: "Banco fora e planilha com 3 linhas - usa a planilha",
			setup: func() {
				mockCreativeRepo.EXPECT().Probe().Return(assert.AnError)
				mockSheets.EXPECT().FetchCreatives().Return(sheetCreatives, nil)
				mockNicheRepo.EXPECT().List().Return(nil, nil)
			},
			total:     3,
			connected: true,
		},
		{
			name: "Banco fora e planilha falhando - usa o catálogo estático",
			setup: func() {
				mockCreativeRepo.EXPECT().Probe().Return(assert.AnError)
				mockSheets.EXPECT().FetchCreatives().Return(nil, domain.ErrSourceUnreachable)
			},
			total:     15,
			connected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result := service.LoadCatalog()

			assert.Len(t, result.Creatives, tt.total)
			assert.Equal(t, tt.connected, result.SourceConnected)
			assert.NotEmpty(t, result.Creatives, "o catálogo nunca pode ficar vazio")
			assert.NotNil(t, result.LastUpdate)
		})
	}
}

func TestCatalogService_Refresh_KeepsCatalogWhenSourcesFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)
	mockNicheRepo := mocks.NewMockNicheRepository(ctrl)
	mockSheets := sheetsmocks.NewMockIntegrator(ctrl)

	service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)
	service.creatives = []*domain.Creative{
		{ID: 42, Name: "Criativo Atual", Niche: "Diabetes"},
	}
	service.connected = true

	mockCreativeRepo.EXPECT().Probe().Return(assert.AnError)
	mockSheets.EXPECT().FetchCreatives().Return(nil, domain.ErrSourceUnreachable)

	result := service.Refresh()

	// A falha total das fontes remotas não pode descartar o catálogo corrente
	assert.Len(t, result.Creatives, 1)
	assert.Equal(t, "Criativo Atual", result.Creatives[0].Name)
	assert.False(t, result.SourceConnected)
}

func TestCatalogService_SetSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)
	mockNicheRepo := mocks.NewMockNicheRepository(ctrl)
	mockSheets := sheetsmocks.NewMockIntegrator(ctrl)

	t.Run("Persistência ok - mantém o valor novo", func(t *testing.T) {
		service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)
		service.creatives = []*domain.Creative{{ID: 1, Name: "Criativo A", Saved: false}}

		mockCreativeRepo.EXPECT().
			UpdateFields(1, gomock.Any()).
			DoAndReturn(func(id int, updates *domain.UpdateCreativeRequest) error {
				assert.NotNil(t, updates.Saved)
				assert.True(t, *updates.Saved)
				return nil
			})

		final, err := service.SetSaved(1, true)

		assert.NoError(t, err)
		assert.True(t, final)

		creative, _ := service.GetCreative(1)
		assert.True(t, creative.Saved)
	})

	t.Run("Persistência falha - reverte para o valor anterior", func(t *testing.T) {
		service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)
		service.creatives = []*domain.Creative{{ID: 1, Name: "Criativo A", Saved: false}}

		mockCreativeRepo.EXPECT().
			UpdateFields(1, gomock.Any()).
			Return(domain.WrapSource(domain.ErrPersistenceFailure, assert.AnError))

		final, err := service.SetSaved(1, true)

		// A falha é engolida: só o valor revertido sinaliza o problema
		assert.NoError(t, err)
		assert.False(t, final)

		creative, _ := service.GetCreative(1)
		assert.False(t, creative.Saved)
	})

	t.Run("Criativo inexistente", func(t *testing.T) {
		service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)
		service.creatives = []*domain.Creative{{ID: 1, Name: "Criativo A"}}

		_, err := service.SetSaved(99, true)

		assert.ErrorIs(t, err, ErrCreativeNotFound)
	})
}

func TestCatalogService_List_FilterAndSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)
	mockNicheRepo := mocks.NewMockNicheRepository(ctrl)
	mockSheets := sheetsmocks.NewMockIntegrator(ctrl)

	service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)
	service.creatives = []*domain.Creative{
		{ID: 1, Name: "Zeta", Niche: "Diabetes", Mechanism: "VSL", ActiveTime: "12 dias", Saved: true, Metrics: &domain.Metrics{CTR: "2.1%"}},
		{ID: 2, Name: "Alfa", Niche: "Emagrecimento", ActiveTime: "3 dias", Metrics: &domain.Metrics{CTR: "4.8%"}},
		{ID: 3, Name: "Beta", Niche: "Diabetes", ActiveTime: "7 dias", Saved: true, Metrics: &domain.Metrics{CTR: "3.5%"}},
	}

	t.Run("recentes ordena do menor tempo ativo para o maior", func(t *testing.T) {
		result := service.List(ListOptions{Sort: SortRecent})

		assert.Equal(t, []int{2, 3, 1}, idsOf(result))
	})

	t.Run("antigos ordena do maior tempo ativo para o menor", func(t *testing.T) {
		result := service.List(ListOptions{Sort: SortOldest})

		assert.Equal(t, []int{1, 3, 2}, idsOf(result))
	})

	t.Run("nome ordena alfabeticamente", func(t *testing.T) {
		result := service.List(ListOptions{Sort: SortName})

		assert.Equal(t, []int{2, 3, 1}, idsOf(result))
	})

	t.Run("performance ordena por CTR decrescente", func(t *testing.T) {
		result := service.List(ListOptions{Sort: SortPerformance})

		assert.Equal(t, []int{2, 3, 1}, idsOf(result))
	})

	t.Run("filtro por nicho", func(t *testing.T) {
		result := service.List(ListOptions{Niche: "Diabetes", Sort: SortRecent})

		assert.Equal(t, []int{3, 1}, idsOf(result))
	})

	t.Run("nicho Todos não filtra nada", func(t *testing.T) {
		result := service.List(ListOptions{Niche: domain.NicheAll})

		assert.Len(t, result, 3)
	})

	t.Run("apenas salvos", func(t *testing.T) {
		result := service.List(ListOptions{SavedOnly: true, Sort: SortRecent})

		assert.Equal(t, []int{3, 1}, idsOf(result))
	})

	t.Run("busca por nome sem diferenciar caixa", func(t *testing.T) {
		result := service.List(ListOptions{Search: "alfa"})

		assert.Equal(t, []int{2}, idsOf(result))
	})
}

func TestCatalogService_SetNiches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)
	mockNicheRepo := mocks.NewMockNicheRepository(ctrl)
	mockSheets := sheetsmocks.NewMockIntegrator(ctrl)

	t.Run("Sentinelas são preservados mesmo ausentes da lista", func(t *testing.T) {
		service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)

		result := service.SetNiches([]*domain.Niche{
			{Name: "Diabetes", Color: "#3b82f6"},
		})

		assert.Equal(t, domain.NicheAll, result[0].Name)
		assert.Equal(t, domain.NicheOther, result[len(result)-1].Name)
		assert.Len(t, result, 3)
	})

	t.Run("Filtro selecionado volta para Todos quando o nicho some", func(t *testing.T) {
		service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)
		service.selectedNiche = "Diabetes"

		service.SetNiches([]*domain.Niche{
			{Name: "Emagrecimento", Color: "#10b981"},
		})

		assert.Equal(t, domain.NicheAll, service.SelectedNiche())
	})

	t.Run("Filtro selecionado é mantido quando o nicho continua", func(t *testing.T) {
		service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)
		service.selectedNiche = "Diabetes"

		service.SetNiches([]*domain.Niche{
			{Name: "Diabetes", Color: "#3b82f6"},
		})

		assert.Equal(t, "Diabetes", service.SelectedNiche())
	})
}

func TestCatalogService_NicheCRUD(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)
	mockNicheRepo := mocks.NewMockNicheRepository(ctrl)
	mockSheets := sheetsmocks.NewMockIntegrator(ctrl)

	t.Run("Sentinelas não podem ser alterados nem removidos", func(t *testing.T) {
		service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)

		_, err := service.CreateNiche(&domain.Niche{Name: domain.NicheAll})
		assert.ErrorIs(t, err, ErrReservedNiche)

		err = service.DeleteNiche(domain.NicheOther)
		assert.ErrorIs(t, err, ErrReservedNiche)
	})

	t.Run("Criação offline entra antes do sentinela Outros", func(t *testing.T) {
		service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)

		created, err := service.CreateNiche(&domain.Niche{Name: "Calvície"})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.Color)

		niches := service.Niches()
		assert.Equal(t, "Calvície", niches[len(niches)-2].Name)
		assert.Equal(t, domain.NicheOther, niches[len(niches)-1].Name)
	})

	t.Run("Falha de persistência reverte a edição do nicho", func(t *testing.T) {
		service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)
		service.connected = true
		service.niches = []*domain.Niche{
			{Name: domain.NicheAll, Color: "#6b7280"},
			{ID: 7, Name: "Diabetes", Color: "#3b82f6"},
			{Name: domain.NicheOther, Color: "#8b5cf6"},
		}

		updated := &domain.Niche{ID: 7, Name: "Diabetes Tipo 2", Color: "#000000"}
		mockNicheRepo.EXPECT().
			Update(updated).
			Return(domain.WrapSource(domain.ErrPersistenceFailure, assert.AnError))

		err := service.UpdateNiche(updated)

		assert.ErrorIs(t, err, domain.ErrPersistenceFailure)

		// A lista em memória volta ao valor vigente antes da chamada
		niches := service.Niches()
		assert.Equal(t, "Diabetes", niches[1].Name)
		assert.Equal(t, "#3b82f6", niches[1].Color)
	})

	t.Run("Remoção do nicho selecionado reseta o filtro", func(t *testing.T) {
		service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)
		service.selectedNiche = "Diabetes"

		err := service.DeleteNiche("Diabetes")

		assert.NoError(t, err)
		assert.Equal(t, domain.NicheAll, service.SelectedNiche())
	})
}

func TestCatalogService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)
	mockNicheRepo := mocks.NewMockNicheRepository(ctrl)
	mockSheets := sheetsmocks.NewMockIntegrator(ctrl)

	service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)
	service.creatives = []*domain.Creative{
		{ID: 1, Name: "Criativo A", Niche: "Diabetes", ActiveTime: "19 horas ativo", Saved: true, Metrics: &domain.Metrics{CTR: "2.1%"}},
		{ID: 2, Name: "Criativo B", Niche: "Diabetes", ActiveTime: "5 horas ativo", Metrics: &domain.Metrics{CTR: "4.8%"}},
		{ID: 3, Name: "Criativo C", Niche: "Emagrecimento", ActiveTime: "27 horas ativo", Saved: true},
	}
	service.connected = true

	stats := service.Stats()

	assert.Equal(t, 3, stats.TotalCreatives)
	assert.Equal(t, 2, stats.SavedCreatives)
	assert.Equal(t, "Diabetes", stats.TopNiche)
	assert.Equal(t, "Criativo B", stats.BestCTRCreative)
	assert.Equal(t, "Criativo B", stats.NewestCreative)
	assert.InDelta(t, 3.45, stats.AvgCTR, 0.001)
	assert.Zero(t, stats.AvgCPM)
	assert.True(t, stats.SourceConnected)
}

func TestCatalogService_SyncFromSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)
	mockNicheRepo := mocks.NewMockNicheRepository(ctrl)
	mockSheets := sheetsmocks.NewMockIntegrator(ctrl)

	t.Run("Importa criativos novos e recarrega o catálogo", func(t *testing.T) {
		service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)

		imported := []*domain.Creative{{ID: 1, Name: "Novo Criativo"}}

		mockSheets.EXPECT().FetchCreatives().Return(imported, nil)
		mockCreativeRepo.EXPECT().InsertMissing(imported).Return(1, nil)

		// Refresh disparado após a importação
		mockCreativeRepo.EXPECT().Probe().Return(nil)
		mockCreativeRepo.EXPECT().FetchAll().Return(imported, nil)
		mockNicheRepo.EXPECT().List().Return(nil, nil)

		inserted, err := service.SyncFromSheet()

		assert.NoError(t, err)
		assert.Equal(t, 1, inserted)
	})

	t.Run("Planilha indisponível devolve o erro classificado", func(t *testing.T) {
		service := newTestService(mockCreativeRepo, mockNicheRepo, mockSheets)

		mockSheets.EXPECT().
			FetchCreatives().
			Return(nil, domain.WrapSource(domain.ErrSourceUnreachable, assert.AnError))

		_, err := service.SyncFromSheet()

		assert.ErrorIs(t, err, domain.ErrSourceUnreachable)
	})
}

func idsOf(creatives []*domain.Creative) []int {
	ids := make([]int, 0, len(creatives))
	for _, creative := range creatives {
		ids = append(ids, creative.ID)
	}
	return ids
}
