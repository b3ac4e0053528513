package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	openaimocks "github.com/vfg2006/creative-dashboard-api/infrastructure/integrator/openai/mocks"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
	"github.com/vfg2006/creative-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func newTestAnalyzer(client *openaimocks.MockClient, repo *mocks.MockAnalysisRepository) *analysisService {
	log.SetupTestLogger()

	return &analysisService{
		client:       client,
		analysisRepo: repo,
		logger:       log.L,
		cache:        make(map[string]*domain.Analysis),
		simulated:    make(map[string]struct{}),
	}
}

func TestAnalysisService_SimulatedWithoutCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := openaimocks.NewMockClient(ctrl)
	mockRepo := mocks.NewMockAnalysisRepository(ctrl)

	service := newTestAnalyzer(mockClient, mockRepo)

	t.Run("Criativo 1 de Emagrecimento recebe a primeira linha da tabela", func(t *testing.T) {
		mockClient.EXPECT().Enabled().Return(false)
		mockRepo.EXPECT().Upsert(1, gomock.Any()).Return(nil)

		analysis := service.Analyze(&domain.Creative{ID: 1, Name: "Criativo A", Niche: "Emagrecimento"})

		assert.Equal(t, 8.9, analysis.Score)
		assert.Equal(t, "Mecanismo único e diferenciado. Excelente apelo emocional.", analysis.Narrative)
		assert.Equal(t, domain.PotentialHigh, analysis.Potential)
		assert.Equal(t, "Explore mais o aspecto de facilidade.", analysis.Suggestions)
		assert.False(t, analysis.ByRealModel)
	})

	t.Run("IDs percorrem a tabela de forma cíclica", func(t *testing.T) {
		mockClient.EXPECT().Enabled().Return(false).Times(2)
		// O criativo 1 já foi simulado e persistido acima; só o 6 grava
		mockRepo.EXPECT().Upsert(6, gomock.Any()).Return(nil)

		sixth := service.Analyze(&domain.Creative{ID: 6, Name: "Criativo F", Niche: "Diabetes"})
		first := service.Analyze(&domain.Creative{ID: 1, Name: "Criativo A", Niche: "Diabetes"})

		// (6-1) mod 5 == (1-1) mod 5
		assert.Equal(t, first.Score, sixth.Score)
		assert.Equal(t, first.Narrative, sixth.Narrative)
	})

	t.Run("Nicho desconhecido usa a tabela de Emagrecimento", func(t *testing.T) {
		mockClient.EXPECT().Enabled().Return(false)
		mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		analysis := service.Analyze(&domain.Creative{ID: 1, Name: "Criativo X", Niche: "Nicho Inexistente"})

		assert.Equal(t, 8.9, analysis.Score)
	})

	t.Run("Simulação repetida não grava de novo", func(t *testing.T) {
		mockClient.EXPECT().Enabled().Return(false).Times(2)
		// Resultado determinístico: o upsert acontece uma única vez
		mockRepo.EXPECT().Upsert(3, gomock.Any()).Return(nil)

		creative := &domain.Creative{ID: 3, Name: "Criativo C", Niche: "Disfunção Erétil"}

		a := service.Analyze(creative)
		b := service.Analyze(creative)

		assert.Equal(t, a.Score, b.Score)
		assert.Equal(t, a.Narrative, b.Narrative)
		assert.Equal(t, a.Potential, b.Potential)
		assert.Equal(t, a.Suggestions, b.Suggestions)
	})

	t.Run("ClearCache libera nova persistência da simulação", func(t *testing.T) {
		mockClient.EXPECT().Enabled().Return(false).Times(2)
		mockRepo.EXPECT().Upsert(4, gomock.Any()).Return(nil).Times(2)

		creative := &domain.Creative{ID: 4, Name: "Criativo D", Niche: "Diabetes"}

		service.Analyze(creative)
		service.ClearCache()
		service.Analyze(creative)
	})
}

func TestAnalysisService_RemoteModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := openaimocks.NewMockClient(ctrl)
	mockRepo := mocks.NewMockAnalysisRepository(ctrl)

	creative := &domain.Creative{ID: 7, Name: "Criativo G", Niche: "Diabetes", Mechanism: "VSL"}

	t.Run("Resposta bem formada é interpretada e memoizada", func(t *testing.T) {
		service := newTestAnalyzer(mockClient, mockRepo)

		mockClient.EXPECT().Enabled().Return(true)
		mockClient.EXPECT().Complete(gomock.Any()).Return(
			"NOTA: 8.4\nANÁLISE: Copy persuasivo com boa prova social.\nPOTENCIAL: Alto\nSUGESTÕES: Teste um novo gancho.",
			nil,
		)
		mockRepo.EXPECT().Upsert(7, gomock.Any()).Return(nil)

		analysis := service.Analyze(creative)

		assert.Equal(t, 8.4, analysis.Score)
		assert.Equal(t, "Copy persuasivo com boa prova social.", analysis.Narrative)
		assert.Equal(t, "Alto", analysis.Potential)
		assert.Equal(t, "Teste um novo gancho.", analysis.Suggestions)
		assert.True(t, analysis.ByRealModel)

		// Segunda chamada sai do cache: nenhuma nova consulta ao modelo
		cached := service.Analyze(creative)
		assert.Same(t, analysis, cached)
	})

	t.Run("Linhas ausentes recebem os valores padrão", func(t *testing.T) {
		service := newTestAnalyzer(mockClient, mockRepo)

		mockClient.EXPECT().Enabled().Return(true)
		mockClient.EXPECT().Complete(gomock.Any()).Return("NOTA: 9", nil)
		mockRepo.EXPECT().Upsert(7, gomock.Any()).Return(nil)

		analysis := service.Analyze(creative)

		assert.Equal(t, 9.0, analysis.Score)
		assert.Equal(t, defaultNarrative, analysis.Narrative)
		assert.Equal(t, defaultPotential, analysis.Potential)
		assert.Equal(t, defaultSuggestions, analysis.Suggestions)
	})

	t.Run("Nota fora do intervalo é limitada a 10", func(t *testing.T) {
		service := newTestAnalyzer(mockClient, mockRepo)

		mockClient.EXPECT().Enabled().Return(true)
		mockClient.EXPECT().Complete(gomock.Any()).Return("NOTA: 37", nil)
		mockRepo.EXPECT().Upsert(7, gomock.Any()).Return(nil)

		analysis := service.Analyze(creative)

		assert.Equal(t, 10.0, analysis.Score)
	})

	t.Run("Falha do modelo degrada para a simulação", func(t *testing.T) {
		service := newTestAnalyzer(mockClient, mockRepo)

		mockClient.EXPECT().Enabled().Return(true)
		mockClient.EXPECT().Complete(gomock.Any()).Return("", domain.ErrSourceUnreachable)
		mockRepo.EXPECT().Upsert(7, gomock.Any()).Return(nil)

		analysis := service.Analyze(creative)

		assert.False(t, analysis.ByRealModel)
		// (7-1) mod 5 = 1 na tabela de Diabetes
		assert.Equal(t, 7.3, analysis.Score)
	})

	t.Run("Falha de persistência não invalida a análise", func(t *testing.T) {
		service := newTestAnalyzer(mockClient, mockRepo)

		mockClient.EXPECT().Enabled().Return(true)
		mockClient.EXPECT().Complete(gomock.Any()).Return("NOTA: 8", nil)
		mockRepo.EXPECT().Upsert(7, gomock.Any()).Return(domain.ErrPersistenceFailure)

		analysis := service.Analyze(creative)

		assert.Equal(t, 8.0, analysis.Score)
		assert.True(t, analysis.ByRealModel)
	})
}

func TestAnalysisService_ClearCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := openaimocks.NewMockClient(ctrl)
	mockRepo := mocks.NewMockAnalysisRepository(ctrl)

	service := newTestAnalyzer(mockClient, mockRepo)
	creative := &domain.Creative{ID: 2, Name: "Criativo B", Niche: "Diabetes"}

	mockClient.EXPECT().Enabled().Return(true).Times(2)
	mockClient.EXPECT().Complete(gomock.Any()).Return("NOTA: 8", nil).Times(2)
	mockRepo.EXPECT().Upsert(2, gomock.Any()).Return(nil).Times(2)

	first := service.Analyze(creative)
	service.ClearCache()
	second := service.Analyze(creative)

	// Cache limpo força nova consulta ao modelo
	assert.NotSame(t, first, second)
}

func TestAnalysisService_AnalyzeMany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := openaimocks.NewMockClient(ctrl)
	mockRepo := mocks.NewMockAnalysisRepository(ctrl)

	service := newTestAnalyzer(mockClient, mockRepo)

	creatives := []*domain.Creative{
		{ID: 1, Name: "Criativo A", Niche: "Emagrecimento"},
		{ID: 2, Name: "Criativo B", Niche: "Diabetes"},
	}

	mockClient.EXPECT().Enabled().Return(false).Times(2)
	mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	results := service.AnalyzeMany(creatives)

	assert.Len(t, results, 2)
	assert.Equal(t, 1, results[0].CreativeID)
	assert.Equal(t, 2, results[1].CreativeID)
	assert.NotNil(t, results[0].Analysis)
	assert.NotNil(t, results[1].Analysis)
}
