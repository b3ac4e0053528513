package analyzing

import (
	"fmt"
	"sync"

	"github.com/vfg2006/creative-dashboard-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
	"github.com/vfg2006/creative-dashboard-api/pkg/log"
)

// Analyzer avalia criativos. Nunca retorna erro ao chamador: qualquer falha
// na consulta ao modelo remoto degrada para a simulação determinística.
type Analyzer interface {
	Analyze(creative *domain.Creative) *domain.Analysis
	AnalyzeMany(creatives []*domain.Creative) []*BatchItem
	ClearCache()
}

// BatchItem relaciona um criativo à sua análise na avaliação em lote.
type BatchItem struct {
	CreativeID int              `json:"id"`
	Analysis   *domain.Analysis `json:"analiseIA"`
}

type analysisService struct {
	client       openaiclient.Client
	analysisRepo repository.AnalysisRepository
	logger       log.Logger

	mu        sync.Mutex
	cache     map[string]*domain.Analysis
	simulated map[string]struct{}
}

func NewService(
	client openaiclient.Client,
	analysisRepo repository.AnalysisRepository,
	logger log.Logger,
) Analyzer {
	return &analysisService{
		client:       client,
		analysisRepo: analysisRepo,
		logger:       logger,
		cache:        make(map[string]*domain.Analysis),
		simulated:    make(map[string]struct{}),
	}
}

// Analyze devolve a análise do criativo, consultando o modelo remoto quando
// há chave configurada. Resultados do modelo são memoizados por (id, nome);
// análises simuladas não entram no cache, para que o criativo seja avaliado
// de verdade assim que o modelo voltar a responder.
func (s *analysisService) Analyze(creative *domain.Creative) *domain.Analysis {
	key := cacheKey(creative)

	s.mu.Lock()
	if cached, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	if !s.client.Enabled() {
		return s.simulate(creative)
	}

	response, err := s.client.Complete(buildPrompt(creative))
	if err != nil {
		s.logger.WithError(err).
			WithField("creative_id", creative.ID).
			Warn("Modelo remoto indisponível, usando análise simulada")
		return s.simulate(creative)
	}

	analysis := parseModelResponse(response)

	s.mu.Lock()
	s.cache[key] = analysis
	s.mu.Unlock()

	s.persist(creative.ID, analysis)

	return analysis
}

// AnalyzeMany avalia os criativos em sequência, preservando a ordem de
// entrada.
func (s *analysisService) AnalyzeMany(creatives []*domain.Creative) []*BatchItem {
	results := make([]*BatchItem, 0, len(creatives))
	for _, creative := range creatives {
		results = append(results, &BatchItem{
			CreativeID: creative.ID,
			Analysis:   s.Analyze(creative),
		})
	}
	return results
}

// ClearCache descarta as análises memoizadas. Usado quando o catálogo é
// recarregado de outra fonte e os IDs podem ter sido reatribuídos.
func (s *analysisService) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*domain.Analysis)
	s.simulated = make(map[string]struct{})
}

func (s *analysisService) simulate(creative *domain.Creative) *domain.Analysis {
	analysis := simulateAnalysis(creative)

	key := cacheKey(creative)
	s.mu.Lock()
	_, alreadyPersisted := s.simulated[key]
	s.simulated[key] = struct{}{}
	s.mu.Unlock()

	// A simulação é determinística: repetir o upsert gravaria o mesmo valor
	if !alreadyPersisted {
		s.persist(creative.ID, analysis)
	}

	return analysis
}

// persist grava a análise no banco quando há repositório disponível. Falha de
// escrita não invalida a análise já calculada, só gera aviso.
func (s *analysisService) persist(creativeID int, analysis *domain.Analysis) {
	if s.analysisRepo == nil {
		return
	}

	if err := s.analysisRepo.Upsert(creativeID, analysis); err != nil {
		s.logger.WithError(err).
			WithField("creative_id", creativeID).
			Warn("Não foi possível persistir a análise do criativo")
	}
}

func cacheKey(creative *domain.Creative) string {
	return fmt.Sprintf("%d-%s", creative.ID, creative.Name)
}
