package cataloging

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
	"github.com/vfg2006/creative-dashboard-api/pkg/log"
	"github.com/vfg2006/creative-dashboard-api/pkg/utils"
)

var (
	ErrCreativeNotFound = errors.New("criativo não encontrado")
	ErrNicheNotFound    = errors.New("nicho não encontrado")
	ErrReservedNiche    = errors.New("nicho reservado não pode ser alterado")
)

// CatalogService reconcilia as três fontes de criativos (banco, planilha e
// catálogo estático) e mantém o estado corrente do dashboard.
type CatalogService interface {
	LoadCatalog() *CatalogResult
	Refresh() *CatalogResult
	List(opts ListOptions) []*domain.Creative
	GetCreative(id int) (*domain.Creative, error)
	SetSaved(id int, saved bool) (bool, error)

	Niches() []*domain.Niche
	SetNiches(niches []*domain.Niche) []*domain.Niche
	CreateNiche(niche *domain.Niche) (*domain.Niche, error)
	UpdateNiche(niche *domain.Niche) error
	DeleteNiche(name string) error
	SelectedNiche() string
	SelectNiche(name string)

	Stats() *Stats
	SyncFromSheet() (int, error)
}

type catalogService struct {
	creativeRepo repository.CreativeRepository
	nicheRepo    repository.NicheRepository
	sheets       sheets.Integrator
	logger       log.Logger

	mu            sync.RWMutex
	creatives     []*domain.Creative
	niches        []*domain.Niche
	selectedNiche string
	connected     bool
	lastUpdate    *time.Time
}

func NewService(
	creativeRepo repository.CreativeRepository,
	nicheRepo repository.NicheRepository,
	sheetsService sheets.Integrator,
	logger log.Logger,
) CatalogService {
	return &catalogService{
		creativeRepo:  creativeRepo,
		nicheRepo:     nicheRepo,
		sheets:        sheetsService,
		logger:        logger,
		creatives:     domain.DefaultCreatives(),
		niches:        domain.DefaultNiches(),
		selectedNiche: domain.NicheAll,
	}
}

// LoadCatalog carrega o catálogo respeitando a ordem de fallback: banco
// acessível e com registros, depois planilha com registros, por fim o
// catálogo estático embutido. Nunca devolve lista vazia.
func (s *catalogService) LoadCatalog() *CatalogResult {
	creatives, connected := s.resolveCreatives(false)

	now := time.Now()

	s.mu.Lock()
	s.creatives = creatives
	s.connected = connected
	s.lastUpdate = &now
	s.mu.Unlock()

	s.reloadNiches(connected)

	s.logger.WithFields(log.Fields{
		"total":  len(creatives),
		"source": sourceLabel(connected),
	}).Info("Catálogo de criativos carregado")

	return s.snapshot()
}

// Refresh recarrega das fontes remotas mantendo o catálogo atual quando
// nenhuma delas responde, em vez de degradar para o estático.
func (s *catalogService) Refresh() *CatalogResult {
	creatives, connected := s.resolveCreatives(true)

	s.mu.Lock()
	if connected {
		now := time.Now()
		s.creatives = creatives
		s.lastUpdate = &now
	}
	s.connected = connected
	s.mu.Unlock()

	if connected {
		s.reloadNiches(connected)
	}

	return s.snapshot()
}

// resolveCreatives percorre os níveis de fonte. Com keepOnFailure, falha
// total das fontes remotas devolve nil para o chamador preservar o estado
// atual.
func (s *catalogService) resolveCreatives(keepOnFailure bool) ([]*domain.Creative, bool) {
	if err := s.creativeRepo.Probe(); err == nil {
		creatives, err := s.creativeRepo.FetchAll()
		if err == nil && len(creatives) > 0 {
			return creatives, true
		}
		if err != nil {
			s.logger.WithError(err).Warn("Banco acessível mas leitura de criativos falhou")
		}
	} else {
		s.logger.WithError(err).WithField("source", "postgres").
			Warn("Banco indisponível, tentando planilha")
	}

	creatives, err := s.sheets.FetchCreatives()
	if err == nil && len(creatives) > 0 {
		return creatives, true
	}

	if keepOnFailure {
		return nil, false
	}

	return domain.DefaultCreatives(), false
}

// List devolve uma cópia filtrada e ordenada do catálogo corrente.
func (s *catalogService) List(opts ListOptions) []*domain.Creative {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]*domain.Creative, 0, len(s.creatives))
	for _, creative := range s.creatives {
		if matchesFilter(creative, opts) {
			filtered = append(filtered, creative)
		}
	}

	sortCreatives(filtered, opts.Sort)

	return filtered
}

func (s *catalogService) GetCreative(id int) (*domain.Creative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, creative := range s.creatives {
		if creative.ID == id {
			return creative, nil
		}
	}

	return nil, ErrCreativeNotFound
}

// SetSaved aplica o toggle otimista: o valor novo fica visível de imediato e
// a persistência acontece em seguida. Se a escrita falhar, o valor anterior
// capturado antes deste toggle é restaurado e a falha vira só um aviso.
func (s *catalogService) SetSaved(id int, saved bool) (bool, error) {
	s.mu.Lock()
	creative := s.findLocked(id)
	if creative == nil {
		s.mu.Unlock()
		return false, ErrCreativeNotFound
	}

	prior := creative.Saved
	creative.Saved = saved
	s.mu.Unlock()

	err := s.creativeRepo.UpdateFields(id, &domain.UpdateCreativeRequest{Saved: &saved})
	if err != nil {
		s.logger.WithError(err).
			WithField("creative_id", id).
			Warn("Falha ao persistir toggle de salvo, revertendo")

		s.mu.Lock()
		if current := s.findLocked(id); current != nil {
			current.Saved = prior
		}
		s.mu.Unlock()

		return prior, nil
	}

	return saved, nil
}

func (s *catalogService) findLocked(id int) *domain.Creative {
	for _, creative := range s.creatives {
		if creative.ID == id {
			return creative
		}
	}
	return nil
}

// Stats resume o catálogo corrente.
func (s *catalogService) Stats() *Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Stats{
		TotalCreatives:  len(s.creatives),
		TotalNiches:     len(s.niches),
		SourceConnected: s.connected,
		LastUpdate:      s.lastUpdate,
	}

	nicheCount := make(map[string]int)
	bestCTR := -1.0
	newest := -1
	withMetrics := 0
	ctrSum := 0.0
	cpmSum := 0.0

	for _, creative := range s.creatives {
		if creative.Saved {
			stats.SavedCreatives++
		}
		nicheCount[creative.Niche]++

		if ctr := creativeCTR(creative); ctr > bestCTR {
			bestCTR = ctr
			stats.BestCTRCreative = creative.Name
		}

		// Mais recente = menor tempo ativo, mesmo critério da ordenação
		// "recentes" da listagem
		if active := utils.LeadingInt(creative.ActiveTime); newest < 0 || active < newest {
			newest = active
			stats.NewestCreative = creative.Name
		}

		if creative.Metrics != nil {
			withMetrics++
			ctrSum += utils.ParsePercent(creative.Metrics.CTR)
			cpmSum += utils.ParseCurrency(creative.Metrics.CPM)
		}
	}

	if withMetrics > 0 {
		stats.AvgCTR = utils.RoundWithTwoDecimalPlace(ctrSum / float64(withMetrics))
		stats.AvgCPM = utils.RoundWithTwoDecimalPlace(cpmSum / float64(withMetrics))
	}

	top := 0
	for niche, count := range nicheCount {
		if count > top {
			top = count
			stats.TopNiche = niche
		}
	}

	return stats
}

// SyncFromSheet importa da planilha os criativos que ainda não existem no
// banco, comparando por nome. Usado pelo agendador e pelo disparo manual.
func (s *catalogService) SyncFromSheet() (int, error) {
	creatives, err := s.sheets.FetchCreatives()
	if err != nil {
		return 0, err
	}

	inserted, err := s.creativeRepo.InsertMissing(creatives)
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		s.logger.WithField("total", inserted).Info("Criativos importados da planilha")
		s.Refresh()
	}

	return inserted, nil
}

func (s *catalogService) snapshot() *CatalogResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	creatives := make([]*domain.Creative, len(s.creatives))
	copy(creatives, s.creatives)

	return &CatalogResult{
		Creatives:       creatives,
		SourceConnected: s.connected,
		LastUpdate:      s.lastUpdate,
	}
}

func sourceLabel(connected bool) string {
	if connected {
		return "remota"
	}
	return "estática"
}
