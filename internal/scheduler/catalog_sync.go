package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-dashboard-api/internal/config"
	"github.com/vfg2006/creative-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/creative-dashboard-api/pkg/utils"
)

// CatalogSyncConfig representa a configuração do agendador de sincronização do catálogo
type CatalogSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CatalogSyncService agenda a importação periódica da planilha para o banco.
// Cada tick compara os nomes já cadastrados e insere só os criativos novos,
// por isso ticks sobrepostos não causam duplicação.
type CatalogSyncService struct {
	scheduler           *gocron.Scheduler
	config              CatalogSyncConfig
	catalogService      cataloging.CatalogService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCatalogSyncService cria uma nova instância do serviço de sincronização do catálogo
func NewCatalogSyncService(
	catalogService cataloging.CatalogService,
	appConfig *config.Config,
) *CatalogSyncService {
	syncConfig := CatalogSyncConfig{
		CronSchedule: appConfig.CatalogSync.CronSchedule,
		SyncEnabled:  appConfig.CatalogSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização do catálogo carregada")

	return &CatalogSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		catalogService: catalogService,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *CatalogSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do catálogo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do catálogo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCatalog()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do catálogo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara a sincronização fora do cronograma, usada pelo endpoint
// manual de sync.
func (s *CatalogSyncService) RunNow() (int, error) {
	return s.catalogService.SyncFromSheet()
}

func (s *CatalogSyncService) syncCatalog() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do catálogo já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	syncID, _ := utils.GenerateID()

	inserted, err := s.catalogService.SyncFromSheet()
	if err != nil {
		logrus.WithError(err).WithField("sync_id", syncID).Warn("Sincronização do catálogo falhou")
		return
	}

	logrus.WithFields(logrus.Fields{
		"sync_id":     syncID,
		"inserted":    inserted,
		"duration_ms": time.Since(s.lastSyncStartedAt).Milliseconds(),
	}).Info("Sincronização do catálogo concluída")
}
