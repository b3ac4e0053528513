package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/creative-dashboard-api/internal/api"
	"github.com/vfg2006/creative-dashboard-api/internal/config"
	"github.com/vfg2006/creative-dashboard-api/internal/scheduler"
	"github.com/vfg2006/creative-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/creative-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/creative-dashboard-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	creativeRepo := repository.NewCreativeRepository(pgConn)
	nicheRepo := repository.NewNicheRepository(pgConn)
	analysisRepo := repository.NewAnalysisRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	sheetsIntegrator := sheets.New(cfg, sheetsclient.NewClient(cfg), log.L)

	openaiClient := openaiclient.NewClient(cfg)
	analyzerService := analyzing.NewService(openaiClient, analysisRepo, log.L)

	catalogService := cataloging.NewService(creativeRepo, nicheRepo, sheetsIntegrator, log.L)

	// Carrega o catálogo na subida. O serviço nunca falha aqui: sem banco e
	// sem planilha, responde com o catálogo estático.
	result := catalogService.LoadCatalog()
	logrus.WithFields(logrus.Fields{
		"creatives": len(result.Creatives),
		"connected": result.SourceConnected,
	}).Info("Catálogo inicial carregado")

	// Inicializa o agendador de sincronização planilha -> banco
	catalogSyncService := scheduler.NewCatalogSyncService(catalogService, cfg)

	if err := catalogSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do catálogo")
	} else {
		logrus.Info("Agendador de sincronização do catálogo iniciado com sucesso")
	}

	startCreativeListener(ctx, cfg, catalogService)

	server, err := api.New(
		cfg,
		catalogService,
		analyzerService,
		authenticator,
		catalogSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados. A indisponibilidade do banco
// não derruba a aplicação: o catálogo cai para a planilha ou para o catálogo
// estático enquanto o banco não responde.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err == nil {
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return conn
	}

	logrus.WithError(err).Warn("PostgreSQL indisponível, seguindo com fontes secundárias")

	conn, err = postgres.Open(dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("DSN do PostgreSQL inválido")
	}

	return conn
}

// startCreativeListener assina o canal LISTEN/NOTIFY de mudanças em criativos
// e dispara a atualização do catálogo em memória a cada notificação. Sem
// banco, o live-refresh fica desligado e o dashboard segue com o catálogo já
// carregado.
func startCreativeListener(ctx context.Context, cfg *config.Config, catalogService cataloging.CatalogService) {
	listener, err := repository.NewCreativeListener(cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Warn("Listener de mudanças em criativos indisponível")
		return
	}

	listener.Start(ctx)

	go func() {
		defer listener.Close()

		for event := range listener.Events() {
			logrus.WithFields(logrus.Fields{
				"operation":   event.Operation,
				"creative_id": event.CreativeID,
			}).Debug("Mudança em criativos notificada pelo banco")

			catalogService.Refresh()
		}
	}()

	logrus.Info("Listener de mudanças em criativos iniciado com sucesso")
}
