package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/sales-pipeline-api/internal/api"
	"github.com/vfg2006/sales-pipeline-api/internal/api/handler"
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"github.com/vfg2006/sales-pipeline-api/internal/scheduler"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/pipeline"
	"github.com/vfg2006/sales-pipeline-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	pipelineRepo := repository.NewPipelineRepository(pgConn)
	forecastRepo := repository.NewMonthlyForecastRepository(pgConn)
	activityRepo := repository.NewActivityRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	integrator := sheetsIntegrator(ctx, cfg)
	publisher := sheets.NewPublisher(integrator, cfg.Sheets.PushTimeout)

	pipelineService := pipeline.NewService(pipelineRepo, forecastRepo, activityRepo, pgConn, publisher, cfg)
	dashboardService := dashboard.NewService(pipelineRepo, forecastRepo, cfg)
	authenticator := authenticating.NewService(userRepo, cfg)

	// Inicializa os agendadores
	recalculationService := scheduler.NewForecastRecalculationService(pipelineService, cfg)
	sheetsSyncService := scheduler.NewSheetsSyncService(pipelineService, integrator, cfg)

	if err := recalculationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recálculo de previsões")
	} else {
		logrus.Info("Agendador de recálculo de previsões iniciado com sucesso")
	}

	if err := sheetsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização da planilha")
	} else {
		logrus.Info("Agendador de sincronização da planilha iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Database:      pgConn,
		Pipelines:     pipelineService,
		Dashboard:     dashboardService,
		Authenticator: authenticator,
		CronJobs: handler.CronJobServices{
			ForecastRecalculationService: recalculationService,
			SheetsSyncService:            sheetsSyncService,
		},
		OnShutdown: []func(){publisher.Wait},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// sheetsIntegrator retorna o integrador da planilha ou um integrador inerte quando desabilitado
func sheetsIntegrator(ctx context.Context, cfg *config.Config) sheets.SheetsIntegrator {
	if !cfg.Sheets.Enabled {
		logrus.Info("Espelhamento na planilha desabilitado")
		return sheets.NoopIntegrator{}
	}

	client, err := sheetsclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar cliente do Google Sheets, espelhamento desabilitado")
		return sheets.NoopIntegrator{}
	}

	return sheets.New(cfg, client)
}
