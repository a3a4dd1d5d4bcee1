package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/pipeline"
)

// SheetsSyncConfig representa a configuração da sincronização completa com a planilha
type SheetsSyncConfig struct {
	CronSchedule       string
	RequestDelayMillis int
	Enabled            bool
}

// SheetsSyncService reenvia periodicamente todos os pipelines do trimestre para a planilha
type SheetsSyncService struct {
	scheduler           *gocron.Scheduler
	config              SheetsSyncConfig
	pipelineService     pipeline.PipelineService
	integrator          sheets.SheetsIntegrator
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *sheets.SyncResult
}

func NewSheetsSyncService(
	pipelineService pipeline.PipelineService,
	integrator sheets.SheetsIntegrator,
	appConfig *config.Config,
) *SheetsSyncService {
	syncConfig := SheetsSyncConfig{
		CronSchedule:       appConfig.SheetsSync.CronSchedule,
		RequestDelayMillis: appConfig.SheetsSync.RequestDelayMillis,
		Enabled:            appConfig.SheetsSync.Enabled,
	}

	location := appConfig.Location()

	logrus.WithFields(logrus.Fields{
		"cron_schedule":        syncConfig.CronSchedule,
		"request_delay_millis": syncConfig.RequestDelayMillis,
		"enabled":              syncConfig.Enabled,
		"sheets_enabled":       integrator.Enabled(),
	}).Info("Configuração do agendador de sincronização da planilha carregada")

	return &SheetsSyncService{
		scheduler:       gocron.NewScheduler(location),
		config:          syncConfig,
		pipelineService: pipelineService,
		integrator:      integrator,
		now:             func() time.Time { return time.Now().In(location) },
	}
}

// Start inicia o agendador
func (s *SheetsSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled || !s.integrator.Enabled() {
		logrus.Info("Sincronização da planilha desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização da planilha")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCurrentQuarter(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização da planilha: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização da planilha")
		s.scheduler.Stop()
	}()

	return nil
}

// syncCurrentQuarter envia todos os pipelines do trimestre corrente para a planilha
func (s *SheetsSyncService) syncCurrentQuarter(ctx context.Context) *sheets.SyncResult {
	if !s.integrator.Enabled() {
		logrus.Info("Planilha desabilitada, sincronização ignorada")
		return nil
	}

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização da planilha já em andamento, ignorando")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	fy, fq := forecasting.ResolveQuarter(nil, nil, s.now())

	pipelines, err := s.pipelineService.List(ctx, domain.PipelineFilter{FiscalYear: &fy, FiscalQuarter: &fq})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar pipelines para sincronização da planilha")
		return nil
	}

	if len(pipelines) == 0 {
		logrus.Info("Nenhum pipeline no trimestre para sincronizar com a planilha")
		return &sheets.SyncResult{}
	}

	delay := time.Duration(s.config.RequestDelayMillis) * time.Millisecond
	result, err := s.integrator.PushPipelines(ctx, pipelines, delay)
	if err != nil {
		logrus.WithError(err).Error("Erro ao sincronizar pipelines com a planilha")
	}

	fields := logrus.Fields{
		"duration":       time.Since(startTime).String(),
		"fiscal_year":    fy,
		"fiscal_quarter": fq,
		"pipelines":      len(pipelines),
	}
	if result != nil {
		fields["updated"] = result.Updated
		fields["appended"] = result.Appended
		fields["failed"] = result.Failed
	}
	logrus.WithFields(fields).Info("Sincronização da planilha concluída")

	s.syncMutex.Lock()
	s.lastResult = result
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	return result
}

// TriggerManualSync inicia manualmente uma sincronização completa da planilha
func (s *SheetsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização da planilha já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual da planilha")
	go s.syncCurrentQuarter(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SheetsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"sheets_enabled":         s.integrator.Enabled(),
		"cron":                   s.config.CronSchedule,
		"request_delay_millis":   s.config.RequestDelayMillis,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
