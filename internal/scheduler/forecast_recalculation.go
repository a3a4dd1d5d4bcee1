package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/pipeline"
)

// ForecastRecalculationConfig representa a configuração do recálculo noturno das previsões
type ForecastRecalculationConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	Enabled           bool
}

// ForecastRecalculationService reconstrói periodicamente os campos derivados do trimestre corrente
type ForecastRecalculationService struct {
	scheduler           *gocron.Scheduler
	config              ForecastRecalculationConfig
	pipelineService     pipeline.PipelineService
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.RecalculationSummary
}

func NewForecastRecalculationService(pipelineService pipeline.PipelineService, appConfig *config.Config) *ForecastRecalculationService {
	recalculationConfig := ForecastRecalculationConfig{
		CronSchedule:      appConfig.ForecastRecalculation.CronSchedule,
		MaxConcurrentJobs: appConfig.ForecastRecalculation.MaxConcurrentJobs,
		Enabled:           appConfig.ForecastRecalculation.Enabled,
	}
	if recalculationConfig.MaxConcurrentJobs < 1 {
		recalculationConfig.MaxConcurrentJobs = 1
	}

	location := appConfig.Location()

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       recalculationConfig.CronSchedule,
		"max_concurrent_jobs": recalculationConfig.MaxConcurrentJobs,
		"enabled":             recalculationConfig.Enabled,
	}).Info("Configuração do agendador de recálculo de previsões carregada")

	return &ForecastRecalculationService{
		scheduler:       gocron.NewScheduler(location),
		config:          recalculationConfig,
		pipelineService: pipelineService,
		now:             func() time.Time { return time.Now().In(location) },
	}
}

// Start inicia o agendador
func (s *ForecastRecalculationService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recálculo de previsões desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recálculo de previsões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.recalculateCurrentQuarter(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo de previsões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recálculo de previsões")
		s.scheduler.Stop()
	}()

	return nil
}

// recalculateCurrentQuarter recalcula todos os pipelines do trimestre fiscal corrente
func (s *ForecastRecalculationService) recalculateCurrentQuarter(ctx context.Context) *domain.RecalculationSummary {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de previsões já em andamento, ignorando")
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

	logrus.WithFields(logrus.Fields{
		"fiscal_year":    fy,
		"fiscal_quarter": fq,
	}).Info("Iniciando recálculo de previsões do trimestre")

	pipelines, err := s.pipelineService.List(ctx, domain.PipelineFilter{FiscalYear: &fy, FiscalQuarter: &fq})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar pipelines para recálculo")
		return nil
	}

	summary := s.processPipelines(ctx, pipelines)

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"total":     summary.Total,
		"updated":   summary.Updated,
		"unchanged": summary.Unchanged,
		"failed":    summary.Failed,
	}).Info("Recálculo de previsões concluído")

	s.syncMutex.Lock()
	s.lastResult = summary
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	return summary
}

// processPipelines recalcula os pipelines com no máximo MaxConcurrentJobs em paralelo
func (s *ForecastRecalculationService) processPipelines(ctx context.Context, pipelines []*domain.Pipeline) *domain.RecalculationSummary {
	summary := &domain.RecalculationSummary{Total: len(pipelines)}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, p := range pipelines {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(id string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			_, changed, err := s.pipelineService.Recalculate(ctx, id)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err != nil:
				summary.Failed++
				logrus.WithFields(logrus.Fields{
					"pipeline_id": id,
					"error":       err.Error(),
				}).Error("Erro ao recalcular pipeline")
			case changed:
				summary.Updated++
				summary.Changed = append(summary.Changed, id)
			default:
				summary.Unchanged++
			}
		}(p.ID)
	}

	wg.Wait()

	return summary
}

// TriggerManualSync inicia manualmente o recálculo do trimestre corrente
func (s *ForecastRecalculationService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de previsões já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo manual de previsões")
	go s.recalculateCurrentQuarter(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ForecastRecalculationService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"max_concurrent_jobs":    s.config.MaxConcurrentJobs,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
