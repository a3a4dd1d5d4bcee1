package pipeline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/sales-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/auditing"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-pipeline-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pipeline-api/pkg/log"
	"github.com/vfg2006/sales-pipeline-api/pkg/metrics"
	"github.com/vfg2006/sales-pipeline-api/pkg/utils"
)

type PipelineService interface {
	Create(ctx context.Context, req *domain.CreatePipelineRequest, actor *domain.Claims) (*domain.Pipeline, error)
	Update(ctx context.Context, id string, req *domain.UpdatePipelineRequest, actor *domain.Claims) (*domain.Pipeline, error)
	Get(ctx context.Context, id string) (*domain.Pipeline, error)
	List(ctx context.Context, filter domain.PipelineFilter) ([]*domain.Pipeline, error)
	Delete(ctx context.Context, id string) error
	Recalculate(ctx context.Context, id string) (*domain.Pipeline, bool, error)
	RecalculateAll(ctx context.Context, filter domain.PipelineFilter, dryRun bool) (*domain.RecalculationSummary, error)
	Activities(ctx context.Context, id string) ([]*domain.PipelineActivity, error)
	Preview(ctx context.Context, req *domain.ForecastPreviewRequest) (*domain.ForecastPreview, error)
}

// SheetsPublisher recebe o pipeline salvo para espelhamento assíncrono na planilha
type SheetsPublisher interface {
	Enqueue(pipeline *domain.Pipeline)
}

type Service struct {
	pipelineRepository repository.PipelineRepository
	forecastRepository repository.MonthlyForecastRepository
	activityRepository repository.ActivityRepository
	transactor         postgres.Transactor
	publisher          SheetsPublisher
	detector           *auditing.Detector
	now                func() time.Time
}

func NewService(
	pipelineRepository repository.PipelineRepository,
	forecastRepository repository.MonthlyForecastRepository,
	activityRepository repository.ActivityRepository,
	transactor postgres.Transactor,
	publisher SheetsPublisher,
	cfg *config.Config,
) PipelineService {
	location := cfg.Location()

	return &Service{
		pipelineRepository: pipelineRepository,
		forecastRepository: forecastRepository,
		activityRepository: activityRepository,
		transactor:         transactor,
		publisher:          publisher,
		detector:           auditing.NewDetector(cfg.Activity.StatusLoggedByTrigger),
		now:                func() time.Time { return time.Now().In(location) },
	}
}

func (s *Service) Create(ctx context.Context, req *domain.CreatePipelineRequest, actor *domain.Claims) (*domain.Pipeline, error) {
	p, err := newPipelineFromRequest(req)
	if err != nil {
		return nil, NewPipelineError(ErrInvalidDate, apiErrors.ErrInvalidFormat, err.Error())
	}

	if p.OwnerID == nil && actor != nil {
		p.OwnerID = &actor.UserID
	}

	if problems := validatePipeline(p); len(problems) > 0 {
		return nil, NewPipelineError(ErrInvalidPipeline, apiErrors.ErrInvalidRequest, strings.Join(problems, "; "))
	}

	p.ID, err = utils.GeneratePipelineID()
	if err != nil {
		return nil, NewPipelineError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador do pipeline")
	}

	s.applyForecast(ctx, p)

	created := &domain.PipelineActivity{
		PipelineID:   p.ID,
		ActivityType: domain.ActivityCreated,
		NewValue:     stringPtr(string(p.Status)),
		UserID:       actorID(actor),
	}

	err = s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.pipelineRepository.Insert(ctx, tx, p); err != nil {
			return err
		}
		if err := s.forecastRepository.ReplaceForPipeline(ctx, tx, p.ID, p.MonthlyForecasts); err != nil {
			return err
		}
		return s.activityRepository.InsertMany(ctx, tx, []*domain.PipelineActivity{created})
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("pipeline_id", p.ID).Error("Erro ao criar pipeline")
		if repository.IsUniqueViolation(err) {
			return nil, NewPipelineErrorWithID(ErrPipelineAlreadyExists, apiErrors.ErrPipelineConflict, p.ID, "Pipeline já existe")
		}
		return nil, NewPipelineErrorWithID(ErrSavePipeline, apiErrors.ErrDatabaseOperation, p.ID, "Falha ao salvar pipeline no banco de dados")
	}

	s.publisher.Enqueue(p)
	p.Warnings = append(p.Warnings, forecasting.VerifyTotals(p.MonthlyForecasts, p.QGross, p.QNetRev)...)

	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req *domain.UpdatePipelineRequest, actor *domain.Claims) (*domain.Pipeline, error) {
	existing, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	merged.MonthlyForecasts = nil
	merged.Warnings = nil
	if err := applyPatch(&merged, req); err != nil {
		return nil, NewPipelineErrorWithID(ErrInvalidDate, apiErrors.ErrInvalidFormat, id, err.Error())
	}

	if problems := validatePipeline(&merged); len(problems) > 0 {
		return nil, NewPipelineErrorWithID(ErrInvalidPipeline, apiErrors.ErrInvalidRequest, id, strings.Join(problems, "; "))
	}

	recalculate := req.TouchesCalculation()
	if recalculate {
		s.applyForecast(ctx, &merged)
	}

	newFields := make(map[string]any)
	values := merged.FieldValues()
	for _, field := range req.ProvidedFields() {
		newFields[field] = values[field]
	}
	changes := s.detector.DetectChanges(existing.FieldValues(), newFields)
	activities := auditing.Activities(id, actorID(actor), changes)

	statusChanged := merged.Status != existing.Status

	err = s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if statusChanged {
			if err := s.activityRepository.SetActor(ctx, tx, actorID(actor)); err != nil {
				return err
			}
		}
		if err := s.pipelineRepository.Update(ctx, tx, &merged); err != nil {
			return err
		}
		if recalculate {
			if err := s.forecastRepository.ReplaceForPipeline(ctx, tx, id, merged.MonthlyForecasts); err != nil {
				return err
			}
		}
		return s.activityRepository.InsertMany(ctx, tx, activities)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewPipelineErrorWithID(ErrPipelineNotFound, apiErrors.ErrPipelineNotFound, id, "Pipeline não encontrado")
		}
		log.ForContext(ctx).WithError(err).WithField("pipeline_id", id).Error("Erro ao atualizar pipeline")
		return nil, NewPipelineErrorWithID(ErrSavePipeline, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar pipeline no banco de dados")
	}

	if !recalculate {
		forecasts, err := s.forecastRepository.ListByPipelineIDs(ctx, []string{id})
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("pipeline_id", id).Warn("Erro ao carregar previsões mensais após atualização")
		}
		merged.MonthlyForecasts = forecasts[id]
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"pipeline_id":  id,
		"changes":      len(changes),
		"recalculated": recalculate,
	}).Info("Pipeline atualizado")

	s.publisher.Enqueue(&merged)
	merged.Warnings = append(merged.Warnings, forecasting.VerifyTotals(merged.MonthlyForecasts, merged.QGross, merged.QNetRev)...)

	return &merged, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Pipeline, error) {
	p, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	forecasts, err := s.forecastRepository.ListByPipelineIDs(ctx, []string{id})
	if err != nil {
		return nil, NewPipelineErrorWithID(ErrFetchPipelines, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar previsões mensais")
	}

	s.attachForecasts(p, forecasts[id])

	return p, nil
}

func (s *Service) List(ctx context.Context, filter domain.PipelineFilter) ([]*domain.Pipeline, error) {
	pipelines, err := s.pipelineRepository.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar pipelines")
		return nil, NewPipelineError(ErrFetchPipelines, apiErrors.ErrDatabaseOperation, "Falha ao listar pipelines no banco de dados")
	}

	forecasts, err := s.forecastRepository.ListByPipelineIDs(ctx, pipelineIDs(pipelines))
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar previsões mensais")
		return nil, NewPipelineError(ErrFetchPipelines, apiErrors.ErrDatabaseOperation, "Falha ao listar previsões mensais no banco de dados")
	}

	for _, p := range pipelines {
		s.attachForecasts(p, forecasts[p.ID])
	}

	return pipelines, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return NewPipelineError(ErrPipelineIDRequired, apiErrors.ErrMissingRequiredData, "ID do pipeline é obrigatório")
	}

	var deleted bool
	err := s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.forecastRepository.DeleteByPipelineID(ctx, tx, id); err != nil {
			return err
		}

		var err error
		deleted, err = s.pipelineRepository.Delete(ctx, tx, id)
		return err
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("pipeline_id", id).Error("Erro ao excluir pipeline")
		return NewPipelineErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao excluir pipeline")
	}

	if !deleted {
		return NewPipelineErrorWithID(ErrPipelineNotFound, apiErrors.ErrPipelineNotFound, id, "Pipeline não encontrado")
	}

	return nil
}

func (s *Service) Recalculate(ctx context.Context, id string) (*domain.Pipeline, bool, error) {
	existing, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, false, err
	}

	forecasts, err := s.forecastRepository.ListByPipelineIDs(ctx, []string{id})
	if err != nil {
		return nil, false, NewPipelineErrorWithID(ErrFetchPipelines, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar previsões mensais")
	}

	p, changed, err := s.recalculate(ctx, existing, forecasts[id], false)
	if err != nil {
		return nil, false, err
	}

	if changed {
		s.publisher.Enqueue(p)
	}

	return p, changed, nil
}

// RecalculateAll reconstrói os campos derivados de todos os pipelines do filtro.
// Com dryRun nada é gravado, apenas contabilizado.
func (s *Service) RecalculateAll(ctx context.Context, filter domain.PipelineFilter, dryRun bool) (*domain.RecalculationSummary, error) {
	pipelines, err := s.pipelineRepository.List(ctx, filter)
	if err != nil {
		return nil, NewPipelineError(ErrFetchPipelines, apiErrors.ErrDatabaseOperation, "Falha ao listar pipelines no banco de dados")
	}

	forecasts, err := s.forecastRepository.ListByPipelineIDs(ctx, pipelineIDs(pipelines))
	if err != nil {
		return nil, NewPipelineError(ErrFetchPipelines, apiErrors.ErrDatabaseOperation, "Falha ao listar previsões mensais no banco de dados")
	}

	summary := &domain.RecalculationSummary{Total: len(pipelines), DryRun: dryRun}
	for _, existing := range pipelines {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		p, changed, err := s.recalculate(ctx, existing, forecasts[existing.ID], dryRun)
		switch {
		case err != nil:
			summary.Failed++
		case changed:
			summary.Updated++
			summary.Changed = append(summary.Changed, existing.ID)
			if !dryRun {
				s.publisher.Enqueue(p)
			}
		default:
			summary.Unchanged++
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"total":     summary.Total,
		"updated":   summary.Updated,
		"unchanged": summary.Unchanged,
		"failed":    summary.Failed,
		"dry_run":   dryRun,
	}).Info("Recálculo de previsões concluído")

	return summary, nil
}

func (s *Service) Activities(ctx context.Context, id string) ([]*domain.PipelineActivity, error) {
	if _, err := s.getExisting(ctx, id); err != nil {
		return nil, err
	}

	activities, err := s.activityRepository.ListByPipelineID(ctx, id)
	if err != nil {
		return nil, NewPipelineErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar atividades")
	}

	return activities, nil
}

// Preview calcula a previsão de um pipeline hipotético sem acessar o banco
func (s *Service) Preview(ctx context.Context, req *domain.ForecastPreviewRequest) (*domain.ForecastPreview, error) {
	startingDate, err := parseOptionalDate(req.StartingDate)
	if err != nil {
		return nil, NewPipelineError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "starting_date: "+err.Error())
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, NewPipelineError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "end_date: "+err.Error())
	}

	status := domain.PipelineStatus(req.Status).Normalize()
	rates := forecasting.DeriveRates(req.MaxGross, req.Imp, req.ECPM, req.RevenueShare)
	result := forecasting.Calculate(forecasting.Input{
		Status:        status,
		DayGross:      rates.DayGross,
		DayNetRev:     rates.DayNetRev,
		StartingDate:  startingDate,
		EndDate:       endDate,
		FiscalYear:    req.FiscalYear,
		FiscalQuarter: req.FiscalQuarter,
	}, s.now())

	if !result.KnownStatus {
		log.ForContext(ctx).WithField("status", string(status)).Warn("Status desconhecido na simulação, usando progresso padrão")
	}

	return &domain.ForecastPreview{
		Status:           status,
		ProgressPercent:  result.ProgressPercent,
		KnownStatus:      result.KnownStatus,
		MaxGross:         rates.MaxGross,
		DayGross:         rates.DayGross,
		DayNetRev:        rates.DayNetRev,
		FiscalYear:       result.FiscalYear,
		FiscalQuarter:    result.FiscalQuarter,
		MonthlyForecasts: result.Months,
		QGross:           result.QGross,
		QNetRev:          result.QNetRev,
	}, nil
}

// recalculate aplica o cálculo sobre uma cópia e grava apenas quando algo mudou
func (s *Service) recalculate(ctx context.Context, existing *domain.Pipeline, stored []*domain.MonthlyForecast, dryRun bool) (*domain.Pipeline, bool, error) {
	p := *existing
	s.applyForecast(ctx, &p)

	if !derivedChanged(existing, stored, &p) {
		metrics.ForecastRecalculations.WithLabelValues("unchanged").Inc()
		p.MonthlyForecasts = stored
		return &p, false, nil
	}

	if dryRun {
		return &p, true, nil
	}

	activity := &domain.PipelineActivity{
		PipelineID:   p.ID,
		ActivityType: domain.ActivityRecalculated,
		Field:        stringPtr("q_gross"),
		OldValue:     stringPtr(auditing.Normalize(existing.QGross)),
		NewValue:     stringPtr(auditing.Normalize(p.QGross)),
	}

	err := s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.pipelineRepository.Update(ctx, tx, &p); err != nil {
			return err
		}
		if err := s.forecastRepository.ReplaceForPipeline(ctx, tx, p.ID, p.MonthlyForecasts); err != nil {
			return err
		}
		return s.activityRepository.InsertMany(ctx, tx, []*domain.PipelineActivity{activity})
	})
	if err != nil {
		metrics.ForecastRecalculations.WithLabelValues("failed").Inc()
		log.ForContext(ctx).WithError(err).WithField("pipeline_id", p.ID).Error("Erro ao gravar recálculo do pipeline")
		return nil, false, NewPipelineErrorWithID(ErrSavePipeline, apiErrors.ErrDatabaseOperation, p.ID, "Falha ao gravar recálculo")
	}

	metrics.ForecastRecalculations.WithLabelValues("updated").Inc()
	return &p, true, nil
}

func (s *Service) applyForecast(ctx context.Context, p *domain.Pipeline) {
	result := forecasting.Apply(p, s.now())
	if result.KnownStatus {
		return
	}

	metrics.UnknownStatusTotal.Inc()
	log.ForContext(ctx).WithFields(log.Fields{
		"pipeline_id": p.ID,
		"status":      string(p.Status),
	}).Warn("Status desconhecido, usando progresso padrão")
	p.Warnings = append(p.Warnings, unknownStatusWarning(p.Status))
}

func (s *Service) attachForecasts(p *domain.Pipeline, forecasts []*domain.MonthlyForecast) {
	p.MonthlyForecasts = forecasts
	if !forecasting.IsKnownStatus(p.Status) {
		p.Warnings = append(p.Warnings, unknownStatusWarning(p.Status))
	}
	p.Warnings = append(p.Warnings, forecasting.VerifyTotals(forecasts, p.QGross, p.QNetRev)...)
}

func (s *Service) getExisting(ctx context.Context, id string) (*domain.Pipeline, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewPipelineError(ErrPipelineIDRequired, apiErrors.ErrMissingRequiredData, "ID do pipeline é obrigatório")
	}

	p, err := s.pipelineRepository.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("pipeline_id", id).Error("Erro ao buscar pipeline")
		return nil, NewPipelineErrorWithID(ErrFetchPipelines, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar pipeline no banco de dados")
	}
	if p == nil {
		return nil, NewPipelineErrorWithID(ErrPipelineNotFound, apiErrors.ErrPipelineNotFound, id, "Pipeline não encontrado")
	}

	return p, nil
}

// derivedChanged compara os campos derivados e as linhas mensais gravadas com o novo cálculo
func derivedChanged(old *domain.Pipeline, stored []*domain.MonthlyForecast, recalculated *domain.Pipeline) bool {
	if old.ProgressPercent != recalculated.ProgressPercent ||
		old.QGross != recalculated.QGross ||
		old.QNetRev != recalculated.QNetRev ||
		!equalFloatPtr(old.MaxGross, recalculated.MaxGross) ||
		!equalFloatPtr(old.DayGross, recalculated.DayGross) ||
		!equalFloatPtr(old.DayNetRev, recalculated.DayNetRev) ||
		!equalIntPtr(old.FiscalYear, recalculated.FiscalYear) ||
		!equalIntPtr(old.FiscalQuarter, recalculated.FiscalQuarter) {
		return true
	}

	if len(stored) != len(recalculated.MonthlyForecasts) {
		return true
	}

	for i, f := range recalculated.MonthlyForecasts {
		s := stored[i]
		if s.Year != f.Year || s.Month != f.Month || s.DeliveryDays != f.DeliveryDays ||
			s.GrossRevenue != f.GrossRevenue || s.NetRevenue != f.NetRevenue {
			return true
		}
	}

	return false
}

func unknownStatusWarning(status domain.PipelineStatus) string {
	return fmt.Sprintf("status %q desconhecido, progresso padrão de %d%% aplicado", status, forecasting.DefaultProgressPercent)
}

// equalFloatPtr compara na precisão das colunas NUMERIC(18,6)
func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return utils.RoundWithTwoDecimalPlace(*a*1e4) == utils.RoundWithTwoDecimalPlace(*b*1e4)
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func pipelineIDs(pipelines []*domain.Pipeline) []string {
	ids := make([]string, 0, len(pipelines))
	for _, p := range pipelines {
		ids = append(ids, p.ID)
	}
	return ids
}

func actorID(actor *domain.Claims) *int {
	if actor == nil {
		return nil
	}
	id := actor.UserID
	return &id
}

func stringPtr(s string) *string {
	return &s
}
