package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/sales-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-pipeline-api/pkg/log"
	"github.com/vfg2006/sales-pipeline-api/pkg/utils"
)

var ErrFetchDashboard = errors.New("error fetching dashboard data")

type DashboardService interface {
	QuarterSummary(ctx context.Context, fiscalYear, fiscalQuarter *int) (*domain.QuarterSummary, error)
	Kanban(ctx context.Context, fiscalYear, fiscalQuarter *int) ([]*domain.KanbanColumn, error)
}

type Service struct {
	pipelineRepository repository.PipelineRepository
	forecastRepository repository.MonthlyForecastRepository
	now                func() time.Time
}

func NewService(
	pipelineRepository repository.PipelineRepository,
	forecastRepository repository.MonthlyForecastRepository,
	cfg *config.Config,
) DashboardService {
	location := cfg.Location()

	return &Service{
		pipelineRepository: pipelineRepository,
		forecastRepository: forecastRepository,
		now:                func() time.Time { return time.Now().In(location) },
	}
}

// QuarterSummary consolida os totais do trimestre por status e por mês
func (s *Service) QuarterSummary(ctx context.Context, fiscalYear, fiscalQuarter *int) (*domain.QuarterSummary, error) {
	fy, fq := forecasting.ResolveQuarter(fiscalYear, fiscalQuarter, s.now())

	pipelines, err := s.listQuarter(ctx, fy, fq)
	if err != nil {
		return nil, err
	}

	forecasts, err := s.forecastRepository.ListByPipelineIDs(ctx, pipelineIDs(pipelines))
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar previsões mensais do dashboard")
		return nil, fmt.Errorf("%w: %v", ErrFetchDashboard, err)
	}

	summary := &domain.QuarterSummary{
		FiscalYear:    fy,
		FiscalQuarter: fq,
		PipelineCount: len(pipelines),
		ByStatus:      make([]*domain.StatusSummary, 0),
		ByMonth:       make([]*domain.MonthSummary, 0, 3),
	}

	months := forecasting.MonthsOf(fy, fq)
	monthIndex := make(map[forecasting.YearMonth]*domain.MonthSummary, len(months))
	for _, ym := range months {
		m := &domain.MonthSummary{Year: ym.Year, Month: ym.Month}
		monthIndex[ym] = m
		summary.ByMonth = append(summary.ByMonth, m)
	}

	statusIndex := make(map[domain.PipelineStatus]*domain.StatusSummary)
	for _, p := range pipelines {
		status := p.Status.Normalize()
		st, ok := statusIndex[status]
		if !ok {
			st = &domain.StatusSummary{Status: status}
			statusIndex[status] = st
		}
		st.Count++
		st.QGross = utils.SumCents(st.QGross, p.QGross)
		st.QNetRev = utils.SumCents(st.QNetRev, p.QNetRev)

		summary.QGross = utils.SumCents(summary.QGross, p.QGross)
		summary.QNetRev = utils.SumCents(summary.QNetRev, p.QNetRev)

		rows := forecasts[p.ID]
		for _, f := range rows {
			m, ok := monthIndex[forecasting.YearMonth{Year: f.Year, Month: f.Month}]
			if !ok {
				continue
			}
			m.DeliveryDays += f.DeliveryDays
			m.GrossRevenue = utils.SumCents(m.GrossRevenue, f.GrossRevenue)
			m.NetRevenue = utils.SumCents(m.NetRevenue, f.NetRevenue)
		}

		if warnings := forecasting.VerifyTotals(rows, p.QGross, p.QNetRev); len(warnings) > 0 {
			summary.InvariantWarnings++
			log.ForContext(ctx).WithFields(log.Fields{
				"pipeline_id": p.ID,
				"warnings":    warnings,
			}).Warn("Pipeline com totais inconsistentes")
		}
	}

	for _, status := range orderedStatuses(statusIndex) {
		summary.ByStatus = append(summary.ByStatus, statusIndex[status])
	}

	return summary, nil
}

// Kanban agrupa os pipelines do trimestre em colunas na ordem dos estágios.
// Colunas conhecidas aparecem mesmo vazias, códigos desconhecidos vão ao final.
func (s *Service) Kanban(ctx context.Context, fiscalYear, fiscalQuarter *int) ([]*domain.KanbanColumn, error) {
	fy, fq := forecasting.ResolveQuarter(fiscalYear, fiscalQuarter, s.now())

	pipelines, err := s.listQuarter(ctx, fy, fq)
	if err != nil {
		return nil, err
	}

	columns := make(map[domain.PipelineStatus]*domain.KanbanColumn, len(domain.StageOrder))
	for _, status := range domain.StageOrder {
		columns[status] = newColumn(status)
	}

	for _, p := range pipelines {
		status := p.Status.Normalize()
		column, ok := columns[status]
		if !ok {
			column = newColumn(status)
			columns[status] = column
		}
		column.Pipelines = append(column.Pipelines, p)
		column.QGross = utils.SumCents(column.QGross, p.QGross)
	}

	result := make([]*domain.KanbanColumn, 0, len(columns))
	for _, status := range orderedStatuses(columns) {
		result = append(result, columns[status])
	}

	return result, nil
}

func (s *Service) listQuarter(ctx context.Context, fiscalYear, fiscalQuarter int) ([]*domain.Pipeline, error) {
	pipelines, err := s.pipelineRepository.List(ctx, domain.PipelineFilter{
		FiscalYear:    &fiscalYear,
		FiscalQuarter: &fiscalQuarter,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"fiscal_year":    fiscalYear,
			"fiscal_quarter": fiscalQuarter,
		}).Error("Erro ao listar pipelines do dashboard")
		return nil, fmt.Errorf("%w: %v", ErrFetchDashboard, err)
	}

	return pipelines, nil
}

func newColumn(status domain.PipelineStatus) *domain.KanbanColumn {
	return &domain.KanbanColumn{
		Status:    status,
		Progress:  forecasting.ProgressFromStatus(status),
		Pipelines: make([]*domain.Pipeline, 0),
	}
}

// orderedStatuses devolve os status conhecidos na ordem do funil e os demais em ordem alfabética
func orderedStatuses[T any](index map[domain.PipelineStatus]T) []domain.PipelineStatus {
	ordered := make([]domain.PipelineStatus, 0, len(index))
	for _, status := range domain.StageOrder {
		if _, ok := index[status]; ok {
			ordered = append(ordered, status)
		}
	}

	unknown := make([]domain.PipelineStatus, 0)
	for status := range index {
		if !forecasting.IsKnownStatus(status) {
			unknown = append(unknown, status)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })

	return append(ordered, unknown...)
}

func pipelineIDs(pipelines []*domain.Pipeline) []string {
	ids := make([]string, 0, len(pipelines))
	for _, p := range pipelines {
		ids = append(ids, p.ID)
	}
	return ids
}
