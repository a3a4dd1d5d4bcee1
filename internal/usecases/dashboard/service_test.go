package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func intP(i int) *int {
	return &i
}

func forecastRows(id string, gross, net [3]float64) []*domain.MonthlyForecast {
	rows := make([]*domain.MonthlyForecast, 0, 3)
	for i, month := range []int{4, 5, 6} {
		rows = append(rows, &domain.MonthlyForecast{
			PipelineID:   id,
			Year:         2025,
			Month:        month,
			DeliveryDays: 10,
			GrossRevenue: gross[i],
			NetRevenue:   net[i],
		})
	}
	return rows
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockPipelineRepository, *mocks.MockMonthlyForecastRepository) {
	pipelines := mocks.NewMockPipelineRepository(ctrl)
	forecasts := mocks.NewMockMonthlyForecastRepository(ctrl)

	return &Service{
		pipelineRepository: pipelines,
		forecastRepository: forecasts,
		now:                func() time.Time { return time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC) },
	}, pipelines, forecasts
}

func quarterFilter(fy, fq int) domain.PipelineFilter {
	return domain.PipelineFilter{FiscalYear: intP(fy), FiscalQuarter: intP(fq)}
}

func TestQuarterSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pipelineRepo, forecastRepo := newTestService(ctrl)

	pipelines := []*domain.Pipeline{
		{ID: "PL-1", Status: domain.StatusWon, QGross: 300.10, QNetRev: 150.05},
		{ID: "PL-2", Status: domain.StatusNegotiation, QGross: 60, QNetRev: 30},
		{ID: "PL-3", Status: domain.StatusWon, QGross: 99, QNetRev: 10},
		{ID: "PL-4", Status: "[Q]", QGross: 0, QNetRev: 0},
	}

	pipelineRepo.EXPECT().List(gomock.Any(), quarterFilter(2025, 1)).Return(pipelines, nil)
	forecastRepo.EXPECT().ListByPipelineIDs(gomock.Any(), []string{"PL-1", "PL-2", "PL-3", "PL-4"}).
		Return(map[string][]*domain.MonthlyForecast{
			"PL-1": forecastRows("PL-1", [3]float64{100.05, 100.05, 100}, [3]float64{50.05, 50, 50}),
			"PL-2": forecastRows("PL-2", [3]float64{20, 20, 20}, [3]float64{10, 10, 10}),
			// totais gravados divergem da soma mensal
			"PL-3": forecastRows("PL-3", [3]float64{10, 10, 10}, [3]float64{5, 5, 0}),
		}, nil)

	summary, err := service.QuarterSummary(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 2025, summary.FiscalYear)
	assert.Equal(t, 1, summary.FiscalQuarter)
	assert.Equal(t, 4, summary.PipelineCount)
	assert.Equal(t, 459.10, summary.QGross)
	assert.Equal(t, 190.05, summary.QNetRev)
	// PL-3 com soma divergente e PL-4 sem linhas mensais
	assert.Equal(t, 2, summary.InvariantWarnings)

	require.Len(t, summary.ByStatus, 3)
	assert.Equal(t, &domain.StatusSummary{Status: domain.StatusWon, Count: 2, QGross: 399.10, QNetRev: 160.05}, summary.ByStatus[0])
	assert.Equal(t, domain.StatusNegotiation, summary.ByStatus[1].Status)
	assert.Equal(t, domain.PipelineStatus("[Q]"), summary.ByStatus[2].Status)

	require.Len(t, summary.ByMonth, 3)
	assert.Equal(t, &domain.MonthSummary{Year: 2025, Month: 4, DeliveryDays: 30, GrossRevenue: 130.05, NetRevenue: 65.05}, summary.ByMonth[0])
	assert.Equal(t, 6, summary.ByMonth[2].Month)
	assert.Equal(t, 130.0, summary.ByMonth[2].GrossRevenue)
}

func TestQuarterSummary_ExplicitQuarter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pipelineRepo, forecastRepo := newTestService(ctrl)

	pipelineRepo.EXPECT().List(gomock.Any(), quarterFilter(2024, 4)).Return([]*domain.Pipeline{}, nil)
	forecastRepo.EXPECT().ListByPipelineIDs(gomock.Any(), []string{}).Return(map[string][]*domain.MonthlyForecast{}, nil)

	summary, err := service.QuarterSummary(context.Background(), intP(2024), intP(4))

	require.NoError(t, err)
	assert.Equal(t, 0, summary.PipelineCount)
	assert.Empty(t, summary.ByStatus)
	require.Len(t, summary.ByMonth, 3)
	assert.Equal(t, 2025, summary.ByMonth[0].Year)
	assert.Equal(t, 1, summary.ByMonth[0].Month)
}

func TestQuarterSummary_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pipelineRepo, _ := newTestService(ctrl)
	pipelineRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := service.QuarterSummary(context.Background(), nil, nil)

	assert.ErrorIs(t, err, ErrFetchDashboard)
}

func TestKanban(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, pipelineRepo, _ := newTestService(ctrl)

	pipelines := []*domain.Pipeline{
		{ID: "PL-1", Status: domain.StatusProposal, QGross: 30},
		{ID: "PL-2", Status: domain.StatusConfirmed, QGross: 100.10},
		{ID: "PL-3", Status: domain.StatusProposal, QGross: 45.25},
		{ID: "PL-4", Status: "[Q]", QGross: 10},
	}
	pipelineRepo.EXPECT().List(gomock.Any(), quarterFilter(2025, 1)).Return(pipelines, nil)

	columns, err := service.Kanban(context.Background(), nil, nil)

	require.NoError(t, err)
	require.Len(t, columns, len(domain.StageOrder)+1)

	for i, status := range domain.StageOrder {
		assert.Equal(t, status, columns[i].Status)
		assert.NotNil(t, columns[i].Pipelines)
	}

	assert.Equal(t, 100, columns[0].Progress)
	assert.Len(t, columns[0].Pipelines, 1)

	proposal := columns[4]
	assert.Equal(t, domain.StatusProposal, proposal.Status)
	assert.Equal(t, 30, proposal.Progress)
	assert.Equal(t, 75.25, proposal.QGross)
	assert.Equal(t, []string{"PL-1", "PL-3"}, []string{proposal.Pipelines[0].ID, proposal.Pipelines[1].ID})

	unknown := columns[len(columns)-1]
	assert.Equal(t, domain.PipelineStatus("[Q]"), unknown.Status)
	assert.Equal(t, 50, unknown.Progress)
}
