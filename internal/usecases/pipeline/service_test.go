package pipeline

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repoMocks "github.com/vfg2006/sales-pipeline-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/auditing"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/pipeline/mocks"
	"github.com/vfg2006/sales-pipeline-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)

type fakeTransactor struct {
	err error
}

func (f fakeTransactor) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(nil)
}

type serviceMocks struct {
	pipelines  *repoMocks.MockPipelineRepository
	forecasts  *repoMocks.MockMonthlyForecastRepository
	activities *repoMocks.MockActivityRepository
	publisher  *mocks.MockSheetsPublisher
}

func newTestService(ctrl *gomock.Controller, tx fakeTransactor) (*Service, serviceMocks) {
	m := serviceMocks{
		pipelines:  repoMocks.NewMockPipelineRepository(ctrl),
		forecasts:  repoMocks.NewMockMonthlyForecastRepository(ctrl),
		activities: repoMocks.NewMockActivityRepository(ctrl),
		publisher:  mocks.NewMockSheetsPublisher(ctrl),
	}

	s := &Service{
		pipelineRepository: m.pipelines,
		forecastRepository: m.forecasts,
		activityRepository: m.activities,
		transactor:         tx,
		publisher:          m.publisher,
		detector:           auditing.NewDetector(true),
		now:                func() time.Time { return fixedNow },
	}

	return s, m
}

func stringP(s string) *string {
	return &s
}

func floatP(f float64) *float64 {
	return &f
}

func intP(i int) *int {
	return &i
}

func int64P(i int64) *int64 {
	return &i
}

func dateP(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// storedPipeline devolve um pipeline salvo com campos derivados consistentes
func storedPipeline() (*domain.Pipeline, []*domain.MonthlyForecast) {
	p := &domain.Pipeline{
		ID:            "PL-abc",
		Title:         "Campanha Q1",
		ClientName:    "Acme",
		OwnerID:       intP(3),
		Status:        domain.StatusWon,
		MaxGross:      floatP(3000),
		RevenueShare:  floatP(50),
		StartingDate:  dateP(2025, time.April, 1),
		FiscalYear:    intP(2025),
		FiscalQuarter: intP(1),
		NextAction:    stringP("enviar contrato"),
	}
	forecasting.Apply(p, fixedNow)

	stored := p.MonthlyForecasts
	p.MonthlyForecasts = nil

	return p, stored
}

func assertPipelineError(t *testing.T, err error, sentinel error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)

	var pipelineErr *PipelineError
	require.True(t, errors.As(err, &pipelineErr))
	assert.Equal(t, code, pipelineErr.Code)
}

func TestCreate(t *testing.T) {
	actor := &domain.Claims{UserID: 7}

	validRequest := func() *domain.CreatePipelineRequest {
		return &domain.CreatePipelineRequest{
			Title:         "Campanha Q1",
			ClientName:    "Acme",
			Status:        "[A]",
			MaxGross:      floatP(3000),
			RevenueShare:  floatP(50),
			StartingDate:  "2025-04-01",
			FiscalYear:    intP(2025),
			FiscalQuarter: intP(1),
		}
	}

	tests := []struct {
		name          string
		request       func() *domain.CreatePipelineRequest
		tx            fakeTransactor
		mockSetup     func(m serviceMocks)
		expectedErr   error
		expectedCode  string
		checkPipeline func(t *testing.T, p *domain.Pipeline)
	}{
		{
			name:    "cria pipeline com previsão calculada",
			request: validRequest,
			mockSetup: func(m serviceMocks) {
				m.pipelines.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ interface{}, p *domain.Pipeline) error {
						assert.Equal(t, 100, p.ProgressPercent)
						assert.Equal(t, 100.0, *p.DayGross)
						assert.Equal(t, 50.0, *p.DayNetRev)
						return nil
					})
				m.forecasts.EXPECT().ReplaceForPipeline(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Len(3)).Return(nil)
				m.activities.EXPECT().InsertMany(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ interface{}, activities []*domain.PipelineActivity) error {
						require.Len(t, activities, 1)
						assert.Equal(t, domain.ActivityCreated, activities[0].ActivityType)
						assert.Equal(t, 7, *activities[0].UserID)
						return nil
					})
				m.publisher.EXPECT().Enqueue(gomock.Any())
			},
			checkPipeline: func(t *testing.T, p *domain.Pipeline) {
				assert.True(t, strings.HasPrefix(p.ID, "PL-"))
				assert.Equal(t, 7, *p.OwnerID)
				assert.Equal(t, 9100.0, p.QGross)
				assert.Equal(t, 4550.0, p.QNetRev)
				require.Len(t, p.MonthlyForecasts, 3)
				assert.Equal(t, p.ID, p.MonthlyForecasts[0].PipelineID)
				assert.Empty(t, p.Warnings)
			},
		},
		{
			name: "status desconhecido gera aviso",
			request: func() *domain.CreatePipelineRequest {
				req := validRequest()
				req.Status = "[Q]"
				return req
			},
			mockSetup: func(m serviceMocks) {
				m.pipelines.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.forecasts.EXPECT().ReplaceForPipeline(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.activities.EXPECT().InsertMany(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.publisher.EXPECT().Enqueue(gomock.Any())
			},
			checkPipeline: func(t *testing.T, p *domain.Pipeline) {
				assert.Equal(t, forecasting.DefaultProgressPercent, p.ProgressPercent)
				assert.Equal(t, 4550.0, p.QGross)
				require.Len(t, p.Warnings, 1)
				assert.Contains(t, p.Warnings[0], "[Q]")
			},
		},
		{
			name: "campos obrigatórios ausentes",
			request: func() *domain.CreatePipelineRequest {
				return &domain.CreatePipelineRequest{Status: "[A]"}
			},
			mockSetup:    func(m serviceMocks) {},
			expectedErr:  ErrInvalidPipeline,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name: "revenue share fora do intervalo",
			request: func() *domain.CreatePipelineRequest {
				req := validRequest()
				req.RevenueShare = floatP(120)
				return req
			},
			mockSetup:    func(m serviceMocks) {},
			expectedErr:  ErrInvalidPipeline,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name: "data em formato inválido",
			request: func() *domain.CreatePipelineRequest {
				req := validRequest()
				req.StartingDate = "01/04/2025"
				return req
			},
			mockSetup:    func(m serviceMocks) {},
			expectedErr:  ErrInvalidDate,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:    "erro no banco não publica na planilha",
			request: validRequest,
			tx:      fakeTransactor{err: errors.New("connection refused")},
			mockSetup: func(m serviceMocks) {
				m.publisher.EXPECT().Enqueue(gomock.Any()).Times(0)
			},
			expectedErr:  ErrSavePipeline,
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, tt.tx)
			tt.mockSetup(m)

			p, err := service.Create(context.Background(), tt.request(), actor)
			if tt.expectedErr != nil {
				assertPipelineError(t, err, tt.expectedErr, tt.expectedCode)
				assert.Nil(t, p)
				return
			}

			require.NoError(t, err)
			tt.checkPipeline(t, p)
		})
	}
}

func TestUpdate(t *testing.T) {
	actor := &domain.Claims{UserID: 3}

	tests := []struct {
		name          string
		request       *domain.UpdatePipelineRequest
		mockSetup     func(m serviceMocks, existing *domain.Pipeline, stored []*domain.MonthlyForecast)
		expectedErr   error
		expectedCode  string
		checkPipeline func(t *testing.T, p *domain.Pipeline)
	}{
		{
			name:    "mudança de status regenera previsões",
			request: &domain.UpdatePipelineRequest{Status: stringP("[C]")},
			mockSetup: func(m serviceMocks, existing *domain.Pipeline, _ []*domain.MonthlyForecast) {
				m.pipelines.EXPECT().GetByID(gomock.Any(), "PL-abc").Return(existing, nil)
				// status é registrado pela trigger do banco com o usuário da transação
				gomock.InOrder(
					m.activities.EXPECT().SetActor(gomock.Any(), gomock.Any(), intP(3)).Return(nil),
					m.pipelines.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
				)
				m.forecasts.EXPECT().ReplaceForPipeline(gomock.Any(), gomock.Any(), "PL-abc", gomock.Len(3)).Return(nil)
				m.activities.EXPECT().InsertMany(gomock.Any(), gomock.Any(), gomock.Len(0)).Return(nil)
				m.publisher.EXPECT().Enqueue(gomock.Any())
			},
			checkPipeline: func(t *testing.T, p *domain.Pipeline) {
				assert.Equal(t, domain.StatusNegotiation, p.Status)
				assert.Equal(t, 60, p.ProgressPercent)
				assert.Equal(t, 5460.0, p.QGross)
				assert.Equal(t, 2730.0, p.QNetRev)
				assert.Equal(t, 1800.0, p.MonthlyForecasts[0].GrossRevenue)
			},
		},
		{
			name:    "campo comum não recalcula",
			request: &domain.UpdatePipelineRequest{Memo: stringP("cliente pediu desconto"), NextAction: stringP("enviar contrato")},
			mockSetup: func(m serviceMocks, existing *domain.Pipeline, stored []*domain.MonthlyForecast) {
				m.pipelines.EXPECT().GetByID(gomock.Any(), "PL-abc").Return(existing, nil)
				m.pipelines.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.forecasts.EXPECT().ReplaceForPipeline(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				m.activities.EXPECT().InsertMany(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ interface{}, activities []*domain.PipelineActivity) error {
						require.Len(t, activities, 1)
						assert.Equal(t, "memo", *activities[0].Field)
						assert.Equal(t, domain.ActivityFieldUpdate, activities[0].ActivityType)
						assert.Equal(t, "", *activities[0].OldValue)
						assert.Equal(t, 3, *activities[0].UserID)
						return nil
					})
				m.forecasts.EXPECT().ListByPipelineIDs(gomock.Any(), []string{"PL-abc"}).
					Return(map[string][]*domain.MonthlyForecast{"PL-abc": stored}, nil)
				m.publisher.EXPECT().Enqueue(gomock.Any())
			},
			checkPipeline: func(t *testing.T, p *domain.Pipeline) {
				assert.Equal(t, "cliente pediu desconto", *p.Memo)
				assert.Equal(t, 9100.0, p.QGross)
				assert.Len(t, p.MonthlyForecasts, 3)
				assert.Empty(t, p.Warnings)
			},
		},
		{
			name:    "novo ecpm volta a derivar max_gross",
			request: &domain.UpdatePipelineRequest{Imp: int64P(1_000_000), ECPM: floatP(6)},
			mockSetup: func(m serviceMocks, existing *domain.Pipeline, _ []*domain.MonthlyForecast) {
				m.pipelines.EXPECT().GetByID(gomock.Any(), "PL-abc").Return(existing, nil)
				m.pipelines.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.forecasts.EXPECT().ReplaceForPipeline(gomock.Any(), gomock.Any(), "PL-abc", gomock.Any()).Return(nil)
				m.activities.EXPECT().InsertMany(gomock.Any(), gomock.Any(), gomock.Len(2)).Return(nil)
				m.publisher.EXPECT().Enqueue(gomock.Any())
			},
			checkPipeline: func(t *testing.T, p *domain.Pipeline) {
				assert.Equal(t, 6000.0, *p.MaxGross)
				assert.Equal(t, 200.0, *p.DayGross)
				assert.Equal(t, 18200.0, p.QGross)
			},
		},
		{
			name:    "pipeline inexistente",
			request: &domain.UpdatePipelineRequest{Memo: stringP("x")},
			mockSetup: func(m serviceMocks, _ *domain.Pipeline, _ []*domain.MonthlyForecast) {
				m.pipelines.EXPECT().GetByID(gomock.Any(), "PL-abc").Return(nil, nil)
			},
			expectedErr:  ErrPipelineNotFound,
			expectedCode: apiErrors.ErrPipelineNotFound,
		},
		{
			name:    "patch inválido",
			request: &domain.UpdatePipelineRequest{Title: stringP("  "), FiscalQuarter: intP(5)},
			mockSetup: func(m serviceMocks, existing *domain.Pipeline, _ []*domain.MonthlyForecast) {
				m.pipelines.EXPECT().GetByID(gomock.Any(), "PL-abc").Return(existing, nil)
			},
			expectedErr:  ErrInvalidPipeline,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:    "falha ao definir o usuário da transação",
			request: &domain.UpdatePipelineRequest{Status: stringP("[C]")},
			mockSetup: func(m serviceMocks, existing *domain.Pipeline, _ []*domain.MonthlyForecast) {
				m.pipelines.EXPECT().GetByID(gomock.Any(), "PL-abc").Return(existing, nil)
				m.activities.EXPECT().SetActor(gomock.Any(), gomock.Any(), intP(3)).Return(errors.New("conexão perdida"))
				m.pipelines.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedErr:  ErrSavePipeline,
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
		{
			name:    "pipeline removido durante a atualização",
			request: &domain.UpdatePipelineRequest{Memo: stringP("x")},
			mockSetup: func(m serviceMocks, existing *domain.Pipeline, _ []*domain.MonthlyForecast) {
				m.pipelines.EXPECT().GetByID(gomock.Any(), "PL-abc").Return(existing, nil)
				m.pipelines.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			expectedErr:  ErrPipelineNotFound,
			expectedCode: apiErrors.ErrPipelineNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, fakeTransactor{})
			existing, stored := storedPipeline()
			tt.mockSetup(m, existing, stored)

			p, err := service.Update(context.Background(), "PL-abc", tt.request, actor)
			if tt.expectedErr != nil {
				assertPipelineError(t, err, tt.expectedErr, tt.expectedCode)
				return
			}

			require.NoError(t, err)
			tt.checkPipeline(t, p)
			// o registro original não é alterado pelo merge
			assert.Equal(t, domain.StatusWon, existing.Status)
		})
	}
}

func TestGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, fakeTransactor{})
	existing, stored := storedPipeline()
	existing.QGross = 9500

	m.pipelines.EXPECT().GetByID(gomock.Any(), "PL-abc").Return(existing, nil)
	m.forecasts.EXPECT().ListByPipelineIDs(gomock.Any(), []string{"PL-abc"}).
		Return(map[string][]*domain.MonthlyForecast{"PL-abc": stored}, nil)

	p, err := service.Get(context.Background(), "PL-abc")

	require.NoError(t, err)
	assert.Len(t, p.MonthlyForecasts, 3)
	require.Len(t, p.Warnings, 1)
	assert.Contains(t, p.Warnings[0], "q_gross")
}

func TestGet_DatabaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, fakeTransactor{})
	m.pipelines.EXPECT().GetByID(gomock.Any(), "PL-abc").Return(nil, errors.New("timeout"))

	_, err := service.Get(context.Background(), "PL-abc")

	assertPipelineError(t, err, ErrFetchPipelines, apiErrors.ErrDatabaseOperation)
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, fakeTransactor{})
	first, stored := storedPipeline()
	second := &domain.Pipeline{ID: "PL-def", Status: domain.StatusLost}
	filter := domain.PipelineFilter{FiscalYear: intP(2025), FiscalQuarter: intP(1)}

	m.pipelines.EXPECT().List(gomock.Any(), filter).Return([]*domain.Pipeline{first, second}, nil)
	m.forecasts.EXPECT().ListByPipelineIDs(gomock.Any(), []string{"PL-abc", "PL-def"}).
		Return(map[string][]*domain.MonthlyForecast{"PL-abc": stored}, nil)

	pipelines, err := service.List(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, pipelines, 2)
	assert.Len(t, pipelines[0].MonthlyForecasts, 3)
	assert.Empty(t, pipelines[0].Warnings)
	// sem linhas mensais a invariante é sinalizada
	assert.Len(t, pipelines[1].Warnings, 1)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name         string
		tx           fakeTransactor
		mockSetup    func(m serviceMocks)
		expectedErr  error
		expectedCode string
	}{
		{
			name: "remove previsões e pipeline",
			mockSetup: func(m serviceMocks) {
				gomock.InOrder(
					m.forecasts.EXPECT().DeleteByPipelineID(gomock.Any(), gomock.Any(), "PL-abc").Return(nil),
					m.pipelines.EXPECT().Delete(gomock.Any(), gomock.Any(), "PL-abc").Return(true, nil),
				)
			},
		},
		{
			name: "pipeline inexistente",
			mockSetup: func(m serviceMocks) {
				m.forecasts.EXPECT().DeleteByPipelineID(gomock.Any(), gomock.Any(), "PL-abc").Return(nil)
				m.pipelines.EXPECT().Delete(gomock.Any(), gomock.Any(), "PL-abc").Return(false, nil)
			},
			expectedErr:  ErrPipelineNotFound,
			expectedCode: apiErrors.ErrPipelineNotFound,
		},
		{
			name:         "erro na transação",
			tx:           fakeTransactor{err: errors.New("deadlock")},
			mockSetup:    func(m serviceMocks) {},
			expectedErr:  ErrDatabaseOperation,
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, tt.tx)
			tt.mockSetup(m)

			err := service.Delete(context.Background(), "PL-abc")
			if tt.expectedErr != nil {
				assertPipelineError(t, err, tt.expectedErr, tt.expectedCode)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRecalculate(t *testing.T) {
	t.Run("sem mudanças não grava", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl, fakeTransactor{})
		existing, stored := storedPipeline()

		m.pipelines.EXPECT().GetByID(gomock.Any(), "PL-abc").Return(existing, nil)
		m.forecasts.EXPECT().ListByPipelineIDs(gomock.Any(), []string{"PL-abc"}).
			Return(map[string][]*domain.MonthlyForecast{"PL-abc": stored}, nil)

		p, changed, err := service.Recalculate(context.Background(), "PL-abc")

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 9100.0, p.QGross)
	})

	t.Run("totais divergentes são regravados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl, fakeTransactor{})
		existing, stored := storedPipeline()
		existing.QGross = 1
		stored[1].GrossRevenue = 0

		m.pipelines.EXPECT().GetByID(gomock.Any(), "PL-abc").Return(existing, nil)
		m.forecasts.EXPECT().ListByPipelineIDs(gomock.Any(), []string{"PL-abc"}).
			Return(map[string][]*domain.MonthlyForecast{"PL-abc": stored}, nil)
		m.pipelines.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.forecasts.EXPECT().ReplaceForPipeline(gomock.Any(), gomock.Any(), "PL-abc", gomock.Len(3)).Return(nil)
		m.activities.EXPECT().InsertMany(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, activities []*domain.PipelineActivity) error {
				require.Len(t, activities, 1)
				assert.Equal(t, domain.ActivityRecalculated, activities[0].ActivityType)
				assert.Equal(t, "1", *activities[0].OldValue)
				assert.Equal(t, "9100", *activities[0].NewValue)
				return nil
			})
		m.publisher.EXPECT().Enqueue(gomock.Any())

		p, changed, err := service.Recalculate(context.Background(), "PL-abc")

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 3100.0, p.MonthlyForecasts[1].GrossRevenue)
	})
}

func TestRecalculateAll_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, fakeTransactor{})
	unchanged, unchangedStored := storedPipeline()
	drifted, driftedStored := storedPipeline()
	drifted.ID = "PL-def"
	drifted.ProgressPercent = 80

	m.pipelines.EXPECT().List(gomock.Any(), domain.PipelineFilter{}).Return([]*domain.Pipeline{unchanged, drifted}, nil)
	m.forecasts.EXPECT().ListByPipelineIDs(gomock.Any(), []string{"PL-abc", "PL-def"}).
		Return(map[string][]*domain.MonthlyForecast{"PL-abc": unchangedStored, "PL-def": driftedStored}, nil)

	summary, err := service.RecalculateAll(context.Background(), domain.PipelineFilter{}, true)

	require.NoError(t, err)
	assert.Equal(t, &domain.RecalculationSummary{
		Total:     2,
		Updated:   1,
		Unchanged: 1,
		Changed:   []string{"PL-def"},
		DryRun:    true,
	}, summary)
}

func TestActivities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, fakeTransactor{})
	existing, _ := storedPipeline()
	expected := []*domain.PipelineActivity{{ID: 1, PipelineID: "PL-abc", ActivityType: domain.ActivityStatusChange}}

	m.pipelines.EXPECT().GetByID(gomock.Any(), "PL-abc").Return(existing, nil)
	m.activities.EXPECT().ListByPipelineID(gomock.Any(), "PL-abc").Return(expected, nil)

	activities, err := service.Activities(context.Background(), "PL-abc")

	require.NoError(t, err)
	assert.Equal(t, expected, activities)
}

func TestPreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl, fakeTransactor{})

	preview, err := service.Preview(context.Background(), &domain.ForecastPreviewRequest{
		Status:       " [b] ",
		Imp:          int64P(1_500_000),
		ECPM:         floatP(2),
		RevenueShare: floatP(40),
		StartingDate: stringP("2025-05-17"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, preview.Status)
	assert.Equal(t, 80, preview.ProgressPercent)
	assert.True(t, preview.KnownStatus)
	assert.Equal(t, 3000.0, *preview.MaxGross)
	assert.Equal(t, 2025, preview.FiscalYear)
	assert.Equal(t, 1, preview.FiscalQuarter)
	// 0 + 15 + 30 dias a 100 x 0.8
	assert.Equal(t, 3600.0, preview.QGross)
	assert.Equal(t, 1440.0, preview.QNetRev)

	_, err = service.Preview(context.Background(), &domain.ForecastPreviewRequest{StartingDate: stringP("amanhã")})
	assertPipelineError(t, err, ErrInvalidDate, apiErrors.ErrInvalidFormat)
}
