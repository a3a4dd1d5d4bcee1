package forecasting

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

// daysPerMonth é a convenção da planilha para a receita diária (sempre 30)
const daysPerMonth = 30

// InvariantTolerance é a diferença aceita entre o total trimestral e a soma dos meses
const InvariantTolerance = 1.0

var (
	hundred   = decimal.NewFromInt(100)
	thousand  = decimal.NewFromInt(1000)
	monthDays = decimal.NewFromInt(daysPerMonth)
)

type Rates struct {
	MaxGross  *float64
	DayGross  *float64
	DayNetRev *float64
}

// DeriveRates calcula max_gross (quando não informado), day_gross e day_net_rev.
// Os valores mantêm precisão total, só a receita é arredondada.
func DeriveRates(maxGross *float64, imp *int64, ecpm *float64, revenueShare *float64) Rates {
	var rates Rates

	switch {
	case maxGross != nil:
		rates.MaxGross = float64Ptr(*maxGross)
	case imp != nil && ecpm != nil:
		derived := decimal.NewFromInt(*imp).Div(thousand).Mul(decimal.NewFromFloat(*ecpm))
		rates.MaxGross = float64Ptr(derived.InexactFloat64())
	default:
		return rates
	}

	dayGross := decimal.NewFromFloat(*rates.MaxGross).Div(monthDays)
	rates.DayGross = float64Ptr(dayGross.InexactFloat64())

	if revenueShare != nil {
		dayNet := dayGross.Mul(decimal.NewFromFloat(*revenueShare)).Div(hundred)
		rates.DayNetRev = float64Ptr(dayNet.InexactFloat64())
	}

	return rates
}

// Input é o snapshot já consolidado (registro salvo + patch) usado no cálculo
type Input struct {
	Status        domain.PipelineStatus
	DayGross      *float64
	DayNetRev     *float64
	StartingDate  *time.Time
	EndDate       *time.Time
	FiscalYear    *int
	FiscalQuarter *int
}

type Result struct {
	ProgressPercent int
	KnownStatus     bool
	FiscalYear      int
	FiscalQuarter   int
	Months          []*domain.MonthlyForecast
	QGross          float64
	QNetRev         float64
}

// Calculate gera as três previsões mensais e os totais do trimestre.
// Cada mês é arredondado em centavos antes da soma, e a soma é arredondada de novo.
func Calculate(in Input, now time.Time) Result {
	fy, fq := ResolveQuarter(in.FiscalYear, in.FiscalQuarter, now)
	progress := ProgressFromStatus(in.Status)
	multiplier := decimal.NewFromInt(int64(progress)).Div(hundred)
	zeroRevenue := IsZeroRevenueStatus(in.Status)

	result := Result{
		ProgressPercent: progress,
		KnownStatus:     IsKnownStatus(in.Status),
		FiscalYear:      fy,
		FiscalQuarter:   fq,
		Months:          make([]*domain.MonthlyForecast, 0, 3),
	}

	qGross, qNet := decimal.Zero, decimal.Zero
	for _, ym := range MonthsOf(fy, fq) {
		days := DeliveryDaysInWindow(in.StartingDate, in.EndDate, ym.Year, ym.Month)

		gross, net := decimal.Zero, decimal.Zero
		if !zeroRevenue {
			gross = monthlyRevenue(in.DayGross, multiplier, days)
			net = monthlyRevenue(in.DayNetRev, multiplier, days)
		}

		qGross = qGross.Add(gross)
		qNet = qNet.Add(net)

		result.Months = append(result.Months, &domain.MonthlyForecast{
			Year:         ym.Year,
			Month:        ym.Month,
			DeliveryDays: days,
			GrossRevenue: gross.InexactFloat64(),
			NetRevenue:   net.InexactFloat64(),
		})
	}

	result.QGross = qGross.Round(2).InexactFloat64()
	result.QNetRev = qNet.Round(2).InexactFloat64()

	return result
}

func monthlyRevenue(dayRate *float64, multiplier decimal.Decimal, days int) decimal.Decimal {
	if dayRate == nil {
		return decimal.Zero
	}

	return decimal.NewFromFloat(*dayRate).
		Mul(multiplier).
		Mul(decimal.NewFromInt(int64(days))).
		Round(2)
}

// Apply recalcula todos os campos derivados do pipeline a partir das entradas atuais
func Apply(p *domain.Pipeline, now time.Time) Result {
	rates := DeriveRates(p.MaxGross, p.Imp, p.ECPM, p.RevenueShare)

	result := Calculate(Input{
		Status:        p.Status,
		DayGross:      rates.DayGross,
		DayNetRev:     rates.DayNetRev,
		StartingDate:  p.StartingDate,
		EndDate:       p.EndDate,
		FiscalYear:    p.FiscalYear,
		FiscalQuarter: p.FiscalQuarter,
	}, now)

	p.ProgressPercent = result.ProgressPercent
	p.MaxGross = rates.MaxGross
	p.DayGross = rates.DayGross
	p.DayNetRev = rates.DayNetRev
	p.FiscalYear = intPtr(result.FiscalYear)
	p.FiscalQuarter = intPtr(result.FiscalQuarter)
	p.QGross = result.QGross
	p.QNetRev = result.QNetRev

	p.MonthlyForecasts = make([]*domain.MonthlyForecast, 0, len(result.Months))
	for _, m := range result.Months {
		forecast := *m
		forecast.PipelineID = p.ID
		p.MonthlyForecasts = append(p.MonthlyForecasts, &forecast)
	}

	return result
}

// VerifyTotals compara os totais do trimestre com a soma das linhas mensais.
// Violações viram avisos, nunca erro.
func VerifyTotals(forecasts []*domain.MonthlyForecast, qGross, qNetRev float64) []string {
	var warnings []string

	if len(forecasts) != 3 {
		warnings = append(warnings, fmt.Sprintf("esperadas 3 previsões mensais, encontradas %d", len(forecasts)))
	}

	sumGross, sumNet := decimal.Zero, decimal.Zero
	for _, f := range forecasts {
		sumGross = sumGross.Add(decimal.NewFromFloat(f.GrossRevenue))
		sumNet = sumNet.Add(decimal.NewFromFloat(f.NetRevenue))
	}

	if diff := math.Abs(sumGross.InexactFloat64() - qGross); diff > InvariantTolerance {
		warnings = append(warnings, fmt.Sprintf("q_gross (%.2f) difere da soma mensal (%.2f)", qGross, sumGross.InexactFloat64()))
	}
	if diff := math.Abs(sumNet.InexactFloat64() - qNetRev); diff > InvariantTolerance {
		warnings = append(warnings, fmt.Sprintf("q_net_rev (%.2f) difere da soma mensal (%.2f)", qNetRev, sumNet.InexactFloat64()))
	}

	return warnings
}

func float64Ptr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}
