package domain

import "time"

// MonthlyForecast é uma das três linhas mensais de previsão de um pipeline
type MonthlyForecast struct {
	PipelineID   string     `json:"pipeline_id,omitempty"`
	Year         int        `json:"year"`
	Month        int        `json:"month"`
	DeliveryDays int        `json:"delivery_days"`
	GrossRevenue float64    `json:"gross_revenue"`
	NetRevenue   float64    `json:"net_revenue"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// ForecastPreviewRequest calcula a previsão sem persistir nada
type ForecastPreviewRequest struct {
	Status        string   `json:"status"`
	Imp           *int64   `json:"imp"`
	ECPM          *float64 `json:"ecpm"`
	MaxGross      *float64 `json:"max_gross"`
	RevenueShare  *float64 `json:"revenue_share"`
	StartingDate  *string  `json:"starting_date"`
	EndDate       *string  `json:"end_date"`
	FiscalYear    *int     `json:"fiscal_year"`
	FiscalQuarter *int     `json:"fiscal_quarter"`
}

type ForecastPreview struct {
	Status           PipelineStatus     `json:"status"`
	ProgressPercent  int                `json:"progress_percent"`
	KnownStatus      bool               `json:"known_status"`
	MaxGross         *float64           `json:"max_gross"`
	DayGross         *float64           `json:"day_gross"`
	DayNetRev        *float64           `json:"day_net_rev"`
	FiscalYear       int                `json:"fiscal_year"`
	FiscalQuarter    int                `json:"fiscal_quarter"`
	MonthlyForecasts []*MonthlyForecast `json:"monthly_forecasts"`
	QGross           float64            `json:"q_gross"`
	QNetRev          float64            `json:"q_net_rev"`
}
