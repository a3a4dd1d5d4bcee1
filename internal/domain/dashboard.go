package domain

type StatusSummary struct {
	Status  PipelineStatus `json:"status"`
	Count   int            `json:"count"`
	QGross  float64        `json:"q_gross"`
	QNetRev float64        `json:"q_net_rev"`
}

type MonthSummary struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	DeliveryDays int     `json:"delivery_days"`
	GrossRevenue float64 `json:"gross_revenue"`
	NetRevenue   float64 `json:"net_revenue"`
}

type QuarterSummary struct {
	FiscalYear        int              `json:"fiscal_year"`
	FiscalQuarter     int              `json:"fiscal_quarter"`
	PipelineCount     int              `json:"pipeline_count"`
	QGross            float64          `json:"q_gross"`
	QNetRev           float64          `json:"q_net_rev"`
	ByStatus          []*StatusSummary `json:"by_status"`
	ByMonth           []*MonthSummary  `json:"by_month"`
	InvariantWarnings int              `json:"invariant_warnings"`
}

type KanbanColumn struct {
	Status    PipelineStatus `json:"status"`
	Progress  int            `json:"progress_percent"`
	QGross    float64        `json:"q_gross"`
	Pipelines []*Pipeline    `json:"pipelines"`
}
