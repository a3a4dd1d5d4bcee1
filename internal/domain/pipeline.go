package domain

import (
	"strings"
	"time"
)

// PipelineStatus é o código de estágio entre colchetes, ex: "[A]"
type PipelineStatus string

const (
	StatusConfirmed   PipelineStatus = "[S]"
	StatusWon         PipelineStatus = "[A]"
	StatusAccepted    PipelineStatus = "[B]"
	StatusNegotiation PipelineStatus = "[C]"
	StatusProposal    PipelineStatus = "[D]"
	StatusHearing     PipelineStatus = "[E]"
	StatusLead        PipelineStatus = "[F]"
	StatusLost        PipelineStatus = "[X]"
	StatusOnHold      PipelineStatus = "[Z]"
)

// StageOrder é a ordem das colunas do kanban
var StageOrder = []PipelineStatus{
	StatusConfirmed,
	StatusWon,
	StatusAccepted,
	StatusNegotiation,
	StatusProposal,
	StatusHearing,
	StatusLead,
	StatusOnHold,
	StatusLost,
}

func (s PipelineStatus) Normalize() PipelineStatus {
	return PipelineStatus(strings.ToUpper(strings.TrimSpace(string(s))))
}

type Pipeline struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	ClientName      string         `json:"client_name"`
	OwnerID         *int           `json:"owner_id"`
	Status          PipelineStatus `json:"status"`
	ProgressPercent int            `json:"progress_percent"`
	Imp             *int64         `json:"imp"`
	ECPM            *float64       `json:"ecpm"`
	MaxGross        *float64       `json:"max_gross"`
	RevenueShare    *float64       `json:"revenue_share"`
	DayGross        *float64       `json:"day_gross"`
	DayNetRev       *float64       `json:"day_net_rev"`
	StartingDate    *time.Time     `json:"starting_date"`
	EndDate         *time.Time     `json:"end_date"`
	FiscalYear      *int           `json:"fiscal_year"`
	FiscalQuarter   *int           `json:"fiscal_quarter"`
	QGross          float64        `json:"q_gross"`
	QNetRev         float64        `json:"q_net_rev"`
	NextAction      *string        `json:"next_action"`
	NextActionDate  *time.Time     `json:"next_action_date"`
	ActionMemo      *string        `json:"action_memo"`
	Memo            *string        `json:"memo"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	MonthlyForecasts []*MonthlyForecast `json:"monthly_forecasts,omitempty"`
	Warnings         []string           `json:"warnings,omitempty"`
}

// FieldValues devolve os campos editáveis indexados pelo nome da coluna,
// usado na comparação de auditoria
func (p *Pipeline) FieldValues() map[string]any {
	return map[string]any{
		"title":            p.Title,
		"client_name":      p.ClientName,
		"owner_id":         p.OwnerID,
		"status":           p.Status,
		"imp":              p.Imp,
		"ecpm":             p.ECPM,
		"max_gross":        p.MaxGross,
		"revenue_share":    p.RevenueShare,
		"starting_date":    p.StartingDate,
		"end_date":         p.EndDate,
		"fiscal_year":      p.FiscalYear,
		"fiscal_quarter":   p.FiscalQuarter,
		"next_action":      p.NextAction,
		"next_action_date": p.NextActionDate,
		"action_memo":      p.ActionMemo,
		"memo":             p.Memo,
	}
}

type PipelineFilter struct {
	FiscalYear    *int
	FiscalQuarter *int
	Statuses      []PipelineStatus
	OwnerID       *int
	ClientName    string
	Limit         uint64
	Offset        uint64
}

// CreatePipelineRequest usa strings para datas ("YYYY-MM-DD")
type CreatePipelineRequest struct {
	Title          string   `json:"title"`
	ClientName     string   `json:"client_name"`
	OwnerID        *int     `json:"owner_id"`
	Status         string   `json:"status"`
	Imp            *int64   `json:"imp"`
	ECPM           *float64 `json:"ecpm"`
	MaxGross       *float64 `json:"max_gross"`
	RevenueShare   *float64 `json:"revenue_share"`
	StartingDate   string   `json:"starting_date"`
	EndDate        *string  `json:"end_date"`
	FiscalYear     *int     `json:"fiscal_year"`
	FiscalQuarter  *int     `json:"fiscal_quarter"`
	NextAction     *string  `json:"next_action"`
	NextActionDate *string  `json:"next_action_date"`
	ActionMemo     *string  `json:"action_memo"`
	Memo           *string  `json:"memo"`
}

// UpdatePipelineRequest é um patch: apenas os campos não nulos são aplicados.
// Datas enviadas como string vazia são removidas.
type UpdatePipelineRequest struct {
	Title          *string  `json:"title"`
	ClientName     *string  `json:"client_name"`
	OwnerID        *int     `json:"owner_id"`
	Status         *string  `json:"status"`
	Imp            *int64   `json:"imp"`
	ECPM           *float64 `json:"ecpm"`
	MaxGross       *float64 `json:"max_gross"`
	RevenueShare   *float64 `json:"revenue_share"`
	StartingDate   *string  `json:"starting_date"`
	EndDate        *string  `json:"end_date"`
	FiscalYear     *int     `json:"fiscal_year"`
	FiscalQuarter  *int     `json:"fiscal_quarter"`
	NextAction     *string  `json:"next_action"`
	NextActionDate *string  `json:"next_action_date"`
	ActionMemo     *string  `json:"action_memo"`
	Memo           *string  `json:"memo"`
}

// ProvidedFields lista os campos presentes no patch
func (r *UpdatePipelineRequest) ProvidedFields() []string {
	fields := make([]string, 0)
	add := func(present bool, name string) {
		if present {
			fields = append(fields, name)
		}
	}

	add(r.Title != nil, "title")
	add(r.ClientName != nil, "client_name")
	add(r.OwnerID != nil, "owner_id")
	add(r.Status != nil, "status")
	add(r.Imp != nil, "imp")
	add(r.ECPM != nil, "ecpm")
	add(r.MaxGross != nil, "max_gross")
	add(r.RevenueShare != nil, "revenue_share")
	add(r.StartingDate != nil, "starting_date")
	add(r.EndDate != nil, "end_date")
	add(r.FiscalYear != nil, "fiscal_year")
	add(r.FiscalQuarter != nil, "fiscal_quarter")
	add(r.NextAction != nil, "next_action")
	add(r.NextActionDate != nil, "next_action_date")
	add(r.ActionMemo != nil, "action_memo")
	add(r.Memo != nil, "memo")

	return fields
}

// CalculationFields são as entradas que disparam a regeneração da previsão mensal
var CalculationFields = map[string]bool{
	"max_gross":      true,
	"imp":            true,
	"ecpm":           true,
	"revenue_share":  true,
	"status":         true,
	"starting_date":  true,
	"end_date":       true,
	"fiscal_year":    true,
	"fiscal_quarter": true,
}

// TouchesCalculation indica se o patch altera alguma entrada do cálculo
func (r *UpdatePipelineRequest) TouchesCalculation() bool {
	for _, field := range r.ProvidedFields() {
		if CalculationFields[field] {
			return true
		}
	}

	return false
}

type RecalculationSummary struct {
	Total     int      `json:"total"`
	Updated   int      `json:"updated"`
	Unchanged int      `json:"unchanged"`
	Failed    int      `json:"failed"`
	Changed   []string `json:"changed,omitempty"`
	DryRun    bool     `json:"dry_run"`
}
