package auditing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestNormalize(t *testing.T) {
	date := time.Date(2025, time.April, 15, 18, 0, 0, 0, time.UTC)
	var nilFloat *float64

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, ""},
		{"ponteiro nulo", nilFloat, ""},
		{"string com espaços", "  Acme  ", "Acme"},
		{"ponteiro de string", stringPtr("ligar"), "ligar"},
		{"float inteiro", 100.0, "100"},
		{"ponteiro de float", floatPtr(12.5), "12.5"},
		{"int64", int64(1500000), "1500000"},
		{"data", &date, "2025-04-15"},
		{"status", domain.PipelineStatus(" [a]"), "[A]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.value))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, domain.ActivityStatusChange, Classify("status"))
	assert.Equal(t, domain.ActivityActionUpdate, Classify("next_action"))
	assert.Equal(t, domain.ActivityActionUpdate, Classify("next_action_date"))
	assert.Equal(t, domain.ActivityActionUpdate, Classify("action_memo"))
	assert.Equal(t, domain.ActivityForecastUpdate, Classify("max_gross"))
	assert.Equal(t, domain.ActivityForecastUpdate, Classify("imp"))
	assert.Equal(t, domain.ActivityForecastUpdate, Classify("ecpm"))
	assert.Equal(t, domain.ActivityForecastUpdate, Classify("revenue_share"))
	assert.Equal(t, domain.ActivityFieldUpdate, Classify("title"))
	assert.Equal(t, domain.ActivityFieldUpdate, Classify("starting_date"))
}

func TestDetectChanges(t *testing.T) {
	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	newStart := time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)

	old := map[string]any{
		"title":         "Campanha Q1",
		"status":        domain.StatusProposal,
		"max_gross":     floatPtr(3000),
		"next_action":   stringPtr("enviar proposta"),
		"starting_date": &start,
		"memo":          nil,
	}

	tests := []struct {
		name      string
		byTrigger bool
		newFields map[string]any
		expected  []domain.FieldChange
	}{
		{
			name:      "sem alterações",
			newFields: map[string]any{"title": " Campanha Q1 ", "max_gross": floatPtr(3000.0)},
			expected:  []domain.FieldChange{},
		},
		{
			name:      "classifica cada campo e ordena por nome",
			byTrigger: false,
			newFields: map[string]any{
				"title":         "Campanha Q1 revisada",
				"status":        domain.StatusAccepted,
				"max_gross":     floatPtr(4500),
				"next_action":   stringPtr("assinar contrato"),
				"starting_date": &newStart,
			},
			expected: []domain.FieldChange{
				{Field: "max_gross", ActivityType: domain.ActivityForecastUpdate, OldValue: "3000", NewValue: "4500"},
				{Field: "next_action", ActivityType: domain.ActivityActionUpdate, OldValue: "enviar proposta", NewValue: "assinar contrato"},
				{Field: "starting_date", ActivityType: domain.ActivityFieldUpdate, OldValue: "2025-04-01", NewValue: "2025-04-15"},
				{Field: "status", ActivityType: domain.ActivityStatusChange, OldValue: "[D]", NewValue: "[B]"},
				{Field: "title", ActivityType: domain.ActivityFieldUpdate, OldValue: "Campanha Q1", NewValue: "Campanha Q1 revisada"},
			},
		},
		{
			name:      "status ignorado quando a trigger já registra",
			byTrigger: true,
			newFields: map[string]any{"status": domain.StatusAccepted, "memo": stringPtr("cliente novo")},
			expected: []domain.FieldChange{
				{Field: "memo", ActivityType: domain.ActivityFieldUpdate, OldValue: "", NewValue: "cliente novo"},
			},
		},
		{
			name:      "campo removido",
			newFields: map[string]any{"next_action": (*string)(nil)},
			expected: []domain.FieldChange{
				{Field: "next_action", ActivityType: domain.ActivityActionUpdate, OldValue: "enviar proposta", NewValue: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewDetector(tt.byTrigger)
			assert.Equal(t, tt.expected, detector.DetectChanges(old, tt.newFields))
		})
	}
}

func TestActivities(t *testing.T) {
	userID := 7
	changes := []domain.FieldChange{
		{Field: "title", ActivityType: domain.ActivityFieldUpdate, OldValue: "a", NewValue: "b"},
		{Field: "ecpm", ActivityType: domain.ActivityForecastUpdate, OldValue: "1", NewValue: "2"},
	}

	activities := Activities("PL-1", &userID, changes)

	require.Len(t, activities, 2)
	assert.Equal(t, "PL-1", activities[0].PipelineID)
	assert.Equal(t, "title", *activities[0].Field)
	assert.Equal(t, "b", *activities[0].NewValue)
	assert.Equal(t, domain.ActivityForecastUpdate, activities[1].ActivityType)
	assert.Equal(t, "ecpm", *activities[1].Field)
	assert.Equal(t, &userID, activities[1].UserID)
}
