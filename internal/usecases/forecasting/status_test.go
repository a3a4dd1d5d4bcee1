package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

func TestProgressFromStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.PipelineStatus
		expected int
		known    bool
		zero     bool
	}{
		{"confirmado", domain.StatusConfirmed, 100, true, false},
		{"ganho", domain.StatusWon, 100, true, false},
		{"aceito", domain.StatusAccepted, 80, true, false},
		{"negociação", domain.StatusNegotiation, 60, true, false},
		{"proposta", domain.StatusProposal, 30, true, false},
		{"hearing", domain.StatusHearing, 10, true, false},
		{"lead", domain.StatusLead, 0, true, true},
		{"perdido", domain.StatusLost, 0, true, true},
		{"em espera", domain.StatusOnHold, 0, true, true},
		{"código desconhecido", "[Q]", DefaultProgressPercent, false, false},
		{"vazio", "", DefaultProgressPercent, false, false},
		{"com espaços e minúsculo", " [b] ", 80, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProgressFromStatus(tt.status))
			assert.Equal(t, tt.known, IsKnownStatus(tt.status))
			assert.Equal(t, tt.zero, IsZeroRevenueStatus(tt.status))
		})
	}
}

func TestStageOrderCoversEveryStatus(t *testing.T) {
	assert.Len(t, domain.StageOrder, len(stages))
	for _, status := range domain.StageOrder {
		assert.True(t, IsKnownStatus(status), string(status))
	}
}
