package forecasting

import "github.com/vfg2006/sales-pipeline-api/internal/domain"

// DefaultProgressPercent é usado para qualquer código fora da tabela
const DefaultProgressPercent = 50

type stage struct {
	progress    int
	zeroRevenue bool
}

var stages = map[domain.PipelineStatus]stage{
	domain.StatusConfirmed:   {progress: 100},
	domain.StatusWon:         {progress: 100},
	domain.StatusAccepted:    {progress: 80},
	domain.StatusNegotiation: {progress: 60},
	domain.StatusProposal:    {progress: 30},
	domain.StatusHearing:     {progress: 10},
	domain.StatusLead:        {progress: 0, zeroRevenue: true},
	domain.StatusLost:        {progress: 0, zeroRevenue: true},
	domain.StatusOnHold:      {progress: 0, zeroRevenue: true},
}

// ProgressFromStatus converte o código de estágio no percentual de progresso.
// Códigos desconhecidos recebem DefaultProgressPercent.
func ProgressFromStatus(status domain.PipelineStatus) int {
	s, ok := stages[status.Normalize()]
	if !ok {
		return DefaultProgressPercent
	}

	return s.progress
}

func IsKnownStatus(status domain.PipelineStatus) bool {
	_, ok := stages[status.Normalize()]
	return ok
}

// IsZeroRevenueStatus indica estágios que nunca entram na previsão de receita
func IsZeroRevenueStatus(status domain.PipelineStatus) bool {
	return stages[status.Normalize()].zeroRevenue
}
