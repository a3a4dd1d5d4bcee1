package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

const (
	monthlyForecastTable = "pipeline_monthly_forecast"
)

type MonthlyForecastRepository interface {
	ListByPipelineIDs(ctx context.Context, pipelineIDs []string) (map[string][]*domain.MonthlyForecast, error)
	ReplaceForPipeline(ctx context.Context, q postgres.Queryer, pipelineID string, forecasts []*domain.MonthlyForecast) error
	DeleteByPipelineID(ctx context.Context, q postgres.Queryer, pipelineID string) error
}

type monthlyForecastRepository struct {
	conn *postgres.Connection
}

func NewMonthlyForecastRepository(conn *postgres.Connection) MonthlyForecastRepository {
	return &monthlyForecastRepository{
		conn: conn,
	}
}

func (r *monthlyForecastRepository) ListByPipelineIDs(ctx context.Context, pipelineIDs []string) (map[string][]*domain.MonthlyForecast, error) {
	result := make(map[string][]*domain.MonthlyForecast, len(pipelineIDs))
	if len(pipelineIDs) == 0 {
		return result, nil
	}

	query, args, err := squirrel.
		Select("pipeline_id", "year", "month", "delivery_days", "gross_revenue", "net_revenue", "created_at").
		From(monthlyForecastTable).
		Where(squirrel.Eq{"pipeline_id": pipelineIDs}).
		OrderBy("pipeline_id ASC", "year ASC", "month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f domain.MonthlyForecast
		if err := rows.Scan(
			&f.PipelineID,
			&f.Year,
			&f.Month,
			&f.DeliveryDays,
			&f.GrossRevenue,
			&f.NetRevenue,
			&f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear previsão mensal: %w", err)
		}
		result[f.PipelineID] = append(result[f.PipelineID], &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

// ReplaceForPipeline apaga as previsões existentes e grava as novas.
// Deve ser chamado dentro da transação que atualiza o pipeline.
func (r *monthlyForecastRepository) ReplaceForPipeline(ctx context.Context, q postgres.Queryer, pipelineID string, forecasts []*domain.MonthlyForecast) error {
	if err := r.DeleteByPipelineID(ctx, q, pipelineID); err != nil {
		return err
	}

	if len(forecasts) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(monthlyForecastTable).
		Columns("pipeline_id", "year", "month", "delivery_days", "gross_revenue", "net_revenue").
		PlaceholderFormat(squirrel.Dollar)

	for _, f := range forecasts {
		builder = builder.Values(pipelineID, f.Year, f.Month, f.DeliveryDays, f.GrossRevenue, f.NetRevenue)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir previsões mensais: %w", err)
	}

	return nil
}

func (r *monthlyForecastRepository) DeleteByPipelineID(ctx context.Context, q postgres.Queryer, pipelineID string) error {
	query, args, err := squirrel.
		Delete(monthlyForecastTable).
		Where(squirrel.Eq{"pipeline_id": pipelineID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao excluir previsões mensais: %w", err)
	}

	return nil
}
