package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

const (
	activitiesTable = "pipeline_activities"

	// actorSetting é lida pela trigger log_pipeline_status_change
	actorSetting = "app.user_id"
)

type ActivityRepository interface {
	InsertMany(ctx context.Context, q postgres.Queryer, activities []*domain.PipelineActivity) error
	ListByPipelineID(ctx context.Context, pipelineID string) ([]*domain.PipelineActivity, error)
	SetActor(ctx context.Context, q postgres.Queryer, userID *int) error
}

type activityRepository struct {
	conn *postgres.Connection
}

func NewActivityRepository(conn *postgres.Connection) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

func (r *activityRepository) InsertMany(ctx context.Context, q postgres.Queryer, activities []*domain.PipelineActivity) error {
	if len(activities) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(activitiesTable).
		Columns("pipeline_id", "activity_type", "field", "old_value", "new_value", "user_id").
		PlaceholderFormat(squirrel.Dollar)

	for _, a := range activities {
		builder = builder.Values(a.PipelineID, string(a.ActivityType), a.Field, a.OldValue, a.NewValue, a.UserID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao registrar atividades: %w", err)
	}

	return nil
}

// SetActor grava o usuário na configuração local da transação,
// para que as linhas criadas pela trigger de status tenham user_id
func (r *activityRepository) SetActor(ctx context.Context, q postgres.Queryer, userID *int) error {
	if userID == nil {
		return nil
	}

	if _, err := q.ExecContext(ctx, "SELECT set_config($1, $2, true)", actorSetting, strconv.Itoa(*userID)); err != nil {
		return fmt.Errorf("erro ao definir usuário da transação: %w", err)
	}

	return nil
}

func (r *activityRepository) ListByPipelineID(ctx context.Context, pipelineID string) ([]*domain.PipelineActivity, error) {
	query, args, err := squirrel.
		Select("id", "pipeline_id", "activity_type", "field", "old_value", "new_value", "user_id", "created_at").
		From(activitiesTable).
		Where(squirrel.Eq{"pipeline_id": pipelineID}).
		OrderBy("created_at DESC", "id DESC").
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

	activities := make([]*domain.PipelineActivity, 0)
	for rows.Next() {
		var a domain.PipelineActivity
		if err := rows.Scan(
			&a.ID,
			&a.PipelineID,
			&a.ActivityType,
			&a.Field,
			&a.OldValue,
			&a.NewValue,
			&a.UserID,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade: %w", err)
		}
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return activities, nil
}
