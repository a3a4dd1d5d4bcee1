package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

const (
	pipelinesTable = "pipelines"

	uniqueViolationCode = "23505"
)

var pipelineColumns = []string{
	"id", "title", "client_name", "owner_id", "status", "progress_percent",
	"imp", "ecpm", "max_gross", "revenue_share", "day_gross", "day_net_rev",
	"starting_date", "end_date", "fiscal_year", "fiscal_quarter", "q_gross", "q_net_rev",
	"next_action", "next_action_date", "action_memo", "memo", "created_at", "updated_at",
}

type PipelineRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Pipeline, error)
	List(ctx context.Context, filter domain.PipelineFilter) ([]*domain.Pipeline, error)
	Insert(ctx context.Context, q postgres.Queryer, p *domain.Pipeline) error
	Update(ctx context.Context, q postgres.Queryer, p *domain.Pipeline) error
	Delete(ctx context.Context, q postgres.Queryer, id string) (bool, error)
}

type pipelineRepository struct {
	conn *postgres.Connection
}

func NewPipelineRepository(conn *postgres.Connection) PipelineRepository {
	return &pipelineRepository{
		conn: conn,
	}
}

// IsUniqueViolation identifica violação de chave única do Postgres
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}

func (r *pipelineRepository) GetByID(ctx context.Context, id string) (*domain.Pipeline, error) {
	query, args, err := squirrel.
		Select(pipelineColumns...).
		From(pipelinesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	pipeline, err := scanPipeline(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear pipeline: %w", err)
	}

	return pipeline, nil
}

func (r *pipelineRepository) List(ctx context.Context, filter domain.PipelineFilter) ([]*domain.Pipeline, error) {
	builder := squirrel.
		Select(pipelineColumns...).
		From(pipelinesTable).
		OrderBy("fiscal_year DESC", "fiscal_quarter DESC", "updated_at DESC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.FiscalYear != nil {
		builder = builder.Where(squirrel.Eq{"fiscal_year": *filter.FiscalYear})
	}
	if filter.FiscalQuarter != nil {
		builder = builder.Where(squirrel.Eq{"fiscal_quarter": *filter.FiscalQuarter})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		builder = builder.Where(squirrel.Eq{"status": statuses})
	}
	if filter.OwnerID != nil {
		builder = builder.Where(squirrel.Eq{"owner_id": *filter.OwnerID})
	}
	if filter.ClientName != "" {
		builder = builder.Where(squirrel.ILike{"client_name": "%" + filter.ClientName + "%"})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	pipelines := make([]*domain.Pipeline, 0)
	for rows.Next() {
		pipeline, err := scanPipeline(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pipeline: %w", err)
		}
		pipelines = append(pipelines, pipeline)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return pipelines, nil
}

func (r *pipelineRepository) Insert(ctx context.Context, q postgres.Queryer, p *domain.Pipeline) error {
	query, args, err := squirrel.
		Insert(pipelinesTable).
		SetMap(pipelineValues(p)).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir pipeline: %w", err)
	}

	return nil
}

func (r *pipelineRepository) Update(ctx context.Context, q postgres.Queryer, p *domain.Pipeline) error {
	values := pipelineValues(p)
	delete(values, "id")
	values["updated_at"] = squirrel.Expr("NOW()")

	query, args, err := squirrel.
		Update(pipelinesTable).
		SetMap(values).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao atualizar pipeline: %w", err)
	}

	return nil
}

func (r *pipelineRepository) Delete(ctx context.Context, q postgres.Queryer, id string) (bool, error) {
	query, args, err := squirrel.
		Delete(pipelinesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao excluir pipeline: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

func pipelineValues(p *domain.Pipeline) map[string]interface{} {
	return map[string]interface{}{
		"id":               p.ID,
		"title":            p.Title,
		"client_name":      p.ClientName,
		"owner_id":         p.OwnerID,
		"status":           string(p.Status),
		"progress_percent": p.ProgressPercent,
		"imp":              p.Imp,
		"ecpm":             p.ECPM,
		"max_gross":        p.MaxGross,
		"revenue_share":    p.RevenueShare,
		"day_gross":        p.DayGross,
		"day_net_rev":      p.DayNetRev,
		"starting_date":    p.StartingDate,
		"end_date":         p.EndDate,
		"fiscal_year":      p.FiscalYear,
		"fiscal_quarter":   p.FiscalQuarter,
		"q_gross":          p.QGross,
		"q_net_rev":        p.QNetRev,
		"next_action":      p.NextAction,
		"next_action_date": p.NextActionDate,
		"action_memo":      p.ActionMemo,
		"memo":             p.Memo,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPipeline(row rowScanner) (*domain.Pipeline, error) {
	var p domain.Pipeline
	var startingDate, endDate, nextActionDate sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.ClientName,
		&p.OwnerID,
		&p.Status,
		&p.ProgressPercent,
		&p.Imp,
		&p.ECPM,
		&p.MaxGross,
		&p.RevenueShare,
		&p.DayGross,
		&p.DayNetRev,
		&startingDate,
		&endDate,
		&p.FiscalYear,
		&p.FiscalQuarter,
		&p.QGross,
		&p.QNetRev,
		&p.NextAction,
		&nextActionDate,
		&p.ActionMemo,
		&p.Memo,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.StartingDate = nullDate(startingDate)
	p.EndDate = nullDate(endDate)
	p.NextActionDate = nullDate(nextActionDate)

	return &p, nil
}

// nullDate normaliza colunas DATE para meia-noite UTC
func nullDate(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	y, m, d := t.Time.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &date
}
