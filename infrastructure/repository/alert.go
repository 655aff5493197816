package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/stockwise-api/infrastructure/database"
	"github.com/vfg2006/stockwise-api/internal/domain"
)

const alertsTable = "alerts"

var alertColumns = []string{"id", "title", "time_label", "severity", "image", "status", "created_at"}

type AlertRepository interface {
	CreateAlert(ctx context.Context, alert *domain.SecurityAlert) (*domain.SecurityAlert, error)
	ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]domain.SecurityAlert, error)
	GetAlertByID(ctx context.Context, id int64) (*domain.SecurityAlert, error)
	UpdateAlertStatus(ctx context.Context, id int64, status domain.AlertStatus) (bool, error)
	PruneAlerts(ctx context.Context, keep int) (int64, error)
}

type alertRepository struct {
	conn *database.Connection
}

func NewAlertRepository(conn *database.Connection) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

func (r *alertRepository) CreateAlert(ctx context.Context, alert *domain.SecurityAlert) (*domain.SecurityAlert, error) {
	query, args, err := r.conn.Builder().
		Insert(alertsTable).
		Columns("title", "time_label", "severity", "image", "status", "created_at").
		Values(alert.Title, alert.Time, string(alert.Severity), alert.Image, string(alert.Status), alert.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&alert.ID); err != nil {
		return nil, fmt.Errorf("erro ao gravar alerta: %w", err)
	}

	return alert, nil
}

// ListAlerts devolve os alertas mais recentes primeiro. Page começa em 1.
func (r *alertRepository) ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]domain.SecurityAlert, error) {
	builder := r.conn.Builder().
		Select(alertColumns...).
		From(alertsTable).
		OrderBy("id DESC")

	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": string(filter.Status)})
	}

	if filter.Severity != "" {
		builder = builder.Where(squirrel.Eq{"severity": string(filter.Severity)})
	}

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		builder = builder.
			Limit(uint64(filter.Limit)).
			Offset(uint64((page - 1) * filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar alertas: %w", err)
	}
	defer rows.Close()

	alerts := make([]domain.SecurityAlert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear alerta: %w", err)
		}
		alerts = append(alerts, *alert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return alerts, nil
}

func (r *alertRepository) GetAlertByID(ctx context.Context, id int64) (*domain.SecurityAlert, error) {
	query, args, err := r.conn.Builder().
		Select(alertColumns...).
		From(alertsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	alert, err := scanAlert(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar alerta %d: %w", id, err)
	}

	return alert, nil
}

// UpdateAlertStatus devolve false quando o alerta não existe.
func (r *alertRepository) UpdateAlertStatus(ctx context.Context, id int64, status domain.AlertStatus) (bool, error) {
	query, args, err := r.conn.Builder().
		Update(alertsTable).
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar alerta %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

// PruneAlerts mantém apenas os keep alertas mais recentes.
func (r *alertRepository) PruneAlerts(ctx context.Context, keep int) (int64, error) {
	query, args, err := r.conn.Builder().
		Delete(alertsTable).
		Where(squirrel.Expr("id NOT IN (SELECT id FROM alerts ORDER BY id DESC LIMIT ?)", keep)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover alertas antigos: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanAlert(row scanner) (*domain.SecurityAlert, error) {
	var alert domain.SecurityAlert
	var severity, status string

	if err := row.Scan(&alert.ID, &alert.Title, &alert.Time, &severity, &alert.Image, &status, &alert.CreatedAt); err != nil {
		return nil, err
	}

	alert.Severity = domain.AlertSeverity(severity)
	alert.Status = domain.AlertStatus(status)

	return &alert, nil
}
