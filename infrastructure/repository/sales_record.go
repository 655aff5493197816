package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/stockwise-api/infrastructure/database"
	"github.com/vfg2006/stockwise-api/internal/domain"
)

type SalesRecordRepository interface {
	ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
}

type salesRecordRepository struct {
	conn *database.Connection
}

func NewSalesRecordRepository(conn *database.Connection) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

// ListSalesRecords devolve uma linha por item vendido. O valor da linha é
// price * quantity do item, não o total da venda.
func (r *salesRecordRepository) ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	query, args, err := r.conn.Builder().
		Select("t.id", "t.reference", "t.created_at", "ti.price", "ti.quantity").
		From(transactionsTable + " t").
		Join(transactionItemsTable + " ti ON ti.transaction_id = t.id").
		OrderBy("t.id ASC", "ti.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		var (
			id        int64
			reference *string
			createdAt time.Time
			price     decimal.Decimal
			quantity  int64
		)

		if err := rows.Scan(&id, &reference, &createdAt, &price, &quantity); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}

		orderID := strconv.FormatInt(id, 10)
		if reference != nil && *reference != "" {
			orderID = *reference
		}

		occurredAt := createdAt
		records = append(records, domain.SalesRecord{
			OrderID:    orderID,
			Amount:     price.Mul(decimal.NewFromInt(quantity)),
			Quantity:   quantity,
			OccurredAt: &occurredAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
