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

const purchaseOrdersTable = "purchase_orders"

var purchaseOrderColumns = []string{"id", "supplier", "item_count", "total_cost", "status", "created_at"}

type PurchaseOrderRepository interface {
	ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error)
	GetPurchaseOrderByID(ctx context.Context, id string) (*domain.PurchaseOrder, error)
	CreatePurchaseOrder(ctx context.Context, order *domain.PurchaseOrder) error
	UpdatePurchaseOrderStatus(ctx context.Context, id string, from, to domain.PurchaseOrderStatus) (bool, error)
}

type purchaseOrderRepository struct {
	conn *database.Connection
}

func NewPurchaseOrderRepository(conn *database.Connection) PurchaseOrderRepository {
	return &purchaseOrderRepository{
		conn: conn,
	}
}

func (r *purchaseOrderRepository) ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	query, args, err := r.conn.Builder().
		Select(purchaseOrderColumns...).
		From(purchaseOrdersTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar pedidos de compra: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.PurchaseOrder, 0)
	for rows.Next() {
		order, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido de compra: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func (r *purchaseOrderRepository) GetPurchaseOrderByID(ctx context.Context, id string) (*domain.PurchaseOrder, error) {
	query, args, err := r.conn.Builder().
		Select(purchaseOrderColumns...).
		From(purchaseOrdersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	order, err := scanPurchaseOrder(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pedido %s: %w", id, err)
	}

	return order, nil
}

func (r *purchaseOrderRepository) CreatePurchaseOrder(ctx context.Context, order *domain.PurchaseOrder) error {
	query, args, err := r.conn.Builder().
		Insert(purchaseOrdersTable).
		Columns("id", "supplier", "item_count", "total_cost", "status", "created_at").
		Values(order.ID, order.Supplier, order.ItemCount, order.TotalCost, string(order.Status), order.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: pedido %s", ErrDuplicate, order.ID)
		}
		return fmt.Errorf("erro ao gravar pedido %s: %w", order.ID, err)
	}

	return nil
}

// UpdatePurchaseOrderStatus só altera o pedido se o status atual for from.
// Devolve false quando nenhuma linha foi alterada.
func (r *purchaseOrderRepository) UpdatePurchaseOrderStatus(ctx context.Context, id string, from, to domain.PurchaseOrderStatus) (bool, error) {
	query, args, err := r.conn.Builder().
		Update(purchaseOrdersTable).
		Set("status", string(to)).
		Where(squirrel.Eq{"id": id, "status": string(from)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar pedido %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func scanPurchaseOrder(row scanner) (*domain.PurchaseOrder, error) {
	var order domain.PurchaseOrder
	var status string

	if err := row.Scan(&order.ID, &order.Supplier, &order.ItemCount, &order.TotalCost, &status, &order.CreatedAt); err != nil {
		return nil, err
	}

	order.Status = domain.PurchaseOrderStatus(status)
	return &order, nil
}
