package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/pkg/log"
)

type productSeed struct {
	ID            string
	Name          string
	Price         string
	Stock         int
	ExpiresInDays int
}

var productSeeds = []productSeed{
	{"1001", "Coca-Cola 2L", "25.00", 48, 180},
	{"1002", "Sasko Bread", "15.00", 20, 4},
	{"1003", "Simba Chips", "10.00", 60, 90},
	{"1004", "Milk 1L", "20.00", 8, 3},
	{"1005", "Brown Bread", "18.00", 5, 2},
	{"1006", "Amasi 500ml", "12.00", 12, 5},
	{"1007", "Apples (per kg)", "22.00", 30, 10},
	{"1008", "Bananas (per kg)", "15.00", 25, 6},
	{"1009", "Oranges (per kg)", "18.00", 28, 14},
	{"1010", "Chicken Fillets (per kg)", "65.00", 10, 8},
}

type purchaseOrderSeed struct {
	ID        string
	Supplier  string
	ItemCount int
	TotalCost string
	Status    domain.PurchaseOrderStatus
}

var purchaseOrderSeeds = []purchaseOrderSeed{
	{"PO-001", "Bakers Biscuits", 5, "550.00", domain.POPendingApproval},
	{"PO-002", "Coca-Cola Beverages", 12, "1800.00", domain.POPendingApproval},
	{"PO-003", "Simba Snacks", 8, "920.00", domain.POApproved},
	{"PO-004", "Dairy Farmers", 10, "1200.00", domain.POPendingApproval},
	{"PO-005", "Fresh Produce Co.", 20, "700.00", domain.POPendingApproval},
}

// DefaultProducts devolve o catálogo inicial com validade relativa a now.
func DefaultProducts(now time.Time) []domain.Product {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	products := make([]domain.Product, 0, len(productSeeds))
	for _, seed := range productSeeds {
		expiresAt := day.AddDate(0, 0, seed.ExpiresInDays)
		products = append(products, domain.Product{
			ID:        seed.ID,
			Name:      seed.Name,
			Price:     decimal.RequireFromString(seed.Price),
			Stock:     seed.Stock,
			ExpiresAt: &expiresAt,
		})
	}
	return products
}

func DefaultPurchaseOrders(now time.Time) []domain.PurchaseOrder {
	orders := make([]domain.PurchaseOrder, 0, len(purchaseOrderSeeds))
	for _, seed := range purchaseOrderSeeds {
		orders = append(orders, domain.PurchaseOrder{
			ID:        seed.ID,
			Supplier:  seed.Supplier,
			ItemCount: seed.ItemCount,
			TotalCost: decimal.RequireFromString(seed.TotalCost),
			Status:    seed.Status,
			CreatedAt: now,
		})
	}
	return orders
}

// SeedDefaults insere catálogo e pedidos de compra iniciais. Registros
// existentes são mantidos.
func (m *Migrator) SeedDefaults(ctx context.Context, now time.Time) (int, error) {
	logger := log.ForContext(ctx).WithField("component", "migration")
	inserted := 0

	err := m.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, product := range DefaultProducts(now) {
			query, args, err := m.conn.Builder().
				Insert("products").
				Columns("id", "name", "price", "stock", "expires_at").
				Values(product.ID, product.Name, product.Price, product.Stock, product.ExpiresAt).
				Suffix("ON CONFLICT (id) DO NOTHING").
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir insert de produto: %w", err)
			}

			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("erro ao inserir produto %s: %w", product.ID, err)
			}
			inserted += affected(res)
		}

		for _, order := range DefaultPurchaseOrders(now) {
			query, args, err := m.conn.Builder().
				Insert("purchase_orders").
				Columns("id", "supplier", "item_count", "total_cost", "status", "created_at").
				Values(order.ID, order.Supplier, order.ItemCount, order.TotalCost, string(order.Status), order.CreatedAt).
				Suffix("ON CONFLICT (id) DO NOTHING").
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir insert de pedido: %w", err)
			}

			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("erro ao inserir pedido %s: %w", order.ID, err)
			}
			inserted += affected(res)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Infof("Carga inicial concluída. Registros inseridos: %d", inserted)
	return inserted, nil
}

func affected(res sql.Result) int {
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return int(n)
}
