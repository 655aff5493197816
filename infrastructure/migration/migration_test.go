package migration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/stockwise-api/infrastructure/database"
	"github.com/vfg2006/stockwise-api/internal/config"
	"github.com/vfg2006/stockwise-api/internal/domain"
)

func TestMigrator_UpIsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn, err := database.NewConnection(ctx, config.Database{Driver: config.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	defer conn.Close()

	migrator := NewMigrator(conn)

	applied, err := migrator.Up(ctx)
	require.NoError(t, err)
	assert.Len(t, applied, len(Migrations()))
	assert.Equal(t, "create_products_table", applied[0])

	applied, err = migrator.Up(ctx)
	require.NoError(t, err)
	assert.Empty(t, applied)

	inserted, err := migrator.SeedDefaults(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, len(productSeeds)+len(purchaseOrderSeeds), inserted)

	inserted, err = migrator.SeedDefaults(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestMigrations_AreOrdered(t *testing.T) {
	all := Migrations()
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].Version, all[i-1].Version)
		assert.NotEmpty(t, all[i].Postgres)
		assert.NotEmpty(t, all[i].SQLite)
	}
}

func TestDefaultProducts(t *testing.T) {
	now := time.Date(2025, 11, 18, 15, 30, 0, 0, time.UTC)
	products := DefaultProducts(now)
	require.Len(t, products, 10)

	byID := make(map[string]domain.Product)
	for _, p := range products {
		byID[p.ID] = p
	}

	bread := byID["1005"]
	assert.Equal(t, "Brown Bread", bread.Name)
	require.NotNil(t, bread.ExpiresAt)
	assert.Equal(t, time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), *bread.ExpiresAt)
	assert.Equal(t, "65", byID["1010"].Price.String())
}

func TestDefaultPurchaseOrders(t *testing.T) {
	orders := DefaultPurchaseOrders(time.Now())
	require.Len(t, orders, 5)
	assert.Equal(t, "PO-002", orders[1].ID)
	assert.Equal(t, "1800.00", orders[1].TotalCost.StringFixed(2))
	assert.Equal(t, domain.POApproved, orders[2].Status)
}
