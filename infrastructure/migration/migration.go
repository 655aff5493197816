package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vfg2006/stockwise-api/infrastructure/database"
	"github.com/vfg2006/stockwise-api/internal/config"
	"github.com/vfg2006/stockwise-api/pkg/log"
)

const migrationsTable = "schema_migrations"

// Migration guarda o DDL de cada driver suportado.
type Migration struct {
	Version  int
	Name     string
	Postgres string
	SQLite   string
}

func (m Migration) statement(driver string) string {
	if driver == config.DriverSQLite {
		return m.SQLite
	}
	return m.Postgres
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_products_table",
		Postgres: `CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			stock INTEGER NOT NULL DEFAULT 0,
			expires_at DATE
		)`,
		SQLite: `CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC NOT NULL,
			stock INTEGER NOT NULL DEFAULT 0,
			expires_at DATE
		)`,
	},
	{
		Version: 2,
		Name:    "create_alerts_table",
		Postgres: `CREATE TABLE IF NOT EXISTS alerts (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			time_label VARCHAR(32) NOT NULL,
			severity VARCHAR(16) NOT NULL,
			image VARCHAR(512) NOT NULL,
			status VARCHAR(16) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		SQLite: `CREATE TABLE IF NOT EXISTS alerts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			time_label TEXT NOT NULL,
			severity TEXT NOT NULL,
			image TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Version: 3,
		Name:    "create_purchase_orders_table",
		Postgres: `CREATE TABLE IF NOT EXISTS purchase_orders (
			id VARCHAR(32) PRIMARY KEY,
			supplier VARCHAR(255) NOT NULL,
			item_count INTEGER NOT NULL,
			total_cost NUMERIC(12,2) NOT NULL,
			status VARCHAR(32) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		SQLite: `CREATE TABLE IF NOT EXISTS purchase_orders (
			id TEXT PRIMARY KEY,
			supplier TEXT NOT NULL,
			item_count INTEGER NOT NULL,
			total_cost NUMERIC NOT NULL,
			status TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Version: 4,
		Name:    "create_transactions_table",
		Postgres: `CREATE TABLE IF NOT EXISTS transactions (
			id SERIAL PRIMARY KEY,
			reference VARCHAR(64) UNIQUE,
			total NUMERIC(12,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		SQLite: `CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			reference TEXT UNIQUE,
			total NUMERIC NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Version: 5,
		Name:    "create_transaction_items_table",
		Postgres: `CREATE TABLE IF NOT EXISTS transaction_items (
			id SERIAL PRIMARY KEY,
			transaction_id INTEGER NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
			product_id VARCHAR(64) REFERENCES products(id),
			name VARCHAR(255) NOT NULL,
			price NUMERIC(12,2) NOT NULL,
			quantity INTEGER NOT NULL
		)`,
		SQLite: `CREATE TABLE IF NOT EXISTS transaction_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			transaction_id INTEGER NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
			product_id TEXT REFERENCES products(id),
			name TEXT NOT NULL,
			price NUMERIC NOT NULL,
			quantity INTEGER NOT NULL
		)`,
	},
	{
		Version: 6,
		Name:    "create_users_table",
		Postgres: `CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(64) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		SQLite: `CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
}

// Migrations devolve a lista ordenada por versão.
func Migrations() []Migration {
	out := make([]Migration, len(migrations))
	copy(out, migrations)
	return out
}

type Migrator struct {
	conn *database.Connection
}

func NewMigrator(conn *database.Connection) *Migrator {
	return &Migrator{conn: conn}
}

// Up aplica as migrações pendentes, cada uma na sua transação, e devolve os
// nomes aplicados.
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	logger := log.ForContext(ctx).WithField("component", "migration")
	startTime := time.Now()

	if err := m.ensureTable(ctx); err != nil {
		return nil, fmt.Errorf("erro ao criar tabela de controle: %w", err)
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, mig := range migrations {
		if applied[mig.Version] {
			continue
		}

		err := m.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, mig.statement(m.conn.Driver())); err != nil {
				return err
			}

			query, args, err := m.conn.Builder().
				Insert(migrationsTable).
				Columns("version", "name").
				Values(mig.Version, mig.Name).
				ToSql()
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, query, args...)
			return err
		})
		if err != nil {
			return names, fmt.Errorf("erro ao aplicar migração %03d_%s: %w", mig.Version, mig.Name, err)
		}

		logger.Infof("Migração %03d_%s aplicada", mig.Version, mig.Name)
		names = append(names, mig.Name)
	}

	logger.Infof("Migrações concluídas em %v. Aplicadas: %d", time.Since(startTime), len(names))

	return names, nil
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	ddl := `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	if m.conn.Driver() == config.DriverSQLite {
		ddl = `CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`
	}

	_, err := m.conn.ExecContext(ctx, ddl)
	return err
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[int]bool, error) {
	query, args, err := m.conn.Builder().
		Select("version").
		From(migrationsTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := m.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar migrações aplicadas: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
