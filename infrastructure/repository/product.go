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

const productsTable = "products"

var productColumns = []string{"id", "name", "price", "stock", "expires_at"}

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
}

type productRepository struct {
	conn *database.Connection
}

func NewProductRepository(conn *database.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, r.conn.Builder().
		Select(productColumns...).
		From(productsTable).
		OrderBy("id ASC"))
}

// GetProductByID devolve nil, nil quando o produto não existe.
func (r *productRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	query, args, err := r.conn.Builder().
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product, err := scanProduct(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produto %s: %w", id, err)
	}

	return product, nil
}

func (r *productRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.Product, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row scanner) (*domain.Product, error) {
	var product domain.Product
	var expiresAt sql.NullTime

	if err := row.Scan(&product.ID, &product.Name, &product.Price, &product.Stock, &expiresAt); err != nil {
		return nil, err
	}

	if expiresAt.Valid {
		product.ExpiresAt = &expiresAt.Time
	}

	return &product, nil
}
