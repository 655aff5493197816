package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/stockwise-api/infrastructure/database"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/pkg/log"
)

const (
	transactionsTable     = "transactions"
	transactionItemsTable = "transaction_items"
)

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	ImportTransactions(ctx context.Context, transactions []domain.Transaction) (int, error)
}

type transactionRepository struct {
	conn *database.Connection
}

func NewTransactionRepository(conn *database.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

// CreateTransaction grava a venda e seus itens na mesma transação.
func (r *transactionRepository) CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now()
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return r.insert(ctx, tx, transaction)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: venda %s", ErrDuplicate, transaction.Reference)
		}
		return nil, fmt.Errorf("erro ao gravar venda: %w", err)
	}

	return transaction, nil
}

// ImportTransactions grava vendas importadas numa única transação. Vendas cuja
// referência já existe são ignoradas.
func (r *transactionRepository) ImportTransactions(ctx context.Context, transactions []domain.Transaction) (int, error) {
	logger := log.ForContext(ctx).WithField("component", "repository")
	inserted := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i := range transactions {
			transaction := &transactions[i]

			if transaction.Reference != "" {
				exists, err := r.referenceExists(ctx, tx, transaction.Reference)
				if err != nil {
					return err
				}
				if exists {
					continue
				}
			}

			if err := r.insert(ctx, tx, transaction); err != nil {
				return fmt.Errorf("erro ao importar venda %s: %w", transaction.Reference, err)
			}
			inserted++

			if inserted%500 == 0 {
				logger.Infof("Progresso: %d/%d vendas importadas", inserted, len(transactions))
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *transactionRepository) referenceExists(ctx context.Context, tx *sql.Tx, reference string) (bool, error) {
	query, args, err := r.conn.Builder().
		Select("COUNT(1)").
		From(transactionsTable).
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *transactionRepository) insert(ctx context.Context, tx *sql.Tx, transaction *domain.Transaction) error {
	var reference interface{}
	if transaction.Reference != "" {
		reference = transaction.Reference
	}

	query, args, err := r.conn.Builder().
		Insert(transactionsTable).
		Columns("reference", "total", "created_at").
		Values(reference, transaction.Total, transaction.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := tx.QueryRowContext(ctx, query, args...).Scan(&transaction.ID); err != nil {
		return err
	}

	if len(transaction.Items) == 0 {
		return nil
	}

	items := r.conn.Builder().
		Insert(transactionItemsTable).
		Columns("transaction_id", "product_id", "name", "price", "quantity")

	for _, item := range transaction.Items {
		var productID interface{}
		if item.ProductID != "" {
			productID = item.ProductID
		}
		items = items.Values(transaction.ID, productID, item.Name, item.Price, item.Quantity)
	}

	query, args, err = items.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}
