package countertop

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/stockwise-api/infrastructure/repository"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/pkg/log"
)

var (
	ErrProductNotFound  = errors.New("produto não encontrado")
	ErrEmptyTransaction = errors.New("a venda atual não possui itens")
)

type Countertop interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetTransaction() domain.CurrentTransaction
	AddItem(ctx context.Context, productID string) (domain.TransactionItem, error)
	CompleteTransaction(ctx context.Context) (*domain.Transaction, error)
	CancelTransaction() domain.CurrentTransaction
}

// Service guarda a venda em andamento do balcão. Todo acesso passa pelo mutex
// e quem lê recebe sempre uma cópia.
type Service struct {
	products     repository.ProductRepository
	transactions repository.TransactionRepository

	mu      sync.Mutex
	current domain.CurrentTransaction
}

func NewService(products repository.ProductRepository, transactions repository.TransactionRepository) Countertop {
	return &Service{
		products:     products,
		transactions: transactions,
		current:      emptyTransaction(),
	}
}

func emptyTransaction() domain.CurrentTransaction {
	return domain.CurrentTransaction{
		Items:      []domain.TransactionItem{},
		Total:      decimal.Zero,
		NextItemID: 1,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *Service) GetTransaction() domain.CurrentTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.current)
}

// AddItem adiciona uma unidade do produto. Produto repetido incrementa a
// quantidade da linha existente.
func (s *Service) AddItem(ctx context.Context, productID string) (domain.TransactionItem, error) {
	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return domain.TransactionItem{}, err
	}
	if product == nil {
		return domain.TransactionItem{}, ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Total = s.current.Total.Add(product.Price)

	for i := range s.current.Items {
		if s.current.Items[i].ProductID == product.ID {
			s.current.Items[i].Quantity++
			return s.current.Items[i], nil
		}
	}

	item := domain.TransactionItem{
		ID:        s.current.NextItemID,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  1,
	}
	s.current.NextItemID++
	s.current.Items = append(s.current.Items, item)

	return item, nil
}

// CompleteTransaction persiste a venda e só então zera o balcão. Se a gravação
// falhar a venda continua aberta.
func (s *Service) CompleteTransaction(ctx context.Context) (*domain.Transaction, error) {
	logger := log.ForContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.current.Items) == 0 {
		return nil, ErrEmptyTransaction
	}

	done := snapshot(s.current)
	saved, err := s.transactions.CreateTransaction(ctx, &domain.Transaction{
		Total: done.Total,
		Items: done.Items,
	})
	if err != nil {
		logger.WithError(err).Error("countertop: erro ao gravar venda")
		return nil, err
	}

	s.current = emptyTransaction()

	logger.WithFields(log.Fields{
		"transaction_id": saved.ID,
		"items":          len(saved.Items),
		"total":          saved.Total.StringFixed(2),
	}).Info("countertop: venda concluída")

	return saved, nil
}

func (s *Service) CancelTransaction() domain.CurrentTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancelled := snapshot(s.current)
	s.current = emptyTransaction()
	return cancelled
}

func snapshot(t domain.CurrentTransaction) domain.CurrentTransaction {
	items := make([]domain.TransactionItem, len(t.Items))
	copy(items, t.Items)
	return domain.CurrentTransaction{
		Items:      items,
		Total:      t.Total,
		NextItemID: t.NextItemID,
	}
}
