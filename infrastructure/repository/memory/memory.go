// Package memory implementa os repositórios em memória, usados em testes e
// em demonstrações sem banco.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/vfg2006/stockwise-api/infrastructure/repository"
	"github.com/vfg2006/stockwise-api/internal/domain"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

func NewProductRepository(products ...domain.Product) *ProductRepository {
	r := &ProductRepository{products: make(map[string]domain.Product, len(products))}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *ProductRepository) ListProducts(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *ProductRepository) GetProductByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// TransactionRepository também atende SalesRecordRepository, expondo as vendas
// gravadas como linhas de venda.
type TransactionRepository struct {
	mu           sync.RWMutex
	nextID       int64
	transactions []domain.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{nextID: 1}
}

func (r *TransactionRepository) CreateTransaction(_ context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if transaction.Reference != "" && r.hasReference(transaction.Reference) {
		return nil, fmt.Errorf("%w: venda %s", repository.ErrDuplicate, transaction.Reference)
	}

	r.store(transaction)
	return transaction, nil
}

func (r *TransactionRepository) ImportTransactions(_ context.Context, transactions []domain.Transaction) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inserted := 0
	for i := range transactions {
		if transactions[i].Reference != "" && r.hasReference(transactions[i].Reference) {
			continue
		}
		r.store(&transactions[i])
		inserted++
	}
	return inserted, nil
}

func (r *TransactionRepository) store(transaction *domain.Transaction) {
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now()
	}
	transaction.ID = r.nextID
	r.nextID++

	stored := *transaction
	stored.Items = append([]domain.TransactionItem(nil), transaction.Items...)
	r.transactions = append(r.transactions, stored)
}

func (r *TransactionRepository) hasReference(reference string) bool {
	for _, t := range r.transactions {
		if t.Reference == reference {
			return true
		}
	}
	return false
}

func (r *TransactionRepository) ListSalesRecords(_ context.Context) ([]domain.SalesRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]domain.SalesRecord, 0)
	for _, t := range r.transactions {
		orderID := t.Reference
		if orderID == "" {
			orderID = strconv.FormatInt(t.ID, 10)
		}

		for _, item := range t.Items {
			occurredAt := t.CreatedAt
			records = append(records, domain.SalesRecord{
				OrderID:    orderID,
				Amount:     item.LineTotal(),
				Quantity:   int64(item.Quantity),
				OccurredAt: &occurredAt,
			})
		}
	}
	return records, nil
}

// Transactions devolve uma cópia das vendas gravadas.
func (r *TransactionRepository) Transactions() []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Transaction(nil), r.transactions...)
}

type AlertRepository struct {
	mu     sync.RWMutex
	nextID int64
	alerts []domain.SecurityAlert
}

func NewAlertRepository() *AlertRepository {
	return &AlertRepository{nextID: 1}
}

func (r *AlertRepository) CreateAlert(_ context.Context, alert *domain.SecurityAlert) (*domain.SecurityAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert.ID = r.nextID
	r.nextID++
	r.alerts = append(r.alerts, *alert)
	return alert, nil
}

func (r *AlertRepository) ListAlerts(_ context.Context, filter domain.AlertFilter) ([]domain.SecurityAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]domain.SecurityAlert, 0)
	for i := len(r.alerts) - 1; i >= 0; i-- {
		alert := r.alerts[i]
		if filter.Status != "" && alert.Status != filter.Status {
			continue
		}
		if filter.Severity != "" && alert.Severity != filter.Severity {
			continue
		}
		filtered = append(filtered, alert)
	}

	if filter.Limit <= 0 {
		return filtered, nil
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * filter.Limit
	if start >= len(filtered) {
		return []domain.SecurityAlert{}, nil
	}
	end := start + filter.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], nil
}

func (r *AlertRepository) GetAlertByID(_ context.Context, id int64) (*domain.SecurityAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, alert := range r.alerts {
		if alert.ID == id {
			a := alert
			return &a, nil
		}
	}
	return nil, nil
}

func (r *AlertRepository) UpdateAlertStatus(_ context.Context, id int64, status domain.AlertStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.alerts {
		if r.alerts[i].ID == id {
			r.alerts[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

func (r *AlertRepository) PruneAlerts(_ context.Context, keep int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.alerts) <= keep {
		return 0, nil
	}

	removed := len(r.alerts) - keep
	r.alerts = append([]domain.SecurityAlert(nil), r.alerts[removed:]...)
	return int64(removed), nil
}

type PurchaseOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.PurchaseOrder
}

func NewPurchaseOrderRepository(orders ...domain.PurchaseOrder) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{orders: append([]domain.PurchaseOrder(nil), orders...)}
}

func (r *PurchaseOrderRepository) ListPurchaseOrders(_ context.Context) ([]domain.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := append([]domain.PurchaseOrder(nil), r.orders...)
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (r *PurchaseOrderRepository) GetPurchaseOrderByID(_ context.Context, id string) (*domain.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.ID == id {
			o := order
			return &o, nil
		}
	}
	return nil, nil
}

func (r *PurchaseOrderRepository) CreatePurchaseOrder(_ context.Context, order *domain.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.ID == order.ID {
			return fmt.Errorf("%w: pedido %s", repository.ErrDuplicate, order.ID)
		}
	}

	r.orders = append(r.orders, *order)
	return nil
}

func (r *PurchaseOrderRepository) UpdatePurchaseOrderStatus(_ context.Context, id string, from, to domain.PurchaseOrderStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id && r.orders[i].Status == from {
			r.orders[i].Status = to
			return true, nil
		}
	}
	return false, nil
}

type UserRepository struct {
	mu     sync.RWMutex
	nextID int
	users  []domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1}
}

func (r *UserRepository) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, fmt.Errorf("%w: usuário %s", repository.ErrDuplicate, user.Username)
		}
	}

	now := time.Now()
	user.ID = r.nextID
	user.CreatedAt, user.UpdatedAt = now, now
	r.nextID++
	r.users = append(r.users, *user)
	return user, nil
}

func (r *UserRepository) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Username == username }), nil
}

func (r *UserRepository) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email }), nil
}

func (r *UserRepository) GetUserByID(_ context.Context, userID int) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.ID == userID }), nil
}

func (r *UserRepository) find(match func(domain.User) bool) *domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			user := u
			return &user
		}
	}
	return nil
}

var (
	_ repository.ProductRepository       = (*ProductRepository)(nil)
	_ repository.TransactionRepository   = (*TransactionRepository)(nil)
	_ repository.SalesRecordRepository   = (*TransactionRepository)(nil)
	_ repository.AlertRepository         = (*AlertRepository)(nil)
	_ repository.PurchaseOrderRepository = (*PurchaseOrderRepository)(nil)
	_ repository.UserRepository          = (*UserRepository)(nil)
)
