package supplychain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/stockwise-api/infrastructure/repository"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/pkg/log"
	"github.com/vfg2006/stockwise-api/pkg/utils"
)

const (
	orderIDPrefix   = "PO"
	maxIDRetries    = 3
	maxSupplierSize = 120
)

var (
	ErrOrderNotFound     = errors.New("pedido de compra não encontrado")
	ErrInvalidTransition = errors.New("pedido de compra não está aguardando aprovação")
	ErrInvalidOrder      = errors.New("pedido de compra inválido")
)

type SupplyChain interface {
	ListOrders(ctx context.Context) ([]domain.PurchaseOrderResponse, error)
	CreateOrder(ctx context.Context, req domain.CreatePurchaseOrderRequest) (*domain.PurchaseOrderResponse, error)
	ApproveOrder(ctx context.Context, id string) (*domain.PurchaseOrderResponse, error)
	RejectOrder(ctx context.Context, id string) (*domain.PurchaseOrderResponse, error)
}

type Service struct {
	orders         repository.PurchaseOrderRepository
	currencyPrefix string
	newID          func() (string, error)
	now            func() time.Time
}

func NewService(orders repository.PurchaseOrderRepository, currencyPrefix string) SupplyChain {
	if currencyPrefix == "" {
		currencyPrefix = utils.DefaultCurrencyPrefix
	}

	return &Service{
		orders:         orders,
		currencyPrefix: currencyPrefix,
		newID: func() (string, error) {
			return utils.GeneratePrefixedID(orderIDPrefix)
		},
		now: time.Now,
	}
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.PurchaseOrderResponse, error) {
	orders, err := s.orders.ListPurchaseOrders(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PurchaseOrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, s.toResponse(order))
	}
	return response, nil
}

// CreateOrder grava um pedido novo aguardando aprovação. Colisão de ID gera
// um novo identificador.
func (s *Service) CreateOrder(ctx context.Context, req domain.CreatePurchaseOrderRequest) (*domain.PurchaseOrderResponse, error) {
	supplier := strings.TrimSpace(req.Supplier)
	switch {
	case supplier == "":
		return nil, fmt.Errorf("%w: fornecedor é obrigatório", ErrInvalidOrder)
	case len(supplier) > maxSupplierSize:
		return nil, fmt.Errorf("%w: nome do fornecedor muito longo", ErrInvalidOrder)
	case req.ItemCount <= 0:
		return nil, fmt.Errorf("%w: quantidade de itens deve ser positiva", ErrInvalidOrder)
	case !req.TotalCost.IsPositive():
		return nil, fmt.Errorf("%w: custo total deve ser positivo", ErrInvalidOrder)
	}

	order := domain.PurchaseOrder{
		Supplier:  supplier,
		ItemCount: req.ItemCount,
		TotalCost: req.TotalCost.Round(2),
		Status:    domain.POPendingApproval,
		CreatedAt: s.now(),
	}

	var err error
	for attempt := 0; attempt < maxIDRetries; attempt++ {
		order.ID, err = s.newID()
		if err != nil {
			return nil, err
		}

		err = s.orders.CreatePurchaseOrder(ctx, &order)
		if !errors.Is(err, repository.ErrDuplicate) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"order_id": order.ID,
		"supplier": order.Supplier,
	}).Info("supply-chain: pedido criado")

	response := s.toResponse(order)
	return &response, nil
}

func (s *Service) ApproveOrder(ctx context.Context, id string) (*domain.PurchaseOrderResponse, error) {
	return s.transition(ctx, id, domain.POApproved)
}

func (s *Service) RejectOrder(ctx context.Context, id string) (*domain.PurchaseOrderResponse, error) {
	return s.transition(ctx, id, domain.PORejected)
}

// transition só sai de "Pending Approval". A condição fica no UPDATE, então
// duas aprovações simultâneas não passam ambas.
func (s *Service) transition(ctx context.Context, id string, to domain.PurchaseOrderStatus) (*domain.PurchaseOrderResponse, error) {
	changed, err := s.orders.UpdatePurchaseOrderStatus(ctx, id, domain.POPendingApproval, to)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.GetPurchaseOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if !changed {
		return nil, fmt.Errorf("%w: %s está %q", ErrInvalidTransition, id, order.Status)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"order_id": id,
		"status":   to,
	}).Info("supply-chain: status do pedido alterado")

	response := s.toResponse(*order)
	return &response, nil
}

func (s *Service) toResponse(order domain.PurchaseOrder) domain.PurchaseOrderResponse {
	return domain.PurchaseOrderResponse{
		ID:        order.ID,
		Supplier:  order.Supplier,
		ItemCount: order.ItemCount,
		TotalCost: utils.FormatMoney(s.currencyPrefix, order.TotalCost),
		Status:    order.Status,
	}
}
