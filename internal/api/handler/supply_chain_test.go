package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/supplychain"
	"github.com/vfg2006/stockwise-api/internal/usecases/supplychain/mocks"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestListPurchaseOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSupplyChain(ctrl)

	service.EXPECT().ListOrders(gomock.Any()).Return([]domain.PurchaseOrderResponse{
		{ID: "PO-001", Supplier: "Fresh Farms", ItemCount: 12, TotalCost: "R 1,800.00", Status: domain.POPendingApproval},
	}, nil)

	rec := serve(t, SupplyChain(service), http.MethodGet, "/api/supply-chain/orders", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":"PO-001","supplier":"Fresh Farms","itemCount":12,"totalCost":"R 1,800.00","status":"Pending Approval"}]`,
		rec.Body.String())
}

func TestCreatePurchaseOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSupplyChain(ctrl)

	t.Run("criado", func(t *testing.T) {
		service.EXPECT().CreateOrder(gomock.Any(), domain.CreatePurchaseOrderRequest{
			Supplier:  "Fresh Farms",
			ItemCount: 3,
			TotalCost: decimal.RequireFromString("450.5"),
		}).Return(&domain.PurchaseOrderResponse{ID: "PO-abc", Status: domain.POPendingApproval}, nil)

		rec := serve(t, SupplyChain(service), http.MethodPost, "/api/supply-chain/orders",
			`{"supplier":"Fresh Farms","itemCount":3,"totalCost":450.5}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "PO-abc", decode[domain.PurchaseOrderResponse](t, rec).ID)
	})

	t.Run("inválido", func(t *testing.T) {
		service.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: fornecedor é obrigatório", supplychain.ErrInvalidOrder))

		rec := serve(t, SupplyChain(service), http.MethodPost, "/api/supply-chain/orders", `{"itemCount":3}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, errorCode(t, rec))
	})

	t.Run("erro no banco", func(t *testing.T) {
		service.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		rec := serve(t, SupplyChain(service), http.MethodPost, "/api/supply-chain/orders", `{"supplier":"x"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestTransitionPurchaseOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSupplyChain(ctrl)

	t.Run("aprovar", func(t *testing.T) {
		service.EXPECT().ApproveOrder(gomock.Any(), "PO-001").
			Return(&domain.PurchaseOrderResponse{ID: "PO-001", Status: domain.POApproved}, nil)

		rec := serve(t, SupplyChain(service), http.MethodPost, "/api/supply-chain/orders/PO-001/approve", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.POApproved, decode[domain.PurchaseOrderResponse](t, rec).Status)
	})

	t.Run("rejeitar já aprovado", func(t *testing.T) {
		service.EXPECT().RejectOrder(gomock.Any(), "PO-001").
			Return(nil, fmt.Errorf("%w: PO-001 está \"Approved\"", supplychain.ErrInvalidTransition))

		rec := serve(t, SupplyChain(service), http.MethodPost, "/api/supply-chain/orders/PO-001/reject", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidTransition, errorCode(t, rec))
	})

	t.Run("inexistente", func(t *testing.T) {
		service.EXPECT().ApproveOrder(gomock.Any(), "PO-999").Return(nil, supplychain.ErrOrderNotFound)

		rec := serve(t, SupplyChain(service), http.MethodPost, "/api/supply-chain/orders/PO-999/approve", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, rec))
	})
}
