package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/countertop"
	"github.com/vfg2006/stockwise-api/internal/usecases/countertop/mocks"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func breadTransaction() domain.CurrentTransaction {
	return domain.CurrentTransaction{
		Items: []domain.TransactionItem{
			{ID: 1, ProductID: "p2", Name: "Brown Bread", Price: decimal.RequireFromString("18.50"), Quantity: 2},
		},
		Total:      decimal.NewFromInt(37),
		NextItemID: 2,
	}
}

func TestCountertopProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCountertop(ctrl)

	expires := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	service.EXPECT().ListProducts(gomock.Any()).Return([]domain.Product{
		{ID: "p2", Name: "Brown Bread", Price: decimal.RequireFromString("18.50"), Stock: 12, ExpiresAt: &expires},
	}, nil)

	rec := serve(t, Countertop(service), http.MethodGet, "/api/countertop/products", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"p2","name":"Brown Bread","price":18.5,"stock":12}]`, rec.Body.String())
}

func TestCurrentTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCountertop(ctrl)

	t.Run("com itens", func(t *testing.T) {
		service.EXPECT().GetTransaction().Return(breadTransaction())

		rec := serve(t, Countertop(service), http.MethodGet, "/api/countertop/transaction", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"items":[{"id":1,"productId":"p2","name":"Brown Bread","price":18.5,"quantity":2}],"total":37}`,
			rec.Body.String())
	})

	t.Run("vazia", func(t *testing.T) {
		service.EXPECT().GetTransaction().Return(domain.CurrentTransaction{NextItemID: 1})

		rec := serve(t, Countertop(service), http.MethodGet, "/api/countertop/transaction", "")

		assert.JSONEq(t, `{"items":[],"total":0}`, rec.Body.String())
	})
}

func TestAddTransactionItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCountertop(ctrl)

	t.Run("sucesso", func(t *testing.T) {
		gomock.InOrder(
			service.EXPECT().AddItem(gomock.Any(), "p2").Return(breadTransaction().Items[0], nil),
			service.EXPECT().GetTransaction().Return(breadTransaction()),
		)

		rec := serve(t, Countertop(service), http.MethodPost, "/api/countertop/transaction/add", `{"productId":" p2 "}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 37.0, decode[domain.TransactionResponse](t, rec).Total)
	})

	t.Run("produto inexistente", func(t *testing.T) {
		service.EXPECT().AddItem(gomock.Any(), "nope").Return(domain.TransactionItem{}, countertop.ErrProductNotFound)

		rec := serve(t, Countertop(service), http.MethodPost, "/api/countertop/transaction/add", `{"productId":"nope"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, rec))
	})

	t.Run("sem productId", func(t *testing.T) {
		rec := serve(t, Countertop(service), http.MethodPost, "/api/countertop/transaction/add", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, errorCode(t, rec))
	})

	t.Run("json inválido", func(t *testing.T) {
		rec := serve(t, Countertop(service), http.MethodPost, "/api/countertop/transaction/add", `{`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, errorCode(t, rec))
	})
}

func TestCompleteTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCountertop(ctrl)

	t.Run("sucesso", func(t *testing.T) {
		current := breadTransaction()
		service.EXPECT().CompleteTransaction(gomock.Any()).Return(&domain.Transaction{
			ID:    7,
			Total: current.Total,
			Items: current.Items,
		}, nil)

		rec := serve(t, Countertop(service), http.MethodPost, "/api/countertop/transaction/complete", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		got := decode[domain.TransactionResponse](t, rec)
		assert.Equal(t, int64(7), got.ID)
		assert.Len(t, got.Items, 1)
	})

	t.Run("venda vazia", func(t *testing.T) {
		service.EXPECT().CompleteTransaction(gomock.Any()).Return(nil, countertop.ErrEmptyTransaction)

		rec := serve(t, Countertop(service), http.MethodPost, "/api/countertop/transaction/complete", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, errorCode(t, rec))
	})

	t.Run("falha ao gravar", func(t *testing.T) {
		service.EXPECT().CompleteTransaction(gomock.Any()).Return(nil, errors.New("tx aborted"))

		rec := serve(t, Countertop(service), http.MethodPost, "/api/countertop/transaction/complete", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCancelTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCountertop(ctrl)

	service.EXPECT().CancelTransaction().Return(breadTransaction())

	rec := serve(t, Countertop(service), http.MethodPost, "/api/countertop/transaction/cancel", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[domain.TransactionResponse](t, rec).Items, 1)
}
