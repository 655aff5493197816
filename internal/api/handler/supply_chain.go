package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/supplychain"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
)

// ListPurchaseOrders godoc
// @Summary      Pedidos de compra
// @Tags         supply-chain
// @Produce      json
// @Success      200  {array}   domain.PurchaseOrderResponse
// @Router       /api/supply-chain/orders [get]
func ListPurchaseOrders(service supplychain.SupplyChain) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := service.ListOrders(r.Context())
		if err != nil {
			logrus.WithError(err).Error("supply-chain: erro ao listar pedidos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar pedidos de compra", nil)
			return
		}

		if orders == nil {
			orders = []domain.PurchaseOrderResponse{}
		}
		writeJSON(w, http.StatusOK, orders)
	}
}

// CreatePurchaseOrder godoc
// @Summary      Cria um pedido de compra
// @Tags         supply-chain
// @Accept       json
// @Produce      json
// @Param        request  body      domain.CreatePurchaseOrderRequest  true  "Pedido"
// @Success      201      {object}  domain.PurchaseOrderResponse
// @Failure      400      {object}  apiErrors.APIError
// @Router       /api/supply-chain/orders [post]
func CreatePurchaseOrder(service supplychain.SupplyChain) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreatePurchaseOrderRequest
		if !decodeBody(w, r, &req) {
			return
		}

		order, err := service.CreateOrder(r.Context(), req)
		if err != nil {
			if errors.Is(err, supplychain.ErrInvalidOrder) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			logrus.WithError(err).Error("supply-chain: erro ao criar pedido")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar pedido de compra", nil)
			return
		}

		writeJSON(w, http.StatusCreated, order)
	}
}

// ApprovePurchaseOrder godoc
// @Summary      Aprova um pedido pendente
// @Tags         supply-chain
// @Param        id   path      string  true  "ID do pedido"
// @Success      200  {object}  domain.PurchaseOrderResponse
// @Failure      404  {object}  apiErrors.APIError
// @Failure      409  {object}  apiErrors.APIError
// @Router       /api/supply-chain/orders/{id}/approve [post]
func ApprovePurchaseOrder(service supplychain.SupplyChain) http.HandlerFunc {
	return transitionOrder(service.ApproveOrder)
}

// RejectPurchaseOrder godoc
// @Summary      Rejeita um pedido pendente
// @Tags         supply-chain
// @Param        id   path      string  true  "ID do pedido"
// @Success      200  {object}  domain.PurchaseOrderResponse
// @Failure      404  {object}  apiErrors.APIError
// @Failure      409  {object}  apiErrors.APIError
// @Router       /api/supply-chain/orders/{id}/reject [post]
func RejectPurchaseOrder(service supplychain.SupplyChain) http.HandlerFunc {
	return transitionOrder(service.RejectOrder)
}

func transitionOrder(transition func(context.Context, string) (*domain.PurchaseOrderResponse, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do pedido não fornecido", nil)
			return
		}

		order, err := transition(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, supplychain.ErrOrderNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Pedido de compra não encontrado", map[string]string{"id": id})
			case errors.Is(err, supplychain.ErrInvalidTransition):
				apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, "Pedido de compra não está aguardando aprovação", map[string]string{"id": id})
			default:
				logrus.WithError(err).WithField("order_id", id).Error("supply-chain: erro ao atualizar pedido")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar pedido de compra", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, order)
	}
}
