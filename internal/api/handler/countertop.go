package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/countertop"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
)

func toTransactionResponse(id int64, items []domain.TransactionItem, total float64) domain.TransactionResponse {
	response := domain.TransactionResponse{
		ID:    id,
		Items: make([]domain.TransactionItemResponse, 0, len(items)),
		Total: total,
	}
	for _, item := range items {
		response.Items = append(response.Items, domain.TransactionItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price.InexactFloat64(),
			Quantity:  item.Quantity,
		})
	}
	return response
}

func currentResponse(current domain.CurrentTransaction) domain.TransactionResponse {
	return toTransactionResponse(0, current.Items, current.Total.InexactFloat64())
}

// CountertopProducts godoc
// @Summary      Produtos disponíveis no balcão
// @Tags         countertop
// @Produce      json
// @Success      200  {array}   domain.ProductResponse
// @Router       /api/countertop/products [get]
func CountertopProducts(service countertop.Countertop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context())
		if err != nil {
			logrus.WithError(err).Error("countertop: erro ao listar produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		response := make([]domain.ProductResponse, 0, len(products))
		for _, p := range products {
			response = append(response, domain.ProductResponse{
				ID:    p.ID,
				Name:  p.Name,
				Price: p.Price.InexactFloat64(),
				Stock: p.Stock,
			})
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// CurrentTransaction godoc
// @Summary      Venda em andamento
// @Tags         countertop
// @Produce      json
// @Success      200  {object}  domain.TransactionResponse
// @Router       /api/countertop/transaction [get]
func CurrentTransaction(service countertop.Countertop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, currentResponse(service.GetTransaction()))
	}
}

// AddTransactionItem godoc
// @Summary      Adiciona um produto à venda
// @Tags         countertop
// @Accept       json
// @Produce      json
// @Param        request  body      domain.AddItemRequest  true  "Produto"
// @Success      200      {object}  domain.TransactionResponse
// @Failure      404      {object}  apiErrors.APIError
// @Router       /api/countertop/transaction/add [post]
func AddTransactionItem(service countertop.Countertop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AddItemRequest
		if !decodeBody(w, r, &req) {
			return
		}

		productID := strings.TrimSpace(req.ProductID)
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "productId é obrigatório", nil)
			return
		}

		if _, err := service.AddItem(r.Context(), productID); err != nil {
			if errors.Is(err, countertop.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", map[string]string{
					"productId": productID,
				})
				return
			}
			logrus.WithError(err).Error("countertop: erro ao adicionar item")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao adicionar item", nil)
			return
		}

		writeJSON(w, http.StatusOK, currentResponse(service.GetTransaction()))
	}
}

// CompleteTransaction godoc
// @Summary      Conclui a venda em andamento
// @Tags         countertop
// @Produce      json
// @Success      200  {object}  domain.TransactionResponse
// @Failure      400  {object}  apiErrors.APIError
// @Router       /api/countertop/transaction/complete [post]
func CompleteTransaction(service countertop.Countertop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tx, err := service.CompleteTransaction(r.Context())
		if err != nil {
			if errors.Is(err, countertop.ErrEmptyTransaction) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A venda atual não possui itens", nil)
				return
			}
			logrus.WithError(err).Error("countertop: erro ao concluir venda")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao concluir venda", nil)
			return
		}

		writeJSON(w, http.StatusOK, toTransactionResponse(tx.ID, tx.Items, tx.Total.InexactFloat64()))
	}
}

// CancelTransaction godoc
// @Summary      Cancela a venda em andamento
// @Tags         countertop
// @Produce      json
// @Success      200  {object}  domain.TransactionResponse
// @Router       /api/countertop/transaction/cancel [post]
func CancelTransaction(service countertop.Countertop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, currentResponse(service.CancelTransaction()))
	}
}
