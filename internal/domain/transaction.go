package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItem é uma linha da venda em andamento no balcão.
type TransactionItem struct {
	ID        int             `json:"id"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal devolve price * quantity.
func (i TransactionItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type CurrentTransaction struct {
	Items      []TransactionItem `json:"items"`
	Total      decimal.Decimal   `json:"total"`
	NextItemID int               `json:"nextItemId"`
}

// Transaction é uma venda concluída e persistida. Reference guarda o número do
// pedido quando a venda vem de uma importação.
type Transaction struct {
	ID        int64
	Reference string
	Total     decimal.Decimal
	CreatedAt time.Time
	Items     []TransactionItem
}

type TransactionItemResponse struct {
	ID        int     `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type TransactionResponse struct {
	ID    int64                     `json:"id,omitempty"`
	Items []TransactionItemResponse `json:"items"`
	Total float64                   `json:"total"`
}

type AddItemRequest struct {
	ProductID string `json:"productId"`
}
