package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord é uma linha de venda normalizada, independente da origem (banco ou CSV).
// Period pode vir pronto ("YYYY-MM") ou ser derivado de um timestamp ISO-8601.
type SalesRecord struct {
	OrderID    string
	Amount     decimal.Decimal
	Quantity   int64
	Period     string
	OccurredAt *time.Time
}

// MonthlyBucket acumula as vendas de um mês.
type MonthlyBucket struct {
	Period        string          `json:"period"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	RecordCount   int64           `json:"recordCount"`
}

// ForecastPoint é a média móvel de 3 meses atribuída ao mês mais recente da janela.
type ForecastPoint struct {
	Period        string          `json:"period"`
	MovingAverage decimal.Decimal `json:"movingAverage"`
}

// OrderTotal agrupa as linhas de um mesmo pedido.
type OrderTotal struct {
	OrderID    string
	Total      decimal.Decimal
	Quantity   int64
	Lines      []SalesRecord
	OccurredAt *time.Time
}

type MonthlySalesResponse struct {
	Period        string  `json:"period"`
	TotalQuantity int64   `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
	RecordCount   int64   `json:"recordCount"`
}

type ForecastPointResponse struct {
	Period        string  `json:"period"`
	MovingAverage float64 `json:"movingAverage"`
}

type ForecastNarrationResponse struct {
	Forecast string `json:"forecast"`
}
