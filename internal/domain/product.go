package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	ExpiresAt *time.Time      `json:"expiresAt,omitempty"`
}

type ProductResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

type ExpiryAlert struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	DaysLeft int    `json:"daysLeft"`
	Stock    int    `json:"stock"`
}
