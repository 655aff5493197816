package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseOrderStatus string

const (
	POPendingApproval PurchaseOrderStatus = "Pending Approval"
	POApproved        PurchaseOrderStatus = "Approved"
	PORejected        PurchaseOrderStatus = "Rejected"
)

type PurchaseOrder struct {
	ID        string
	Supplier  string
	ItemCount int
	TotalCost decimal.Decimal
	Status    PurchaseOrderStatus
	CreatedAt time.Time
}

type PurchaseOrderResponse struct {
	ID        string              `json:"id"`
	Supplier  string              `json:"supplier"`
	ItemCount int                 `json:"itemCount"`
	TotalCost string              `json:"totalCost"`
	Status    PurchaseOrderStatus `json:"status"`
}

type CreatePurchaseOrderRequest struct {
	Supplier  string          `json:"supplier"`
	ItemCount int             `json:"itemCount"`
	TotalCost decimal.Decimal `json:"totalCost"`
}
