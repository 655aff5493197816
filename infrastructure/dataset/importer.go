package dataset

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/forecasting"
	"github.com/vfg2006/stockwise-api/pkg/utils"
)

const defaultItemName = "Item"

// ToTransactions agrupa as linhas do CSV por Order ID em vendas prontas para
// importação. O preço unitário é Amount/Quantity, assim price*quantity
// reproduz o Amount original. Pedidos sem Order Date usam o primeiro dia do
// Year-Month e, sem nenhum dos dois, o fallback.
func ToTransactions(rows []Row, fallback time.Time) []domain.Transaction {
	records := make([]domain.SalesRecord, 0, len(rows))
	rowsByOrder := make(map[string][]Row)
	for _, row := range rows {
		records = append(records, row.Record)
		if row.Record.OrderID != "" {
			rowsByOrder[row.Record.OrderID] = append(rowsByOrder[row.Record.OrderID], row)
		}
	}

	orders := forecasting.GroupByOrder(records)
	transactions := make([]domain.Transaction, 0, len(orders))

	for _, order := range orders {
		createdAt := orderTime(order, fallback)

		orderRows := rowsByOrder[order.OrderID]
		items := make([]domain.TransactionItem, 0, len(order.Lines))
		for i, line := range order.Lines {
			items = append(items, domain.TransactionItem{
				ID:       i + 1,
				Name:     itemName(orderRows[i]),
				Price:    unitPrice(line),
				Quantity: int(line.Quantity),
			})
		}

		transactions = append(transactions, domain.Transaction{
			Reference: order.OrderID,
			Total:     order.Total,
			CreatedAt: createdAt,
			Items:     items,
		})
	}

	return transactions
}

func orderTime(order domain.OrderTotal, fallback time.Time) time.Time {
	if order.OccurredAt != nil {
		return *order.OccurredAt
	}
	for _, line := range order.Lines {
		period, err := utils.NormalizePeriod(line.Period)
		if err != nil {
			continue
		}
		if t, err := time.Parse(utils.PeriodLayout, period); err == nil {
			return t
		}
	}
	return fallback
}

func unitPrice(line domain.SalesRecord) decimal.Decimal {
	if line.Quantity <= 0 {
		return line.Amount
	}
	return line.Amount.Div(decimal.NewFromInt(line.Quantity)).Round(2)
}

func itemName(row Row) string {
	switch {
	case strings.TrimSpace(row.SubCategory) != "":
		return strings.TrimSpace(row.SubCategory)
	case strings.TrimSpace(row.Category) != "":
		return strings.TrimSpace(row.Category)
	default:
		return defaultItemName
	}
}
