package dataset

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/forecasting"
	"github.com/vfg2006/stockwise-api/pkg/utils"
)

const (
	ColumnOrderID     = "Order ID"
	ColumnAmount      = "Amount"
	ColumnProfit      = "Profit"
	ColumnQuantity    = "Quantity"
	ColumnCategory    = "Category"
	ColumnSubCategory = "Sub-Category"
	ColumnPaymentMode = "PaymentMode"
	ColumnOrderDate   = "Order Date"
	ColumnCustomer    = "CustomerName"
	ColumnState       = "State"
	ColumnCity        = "City"
	ColumnYearMonth   = "Year-Month"
)

var ErrMissingColumn = errors.New("coluna obrigatória ausente no cabeçalho")

var orderDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02-01-2006",
	"01/02/2006",
}

// Row é uma linha do CSV já convertida, com as colunas descritivas usadas na
// importação.
type Row struct {
	Record      domain.SalesRecord
	Category    string
	SubCategory string
	Short       bool
}

// Mapper converte linhas do CSV pelo nome da coluna.
type Mapper struct {
	index map[string]int
}

// NewMapper normaliza o cabeçalho (BOM, aspas, espaços) e exige Amount,
// Quantity e ao menos uma coluna de data.
func NewMapper(header []string) (*Mapper, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := CleanHeader(h)
		if name == "" {
			continue
		}
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	m := &Mapper{index: index}

	for _, required := range []string{ColumnAmount, ColumnQuantity} {
		if !m.Has(required) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	if !m.Has(ColumnYearMonth) && !m.Has(ColumnOrderDate) {
		return nil, fmt.Errorf("%w: %s ou %s", ErrMissingColumn, ColumnYearMonth, ColumnOrderDate)
	}

	return m, nil
}

// CleanHeader remove BOM, aspas e espaços de um nome de coluna.
func CleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.TrimSpace(h)
	h = strings.ReplaceAll(h, `"`, "")
	return strings.TrimSpace(h)
}

func (m *Mapper) Has(column string) bool {
	_, ok := m.index[column]
	return ok
}

func (m *Mapper) value(values []string, column string) (string, bool) {
	i, ok := m.index[column]
	if !ok || i >= len(values) {
		return "", false
	}
	return strings.TrimSpace(values[i]), true
}

// Map converte uma linha. Valores ilegíveis viram zero. Year-Month inválido cede
// lugar à Order Date; sem data válida o período é mantido como veio e a
// agregação o descarta.
func (m *Mapper) Map(values []string) Row {
	row := Row{}

	orderID, _ := m.value(values, ColumnOrderID)
	amount, okAmount := m.value(values, ColumnAmount)
	quantity, okQuantity := m.value(values, ColumnQuantity)
	yearMonth, _ := m.value(values, ColumnYearMonth)
	orderDate, _ := m.value(values, ColumnOrderDate)

	row.Short = !okAmount || !okQuantity
	row.Category, _ = m.value(values, ColumnCategory)
	row.SubCategory, _ = m.value(values, ColumnSubCategory)

	occurredAt := parseOrderDate(orderDate)
	if _, err := utils.NormalizePeriod(yearMonth); err != nil && occurredAt != nil {
		yearMonth = ""
	}

	row.Record = domain.SalesRecord{
		OrderID:    orderID,
		Amount:     forecasting.ParseAmount(amount),
		Quantity:   forecasting.ParseQuantity(quantity),
		Period:     yearMonth,
		OccurredAt: occurredAt,
	}

	return row
}

func parseOrderDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
