package forecasting

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/stockwise-api/internal/config"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/pkg/utils"
)

// AmountPolicy define quais valores monetários entram na agregação.
type AmountPolicy int

const (
	// DropNegative descarta valores negativos e mantém zeros.
	DropNegative AmountPolicy = iota
	// PositiveOnly descarta qualquer valor <= 0.
	PositiveOnly
)

// Aggregator agrupa registros de venda por mês. Não guarda estado entre chamadas.
type Aggregator struct {
	policy AmountPolicy
}

// PolicyFromConfig traduz FORECAST_AMOUNT_POLICY. Valor desconhecido cai em DropNegative.
func PolicyFromConfig(name string) AmountPolicy {
	if strings.EqualFold(strings.TrimSpace(name), config.AmountPolicyPositiveOnly) {
		return PositiveOnly
	}
	return DropNegative
}

func NewAggregator(policy AmountPolicy) *Aggregator {
	return &Aggregator{policy: policy}
}

// Aggregation é o resultado imutável de uma chamada a Aggregate.
type Aggregation struct {
	buckets map[string]*domain.MonthlyBucket
	Skipped int
}

// Aggregate percorre os registros uma única vez. Registros com período inválido,
// quantidade negativa ou valor fora da política são ignorados e contados em Skipped.
func (a *Aggregator) Aggregate(records []domain.SalesRecord) *Aggregation {
	agg := &Aggregation{buckets: make(map[string]*domain.MonthlyBucket)}

	for _, record := range records {
		period, ok := recordPeriod(record)
		if !ok || !a.accepts(record) {
			agg.Skipped++
			continue
		}

		bucket, exists := agg.buckets[period]
		if !exists {
			bucket = &domain.MonthlyBucket{Period: period, TotalRevenue: decimal.Zero}
			agg.buckets[period] = bucket
		}

		bucket.TotalQuantity += record.Quantity
		bucket.TotalRevenue = bucket.TotalRevenue.Add(record.Amount)
		bucket.RecordCount++
	}

	return agg
}

func (a *Aggregator) accepts(record domain.SalesRecord) bool {
	if record.Quantity < 0 || record.Amount.IsNegative() {
		return false
	}
	if a.policy == PositiveOnly && !record.Amount.IsPositive() {
		return false
	}
	return true
}

func recordPeriod(record domain.SalesRecord) (string, bool) {
	if record.Period != "" {
		period, err := utils.NormalizePeriod(record.Period)
		return period, err == nil
	}

	// mês em UTC, independente do fuso que o driver anexou ao timestamp
	if record.OccurredAt != nil && !record.OccurredAt.IsZero() {
		return record.OccurredAt.UTC().Format(utils.PeriodLayout), true
	}

	return "", false
}

// Bucket devolve uma cópia do bucket do período.
func (g *Aggregation) Bucket(period string) (domain.MonthlyBucket, bool) {
	bucket, ok := g.buckets[period]
	if !ok {
		return domain.MonthlyBucket{}, false
	}
	return *bucket, true
}

// Len é o número de meses distintos.
func (g *Aggregation) Len() int {
	return len(g.buckets)
}

// Ordered devolve os buckets em ordem crescente de período.
// A ordem lexicográfica de "YYYY-MM" coincide com a cronológica.
func (g *Aggregation) Ordered() []domain.MonthlyBucket {
	ordered := make([]domain.MonthlyBucket, 0, len(g.buckets))
	for _, bucket := range g.buckets {
		ordered = append(ordered, *bucket)
	}

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Period < ordered[j].Period
	})

	return ordered
}

// Totals soma todos os buckets.
func (g *Aggregation) Totals() (quantity int64, revenue decimal.Decimal, records int64) {
	revenue = decimal.Zero
	for _, bucket := range g.buckets {
		quantity += bucket.TotalQuantity
		revenue = revenue.Add(bucket.TotalRevenue)
		records += bucket.RecordCount
	}
	return quantity, revenue, records
}

// ParseAmount converte texto em valor monetário. Aceita prefixo "R" e separador
// de milhar. Qualquer falha resulta em zero.
func ParseAmount(raw string) decimal.Decimal {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, utils.DefaultCurrencyPrefix)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// ParseQuantity converte texto em quantidade inteira. Valores fracionários são
// truncados e qualquer falha resulta em zero.
func ParseQuantity(raw string) int64 {
	cleaned := strings.TrimSpace(raw)
	if quantity, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
		return quantity
	}

	quantity, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	return quantity.IntPart()
}

// GroupByOrder soma as linhas de cada pedido, preservando a ordem do primeiro
// aparecimento. Linhas sem OrderID são ignoradas.
func GroupByOrder(records []domain.SalesRecord) []domain.OrderTotal {
	index := make(map[string]int)
	orders := make([]domain.OrderTotal, 0)

	for _, record := range records {
		if record.OrderID == "" {
			continue
		}

		pos, exists := index[record.OrderID]
		if !exists {
			pos = len(orders)
			index[record.OrderID] = pos
			orders = append(orders, domain.OrderTotal{
				OrderID:    record.OrderID,
				Total:      decimal.Zero,
				OccurredAt: record.OccurredAt,
			})
		}

		order := &orders[pos]
		order.Total = order.Total.Add(record.Amount)
		order.Quantity += record.Quantity
		order.Lines = append(order.Lines, record)
	}

	return orders
}
