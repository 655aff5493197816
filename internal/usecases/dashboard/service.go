package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/stockwise-api/infrastructure/repository"
	"github.com/vfg2006/stockwise-api/internal/config"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/forecasting"
	"github.com/vfg2006/stockwise-api/pkg/log"
	"github.com/vfg2006/stockwise-api/pkg/utils"
)

const (
	StatTodaysRevenue = iota + 1
	StatTodaysSales
	StatMonthRevenue
	StatTotalSales
)

type Dashboard interface {
	GetStats(ctx context.Context) ([]domain.StatCard, error)
	GetExpiryAlerts(ctx context.Context) ([]domain.ExpiryAlert, error)
}

type Service struct {
	sales      forecasting.SalesSource
	products   repository.ProductRepository
	aggregator *forecasting.Aggregator
	cfg        config.Dashboard
	loc        *time.Location
	now        func() time.Time
}

func NewService(sales forecasting.SalesSource, products repository.ProductRepository, aggregator *forecasting.Aggregator, cfg config.Dashboard) Dashboard {
	if cfg.CurrencyPrefix == "" {
		cfg.CurrencyPrefix = utils.DefaultCurrencyPrefix
	}

	return &Service{
		sales:      sales,
		products:   products,
		aggregator: aggregator,
		cfg:        cfg,
		loc:        cfg.Location(),
		now:        time.Now,
	}
}

// GetStats monta os cartões de KPI. "Hoje" e "este mês" são avaliados no fuso
// configurado; registros sem data entram apenas no total.
func (s *Service) GetStats(ctx context.Context) ([]domain.StatCard, error) {
	records, err := s.sales.ListSalesRecords(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: erro ao carregar vendas")
		return nil, fmt.Errorf("%w: %w", forecasting.ErrDataUnavailable, err)
	}

	now := s.now()
	currentPeriod := utils.PeriodOf(now, s.loc)

	today := make([]domain.SalesRecord, 0)
	month := make([]domain.SalesRecord, 0)
	for _, record := range records {
		if record.OccurredAt == nil {
			if record.Period == currentPeriod {
				month = append(month, record)
			}
			continue
		}

		if utils.SameDay(*record.OccurredAt, now, s.loc) {
			today = append(today, record)
		}
		if utils.PeriodOf(*record.OccurredAt, s.loc) == currentPeriod {
			month = append(month, record)
		}
	}

	todayQty, todayRevenue, _ := s.aggregator.Aggregate(today).Totals()
	_, monthRevenue, _ := s.aggregator.Aggregate(month).Totals()
	_, totalRevenue, _ := s.aggregator.Aggregate(records).Totals()

	return []domain.StatCard{
		{ID: StatTodaysRevenue, Title: "Today's Revenue", Value: utils.FormatMoney(s.cfg.CurrencyPrefix, todayRevenue)},
		{ID: StatTodaysSales, Title: "Today's Sales", Value: fmt.Sprintf("%d items", todayQty)},
		{ID: StatMonthRevenue, Title: "This Month's Revenue", Value: utils.FormatMoney(s.cfg.CurrencyPrefix, monthRevenue)},
		{ID: StatTotalSales, Title: "Total Sales", Value: utils.FormatMoney(s.cfg.CurrencyPrefix, totalRevenue)},
	}, nil
}

// GetExpiryAlerts lista produtos em estoque que vencem dentro da janela
// configurada, do mais urgente para o menos urgente.
func (s *Service) GetExpiryAlerts(ctx context.Context) ([]domain.ExpiryAlert, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: erro ao listar produtos")
		return nil, err
	}

	today := midnight(s.now(), s.loc)
	alerts := make([]domain.ExpiryAlert, 0)
	for _, p := range products {
		if p.ExpiresAt == nil || p.Stock <= 0 {
			continue
		}

		daysLeft := DaysBetween(today, calendarDate(*p.ExpiresAt, s.loc))
		if daysLeft < 0 || daysLeft > s.cfg.ExpiryWindowDays {
			continue
		}

		alerts = append(alerts, domain.ExpiryAlert{
			ID:       p.ID,
			Name:     p.Name,
			DaysLeft: daysLeft,
			Stock:    p.Stock,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].DaysLeft != alerts[j].DaysLeft {
			return alerts[i].DaysLeft < alerts[j].DaysLeft
		}
		return alerts[i].Name < alerts[j].Name
	})

	return alerts, nil
}

func midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// calendarDate mantém o dia gravado (coluna DATE) sem converter de fuso.
func calendarDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DaysBetween conta dias de calendário entre duas meias-noites. Arredonda para
// absorver mudanças de horário de verão.
func DaysBetween(from, to time.Time) int {
	hours := to.Sub(from).Hours()
	if hours < 0 {
		return -int((-hours + 12) / 24)
	}
	return int((hours + 12) / 24)
}
