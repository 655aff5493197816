package forecasting

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini"
	geminidomain "github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/domain"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/pkg/log"
	"golang.org/x/sync/singleflight"
)

// SalesSource fornece o lote completo de registros de venda. Falhas de I/O são
// reportadas ao chamador, que as converte em ErrDataUnavailable.
type SalesSource interface {
	ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
}

type Forecaster interface {
	MonthlySales(ctx context.Context) ([]domain.MonthlyBucket, error)
	MovingAverage(ctx context.Context) ([]domain.ForecastPoint, error)
	NarratedForecast(ctx context.Context) (string, error)
}

const narrationPrompt = "You are a retail demand planner for a small grocery shop. " +
	"Below is a 3-month trailing moving average of the mean units sold per sale line, one line per month. " +
	"Write a short forecast for the shop owner as bullet points (each line starting with '- '), " +
	"covering the trend, what to expect next month and one stocking recommendation.\n\n%s"

type Service struct {
	source     SalesSource
	sourceName string
	aggregator *Aggregator
	narrator   gemini.Narrator
	inflight   singleflight.Group
}

func NewService(source SalesSource, sourceName string, aggregator *Aggregator, narrator gemini.Narrator) Forecaster {
	return &Service{
		source:     source,
		sourceName: sourceName,
		aggregator: aggregator,
		narrator:   narrator,
	}
}

// aggregate lê a fonte e agrupa por mês. Chamadas concorrentes compartilham a
// mesma leitura em andamento; nada é guardado depois que ela termina. A leitura
// compartilhada não herda o cancelamento de quem a iniciou: cada chamador só
// deixa de esperar quando o próprio ctx termina.
func (s *Service) aggregate(ctx context.Context) (*Aggregation, error) {
	logger := log.ForContext(ctx).WithField("source", s.sourceName)
	loadCtx := context.WithoutCancel(ctx)

	ch := s.inflight.DoChan("aggregate", func() (interface{}, error) {
		records, err := s.source.ListSalesRecords(loadCtx)
		if err != nil {
			return nil, newDataUnavailable(s.sourceName, err)
		}

		agg := s.aggregator.Aggregate(records)
		logger.WithFields(log.Fields{
			"months":  agg.Len(),
			"skipped": agg.Skipped,
			"records": len(records),
		}).Debug("forecast: registros agregados")

		return agg, nil
	})

	select {
	case <-ctx.Done():
		logger.WithError(ctx.Err()).Debug("forecast: requisição encerrada antes da agregação")
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			logger.WithError(res.Err).Error("forecast: erro ao carregar registros de venda")
			return nil, res.Err
		}
		if res.Shared {
			logger.Debug("forecast: agregação compartilhada com requisição concorrente")
		}
		return res.Val.(*Aggregation), nil
	}
}

func (s *Service) MonthlySales(ctx context.Context) ([]domain.MonthlyBucket, error) {
	agg, err := s.aggregate(ctx)
	if err != nil {
		return nil, err
	}

	return agg.Ordered(), nil
}

func (s *Service) MovingAverage(ctx context.Context) ([]domain.ForecastPoint, error) {
	agg, err := s.aggregate(ctx)
	if err != nil {
		return nil, err
	}

	points, err := Forecast(agg.Ordered())
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"months": agg.Len(),
		"points": len(points),
	}).Info("forecast: média móvel calculada")

	return points, nil
}

// NarratedForecast devolve a previsão como tópicos. Sem pontos suficientes o
// modelo não é consultado.
func (s *Service) NarratedForecast(ctx context.Context) (string, error) {
	points, err := s.MovingAverage(ctx)
	if err != nil {
		return "", err
	}

	facts := ForecastFacts(points)
	req := geminidomain.NarrationRequest{
		Topic:  geminidomain.TopicForecast,
		Prompt: fmt.Sprintf(narrationPrompt, strings.Join(facts, "\n")),
		Facts:  facts,
	}

	if len(points) == 0 {
		return gemini.NewFallbackNarrator().Narrate(ctx, req)
	}

	return s.narrator.Narrate(ctx, req)
}

// ForecastFacts formata cada ponto como uma linha legível.
func ForecastFacts(points []domain.ForecastPoint) []string {
	facts := make([]string, 0, len(points))
	for _, p := range points {
		facts = append(facts, fmt.Sprintf("%s: %s units per sale (3-month moving average)", p.Period, p.MovingAverage.StringFixed(2)))
	}
	return facts
}
