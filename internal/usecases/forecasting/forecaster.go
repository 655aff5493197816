package forecasting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/stockwise-api/internal/domain"
)

// WindowSize é o tamanho da janela da média móvel.
const WindowSize = 3

var three = decimal.NewFromInt(WindowSize)

// Forecast calcula a média móvel de 3 meses da quantidade média por registro.
// A série precisa estar em ordem estritamente crescente de período; caso
// contrário devolve ErrSeriesNotOrdered sem reordenar. Menos de 3 meses
// resulta em série vazia.
func Forecast(ordered []domain.MonthlyBucket) ([]domain.ForecastPoint, error) {
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Period <= ordered[i-1].Period {
			return nil, fmt.Errorf("%w: %s após %s", ErrSeriesNotOrdered, ordered[i].Period, ordered[i-1].Period)
		}
	}

	if len(ordered) < WindowSize {
		return []domain.ForecastPoint{}, nil
	}

	points := make([]domain.ForecastPoint, 0, len(ordered)-WindowSize+1)
	for i := WindowSize - 1; i < len(ordered); i++ {
		sum := meanQuantity(ordered[i-2]).
			Add(meanQuantity(ordered[i-1])).
			Add(meanQuantity(ordered[i]))

		points = append(points, domain.ForecastPoint{
			Period:        ordered[i].Period,
			MovingAverage: sum.Div(three).Round(2),
		})
	}

	return points, nil
}

// meanQuantity é totalQuantity / recordCount. Bucket sem registros indica
// defeito na agregação e interrompe a execução.
func meanQuantity(bucket domain.MonthlyBucket) decimal.Decimal {
	if bucket.RecordCount == 0 {
		panic(fmt.Sprintf("forecast: bucket %q sem registros", bucket.Period))
	}

	return decimal.NewFromInt(bucket.TotalQuantity).Div(decimal.NewFromInt(bucket.RecordCount))
}
