package forecasting

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini"
	geminidomain "github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/domain"
	narratormocks "github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/mocks"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/forecasting/mocks"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_MonthlySales(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSalesSource(ctrl)
	svc := NewService(source, "database", NewAggregator(DropNegative), gemini.NewFallbackNarrator())

	source.EXPECT().ListSalesRecords(gomock.Any()).Return(scenarioRecords(), nil)

	buckets, err := svc.MonthlySales(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 3)
	assert.Equal(t, "2024-01", buckets[0].Period)
	assert.Equal(t, int64(15), buckets[0].TotalQuantity)
}

func TestService_MovingAverage(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSalesSource(ctrl)
	svc := NewService(source, "csv", NewAggregator(DropNegative), gemini.NewFallbackNarrator())

	source.EXPECT().ListSalesRecords(gomock.Any()).Return(scenarioRecords(), nil)

	points, err := svc.MovingAverage(context.Background())
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "2024-03", points[0].Period)
	assert.Equal(t, "19.17", points[0].MovingAverage.StringFixed(2))
}

func TestService_SourceFailureIsDataUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSalesSource(ctrl)
	svc := NewService(source, "csv", NewAggregator(DropNegative), gemini.NewFallbackNarrator())

	cause := errors.New("open dataset/Sales Dataset.csv: no such file or directory")
	source.EXPECT().ListSalesRecords(gomock.Any()).Return(nil, cause)

	_, err := svc.MovingAverage(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataUnavailable)
	assert.ErrorIs(t, err, cause)

	var forecastErr *ForecastError
	require.True(t, errors.As(err, &forecastErr))
	assert.Equal(t, apiErrors.ErrDataUnavailable, forecastErr.Code)
	assert.Equal(t, "csv", forecastErr.Source)
}

func TestService_NarratedForecast(t *testing.T) {
	t.Run("usa o texto do modelo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockSalesSource(ctrl)
		narrator := narratormocks.NewMockNarrator(ctrl)
		svc := NewService(source, "database", NewAggregator(DropNegative), narrator)

		source.EXPECT().ListSalesRecords(gomock.Any()).Return(scenarioRecords(), nil)
		narrator.EXPECT().
			Narrate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req geminidomain.NarrationRequest) (string, error) {
				assert.Equal(t, geminidomain.TopicForecast, req.Topic)
				assert.Equal(t, []string{"2024-03: 19.17 units per sale (3-month moving average)"}, req.Facts)
				assert.Contains(t, req.Prompt, "2024-03: 19.17")
				return "- Demand is rising", nil
			})

		text, err := svc.NarratedForecast(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "- Demand is rising", text)
	})

	t.Run("modelo indisponível cai para os fatos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockSalesSource(ctrl)
		primary := narratormocks.NewMockNarrator(ctrl)
		svc := NewService(source, "database", NewAggregator(DropNegative), gemini.WithFallback(primary, gemini.NewFallbackNarrator()))

		source.EXPECT().ListSalesRecords(gomock.Any()).Return(scenarioRecords(), nil)
		primary.EXPECT().Narrate(gomock.Any(), gomock.Any()).Return("", geminidomain.ErrQuotaExceeded)

		text, err := svc.NarratedForecast(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "- 2024-03: 19.17 units per sale (3-month moving average)", text)
	})

	t.Run("sem meses suficientes não chama o modelo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockSalesSource(ctrl)
		narrator := narratormocks.NewMockNarrator(ctrl)
		svc := NewService(source, "database", NewAggregator(DropNegative), narrator)

		source.EXPECT().ListSalesRecords(gomock.Any()).Return(scenarioRecords()[:2], nil)

		text, err := svc.NarratedForecast(context.Background())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, "- "))
		assert.Contains(t, text, gemini.ForecastNoDataText)
	})
}

func TestService_ConcurrentCallsAreConsistent(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSalesSource(ctrl)
	svc := NewService(source, "database", NewAggregator(DropNegative), gemini.NewFallbackNarrator())

	source.EXPECT().ListSalesRecords(gomock.Any()).Return(scenarioRecords(), nil).MinTimes(1).MaxTimes(8)

	var wg sync.WaitGroup
	results := make([][]domain.ForecastPoint, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			points, err := svc.MovingAverage(context.Background())
			assert.NoError(t, err)
			results[i] = points
		}(i)
	}
	wg.Wait()

	for _, points := range results {
		require.Len(t, points, 1)
		assert.Equal(t, "19.17", points[0].MovingAverage.StringFixed(2))
	}
}

func TestService_CancelledCallerDoesNotFailConcurrentCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSalesSource(ctrl)
	svc := NewService(source, "database", NewAggregator(DropNegative), gemini.NewFallbackNarrator())

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	source.EXPECT().ListSalesRecords(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.SalesRecord, error) {
		started <- struct{}{}
		select {
		case <-release:
			return scenarioRecords(), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}).MinTimes(1).MaxTimes(2)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.MonthlySales(firstCtx)
		firstErr <- err
	}()
	<-started

	type result struct {
		buckets []domain.MonthlyBucket
		err     error
	}
	second := make(chan result, 1)
	go func() {
		buckets, err := svc.MonthlySales(context.Background())
		second <- result{buckets, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	res := <-second
	require.NoError(t, res.err)
	assert.Len(t, res.buckets, 3)
}
