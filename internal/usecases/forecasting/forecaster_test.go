package forecasting

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/stockwise-api/internal/domain"
)

func TestForecast_Scenario(t *testing.T) {
	ordered := NewAggregator(DropNegative).Aggregate(scenarioRecords()).Ordered()

	points, err := Forecast(ordered)
	require.NoError(t, err)

	want := []domain.ForecastPoint{
		{Period: "2024-03", MovingAverage: decimal.RequireFromString("19.17")},
	}
	if diff := cmp.Diff(want, points, decimalEqual); diff != "" {
		t.Errorf("previsão diferente (-want +got):\n%s", diff)
	}
	assert.Equal(t, "19.17", points[0].MovingAverage.StringFixed(2))
}

func TestForecast_WindowLengthLaw(t *testing.T) {
	for n := 0; n <= 12; n++ {
		t.Run(fmt.Sprintf("%d meses", n), func(t *testing.T) {
			buckets := make([]domain.MonthlyBucket, 0, n)
			for i := 0; i < n; i++ {
				buckets = append(buckets, domain.MonthlyBucket{
					Period:        fmt.Sprintf("2023-%02d", i+1),
					TotalQuantity: int64(i + 1),
					TotalRevenue:  decimal.NewFromInt(int64(i + 1)),
					RecordCount:   1,
				})
			}

			points, err := Forecast(buckets)
			require.NoError(t, err)
			require.NotNil(t, points)
			assert.Len(t, points, max(0, n-2))

			for i := 1; i < len(points); i++ {
				assert.Less(t, points[i-1].Period, points[i].Period)
			}
		})
	}
}

func TestForecast_SlidingWindow(t *testing.T) {
	buckets := []domain.MonthlyBucket{
		{Period: "2024-01", TotalQuantity: 3, RecordCount: 1},
		{Period: "2024-02", TotalQuantity: 6, RecordCount: 2},
		{Period: "2024-03", TotalQuantity: 9, RecordCount: 3},
		{Period: "2024-04", TotalQuantity: 10, RecordCount: 1},
	}

	points, err := Forecast(buckets)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, "2024-03", points[0].Period)
	assert.Equal(t, "3.00", points[0].MovingAverage.StringFixed(2))
	assert.Equal(t, "2024-04", points[1].Period)
	assert.Equal(t, "5.33", points[1].MovingAverage.StringFixed(2))
}

func TestForecast_RoundsHalfAwayFromZero(t *testing.T) {
	// médias 0.125, 0.125, 0.125 resultam em 0.125, que arredonda para 0.13
	buckets := []domain.MonthlyBucket{
		{Period: "2024-01", TotalQuantity: 1, RecordCount: 8},
		{Period: "2024-02", TotalQuantity: 1, RecordCount: 8},
		{Period: "2024-03", TotalQuantity: 1, RecordCount: 8},
	}

	points, err := Forecast(buckets)
	require.NoError(t, err)
	assert.Equal(t, "0.13", points[0].MovingAverage.StringFixed(2))
}

func TestForecast_IsDeterministic(t *testing.T) {
	records := append(scenarioRecords(), record("2024-04", 11, 110), record("2024-04", 2, 20))

	run := func() []domain.ForecastPoint {
		points, err := Forecast(NewAggregator(DropNegative).Aggregate(records).Ordered())
		require.NoError(t, err)
		return points
	}

	first, second := run(), run()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Period, second[i].Period)
		assert.Equal(t, first[i].MovingAverage.String(), second[i].MovingAverage.String())
	}
}

func TestForecast_RejectsUnorderedSeries(t *testing.T) {
	tests := []struct {
		name    string
		buckets []domain.MonthlyBucket
	}{
		{
			name: "fora de ordem",
			buckets: []domain.MonthlyBucket{
				{Period: "2024-02", TotalQuantity: 1, RecordCount: 1},
				{Period: "2024-01", TotalQuantity: 1, RecordCount: 1},
				{Period: "2024-03", TotalQuantity: 1, RecordCount: 1},
			},
		},
		{
			name: "período duplicado",
			buckets: []domain.MonthlyBucket{
				{Period: "2024-01", TotalQuantity: 1, RecordCount: 1},
				{Period: "2024-01", TotalQuantity: 1, RecordCount: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Forecast(tt.buckets)
			assert.ErrorIs(t, err, ErrSeriesNotOrdered)
			assert.Nil(t, points)
		})
	}
}

func TestForecast_PanicsOnEmptyBucket(t *testing.T) {
	buckets := []domain.MonthlyBucket{
		{Period: "2024-01", TotalQuantity: 1, RecordCount: 1},
		{Period: "2024-02", TotalQuantity: 0, RecordCount: 0},
		{Period: "2024-03", TotalQuantity: 1, RecordCount: 1},
	}

	assert.Panics(t, func() {
		_, _ = Forecast(buckets)
	})
}
