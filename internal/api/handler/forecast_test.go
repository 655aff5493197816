package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/forecasting"
	"github.com/vfg2006/stockwise-api/internal/usecases/forecasting/mocks"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestMonthlySales(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockForecaster(ctrl)

	service.EXPECT().MonthlySales(gomock.Any()).Return([]domain.MonthlyBucket{
		{Period: "2018-01", TotalQuantity: 5, TotalRevenue: decimal.RequireFromString("1200.50"), RecordCount: 2},
		{Period: "2018-02", TotalQuantity: 1, TotalRevenue: decimal.NewFromInt(300), RecordCount: 1},
	}, nil)

	rec := serve(t, Forecast(service), http.MethodGet, "/api/sales/monthly", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]domain.MonthlySalesResponse](t, rec)
	assert.Equal(t, []domain.MonthlySalesResponse{
		{Period: "2018-01", TotalQuantity: 5, TotalRevenue: 1200.5, RecordCount: 2},
		{Period: "2018-02", TotalQuantity: 1, TotalRevenue: 300, RecordCount: 1},
	}, got)
}

func TestMovingAverage(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockForecaster(ctrl)

	t.Run("sucesso", func(t *testing.T) {
		service.EXPECT().MovingAverage(gomock.Any()).Return([]domain.ForecastPoint{
			{Period: "2018-03", MovingAverage: decimal.NewFromInt(200)},
		}, nil)

		rec := serve(t, Forecast(service), http.MethodGet, "/api/forecast/moving-average", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []domain.ForecastPointResponse{{Period: "2018-03", MovingAverage: 200}},
			decode[[]domain.ForecastPointResponse](t, rec))
	})

	t.Run("série vazia vira lista vazia", func(t *testing.T) {
		service.EXPECT().MovingAverage(gomock.Any()).Return(nil, nil)

		rec := serve(t, Forecast(service), http.MethodGet, "/api/forecast/moving-average", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("fonte indisponível", func(t *testing.T) {
		service.EXPECT().MovingAverage(gomock.Any()).Return(nil, &forecasting.ForecastError{
			Err:    forecasting.ErrDataUnavailable,
			Code:   apiErrors.ErrDataUnavailable,
			Source: "csv",
		})

		rec := serve(t, Forecast(service), http.MethodGet, "/api/forecast/moving-average", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, apiErrors.ErrDataUnavailable, errorCode(t, rec))
	})

	t.Run("série fora de ordem", func(t *testing.T) {
		service.EXPECT().MovingAverage(gomock.Any()).Return(nil, forecasting.ErrSeriesNotOrdered)

		rec := serve(t, Forecast(service), http.MethodGet, "/api/forecast/moving-average", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestNarratedForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockForecaster(ctrl)

	t.Run("sucesso", func(t *testing.T) {
		service.EXPECT().NarratedForecast(gomock.Any()).Return("- Bread: steady", nil)

		rec := serve(t, Forecast(service), http.MethodGet, "/api/supply-chain/forecast", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"forecast":"- Bread: steady"}`, rec.Body.String())
	})

	t.Run("erro encapsulado", func(t *testing.T) {
		service.EXPECT().NarratedForecast(gomock.Any()).Return("", fmt.Errorf("%w: leitura do csv", forecasting.ErrDataUnavailable))

		rec := serve(t, Forecast(service), http.MethodGet, "/api/supply-chain/forecast", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, apiErrors.ErrDataUnavailable, errorCode(t, rec))
	})
}
