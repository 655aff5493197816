package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/forecasting"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
)

// MonthlySales godoc
// @Summary      Vendas mensais agregadas
// @Tags         forecast
// @Produce      json
// @Success      200  {array}   domain.MonthlySalesResponse
// @Failure      503  {object}  apiErrors.APIError
// @Router       /api/sales/monthly [get]
func MonthlySales(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buckets, err := service.MonthlySales(r.Context())
		if err != nil {
			handleForecastError(w, err)
			return
		}

		response := make([]domain.MonthlySalesResponse, 0, len(buckets))
		for _, b := range buckets {
			response = append(response, domain.MonthlySalesResponse{
				Period:        b.Period,
				TotalQuantity: b.TotalQuantity,
				TotalRevenue:  b.TotalRevenue.InexactFloat64(),
				RecordCount:   b.RecordCount,
			})
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// MovingAverage godoc
// @Summary      Média móvel de 3 meses
// @Tags         forecast
// @Produce      json
// @Success      200  {array}   domain.ForecastPointResponse
// @Failure      503  {object}  apiErrors.APIError
// @Router       /api/forecast/moving-average [get]
func MovingAverage(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		points, err := service.MovingAverage(r.Context())
		if err != nil {
			handleForecastError(w, err)
			return
		}

		response := make([]domain.ForecastPointResponse, 0, len(points))
		for _, p := range points {
			response = append(response, domain.ForecastPointResponse{
				Period:        p.Period,
				MovingAverage: p.MovingAverage.InexactFloat64(),
			})
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// NarratedForecast godoc
// @Summary      Previsão de demanda em texto
// @Tags         forecast
// @Produce      json
// @Success      200  {object}  domain.ForecastNarrationResponse
// @Failure      503  {object}  apiErrors.APIError
// @Router       /api/supply-chain/forecast [get]
func NarratedForecast(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := service.NarratedForecast(r.Context())
		if err != nil {
			handleForecastError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.ForecastNarrationResponse{Forecast: text})
	}
}

func handleForecastError(w http.ResponseWriter, err error) {
	logrus.WithError(err).Error("forecast: falha ao calcular previsão")

	var forecastErr *forecasting.ForecastError
	if errors.As(err, &forecastErr) {
		apiErrors.WriteError(w, forecastErr.Code, forecastErr.Error(), nil)
		return
	}

	if errors.Is(err, forecasting.ErrDataUnavailable) {
		apiErrors.WriteError(w, apiErrors.ErrDataUnavailable, "Dados de vendas indisponíveis", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular previsão", nil)
}
