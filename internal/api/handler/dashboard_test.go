package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/stockwise-api/internal/usecases/forecasting"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboard(ctrl)

	t.Run("sucesso", func(t *testing.T) {
		stats := []domain.StatCard{
			{ID: 1, Title: "Today's Revenue", Value: "R 68.00"},
			{ID: 2, Title: "Today's Sales", Value: "3 items"},
		}
		service.EXPECT().GetStats(gomock.Any()).Return(stats, nil)

		rec := serve(t, Dashboard(service), http.MethodGet, "/api/dashboard/stats", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, stats, decode[[]domain.StatCard](t, rec))
	})

	t.Run("fonte indisponível", func(t *testing.T) {
		service.EXPECT().GetStats(gomock.Any()).Return(nil, fmt.Errorf("%w: conexão recusada", forecasting.ErrDataUnavailable))

		rec := serve(t, Dashboard(service), http.MethodGet, "/api/dashboard/stats", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, apiErrors.ErrDataUnavailable, errorCode(t, rec))
	})

	t.Run("erro genérico", func(t *testing.T) {
		service.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("boom"))

		rec := serve(t, Dashboard(service), http.MethodGet, "/api/dashboard/stats", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestExpiryAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboard(ctrl)

	t.Run("sucesso", func(t *testing.T) {
		alerts := []domain.ExpiryAlert{{ID: "p2", Name: "Brown Bread", DaysLeft: 2, Stock: 12}}
		service.EXPECT().GetExpiryAlerts(gomock.Any()).Return(alerts, nil)

		rec := serve(t, Dashboard(service), http.MethodGet, "/api/dashboard/expiry-alerts", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":"p2","name":"Brown Bread","daysLeft":2,"stock":12}]`, rec.Body.String())
	})

	t.Run("erro no banco", func(t *testing.T) {
		service.EXPECT().GetExpiryAlerts(gomock.Any()).Return(nil, errors.New("db down"))

		rec := serve(t, Dashboard(service), http.MethodGet, "/api/dashboard/expiry-alerts", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, errorCode(t, rec))
	})
}
