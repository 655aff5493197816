package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/stockwise-api/internal/usecases/dashboard"
	"github.com/vfg2006/stockwise-api/internal/usecases/forecasting"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
)

// DashboardStats godoc
// @Summary      Indicadores do painel
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   domain.StatCard
// @Failure      503  {object}  apiErrors.APIError
// @Router       /api/dashboard/stats [get]
func DashboardStats(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.GetStats(r.Context())
		if err != nil {
			logrus.WithError(err).Error("dashboard: erro ao calcular indicadores")
			if errors.Is(err, forecasting.ErrDataUnavailable) {
				apiErrors.WriteError(w, apiErrors.ErrDataUnavailable, "Dados de vendas indisponíveis", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular indicadores", nil)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// ExpiryAlerts godoc
// @Summary      Produtos próximos do vencimento
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   domain.ExpiryAlert
// @Router       /api/dashboard/expiry-alerts [get]
func ExpiryAlerts(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alerts, err := service.GetExpiryAlerts(r.Context())
		if err != nil {
			logrus.WithError(err).Error("dashboard: erro ao listar vencimentos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		writeJSON(w, http.StatusOK, alerts)
	}
}
