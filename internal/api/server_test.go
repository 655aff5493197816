package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/stockwise-api/internal/config"
	"github.com/vfg2006/stockwise-api/internal/domain"
	advisormocks "github.com/vfg2006/stockwise-api/internal/usecases/advisor/mocks"
	authmocks "github.com/vfg2006/stockwise-api/internal/usecases/authenticating/mocks"
	countertopmocks "github.com/vfg2006/stockwise-api/internal/usecases/countertop/mocks"
	dashboardmocks "github.com/vfg2006/stockwise-api/internal/usecases/dashboard/mocks"
	forecastmocks "github.com/vfg2006/stockwise-api/internal/usecases/forecasting/mocks"
	securitymocks "github.com/vfg2006/stockwise-api/internal/usecases/security/mocks"
	supplymocks "github.com/vfg2006/stockwise-api/internal/usecases/supplychain/mocks"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type securityGenerator struct{}

func (securityGenerator) GetStatus() map[string]any { return map[string]any{"running": false} }
func (securityGenerator) Run(context.Context) (*domain.SecurityAlert, error) {
	return nil, nil
}

func newTestHandler(t *testing.T, authEnabled bool) (http.Handler, *authmocks.MockAuthenticator, *dashboardmocks.MockDashboard) {
	t.Helper()
	ctrl := gomock.NewController(t)

	imagesDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(imagesDir, "iconic"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(imagesDir, "iconic", "Apple.jpg"), []byte("jpeg"), 0o644))

	cfg := &config.Config{
		Auth:           config.Auth{Secret: "s3cr3t", Enabled: authEnabled},
		Cors:           config.Cors{AllowedOrigins: []string{"http://localhost:5173"}},
		AlertGenerator: config.AlertGenerator{ImagesDir: imagesDir},
	}

	auth := authmocks.NewMockAuthenticator(ctrl)
	dash := dashboardmocks.NewMockDashboard(ctrl)
	services := Services{
		Forecaster:     forecastmocks.NewMockForecaster(ctrl),
		Dashboard:      dash,
		Countertop:     countertopmocks.NewMockCountertop(ctrl),
		Security:       securitymocks.NewMockSecurity(ctrl),
		AlertGenerator: securityGenerator{},
		SupplyChain:    supplymocks.NewMockSupplyChain(ctrl),
		Advisor:        advisormocks.NewMockAdvisor(ctrl),
		Authenticator:  auth,
	}

	return NewHandler(cfg, services), auth, dash
}

func TestNewHandler_AuthEnabled(t *testing.T) {
	h, auth, dash := newTestHandler(t, true)

	t.Run("rota protegida sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rota protegida com token", func(t *testing.T) {
		auth.EXPECT().ValidateToken("good").Return(&domain.Claims{UserID: 1}, nil)
		dash.EXPECT().GetStats(gomock.Any()).Return([]domain.StatCard{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("healthcheck público", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("imagens públicas", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/iconic/Apple.jpg", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "jpeg", rec.Body.String())
	})
}

func TestNewHandler_AuthDisabled(t *testing.T) {
	h, _, dash := newTestHandler(t, false)
	dash.EXPECT().GetStats(gomock.Any()).Return([]domain.StatCard{{ID: 1, Title: "Today's Revenue", Value: "R 0.00"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestNewHandler_UnknownRoute(t *testing.T) {
	h, _, _ := newTestHandler(t, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrResourceNotFound)
}

func TestNew_RequiresAuthenticator(t *testing.T) {
	_, err := New(&config.Config{}, Services{})
	assert.Error(t, err)
}
