package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/stockwise-api/internal/api/handler"
	"github.com/vfg2006/stockwise-api/internal/api/handler/router"
	"github.com/vfg2006/stockwise-api/internal/config"
	"github.com/vfg2006/stockwise-api/internal/usecases/advisor"
	"github.com/vfg2006/stockwise-api/internal/usecases/authenticating"
	"github.com/vfg2006/stockwise-api/internal/usecases/countertop"
	"github.com/vfg2006/stockwise-api/internal/usecases/dashboard"
	"github.com/vfg2006/stockwise-api/internal/usecases/forecasting"
	"github.com/vfg2006/stockwise-api/internal/usecases/security"
	"github.com/vfg2006/stockwise-api/internal/usecases/supplychain"
	"github.com/vfg2006/stockwise-api/pkg/middleware"

	_ "github.com/vfg2006/stockwise-api/docs"
)

type Server struct {
	httpServer *http.Server
}

// Services reúne os casos de uso expostos pela API.
type Services struct {
	DB             handler.Pinger
	Forecaster     forecasting.Forecaster
	Dashboard      dashboard.Dashboard
	Countertop     countertop.Countertop
	Security       security.Security
	AlertGenerator handler.AlertGenerator
	SupplyChain    supplychain.SupplyChain
	Advisor        advisor.Advisor
	Authenticator  authenticating.Authenticator
}

// NewHandler monta o router com a cadeia de middlewares.
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Swagger()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Forecast(services.Forecaster)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
		router.WithRoutes(handler.Countertop(services.Countertop)...),
		router.WithRoutes(handler.Security(services.Security, services.AlertGenerator)...),
		router.WithRoutes(handler.SupplyChain(services.SupplyChain)...),
		router.WithRoutes(handler.Advisor(services.Advisor)...),
		router.WithFiles("/images/*filepath", http.Dir(config.AlertGenerator.ImagesDir)),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator, config.Auth.Enabled),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("authenticator é obrigatório")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
