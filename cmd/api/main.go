package main

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/stockwise-api/infrastructure/database"
	"github.com/vfg2006/stockwise-api/infrastructure/dataset"
	"github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini"
	geminidomain "github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/domain"
	"github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/stockwise-api/infrastructure/migration"
	"github.com/vfg2006/stockwise-api/infrastructure/repository"
	"github.com/vfg2006/stockwise-api/internal/api"
	"github.com/vfg2006/stockwise-api/internal/config"
	"github.com/vfg2006/stockwise-api/internal/scheduler"
	"github.com/vfg2006/stockwise-api/internal/usecases/advisor"
	"github.com/vfg2006/stockwise-api/internal/usecases/authenticating"
	"github.com/vfg2006/stockwise-api/internal/usecases/countertop"
	"github.com/vfg2006/stockwise-api/internal/usecases/dashboard"
	"github.com/vfg2006/stockwise-api/internal/usecases/forecasting"
	"github.com/vfg2006/stockwise-api/internal/usecases/security"
	"github.com/vfg2006/stockwise-api/internal/usecases/supplychain"
	"github.com/vfg2006/stockwise-api/pkg/log"
)

// @title           Stockwise API
// @version         1.0
// @description     Inteligência de vendas, estoque e segurança para pequenos comércios.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	migrate(ctx, conn)

	productRepo := repository.NewProductRepository(conn)
	transactionRepo := repository.NewTransactionRepository(conn)
	alertRepo := repository.NewAlertRepository(conn)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(conn)
	userRepo := repository.NewUserRepository(conn)

	salesSource, sourceName := salesSource(cfg.Forecast, conn)
	aggregator := forecasting.NewAggregator(forecasting.PolicyFromConfig(cfg.Forecast.AmountPolicy))
	narrator := newNarrator(ctx, cfg.Gemini)
	loc := cfg.Dashboard.Location()

	authenticator := authenticating.NewService(userRepo, cfg.Auth)
	forecaster := forecasting.NewService(salesSource, sourceName, aggregator, narrator)
	dashboardService := dashboard.NewService(salesSource, productRepo, aggregator, cfg.Dashboard)
	countertopService := countertop.NewService(productRepo, transactionRepo)
	securityService := security.NewService(alertRepo, narrator, cfg.AlertGenerator, loc)
	supplyChainService := supplychain.NewService(purchaseOrderRepo, cfg.Dashboard.CurrencyPrefix)
	advisorService := advisor.NewService(narrator)

	alertGenerator := scheduler.NewAlertGeneratorService(securityService, cfg.AlertGenerator)
	if err := alertGenerator.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o gerador de alertas de segurança")
	}

	server, err := api.New(cfg, api.Services{
		DB:             conn,
		Forecaster:     forecaster,
		Dashboard:      dashboardService,
		Countertop:     countertopService,
		Security:       securityService,
		AlertGenerator: alertGenerator,
		SupplyChain:    supplyChainService,
		Advisor:        advisorService,
		Authenticator:  authenticator,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn cria a conexão com o banco configurado
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}

func migrate(ctx context.Context, conn *database.Connection) {
	migrator := migration.NewMigrator(conn)

	applied, err := migrator.Up(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}
	if len(applied) > 0 {
		logrus.WithField("migrations", applied).Info("Migrações aplicadas")
	}

	seeded, err := migrator.SeedDefaults(ctx, time.Now())
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao popular dados iniciais")
	}
	if seeded > 0 {
		logrus.Infof("%d registros iniciais inseridos", seeded)
	}
}

func salesSource(cfg config.Forecast, conn *database.Connection) (forecasting.SalesSource, string) {
	if cfg.Source == config.ForecastSourceCSV {
		logrus.WithField("path", cfg.CSVPath).Info("Previsão lendo vendas do CSV")
		return dataset.NewCSVSource(cfg.CSVPath), config.ForecastSourceCSV
	}
	return repository.NewSalesRecordRepository(conn), config.ForecastSourceDatabase
}

// newNarrator usa o Gemini quando há chave de API; sem ela todas as respostas
// vêm do FallbackNarrator.
func newNarrator(ctx context.Context, cfg config.Gemini) gemini.Narrator {
	fallback := gemini.NewFallbackNarrator()

	client, err := geminiclient.NewClient(ctx, cfg)
	if err != nil {
		if errors.Is(err, geminidomain.ErrNotConfigured) {
			logrus.Warn("GEMINI_API_KEY ausente, usando respostas padrão")
		} else {
			logrus.WithError(err).Error("Erro ao criar cliente do Gemini, usando respostas padrão")
		}
		return fallback
	}

	return gemini.WithFallback(gemini.New(client), fallback)
}
