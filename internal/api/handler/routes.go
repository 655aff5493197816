package handler

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vfg2006/stockwise-api/internal/api/handler/router"
	"github.com/vfg2006/stockwise-api/internal/usecases/advisor"
	"github.com/vfg2006/stockwise-api/internal/usecases/authenticating"
	"github.com/vfg2006/stockwise-api/internal/usecases/countertop"
	"github.com/vfg2006/stockwise-api/internal/usecases/dashboard"
	"github.com/vfg2006/stockwise-api/internal/usecases/forecasting"
	"github.com/vfg2006/stockwise-api/internal/usecases/security"
	"github.com/vfg2006/stockwise-api/internal/usecases/supplychain"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Swagger() []router.Route {
	return []router.Route{
		{
			Path:    "/swagger/*any",
			Method:  http.MethodGet,
			Handler: httpSwagger.WrapHandler,
		},
	}
}

func Forecast(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sales/monthly",
			Method:  http.MethodGet,
			Handler: MonthlySales(service),
		},
		{
			Path:    "/api/forecast/moving-average",
			Method:  http.MethodGet,
			Handler: MovingAverage(service),
		},
		{
			Path:    "/api/supply-chain/forecast",
			Method:  http.MethodGet,
			Handler: NarratedForecast(service),
		},
	}
}

func Dashboard(service dashboard.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard/stats",
			Method:  http.MethodGet,
			Handler: DashboardStats(service),
		},
		{
			Path:    "/api/dashboard/expiry-alerts",
			Method:  http.MethodGet,
			Handler: ExpiryAlerts(service),
		},
	}
}

func Countertop(service countertop.Countertop) []router.Route {
	return []router.Route{
		{
			Path:    "/api/countertop/products",
			Method:  http.MethodGet,
			Handler: CountertopProducts(service),
		},
		{
			Path:    "/api/countertop/transaction",
			Method:  http.MethodGet,
			Handler: CurrentTransaction(service),
		},
		{
			Path:    "/api/countertop/transaction/add",
			Method:  http.MethodPost,
			Handler: AddTransactionItem(service),
		},
		{
			Path:    "/api/countertop/transaction/complete",
			Method:  http.MethodPost,
			Handler: CompleteTransaction(service),
		},
		{
			Path:    "/api/countertop/transaction/cancel",
			Method:  http.MethodPost,
			Handler: CancelTransaction(service),
		},
	}
}

func Security(service security.Security, generator AlertGenerator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/security/alerts",
			Method:  http.MethodGet,
			Handler: ListSecurityAlerts(service),
		},
		{
			Path:    "/api/security/alerts/:id/confirm",
			Method:  http.MethodPost,
			Handler: ConfirmSecurityAlert(service),
		},
		{
			Path:    "/api/security/alerts/:id/dismiss",
			Method:  http.MethodPost,
			Handler: DismissSecurityAlert(service),
		},
		{
			Path:    "/api/scheduler/alerts/run",
			Method:  http.MethodPost,
			Handler: GenerateSecurityAlert(generator),
		},
		{
			Path:    "/api/scheduler/status",
			Method:  http.MethodGet,
			Handler: SchedulerStatus(generator),
		},
	}
}

func SupplyChain(service supplychain.SupplyChain) []router.Route {
	return []router.Route{
		{
			Path:    "/api/supply-chain/orders",
			Method:  http.MethodGet,
			Handler: ListPurchaseOrders(service),
		},
		{
			Path:    "/api/supply-chain/orders",
			Method:  http.MethodPost,
			Handler: CreatePurchaseOrder(service),
		},
		{
			Path:    "/api/supply-chain/orders/:id/approve",
			Method:  http.MethodPost,
			Handler: ApprovePurchaseOrder(service),
		},
		{
			Path:    "/api/supply-chain/orders/:id/reject",
			Method:  http.MethodPost,
			Handler: RejectPurchaseOrder(service),
		},
	}
}

func Advisor(service advisor.Advisor) []router.Route {
	return []router.Route{
		{
			Path:    "/api/advisor/chat",
			Method:  http.MethodPost,
			Handler: AdvisorChat(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/api/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/api/auth/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}
