package handler

import (
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/vfg2006/sales-range-proxy/internal/api/handler/router"
	"github.com/vfg2006/sales-range-proxy/internal/config"
	"github.com/vfg2006/sales-range-proxy/internal/usecases/querying"
	"github.com/vfg2006/sales-range-proxy/pkg/metrics"
	"github.com/vfg2006/sales-range-proxy/pkg/middleware"
)

const (
	SalesPath       = "/api/v1/sales"
	HealthcheckPath = "/healthcheck"
	MetricsPath     = "/metrics"
)

func Healthcheck(probe StatusReporter) []router.Route {
	return []router.Route{
		{
			Path:    HealthcheckPath,
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(probe),
		},
	}
}

func Sales(service querying.SalesQuerier, cfg *config.Config, v *validatorv10.Validate) []router.Route {
	return []router.Route{
		{
			Path:        SalesPath,
			Method:      http.MethodGet,
			Handler:     GetSales(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.CredentialsMiddleware(v)},
		},
	}
}

func Metrics(collector *metrics.Collector) []router.Route {
	if collector == nil {
		return nil
	}

	return []router.Route{
		{
			Path:    MetricsPath,
			Method:  http.MethodGet,
			Handler: collector.Handler(),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
