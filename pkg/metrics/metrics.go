// Package metrics expõe métricas Prometheus do proxy de vendas.
//
// Todas as métricas são registradas em um registry próprio, servido por Handler.
// Os métodos aceitam receptor nil para que testes e serviços possam operar sem coletor.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados possíveis de uma chamada ao upstream
const (
	OutcomeOK             = "ok"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
)

const unmatchedRoute = "unmatched"

type Collector struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec

	fanOutBuckets       prometheus.Histogram
	fanOutFailedBuckets prometheus.Counter
	inFlightFetches     prometheus.Gauge
}

// NewCollector cria e registra as métricas com o namespace informado
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "sales_proxy"
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms a ~40s
			},
			[]string{"route", "method"},
		),
		upstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Total number of upstream sales requests by outcome",
			},
			[]string{"outcome"},
		),
		upstreamLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_latency_seconds",
				Help:      "Upstream sales request latency in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"outcome"},
		),
		fanOutBuckets: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fanout_buckets",
				Help:      "Number of day buckets per sales request",
				Buckets:   []float64{1, 7, 31, 90, 180, 365, 1000},
			},
		),
		fanOutFailedBuckets: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fanout_failed_buckets_total",
				Help:      "Total number of day buckets that resolved to an error",
			},
		),
		inFlightFetches: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "upstream_in_flight_requests",
				Help:      "Upstream sales requests currently in flight",
			},
		),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpRequests,
		c.httpDuration,
		c.upstreamRequests,
		c.upstreamLatency,
		c.fanOutBuckets,
		c.fanOutFailedBuckets,
		c.inFlightFetches,
	)

	return c
}

// Handler retorna o endpoint de exposição no formato Prometheus
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

// Registry expõe o registry, usado em testes
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) ObserveUpstream(outcome string, d time.Duration) {
	if c == nil {
		return
	}
	c.upstreamRequests.WithLabelValues(outcome).Inc()
	c.upstreamLatency.WithLabelValues(outcome).Observe(d.Seconds())
}

func (c *Collector) ObserveFanOut(buckets, failed int) {
	if c == nil {
		return
	}
	c.fanOutBuckets.Observe(float64(buckets))
	c.fanOutFailedBuckets.Add(float64(failed))
}

func (c *Collector) FetchStarted() {
	if c == nil {
		return
	}
	c.inFlightFetches.Inc()
}

func (c *Collector) FetchFinished() {
	if c == nil {
		return
	}
	c.inFlightFetches.Dec()
}

// RouteMatcher devolve o rótulo de rota de uma requisição e se ela corresponde a uma rota conhecida
type RouteMatcher func(r *http.Request) (string, bool)

// StaticRoutes casa apenas caminhos exatos
func StaticRoutes(routes ...string) RouteMatcher {
	known := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		known[route] = struct{}{}
	}

	return func(r *http.Request) (string, bool) {
		_, ok := known[r.URL.Path]
		return r.URL.Path, ok
	}
}

// Middleware registra contagem e latência das requisições HTTP. Requisições que match não
// reconhece são agrupadas em um único rótulo para não explodir a cardinalidade.
func (c *Collector) Middleware(match RouteMatcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if c == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, ok := match(r)
			if !ok {
				route = unmatchedRoute
			}

			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rec, r)

			c.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(rec.statusCode)).Inc()
			c.httpDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}
