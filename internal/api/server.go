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
	"github.com/klauspost/compress/gzhttp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-range-proxy/internal/api/handler"
	"github.com/vfg2006/sales-range-proxy/internal/api/handler/router"
	"github.com/vfg2006/sales-range-proxy/internal/config"
	"github.com/vfg2006/sales-range-proxy/internal/usecases/querying"
	"github.com/vfg2006/sales-range-proxy/internal/validation"
	"github.com/vfg2006/sales-range-proxy/pkg/metrics"
	"github.com/vfg2006/sales-range-proxy/pkg/middleware"
)

const minShutdownTimeout = 15 * time.Second

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// NewHandler monta o router com a cadeia de middlewares globais.
// collector e probe podem ser nil.
func NewHandler(
	config *config.Config,
	salesService querying.SalesQuerier,
	collector *metrics.Collector,
	probe handler.ManualTrigger,
) http.Handler {
	rt := router.New(
		router.WithJSONErrors(),
		router.WithRoutes(handler.Healthcheck(probe)...),
		router.WithRoutes(handler.Sales(salesService, config, validation.New())...),
		router.WithRoutes(handler.Metrics(collector)...),
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{UpstreamProbeService: probe})...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		collector.Middleware(rt.Match),
		middleware.Cors(config.Cors.AllowedOrigins),
		gzipMiddleware,
	}

	return alice.New(middlewares...).Then(rt)
}

// Compressão gzip quando o cliente aceita
func gzipMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

func New(
	config *config.Config,
	salesService querying.SalesQuerier,
	collector *metrics.Collector,
	probe handler.ManualTrigger,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, salesService, collector, probe),
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: max(minShutdownTimeout, config.Upstream.Timeout+5*time.Second),
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

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// O prazo cobre ao menos uma chamada completa ao upstream
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
