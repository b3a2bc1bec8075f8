package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody"
	"github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody/mindbodyclient"
	"github.com/vfg2006/sales-range-proxy/internal/api"
	"github.com/vfg2006/sales-range-proxy/internal/api/handler"
	"github.com/vfg2006/sales-range-proxy/internal/config"
	"github.com/vfg2006/sales-range-proxy/internal/scheduler"
	"github.com/vfg2006/sales-range-proxy/internal/usecases/querying"
	"github.com/vfg2006/sales-range-proxy/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	if cfg.App.Env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics.Namespace)
		logrus.WithField("namespace", cfg.Metrics.Namespace).Info("Métricas Prometheus habilitadas")
	}

	mindbodyClient := mindbodyclient.NewClient(cfg)
	mindbodyIntegrator := mindbody.New(cfg, mindbodyClient, collector)

	salesService := querying.NewService(cfg, mindbodyIntegrator, collector)

	upstreamProbeService := scheduler.NewUpstreamProbeService(mindbodyIntegrator, cfg)

	var probe handler.ManualTrigger
	if err := upstreamProbeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do probe do upstream")
	} else {
		probe = upstreamProbeService
		// Primeira verificação sem esperar o cron
		upstreamProbeService.TriggerManualProbe(ctx)
	}

	server, err := api.New(cfg, salesService, collector, probe)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
