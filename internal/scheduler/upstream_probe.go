package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody"
	"github.com/vfg2006/sales-range-proxy/internal/config"
	"github.com/vfg2006/sales-range-proxy/internal/domain"
	"github.com/vfg2006/sales-range-proxy/pkg/utils"
)

// Tempo máximo de uma verificação
const probeTimeout = 30 * time.Second

// UpstreamProbeConfig representa a configuração do probe do upstream
type UpstreamProbeConfig struct {
	CronSchedule string
	Enabled      bool
	Credentials  domain.Credentials
}

// UpstreamProbeService verifica periodicamente se o upstream de vendas responde
type UpstreamProbeService struct {
	scheduler  *gocron.Scheduler
	config     UpstreamProbeConfig
	integrator mindbody.MindbodyIntegrator

	probeRunning bool
	probeMutex   sync.Mutex

	statusMutex      sync.RWMutex
	lastRunID        string
	lastProbeAt      time.Time
	lastProbeOK      bool
	lastProbeError   string
	lastProbeLatency time.Duration
	consecutiveFails int
}

// NewUpstreamProbeService cria uma nova instância do probe
func NewUpstreamProbeService(integrator mindbody.MindbodyIntegrator, appConfig *config.Config) *UpstreamProbeService {
	probeConfig := UpstreamProbeConfig{
		CronSchedule: appConfig.UpstreamProbe.CronSchedule,
		Enabled:      appConfig.UpstreamProbe.Enabled,
		Credentials: domain.Credentials{
			APIKey: appConfig.UpstreamProbe.APIKey,
			SiteID: appConfig.UpstreamProbe.SiteID,
		},
	}

	if probeConfig.Enabled && (probeConfig.Credentials.APIKey == "" || probeConfig.Credentials.SiteID == "") {
		logrus.Warn("Probe do upstream habilitado sem credenciais, desabilitando")
		probeConfig.Enabled = false
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": probeConfig.CronSchedule,
		"enabled":       probeConfig.Enabled,
	}).Info("Configuração do probe do upstream carregada")

	return &UpstreamProbeService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     probeConfig,
		integrator: integrator,
	}
}

// Start inicia o agendador
func (s *UpstreamProbeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Probe do upstream desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do probe do upstream")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.probe(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar probe do upstream: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do probe do upstream")
		s.scheduler.Stop()
	}()

	return nil
}

// probe consulta o dia anterior com limit 1
func (s *UpstreamProbeService) probe(ctx context.Context) {
	s.probeMutex.Lock()
	if s.probeRunning {
		s.probeMutex.Unlock()
		logrus.Info("Probe do upstream já em andamento, ignorando")
		return
	}
	s.probeRunning = true
	s.probeMutex.Unlock()

	defer func() {
		s.probeMutex.Lock()
		s.probeRunning = false
		s.probeMutex.Unlock()
	}()

	runID, err := utils.GenerateID(0)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar ID da execução do probe")
	}

	probeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), probeTimeout)
	defer cancel()

	startTime := time.Now()
	ok, err := s.integrator.CheckConnection(probeCtx, s.config.Credentials)
	latency := time.Since(startTime)

	s.statusMutex.Lock()
	s.lastRunID = runID
	s.lastProbeAt = startTime
	s.lastProbeOK = ok && err == nil
	s.lastProbeLatency = latency
	s.lastProbeError = ""
	if err != nil {
		s.lastProbeError = err.Error()
		s.consecutiveFails++
	} else {
		s.consecutiveFails = 0
	}
	fails := s.consecutiveFails
	s.statusMutex.Unlock()

	fields := logrus.Fields{
		"run_id":            runID,
		"latency_ms":        latency.Milliseconds(),
		"consecutive_fails": fails,
	}

	if err != nil {
		logrus.WithError(err).WithFields(fields).Warn("Upstream de vendas não respondeu ao probe")
		return
	}

	logrus.WithFields(fields).Info("Upstream de vendas respondeu ao probe")
}

// TriggerManualProbe executa uma verificação imediata em background
func (s *UpstreamProbeService) TriggerManualProbe(ctx context.Context) {
	if !s.config.Enabled {
		return
	}

	s.probeMutex.Lock()
	if s.probeRunning {
		s.probeMutex.Unlock()
		logrus.Info("Probe do upstream já em andamento, ignorando solicitação manual")
		return
	}
	s.probeMutex.Unlock()

	logrus.Info("Iniciando probe manual do upstream")
	go s.probe(ctx)
}

// GetStatus retorna o status atual do probe
func (s *UpstreamProbeService) GetStatus() map[string]any {
	s.statusMutex.RLock()
	defer s.statusMutex.RUnlock()

	status := map[string]any{
		"probe_enabled":     s.config.Enabled,
		"probe_cron":        s.config.CronSchedule,
		"last_probe_ok":     s.lastProbeOK,
		"consecutive_fails": s.consecutiveFails,
	}

	if !s.lastProbeAt.IsZero() {
		status["last_run_id"] = s.lastRunID
		status["last_probe_at"] = s.lastProbeAt.UTC().Format(time.RFC3339)
		status["last_probe_latency_ms"] = s.lastProbeLatency.Milliseconds()
	}

	if s.lastProbeError != "" {
		status["last_probe_error"] = s.lastProbeError
	}

	return status
}
