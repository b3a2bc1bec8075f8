package querying

import (
	"context"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody"
	"github.com/vfg2006/sales-range-proxy/internal/config"
	"github.com/vfg2006/sales-range-proxy/internal/domain"
	"github.com/vfg2006/sales-range-proxy/internal/validation"
	"github.com/vfg2006/sales-range-proxy/pkg/log"
	"github.com/vfg2006/sales-range-proxy/pkg/metrics"
)

// SalesQuerier define a consulta de vendas por período
type SalesQuerier interface {
	// QuerySales valida a requisição, busca cada dia do período no upstream e monta o envelope.
	// Erros retornados são sempre de validação; falhas do upstream ficam dentro de data.
	QuerySales(ctx context.Context, req SalesRequest) (*Envelope, error)
}

// SalesRequest reúne tudo o que o handler extrai da requisição HTTP
type SalesRequest struct {
	Credentials domain.Credentials
	Query       domain.SalesQuery
	Pagination  domain.Pagination
	Property    string
	Flatten     bool
	Meta        []string
}

type Service struct {
	cfg        *config.Config
	integrator mindbody.MindbodyIntegrator
	fanOut     *FanOut
	validate   *validatorv10.Validate
	now        func() time.Time
}

// NewService cria o serviço de consulta de vendas
func NewService(cfg *config.Config, integrator mindbody.MindbodyIntegrator, collector *metrics.Collector) *Service {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
		fanOut:     NewFanOut(cfg.FanOut.MaxConcurrency, collector),
		validate:   validation.New(),
		now:        time.Now,
	}
}

// WithClock substitui o relógio usado para resolver month
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) QuerySales(ctx context.Context, req SalesRequest) (*Envelope, error) {
	if err := validation.Credentials(s.validate, req.Credentials); err != nil {
		return nil, err
	}

	if err := validation.Pagination(s.validate, req.Pagination); err != nil {
		return nil, err
	}

	window, err := domain.ResolveDateWindow(req.Query, s.now().UTC())
	if err != nil {
		return nil, err
	}

	path, err := ParsePropertyPath(req.Property)
	if err != nil {
		return nil, err
	}

	buckets := window.Buckets()

	logger := log.ForContext(ctx)
	logger.WithFields(log.Fields{
		"start":   window.Start.Format(time.RFC3339),
		"end":     window.End.Format(time.RFC3339),
		"buckets": len(buckets),
		"forward": window.IsForward(),
	}).Info("sales: iniciando busca por período")

	// As buscas não são canceladas se o cliente desconectar
	fetchCtx := context.WithoutCancel(ctx)
	results := s.fanOut.Run(fetchCtx, buckets, s.fetcher(req.Credentials, req.Pagination))

	envelope := Assemble(Project(results, path), AssembleOptions{
		Flatten: req.Flatten,
		Meta:    req.Meta,
	})

	if envelope.Error != "" {
		logger.WithField("error", envelope.Error).Warn("sales: falha ao montar meta")
	}

	return &envelope, nil
}
