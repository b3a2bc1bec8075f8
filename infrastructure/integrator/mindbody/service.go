package mindbody

import (
	"context"
	"errors"
	"time"

	mindbodydomain "github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody/domain"
	"github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody/mindbodyclient"
	"github.com/vfg2006/sales-range-proxy/internal/config"
	"github.com/vfg2006/sales-range-proxy/internal/domain"
	"github.com/vfg2006/sales-range-proxy/pkg/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_integrator.go -package=mocks

type MindbodyIntegrator interface {
	GetSalesByDay(ctx context.Context, creds domain.Credentials, page domain.Pagination, bucket domain.DayBucket) (*mindbodydomain.SalesResponse, error)
	CheckConnection(ctx context.Context, creds domain.Credentials) (bool, error)
}

type MindbodyService struct {
	cfg     *config.Config
	Client  mindbodyclient.Client
	metrics *metrics.Collector
}

func New(cfg *config.Config, client mindbodyclient.Client, collector *metrics.Collector) MindbodyIntegrator {
	return &MindbodyService{
		cfg:     cfg,
		Client:  client,
		metrics: collector,
	}
}

// GetSalesByDay consulta as vendas de um único dia do período
func (s *MindbodyService) GetSalesByDay(ctx context.Context, creds domain.Credentials, page domain.Pagination, bucket domain.DayBucket) (*mindbodydomain.SalesResponse, error) {
	start, end := bucket.Bounds()

	paramsClient := mindbodyclient.SalesParams{
		Limit:         page.Limit,
		Offset:        page.Offset,
		StartDateTime: start,
		EndDateTime:   end,
		APIKey:        creds.APIKey,
		SiteID:        creds.SiteID,
	}

	s.metrics.FetchStarted()
	defer s.metrics.FetchFinished()

	began := time.Now()
	resp, err := s.Client.GetSales(ctx, paramsClient)
	s.metrics.ObserveUpstream(outcomeOf(err), time.Since(began))
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// CheckConnection consulta o dia anterior com limit 1 para verificar se o upstream responde
func (s *MindbodyService) CheckConnection(ctx context.Context, creds domain.Credentials) (bool, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	bucket := domain.DayBucket{
		Start: today.AddDate(0, 0, -1),
		End:   today,
	}

	_, err := s.GetSalesByDay(ctx, creds, domain.Pagination{Limit: 1, Offset: 0}, bucket)
	if err != nil {
		return false, err
	}

	return true, nil
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}

	var httpErr *mindbodyclient.HTTPError
	if errors.As(err, &httpErr) {
		return metrics.OutcomeHTTPError
	}

	return metrics.OutcomeTransportError
}
