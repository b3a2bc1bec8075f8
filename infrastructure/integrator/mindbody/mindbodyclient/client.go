package mindbodyclient

import (
	"context"
	"net/http"

	mindbodydomain "github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody/domain"
	"github.com/vfg2006/sales-range-proxy/internal/config"
)

type Client interface {
	GetSales(ctx context.Context, params SalesParams) (*mindbodydomain.SalesResponse, error)
}

type MindbodyClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente do upstream. O timeout vem de UPSTREAM_TIMEOUT; zero desativa.
func NewClient(cfg *config.Config) Client {
	return &MindbodyClient{
		httpClient: &http.Client{
			Timeout: cfg.Upstream.Timeout,
		},
		baseURL: cfg.Upstream.URL,
	}
}
