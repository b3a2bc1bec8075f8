package mindbody

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mindbodydomain "github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody/domain"
	"github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody/mindbodyclient"
	"github.com/vfg2006/sales-range-proxy/internal/config"
	"github.com/vfg2006/sales-range-proxy/internal/domain"
	"github.com/vfg2006/sales-range-proxy/pkg/metrics"
)

type stubClient struct {
	calls []mindbodyclient.SalesParams
	resp  *mindbodydomain.SalesResponse
	err   error
}

func (c *stubClient) GetSales(_ context.Context, params mindbodyclient.SalesParams) (*mindbodydomain.SalesResponse, error) {
	c.calls = append(c.calls, params)
	return c.resp, c.err
}

func TestMindbodyService_GetSalesByDay(t *testing.T) {
	creds := domain.Credentials{APIKey: "key", SiteID: "-99"}
	page := domain.Pagination{Limit: 50, Offset: 10}

	tests := []struct {
		name     string
		bucket   domain.DayBucket
		client   *stubClient
		validate func(t *testing.T, client *stubClient, collector *metrics.Collector, resp *mindbodydomain.SalesResponse, err error)
	}{
		{
			name: "Bucket para frente",
			bucket: domain.DayBucket{
				Start: time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2023, 1, 11, 0, 0, 0, 0, time.UTC),
			},
			client: &stubClient{resp: &mindbodydomain.SalesResponse{}},
			validate: func(t *testing.T, client *stubClient, collector *metrics.Collector, resp *mindbodydomain.SalesResponse, err error) {
				require.NoError(t, err)
				require.NotNil(t, resp)
				require.Len(t, client.calls, 1)

				params := client.calls[0]
				assert.Equal(t, 50, params.Limit)
				assert.Equal(t, 10, params.Offset)
				assert.Equal(t, "key", params.APIKey)
				assert.Equal(t, "-99", params.SiteID)
				assert.Equal(t, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC), params.StartDateTime)
				assert.Equal(t, time.Date(2023, 1, 11, 0, 0, 0, 0, time.UTC), params.EndDateTime)

				expected := `
# HELP test_upstream_requests_total Total number of upstream sales requests by outcome
# TYPE test_upstream_requests_total counter
test_upstream_requests_total{outcome="ok"} 1
`
				assert.NoError(t, testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "test_upstream_requests_total"))
			},
		},
		{
			name: "Bucket para trás é enviado em ordem cronológica",
			bucket: domain.DayBucket{
				Start: time.Date(2023, 1, 11, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
			},
			client: &stubClient{resp: &mindbodydomain.SalesResponse{}},
			validate: func(t *testing.T, client *stubClient, _ *metrics.Collector, _ *mindbodydomain.SalesResponse, err error) {
				require.NoError(t, err)
				params := client.calls[0]
				assert.True(t, params.StartDateTime.Before(params.EndDateTime))
				assert.Equal(t, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC), params.StartDateTime)
			},
		},
		{
			name:   "Erro HTTP é contado por resultado",
			bucket: domain.DayBucket{Start: time.Now(), End: time.Now().Add(24 * time.Hour)},
			client: &stubClient{err: &mindbodyclient.HTTPError{StatusCode: 503}},
			validate: func(t *testing.T, _ *stubClient, collector *metrics.Collector, resp *mindbodydomain.SalesResponse, err error) {
				assert.Nil(t, resp)
				var httpErr *mindbodyclient.HTTPError
				assert.ErrorAs(t, err, &httpErr)

				expected := `
# HELP test_upstream_requests_total Total number of upstream sales requests by outcome
# TYPE test_upstream_requests_total counter
test_upstream_requests_total{outcome="http_error"} 1
`
				assert.NoError(t, testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "test_upstream_requests_total"))
			},
		},
		{
			name:   "Erro de transporte é contado por resultado",
			bucket: domain.DayBucket{Start: time.Now(), End: time.Now().Add(24 * time.Hour)},
			client: &stubClient{err: &mindbodyclient.TransportError{Cause: errors.New("dial tcp: refused")}},
			validate: func(t *testing.T, _ *stubClient, collector *metrics.Collector, _ *mindbodydomain.SalesResponse, err error) {
				assert.Error(t, err)

				expected := `
# HELP test_upstream_requests_total Total number of upstream sales requests by outcome
# TYPE test_upstream_requests_total counter
test_upstream_requests_total{outcome="transport_error"} 1
`
				assert.NoError(t, testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "test_upstream_requests_total"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := metrics.NewCollector("test")
			service := New(&config.Config{}, tt.client, collector)

			resp, err := service.GetSalesByDay(context.Background(), creds, page, tt.bucket)

			tt.validate(t, tt.client, collector, resp, err)
		})
	}
}

func TestMindbodyService_CheckConnection(t *testing.T) {
	client := &stubClient{resp: &mindbodydomain.SalesResponse{}}
	service := New(&config.Config{}, client, nil)

	ok, err := service.CheckConnection(context.Background(), domain.Credentials{APIKey: "key", SiteID: "-99"})
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, client.calls, 1)
	assert.Equal(t, 1, client.calls[0].Limit)
	assert.Equal(t, 24*time.Hour, client.calls[0].EndDateTime.Sub(client.calls[0].StartDateTime))

	client.err = &mindbodyclient.HTTPError{StatusCode: 401}
	ok, err = service.CheckConnection(context.Background(), domain.Credentials{APIKey: "bad", SiteID: "-99"})
	assert.Error(t, err)
	assert.False(t, ok)
}
