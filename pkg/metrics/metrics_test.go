package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.ObserveUpstream(OutcomeOK, time.Second)
		c.ObserveFanOut(3, 1)
		c.FetchStarted()
		c.FetchFinished()
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := c.Middleware(StaticRoutes("/api/v1/sales"))(next)
	assert.NotNil(t, handler)
}

func TestCollector_Middleware(t *testing.T) {
	c := NewCollector("test")

	handler := c.Middleware(StaticRoutes("/api/v1/sales"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/sales" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))

	for _, path := range []string{"/api/v1/sales", "/api/v1/sales", "/random/1", "/random/2"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP test_http_requests_total Total number of HTTP requests by route, method and status
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="/api/v1/sales",status="401"} 2
test_http_requests_total{method="GET",route="unmatched",status="404"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "test_http_requests_total"))
}

func TestCollector_FanOut(t *testing.T) {
	c := NewCollector("test")

	c.ObserveFanOut(10, 1)
	c.ObserveFanOut(5, 2)
	c.FetchStarted()
	c.FetchStarted()
	c.FetchFinished()

	assert.Equal(t, float64(3), testutil.ToFloat64(c.fanOutFailedBuckets))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.inFlightFetches))
	assert.Equal(t, 1, testutil.CollectAndCount(c.fanOutBuckets))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector("")
	c.ObserveUpstream(OutcomeOK, 120*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `sales_proxy_upstream_requests_total{outcome="ok"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
