package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_Match(t *testing.T) {
	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rt := New(
		WithJSONErrors(),
		WithRoutes(
			Route{Path: "/api/v1/sales", Method: http.MethodGet, Handler: noop},
			Route{Path: "/api/v1/cron/:type/run", Method: http.MethodPost, Handler: noop},
		),
	)

	tests := []struct {
		name      string
		method    string
		path      string
		wantRoute string
		wantOK    bool
	}{
		{name: "Rota estática", method: http.MethodGet, path: "/api/v1/sales", wantRoute: "/api/v1/sales", wantOK: true},
		{name: "Rota com parâmetro", method: http.MethodPost, path: "/api/v1/cron/upstream-probe/run", wantRoute: "/api/v1/cron/:type/run", wantOK: true},
		{name: "Método errado", method: http.MethodPost, path: "/api/v1/sales"},
		{name: "Rota inexistente", method: http.MethodGet, path: "/nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, ok := rt.Match(httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRoute, route)
			}
		})
	}
}

func TestRouter_JSONErrors(t *testing.T) {
	rt := New(
		WithJSONErrors(),
		WithRoutes(Route{Path: "/api/v1/sales", Method: http.MethodGet, Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})}),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "REQ_001")

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/sales", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "REQ_002")
}
