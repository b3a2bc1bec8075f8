package mindbodyclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-range-proxy/internal/config"
)

const salesBody = `{
	"PaginationResponse": {"RequestedLimit": 200, "RequestedOffset": 0, "PageSize": 1, "TotalResults": 1},
	"Sales": [{
		"Id": 42,
		"SaleDateTime": "2023-01-10T10:00:00",
		"ClientId": "100",
		"SalesRepId": null,
		"LocationId": 1,
		"PurchasedItems": [{"Id": 7, "UnitPrice": 12.5, "Quantity": 2, "Notes": "gift"}],
		"Payments": [{"Id": 9, "Amount": 25, "Type": "Cash"}]
	}]
}`

func newTestClient(url string, timeout time.Duration) Client {
	return NewClient(&config.Config{
		Upstream: config.Upstream{URL: url, Timeout: timeout},
	})
}

func TestMindbodyClient_GetSales(t *testing.T) {
	params := SalesParams{
		Limit:         200,
		Offset:        5,
		StartDateTime: time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2023, 1, 11, 0, 0, 0, 0, time.UTC),
		APIKey:        "secret",
		SiteID:        "-99",
	}

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, err error, sales int)
	}{
		{
			name: "Repassa consulta e cabeçalhos",
			handler: func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				assert.Equal(t, "200", q.Get("limit"))
				assert.Equal(t, "5", q.Get("offset"))
				assert.Equal(t, "2023-01-10T00:00:00.000Z", q.Get("startSaleDateTime"))
				assert.Equal(t, "2023-01-11T00:00:00.000Z", q.Get("endSaleDateTime"))
				assert.Equal(t, "secret", r.Header.Get("Api-Key"))
				assert.Equal(t, "-99", r.Header.Get("SiteId"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(salesBody))
			},
			validate: func(t *testing.T, err error, sales int) {
				require.NoError(t, err)
				assert.Equal(t, 1, sales)
			},
		},
		{
			name: "Status >= 400 vira HTTPError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"Error":{"Message":"Invalid API key"}}`))
			},
			validate: func(t *testing.T, err error, _ int) {
				var httpErr *HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
				assert.Contains(t, httpErr.Body, "Invalid API key")
			},
		},
		{
			name: "Corpo mal formado vira TransportError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"Sales": [`))
			},
			validate: func(t *testing.T, err error, _ int) {
				var transportErr *TransportError
				require.ErrorAs(t, err, &transportErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			resp, err := newTestClient(server.URL, time.Second).GetSales(context.Background(), params)

			sales := 0
			if resp != nil {
				sales = len(resp.Sales)
			}
			tt.validate(t, err, sales)
		})
	}
}

func TestMindbodyClient_GetSales_Decode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(salesBody))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL, time.Second).GetSales(context.Background(), SalesParams{Limit: 1})
	require.NoError(t, err)
	require.Len(t, resp.Sales, 1)

	sale := resp.Sales[0]
	assert.Equal(t, 42, sale.ID)
	assert.Nil(t, sale.SalesRepID)
	assert.Equal(t, 1, resp.PaginationResponse.TotalResults)
	require.Len(t, sale.PurchasedItems, 1)
	assert.Equal(t, 12.5, sale.PurchasedItems[0].UnitPrice)
	require.NotNil(t, sale.PurchasedItems[0].Notes)
	assert.Equal(t, "gift", *sale.PurchasedItems[0].Notes)
	assert.Nil(t, sale.PurchasedItems[0].ContractID)
}

func TestMindbodyClient_GetSales_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	_, err := newTestClient(server.URL, 50*time.Millisecond).GetSales(context.Background(), SalesParams{Limit: 1})

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.False(t, errors.Is(err, context.Canceled))
}
