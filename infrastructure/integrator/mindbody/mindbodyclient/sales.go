package mindbodyclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	mindbodydomain "github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// isoLayout reproduz o formato ISO com milissegundos esperado pelo upstream
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// Tamanho máximo do corpo de erro guardado em HTTPError
const maxErrorBody = 512

type SalesParams struct {
	Limit         int
	Offset        int
	StartDateTime time.Time
	EndDateTime   time.Time
	APIKey        string
	SiteID        string
}

func (c *MindbodyClient) GetSales(ctx context.Context, params SalesParams) (*mindbodydomain.SalesResponse, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &TransportError{Cause: errors.Wrap(err, "erro ao analisar a URL base")}
	}

	query := endpoint.Query()
	query.Set("limit", strconv.Itoa(params.Limit))
	query.Set("offset", strconv.Itoa(params.Offset))
	query.Set("startSaleDateTime", params.StartDateTime.UTC().Format(isoLayout))
	query.Set("endSaleDateTime", params.EndDateTime.UTC().Format(isoLayout))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, &TransportError{Cause: errors.Wrap(err, "erro ao criar a requisição")}
	}

	// Cabeçalhos repassados exatamente como o upstream documenta
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header["Api-Key"] = []string{params.APIKey}
	req.Header["SiteId"] = []string{params.SiteID}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: errors.Wrap(err, "erro ao executar a requisição")}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	var response mindbodydomain.SalesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, &TransportError{Cause: errors.Wrap(err, "erro ao decodificar a resposta")}
	}

	return &response, nil
}
