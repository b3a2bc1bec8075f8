package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-range-proxy/internal/config"
	"github.com/vfg2006/sales-range-proxy/internal/domain"
	"github.com/vfg2006/sales-range-proxy/internal/usecases/querying"
	"github.com/vfg2006/sales-range-proxy/pkg/apiErrors"
	"github.com/vfg2006/sales-range-proxy/pkg/log"
	"github.com/vfg2006/sales-range-proxy/pkg/middleware"
	"github.com/vfg2006/sales-range-proxy/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetSales busca as vendas do período pedido, um dia por chamada ao upstream
func GetSales(service querying.SalesQuerier, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		q := r.URL.Query()

		creds, _ := middleware.CredentialsFromContext(r.Context())

		limit, err := utils.IntOrDefault(q.Get("limit"), cfg.Upstream.DefaultLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be an integer", map[string]string{"param": "limit"})
			return
		}

		offset, err := utils.IntOrDefault(q.Get("offset"), cfg.Upstream.DefaultOffset)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "offset must be an integer", map[string]string{"param": "offset"})
			return
		}

		req := querying.SalesRequest{
			Credentials: creds,
			Query: domain.SalesQuery{
				Start: q.Get("start"),
				End:   q.Get("end"),
				Day:   q.Get("day"),
				Range: q.Get("range"),
				Month: q.Get("month"),
			},
			Pagination: domain.Pagination{Limit: limit, Offset: offset},
			Property:   q.Get("property"),
			Flatten:    q.Get("flatten") == "true",
			Meta:       q["meta"],
		}

		envelope, err := service.QuerySales(r.Context(), req)
		if err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				logger.WithField("error", ve.Error()).Warn("sales: requisição inválida")
				apiErrors.WriteError(w, ve.Code(), ve.Error(), map[string]string{"param": ve.Param})
				return
			}

			logger.WithError(err).Error("sales: erro ao consultar vendas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error fetching sales", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(envelope); err != nil {
			logger.WithError(err).Error("sales: erro ao enviar resposta")
		}
	}
}
