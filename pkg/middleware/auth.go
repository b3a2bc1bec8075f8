package middleware

import (
	"context"
	"errors"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/vfg2006/sales-range-proxy/internal/domain"
	"github.com/vfg2006/sales-range-proxy/internal/validation"
	"github.com/vfg2006/sales-range-proxy/pkg/apiErrors"
	"github.com/vfg2006/sales-range-proxy/pkg/log"
)

type contextKey string

const (
	ContextKeyCredentials contextKey = "credentials"
)

// Cabeçalhos de credenciais repassados ao upstream sem interpretação
const (
	HeaderAPIKey = "api-key"
	HeaderSiteID = "siteid"
)

// CredentialsMiddleware exige api-key e siteid não vazios e os guarda no contexto.
// A requisição é recusada com 401 antes de chegar ao handler.
func CredentialsMiddleware(v *validatorv10.Validate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds := domain.Credentials{
				APIKey: r.Header.Get(HeaderAPIKey),
				SiteID: r.Header.Get(HeaderSiteID),
			}

			if err := validation.Credentials(v, creds); err != nil {
				var ve *domain.ValidationError
				if !errors.As(err, &ve) {
					apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, err.Error(), nil)
					return
				}

				log.ForContext(r.Context()).WithField("error", ve.Error()).Warn("sales: credenciais ausentes")
				apiErrors.WriteError(w, ve.Code(), ve.Details, map[string]string{"param": ve.Param})
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyCredentials, creds)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CredentialsFromContext retorna as credenciais guardadas por CredentialsMiddleware
func CredentialsFromContext(ctx context.Context) (domain.Credentials, bool) {
	creds, ok := ctx.Value(ContextKeyCredentials).(domain.Credentials)
	return creds, ok
}
