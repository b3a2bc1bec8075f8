package middleware

import (
	"net/http"
	"slices"
	"strings"
)

const (
	allowedMethods = "GET, OPTIONS"
	allowedHeaders = "Accept, Content-Type, X-Requested-With, X-Correlation-ID, api-key, siteid"
)

func isOriginAllowed(allowedOrigins []string, origin string) bool {
	if origin == "" {
		return false
	}
	return slices.ContainsFunc(allowedOrigins, func(allowed string) bool {
		allowed = strings.TrimSpace(allowed)
		return allowed == "*" || allowed == origin
	})
}

// Cors libera as origens configuradas em CORS_ALLOWED_ORIGINS ("*" libera todas)
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if isOriginAllowed(allowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
