package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/sales-range-proxy/pkg/apiErrors"
	"github.com/vfg2006/sales-range-proxy/pkg/log"
)

// HeaderCorrelationID é aceito na requisição e sempre devolvido na resposta
const HeaderCorrelationID = "X-Correlation-ID"

// Limite para o aviso de requisição lenta. Um intervalo longo de dias pode passar disso.
const slowRequestThreshold = 5 * time.Second

// requestSummary agrupa o que é registrado ao fim de cada requisição
type requestSummary struct {
	correlationID string
	method        string
	path          string
	siteID        string
	status        int
	bytes         int
	duration      time.Duration
}

// fields nunca inclui a api-key, apenas o siteid
func (s requestSummary) fields() log.Fields {
	fields := log.Fields{
		"method":      s.method,
		"path":        s.path,
		"status_code": s.status,
	}

	if !log.IsDevelopment() {
		fields["correlation_id"] = s.correlationID
		fields["duration_ms"] = s.duration.Milliseconds()
		fields["response_bytes"] = s.bytes
		if s.siteID != "" {
			fields["site_id"] = s.siteID
		}
	}

	return fields
}

func (s requestSummary) message() string {
	if !log.IsDevelopment() {
		return "Requisição finalizada"
	}

	symbol := "✓"
	if s.status >= http.StatusBadRequest {
		symbol = "✗"
	}
	return fmt.Sprintf("%s Completada em %s", symbol, formatDuration(s.duration))
}

func (s requestSummary) log() {
	logger := log.L.WithFields(s.fields())

	switch {
	case s.status >= http.StatusInternalServerError:
		logger.Error(s.message())
	case s.status >= http.StatusBadRequest:
		logger.Warn(s.message())
	default:
		logger.Info(s.message())
	}

	if s.duration > slowRequestThreshold {
		logger.Warnf("Requisição lenta: %s %s (%s)", s.method, s.path, formatDuration(s.duration))
	}
}

// LoggingMiddleware registra início e fim de cada requisição HTTP
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Reaproveita o ID de correlação do cliente ou gera um novo
			ctx, correlationID := log.WithCorrelationIDFrom(r.Context(), r.Header.Get(HeaderCorrelationID))
			r = r.WithContext(ctx)
			w.Header().Set(HeaderCorrelationID, correlationID)

			log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"query":       r.URL.RawQuery,
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.UserAgent(),
			}).Debug("→ Iniciando requisição")

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			requestSummary{
				correlationID: correlationID,
				method:        r.Method,
				path:          r.URL.Path,
				siteID:        r.Header.Get(HeaderSiteID),
				status:        lrw.statusCode,
				bytes:         lrw.bytes,
				duration:      time.Since(startTime),
			}.log()
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status e o tamanho do corpo escrito
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := lrw.ResponseWriter.Write(b)
	lrw.bytes += n
	return n, err
}

// LogPanicMiddleware recupera panics do handler e responde 500 em JSON.
// O processo continua atendendo as demais requisições.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stackTrace := string(stack[:runtime.Stack(stack, false)])

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"panic_error": recovered,
					"method":      r.Method,
					"path":        r.URL.Path,
				})

				if log.IsDevelopment() {
					logger.Error("❌ PANIC na aplicação")
					fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
				} else {
					logger.WithField("stack_trace", stackTrace).Error("Erro não tratado na aplicação")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
