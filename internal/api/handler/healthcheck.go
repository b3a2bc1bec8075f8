package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// StatusReporter expõe o estado de um serviço em background, como o probe do upstream
type StatusReporter interface {
	GetStatus() map[string]any
}

func HealthcheckHandler(probe StatusReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		}

		if probe != nil {
			body["upstream_probe"] = probe.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
