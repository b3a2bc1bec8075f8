package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-range-proxy/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeUpstreamProbe = "upstream-probe"
)

// ManualTrigger é um serviço em background que também pode ser disparado manualmente
type ManualTrigger interface {
	StatusReporter
	TriggerManualProbe(ctx context.Context)
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	UpstreamProbeService ManualTrigger
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type is required", nil)
			return
		}

		switch cronType {
		case CronJobTypeUpstreamProbe:
			if services.UpstreamProbeService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "upstream probe is not available", nil)
				return
			}
			// O probe não depende da requisição, que termina antes dele
			services.UpstreamProbeService.TriggerManualProbe(context.WithoutCancel(r.Context()))
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: upstream-probe", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "cron job started",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.UpstreamProbeService != nil {
			status[CronJobTypeUpstreamProbe] = services.UpstreamProbeService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
