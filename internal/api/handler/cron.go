package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeWarmup = "warmup"
)

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	CacheWarmupService *scheduler.CacheWarmupService
}

// RunCronJobResponse devolve o identificador da execução disparada
type RunCronJobResponse struct {
	JobType string `json:"job_type"`
	RunID   string `json:"run_id"`
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeWarmup:
			if services.CacheWarmupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento de cache não disponível", nil)
				return
			}

			runID, err := services.CacheWarmupService.TriggerManualRun(r.Context())
			if err != nil {
				logger.WithError(err).Error("cron: aquecimento de cache falhou")
				apiErrors.WriteError(w, apiErrors.ErrSchedulerJob, err.Error(), nil)
				return
			}

			logger.WithField("run_id", runID).Info("cron: aquecimento de cache executado manualmente")

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(RunCronJobResponse{JobType: cronType, RunID: runID}); err != nil {
				logger.WithError(err).Error("cron: erro ao codificar resposta")
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido: "+cronType, nil)
		}
	})
}

// GetCronStatus retorna o estado dos jobs agendados
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{}
		if services.CacheWarmupService != nil {
			status[CronJobTypeWarmup] = services.CacheWarmupService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("cron-status: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
