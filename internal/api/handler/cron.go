package handler

import (
	"net/http"

	"github.com/lrlucasdurand-code/unify/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CronJobService é o agendador que pode ser disparado manualmente
type CronJobService interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunOptimizationSync dispara a otimização de todas as organizações em segundo plano
func RunOptimizationSync(service CronJobService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de otimização agendada não disponível", nil)
			return
		}

		if !service.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrOptimizationBusy, "Otimização agendada já em andamento", nil)
			return
		}

		logrus.Info("Otimização agendada disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]string{
			"status":  "started",
			"message": "Otimização iniciada em segundo plano",
		})
	}
}

func GetCronStatus(service CronJobService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de otimização agendada não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"optimization": service.GetStatus(),
		})
	}
}
