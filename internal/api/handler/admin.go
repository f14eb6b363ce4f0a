package handler

import (
	"net/http"

	"github.com/lrlucasdurand-code/unify/internal/usecases/administering"
)

func GetAdminStats(service administering.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.Stats(r.Context())
		if err != nil {
			writeUseCaseError(w, err, "Erro ao calcular estatísticas")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

func ListOrganizations(service administering.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := service.Organizations(r.Context())
		if err != nil {
			writeUseCaseError(w, err, "Erro ao listar organizações")
			return
		}

		writeJSON(w, http.StatusOK, summaries)
	}
}
