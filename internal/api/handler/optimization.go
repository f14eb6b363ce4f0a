package handler

import (
	"net/http"
	"strconv"

	"github.com/lrlucasdurand-code/unify/internal/usecases/optimizing"
	"github.com/lrlucasdurand-code/unify/pkg/apiErrors"
	"github.com/lrlucasdurand-code/unify/pkg/utils"
)

const defaultBudgetChangesLimit = 50

// GetCampaigns devolve as recomendações sem alterar orçamentos
func GetCampaigns(service optimizing.Optimizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := organizationClaims(w, r)
		if !ok {
			return
		}

		recommendations, err := service.GetCampaigns(r.Context(), userClaims.OrganizationID)
		if err != nil {
			writeUseCaseError(w, err, "Erro ao calcular recomendações")
			return
		}

		writeJSON(w, http.StatusOK, recommendations)
	}
}

// Optimize aplica as recomendações; sem ?dry_run=false nada é alterado na plataforma
func Optimize(service optimizing.Optimizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := organizationClaims(w, r)
		if !ok {
			return
		}

		dryRun := true
		if raw := r.URL.Query().Get("dry_run"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "dry_run deve ser true ou false", nil)
				return
			}
			dryRun = parsed
		}

		result, err := service.Optimize(r.Context(), userClaims.OrganizationID, dryRun)
		if err != nil {
			writeUseCaseError(w, err, "Erro ao otimizar orçamentos")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ListBudgetChanges(service optimizing.Optimizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := organizationClaims(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		since, err := utils.ParseOptionalDate(query.Get("since"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "since deve estar no formato YYYY-MM-DD", nil)
			return
		}

		limit := defaultBudgetChangesLimit
		if raw := query.Get("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil || limit <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
		}

		changes, err := service.ListBudgetChanges(r.Context(), userClaims.OrganizationID, since, limit)
		if err != nil {
			writeUseCaseError(w, err, "Erro ao listar alterações de orçamento")
			return
		}

		writeJSON(w, http.StatusOK, changes)
	}
}

func GetGlobalStatus(service optimizing.Optimizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := organizationClaims(w, r)
		if !ok {
			return
		}

		status, err := service.GlobalStatus(r.Context(), userClaims.OrganizationID)
		if err != nil {
			writeUseCaseError(w, err, "Erro ao calcular capacidade global")
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}
