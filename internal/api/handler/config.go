package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/internal/usecases/organizing"
	"github.com/lrlucasdurand-code/unify/pkg/apiErrors"
)

func GetConfig(service organizing.Organizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := organizationClaims(w, r)
		if !ok {
			return
		}

		cfg, err := service.LoadOptimizationConfig(r.Context(), userClaims.OrganizationID)
		if err != nil {
			writeUseCaseError(w, err, "Erro ao carregar configuração")
			return
		}

		writeJSON(w, http.StatusOK, cfg)
	}
}

func UpdateConfig(service organizing.Organizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := organizationClaims(w, r)
		if !ok {
			return
		}

		var req domain.UpdateConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		cfg, err := service.UpdateConfig(r.Context(), userClaims.OrganizationID, &req)
		if err != nil {
			writeUseCaseError(w, err, "Erro ao salvar configuração")
			return
		}

		writeJSON(w, http.StatusOK, cfg)
	}
}

// UpsertIntegration não devolve as credenciais gravadas
func UpsertIntegration(service organizing.Organizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := organizationClaims(w, r)
		if !ok {
			return
		}

		provider := domain.Provider(httprouter.ParamsFromContext(r.Context()).ByName("provider"))

		var req domain.UpsertIntegrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		integration, err := service.UpsertIntegration(r.Context(), userClaims.OrganizationID, provider, &req)
		if err != nil {
			writeUseCaseError(w, err, "Erro ao salvar integração")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status":     "success",
			"provider":   integration.Provider,
			"is_enabled": integration.Enabled,
		})
	}
}

func ActivatePlan(service organizing.Organizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := organizationClaims(w, r)
		if !ok {
			return
		}

		plan := r.URL.Query().Get("plan")
		if plan == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro plan é obrigatório", nil)
			return
		}

		billing, err := service.ActivatePlan(r.Context(), userClaims.OrganizationID, domain.Plan(plan))
		if err != nil {
			writeUseCaseError(w, err, "Erro ao ativar plano")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"plan":   billing.Plan,
		})
	}
}
