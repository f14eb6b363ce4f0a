package handler

import (
	"net/http"

	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/internal/usecases/organizing"
	"github.com/lrlucasdurand-code/unify/pkg/apiErrors"
)

func CreateSheet(service organizing.Organizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := organizationClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateSheetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		sheet, err := service.CreateSheet(r.Context(), userClaims.OrganizationID, &req)
		if err != nil {
			writeUseCaseError(w, err, "Erro ao criar planilha")
			return
		}

		writeJSON(w, http.StatusCreated, sheet)
	}
}

// GetServiceAccount informa o e-mail com quem a planilha precisa ser compartilhada; null sem credenciais
func GetServiceAccount(service organizing.Organizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]*string{
			"email": service.ServiceAccountEmail(),
		})
	}
}
