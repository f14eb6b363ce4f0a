package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/internal/usecases/authenticating"
	"github.com/lrlucasdurand-code/unify/internal/usecases/optimizing"
	"github.com/lrlucasdurand-code/unify/internal/usecases/organizing"
	"github.com/lrlucasdurand-code/unify/pkg/apiErrors"
	"github.com/lrlucasdurand-code/unify/pkg/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeUseCaseError traduz os erros tipados dos casos de uso; o resto vira erro interno
func writeUseCaseError(w http.ResponseWriter, err error, fallback string) {
	var (
		authErr *authenticating.AuthError
		orgErr  *organizing.OrganizationError
		optErr  *optimizing.OptimizationError
	)

	switch {
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

	case errors.As(err, &orgErr):
		apiErrors.WriteError(w, orgErr.Code, orgErr.Error(), map[string]any{
			"organization_id": orgErr.OrganizationID,
		})

	case errors.As(err, &optErr):
		apiErrors.WriteError(w, optErr.Code, optErr.Error(), map[string]any{
			"organization_id": optErr.OrganizationID,
		})

	default:
		logrus.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

// organizationClaims exige um usuário autenticado que pertença a uma organização
func organizationClaims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	userClaims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}

	if userClaims.OrganizationID == 0 {
		apiErrors.WriteError(w, apiErrors.ErrOrganizationNotFound, "Usuário sem organização", nil)
		return nil, false
	}

	return userClaims, true
}
