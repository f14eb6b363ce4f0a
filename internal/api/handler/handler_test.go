package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lrlucasdurand-code/unify/internal/api/handler/router"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/pkg/apiErrors"
	"github.com/lrlucasdurand-code/unify/pkg/middleware"
	"github.com/stretchr/testify/require"
)

var (
	ownerClaims  = &domain.Claims{UserID: 7, UserRoleID: domain.RoleSupervisor, OrganizationID: 3}
	clientClaims = &domain.Claims{UserID: 8, UserRoleID: domain.RoleClient, OrganizationID: 3}
	adminClaims  = &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin, OrganizationID: 1}
)

// serve executa a requisição pelo router, com as claims já no contexto como o AuthMiddleware faria
func serve(routes []router.Route, method, target, body string, claims *domain.Claims) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
