package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lrlucasdurand-code/unify/internal/config"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/internal/usecases/authenticating"
	authMocks "github.com/lrlucasdurand-code/unify/internal/usecases/authenticating/mocks"
	optMocks "github.com/lrlucasdurand-code/unify/internal/usecases/optimizing/mocks"
	"github.com/lrlucasdurand-code/unify/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) (*Server, *authMocks.MockAuthenticator, *optMocks.MockOptimizer) {
	ctrl := gomock.NewController(t)
	auth := authMocks.NewMockAuthenticator(ctrl)
	optimizer := optMocks.NewMockOptimizer(ctrl)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "8000"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	return New(cfg, Services{Authenticator: auth, Optimizer: optimizer}), auth, optimizer
}

func TestServerPublicRoutes(t *testing.T) {
	server, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultShutdownTimeout, server.shutdownTimeout)
}

func TestServerRequiresBearerToken(t *testing.T) {
	server, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidToken)
}

func TestServerRejectsInvalidToken(t *testing.T) {
	server, auth, _ := newTestServer(t)
	auth.EXPECT().ValidateToken("expired").
		Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrInvalidToken, ""))

	req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
	req.Header.Set("Authorization", "Bearer expired")

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServerAuthenticatedRoute(t *testing.T) {
	server, auth, optimizer := newTestServer(t)
	auth.EXPECT().ValidateToken("valid").
		Return(&domain.Claims{UserID: 7, UserRoleID: domain.RoleSupervisor, OrganizationID: 3}, nil)
	optimizer.EXPECT().GetCampaigns(gomock.Any(), 3).Return([]domain.Recommendation{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
	req.Header.Set("Authorization", "Bearer valid")
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerPreflight(t *testing.T) {
	server, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/optimize", nil)
	req.Header.Set("Origin", "http://evil.example")

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
