package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/stretchr/testify/assert"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: 7, UserRoleID: RoleSupervisor, OrganizationID: 3}

	tests := []struct {
		name       string
		path       string
		header     string
		validator  fakeValidator
		wantStatus int
	}{
		{name: "rota pública sem token", path: "/v1/login", wantStatus: http.StatusNoContent},
		{name: "sem header", path: "/v1/campaigns", wantStatus: http.StatusUnauthorized},
		{name: "header sem Bearer", path: "/v1/campaigns", header: "abc", wantStatus: http.StatusUnauthorized},
		{
			name:       "token inválido",
			path:       "/v1/campaigns",
			header:     "Bearer abc",
			validator:  fakeValidator{err: errors.New("invalid")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token válido",
			path:       "/v1/campaigns",
			header:     "Bearer abc",
			validator:  fakeValidator{claims: claims},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		mw         func(http.Handler) http.Handler
		wantStatus int
	}{
		{name: "sem claims", mw: AllRoles(), wantStatus: http.StatusUnauthorized},
		{name: "cliente em rota de admin", claims: &domain.Claims{UserRoleID: RoleClient}, mw: AdminOnly(), wantStatus: http.StatusForbidden},
		{name: "admin em rota de admin", claims: &domain.Claims{UserRoleID: RoleAdmin}, mw: AdminOnly(), wantStatus: http.StatusNoContent},
		{name: "supervisor em rota de supervisor", claims: &domain.Claims{UserRoleID: RoleSupervisor}, mw: AdminOrSupervisor(), wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AuthMiddleware(fakeValidator{claims: tt.claims})(tt.mw(okHandler()))
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
			if tt.claims != nil {
				req.Header.Set("Authorization", "Bearer abc")
			} else {
				handler = tt.mw(okHandler())
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	mw := Cors([]string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodOptions, "/v1/campaigns", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
