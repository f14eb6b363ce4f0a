package handler

import (
	"net/http"
	"testing"

	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/internal/usecases/administering/mocks"
	"github.com/lrlucasdurand-code/unify/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetAdminStats(t *testing.T) {
	t.Run("administrador", func(t *testing.T) {
		service := mocks.NewMockAdministrator(gomock.NewController(t))
		service.EXPECT().Stats(gomock.Any()).Return(&domain.PlatformStats{TotalOrganizations: 4, ActiveUsers: 9, MRR: 526}, nil)

		rec := serve(Admin(service), http.MethodGet, "/v1/admin/stats", "", adminClaims)
		require.Equal(t, http.StatusOK, rec.Code)

		stats := decodeBody[domain.PlatformStats](t, rec)
		assert.Equal(t, 4, stats.TotalOrganizations)
		assert.Equal(t, 526.0, stats.MRR)
	})

	t.Run("dono de organização não acessa", func(t *testing.T) {
		service := mocks.NewMockAdministrator(gomock.NewController(t))

		rec := serve(Admin(service), http.MethodGet, "/v1/admin/stats", "", ownerClaims)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeError(t, rec).Code)
	})

	t.Run("erro de banco", func(t *testing.T) {
		service := mocks.NewMockAdministrator(gomock.NewController(t))
		service.EXPECT().Stats(gomock.Any()).Return(nil, errors.Wrap(errors.New("conn refused"), "erro ao contar organizações"))

		rec := serve(Admin(service), http.MethodGet, "/v1/admin/stats", "", adminClaims)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
	})
}

func TestListOrganizations(t *testing.T) {
	service := mocks.NewMockAdministrator(gomock.NewController(t))
	email := "owner@acme.com"
	service.EXPECT().Organizations(gomock.Any()).Return([]*domain.OrganizationSummary{
		{ID: 3, Name: "Acme", AdminEmail: &email, UserCount: 2, Plan: domain.PlanStarter, Status: "active"},
	}, nil)

	rec := serve(Admin(service), http.MethodGet, "/v1/admin/organizations", "", adminClaims)
	require.Equal(t, http.StatusOK, rec.Code)

	summaries := decodeBody[[]domain.OrganizationSummary](t, rec)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Acme", summaries[0].Name)
	require.NotNil(t, summaries[0].AdminEmail)
	assert.Equal(t, email, *summaries[0].AdminEmail)
}
