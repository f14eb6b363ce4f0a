package handler

import (
	"net/http"

	"github.com/lrlucasdurand-code/unify/internal/api/handler/router"
	"github.com/lrlucasdurand-code/unify/internal/usecases/administering"
	"github.com/lrlucasdurand-code/unify/internal/usecases/authenticating"
	"github.com/lrlucasdurand-code/unify/internal/usecases/optimizing"
	"github.com/lrlucasdurand-code/unify/internal/usecases/organizing"
	"github.com/lrlucasdurand-code/unify/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Organization(service organizing.Organizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/config",
			Method:      http.MethodGet,
			Handler:     GetConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/config",
			Method:      http.MethodPost,
			Handler:     UpdateConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/integrations/:provider",
			Method:      http.MethodPut,
			Handler:     UpsertIntegration(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/billing/activate",
			Method:      http.MethodPost,
			Handler:     ActivatePlan(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sheets",
			Method:      http.MethodPost,
			Handler:     CreateSheet(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sheets/service-account",
			Method:      http.MethodGet,
			Handler:     GetServiceAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Optimization(service optimizing.Optimizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     GetCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/optimize",
			Method:      http.MethodPost,
			Handler:     Optimize(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/budget-changes",
			Method:      http.MethodGet,
			Handler:     ListBudgetChanges(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/global-status",
			Method:      http.MethodGet,
			Handler:     GetGlobalStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Admin(service administering.Administrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/stats",
			Method:      http.MethodGet,
			Handler:     GetAdminStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/organizations",
			Method:      http.MethodGet,
			Handler:     ListOrganizations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(service CronJobService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/optimization/run",
			Method:      http.MethodPost,
			Handler:     RunOptimizationSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
