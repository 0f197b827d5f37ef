package handler

import (
	"net/http"

	"github.com/vfg2006/royalty-manager-api/internal/api/handler/router"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/cataloging"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/paying"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/projecting"
	"github.com/vfg2006/royalty-manager-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
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
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
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

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Artists retorna as rotas do cadastro de artistas
func Artists(service cataloging.Registry) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/artists",
			Method:      http.MethodGet,
			Handler:     ListArtists(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/artists",
			Method:      http.MethodPost,
			Handler:     CreateArtist(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/artists/:id",
			Method:      http.MethodGet,
			Handler:     GetArtist(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/artists/:id",
			Method:      http.MethodPut,
			Handler:     UpdateArtist(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/artists/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteArtist(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Tracks(service cataloging.Registry) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tracks",
			Method:      http.MethodGet,
			Handler:     ListTracks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tracks",
			Method:      http.MethodPost,
			Handler:     CreateTrack(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/tracks/:id",
			Method:      http.MethodGet,
			Handler:     GetTrack(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tracks/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTrack(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/tracks/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTrack(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Catalogs(service cataloging.Registry) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/catalogs",
			Method:      http.MethodGet,
			Handler:     ListCatalogs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/catalogs",
			Method:      http.MethodPost,
			Handler:     CreateCatalog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/catalogs/:id",
			Method:      http.MethodGet,
			Handler:     GetCatalog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/catalogs/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCatalog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/catalogs/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCatalog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Distributors(service cataloging.Registry) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/distributors",
			Method:      http.MethodGet,
			Handler:     ListDistributors(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/distributors",
			Method:      http.MethodPost,
			Handler:     CreateDistributor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/distributors/:id",
			Method:      http.MethodGet,
			Handler:     GetDistributor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/distributors/:id",
			Method:      http.MethodPut,
			Handler:     UpdateDistributor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/distributors/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteDistributor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Projects(service cataloging.Registry) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projects",
			Method:      http.MethodGet,
			Handler:     ListProjects(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projects",
			Method:      http.MethodPost,
			Handler:     CreateProject(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/projects/:id",
			Method:      http.MethodGet,
			Handler:     GetProject(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projects/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProject(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/projects/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProject(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// CatalogProjections retorna as rotas de projeção de catálogo, incluindo a simulação sem persistência
func CatalogProjections(service projecting.CatalogProjector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projections/catalogs",
			Method:      http.MethodGet,
			Handler:     ListCatalogProjections(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/catalogs",
			Method:      http.MethodPost,
			Handler:     CreateCatalogProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/projections/catalogs/preview",
			Method:      http.MethodPost,
			Handler:     PreviewCatalogProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/catalogs/:id",
			Method:      http.MethodGet,
			Handler:     GetCatalogProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/catalogs/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCatalogProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/projections/catalogs/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCatalogProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
	}
}

func ConcertProjections(service projecting.ConcertProjector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projections/concerts",
			Method:      http.MethodGet,
			Handler:     ListConcertProjections(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/concerts",
			Method:      http.MethodPost,
			Handler:     CreateConcertProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/projections/concerts/preview",
			Method:      http.MethodPost,
			Handler:     PreviewConcertProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/concerts/:id",
			Method:      http.MethodGet,
			Handler:     GetConcertProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/concerts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateConcertProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/projections/concerts/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteConcertProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
	}
}

func ProjectProjections(service projecting.ProjectProjector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projections/projects",
			Method:      http.MethodGet,
			Handler:     ListProjectProjections(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/projects",
			Method:      http.MethodPost,
			Handler:     CreateProjectProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/projections/projects/preview",
			Method:      http.MethodPost,
			Handler:     PreviewProjectProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/projects/:id",
			Method:      http.MethodGet,
			Handler:     GetProjectProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/projects/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProjectProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/projections/projects/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProjectProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
	}
}

// Splits expõe o rebalanceamento de divisões de royalties e de show
func Splits() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/splits/:layout/rebalance",
			Method:      http.MethodPost,
			Handler:     RebalanceSplit(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func PaymentRequests(service paying.PaymentRequester) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/payment-requests",
			Method:      http.MethodGet,
			Handler:     ListPaymentRequests(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/payment-requests",
			Method:      http.MethodPost,
			Handler:     CreatePaymentRequest(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/payment-requests/:id",
			Method:      http.MethodGet,
			Handler:     GetPaymentRequest(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/payment-requests/:id/status",
			Method:      http.MethodPut,
			Handler:     ChangePaymentRequestStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
