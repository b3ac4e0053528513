package handler

import (
	"net/http"

	"github.com/vfg2006/creative-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/creative-dashboard-api/internal/scheduler"
	"github.com/vfg2006/creative-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/creative-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/creative-dashboard-api/pkg/middleware"
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

func Creatives(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/creatives",
			Method:      http.MethodGet,
			Handler:     ListCreatives(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/catalog",
			Method:      http.MethodGet,
			Handler:     LoadCatalog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/catalog/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshCatalog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/creatives/:id",
			Method:      http.MethodGet,
			Handler:     GetCreative(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/creatives/:id/saved",
			Method:      http.MethodPatch,
			Handler:     ToggleSaved(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Niches(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/niches",
			Method:      http.MethodGet,
			Handler:     ListNiches(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/niches",
			Method:      http.MethodPut,
			Handler:     ReplaceNiches(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/niches",
			Method:      http.MethodPost,
			Handler:     CreateNiche(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/niches/:name",
			Method:      http.MethodPut,
			Handler:     UpdateNiche(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/niches/:name",
			Method:      http.MethodDelete,
			Handler:     DeleteNiche(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Analysis(catalog cataloging.CatalogService, analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/creatives/:id/analysis",
			Method:      http.MethodPost,
			Handler:     AnalyzeCreative(catalog, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analysis/batch",
			Method:      http.MethodPost,
			Handler:     AnalyzeAllCreatives(catalog, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Stats(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stats",
			Method:      http.MethodGet,
			Handler:     GetStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
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
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CatalogSync(syncService *scheduler.CatalogSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync",
			Method:      http.MethodPost,
			Handler:     RunCatalogSync(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
