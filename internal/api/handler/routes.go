package handler

import (
	"net/http"

	"github.com/vfg2006/opensea-sales-report/internal/api/handler/router"
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

func Progress(provider ProgressProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/progress",
			Method:  http.MethodGet,
			Handler: GetProgress(provider),
		},
	}
}
