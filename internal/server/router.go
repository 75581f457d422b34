package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Turab-IE/Calcu-App/internal/calc"
	"github.com/Turab-IE/Calcu-App/internal/handlers"
	"github.com/Turab-IE/Calcu-App/internal/observability"
)

// NewRouter assembles the middleware chain and mounts the calculator API
// under /api/v1. The API carries its own dependencies; the router owns none.
func NewRouter(api *calc.API) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	r.Route("/api/v1", api.RegisterRoutes)

	return r
}
