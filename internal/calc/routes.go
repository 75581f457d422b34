package calc

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints onto the given router.
func (a *API) RegisterRoutes(r chi.Router) {
	r.Post("/calculate", a.Calculate)
	r.Get("/history", a.GetHistory)
	r.Delete("/history", a.ClearHistory)
	r.Get("/history/last", a.LastResult)
	r.Get("/operations", a.Operations)
	r.Get("/constants", a.Constants)
}
