package suppliers

import "github.com/go-chi/chi/v5"

// MountRoutes registers supplier routes; every route requires a login.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		if h.guard != nil {
			r.Use(h.guard)
		}
		r.Get("/", h.Form)
		r.Post("/cadastrar", h.Create)
	})
}
