package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/schemes", h.listSchemes)
		r.Get("/api/schemes/{id}", h.getScheme)
	})

	// protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/schemes", h.createScheme)
		r.Put("/api/schemes/{id}", h.updateScheme)
		r.Delete("/api/schemes/{id}", h.deleteScheme)

		r.Post("/api/chat", h.chat)
	})

	return router
}
