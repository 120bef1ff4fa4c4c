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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/reset-password", h.resetPassword)

		// the item feed is public: anyone can browse reports
		r.Get("/api/items", h.listItems)
		r.Get("/api/items/{itemID}", h.getItem)
	})

	// routes requiring a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)

		r.Post("/api/items", h.reportItem)
		r.Post("/api/items/{itemID}/status", h.setItemStatus)
		r.Delete("/api/items/{itemID}", h.deleteItem)

		r.Get("/api/dashboard", h.dashboard)
	})

	return router
}
