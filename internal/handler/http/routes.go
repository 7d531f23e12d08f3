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
		r.Post("/api/auth/login", h.login)
		r.Get("/api/users", h.getUsers)
		r.Get("/api/version", h.getServerVersion)
	})

	// wishlist routes, session token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/items", h.getAllItems)
		r.Get("/api/items/my", h.getMyItems)
		r.Post("/api/items", h.addItem)
		r.Patch("/api/items/{itemID}", h.editItem)
		r.Post("/api/items/{itemID}/purchase", h.markPurchased)
		r.Delete("/api/items/{itemID}/purchase", h.unmarkPurchased)
	})

	// notification endpoints, callable from a browser, hence CORS. Any
	// method reaches the handler; a non-POST is answered with 405 by the
	// handler itself.
	router.Group(func(r chi.Router) {
		r.Use(h.withCORS)

		r.HandleFunc("/api/notify/pin", h.requestPIN)
		r.HandleFunc("/api/notify/daily-summary", h.sendDailySummary)
		r.HandleFunc("/api/notify/roster", h.sendRosterDigest)
	})

	return router
}
