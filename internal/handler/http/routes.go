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

	// routes without authorization: the emotion catalog is static and public
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/emotions", h.listEmotions)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/records", h.createRecord)
		r.Get("/api/records", h.listRecords)
		r.Get("/api/records/export", h.exportRecords)
		r.Delete("/api/records/{id}", h.deleteRecord)

		r.Get("/api/stats", h.stats)
		r.Get("/api/report", h.report)
		r.Post("/api/summary", h.summarize)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
