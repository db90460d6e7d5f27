package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router. Middleware order matters: panics are recovered
// first, then every request gets a trace id and an access-log line, then CORS
// is answered, then the optimistic authentication filter runs, and finally
// the access policy decides whether the request reaches a handler.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.cors)
	router.Use(h.auth)
	router.Use(h.authorize)

	router.Get("/health", h.Health)

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signin", h.SignIn)
			r.Post("/signup", h.SignUp)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Get("/{id}", h.GetUser)
		})

		r.Get("/utentes", h.ListUtentes)
	})

	return router
}
