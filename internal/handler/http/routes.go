package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router:
//
//	GET    /api/version
//	POST   /api/users          register
//	POST   /api/sessions       login
//	DELETE /api/sessions       logout           (bearer)
//	GET    /api/users/{id}     profile          (bearer, own id only)
//	PATCH  /api/users/{id}     update email     (bearer, own id only)
//	DELETE /api/users/{id}     delete account   (bearer, own id only)
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withTimeout)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/users", h.register)
		r.Post("/api/sessions", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Delete("/api/sessions", h.logout)

		r.Group(func(r chi.Router) {
			r.Use(h.ownerOnly)
			r.Get("/api/users/{id}", h.getUser)
			r.Patch("/api/users/{id}", h.updateUser)
			r.Delete("/api/users/{id}", h.deleteUser)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
