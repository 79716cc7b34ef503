package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public API. Reads are open; every mutating endpoint
// sits behind the session guard.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.statusHandler.health())

		// Auth endpoints
		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/logout", handlers.authHandler.logout())
		r.Get("/auth/check", handlers.authHandler.check())

		// Public reads
		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{id}", handlers.projectHandler.getProject())
		r.Get("/products", handlers.productHandler.getAllProducts())
		r.Get("/products/{id}", handlers.productHandler.getProduct())

		// Guarded writes
		r.Group(func(r chi.Router) {
			r.Use(auth.requireAuth)

			r.Post("/profile", handlers.profileHandler.createProfile())
			r.Put("/profile", handlers.profileHandler.updateProfile())

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{id}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{id}", handlers.projectHandler.deleteProject())

			r.Post("/products", handlers.productHandler.createProduct())
			r.Put("/products/{id}", handlers.productHandler.updateProduct())
			r.Delete("/products/{id}", handlers.productHandler.deleteProduct())
		})
	})
}
