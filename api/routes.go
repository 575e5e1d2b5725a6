package api

import (
	"time"

	"github.com/go-chi/chi/v5"
)

// setupSiteRoutes sets up the public pages, the contact and login forms and
// the admin-gated project mutations.
func setupSiteRoutes(r chi.Router, handlers *routeHandlers, sessions sessionManager) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public pages
		r.Get("/", handlers.siteHandler.home())
		r.Get("/hobbies", handlers.siteHandler.hobbies())
		r.Get("/projects/{name}/{categoryID}", handlers.projectHandler.listByCategory())
		r.Get("/project/{category}/{projectID}", handlers.projectHandler.showProject())

		// Contact form
		r.Get("/contact", handlers.contactHandler.showForm())
		r.With(submissionLimiter(5, time.Minute)).Post("/contact", handlers.contactHandler.submit())

		// Admin session
		r.Get("/admin", handlers.authHandler.showLogin())
		r.With(submissionLimiter(10, time.Minute)).Post("/admin", handlers.authHandler.login())
		r.Get("/logout_admin", handlers.authHandler.logout())
		r.Post("/logout_admin", handlers.authHandler.logout())

		// Mutating project routes require an authenticated administrator
		r.Group(func(r chi.Router) {
			r.Use(sessions.requireAdmin)

			r.Get("/create-project/{category}/{categoryID}", handlers.projectHandler.showCreateForm())
			r.Post("/create-project/{category}/{categoryID}", handlers.projectHandler.createProject())
			r.Get("/edit-project/{category}/{projectID}", handlers.projectHandler.showEditForm())
			r.Post("/edit-project/{category}/{projectID}", handlers.projectHandler.editProject())
			r.Get("/delete-project/{category}/{projectID}", handlers.projectHandler.deleteProject())
		})
	})
}
