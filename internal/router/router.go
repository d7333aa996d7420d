// Package router sets up all HTTP routes and middleware chains for the
// SkillForge API. Routes are organized into public, auth, and admin
// groups with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skillforge/internal/handlers"
	"skillforge/internal/middleware"
	"skillforge/internal/token"
)

// Options carries the router's cross-cutting configuration.
type Options struct {
	Version string

	// UploadsDir, when non-empty, is served at /uploads for local
	// storage deployments.
	UploadsDir string

	// LeadLimit caps lead submissions per client IP per minute.
	LeadLimit int
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(signer *token.Signer, public *handlers.Public, auth *handlers.Auth, admin *handlers.Admin, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/api/health", handlers.Health(opts.Version))

	// Public API.
	r.Get("/api/content", public.Content)
	r.Get("/api/courses", public.Courses)

	// Leads: public intake is rate-limited against form spam; reading
	// and managing leads needs an access token.
	leadLimit := opts.LeadLimit
	if leadLimit <= 0 {
		leadLimit = 10
	}
	r.Route("/api/leads", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.NewRateLimiter(leadLimit, time.Minute).Middleware)
			r.Post("/", public.CreateLead)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(signer))
			r.Get("/", admin.ListLeads)
			r.Put("/{id}", admin.UpdateLeadStatus)
			r.Delete("/{id}", admin.DeleteLead)
		})
	})

	// Auth.
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", auth.Login)
		r.Post("/reset/request", auth.RequestPasswordReset)
		r.Post("/reset/confirm", auth.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(signer))
			r.Get("/me", auth.Me)
		})
	})

	// Admin API requires a valid access token.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireAuth(signer))

		// Draft/commit cycle over the site state.
		r.Route("/draft", func(r chi.Router) {
			r.Get("/", admin.Draft)
			r.Put("/", admin.UpdateDraft)
			r.Post("/discard", admin.DiscardDraft)
			r.Post("/save", admin.SaveDraft)
		})

		// Uploads.
		r.Post("/uploads", admin.Upload)
		r.Delete("/uploads", admin.DeleteUpload)

		// User management is admin role only.
		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/", admin.ListUsers)
			r.Post("/", admin.CreateUser)
			r.Delete("/{id}", admin.DeleteUser)
		})
	})

	// Locally stored uploads.
	if opts.UploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadsDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	return r
}
