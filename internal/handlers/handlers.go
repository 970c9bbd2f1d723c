package handlers

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"engfolio.dev/internal/config"
	"engfolio.dev/internal/middleware"
	"engfolio.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Initialize services
	projectService := services.NewProjectService(cfg.Catalog)
	iconResolver := services.NewIconResolver(cfg.Skills)
	contactService := services.NewContactService(services.ContactOptions{
		Endpoint:  cfg.Contact.Endpoint,
		AccessKey: cfg.Contact.AccessKey,
		FromName:  cfg.Contact.FromName,
		Timeout:   cfg.Contact.Timeout,
	})
	metrics := middleware.NewMetrics()

	pages, err := newPageRenderer(cfg.Site, iconResolver)
	if err != nil {
		// templates are embedded; this only fails on a broken build
		panic("failed to parse templates: " + err.Error())
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(metrics.Middleware)
	r.Use(middleware.Recovery(pages.panicked))

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService, iconResolver, metrics)
	skillHandler := NewSkillHandler(iconResolver, cfg.Skills)
	contactHandler := NewContactHandler(contactService, metrics)
	pageHandler := NewPageHandler(projectService, contactService, pages, metrics)

	if !contactService.Enabled() {
		slog.Warn("contact relay access key not set; contact form submissions will be refused")
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{type}", projectHandler.ListProjectsByType)
		r.Get("/projects/{type}/{id}", projectHandler.GetProject)
		r.Get("/team/featured", projectHandler.GetTeamShowcase)

		// Skill endpoints
		r.Get("/skills", skillHandler.ListSkills)
		r.Get("/skills/icon", skillHandler.GetSkillIcon)

		r.Post("/contact", contactHandler.Submit)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusNotFound, "not found")
		})
	})

	r.Handle("/metrics", metrics.Handler())

	// Static files
	staticFS, err := fs.Sub(webFS, "static")
	if err != nil {
		panic("failed to open embedded static dir: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(staticFS))))

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/personal-projects", pageHandler.PersonalProjects)
	r.Get("/team-projects", pageHandler.TeamProjects)
	r.Get("/projects/{type}/{id}", pageHandler.ProjectDetail)
	r.Get("/contact", pageHandler.Contact)
	r.Post("/contact", pageHandler.SubmitContact)
	r.NotFound(pageHandler.NotFound)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("error encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
