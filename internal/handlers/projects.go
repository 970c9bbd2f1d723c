package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"engfolio.dev/internal/middleware"
	"engfolio.dev/internal/models"
	"engfolio.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	icons          *services.IconResolver
	metrics        *middleware.Metrics
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, icons *services.IconResolver, m *middleware.Metrics) *ProjectHandler {
	return &ProjectHandler{projectService: ps, icons: icons, metrics: m}
}

type projectResponse struct {
	Ref         models.Ref          `json:"ref"`
	Path        string              `json:"path"`
	Title       string              `json:"title"`
	SkillBadges []models.SkillBadge `json:"skill_badges"`
	Project     models.Project      `json:"project"`
}

type teamShowcaseResponse struct {
	Featured    bool                 `json:"featured"`
	Highlighted *models.TeamProject  `json:"highlighted"`
	Supporting  []models.TeamProject `json:"supporting"`
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	respondJSON(w, http.StatusOK, projects)
}

// ListProjectsByType handles GET /api/projects/{type}
func (h *ProjectHandler) ListProjectsByType(w http.ResponseWriter, r *http.Request) {
	t, err := models.ParseProjectType(chi.URLParam(r, "type"))
	if err != nil {
		respondError(w, http.StatusNotFound, "unknown project type")
		return
	}
	respondJSON(w, http.StatusOK, h.projectService.ByType(t))
}

// GetProject handles GET /api/projects/{type}/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	ref, err := models.ParseRef(chi.URLParam(r, "type"), chi.URLParam(r, "id"))
	if err != nil {
		h.metrics.LookupMissed("malformed")
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	project, ok := h.projectService.ByRef(ref)
	if !ok {
		h.metrics.LookupMissed("absent")
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	respondJSON(w, http.StatusOK, projectResponse{
		Ref:         ref,
		Path:        ref.Path(),
		Title:       project.Title(),
		SkillBadges: h.icons.Badges(project.SkillLabels()),
		Project:     project,
	})
}

// GetTeamShowcase handles GET /api/team/featured
func (h *ProjectHandler) GetTeamShowcase(w http.ResponseWriter, r *http.Request) {
	resp := teamShowcaseResponse{Supporting: h.projectService.SupportingTeamProjects()}
	if p, ok := h.projectService.HighlightedTeamProject(); ok {
		resp.Highlighted = &p
		resp.Featured = p.IsFeatured
	}
	respondJSON(w, http.StatusOK, resp)
}
