package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"engfolio.dev/internal/middleware"
	"engfolio.dev/internal/models"
	"engfolio.dev/internal/render"
	"engfolio.dev/internal/services"
)

// PageHandler serves the HTML pages of the site
type PageHandler struct {
	projectService *services.ProjectService
	contactService *services.ContactService
	pages          *pageRenderer
	metrics        *middleware.Metrics
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, cs *services.ContactService, pages *pageRenderer, m *middleware.Metrics) *PageHandler {
	return &PageHandler{projectService: ps, contactService: cs, pages: pages, metrics: m}
}

type homeView struct {
	Personal    []models.PersonalProject
	Highlighted *models.TeamProject
}

type teamView struct {
	Highlighted *models.TeamProject
	Supporting  []models.TeamProject
}

type detailView struct {
	Ref       models.Ref
	Title     string
	Image     string
	Skills    []string
	Personal  *models.PersonalProject
	Team      *models.TeamProject
	Sections  []render.Section
	BackPath  string
	BackLabel string
}

type contactView struct {
	Enabled bool
	Form    models.ContactForm
	Sent    bool
	Error   string
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	view := homeView{Personal: h.projectService.Personal()}
	if p, ok := h.projectService.HighlightedTeamProject(); ok {
		view.Highlighted = &p
	}
	h.pages.render(w, r, http.StatusOK, "home", "", "home", view)
}

// PersonalProjects handles GET /personal-projects
func (h *PageHandler) PersonalProjects(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, r, http.StatusOK, "personal", "Personal Projects", "personal", h.projectService.Personal())
}

// TeamProjects handles GET /team-projects
func (h *PageHandler) TeamProjects(w http.ResponseWriter, r *http.Request) {
	view := teamView{Supporting: h.projectService.SupportingTeamProjects()}
	if p, ok := h.projectService.HighlightedTeamProject(); ok {
		view.Highlighted = &p
	}
	h.pages.render(w, r, http.StatusOK, "team", "Team Projects", "team", view)
}

// ProjectDetail handles GET /projects/{type}/{id}
func (h *PageHandler) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	ref, err := models.ParseRef(chi.URLParam(r, "type"), chi.URLParam(r, "id"))
	if err != nil {
		h.metrics.LookupMissed("malformed")
		h.projectNotFound(w, r)
		return
	}

	project, ok := h.projectService.ByRef(ref)
	if !ok {
		h.metrics.LookupMissed("absent")
		h.projectNotFound(w, r)
		return
	}

	view, err := newDetailView(project)
	if err != nil {
		h.pages.render(w, r, http.StatusInternalServerError, "error", "Something went wrong", "", nil)
		return
	}
	h.pages.render(w, r, http.StatusOK, "detail", view.Title, string(ref.Type), view)
}

func newDetailView(p models.Project) (detailView, error) {
	sections, err := render.Sections(p)
	if err != nil {
		return detailView{}, err
	}

	view := detailView{
		Ref:      p.Ref(),
		Title:    p.Title(),
		Image:    p.ImageURL(),
		Skills:   p.SkillLabels(),
		Sections: sections,
	}
	switch v := p.(type) {
	case models.PersonalProject:
		view.Personal = &v
		view.BackPath, view.BackLabel = "/personal-projects", "Back to Personal Projects"
	case models.TeamProject:
		view.Team = &v
		view.BackPath, view.BackLabel = "/team-projects", "Back to Team Projects"
	}
	return view, nil
}

func (h *PageHandler) projectNotFound(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, r, http.StatusNotFound, "notfound", "Project Not Found", "", "Project Not Found")
}

// NotFound handles unmatched routes
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, r, http.StatusNotFound, "notfound", "Page Not Found", "", "Page Not Found")
}

// Contact handles GET /contact
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, r, http.StatusOK, "contact", "Contact", "contact", contactView{Enabled: h.contactService.Enabled()})
}

// SubmitContact handles POST /contact from the HTML form
func (h *PageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := r.ParseForm(); err != nil {
		h.pages.render(w, r, http.StatusBadRequest, "contact", "Contact", "contact",
			contactView{Enabled: h.contactService.Enabled(), Error: "We couldn't read your message. Please try again."})
		return
	}

	form := models.ContactForm{
		FirstName:   r.PostForm.Get("first_name"),
		LastName:    r.PostForm.Get("last_name"),
		Email:       r.PostForm.Get("email"),
		PhoneNumber: r.PostForm.Get("phone_number"),
		Subject:     r.PostForm.Get("subject"),
		Message:     r.PostForm.Get("message"),
		Botcheck:    r.PostForm.Get("botcheck"),
	}

	_, err := h.contactService.Submit(r.Context(), form)
	status, outcome := contactStatus(err)
	h.metrics.ContactSubmitted(outcome)

	view := contactView{Enabled: h.contactService.Enabled()}
	if err != nil {
		view.Form = form
		view.Error = contactMessage(err)
	} else {
		view.Sent = true
	}
	if errors.Is(err, services.ErrContactInvalid) {
		status = http.StatusUnprocessableEntity
	}
	h.pages.render(w, r, status, "contact", "Contact", "contact", view)
}
