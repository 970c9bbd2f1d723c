package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"engfolio.dev/internal/config"
	"engfolio.dev/internal/middleware"
	"engfolio.dev/internal/models"
	"engfolio.dev/internal/render"
	"engfolio.dev/internal/services"
)

//go:embed templates/*.html static
var webFS embed.FS

var pageNames = []string{"home", "personal", "team", "detail", "contact", "notfound", "error"}

// pageRenderer executes the embedded page templates. Pages are rendered into
// a buffer first so a failure never leaves a half-written page behind.
type pageRenderer struct {
	site  config.SiteConfig
	pages map[string]*template.Template
}

// page is the data every template receives
type page struct {
	Site  config.SiteConfig
	Title string
	Nav   string
	Data  any
}

func newPageRenderer(site config.SiteConfig, icons *services.IconResolver) (*pageRenderer, error) {
	funcs := template.FuncMap{
		"heading": render.Heading,
		"members": render.MemberCount,
		"badges":  icons.Badges,
		"ordinal": func(i int) string { return fmt.Sprintf("%02d", i+1) },
		"path":    func(ref models.Ref) string { return ref.Path() },
	}

	pr := &pageRenderer{site: site, pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(webFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pr.pages[name] = t
	}
	return pr, nil
}

// render writes a page. Any error or panic while executing the template is
// logged and replaced by the error page.
func (pr *pageRenderer) render(w http.ResponseWriter, r *http.Request, status int, name, title, nav string, data any) {
	body, err := pr.execute(name, page{Site: pr.site, Title: title, Nav: nav, Data: data})
	if err != nil {
		slog.Error("page render failed",
			"page", name,
			"path", r.URL.Path,
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
		pr.renderError(w, r)
		return
	}
	writeHTML(w, status, body)
}

func (pr *pageRenderer) execute(name string, p page) (out []byte, err error) {
	t, ok := pr.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic rendering %s: %v", name, rec)
		}
	}()

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderError writes the "something went wrong" page
func (pr *pageRenderer) renderError(w http.ResponseWriter, r *http.Request) {
	body, err := pr.execute("error", page{Site: pr.site, Title: "Something went wrong"})
	if err != nil {
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusInternalServerError, body)
}

// panicked is the Recovery fallback: JSON for the API, the error page elsewhere
func (pr *pageRenderer) panicked(w http.ResponseWriter, r *http.Request, _ any) {
	if isAPIRequest(r) {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	pr.renderError(w, r)
}

func isAPIRequest(r *http.Request) bool {
	return r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/")
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.Debug("failed to write page", "error", err)
	}
}
