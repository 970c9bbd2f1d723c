package handlers

import (
	"net/http"

	"engfolio.dev/internal/models"
	"engfolio.dev/internal/services"
)

// SkillHandler handles skill reference and icon lookup endpoints
type SkillHandler struct {
	icons     *services.IconResolver
	reference *models.SkillReference
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(icons *services.IconResolver, ref *models.SkillReference) *SkillHandler {
	if ref == nil {
		ref = &models.SkillReference{}
	}
	return &SkillHandler{icons: icons, reference: ref}
}

type skillIconResponse struct {
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Found bool   `json:"found"`
}

// ListSkills handles GET /api/skills
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.reference)
}

// GetSkillIcon handles GET /api/skills/icon?label=...
func (h *SkillHandler) GetSkillIcon(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("label") {
		respondError(w, http.StatusBadRequest, "label is required")
		return
	}

	label := q.Get("label")
	icon, ok := h.icons.SkillIcon(label)
	respondJSON(w, http.StatusOK, skillIconResponse{Label: label, Icon: icon, Found: ok})
}
