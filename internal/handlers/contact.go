package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"engfolio.dev/internal/middleware"
	"engfolio.dev/internal/models"
	"engfolio.dev/internal/services"
)

const maxContactBody = 64 << 10

// ContactHandler handles the JSON contact endpoint
type ContactHandler struct {
	contactService *services.ContactService
	metrics        *middleware.Metrics
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService, m *middleware.Metrics) *ContactHandler {
	return &ContactHandler{contactService: cs, metrics: m}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form models.ContactForm
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.contactService.Submit(r.Context(), form)
	status, outcome := contactStatus(err)
	h.metrics.ContactSubmitted(outcome)
	if err != nil {
		respondJSON(w, status, models.ContactResult{ID: result.ID, Success: false, Message: contactMessage(err)})
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// contactStatus maps a submission error to an HTTP status and metric label
func contactStatus(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, "sent"
	case errors.Is(err, services.ErrContactInvalid):
		return http.StatusBadRequest, "invalid"
	case errors.Is(err, services.ErrContactUnavailable):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.Is(err, services.ErrContactRejected):
		return http.StatusBadGateway, "rejected"
	default:
		return http.StatusInternalServerError, "error"
	}
}

// contactMessage is the text shown to the visitor for a failed submission
func contactMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrContactInvalid):
		return "First name, last name, email, and message are required."
	case errors.Is(err, services.ErrContactUnavailable):
		return "The contact form is not available right now. Please try again later."
	default:
		return "Failed to send message. Please try again later."
	}
}
