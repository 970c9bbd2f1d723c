package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"engfolio.dev/internal/models"
)

const defaultContactSubject = "Portfolio contact form"

var (
	ErrContactInvalid     = errors.New("contact form is incomplete")
	ErrContactUnavailable = errors.New("contact form is not configured")
	ErrContactRejected    = errors.New("contact relay rejected the message")
)

// ContactOptions configures the form relay
type ContactOptions struct {
	Endpoint  string
	AccessKey string
	FromName  string
	Timeout   time.Duration
	Client    *http.Client
}

// ContactService forwards contact form submissions to a third-party form
// relay. Each submission is a single request with no retry.
type ContactService struct {
	endpoint  string
	accessKey string
	fromName  string
	client    *http.Client
}

// relayPayload is the JSON body the relay expects
type relayPayload struct {
	AccessKey   string `json:"access_key"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	PhoneNumber string `json:"phone_number"`
	FromName    string `json:"from_name"`
	Botcheck    string `json:"botcheck"`
}

type relayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewContactService creates a new ContactService
func NewContactService(opts ContactOptions) *ContactService {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &ContactService{
		endpoint:  opts.Endpoint,
		accessKey: opts.AccessKey,
		fromName:  opts.FromName,
		client:    client,
	}
}

// Enabled reports whether submissions can be relayed
func (s *ContactService) Enabled() bool {
	return s.accessKey != "" && s.endpoint != ""
}

// Submit validates the form and relays it
func (s *ContactService) Submit(ctx context.Context, form models.ContactForm) (models.ContactResult, error) {
	id := uuid.NewString()
	log := slog.With("submission_id", id)

	form = trimForm(form)
	if missing := missingContactFields(form); len(missing) > 0 {
		return models.ContactResult{ID: id}, fmt.Errorf("%w: missing %s", ErrContactInvalid, strings.Join(missing, ", "))
	}

	// Bots fill the hidden field. Pretend it worked and drop the message.
	if form.Botcheck != "" {
		log.Info("contact submission dropped by honeypot")
		return models.ContactResult{ID: id, Success: true}, nil
	}

	if !s.Enabled() {
		return models.ContactResult{ID: id}, ErrContactUnavailable
	}

	subject := form.Subject
	if subject == "" {
		subject = defaultContactSubject
	}

	body, err := json.Marshal(relayPayload{
		AccessKey:   s.accessKey,
		Name:        form.FirstName + " " + form.LastName,
		Email:       form.Email,
		Subject:     subject,
		Message:     form.Message,
		PhoneNumber: form.PhoneNumber,
		FromName:    s.fromName,
	})
	if err != nil {
		return models.ContactResult{ID: id}, fmt.Errorf("failed to encode contact payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return models.ContactResult{ID: id}, fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Warn("contact relay request failed", "error", err)
		return models.ContactResult{ID: id}, fmt.Errorf("%w: %v", ErrContactRejected, err)
	}
	defer resp.Body.Close()

	var out relayResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		log.Warn("contact relay returned an unreadable body", "status", resp.StatusCode, "error", err)
		return models.ContactResult{ID: id}, fmt.Errorf("%w: status %d", ErrContactRejected, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !out.Success {
		msg := out.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		log.Warn("contact relay rejected submission", "status", resp.StatusCode, "message", out.Message)
		return models.ContactResult{ID: id, Message: out.Message}, fmt.Errorf("%w: %s", ErrContactRejected, msg)
	}

	log.Info("contact submission relayed")
	return models.ContactResult{ID: id, Success: true, Message: out.Message}, nil
}

func trimForm(f models.ContactForm) models.ContactForm {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
	f.Botcheck = strings.TrimSpace(f.Botcheck)
	return f
}

func missingContactFields(f models.ContactForm) []string {
	var missing []string
	if f.FirstName == "" {
		missing = append(missing, "first name")
	}
	if f.LastName == "" {
		missing = append(missing, "last name")
	}
	if f.Email == "" {
		missing = append(missing, "email")
	}
	if f.Message == "" {
		missing = append(missing, "message")
	}
	return missing
}
