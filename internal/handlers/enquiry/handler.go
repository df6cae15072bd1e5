// internal/handlers/enquiry/handler.go
package enquiry

import (
	"net/http"
	"strings"
	"time"

	apperrors "edupath-server/internal/common/errors"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/web"
	"edupath-server/internal/models"

	"github.com/google/uuid"
)

// Handler serves the lead-capture endpoint. The primary store is the only
// sink that can fail the request; everything downstream is best-effort.
type Handler struct {
	store    LeadStore
	notifier *Notifier
	logger   logger.Logger
}

func NewHandler(store LeadStore, notifier *Notifier, log logger.Logger) *Handler {
	return &Handler{
		store:    store,
		notifier: notifier,
		logger:   log.WithFields(map[string]interface{}{"handler": "enquiry"}),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperrors.NewInvalidPayloadError(err.Error()))
		return
	}

	if err := validate(&req); err != nil {
		web.WriteError(w, err)
		return
	}

	lead := buildLead(&req)
	if err := h.store.Insert(r.Context(), lead); err != nil {
		h.logger.Error("lead insert failed", map[string]interface{}{
			"leadId": lead.ID,
			"error":  err.Error(),
		})
		web.WriteError(w, apperrors.NewDatabaseInsertError("could not store the enquiry"))
		return
	}

	h.logger.Info("lead captured", map[string]interface{}{
		"leadId":   lead.ID,
		"source":   lead.Source,
		"priority": string(lead.Priority),
	})

	if h.notifier != nil {
		h.notifier.Dispatch(lead)
	}

	web.WriteJSON(w, http.StatusCreated, Response{
		Success: true,
		ID:      lead.ID,
		Message: "Thank you for your enquiry. Our counsellors will reach out shortly.",
	})
}

func validate(req *Request) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if req.Name == "" {
		return apperrors.NewValidationFailedError("name is required")
	}
	if req.Email == "" {
		return apperrors.NewValidationFailedError("email is required")
	}
	at := strings.Index(req.Email, "@")
	if at < 1 || at == len(req.Email)-1 {
		return apperrors.NewValidationFailedError("email is not valid")
	}
	return nil
}

func buildLead(req *Request) *models.Lead {
	source := req.Source
	if source == "" {
		source = "website"
	}

	return &models.Lead{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		CountryInterest: req.CountryInterest,
		FieldOfStudy:    req.FieldOfStudy,
		Message:         req.Message,
		Source:          source,
		Priority:        derivePriority(req),
		CreatedAt:       time.Now().UTC(),
	}
}

// derivePriority is a coarse triage: callers who leave a phone number and a
// message want a callback; bare email signups can wait.
func derivePriority(req *Request) models.LeadPriority {
	switch {
	case req.Phone != "" && req.Message != "":
		return models.LeadPriorityHigh
	case req.Message == "" && req.Phone == "":
		return models.LeadPriorityLow
	default:
		return models.LeadPriorityNormal
	}
}
