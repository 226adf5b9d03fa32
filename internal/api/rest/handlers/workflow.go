package handlers

import (
	"net/http"

	"github.com/davidmoltin/command-center/internal/engine"
	"github.com/davidmoltin/command-center/internal/export"
	"github.com/davidmoltin/command-center/internal/models"
	"github.com/davidmoltin/command-center/internal/session"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/davidmoltin/command-center/pkg/metrics"
	"github.com/davidmoltin/command-center/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// WorkflowHandler handles workflow simulations inside a session
type WorkflowHandler struct {
	logger  *logger.Logger
	store   *session.Store
	metrics *metrics.Metrics
}

// NewWorkflowHandler creates a new workflow handler
func NewWorkflowHandler(log *logger.Logger, store *session.Store, m *metrics.Metrics) *WorkflowHandler {
	return &WorkflowHandler{
		logger:  log,
		store:   store,
		metrics: m,
	}
}

// CreateWorkflowRequest triggers a workflow from the selected recommended actions
type CreateWorkflowRequest struct {
	AlertID     string   `json:"alert_id" validate:"notblank"`
	Name        string   `json:"workflow_name" validate:"notblank,max=200"`
	Description string   `json:"workflow_description" validate:"max=2000"`
	ActionIDs   []string `json:"action_ids" validate:"required,min=1,dive,notblank"`
}

// SendMessageRequest is a follow-up chat message
type SendMessageRequest struct {
	Content string `json:"content" validate:"max=2000"`
}

// Create handles POST /api/v1/sessions/{id}/workflows
func (h *WorkflowHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	var req CreateWorkflowRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validator.Validate(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	seq, err := s.StartWorkflow(session.WorkflowRequest{
		AlertID:     req.AlertID,
		Name:        req.Name,
		Description: req.Description,
		ActionIDs:   req.ActionIDs,
	})
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.Info("Workflow triggered",
		logger.SessionID(s.ID()),
		logger.WorkflowID(seq.ID()),
		logger.AlertID(req.AlertID),
	)
	respondJSON(w, http.StatusAccepted, seq.Trace())
}

// Get handles GET /api/v1/sessions/{id}/workflows/{wid}
func (h *WorkflowHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	seq, err := s.Workflow(chi.URLParam(r, "wid"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, seq.Trace())
}

// Delete handles DELETE /api/v1/sessions/{id}/workflows/{wid}
func (h *WorkflowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	if err := s.StopWorkflow(chi.URLParam(r, "wid")); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SendMessage handles POST /api/v1/sessions/{id}/workflows/{wid}/messages
func (h *WorkflowHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	seq, err := s.Workflow(chi.URLParam(r, "wid"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	var req SendMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validator.Validate(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := seq.SendMessage(req.Content); err != nil {
		h.countMessage("rejected")
		respondDomainError(w, h.logger, err)
		return
	}
	h.countMessage("accepted")
	respondJSON(w, http.StatusOK, seq.Trace())
}

// Voice handles POST /api/v1/sessions/{id}/workflows/{wid}/voice
func (h *WorkflowHandler) Voice(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	seq, err := s.Workflow(chi.URLParam(r, "wid"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, seq.VoiceInput())
}

// Export handles GET /api/v1/sessions/{id}/workflows/{wid}/export
func (h *WorkflowHandler) Export(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	seq, err := s.Workflow(chi.URLParam(r, "wid"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	trace := seq.Trace()
	if trace.State != models.WorkflowStateCompleted {
		respondDomainError(w, h.logger, engine.ErrNotCompleted)
		return
	}
	f, err := export.WorkflowWorkbook(trace)
	if err == nil {
		h.countExport("workflow")
	}
	respondWorkbook(w, h.logger, export.Filename("workflow", trace.ID), f, err)
}

func (h *WorkflowHandler) countExport(kind string) {
	if h.metrics != nil {
		h.metrics.ExportsTotal.WithLabelValues(kind).Inc()
	}
}

func (h *WorkflowHandler) countMessage(status string) {
	if h.metrics != nil {
		h.metrics.WorkflowMessages.WithLabelValues(status).Inc()
	}
}
