package handlers

import (
	"net/http"

	"github.com/davidmoltin/command-center/internal/dashboard"
	"github.com/davidmoltin/command-center/internal/models"
	"github.com/davidmoltin/command-center/internal/session"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/davidmoltin/command-center/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// SessionHandler handles session lifecycle, filters and root-cause analysis
type SessionHandler struct {
	logger    *logger.Logger
	store     *session.Store
	engine    *dashboard.Engine
	onDeleted func(sessionID string)
}

// NewSessionHandler creates a new session handler. onDeleted may be nil.
func NewSessionHandler(log *logger.Logger, store *session.Store, engine *dashboard.Engine, onDeleted func(string)) *SessionHandler {
	return &SessionHandler{
		logger:    log,
		store:     store,
		engine:    engine,
		onDeleted: onDeleted,
	}
}

// SetFilterRequest changes one facet of the session's selection
type SetFilterRequest struct {
	Facet string `json:"facet" validate:"required,facet"`
	Value string `json:"value" validate:"notblank"`
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.store.Create()
	respondJSON(w, http.StatusCreated, s.Summary())
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, s.Summary())
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.Delete(id); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	if h.onDeleted != nil {
		h.onDeleted(id)
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetFilter handles PUT /api/v1/sessions/{id}/filters and returns the recomputed dashboard
func (h *SessionHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	var req SetFilterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validator.Validate(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sel := s.SetFilter(models.Facet(req.Facet), req.Value)
	respondJSON(w, http.StatusOK, h.engine.View(sel))
}

// Dashboard handles GET /api/v1/sessions/{id}/dashboard
func (h *SessionHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.engine.View(s.Filters()))
}

// StartRCA handles POST /api/v1/sessions/{id}/alerts/{alertID}/rca
func (h *SessionHandler) StartRCA(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	report, err := s.StartRCA(chi.URLParam(r, "alertID"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, report)
}

// GetRCA handles GET /api/v1/sessions/{id}/alerts/{alertID}/rca
func (h *SessionHandler) GetRCA(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	report, err := s.RCA(chi.URLParam(r, "alertID"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
