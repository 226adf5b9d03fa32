package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/davidmoltin/command-center/internal/engine"
	"github.com/davidmoltin/command-center/internal/export"
	"github.com/davidmoltin/command-center/internal/grocery"
	"github.com/davidmoltin/command-center/internal/session"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"
)

func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}

// respondWorkbook streams an Excel attachment. Build errors are reported as JSON.
func respondWorkbook(w http.ResponseWriter, log *logger.Logger, filename string, f *excelize.File, err error) {
	if err != nil {
		log.Error("Failed to build workbook", logger.Err(err))
		respondError(w, http.StatusInternalServerError, "Failed to build workbook")
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if err := export.Write(w, f); err != nil {
		log.Error("Failed to stream workbook", logger.Err(err))
	}
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, session.ErrAlertNotFound),
		errors.Is(err, session.ErrWorkflowNotFound),
		errors.Is(err, session.ErrRCANotFound),
		errors.Is(err, grocery.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrNoActions):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrNotCompleted),
		errors.Is(err, engine.ErrStopped),
		errors.Is(err, engine.ErrAlreadyStarted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondDomainError writes err with its mapped status, hiding unexpected errors
func respondDomainError(w http.ResponseWriter, log *logger.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("Unexpected handler error", logger.Err(err))
		respondError(w, status, "Internal server error")
		return
	}
	respondError(w, status, err.Error())
}

// lookupSession resolves the {id} URL parameter and writes a 404 when it is unknown
func lookupSession(w http.ResponseWriter, r *http.Request, store *session.Store) (*session.Session, bool) {
	s, err := store.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return s, true
}

// decodeJSON decodes a request body, writing a 400 on failure
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
