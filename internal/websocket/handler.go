package websocket

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// SessionLookup reports whether a session exists
type SessionLookup func(sessionID string) bool

// Handler handles WebSocket connections
type Handler struct {
	hub      *Hub
	sessions SessionLookup
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewHandler creates a new WebSocket handler. An empty allowedOrigins list, or one
// containing "*", accepts any origin.
func NewHandler(hub *Hub, sessions SessionLookup, allowedOrigins []string, logger *zap.Logger) *Handler {
	return &Handler{
		hub:      hub,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
		logger: logger,
	}
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		if len(allowed) == 0 || slices.Contains(allowed, "*") {
			return true
		}
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}

// HandleWebSocket upgrades a request carrying ?session_id= to an event stream
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		h.logger.Warn("websocket connection attempted without session_id")
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}
	if h.sessions != nil && !h.sessions(sessionID) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection", zap.Error(err))
		return
	}

	client := NewClient(h.hub, conn, sessionID, h.logger)

	// Register client with hub
	h.hub.register <- client

	client.Start()

	h.logger.Info("websocket connection established",
		zap.String("client_id", client.id),
		zap.String("session_id", sessionID),
		zap.String("remote_addr", r.RemoteAddr),
	)
}

// HandleStats returns WebSocket statistics
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(h.hub.GetStats()); err != nil {
		h.logger.Error("failed to encode websocket stats", zap.Error(err))
	}
}
