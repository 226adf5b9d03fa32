package websocket

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/davidmoltin/command-center/internal/engine"
	"github.com/davidmoltin/command-center/pkg/metrics"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// Redis pub/sub channel shared by all instances
	redisChannelAll = "ws:broadcast:all"
)

// Hub maintains the set of active clients and broadcasts messages
type Hub struct {
	// Instance id, used to drop our own messages coming back from Redis
	instanceID string

	// Registered clients by session ID
	clients map[string]map[*Client]bool

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Broadcast messages to clients
	broadcast chan *BroadcastMessage

	// Redis client for pub/sub
	redisClient *redis.Client

	// Redis pub/sub
	redisPubSub *redis.PubSub

	metrics *metrics.Metrics
	logger  *zap.Logger

	// Mutex for thread-safe operations
	mu sync.RWMutex

	// Context for shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

// BroadcastMessage represents a message to broadcast to clients. A client
// receives it once if it is subscribed to any of Channels.
type BroadcastMessage struct {
	Channels   []string `json:"channels"`
	Message    *Message `json:"message"`
	WorkflowID string   `json:"workflow_id,omitempty"`
	SessionID  string   `json:"session_id,omitempty"` // If set, only broadcast to this session
	Origin     string   `json:"origin"`
}

// NewHub creates a new Hub. redisClient and m may be nil.
func NewHub(redisClient *redis.Client, m *metrics.Metrics, logger *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	hub := &Hub{
		instanceID:  uuid.NewString(),
		clients:     make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		broadcast:   make(chan *BroadcastMessage, 256),
		redisClient: redisClient,
		metrics:     m,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}

	return hub
}

// Start starts the hub
func (h *Hub) Start() error {
	// Subscribe to Redis pub/sub for distributed broadcasting
	if h.redisClient != nil {
		h.redisPubSub = h.redisClient.Subscribe(h.ctx, redisChannelAll)
		go h.handleRedisPubSub()
	}

	go h.run()

	h.logger.Info("WebSocket hub started", zap.Bool("redis", h.redisClient != nil))
	return nil
}

// Stop stops the hub
func (h *Hub) Stop() error {
	h.cancel()

	if h.redisPubSub != nil {
		h.redisPubSub.Close()
	}

	h.logger.Info("WebSocket hub stopped")
	return nil
}

// run handles the hub's main loop
func (h *Hub) run() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
			if h.redisClient != nil && message.Origin == h.instanceID {
				h.publishToRedis(message)
			}
		}
	}
}

// registerClient registers a new client
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.sessionID] == nil {
		h.clients[client.sessionID] = make(map[*Client]bool)
	}
	h.clients[client.sessionID][client] = true
	h.updateClientGauge()

	h.logger.Info("client registered",
		zap.String("client_id", client.id),
		zap.String("session_id", client.sessionID),
		zap.Int("total_clients", h.getTotalClients()),
	)
}

// unregisterClient unregisters a client
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.sessionID]; ok {
		if _, exists := clients[client]; exists {
			delete(clients, client)
			close(client.send)

			if len(clients) == 0 {
				delete(h.clients, client.sessionID)
			}
			h.updateClientGauge()

			h.logger.Info("client unregistered",
				zap.String("client_id", client.id),
				zap.String("session_id", client.sessionID),
				zap.Int("total_clients", h.getTotalClients()),
			)
		}
	}
}

// broadcastMessage broadcasts a message to relevant clients
func (h *Hub) broadcastMessage(bm *BroadcastMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	messageData, err := bm.Message.ToJSON()
	if err != nil {
		h.logger.Error("failed to marshal broadcast message", zap.Error(err))
		return
	}

	sentCount := 0
	for sessionID, clients := range h.clients {
		if bm.SessionID != "" && sessionID != bm.SessionID {
			continue
		}
		for client := range clients {
			if h.shouldSendToClient(client, bm) {
				h.sendToClient(client, messageData)
				sentCount++
			}
		}
	}

	h.logger.Debug("broadcast message sent",
		zap.Strings("channels", bm.Channels),
		zap.String("type", string(bm.Message.Type)),
		zap.Int("recipients", sentCount),
	)
}

// shouldSendToClient reports whether any of the message's channels matches a
// subscription of the client
func (h *Hub) shouldSendToClient(client *Client, bm *BroadcastMessage) bool {
	for _, channel := range bm.Channels {
		if client.MatchesFilters(channel, bm.WorkflowID, string(bm.Message.Type)) {
			return true
		}
	}
	return false
}

// sendToClient sends a message to a specific client
func (h *Hub) sendToClient(client *Client, messageData []byte) {
	select {
	case client.send <- messageData:
	default:
		// Client's send channel is full, close the connection
		h.logger.Warn("client send channel full, closing connection",
			zap.String("client_id", client.id),
			zap.String("session_id", client.sessionID),
		)
		go client.Close()
	}
}

// Broadcast queues a message for local clients and, when Redis is configured, other instances.
// It never blocks.
func (h *Hub) Broadcast(channels []string, message *Message, workflowID, sessionID string) {
	bm := &BroadcastMessage{
		Channels:   channels,
		Message:    message,
		WorkflowID: workflowID,
		SessionID:  sessionID,
		Origin:     h.instanceID,
	}

	select {
	case h.broadcast <- bm:
		if h.metrics != nil {
			h.metrics.StreamEventsPublished.WithLabelValues(string(message.Type)).Inc()
		}
	default:
		h.logger.Warn("broadcast channel full, dropping message")
	}
}

// publishToRedis publishes a broadcast message to Redis
func (h *Hub) publishToRedis(bm *BroadcastMessage) {
	data, err := json.Marshal(bm)
	if err != nil {
		h.logger.Error("failed to marshal broadcast message for Redis", zap.Error(err))
		return
	}

	if err := h.redisClient.Publish(h.ctx, redisChannelAll, data).Err(); err != nil {
		h.logger.Error("failed to publish to Redis", zap.Error(err))
		if h.metrics != nil {
			h.metrics.RedisOperationErrors.WithLabelValues("publish").Inc()
		}
	}
}

// handleRedisPubSub handles incoming messages from Redis pub/sub
func (h *Hub) handleRedisPubSub() {
	ch := h.redisPubSub.Channel()

	for {
		select {
		case <-h.ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}

			var bm BroadcastMessage
			if err := json.Unmarshal([]byte(msg.Payload), &bm); err != nil {
				h.logger.Error("failed to unmarshal Redis message", zap.Error(err))
				continue
			}
			if bm.Origin == h.instanceID || bm.Message == nil {
				continue
			}

			// Broadcast to local clients only (don't re-publish to Redis)
			select {
			case h.broadcast <- &bm:
			default:
				h.logger.Warn("broadcast channel full, dropping Redis message")
			}
		}
	}
}

// SessionSink returns an engine.Sink that streams a session's workflow and RCA events
func (h *Hub) SessionSink(sessionID string) engine.Sink {
	return engine.SinkFunc(func(e engine.Event) {
		h.BroadcastEvent(sessionID, e)
	})
}

// BroadcastEvent streams an engine event to the session channel and the workflow
// or RCA channel it belongs to
func (h *Hub) BroadcastEvent(sessionID string, e engine.Event) {
	message, err := NewMessage(MessageType(e.Type), e)
	if err != nil {
		h.logger.Error("failed to create event message", zap.Error(err))
		return
	}

	channels := []string{SessionChannel(sessionID)}
	if e.WorkflowID != "" {
		channels = append(channels, WorkflowChannel(e.WorkflowID))
	} else if e.Type == engine.EventRCAProgress && e.AlertID != "" {
		channels = append(channels, RCAChannel(e.AlertID))
	}

	h.Broadcast(channels, message, e.WorkflowID, sessionID)
}

// BroadcastSessionExpired tells a session's clients that the session is gone
func (h *Hub) BroadcastSessionExpired(sessionID string) {
	message, err := NewMessage(MessageTypeSessionExpired, map[string]string{"session_id": sessionID})
	if err != nil {
		h.logger.Error("failed to create session expired message", zap.Error(err))
		return
	}
	h.Broadcast([]string{SessionChannel(sessionID)}, message, "", sessionID)
}

// GetClientCount returns the total number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.getTotalClients()
}

// getTotalClients returns the total number of connected clients (must be called with lock held)
func (h *Hub) getTotalClients() int {
	count := 0
	for _, clients := range h.clients {
		count += len(clients)
	}
	return count
}

// updateClientGauge must be called with lock held
func (h *Hub) updateClientGauge() {
	if h.metrics != nil {
		h.metrics.WebSocketClients.Set(float64(h.getTotalClients()))
	}
}

// GetSessionClientCount returns the number of clients for a specific session
func (h *Hub) GetSessionClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.clients[sessionID]; ok {
		return len(clients)
	}
	return 0
}

// Stats is a snapshot of hub counters
type Stats struct {
	TotalClients  int  `json:"total_clients"`
	TotalSessions int  `json:"total_sessions"`
	Queued        int  `json:"queued"`
	Redis         bool `json:"redis"`
}

// GetStats returns hub statistics
func (h *Hub) GetStats() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return Stats{
		TotalClients:  h.getTotalClients(),
		TotalSessions: len(h.clients),
		Queued:        len(h.broadcast),
		Redis:         h.redisClient != nil,
	}
}

// ParseChannel parses a channel string and extracts resource type and ID
func ParseChannel(channel string) (resourceType, resourceID string) {
	parts := strings.SplitN(channel, ":", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return channel, ""
}
