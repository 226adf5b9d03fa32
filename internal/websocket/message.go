package websocket

import (
	"encoding/json"
	"time"

	"github.com/davidmoltin/command-center/internal/engine"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	// Workflow event types
	MessageTypeWorkflowState  MessageType = MessageType(engine.EventStateChanged)
	MessageTypeAgentAction    MessageType = MessageType(engine.EventAgentAction)
	MessageTypeChatMessage    MessageType = MessageType(engine.EventChatMessage)
	MessageTypeNotification   MessageType = MessageType(engine.EventNotification)
	MessageTypeRCAProgress    MessageType = MessageType(engine.EventRCAProgress)
	MessageTypeSessionExpired MessageType = "session.expired"

	// Connection management
	MessageTypePing         MessageType = "ping"
	MessageTypePong         MessageType = "pong"
	MessageTypeError        MessageType = "error"
	MessageTypeSubscribe    MessageType = "subscribe"
	MessageTypeUnsubscribe  MessageType = "unsubscribe"
	MessageTypeSubscribed   MessageType = "subscribed"
	MessageTypeUnsubscribed MessageType = "unsubscribed"
)

// Message represents a WebSocket message
type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// ErrorData contains error details
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SubscriptionData contains subscription request details
type SubscriptionData struct {
	Channel string  `json:"channel"` // e.g., "sessions:{id}", "workflows:{id}", "rca:{alert_id}"
	Filters Filters `json:"filters,omitempty"`
}

// Filters for subscription
type Filters struct {
	WorkflowIDs []string `json:"workflow_ids,omitempty"`
	EventTypes  []string `json:"event_types,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	var rawData json.RawMessage
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		rawData = jsonData
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Data:      rawData,
	}, nil
}

// ToJSON converts a message to JSON bytes
func (m *Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ParseMessage parses a JSON message
func ParseMessage(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SessionChannel is the channel every client of a session is subscribed to
func SessionChannel(sessionID string) string {
	return "sessions:" + sessionID
}

// WorkflowChannel carries the events of one workflow simulation
func WorkflowChannel(workflowID string) string {
	return "workflows:" + workflowID
}

// RCAChannel carries the RCA progress of one alert
func RCAChannel(alertID string) string {
	return "rca:" + alertID
}
