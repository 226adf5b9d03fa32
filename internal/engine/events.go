package engine

import "github.com/davidmoltin/command-center/internal/models"

// EventType names a change published by a sequencer or RCA run
type EventType string

const (
	EventStateChanged EventType = "workflow.state_changed"
	EventAgentAction  EventType = "workflow.agent_action"
	EventChatMessage  EventType = "workflow.chat_message"
	EventNotification EventType = "workflow.notification"
	EventRCAProgress  EventType = "rca.progress"
)

// Event is one published change. Exactly one payload field is set, matching Type.
type Event struct {
	Type         EventType            `json:"type"`
	WorkflowID   string               `json:"workflow_id,omitempty"`
	AlertID      string               `json:"alert_id,omitempty"`
	State        models.WorkflowState `json:"state,omitempty"`
	Action       *models.AgentAction  `json:"action,omitempty"`
	Message      *models.ChatMessage  `json:"message,omitempty"`
	Notification *models.Notification `json:"notification,omitempty"`
	RCA          *models.RCAReport    `json:"rca,omitempty"`
}

// Sink receives events in the order they are appended.
// Publish is called with the producer's lock held and must not call back into it.
type Sink interface {
	Publish(Event)
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(Event)

func (f SinkFunc) Publish(e Event) {
	f(e)
}

var discardSink = SinkFunc(func(Event) {})
