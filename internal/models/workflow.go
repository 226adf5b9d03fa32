package models

import "time"

// WorkflowState is the lifecycle state of a simulated workflow run
type WorkflowState string

const (
	WorkflowStateIdle       WorkflowState = "idle"
	WorkflowStateProcessing WorkflowState = "processing"
	WorkflowStateCompleted  WorkflowState = "completed"
)

// AgentType identifies who produced an agent log entry
type AgentType string

const (
	AgentTypeOrchestrator AgentType = "orchestrator"
	AgentTypeTool         AgentType = "tool"
)

// ActionStatus is the status of an agent log entry
type ActionStatus string

const (
	ActionStatusPending   ActionStatus = "pending"
	ActionStatusRunning   ActionStatus = "running"
	ActionStatusCompleted ActionStatus = "completed"
)

// AgentAction is one entry of the agent log
type AgentAction struct {
	ID        string       `json:"id"`
	AgentType AgentType    `json:"agent_type"`
	Title     string       `json:"title"`
	Status    ActionStatus `json:"status"`
	Outputs   []string     `json:"outputs,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// MessageType is the author side of a chat message
type MessageType string

const (
	MessageTypeUser      MessageType = "user"
	MessageTypeAssistant MessageType = "assistant"
)

// Agent names the simulated agent behind an assistant message
type Agent string

const (
	AgentOrchestrator Agent = "orchestrator"
	AgentProcurement  Agent = "procurement"
	AgentInventory    Agent = "inventory"
	AgentTool         Agent = "tool"
)

// ChatMessage is one entry of the workflow chat transcript
type ChatMessage struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	Agent     Agent       `json:"agent,omitempty"`
}

// WorkflowDataset holds the synthetic procurement figures for one executed action
type WorkflowDataset struct {
	ProductName      string `json:"product_name"`
	ProductHSN       string `json:"product_hsn"`
	ProductSKU       string `json:"product_sku"`
	SecondarySKU     string `json:"secondary_sku"`
	RequiredQty      string `json:"required_qty"`
	OrderID          string `json:"order_id"`
	InsufficientItem string `json:"insufficient_item"`
	SufficientItem   string `json:"sufficient_item"`
}

// WorkflowTrace is the externally visible result of a workflow run
type WorkflowTrace struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	AlertID      string            `json:"alert_id"`
	State        WorkflowState     `json:"state"`
	AgentActions []AgentAction     `json:"agent_actions"`
	Messages     []ChatMessage     `json:"messages"`
	Datasets     []WorkflowDataset `json:"datasets,omitempty"`
}

// RCAReport is the staged root-cause analysis progress for one alert
type RCAReport struct {
	AlertID  string   `json:"alert_id"`
	Progress int      `json:"progress"`
	Stage    int      `json:"stage"`
	Complete bool     `json:"complete"`
	Findings []string `json:"findings"`
}

// Notification is a user-visible notice that carries no state change
type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
