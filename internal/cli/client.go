package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/davidmoltin/command-center/internal/models"
)

// APIError is a non-success response from the command center API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.Status)
}

// ReadyStatus is the /ready response
type ReadyStatus struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

// WorkflowRequest triggers a workflow in a remote session
type WorkflowRequest struct {
	AlertID     string   `json:"alert_id"`
	Name        string   `json:"workflow_name"`
	Description string   `json:"workflow_description"`
	ActionIDs   []string `json:"action_ids"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doJSON sends body as JSON and decodes the response into out when the status matches want
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, want int, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		data, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{Status: resp.StatusCode, Message: string(bytes.TrimSpace(data))}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// HealthCheck checks if the API is healthy
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, http.StatusOK, nil); err != nil {
		return fmt.Errorf("API health check failed: %w", err)
	}
	return nil
}

// Ready returns the readiness report. A not-ready server still yields a report.
func (c *Client) Ready(ctx context.Context) (*ReadyStatus, error) {
	var status ReadyStatus
	err := c.doJSON(ctx, http.MethodGet, "/ready", nil, http.StatusOK, &status)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusServiceUnavailable {
		return &ReadyStatus{Status: "not ready"}, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Dashboard fetches the stateless dashboard view for a selection
func (c *Client) Dashboard(ctx context.Context, sel models.FilterSelection) (*models.DashboardView, error) {
	q := url.Values{
		"product":  {sel.Product},
		"region":   {sel.Region},
		"plant":    {sel.Plant},
		"sku":      {sel.SKU},
		"supplier": {sel.Supplier},
	}

	var view models.DashboardView
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/dashboard?"+q.Encode(), nil, http.StatusOK, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// CreateSession opens a new session and returns its id
func (c *Client) CreateSession(ctx context.Context) (string, error) {
	var summary struct {
		ID string `json:"id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/sessions", nil, http.StatusCreated, &summary); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return summary.ID, nil
}

// DeleteSession closes a session
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/v1/sessions/"+url.PathEscape(sessionID), nil, http.StatusNoContent, nil)
}

// StartWorkflow triggers a workflow and returns its initial trace
func (c *Client) StartWorkflow(ctx context.Context, sessionID string, req WorkflowRequest) (*models.WorkflowTrace, error) {
	var trace models.WorkflowTrace
	path := "/api/v1/sessions/" + url.PathEscape(sessionID) + "/workflows"
	if err := c.doJSON(ctx, http.MethodPost, path, req, http.StatusAccepted, &trace); err != nil {
		return nil, fmt.Errorf("failed to start workflow: %w", err)
	}
	return &trace, nil
}

// GetWorkflow returns a workflow's trace
func (c *Client) GetWorkflow(ctx context.Context, sessionID, workflowID string) (*models.WorkflowTrace, error) {
	var trace models.WorkflowTrace
	path := "/api/v1/sessions/" + url.PathEscape(sessionID) + "/workflows/" + url.PathEscape(workflowID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, http.StatusOK, &trace); err != nil {
		return nil, err
	}
	return &trace, nil
}

// WaitForWorkflow polls until the workflow completes or ctx is done
func (c *Client) WaitForWorkflow(ctx context.Context, sessionID, workflowID string, poll time.Duration) (*models.WorkflowTrace, error) {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		trace, err := c.GetWorkflow(ctx, sessionID, workflowID)
		if err != nil {
			return nil, err
		}
		if trace.State == models.WorkflowStateCompleted {
			return trace, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for workflow %s: %w", workflowID, ctx.Err())
		case <-ticker.C:
		}
	}
}

// SendMessage posts a follow-up chat message and returns the updated trace
func (c *Client) SendMessage(ctx context.Context, sessionID, workflowID, content string) (*models.WorkflowTrace, error) {
	var trace models.WorkflowTrace
	path := "/api/v1/sessions/" + url.PathEscape(sessionID) + "/workflows/" + url.PathEscape(workflowID) + "/messages"
	if err := c.doJSON(ctx, http.MethodPost, path, map[string]string{"content": content}, http.StatusOK, &trace); err != nil {
		return nil, err
	}
	return &trace, nil
}
