package ws

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Event type constants for WebSocket messages.
const (
	EventRunStarted  = "run.started"
	EventRunFinished = "run.finished"
	EventRunFailed   = "run.failed"
)

// RunStartedEvent is broadcast when an agent run begins.
type RunStartedEvent struct {
	RunID    string `json:"run_id"`
	ModuleID string `json:"module_id"`
	AgentID  string `json:"agent_id"`
}

// RunFinishedEvent is broadcast when an agent run completes.
type RunFinishedEvent struct {
	RunID    string `json:"run_id"`
	ModuleID string `json:"module_id"`
	AgentID  string `json:"agent_id"`
	Output   string `json:"output"`
}

// RunFailedEvent is broadcast when an agent run ends in an error.
type RunFailedEvent struct {
	RunID    string `json:"run_id"`
	ModuleID string `json:"module_id"`
	AgentID  string `json:"agent_id"`
	Reason   string `json:"reason"`
}

// BroadcastEvent is a convenience method that marshals a typed event and broadcasts it.
func (h *Hub) BroadcastEvent(ctx context.Context, eventType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("marshal ws event payload", "type", eventType, "error", err)
		return
	}

	h.Broadcast(ctx, Message{
		Type:    eventType,
		Payload: json.RawMessage(data),
	})
}
