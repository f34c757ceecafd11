// Package executor defines the port for running catalog agents on the
// execution backend.
package executor

import "context"

// Request describes a single agent run sent to the execution backend.
type Request struct {
	ModuleID string         `json:"moduleId"`
	AgentID  string         `json:"agentId"`
	Prompt   string         `json:"prompt"`
	Config   map[string]any `json:"config"`
}

// Executor is the port interface for the agent execution backend.
type Executor interface {
	// Execute runs the request and returns the normalized output text.
	Execute(ctx context.Context, req Request) (string, error)
}
