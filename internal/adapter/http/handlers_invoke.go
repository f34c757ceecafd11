package http

import (
	"net/http"

	"github.com/ich-youness/Financial-Services-OS/internal/service"
)

type runRequest struct {
	Prompt string         `json:"prompt"`
	Config map[string]any `json:"config"`
}

type runResponse struct {
	RunID   string           `json:"runId"`
	Output  string           `json:"output"`
	Session *service.Session `json:"session,omitempty"`
}

// RunAgent executes an agent with the posted input text and config. Backend
// failures come back as 200 with the error text rendered in the output;
// only gating violations surface as non-2xx.
func (h *Handlers) RunAgent(w http.ResponseWriter, r *http.Request) {
	moduleID := urlParam(r, "moduleID")
	agentID := urlParam(r, "agentID")

	req, ok := readJSON[runRequest](w, r)
	if !ok {
		return
	}

	if _, err := h.Invocations.SetInput(moduleID, agentID, req.Prompt); err != nil {
		writeDomainError(w, err, "agent not found")
		return
	}
	for key, raw := range req.Config {
		if _, err := h.Invocations.SetConfigValue(moduleID, agentID, key, raw); err != nil {
			writeDomainError(w, err, "agent not found")
			return
		}
	}

	result, err := h.Invocations.Run(r.Context(), moduleID, agentID)
	if err != nil {
		writeDomainError(w, err, "agent not found")
		return
	}

	sess, err := h.Invocations.Session(moduleID, agentID)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, runResponse{
		RunID:   result.RunID,
		Output:  result.Output,
		Session: &sess,
	})
}

// ResetSession returns an agent's session to its initial state.
func (h *Handlers) ResetSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Invocations.Reset(urlParam(r, "moduleID"), urlParam(r, "agentID")); err != nil {
		writeDomainError(w, err, "agent not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
