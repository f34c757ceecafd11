package http

import (
	"net/http"

	"github.com/ich-youness/Financial-Services-OS/internal/service"
)

type formResponse struct {
	ModuleID string            `json:"moduleId"`
	AgentID  string            `json:"agentId"`
	Controls []service.Control `json:"controls"`
}

// GetForm returns the derived config controls for an agent with their
// initial values.
func (h *Handlers) GetForm(w http.ResponseWriter, r *http.Request) {
	moduleID := urlParam(r, "moduleID")
	agentID := urlParam(r, "agentID")

	a, err := h.Catalog.Agent(moduleID, agentID)
	if err != nil {
		writeDomainError(w, err, "agent not found")
		return
	}

	writeJSON(w, http.StatusOK, formResponse{
		ModuleID: moduleID,
		AgentID:  agentID,
		Controls: h.Forms.Derive(a),
	})
}
