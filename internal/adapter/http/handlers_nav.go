package http

import (
	"net/http"
	"strings"

	"github.com/ich-youness/Financial-Services-OS/internal/service"
)

// GetNav returns the projected navigation tree. The selection comes from
// the module/agent query params; expanded lists the sub-teams the client
// has opened as moduleID/teamID pairs, since team IDs are only unique
// within their module; collapsed=true yields the icon-only projection.
func (h *Handlers) GetNav(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	state := service.TreeState{
		Collapsed: q.Get("collapsed") == "true",
		Expanded:  map[string]bool{},
	}
	if raw := q.Get("expanded"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			state.Expanded[id] = true
		}
	}

	nodes := h.Nav.Tree(service.Selection{
		ModuleID: q.Get("module"),
		AgentID:  q.Get("agent"),
	}, state)

	writeJSON(w, http.StatusOK, nodes)
}
