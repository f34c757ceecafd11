package http

import (
	"net/http"

	"github.com/ich-youness/Financial-Services-OS/internal/domain/catalog"
	"github.com/ich-youness/Financial-Services-OS/internal/service"
)

// moduleSummary is the card-level view of a module.
type moduleSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	ColorClass  string `json:"colorClass"`
	AgentCount  int    `json:"agentCount"`
	Interactive bool   `json:"interactive"`
}

// agentSummary is the list-level view of an agent.
type agentSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// agentGroup is one section of a module overview: the direct agents or one
// sub-team with its agents.
type agentGroup struct {
	TeamID   string         `json:"teamId,omitempty"`
	TeamName string         `json:"teamName,omitempty"`
	Mode     string         `json:"mode,omitempty"`
	Agents   []agentSummary `json:"agents"`
}

// resolutionResponse is the payload for module and agent view resolution.
type resolutionResponse struct {
	Outcome string           `json:"outcome"`
	Module  moduleSummary    `json:"module"`
	Groups  []agentGroup     `json:"groups,omitempty"`
	Agent   *catalog.Agent   `json:"agent,omitempty"`
	Team    *catalog.SubTeam `json:"team,omitempty"`
	Session *service.Session `json:"session,omitempty"`
}

func summarize(m *catalog.Module) moduleSummary {
	return moduleSummary{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Icon:        m.Icon,
		ColorClass:  m.ColorClass,
		AgentCount:  len(m.FlatAgents()),
		Interactive: m.Interactive(),
	}
}

func groups(m *catalog.Module) []agentGroup {
	var out []agentGroup
	for _, g := range m.Groups() {
		grp := agentGroup{Agents: make([]agentSummary, 0, len(g.Agents))}
		if g.Team != nil {
			grp.TeamID = g.Team.ID
			grp.TeamName = g.Team.Name
			grp.Mode = string(g.Team.Mode)
		}
		for _, a := range g.Agents {
			grp.Agents = append(grp.Agents, agentSummary{
				ID: a.ID, Name: a.Name, Description: a.Description,
			})
		}
		out = append(out, grp)
	}
	return out
}

// ListModules returns the catalog cards.
func (h *Handlers) ListModules(w http.ResponseWriter, _ *http.Request) {
	mods := h.Catalog.Modules()
	out := make([]moduleSummary, 0, len(mods))
	for i := range mods {
		out = append(out, summarize(&mods[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetModule resolves a module overview.
func (h *Handlers) GetModule(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, urlParam(r, "moduleID"), "")
}

// GetAgentView resolves an agent view, falling back to the module overview
// when the agent ID matches nothing.
func (h *Handlers) GetAgentView(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, urlParam(r, "moduleID"), urlParam(r, "agentID"))
}

func (h *Handlers) resolve(w http.ResponseWriter, moduleID, agentID string) {
	res := h.Catalog.Resolve(moduleID, agentID)
	switch res.Kind {
	case service.ResolutionNotFound:
		writeError(w, http.StatusNotFound, "module not found")

	case service.ResolutionOverview:
		writeJSON(w, http.StatusOK, resolutionResponse{
			Outcome: string(service.ResolutionOverview),
			Module:  summarize(res.Module),
			Groups:  groups(res.Module),
		})

	case service.ResolutionAgent:
		sess, err := h.Invocations.Session(moduleID, res.Agent.ID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resolutionResponse{
			Outcome: string(service.ResolutionAgent),
			Module:  summarize(res.Module),
			Agent:   res.Agent,
			Team:    res.Team,
			Session: &sess,
		})
	}
}
