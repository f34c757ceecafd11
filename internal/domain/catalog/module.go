package catalog

import "fmt"

// TeamMode tags a sub-team's internal coordination style. It is
// documentation-only in this service; the execution backend interprets it.
type TeamMode string

// Coordination styles, mirroring the backend team runners.
const (
	TeamCoordinate  TeamMode = "coordinate"
	TeamCollaborate TeamMode = "collaborate"
	TeamRoute       TeamMode = "route"
)

// Known reports whether m is a recognized coordination style.
func (m TeamMode) Known() bool {
	switch m {
	case TeamCoordinate, TeamCollaborate, TeamRoute:
		return true
	}
	return false
}

// SubTeam is an intermediate grouping of agents inside a module. Its ID is
// scoped to the owning module.
type SubTeam struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Mode        TeamMode `json:"mode" yaml:"mode"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Agents      []Agent  `json:"agents" yaml:"agents"`
}

// Module is a top-level business domain. Agents and SubTeams are
// independently optional; a module with neither is overview-only.
type Module struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Icon        string    `json:"icon" yaml:"icon"`
	ColorClass  string    `json:"colorClass" yaml:"colorClass"`
	Agents      []Agent   `json:"agents,omitempty" yaml:"agents,omitempty"`
	SubTeams    []SubTeam `json:"subTeams,omitempty" yaml:"subTeams,omitempty"`
}

// AgentGroup is the normalized containment form: direct agents carry a nil
// Team, sub-team agents carry their owning team. Rendering and resolution
// both work from this shape instead of re-testing field presence.
type AgentGroup struct {
	Team   *SubTeam `json:"team,omitempty"`
	Agents []Agent  `json:"agents"`
}

// Groups returns the module's agent containment normalized to an ordered
// list of groups: the direct-agent group first (when present), then one
// group per sub-team in declaration order.
func (m *Module) Groups() []AgentGroup {
	var groups []AgentGroup
	if len(m.Agents) > 0 {
		groups = append(groups, AgentGroup{Agents: m.Agents})
	}
	for i := range m.SubTeams {
		st := &m.SubTeams[i]
		groups = append(groups, AgentGroup{Team: st, Agents: st.Agents})
	}
	return groups
}

// FlatAgents returns the module's direct agents followed by every
// sub-team's agents, in declaration order. This is the lookup space the
// resolver searches by agent ID.
func (m *Module) FlatAgents() []Agent {
	flat := make([]Agent, 0, len(m.Agents))
	flat = append(flat, m.Agents...)
	for i := range m.SubTeams {
		flat = append(flat, m.SubTeams[i].Agents...)
	}
	return flat
}

// FindAgent locates an agent by ID over the flattened sequence; first match
// wins. The returned SubTeam is nil for direct agents.
func (m *Module) FindAgent(id string) (*Agent, *SubTeam, bool) {
	for i := range m.Agents {
		if m.Agents[i].ID == id {
			return &m.Agents[i], nil, true
		}
	}
	for i := range m.SubTeams {
		st := &m.SubTeams[i]
		for j := range st.Agents {
			if st.Agents[j].ID == id {
				return &st.Agents[j], st, true
			}
		}
	}
	return nil, nil, false
}

// Interactive reports whether the module resolves to at least one agent.
func (m *Module) Interactive() bool {
	if len(m.Agents) > 0 {
		return true
	}
	for i := range m.SubTeams {
		if len(m.SubTeams[i].Agents) > 0 {
			return true
		}
	}
	return false
}

// Validate checks required fields, sub-team modes, and the per-module
// uniqueness invariants: sub-team IDs unique within the module, and agent
// IDs unique across direct agents and all sub-team agents combined.
func (m *Module) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("module id is required")
	}
	if m.Title == "" {
		return fmt.Errorf("module %q: title is required", m.ID)
	}

	teamIDs := make(map[string]struct{}, len(m.SubTeams))
	for i := range m.SubTeams {
		st := &m.SubTeams[i]
		if st.ID == "" {
			return fmt.Errorf("module %q: sub-team id is required", m.ID)
		}
		if !st.Mode.Known() {
			return fmt.Errorf("module %q: sub-team %q: unknown mode %q", m.ID, st.ID, st.Mode)
		}
		if len(st.Agents) == 0 {
			return fmt.Errorf("module %q: sub-team %q has no agents", m.ID, st.ID)
		}
		if _, dup := teamIDs[st.ID]; dup {
			return fmt.Errorf("module %q: duplicate sub-team id %q", m.ID, st.ID)
		}
		teamIDs[st.ID] = struct{}{}
	}

	agentIDs := make(map[string]struct{})
	for _, a := range m.FlatAgents() {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("module %q: %w", m.ID, err)
		}
		if _, dup := agentIDs[a.ID]; dup {
			return fmt.Errorf("module %q: duplicate agent id %q", m.ID, a.ID)
		}
		agentIDs[a.ID] = struct{}{}
	}
	return nil
}
