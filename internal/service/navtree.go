package service

import "github.com/ich-youness/Financial-Services-OS/internal/domain/catalog"

// NavLeaf is a selectable agent entry in the navigation tree.
type NavLeaf struct {
	AgentID string `json:"agentId"`
	Name    string `json:"name"`
	Active  bool   `json:"active"`
}

// NavTeam is a collapsible sub-team group under a module node.
type NavTeam struct {
	TeamID   string    `json:"teamId"`
	Name     string    `json:"name"`
	Mode     string    `json:"mode"`
	Expanded bool      `json:"expanded"`
	Agents   []NavLeaf `json:"agents"`
}

// NavNode is one module entry in the navigation tree.
type NavNode struct {
	ModuleID string    `json:"moduleId"`
	Title    string    `json:"title"`
	Icon     string    `json:"icon"`
	Active   bool      `json:"active"`
	Agents   []NavLeaf `json:"agents,omitempty"`
	Teams    []NavTeam `json:"teams,omitempty"`
}

// Selection identifies the view the navigation should mark active.
type Selection struct {
	ModuleID string
	AgentID  string
}

// TreeState carries the client's expand/collapse choices. Sub-team IDs are
// only unique within their module, so Expanded is keyed by the composite
// ExpandKey; teams absent from Expanded render collapsed.
type TreeState struct {
	Expanded  map[string]bool
	Collapsed bool // icon-only sidebar: module nodes without children
}

// ExpandKey is the Expanded map key for a sub-team, scoped to its module.
func ExpandKey(moduleID, teamID string) string {
	return moduleID + "/" + teamID
}

// NavService projects the catalog into the sidebar navigation tree.
type NavService struct {
	catalog *CatalogService
}

// NewNavService creates a new NavService over the given catalog.
func NewNavService(catalog *CatalogService) *NavService {
	return &NavService{catalog: catalog}
}

// Tree returns the navigation nodes in catalog order. Active flags are
// derived from the selection on every call; nothing is stored.
func (s *NavService) Tree(sel Selection, state TreeState) []NavNode {
	modules := s.catalog.Modules()
	nodes := make([]NavNode, 0, len(modules))

	for i := range modules {
		m := &modules[i]
		node := NavNode{
			ModuleID: m.ID,
			Title:    m.Title,
			Icon:     m.Icon,
			Active:   m.ID == sel.ModuleID,
		}

		if !state.Collapsed {
			node.Agents = leaves(m.ID, m.Agents, sel)
			for j := range m.SubTeams {
				team := &m.SubTeams[j]
				node.Teams = append(node.Teams, NavTeam{
					TeamID:   team.ID,
					Name:     team.Name,
					Mode:     string(team.Mode),
					Expanded: state.Expanded[ExpandKey(m.ID, team.ID)],
					Agents:   leaves(m.ID, team.Agents, sel),
				})
			}
		}

		nodes = append(nodes, node)
	}
	return nodes
}

func leaves(moduleID string, agents []catalog.Agent, sel Selection) []NavLeaf {
	if len(agents) == 0 {
		return nil
	}
	out := make([]NavLeaf, 0, len(agents))
	for i := range agents {
		a := &agents[i]
		out = append(out, NavLeaf{
			AgentID: a.ID,
			Name:    a.Name,
			Active:  moduleID == sel.ModuleID && a.ID == sel.AgentID,
		})
	}
	return out
}
