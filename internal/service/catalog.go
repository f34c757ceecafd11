// Package service implements business logic on top of ports.
package service

import (
	"fmt"

	"github.com/ich-youness/Financial-Services-OS/internal/domain"
	"github.com/ich-youness/Financial-Services-OS/internal/domain/catalog"
)

// ResolutionKind discriminates the outcome of resolving a module/agent pair.
type ResolutionKind string

const (
	// ResolutionNotFound means the module ID matched nothing in the catalog.
	ResolutionNotFound ResolutionKind = "not-found"
	// ResolutionAgent means both the module and the agent were found.
	ResolutionAgent ResolutionKind = "agent"
	// ResolutionOverview means the module was found but no agent was
	// selected (or the agent ID matched nothing), so the module overview
	// is shown instead.
	ResolutionOverview ResolutionKind = "overview"
)

// Resolution is the outcome of resolving a (moduleID, agentID) pair.
type Resolution struct {
	Kind   ResolutionKind
	Module *catalog.Module
	Agent  *catalog.Agent
	Team   *catalog.SubTeam // owning sub-team when the agent belongs to one
}

// CatalogService answers lookups against the loaded module catalog.
// The catalog is immutable after construction, so the service is safe
// for concurrent use.
type CatalogService struct {
	cat     catalog.Catalog
	modules map[string]*catalog.Module
}

// NewCatalogService indexes the given catalog for lookups.
func NewCatalogService(cat catalog.Catalog) *CatalogService {
	modules := make(map[string]*catalog.Module, len(cat.Modules))
	for i := range cat.Modules {
		modules[cat.Modules[i].ID] = &cat.Modules[i]
	}
	return &CatalogService{cat: cat, modules: modules}
}

// Catalog returns the full catalog in load order.
func (s *CatalogService) Catalog() catalog.Catalog {
	return s.cat
}

// Modules returns all modules in catalog order.
func (s *CatalogService) Modules() []catalog.Module {
	return s.cat.Modules
}

// Module returns a module by ID, or domain.ErrNotFound.
func (s *CatalogService) Module(id string) (*catalog.Module, error) {
	m, ok := s.modules[id]
	if !ok {
		return nil, fmt.Errorf("module %q: %w", id, domain.ErrNotFound)
	}
	return m, nil
}

// Agent returns an agent within a module, or domain.ErrNotFound when either
// the module or the agent is unknown.
func (s *CatalogService) Agent(moduleID, agentID string) (*catalog.Agent, error) {
	m, err := s.Module(moduleID)
	if err != nil {
		return nil, err
	}
	a, _, ok := m.FindAgent(agentID)
	if !ok {
		return nil, fmt.Errorf("agent %q in module %q: %w", agentID, moduleID, domain.ErrNotFound)
	}
	return a, nil
}

// Resolve maps a (moduleID, agentID) pair to a view outcome. An unknown
// module resolves to not-found. A known module with an empty or unknown
// agent ID falls back to the module overview; selecting an unknown agent
// never 404s a module that exists.
func (s *CatalogService) Resolve(moduleID, agentID string) Resolution {
	m, ok := s.modules[moduleID]
	if !ok {
		return Resolution{Kind: ResolutionNotFound}
	}

	if agentID != "" {
		if a, team, found := m.FindAgent(agentID); found {
			return Resolution{Kind: ResolutionAgent, Module: m, Agent: a, Team: team}
		}
	}

	return Resolution{Kind: ResolutionOverview, Module: m}
}
