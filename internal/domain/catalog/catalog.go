// Package catalog defines the static module/agent catalog for the
// financial services OS: top-level business modules, their agents (flat or
// grouped into sub-teams), and per-agent configuration schemas. The catalog
// is built once at startup, validated, and never mutated afterwards.
package catalog

import "fmt"

// Catalog is the full set of modules, in display order.
type Catalog struct {
	Modules []Module `json:"modules" yaml:"modules"`
}

// Module returns the module with the given ID, or false when absent.
func (c *Catalog) Module(id string) (*Module, bool) {
	for i := range c.Modules {
		if c.Modules[i].ID == id {
			return &c.Modules[i], true
		}
	}
	return nil, false
}

// Validate checks catalog-wide module ID uniqueness and every module's own
// invariants. Duplicate agent IDs within a module are rejected here rather
// than silently masked by first-match resolution.
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Modules))
	for i := range c.Modules {
		m := &c.Modules[i]
		if err := m.Validate(); err != nil {
			return err
		}
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("duplicate module id %q", m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}
