package catalog

import (
	"fmt"
	"sort"
)

// InputSpec describes the free-text input surface of an agent. FileUploads
// only declares that an upload affordance should be shown; no upload
// mechanism is wired to it.
type InputSpec struct {
	Text        string `json:"text" yaml:"text"`
	FileUploads bool   `json:"fileUploads,omitempty" yaml:"fileUploads,omitempty"`
}

// Agent is a single configurable unit of work a user can invoke.
// Its ID must be unique within the owning module across both direct agents
// and all sub-team agents, because resolution flattens them into one lookup
// space keyed by agent ID alone.
type Agent struct {
	ID          string                 `json:"id" yaml:"id"`
	Name        string                 `json:"name" yaml:"name"`
	Description string                 `json:"description" yaml:"description"`
	Inputs      InputSpec              `json:"inputs" yaml:"inputs"`
	Config      map[string]ConfigField `json:"config" yaml:"config"`
	Outputs     []string               `json:"outputs" yaml:"outputs"`
}

// Validate checks required fields and every declared config field.
func (a *Agent) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("agent id is required")
	}
	if a.Name == "" {
		return fmt.Errorf("agent %q: name is required", a.ID)
	}
	for key, field := range a.Config {
		if err := field.Validate(); err != nil {
			return fmt.Errorf("agent %q: config %q: %w", a.ID, key, err)
		}
	}
	return nil
}

// ConfigKeys returns the agent's config keys in sorted order so form
// derivation and request building iterate deterministically.
func (a *Agent) ConfigKeys() []string {
	keys := make([]string, 0, len(a.Config))
	for k := range a.Config {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
