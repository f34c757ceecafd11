package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the catalog to serve. With an empty path the built-in
// catalog is used; otherwise the YAML file at path replaces it entirely.
// The result is validated either way, so a catalog that violates the
// uniqueness invariants never reaches the resolver.
func Load(path string) (*Catalog, error) {
	cat := Builtin()

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from service config
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		cat = Catalog{}
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validate: %w", err)
	}
	return &cat, nil
}
