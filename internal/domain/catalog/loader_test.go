package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmptyPathUsesBuiltin(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := cat.Module("risk-assessment"); !ok {
		t.Fatal("expected built-in risk-assessment module")
	}
}

func TestLoad_YAMLOverride(t *testing.T) {
	yaml := `
modules:
  - id: lending
    title: Lending Module
    description: Loan origination agents
    icon: banknote
    colorClass: module-card-lending
    agents:
      - id: loan-officer
        name: Loan Officer Agent
        description: Reviews loan applications
        inputs:
          text: Enter application data
        config:
          productType:
            type: dropdown
            label: Product Type
            options: [Mortgage, Auto, Personal]
          rate:
            type: slider
            label: Base Rate
            min: 0.5
            max: 9.5
            default: 4.0
        outputs: [Decision]
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cat.Modules) != 1 {
		t.Fatalf("expected file catalog to replace built-in, got %d modules", len(cat.Modules))
	}
	m, ok := cat.Module("lending")
	if !ok {
		t.Fatal("expected lending module")
	}
	a, _, ok := m.FindAgent("loan-officer")
	if !ok {
		t.Fatal("expected loan-officer agent")
	}
	if a.Config["rate"].Type != FieldSlider {
		t.Fatalf("expected slider field, got %s", a.Config["rate"].Type)
	}
}

func TestLoad_RejectsInvalidCatalog(t *testing.T) {
	yaml := `
modules:
  - id: dup
    title: One
  - id: dup
    title: Two
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for duplicate module ids")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
