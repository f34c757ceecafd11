package catalog

import "fmt"

// FieldType is the closed set of configuration control kinds an agent
// can declare. Unknown values are tolerated at render time (the form
// deriver skips them) but rejected by Validate.
type FieldType string

// Supported field types.
const (
	FieldDropdown FieldType = "dropdown"
	FieldSlider   FieldType = "slider"
	FieldToggle   FieldType = "toggle"
	FieldNumeric  FieldType = "numeric"
	FieldText     FieldType = "text"
)

// Known reports whether t is one of the supported field types.
func (t FieldType) Known() bool {
	switch t {
	case FieldDropdown, FieldSlider, FieldToggle, FieldNumeric, FieldText:
		return true
	}
	return false
}

// ConfigField describes one configuration control for an agent.
// Which attributes are meaningful depends on Type: Options for dropdown,
// Min/Max for slider, Placeholder for numeric and text.
type ConfigField struct {
	Type        FieldType `json:"type" yaml:"type"`
	Label       string    `json:"label" yaml:"label"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Min         float64   `json:"min,omitempty" yaml:"min,omitempty"`
	Max         float64   `json:"max,omitempty" yaml:"max,omitempty"`
	Default     any       `json:"default,omitempty" yaml:"default,omitempty"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Validate checks the type-conditional attribute rules.
func (f ConfigField) Validate() error {
	if !f.Type.Known() {
		return fmt.Errorf("unknown field type %q", f.Type)
	}
	if f.Label == "" {
		return fmt.Errorf("label is required")
	}

	switch f.Type {
	case FieldDropdown:
		if len(f.Options) == 0 {
			return fmt.Errorf("dropdown requires at least one option")
		}
	case FieldSlider:
		if f.Min > f.Max {
			return fmt.Errorf("slider min %v exceeds max %v", f.Min, f.Max)
		}
	}

	if f.Default != nil {
		if err := f.checkDefaultType(); err != nil {
			return err
		}
	}
	return nil
}

// DefaultValue returns the value a control shows before the user touches it:
// the declared default, else the lower bound for sliders, else nil.
func (f ConfigField) DefaultValue() any {
	if f.Default != nil {
		return f.Default
	}
	if f.Type == FieldSlider {
		return f.Min
	}
	return nil
}

func (f ConfigField) checkDefaultType() error {
	switch f.Type {
	case FieldDropdown, FieldText:
		if _, ok := f.Default.(string); !ok {
			return fmt.Errorf("%s default must be a string, got %T", f.Type, f.Default)
		}
	case FieldSlider, FieldNumeric:
		if _, ok := AsNumber(f.Default); !ok {
			return fmt.Errorf("%s default must be a number, got %T", f.Type, f.Default)
		}
	case FieldToggle:
		if _, ok := f.Default.(bool); !ok {
			return fmt.Errorf("toggle default must be a boolean, got %T", f.Default)
		}
	}
	return nil
}

// AsNumber converts the numeric representations produced by JSON and YAML
// decoding (and by Go literals in the built-in catalog) to float64.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
