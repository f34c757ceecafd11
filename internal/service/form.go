package service

import (
	"fmt"

	"github.com/ich-youness/Financial-Services-OS/internal/domain"
	"github.com/ich-youness/Financial-Services-OS/internal/domain/catalog"
)

// Control is one rendered form control derived from an agent's config schema.
type Control struct {
	Key         string            `json:"key"`
	Type        catalog.FieldType `json:"type"`
	Label       string            `json:"label"`
	Options     []string          `json:"options,omitempty"`
	Min         float64           `json:"min,omitempty"`
	Max         float64           `json:"max,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Value       any               `json:"value"`
}

// FormService derives config forms from agent schemas and applies updates
// to config value maps.
type FormService struct{}

// NewFormService creates a new FormService.
func NewFormService() *FormService {
	return &FormService{}
}

// Derive returns the form controls for an agent in deterministic key order.
// Fields with an unrecognized type are skipped rather than rendered broken.
func (s *FormService) Derive(a *catalog.Agent) []Control {
	controls := make([]Control, 0, len(a.Config))
	for _, key := range a.ConfigKeys() {
		field := a.Config[key]
		if !field.Type.Known() {
			continue
		}
		controls = append(controls, Control{
			Key:         key,
			Type:        field.Type,
			Label:       field.Label,
			Options:     field.Options,
			Min:         field.Min,
			Max:         field.Max,
			Placeholder: field.Placeholder,
			Value:       field.DefaultValue(),
		})
	}
	return controls
}

// Initial returns the starting config values for an agent, one entry per
// recognized field with a value to seed: the declared default, or the
// minimum for sliders. Fields with neither are left out so the run request
// only carries populated keys, never nulls.
func (s *FormService) Initial(a *catalog.Agent) map[string]any {
	values := make(map[string]any, len(a.Config))
	for key, field := range a.Config {
		if !field.Type.Known() {
			continue
		}
		if v := field.DefaultValue(); v != nil {
			values[key] = v
		}
	}
	return values
}

// Apply merges a single field update into the given config values and
// returns a new map; values is never mutated. The raw value is coerced per
// field type: sliders clamp into [min, max], numeric fields fall back to 0
// for non-numeric input, and dropdowns reject values outside their options.
func (s *FormService) Apply(a *catalog.Agent, values map[string]any, key string, raw any) (map[string]any, error) {
	field, ok := a.Config[key]
	if !ok || !field.Type.Known() {
		return nil, fmt.Errorf("config field %q: %w", key, domain.ErrValidation)
	}

	coerced, err := coerce(field, key, raw)
	if err != nil {
		return nil, err
	}

	next := make(map[string]any, len(values)+1)
	for k, v := range values {
		next[k] = v
	}
	next[key] = coerced
	return next, nil
}

func coerce(field catalog.ConfigField, key string, raw any) (any, error) {
	switch field.Type {
	case catalog.FieldDropdown:
		str, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("field %q expects a string option: %w", key, domain.ErrValidation)
		}
		for _, opt := range field.Options {
			if opt == str {
				return str, nil
			}
		}
		return nil, fmt.Errorf("field %q has no option %q: %w", key, str, domain.ErrValidation)

	case catalog.FieldSlider:
		n, ok := catalog.AsNumber(raw)
		if !ok {
			return nil, fmt.Errorf("field %q expects a number: %w", key, domain.ErrValidation)
		}
		if n < field.Min {
			n = field.Min
		}
		if n > field.Max {
			n = field.Max
		}
		return n, nil

	case catalog.FieldToggle:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("field %q expects a boolean: %w", key, domain.ErrValidation)
		}
		return b, nil

	case catalog.FieldNumeric:
		n, ok := catalog.AsNumber(raw)
		if !ok {
			return float64(0), nil
		}
		return n, nil

	case catalog.FieldText:
		str, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("field %q expects a string: %w", key, domain.ErrValidation)
		}
		return str, nil
	}

	return nil, fmt.Errorf("field %q has unsupported type %q: %w", key, field.Type, domain.ErrValidation)
}
