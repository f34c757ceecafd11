package service_test

import (
	"errors"
	"testing"

	"github.com/ich-youness/Financial-Services-OS/internal/domain"
	"github.com/ich-youness/Financial-Services-OS/internal/domain/catalog"
	"github.com/ich-youness/Financial-Services-OS/internal/service"
)

func formAgent() *catalog.Agent {
	return &catalog.Agent{
		ID:   "credit-analyzer",
		Name: "Credit Analyzer",
		Config: map[string]catalog.ConfigField{
			"scoringModel": {
				Type:    catalog.FieldDropdown,
				Label:   "Scoring Model",
				Options: []string{"FICO", "VantageScore"},
				Default: "FICO",
			},
			"threshold": {
				Type:  catalog.FieldSlider,
				Label: "Threshold",
				Min:   0,
				Max:   1,
			},
			"maxExposure": {
				Type:    catalog.FieldNumeric,
				Label:   "Max Exposure",
				Default: float64(100000),
			},
			"includeHistory": {
				Type:    catalog.FieldToggle,
				Label:   "Include History",
				Default: true,
			},
			"notes": {
				Type:        catalog.FieldText,
				Label:       "Notes",
				Placeholder: "Optional notes",
			},
			"mystery": {
				Type:  catalog.FieldType("hologram"),
				Label: "Mystery",
			},
		},
	}
}

func TestDerive_SkipsUnknownTypes(t *testing.T) {
	controls := service.NewFormService().Derive(formAgent())

	if len(controls) != 5 {
		t.Fatalf("expected 5 controls, got %d", len(controls))
	}
	for _, c := range controls {
		if c.Key == "mystery" {
			t.Fatal("unknown field type should be skipped")
		}
	}
}

func TestDerive_DeterministicOrder(t *testing.T) {
	svc := service.NewFormService()

	first := svc.Derive(formAgent())
	for i := 0; i < 10; i++ {
		again := svc.Derive(formAgent())
		for j := range first {
			if again[j].Key != first[j].Key {
				t.Fatalf("control order not deterministic at %d: %s vs %s", j, again[j].Key, first[j].Key)
			}
		}
	}
}

func TestDerive_InitialValues(t *testing.T) {
	controls := service.NewFormService().Derive(formAgent())

	byKey := make(map[string]service.Control, len(controls))
	for _, c := range controls {
		byKey[c.Key] = c
	}

	if byKey["scoringModel"].Value != "FICO" {
		t.Errorf("dropdown default: got %v", byKey["scoringModel"].Value)
	}
	// Slider without explicit default starts at its minimum.
	if byKey["threshold"].Value != float64(0) {
		t.Errorf("slider default: got %v", byKey["threshold"].Value)
	}
	if byKey["includeHistory"].Value != true {
		t.Errorf("toggle default: got %v", byKey["includeHistory"].Value)
	}
	if byKey["notes"].Value != nil {
		t.Errorf("text without default: got %v", byKey["notes"].Value)
	}
}

func TestInitial_OmitsUnseededKeys(t *testing.T) {
	values := service.NewFormService().Initial(formAgent())

	if _, ok := values["notes"]; ok {
		t.Fatal("text field without a default must not be seeded")
	}
	if _, ok := values["mystery"]; ok {
		t.Fatal("unknown field type must not be seeded")
	}
	for key, v := range values {
		if v == nil {
			t.Fatalf("initial values must never carry nil, got %q: nil", key)
		}
	}
	// Defaults and the slider minimum are still seeded.
	if values["scoringModel"] != "FICO" || values["threshold"] != float64(0) {
		t.Fatalf("unexpected seeded values: %v", values)
	}
}

func TestApply_DropdownRejectsUnknownOption(t *testing.T) {
	svc := service.NewFormService()
	a := formAgent()
	values := svc.Initial(a)

	if _, err := svc.Apply(a, values, "scoringModel", "Equifax"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	next, err := svc.Apply(a, values, "scoringModel", "VantageScore")
	if err != nil {
		t.Fatal(err)
	}
	if next["scoringModel"] != "VantageScore" {
		t.Fatalf("expected VantageScore, got %v", next["scoringModel"])
	}
}

func TestApply_SliderClamps(t *testing.T) {
	svc := service.NewFormService()
	a := formAgent()
	values := svc.Initial(a)

	next, err := svc.Apply(a, values, "threshold", 1.7)
	if err != nil {
		t.Fatal(err)
	}
	if next["threshold"] != float64(1) {
		t.Fatalf("expected clamp to 1, got %v", next["threshold"])
	}

	next, err = svc.Apply(a, values, "threshold", -3)
	if err != nil {
		t.Fatal(err)
	}
	if next["threshold"] != float64(0) {
		t.Fatalf("expected clamp to 0, got %v", next["threshold"])
	}
}

func TestApply_NumericCoercesToZero(t *testing.T) {
	svc := service.NewFormService()
	a := formAgent()
	values := svc.Initial(a)

	next, err := svc.Apply(a, values, "maxExposure", "not a number")
	if err != nil {
		t.Fatal(err)
	}
	if next["maxExposure"] != float64(0) {
		t.Fatalf("expected 0 for non-numeric input, got %v", next["maxExposure"])
	}
}

func TestApply_UnknownKeyRejected(t *testing.T) {
	svc := service.NewFormService()
	a := formAgent()

	if _, err := svc.Apply(a, nil, "nope", "x"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	// A key whose schema type is unrecognized is treated the same way.
	if _, err := svc.Apply(a, nil, "mystery", "x"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown type, got %v", err)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	svc := service.NewFormService()
	a := formAgent()
	values := svc.Initial(a)
	values["notes"] = "keep me"

	next, err := svc.Apply(a, values, "includeHistory", false)
	if err != nil {
		t.Fatal(err)
	}
	if values["includeHistory"] != true {
		t.Fatal("Apply mutated its input map")
	}
	if next["includeHistory"] != false {
		t.Fatalf("expected false, got %v", next["includeHistory"])
	}
	if next["notes"] != "keep me" {
		t.Fatal("Apply dropped unrelated keys")
	}
}
