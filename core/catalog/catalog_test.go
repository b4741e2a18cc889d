package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"shadowcost/internal/errors"
)

func TestAssignTable(t *testing.T) {
	tests := []struct {
		selector string
		slab     Material
		column   Material
		core     Material
		span     float64
	}{
		{"Prefab Concrete", Concrete, Concrete, Concrete, 7.0},
		{"Cross-Laminated-Timber", Timber, Timber, Timber, 6.0},
		{"Steel Composite", Steel, Steel, Concrete, 8.0},
		{"CLT Composite", Concrete, Timber, Concrete, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			a, err := Lookup(tt.selector)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.selector, err)
			}
			if a.Slab != tt.slab || a.Column != tt.column || a.Core != tt.core {
				t.Errorf("materials = %s/%s/%s, want %s/%s/%s",
					a.Slab, a.Column, a.Core, tt.slab, tt.column, tt.core)
			}
			if a.ColumnSpan != tt.span {
				t.Errorf("span = %v, want %v", a.ColumnSpan, tt.span)
			}
			if a.System.String() != tt.selector {
				t.Errorf("system = %q, want %q", a.System, tt.selector)
			}
		})
	}
}

func TestLookupRejectsUnknownSelector(t *testing.T) {
	for _, name := range []string{"Unknown", "", "prefab concrete", "Timber"} {
		_, err := Lookup(name)
		if err == nil {
			t.Fatalf("Lookup(%q) expected error", name)
		}
		if !errors.IsType(err, errors.TypeInvalidInput) {
			t.Errorf("Lookup(%q) error type = %v, want INVALID_INPUT", name, err)
		}
		if errors.Message(err) != "Unknown material selected" {
			t.Errorf("message = %q", errors.Message(err))
		}
	}

	if _, err := Assign(System(42)); !errors.IsType(err, errors.TypeInvalidInput) {
		t.Errorf("Assign(42) error = %v, want INVALID_INPUT", err)
	}
}

func TestSystemsOrderAndUniqueness(t *testing.T) {
	want := []string{"Prefab Concrete", "Steel Composite", "Cross-Laminated-Timber", "CLT Composite"}
	got := Systems()
	if len(got) != len(want) {
		t.Fatalf("len(Systems()) = %d, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.String() != want[i] {
			t.Errorf("Systems()[%d] = %q, want %q", i, s, want[i])
		}
	}
}

func TestRates(t *testing.T) {
	tests := []struct {
		category Category
		material Material
		want     string
	}{
		{CategorySlab, Concrete, "12.8"},
		{CategorySlab, Timber, "0.9"},
		{CategorySlab, Steel, "10.2"},
		{CategoryColumn, Concrete, "17.1"},
		{CategoryColumn, Timber, "0.7"},
		{CategoryColumn, Steel, "9"},
		{CategoryCore, Concrete, "6.9"},
		{CategoryCore, Timber, "0.9"},
	}

	for _, tt := range tests {
		got, err := Rate(tt.category, tt.material)
		if err != nil {
			t.Fatalf("Rate(%s, %s) error = %v", tt.category, tt.material, err)
		}
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("Rate(%s, %s) = %s, want %s", tt.category, tt.material, got, tt.want)
		}
	}
}

func TestRateMissingPairs(t *testing.T) {
	if _, err := CoreRatePerM2(Steel); !errors.IsType(err, errors.TypePricing) {
		t.Errorf("steel core error = %v, want PRICING_ERROR", err)
	}
	if _, err := SlabRatePerM2(Ground); !errors.IsType(err, errors.TypePricing) {
		t.Errorf("ground slab error = %v, want PRICING_ERROR", err)
	}
	if _, err := Rate(Category("roof"), Concrete); !errors.IsType(err, errors.TypePricing) {
		t.Errorf("unknown category error = %v, want PRICING_ERROR", err)
	}
}

func TestEveryAssignmentIsPriced(t *testing.T) {
	if errs := Validate(DefaultValidationRules()); len(errs) > 0 {
		t.Fatalf("catalog validation errors: %v", errs)
	}
}

func TestMaterialPresentation(t *testing.T) {
	if Timber.Color() != (Color{250, 200, 150}) {
		t.Errorf("timber color = %+v", Timber.Color())
	}
	if Ground.Name() != "ground green" {
		t.Errorf("ground name = %q", Ground.Name())
	}
	text, _ := Steel.MarshalText()
	if string(text) != "Steel Composite" {
		t.Errorf("steel text = %q", text)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, m := range []Material{Concrete, Timber, Steel, Ground} {
		text, _ := m.MarshalText()
		var got Material
		if err := got.UnmarshalText(text); err != nil || got != m {
			t.Errorf("material %s: got %v, %v", m, got, err)
		}
	}
	for _, s := range Systems() {
		text, _ := s.MarshalText()
		var got System
		if err := got.UnmarshalText(text); err != nil || got != s {
			t.Errorf("system %s: got %v, %v", s, got, err)
		}
	}

	var s System
	if err := s.UnmarshalText([]byte("Unknown")); !errors.IsType(err, errors.TypeInvalidInput) {
		t.Errorf("unknown system: %v", err)
	}
}
