package types

import (
	"math"
	"testing"

	"shadowcost/internal/errors"
)

func TestDefaultParametersAreValid(t *testing.T) {
	p := DefaultParameters()
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if p.TotalHeight() != 9 {
		t.Errorf("TotalHeight() = %v, want 9", p.TotalHeight())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*BuildingParameters)
		field string
	}{
		{"zero width", func(p *BuildingParameters) { p.Width = 0 }, "width"},
		{"negative length", func(p *BuildingParameters) { p.Length = -5 }, "length"},
		{"nan floor height", func(p *BuildingParameters) { p.FloorHeight = math.NaN() }, "floor_height"},
		{"infinite width", func(p *BuildingParameters) { p.Width = math.Inf(1) }, "width"},
		{"width above range", func(p *BuildingParameters) { p.Width = 31 }, "width"},
		{"length below range", func(p *BuildingParameters) { p.Length = 19.9 }, "length"},
		{"floor height above range", func(p *BuildingParameters) { p.FloorHeight = 4.1 }, "floor_height"},
		{"zero floors", func(p *BuildingParameters) { p.Floors = 0 }, "floors"},
		{"too many floors", func(p *BuildingParameters) { p.Floors = 11 }, "floors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.edit(&p)

			err := p.Validate()
			if !errors.IsType(err, errors.TypeInvalidInput) {
				t.Fatalf("Validate() error = %v, want INVALID_INPUT", err)
			}
			e := err.(*errors.Error)
			if e.Context["field"] != tt.field {
				t.Errorf("field = %v, want %s", e.Context["field"], tt.field)
			}
		})
	}
}

func TestValidateAcceptsBounds(t *testing.T) {
	low := BuildingParameters{Width: 10, Length: 20, FloorHeight: 2.5, Floors: 1}
	high := BuildingParameters{Width: 30, Length: 40, FloorHeight: 4.0, Floors: 10}
	for _, p := range []BuildingParameters{low, high} {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate(%+v) error = %v", p, err)
		}
	}
}
