// Package catalog - Construction systems, materials and shadow-price coefficients.
// This is the source of truth for which material is used where and what it costs.
package catalog

import (
	"shadowcost/internal/errors"
)

// Color is an RGB render color. It has no structural meaning.
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Material identifies a building material
type Material int

const (
	// Concrete is prefabricated concrete
	Concrete Material = iota
	// Timber is cross-laminated timber
	Timber
	// Steel is a steel/concrete composite deck
	Steel
	// Ground is the decorative site surface, never priced
	Ground
)

// Name returns the display name
func (m Material) Name() string {
	switch m {
	case Concrete:
		return "Prefab Concrete"
	case Timber:
		return "Cross-Laminated-Timber"
	case Steel:
		return "Steel Composite"
	case Ground:
		return "ground green"
	default:
		return "unknown"
	}
}

// String returns string representation
func (m Material) String() string {
	return m.Name()
}

// Color returns the render color
func (m Material) Color() Color {
	switch m {
	case Concrete:
		return Color{220, 220, 220}
	case Timber:
		return Color{250, 200, 150}
	case Steel:
		return Color{100, 100, 100}
	case Ground:
		return Color{200, 250, 155}
	default:
		return Color{}
	}
}

// MarshalText encodes the material by name
func (m Material) MarshalText() ([]byte, error) {
	return []byte(m.Name()), nil
}

// UnmarshalText decodes a material name
func (m *Material) UnmarshalText(text []byte) error {
	for _, c := range []Material{Concrete, Timber, Steel, Ground} {
		if c.Name() == string(text) {
			*m = c
			return nil
		}
	}
	return errors.InvalidInputf("unknown material %q", string(text))
}

// System is a construction system the user picks. It decides which material
// is used for slabs, columns and core, and the column span.
type System int

const (
	PrefabConcrete System = iota
	CrossLaminatedTimber
	SteelComposite
	CLTComposite
)

// Systems returns every construction system in presentation order
func Systems() []System {
	return []System{PrefabConcrete, SteelComposite, CrossLaminatedTimber, CLTComposite}
}

// String returns the selector name
func (s System) String() string {
	switch s {
	case PrefabConcrete:
		return "Prefab Concrete"
	case CrossLaminatedTimber:
		return "Cross-Laminated-Timber"
	case SteelComposite:
		return "Steel Composite"
	case CLTComposite:
		return "CLT Composite"
	default:
		return "unknown"
	}
}

// MarshalText encodes the system by selector name
func (s System) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a selector name
func (s *System) UnmarshalText(text []byte) error {
	v, err := ParseSystem(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSystem resolves a selector name. Matching is exact.
func ParseSystem(name string) (System, error) {
	for _, s := range Systems() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, errors.InvalidInput("Unknown material selected").WithContext("material", name)
}

// Assignment is the material used per element category for one system
type Assignment struct {
	System     System   `json:"system" yaml:"system"`
	Slab       Material `json:"slab" yaml:"slab"`
	Column     Material `json:"column" yaml:"column"`
	Core       Material `json:"core" yaml:"core"`
	ColumnSpan float64  `json:"column_span" yaml:"column_span"`
}

// Assign returns the material assignment for a system
func Assign(s System) (Assignment, error) {
	switch s {
	case PrefabConcrete:
		return Assignment{System: s, Slab: Concrete, Column: Concrete, Core: Concrete, ColumnSpan: 7.0}, nil
	case CrossLaminatedTimber:
		return Assignment{System: s, Slab: Timber, Column: Timber, Core: Timber, ColumnSpan: 6.0}, nil
	case SteelComposite:
		return Assignment{System: s, Slab: Steel, Column: Steel, Core: Concrete, ColumnSpan: 8.0}, nil
	case CLTComposite:
		return Assignment{System: s, Slab: Concrete, Column: Timber, Core: Concrete, ColumnSpan: 5.0}, nil
	default:
		return Assignment{}, errors.InvalidInput("Unknown material selected").WithContext("system", int(s))
	}
}

// Lookup parses a selector name and returns its assignment
func Lookup(name string) (Assignment, error) {
	s, err := ParseSystem(name)
	if err != nil {
		return Assignment{}, err
	}
	return Assign(s)
}
