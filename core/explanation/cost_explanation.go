// Package explanation - Cost explanations
// Shows how each shadow price is made up, not just the totals.
package explanation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"shadowcost/core/catalog"
	"shadowcost/core/pricing"
)

// CostExplanation shows the formula behind one priced line
type CostExplanation struct {
	Category string          `json:"category" yaml:"category"`
	Material string          `json:"material" yaml:"material"`
	Formula  string          `json:"formula" yaml:"formula"`
	Inputs   []Input         `json:"inputs" yaml:"inputs"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
}

// Input is one input to the formula
type Input struct {
	Name   string `json:"name" yaml:"name"`
	Value  string `json:"value" yaml:"value"`
	Source string `json:"source" yaml:"source"` // "geometry", "catalog", "calculated"
}

// NewExplanation creates a new cost explanation
func NewExplanation(category, material string) *CostExplanation {
	return &CostExplanation{
		Category: category,
		Material: material,
		Inputs:   make([]Input, 0),
	}
}

// WithFormula sets the formula description
func (e *CostExplanation) WithFormula(formula string) *CostExplanation {
	e.Formula = formula
	return e
}

// WithAmount sets the resulting amount
func (e *CostExplanation) WithAmount(amount decimal.Decimal) *CostExplanation {
	e.Amount = amount
	return e
}

// AddInput adds an input to the explanation
func (e *CostExplanation) AddInput(name, value, source string) *CostExplanation {
	e.Inputs = append(e.Inputs, Input{Name: name, Value: value, Source: source})
	return e
}

// Explain returns one explanation per priced unit, followed by the per-m2
// figure.
func Explain(b *pricing.Breakdown) []*CostExplanation {
	out := make([]*CostExplanation, 0, len(b.Units)+1)
	for _, u := range b.Units {
		quantity := u.Quantity.StringFixed(2)
		out = append(out, NewExplanation(categoryName(u.Category), u.Material.Name()).
			WithFormula(fmt.Sprintf("%s %s x %s MKI/%s", quantity, u.Measure, u.Rate, u.Measure)).
			AddInput("elements", fmt.Sprint(u.Count), "geometry").
			AddInput("quantity", quantity+" "+u.Measure, "geometry").
			AddInput("rate", u.Rate.String()+" MKI/"+u.Measure, "catalog").
			WithAmount(u.Amount))
	}

	out = append(out, NewExplanation("Per m2", "").
		WithFormula(fmt.Sprintf("%s MKI / %s m2", b.Total.StringFixed(2), b.SlabArea.StringFixed(2))).
		AddInput("total", b.Total.StringFixed(2), "calculated").
		AddInput("slab area", b.SlabArea.StringFixed(2)+" m2", "geometry").
		WithAmount(b.PerM2))
	return out
}

// ToNarrative returns a human-readable narrative
func (e *CostExplanation) ToNarrative() string {
	subject := e.Category
	if e.Material != "" {
		subject = fmt.Sprintf("%s in %s", e.Category, e.Material)
	}
	if e.Formula == "" {
		return fmt.Sprintf("%s: %s MKI", subject, e.Amount.StringFixed(2))
	}
	return fmt.Sprintf("%s: %s = %s MKI", subject, e.Formula, e.Amount.StringFixed(2))
}

// ToHover returns a compact multi-line format
func (e *CostExplanation) ToHover() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", e.ToNarrative())
	for _, in := range e.Inputs {
		fmt.Fprintf(&sb, "  - %s = %s (%s)\n", in.Name, in.Value, in.Source)
	}
	return sb.String()
}

func categoryName(c catalog.Category) string {
	switch c {
	case catalog.CategorySlab:
		return "Slabs"
	case catalog.CategoryColumn:
		return "Columns"
	case catalog.CategoryCore:
		return "Core"
	default:
		return string(c)
	}
}
