// Package diff compares the shadow price of two evaluated buildings.
// Comparisons are per price category, in presentation order.
package diff

import (
	"fmt"

	"github.com/shopspring/decimal"

	"shadowcost/core/engine"
	"shadowcost/core/pricing"
)

// ChangeType indicates the direction of a change
type ChangeType int

const (
	ChangeUnchanged ChangeType = iota // Within the threshold
	ChangeIncrease                    // After costs more
	ChangeDecrease                    // After costs less
)

// String returns the change type name
func (c ChangeType) String() string {
	switch c {
	case ChangeUnchanged:
		return "unchanged"
	case ChangeIncrease:
		return "increase"
	case ChangeDecrease:
		return "decrease"
	default:
		return "unknown"
	}
}

// MarshalText encodes the change type by name
func (c ChangeType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a change type name
func (c *ChangeType) UnmarshalText(text []byte) error {
	for _, t := range []ChangeType{ChangeUnchanged, ChangeIncrease, ChangeDecrease} {
		if t.String() == string(text) {
			*c = t
			return nil
		}
	}
	return fmt.Errorf("unknown change type %q", string(text))
}

// CategoryDiff describes the change of one price category
type CategoryDiff struct {
	Label      string          `json:"label" yaml:"label"`
	Before     decimal.Decimal `json:"before" yaml:"before"`
	After      decimal.Decimal `json:"after" yaml:"after"`
	Delta      decimal.Decimal `json:"delta" yaml:"delta"`
	Percent    float64         `json:"percent" yaml:"percent"`
	ChangeType ChangeType      `json:"change_type" yaml:"change_type"`
}

// Result is the diff between two evaluations
type Result struct {
	// Before and After name the construction systems compared
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`

	Total CategoryDiff `json:"total" yaml:"total"`
	PerM2 CategoryDiff `json:"per_m2" yaml:"per_m2"`

	// Categories holds slabs, columns and core
	Categories []CategoryDiff `json:"categories" yaml:"categories"`

	// Driver is the label of the category with the largest absolute delta
	Driver string `json:"driver" yaml:"driver"`
}

// Differ computes diffs between evaluation results
type Differ struct {
	// Changes smaller than this fraction of the before value count as unchanged
	ChangeThreshold float64
}

// NewDiffer creates a new differ
func NewDiffer(changeThreshold float64) *Differ {
	if changeThreshold <= 0 {
		changeThreshold = 0.001
	}
	return &Differ{ChangeThreshold: changeThreshold}
}

// Diff computes the diff between before and after
func (d *Differ) Diff(before, after *engine.Result) *Result {
	return d.DiffPrices(before.Parameters.Material, after.Parameters.Material, before.Prices, after.Prices)
}

// DiffPrices computes the diff between two price breakdowns. The names
// label the two sides.
func (d *Differ) DiffPrices(beforeName, afterName string, b, a *pricing.Breakdown) *Result {
	r := &Result{
		Before: beforeName,
		After:  afterName,
		Total:  d.category(pricing.LabelTotal, b.Total, a.Total),
		PerM2:  d.category(pricing.LabelPerM2, b.PerM2, a.PerM2),
		Categories: []CategoryDiff{
			d.category(pricing.LabelSlabs, b.Slabs, a.Slabs),
			d.category(pricing.LabelColumns, b.Columns, a.Columns),
			d.category(pricing.LabelCore, b.Core, a.Core),
		},
	}

	largest := decimal.Zero
	for _, c := range r.Categories {
		if c.Delta.Abs().GreaterThan(largest) {
			largest = c.Delta.Abs()
			r.Driver = c.Label
		}
	}
	return r
}

// AgainstBaseline diffs every result after the first against the first
func (d *Differ) AgainstBaseline(results []*engine.Result) []*Result {
	if len(results) < 2 {
		return nil
	}
	out := make([]*Result, 0, len(results)-1)
	for _, r := range results[1:] {
		out = append(out, d.Diff(results[0], r))
	}
	return out
}

func (d *Differ) category(label string, before, after decimal.Decimal) CategoryDiff {
	c := CategoryDiff{
		Label:  label,
		Before: before,
		After:  after,
		Delta:  after.Sub(before),
	}
	if !before.IsZero() {
		c.Percent = c.Delta.Div(before).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	threshold := before.Abs().Mul(decimal.NewFromFloat(d.ChangeThreshold))
	switch {
	case c.Delta.Abs().LessThanOrEqual(threshold):
		c.ChangeType = ChangeUnchanged
	case c.Delta.IsPositive():
		c.ChangeType = ChangeIncrease
	default:
		c.ChangeType = ChangeDecrease
	}
	return c
}
