package diff

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"shadowcost/core/engine"
	"shadowcost/core/types"
)

func evaluate(t *testing.T, material string) *engine.Result {
	t.Helper()
	p := types.DefaultParameters()
	p.Material = material
	r, err := engine.New(nil, "test").Evaluate(context.Background(), p)
	if err != nil {
		t.Fatalf("Evaluate(%q): %v", material, err)
	}
	return r
}

func TestDiffSteelAgainstPrefab(t *testing.T) {
	before := evaluate(t, "Prefab Concrete")
	after := evaluate(t, "Steel Composite")

	r := NewDiffer(0).Diff(before, after)

	if r.Before != "Prefab Concrete" || r.After != "Steel Composite" {
		t.Errorf("systems = %q -> %q", r.Before, r.After)
	}

	tests := []struct {
		got   CategoryDiff
		delta string
		typ   ChangeType
	}{
		{r.Total, "-7552.2", ChangeDecrease},
		{r.Categories[0], "-6240", ChangeDecrease},
		{r.Categories[1], "-1312.2", ChangeDecrease},
		{r.Categories[2], "0", ChangeUnchanged},
	}
	for _, tt := range tests {
		if !tt.got.Delta.Equal(decimal.RequireFromString(tt.delta)) {
			t.Errorf("%s delta = %s, want %s", tt.got.Label, tt.got.Delta, tt.delta)
		}
		if tt.got.ChangeType != tt.typ {
			t.Errorf("%s change = %s, want %s", tt.got.Label, tt.got.ChangeType, tt.typ)
		}
	}

	if r.Driver != "Shadow Price Slabs" {
		t.Errorf("Driver = %q", r.Driver)
	}
	if r.Total.Percent > -21.4 || r.Total.Percent < -21.5 {
		t.Errorf("Total.Percent = %f, want about -21.47", r.Total.Percent)
	}
}

func TestDiffSameResultIsUnchanged(t *testing.T) {
	a := evaluate(t, "CLT Composite")
	r := NewDiffer(0).Diff(a, a)

	for _, c := range append([]CategoryDiff{r.Total, r.PerM2}, r.Categories...) {
		if c.ChangeType != ChangeUnchanged || !c.Delta.IsZero() || c.Percent != 0 {
			t.Errorf("%s: %+v", c.Label, c)
		}
	}
	if r.Driver != "" {
		t.Errorf("Driver = %q, want none", r.Driver)
	}
}

func TestThresholdAbsorbsSmallChanges(t *testing.T) {
	d := NewDiffer(0.05)
	c := d.category("x", decimal.NewFromInt(100), decimal.NewFromInt(104))
	if c.ChangeType != ChangeUnchanged {
		t.Errorf("4%% change under a 5%% threshold: %s", c.ChangeType)
	}
	c = d.category("x", decimal.NewFromInt(100), decimal.NewFromInt(110))
	if c.ChangeType != ChangeIncrease || c.Percent != 10 {
		t.Errorf("10%% change: %+v", c)
	}
	c = d.category("x", decimal.Zero, decimal.NewFromInt(5))
	if c.ChangeType != ChangeIncrease || c.Percent != 0 {
		t.Errorf("from zero: %+v", c)
	}
}

func TestAgainstBaseline(t *testing.T) {
	results, err := engine.New(nil, "test").Compare(context.Background(), types.DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}

	diffs := NewDiffer(0).AgainstBaseline(results)
	if len(diffs) != len(results)-1 {
		t.Fatalf("got %d diffs for %d results", len(diffs), len(results))
	}
	for i, d := range diffs {
		if d.Before != results[0].Parameters.Material || d.After != results[i+1].Parameters.Material {
			t.Errorf("diff %d compares %s -> %s", i, d.Before, d.After)
		}
	}

	if NewDiffer(0).AgainstBaseline(results[:1]) != nil {
		t.Error("a single result has nothing to diff against")
	}
}
