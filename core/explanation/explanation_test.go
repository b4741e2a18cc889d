package explanation

import (
	"context"
	"strings"
	"testing"

	"shadowcost/core/diff"
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

func TestExplainReferenceBuilding(t *testing.T) {
	r := evaluate(t, "Prefab Concrete")
	got := Explain(r.Prices)

	if len(got) != len(r.Prices.Units)+1 {
		t.Fatalf("got %d explanations for %d units", len(got), len(r.Prices.Units))
	}

	want := []string{
		"Slabs in Prefab Concrete: 2400.00 m2 x 12.8 MKI/m2 = 30720.00 MKI",
		"Columns in Prefab Concrete: 162.00 m x 17.1 MKI/m = 2770.20 MKI",
		"Core in Prefab Concrete: 243.60 m2 x 6.9 MKI/m2 = 1680.84 MKI",
		"Per m2: 35171.04 MKI / 2400.00 m2 = 14.65 MKI",
	}
	for i, w := range want {
		if n := got[i].ToNarrative(); n != w {
			t.Errorf("narrative %d = %q, want %q", i, n, w)
		}
	}

	if got[0].Inputs[0].Value != "4" || got[1].Inputs[0].Value != "60" {
		t.Errorf("element counts = %s, %s", got[0].Inputs[0].Value, got[1].Inputs[0].Value)
	}
}

func TestExplainAmountsAddUp(t *testing.T) {
	for _, m := range []string{"Steel Composite", "Cross-Laminated-Timber", "CLT Composite"} {
		r := evaluate(t, m)
		exps := Explain(r.Prices)

		sum := exps[0].Amount
		for _, e := range exps[1 : len(exps)-1] {
			sum = sum.Add(e.Amount)
		}
		if !sum.Equal(r.Prices.Total) {
			t.Errorf("%s: explained %s, total %s", m, sum, r.Prices.Total)
		}
	}
}

func TestToHoverListsInputs(t *testing.T) {
	h := Explain(evaluate(t, "Prefab Concrete").Prices)[1].ToHover()
	for _, want := range []string{"elements = 60 (geometry)", "rate = 17.1 MKI/m (catalog)"} {
		if !strings.Contains(h, want) {
			t.Errorf("hover missing %q:\n%s", want, h)
		}
	}
}

func TestNarrate(t *testing.T) {
	prefab := evaluate(t, "Prefab Concrete")
	steel := evaluate(t, "Steel Composite")
	d := diff.NewDiffer(0)

	tests := []struct {
		name string
		r    *diff.Result
		want string
	}{
		{"decrease", d.Diff(prefab, steel), "Steel Composite costs 7552 MKI (-21.5%) less than Prefab Concrete, mostly from slabs (-6240)"},
		{"increase", d.Diff(steel, prefab), "Prefab Concrete costs 7552 MKI (+27.3%) more than Steel Composite, mostly from slabs (+6240)"},
		{"same", d.Diff(prefab, prefab), "Prefab Concrete costs the same as Prefab Concrete (35171 MKI)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Narrate(tt.r); got != tt.want {
				t.Errorf("Narrate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToMarkdown(t *testing.T) {
	md := ToMarkdown(diff.NewDiffer(0).Diff(evaluate(t, "Prefab Concrete"), evaluate(t, "Steel Composite")))
	for _, want := range []string{
		"**Steel Composite vs Prefab Concrete**",
		"| Shadow Price Slabs | 30720.00 | 24480.00 | -6240.00 |",
		"| Shadow Price Core | 1680.84 | 1680.84 | 0.00 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}
