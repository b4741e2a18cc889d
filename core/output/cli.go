package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"shadowcost/core/diff"
	"shadowcost/core/engine"
	"shadowcost/core/explanation"
	"shadowcost/core/pricing"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

type cliFormatter struct {
	opts Options
}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) Render(w io.Writer, r *engine.Result) error {
	p := r.Parameters
	b := r.Building
	prices := r.Prices

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("3D Model and Shadow Cost"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s, %g x %g m, %d floors of %g m\n", p.Material, p.Width, p.Length, p.Floors, p.FloorHeight)
	fmt.Fprintf(&sb, "%d slabs, %d columns (%d x %d per floor), 1 core\n\n",
		len(b.Slabs), len(b.Columns), b.Grid.AlongWidth, b.Grid.AlongLength)

	fmt.Fprintf(&sb, "%-28s %14s\n", pricing.LabelTotal, f.money(prices.Total))
	fmt.Fprintf(&sb, "  ├─ %-23s %14s\n", "Slabs", f.money(prices.Slabs))
	fmt.Fprintf(&sb, "  ├─ %-23s %14s\n", "Columns", f.money(prices.Columns))
	fmt.Fprintf(&sb, "  └─ %-23s %14s\n", "Core", f.money(prices.Core))
	fmt.Fprintf(&sb, "%-28s %14s\n", pricing.LabelPerM2, f.money(prices.PerM2)+"/m2")

	if f.opts.ShowDetails {
		sb.WriteString("\n")
		for _, e := range explanation.Explain(prices) {
			fmt.Fprintf(&sb, "  %s\n", e.ToNarrative())
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (f *cliFormatter) RenderComparison(w io.Writer, results []*engine.Result) error {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Shadow Cost by Construction System"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%-24s %8s %12s %12s %12s %12s %10s %9s\n",
		"System", "Columns", "Slabs", "Columns", "Core", "Total", "per m2", "vs first")

	diffs := diff.NewDiffer(0).AgainstBaseline(results)
	for i, r := range results {
		delta := "-"
		if i > 0 {
			delta = fmt.Sprintf("%+.1f%%", diffs[i-1].Total.Percent)
		}
		fmt.Fprintf(&sb, "%-24s %8d %12s %12s %12s %12s %10s %9s\n",
			r.Parameters.Material,
			len(r.Building.Columns),
			f.money(r.Prices.Slabs),
			f.money(r.Prices.Columns),
			f.money(r.Prices.Core),
			f.money(r.Prices.Total),
			f.money(r.Prices.PerM2),
			delta,
		)
	}

	if f.opts.ShowDetails && len(diffs) > 0 {
		sb.WriteString("\n")
		for _, d := range diffs {
			fmt.Fprintf(&sb, "  %s\n", explanation.Narrate(d))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (f *cliFormatter) money(d decimal.Decimal) string {
	return FormatMoney(d, f.opts.CurrencySymbol, f.opts.Decimals)
}

// FormatMoney renders d with a currency symbol and thousands separators
func FormatMoney(d decimal.Decimal, symbol string, decimals int) string {
	rounded := d.Round(int32(decimals)).InexactFloat64()
	return symbol + humanize.CommafWithDigits(rounded, decimals)
}
