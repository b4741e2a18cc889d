package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"shadowcost/core/catalog"
	"shadowcost/core/types"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// materialsCmd lists the construction systems
var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List construction systems and their element materials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var sb strings.Builder
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%-24s %-24s %-24s %-16s %s",
			"System", "Slabs", "Columns", "Core", "Span (m)")))
		sb.WriteString("\n")
		for _, s := range catalog.Systems() {
			a, err := catalog.Assign(s)
			if err != nil {
				return err
			}
			fmt.Fprintf(&sb, "%-24s %-24s %-24s %-16s %g\n",
				s, a.Slab.Name(), a.Column.Name(), a.Core.Name(), a.ColumnSpan)
		}

		l := types.Limits
		fmt.Fprintf(&sb, "\nLimits: width %g-%g m, length %g-%g m, floor height %g-%g m, floors %g-%g\n",
			l.Width.Min, l.Width.Max, l.Length.Min, l.Length.Max,
			l.FloorHeight.Min, l.FloorHeight.Max, l.Floors.Min, l.Floors.Max)

		_, err := fmt.Fprint(cmd.OutOrStdout(), sb.String())
		return err
	},
}
