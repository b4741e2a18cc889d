// Package explanation - Comparison narratives
// Explains how two construction systems differ in shadow price.
package explanation

import (
	"fmt"
	"strings"

	"shadowcost/core/diff"
)

// Narrate explains a diff in one sentence, naming the category that
// moved the most.
func Narrate(r *diff.Result) string {
	switch r.Total.ChangeType {
	case diff.ChangeUnchanged:
		return fmt.Sprintf("%s costs the same as %s (%s MKI)",
			r.After, r.Before, r.Total.After.StringFixed(0))
	case diff.ChangeIncrease:
		return fmt.Sprintf("%s costs %s MKI (+%.1f%%) more than %s, mostly %s",
			r.After, r.Total.Delta.StringFixed(0), r.Total.Percent, r.Before, driverPhrase(r))
	default:
		return fmt.Sprintf("%s costs %s MKI (%.1f%%) less than %s, mostly %s",
			r.After, r.Total.Delta.Neg().StringFixed(0), r.Total.Percent, r.Before, driverPhrase(r))
	}
}

// ToMarkdown returns a markdown table row per category
func ToMarkdown(r *diff.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s vs %s**\n\n", r.After, r.Before)
	sb.WriteString("| Category | Before | After | Delta |\n|---|---:|---:|---:|\n")
	for _, c := range append(r.Categories, r.Total) {
		sign := ""
		if c.Delta.IsPositive() {
			sign = "+"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s%s |\n",
			c.Label, c.Before.StringFixed(2), c.After.StringFixed(2), sign, c.Delta.StringFixed(2))
	}
	return sb.String()
}

func driverPhrase(r *diff.Result) string {
	for _, c := range r.Categories {
		if c.Label != r.Driver {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(c.Label, "Shadow Price "))
		if c.Delta.IsPositive() {
			return fmt.Sprintf("from %s (+%s)", name, c.Delta.StringFixed(0))
		}
		return fmt.Sprintf("from %s (%s)", name, c.Delta.StringFixed(0))
	}
	return "spread evenly"
}
