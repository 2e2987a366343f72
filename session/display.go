package session

import (
	"fmt"
	"io"

	"github.com/c360studio/escapetower/component"
	"github.com/c360studio/escapetower/config"
)

// WriteTable writes one fixed-width line per component, numbered from 1.
func WriteTable(w io.Writer, items []component.Component, d config.DisplayConfig) {
	fmt.Fprintln(w, "\n=== Components ===")
	for i, c := range items {
		fmt.Fprintf(w, "[%02d] Name: %-*s | Type: %-*s | Priority: %d\n",
			i+1, d.NameWidth, c.Name, d.TypeWidth, c.Type, c.Priority)
	}
	fmt.Fprintln(w, "===================")
	fmt.Fprintln(w)
}

// FormatMetrics renders the comparison count and elapsed seconds of a sort.
func FormatMetrics(r SortReport) string {
	return fmt.Sprintf("Comparisons: %d | Time: %.6f s", r.Comparisons, r.Seconds())
}

// sortedHeading is printed after a sort, e.g. ">> Sorted by NAME (Bubble)."
func sortedHeading(r SortReport) string {
	order := ""
	if r.Algorithm.Descending {
		order = ", desc"
	}
	return fmt.Sprintf(">> Sorted by %s (%s%s).", r.Algorithm.Key, r.Algorithm.Label, order)
}
