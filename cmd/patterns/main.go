// Command patterns prints every pattern with its parameter schema,
// followed by the theme catalog grouped by category.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/softglow/glowcat/pattern"
	"github.com/softglow/glowcat/theme"
)

func main() {
	registry := pattern.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "PATTERNS")
	for _, id := range registry.List() {
		meta, err := registry.Describe(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "describe %s: %v\n", id, err)
			os.Exit(1)
		}
		fmt.Fprintf(w, "\n%s\t%s\n", meta.ID, meta.Description)
		for _, f := range meta.Fields {
			fmt.Fprintf(w, "  %s\t%s\tdefault %s\t%s\n", f.Name, fieldRange(f), f.Default, f.Desc)
		}
	}

	fmt.Fprintln(w, "\nTHEMES")
	themes := theme.NewRegistry()
	for _, cat := range themes.Categories() {
		names := themes.ByCategory(cat)
		fmt.Fprintf(w, "\n%s\t%s\n", cat, strings.Join(names, ", "))
	}

	w.Flush()
}

// fieldRange renders a field's accepted values for the listing
func fieldRange(f pattern.Field) string {
	switch f.Type {
	case pattern.BoolField:
		return "true/false"
	case pattern.EnumField:
		return strings.Join(f.Options, "/")
	default:
		min := strconv.FormatFloat(f.Min, 'g', -1, 64)
		max := strconv.FormatFloat(f.Max, 'g', -1, 64)
		return min + ".." + max
	}
}
