package main

import (
	"fmt"
	"strings"

	"goidioms/internal/ux"

	"github.com/spf13/cobra"
)

// listCmd prints the demo catalog
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List demos, their eras, and the releases they span",
	RunE:  listDemos,
}

// listDemos is the handler for "goidioms list".
func listDemos(cmd *cobra.Command, args []string) error {
	table := ux.NewTable("Demos", "NAME", "TITLE", "ERAS", "SINCE")
	for _, d := range registry().Demos() {
		oldest, newest := d.Span()
		span := oldest.String()
		if newest != oldest {
			span = fmt.Sprintf("%s to %s", oldest, newest)
		}
		table.AddRow(d.Name, d.Title, strings.Join(d.VariantIDs(), ", "), span)
	}

	out := table.PlainView()
	if !cfg.UI.Plain {
		out = table.View(styles())
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
