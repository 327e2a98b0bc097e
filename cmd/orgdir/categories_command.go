package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

type categoryView struct {
	Name       string   `json:"name"`
	Directory  string   `json:"directory"`
	Extensions []string `json:"extensions"`
}

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the resolved file categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ctx.reportConfigWarning(cmd.ErrOrStderr())

			table := cfg.CategoryTable()
			views := make([]categoryView, 0, table.Len())
			for _, name := range table.Names() {
				exts, _ := table.Extensions(name)
				views = append(views, categoryView{
					Name:       name,
					Directory:  filepath.FromSlash(name),
					Extensions: exts,
				})
			}

			if ctx.jsonValue() {
				return writeJSON(cmd, views)
			}

			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{v.Name, fmt.Sprintf("%d", len(v.Extensions)), strings.Join(v.Extensions, " ")})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Category", "Count", "Extensions"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))

			if collisions := table.Collisions(); len(collisions) > 0 {
				fmt.Fprintln(out, "\nExtensions claimed by more than one category (the last listed wins):")
				for _, c := range collisions {
					fmt.Fprintf(out, "  %s\n", c.String())
				}
			}
			return nil
		},
	}
}
