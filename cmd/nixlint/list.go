package main

import (
	"cmp"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"nixlint/internal/lint"
	"nixlint/internal/lint/rules"
)

func newListCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every lint with its code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := rules.All()
			slices.SortFunc(all, func(x, y lint.Rule) int {
				return cmp.Compare(x.Meta().Code, y.Meta().Code)
			})

			tbl := table.NewWriter()
			tbl.SetOutputMirror(cmd.OutOrStdout())
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"Code", "Name", "Note"})
			for _, r := range all {
				m := r.Meta()
				tbl.AppendRow(table.Row{m.Code.String(), m.Name, m.Note})
			}
			tbl.AppendFooter(table.Row{"", "Total", len(all)})
			tbl.Render()
			return nil
		},
	}
}
