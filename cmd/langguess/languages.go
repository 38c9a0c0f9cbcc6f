package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/npillmayer/langguess"
)

func newLanguagesCommand(a *app) *cobra.Command {
	var prefix string
	var withModel bool
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List known languages with id, name and model availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGuesser()
			if err != nil {
				return err
			}
			registry := g.Registry()
			codes := registry.Codes()
			if prefix != "" {
				codes = registry.FindByName(prefix)
			}
			if withModel {
				codes = lo.Filter(codes, func(code langguess.Code, _ int) bool {
					_, ok := g.Models().Lookup(code)
					return ok
				})
			}
			rows := lo.Map(codes, func(code langguess.Code, _ int) []any {
				info := registry.Info(code)
				id, hasID := info.ID()
				name, _ := info.Name()
				_, model := g.Models().Lookup(code)
				return []any{
					code,
					lo.Ternary(hasID, fmt.Sprint(id), "-"),
					name,
					lo.Ternary(model, "model", ""),
				}
			})
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, row := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row...)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&prefix, "name", "n", "", "only list languages whose name starts with this prefix")
	cmd.Flags().BoolVarP(&withModel, "with-model", "m", false, "only list languages with a trigram model")
	return cmd
}
