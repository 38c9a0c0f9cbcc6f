package main

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/npillmayer/langguess"
)

func newTrigramsCommand(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "trigrams [text...]",
		Short: "Show how text is classified: scripts, trigrams and candidate distances",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGuesser()
			if err != nil {
				return err
			}
			return eachInput(cmd, args, false, func(text string) {
				explain(cmd, g, text, top)
			})
		},
	}
	cmd.Flags().IntVarP(&top, "top", "t", 10, "number of sample trigrams to print")
	return cmd
}

func explain(cmd *cobra.Command, g *langguess.Guesser, text string, top int) {
	out := cmd.OutOrStdout()
	sample := langguess.Normalize(text)
	fmt.Fprintf(out, "sample:   %q (%d code points)\n", sample, utf8.RuneCountInString(sample))
	scripts := langguess.Profile(sample)
	fmt.Fprintf(out, "scripts:  %s\n", strings.Join(lo.Map(scripts, func(s langguess.Script, _ int) string {
		return s.String()
	}), ", "))
	ranking := langguess.NewRanking(sample)
	if len(ranking) > top {
		ranking = ranking[:top]
	}
	fmt.Fprintf(out, "trigrams: %s\n", strings.Join(lo.Map(ranking, func(t string, _ int) string {
		return fmt.Sprintf("%q", t)
	}), " "))
	for _, script := range scripts {
		if code, ok := langguess.Decision(script); ok {
			fmt.Fprintf(out, "decided by script %s: %s\n", script, code)
			break
		}
		candidates := langguess.Candidates(script)
		if candidates == nil {
			continue
		}
		scores := g.Scores(text, candidates)
		sort.SliceStable(scores, func(i, j int) bool { return scores[i].Distance < scores[j].Distance })
		fmt.Fprintf(out, "scored by script %s (%d of %d candidates have a model):\n",
			script, len(scores), len(candidates))
		for _, s := range scores {
			fmt.Fprintf(out, "  %-6s %6d\n", s.Code, s.Distance)
		}
		break
	}
	fmt.Fprintf(out, "guess:    %s\n", g.Guess(text))
}
