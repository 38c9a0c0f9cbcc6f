package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/pemistahl/lingua-go"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/npillmayer/langguess"
)

// sample is one entry of an evaluation corpus:
//
//	- lang: de
//	  text: Die Kinder sind mit ihren Freunden in die Schule gegangen.
type sample struct {
	Lang string `yaml:"lang"`
	Text string `yaml:"text"`
}

type result struct {
	sample
	Guess  langguess.Code
	Lingua string // empty if lingua was not asked or undecided
}

func (r result) correct() bool {
	return strings.EqualFold(string(r.Guess), r.Lang)
}

func newEvalCommand(a *app) *cobra.Command {
	var withLingua bool
	cmd := &cobra.Command{
		Use:   "eval corpus.yaml",
		Short: "Measure accuracy on a corpus of labelled samples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGuesser()
			if err != nil {
				return err
			}
			corpus, err := readCorpus(args[0])
			if err != nil {
				return err
			}
			var detector lingua.LanguageDetector
			if withLingua {
				logger.Info("building lingua detector for all languages")
				detector = lingua.NewLanguageDetectorBuilder().FromAllLanguages().Build()
			}
			results := lo.Map(corpus, func(s sample, _ int) result {
				r := result{sample: s, Guess: g.Guess(s.Text)}
				if detector != nil {
					if lang, ok := detector.DetectLanguageOf(s.Text); ok {
						r.Lingua = strings.ToLower(lang.IsoCode639_1().String())
					}
				}
				if !r.correct() {
					logger.WithFields(logrus.Fields{
						"want":  s.Lang,
						"guess": r.Guess.String(),
					}).Debugf("misclassified %q", s.Text)
				}
				return r
			})
			return report(cmd, results, withLingua)
		},
	}
	cmd.Flags().BoolVar(&withLingua, "lingua", false, "compare every guess with github.com/pemistahl/lingua-go")
	return cmd
}

func readCorpus(path string) ([]sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var corpus []sample
	if err = yaml.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	corpus = lo.Filter(corpus, func(s sample, _ int) bool {
		return s.Lang != "" && s.Text != ""
	})
	if len(corpus) == 0 {
		return nil, fmt.Errorf("%s: no labelled samples", path)
	}
	return corpus, nil
}

// report prints per-language and total accuracy.
func report(cmd *cobra.Command, results []result, withLingua bool) error {
	byLang := lo.GroupBy(results, func(r result) string { return strings.ToLower(r.Lang) })
	langs := lo.Keys(byLang)
	sort.Strings(langs)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	header := "lang\tsamples\tcorrect\taccuracy"
	if withLingua {
		header += "\tlingua agrees"
	}
	fmt.Fprintln(w, header)
	line := func(label string, rs []result) {
		correct := lo.CountBy(rs, result.correct)
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f%%", label, len(rs), correct, percent(correct, len(rs)))
		if withLingua {
			fmt.Fprintf(w, "\t%d", lo.CountBy(rs, agrees))
		}
		fmt.Fprintln(w)
	}
	for _, lang := range langs {
		line(lang, byLang[lang])
	}
	line("total", results)
	return w.Flush()
}

// agrees reports whether lingua found the same language. Regional variants
// are compared by their base language.
func agrees(r result) bool {
	base, _, _ := strings.Cut(strings.ToLower(string(r.Guess)), "_")
	return r.Lingua != "" && r.Lingua == base
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
