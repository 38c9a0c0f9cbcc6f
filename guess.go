package langguess

import (
	"unicode/utf8"
)

// Guesser classifies text samples against a frozen set of trigram models.
// A Guesser holds no mutable state and is safe for concurrent use.
type Guesser struct {
	models    *ModelSet
	registry  *Registry
	minLength int
	maxGrams  int
}

// Option configures a Guesser.
type Option func(*Guesser)

// WithRegistry sets the registry used to resolve numeric ids and display
// names. The default is DefaultRegistry(). registry is frozen.
func WithRegistry(registry *Registry) Option {
	return func(g *Guesser) {
		if registry != nil {
			registry.Freeze()
			g.registry = registry
		}
	}
}

// WithMinLength sets the minimum sample length for trigram scoring
// (default MinLength).
func WithMinLength(n int) Option {
	return func(g *Guesser) {
		if n > 0 {
			g.minLength = n
		}
	}
}

// WithMaxGrams sets the number of sample trigrams compared against each model
// (default MaxGrams).
func WithMaxGrams(n int) Option {
	return func(g *Guesser) {
		if n > 0 {
			g.maxGrams = n
		}
	}
}

// New creates a Guesser for a set of trigram models. models is frozen, as it
// will be shared by all calls of the Guesser. A nil set is treated as empty:
// languages decided by their script are still recognized, all others are
// not.
func New(models *ModelSet, opts ...Option) *Guesser {
	if models == nil {
		models = NewModelSet()
	}
	models.Freeze()
	g := &Guesser{
		models:    models,
		registry:  DefaultRegistry(),
		minLength: MinLength,
		maxGrams:  MaxGrams,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Models returns the model set of g.
func (g *Guesser) Models() *ModelSet {
	return g.models
}

// Registry returns the registry of g.
func (g *Guesser) Registry() *Registry {
	return g.registry
}

// Guess returns the language code of text, e.g. "en", or Unknown.
func (g *Guesser) Guess(text string) Code {
	if text == "" {
		return Unknown
	}
	sample := Normalize(text)
	return g.identify(sample, Profile(sample))
}

// GuessBytes is Guess for UTF-8 encoded input. Invalid encodings are treated
// like non-letters.
func (g *Guesser) GuessBytes(text []byte) Code {
	if len(text) == 0 {
		return Unknown
	}
	return g.Guess(string(text))
}

// GuessInfo returns the language code of text together with its numeric id
// and display name, e.g. ("en", 26110, "english").
func (g *Guesser) GuessInfo(text string) Info {
	if text == "" {
		return Info{}
	}
	return g.registry.Info(g.Guess(text))
}

// GuessID returns the numeric id of the language of text.
func (g *Guesser) GuessID(text string) (int, bool) {
	return g.GuessInfo(text).ID()
}

// GuessName returns the display name of the language of text.
func (g *Guesser) GuessName(text string) (string, bool) {
	return g.GuessInfo(text).Name()
}

// identify walks the script profile and returns on the first script which is
// decisive, either by itself or through trigram scoring.
func (g *Guesser) identify(sample string, scripts []Script) Code {
	if utf8.RuneCountInString(sample) < 3 {
		return Unknown
	}
	tracer().Debugf("script profile %v", scripts)
	for _, script := range scripts {
		r := dispatch[script]
		if !r.decisive() {
			continue
		}
		if r.code != Unknown {
			return r.code
		}
		code := g.check(sample, r.candidates)
		if r.regional && code == portuguese {
			switch variant := g.check(sample, portugueseVariants); variant {
			case portugueseVariants[0], portugueseVariants[1]:
				return portuguese
			default:
				return variant
			}
		}
		return code
	}
	return Unknown
}

// Score is the distance of a sample to the model of a candidate language.
type Score struct {
	Code     Code
	Distance int
}

// Scores normalizes text and returns its distance to each candidate in
// order. Candidates without a model are left out. Text too short for
// scoring yields no scores.
func (g *Guesser) Scores(text string, candidates []Code) []Score {
	sample := Normalize(text)
	if utf8.RuneCountInString(sample) < g.minLength {
		return nil
	}
	return g.score(NewRanking(sample), candidates)
}

// check returns the candidate closest to sample, the first one on equal
// distance. It returns Unknown if sample is too short or no candidate has a
// model.
func (g *Guesser) check(sample string, candidates []Code) Code {
	if utf8.RuneCountInString(sample) < g.minLength {
		return Unknown
	}
	best := Unknown
	bestDistance := 0
	for _, s := range g.score(NewRanking(sample), candidates) {
		if best == Unknown || s.Distance < bestDistance {
			best, bestDistance = s.Code, s.Distance
		}
	}
	return best
}

func (g *Guesser) score(ranking Ranking, candidates []Code) []Score {
	scores := make([]Score, 0, len(candidates))
	for _, code := range candidates {
		model, ok := g.models.Lookup(code)
		if !ok {
			continue
		}
		d := distance(ranking, model, g.maxGrams)
		tracer().Debugf("distance to %s = %d", code, d)
		scores = append(scores, Score{Code: code, Distance: d})
	}
	return scores
}
