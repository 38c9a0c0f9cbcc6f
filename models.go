package langguess

import (
	"fmt"
	"io"
	"sort"
	"unicode/utf8"
)

// Model is the stored trigram ranking of one language: trigram => rank, where
// rank 0 is the most frequent trigram. Models are immutable.
type Model struct {
	ranks map[string]int
}

// NewModel creates a model from a trigram => rank mapping. ranks is copied.
func NewModel(ranks map[string]int) *Model {
	m := &Model{ranks: make(map[string]int, len(ranks))}
	for trigram, rank := range ranks {
		m.ranks[trigram] = rank
	}
	return m
}

// Rank returns the rank of trigram in the model.
func (m *Model) Rank(trigram string) (int, bool) {
	if m == nil {
		return 0, false
	}
	rank, ok := m.ranks[trigram]
	return rank, ok
}

// Len returns the number of trigrams in the model.
func (m *Model) Len() int {
	if m == nil {
		return 0
	}
	return len(m.ranks)
}

// ModelReader yields the entries of a trigram model one-by-one.
// It should return io.EOF when the stream is exhausted.
type ModelReader interface {
	Next() (trigram string, rank int, err error)
}

// ModelSet holds the trigram models of all languages, keyed by lower-cased
// language code.
//
// A ModelSet is filled during initialization and then frozen. A frozen
// ModelSet is never modified again and may be shared between goroutines
// without locking.
type ModelSet struct {
	models map[string]*Model
	frozen bool
}

// NewModelSet creates an empty, mutable model set.
func NewModelSet() *ModelSet {
	return &ModelSet{models: make(map[string]*Model)}
}

// Load reads the model for code from a streaming, format-agnostic source.
// If a trigram occurs more than once, the last rank wins.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package trigramfile to parse concrete formats and feed this API.
func (ms *ModelSet) Load(code Code, reader ModelReader) error {
	if ms.frozen {
		return ErrFrozen
	}
	if code == Unknown {
		return fmt.Errorf("cannot load trigram model: empty code")
	}
	ranks := make(map[string]int, 400)
	for {
		trigram, rank, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("loading trigram model %q: %w", code, err)
		}
		if utf8.RuneCountInString(trigram) != 3 {
			continue // simply skip invalid entries
		}
		ranks[trigram] = rank
	}
	ms.models[code.key()] = &Model{ranks: ranks}
	tracer().Infof("loaded trigram model %q with %d trigrams", code.key(), len(ranks))
	return nil
}

// Add stores model for code, replacing a previous model for the same code.
func (ms *ModelSet) Add(code Code, model *Model) error {
	if ms.frozen {
		return ErrFrozen
	}
	if code == Unknown || model == nil {
		return fmt.Errorf("cannot add model %q: empty code or nil model", code)
	}
	ms.models[code.key()] = model
	return nil
}

// Freeze makes the model set read-only.
func (ms *ModelSet) Freeze() {
	ms.frozen = true
}

// Frozen reports whether Freeze has been called.
func (ms *ModelSet) Frozen() bool {
	return ms.frozen
}

// Lookup returns the model for code. Codes are matched case-insensitively.
// A missing model is not an error; such a language is simply not scored.
func (ms *ModelSet) Lookup(code Code) (*Model, bool) {
	if ms == nil {
		return nil, false
	}
	m, ok := ms.models[code.key()]
	return m, ok
}

// Len returns the number of models.
func (ms *ModelSet) Len() int {
	if ms == nil {
		return 0
	}
	return len(ms.models)
}

// Codes returns the keys of all models, sorted.
func (ms *ModelSet) Codes() []Code {
	codes := make([]Code, 0, ms.Len())
	if ms == nil {
		return codes
	}
	for key := range ms.models {
		codes = append(codes, Code(key))
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
