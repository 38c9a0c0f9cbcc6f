package langguess

import (
	"sort"
	"strings"
	"unicode"
)

const (
	// MinLength is the minimum length of a normalized sample, in code points,
	// for trigram scoring. Trigram statistics of shorter samples are
	// unreliable.
	MinLength = 20
	// MaxGrams is the number of sample trigrams compared against a model. It
	// is also the penalty for a sample trigram missing from a model.
	MaxGrams = 300
)

// Ranking lists the distinct trigrams of a sample by descending frequency.
// Trigrams of equal frequency are in lexicographic order.
type Ranking []string

// NewRanking lower-cases sample and ranks its overlapping 3-code-point
// windows.
func NewRanking(sample string) Ranking {
	runes := []rune(strings.ToLower(sample))
	if len(runes) < 3 {
		return Ranking{}
	}
	counts := make(map[string]int, len(runes))
	for i := 0; i+3 <= len(runes); i++ {
		counts[string(runes[i:i+3])]++
	}
	ranking := make(Ranking, 0, len(counts))
	for trigram := range counts {
		ranking = append(ranking, trigram)
	}
	sort.Slice(ranking, func(i, j int) bool {
		a, b := ranking[i], ranking[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return a < b
	})
	return ranking
}

// Model turns the ranking into a model, ranking position becoming rank.
func (r Ranking) Model() *Model {
	m := &Model{ranks: make(map[string]int, len(r))}
	for i, trigram := range r {
		m.ranks[trigram] = i
	}
	return m
}

// Distance computes the rank distance between a sample ranking and a stored
// model, comparing the first MaxGrams trigrams of the sample. Lower values
// mean a closer match; a sample compared to its own ranking has distance 0.
func Distance(sample Ranking, model *Model) int {
	return distance(sample, model, MaxGrams)
}

// distance sums, over the first maxGrams sample trigrams, the difference
// between sample position and model rank. Trigrams missing from the model
// cost maxGrams each. Trigrams containing two adjacent white-space characters
// are normalization artifacts and are skipped.
func distance(sample Ranking, model *Model, maxGrams int) int {
	if len(sample) > maxGrams {
		sample = sample[:maxGrams]
	}
	dist := 0
	for i, trigram := range sample {
		if hasDoubleSpace(trigram) {
			continue
		}
		if rank, ok := model.Rank(trigram); ok {
			dist += abs(i - rank)
		} else {
			dist += maxGrams
		}
	}
	return dist
}

func hasDoubleSpace(trigram string) bool {
	prev := false
	for _, r := range trigram {
		space := unicode.IsSpace(r)
		if space && prev {
			return true
		}
		prev = space
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
