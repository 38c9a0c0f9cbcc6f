package langguess

import (
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
)

// ErrFrozen is returned when adding to a ModelSet or Registry after Freeze.
var ErrFrozen = errors.New("langguess: store is frozen")

// Registry relates language codes to numeric ids and display names.
//
// Both tables are independent: a code may have a name but no id, or vice
// versa. Lookups of codes missing from a table report absence, never an
// error.
type Registry struct {
	names  map[Code]string
	ids    map[Code]int
	index  *trie.Trie // lower-cased display name => []Code
	frozen bool
}

// RegistryEntry is one line of registry data. Empty Name and HasID == false
// leave the respective table untouched.
type RegistryEntry struct {
	Code  Code
	ID    int
	HasID bool
	Name  string
}

// RegistryReader yields registry entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type RegistryReader interface {
	Next() (RegistryEntry, error)
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the frozen, process-wide registry holding the
// built-in name and id tables. It is safe for concurrent use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		defaultRegistry.Freeze()
	})
	return defaultRegistry
}

// NewRegistry creates a mutable registry pre-filled with the built-in tables.
// Clients may add or override entries and should call Freeze before sharing
// it between goroutines.
func NewRegistry() *Registry {
	r := &Registry{
		names: make(map[Code]string, len(languageNames)),
		ids:   make(map[Code]int, len(languageIDs)),
		index: trie.New(),
	}
	for code, name := range languageNames {
		r.setName(code, name)
	}
	for code, id := range languageIDs {
		r.ids[code] = id
	}
	return r
}

// SetName registers (or replaces) the display name for code.
func (r *Registry) SetName(code Code, name string) error {
	if r.frozen {
		return ErrFrozen
	}
	r.setName(code, name)
	return nil
}

// SetID registers (or replaces) the numeric id for code.
func (r *Registry) SetID(code Code, id int) error {
	if r.frozen {
		return ErrFrozen
	}
	r.ids[code] = id
	return nil
}

// Load adds all entries from a streaming source.
func (r *Registry) Load(reader RegistryReader) error {
	for {
		entry, err := reader.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if entry.Name != "" {
			if err = r.SetName(entry.Code, entry.Name); err != nil {
				return err
			}
		}
		if entry.HasID {
			if err = r.SetID(entry.Code, entry.ID); err != nil {
				return err
			}
		}
	}
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Name returns the display name for code, e.g. "english" for "en".
func (r *Registry) Name(code Code) (string, bool) {
	name, ok := r.names[code]
	return name, ok
}

// ID returns the numeric id for code, e.g. 26110 for "en".
func (r *Registry) ID(code Code) (int, bool) {
	id, ok := r.ids[code]
	return id, ok
}

// Info resolves id and name for code. An unknown code yields an Info with
// neither.
func (r *Registry) Info(code Code) Info {
	info := Info{Code: code}
	if code == Unknown {
		return info
	}
	info.id, info.hasID = r.ID(code)
	info.name, info.hasName = r.Name(code)
	return info
}

// Codes returns every code known to either table, sorted.
func (r *Registry) Codes() []Code {
	seen := make(map[Code]struct{}, len(r.names))
	for code := range r.names {
		seen[code] = struct{}{}
	}
	for code := range r.ids {
		seen[code] = struct{}{}
	}
	codes := make([]Code, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// FindByName returns the codes whose display name starts with prefix,
// ignoring case. Results are sorted.
func (r *Registry) FindByName(prefix string) []Code {
	keys := r.index.PrefixSearch(strings.ToLower(prefix))
	var codes []Code
	for _, key := range keys {
		node, ok := r.index.Find(key)
		if !ok {
			continue
		}
		for _, code := range node.Meta().([]Code) {
			if name, ok := r.names[code]; ok && strings.ToLower(name) == key {
				codes = append(codes, code) // skip stale index entries of renamed codes
			}
		}
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

func (r *Registry) setName(code Code, name string) {
	r.names[code] = name
	key := strings.ToLower(name)
	if node, ok := r.index.Find(key); ok {
		codes := node.Meta().([]Code)
		for _, c := range codes {
			if c == code {
				return
			}
		}
		r.index.Add(key, append(codes, code))
		return
	}
	r.index.Add(key, []Code{code})
}
