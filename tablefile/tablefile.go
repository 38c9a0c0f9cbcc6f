// Package tablefile reads language registry entries from text files.
//
// Each line holds a language code, a numeric id and a display name,
// separated by white space:
//
//	# code  id     name
//	en      26110  english
//	gd      65555  Scots Gaelic
//	mn-Mong -      mongolian (mongolian script)
//
// An id of "-" leaves the id table untouched; a missing name leaves the
// name table untouched. Lines starting with '#' are comments.
package tablefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/langguess"
)

// Reader streams registry entries. It implements langguess.RegistryReader.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// LoadInto parses registry data from reader and adds all entries to registry.
func LoadInto(registry *langguess.Registry, reader io.Reader) error {
	return registry.Load(NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next registry entry.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (langguess.RegistryEntry, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return langguess.RegistryEntry{}, fmt.Errorf("line %d: expected code and id, got %q", r.line, line)
		}
		entry := langguess.RegistryEntry{Code: langguess.Code(fields[0])}
		if fields[1] != "-" {
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return langguess.RegistryEntry{}, fmt.Errorf("line %d: invalid id %q", r.line, fields[1])
			}
			entry.ID, entry.HasID = id, true
		}
		entry.Name = strings.Join(fields[2:], " ")
		return entry, nil
	}
	if err := r.scanner.Err(); err != nil {
		return langguess.RegistryEntry{}, err
	}
	return langguess.RegistryEntry{}, io.EOF
}
