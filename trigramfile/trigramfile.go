/*
Package trigramfile reads trigram models in the classic Language::Guess
line format.

Every line holds one trigram followed by white space and its rank:

	 th 0
	the 1
	he 2
	ing 3

The first three code points of a line are the trigram; they may include
spaces. The rank is the trigram's position in the language's frequency
ranking, 0 being the most frequent. Lines not of this shape are skipped.
*/
package trigramfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/langguess"
)

// Reader streams trigram entries from a model file. It implements
// langguess.ModelReader.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// LoadModel parses model data for code and adds it to models.
func LoadModel(models *langguess.ModelSet, code langguess.Code, reader io.Reader) error {
	return models.Load(code, NewReader(reader))
}

// NewReader creates a Reader for model data.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next trigram and its rank.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, int, error) {
	for r.scanner.Scan() {
		r.line++
		trigram, rest, ok := splitLine(strings.TrimRight(r.scanner.Text(), "\r\n"))
		if !ok {
			continue
		}
		rank, err := strconv.Atoi(rest)
		if err != nil {
			return "", 0, fmt.Errorf("line %d: invalid rank %q", r.line, rest)
		}
		return trigram, rank, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", 0, err
	}
	return "", 0, io.EOF
}

// splitLine separates the leading trigram from the rank field. The trigram
// must be followed by at least one white-space character.
func splitLine(line string) (trigram, rest string, ok bool) {
	offset := 0
	for i := 0; i < 3; i++ {
		_, size := utf8.DecodeRuneInString(line[offset:])
		if size == 0 {
			return "", "", false
		}
		offset += size
	}
	trigram, rest = line[:offset], line[offset:]
	next, _ := utf8.DecodeRuneInString(rest)
	if !unicode.IsSpace(next) {
		return "", "", false
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", "", false
	}
	return trigram, rest, true
}
