package langguess

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares text for classification. It composes text to NFC,
// replaces every code point which is not a letter by a space and collapses
// runs of spaces into a single one. Text without letters normalizes to ""
// or " ".
//
// Normalize is idempotent.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	var b strings.Builder
	b.Grow(len(text))
	space := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return b.String()
}
