package langguess

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Code is a language code as used by the trigram models, e.g. "en", "ceb",
// "pt_BR" or "mn-Mong".
//
// The zero value means that no language could be determined. It cannot
// collide with a real language code, as model keys are never empty.
type Code string

// Unknown is the result of a classification which could not settle on a
// language.
const Unknown Code = ""

// IsUnknown is true for the zero Code.
func (c Code) IsUnknown() bool {
	return c == Unknown
}

// String returns the code, or "UNKNOWN" for the zero Code.
func (c Code) String() string {
	if c == Unknown {
		return "UNKNOWN"
	}
	return string(c)
}

// key is the lookup key for trigram models: the lower-cased code.
func (c Code) key() string {
	return strings.ToLower(string(c))
}

// Tag converts the code to a BCP 47 language tag. Regional variants written
// with an underscore ("pt_BR") are accepted.
func (c Code) Tag() (language.Tag, error) {
	if c == Unknown {
		return language.Und, fmt.Errorf("no language tag for unknown language")
	}
	return language.Parse(strings.ReplaceAll(string(c), "_", "-"))
}

// Info is the detailed result of a classification.
//
// Code is Unknown if no language could be determined. Numeric id and display
// name are resolved independently from a Registry; either may be absent even
// if Code is set.
type Info struct {
	Code    Code
	id      int
	name    string
	hasID   bool
	hasName bool
}

// ID returns the numeric language id, if one is registered for the code.
func (info Info) ID() (int, bool) {
	return info.id, info.hasID
}

// Name returns the display name, if one is registered for the code.
func (info Info) Name() (string, bool) {
	return info.name, info.hasName
}

// String formats info as "code (id, name)", using "UNKNOWN" for absent parts.
func (info Info) String() string {
	id, name := "UNKNOWN", "UNKNOWN"
	if info.hasID {
		id = fmt.Sprintf("%d", info.id)
	}
	if info.hasName {
		name = info.name
	}
	return fmt.Sprintf("%s (%s, %s)", info.Code, id, name)
}
