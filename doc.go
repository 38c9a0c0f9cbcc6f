/*
Package langguess guesses the natural language of a text sample.

It is based on the trigram approach of Maciej Ceglowski's Language::Guess,
later ported to KDE's Sonnet and to Python as guess_language. Classification
happens in two stages. First, the letters of the normalized sample are
assigned to Unicode blocks and the blocks are ranked by frequency. A block
used by exactly one language (Hangul, Thai, Armenian, ...) settles the question
immediately. Blocks shared by many languages (Latin, Cyrillic, Arabic,
Devanagari) narrow the search to a curated set of candidate languages, which
are then compared against the sample by the rank distance of their trigram
profiles.

Trigram models are not part of this package. A ModelSet is filled once from
a format-agnostic ModelReader (see package trigramfile for the line format
and package modeldir for loading a whole directory), frozen, and then shared
read-only between any number of goroutines.

Classification never fails. Whenever no language can be determined, the
result is the zero Code, which prints as "UNKNOWN".

Further Reading

	http://languid.cantbedone.org/
	https://code.google.com/archive/p/guess-language/

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package langguess

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'langguess'
func tracer() tracing.Trace {
	return tracing.Select("langguess")
}
