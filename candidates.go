package langguess

// Candidate sets: languages plausible for a script, in scoring order. On equal
// distance the earlier candidate wins, so the order is significant.
var (
	basicLatin = []Code{"en", "ceb", "ha", "so", "tlh", "id", "haw", "la", "sw", "eu",
		"nr", "nso", "zu", "xh", "ss", "st", "tn", "ts"}
	extendedLatin = []Code{"cs", "af", "pl", "hr", "ro", "sk", "sl", "tr", "hu", "az",
		"et", "sq", "ca", "es", "fr", "de", "nl", "it", "da", "is", "no", "sv", "fi",
		"lv", "pt", "ve", "lt", "tl", "cy"}
	allLatin   = concat(basicLatin, extendedLatin)
	cyrillic   = []Code{"ru", "uk", "kk", "uz", "mn", "sr", "mk", "bg", "ky"}
	arabic     = []Code{"ar", "fa", "ps", "ur"}
	devanagari = []Code{"hi", "ne"}

	// Portuguese is scored a second time against its regional variants.
	portuguese         Code = "pt"
	portugueseVariants      = []Code{"pt_BR", "pt_PT"}
)

// rule tells the classifier what to make of a script: either the script
// settles the language by itself, or the sample is scored against a
// candidate set. A zero rule is not decisive.
type rule struct {
	code       Code
	candidates []Code
	regional   bool // resolve Portuguese variants
}

func (r rule) decisive() bool {
	return r.code != Unknown || r.candidates != nil
}

// dispatch maps every script to its rule.
var dispatch = [numScripts]rule{
	ScriptBasicLatin:    {candidates: allLatin, regional: true},
	ScriptExtendedLatin: {candidates: extendedLatin, regional: true},

	ScriptHangul:                  {code: "ko"},
	ScriptHangulSyllables:         {code: "ko"},
	ScriptHangulJamo:              {code: "ko"},
	ScriptHangulCompatibilityJamo: {code: "ko"},

	ScriptGreekAndCoptic: {code: "el"},

	ScriptHiragana:                   {code: "ja"},
	ScriptKatakana:                   {code: "ja"},
	ScriptKatakanaPhoneticExtensions: {code: "ja"},

	ScriptCJKUnifiedIdeographs: {code: "zh"},
	ScriptBopomofo:             {code: "zh"},
	ScriptBopomofoExtended:     {code: "zh"},
	ScriptKangxiRadicals:       {code: "zh"},

	ScriptCyrillic: {candidates: cyrillic},

	ScriptArabic: {candidates: arabic},

	ScriptDevanagari: {candidates: devanagari},

	// scripts of a single language
	ScriptArmenian:  {code: "hy"},
	ScriptHebrew:    {code: "he"},
	ScriptBengali:   {code: "bn"},
	ScriptGurmukhi:  {code: "pa"},
	ScriptGujarati:  {code: "gu"},
	ScriptOriya:     {code: "or"},
	ScriptTamil:     {code: "ta"},
	ScriptTelugu:    {code: "te"},
	ScriptKannada:   {code: "kn"},
	ScriptMalayalam: {code: "ml"},
	ScriptSinhala:   {code: "si"},
	ScriptThai:      {code: "th"},
	ScriptLao:       {code: "lo"},
	ScriptTibetan:   {code: "bo"},
	ScriptMyanmar:   {code: "my"},
	ScriptGeorgian:  {code: "ka"},
	ScriptMongolian: {code: "mn-Mong"},
	ScriptKhmer:     {code: "km"},

	ScriptLatinExtendedAdditional: {code: "vi"},
}

// Candidates returns the candidate languages scored for samples dominated by
// script s, or nil if s is not resolved by scoring.
func Candidates(s Script) []Code {
	if int(s) >= len(dispatch) {
		return nil
	}
	return concat(dispatch[s].candidates)
}

// Decision returns the language settled by script s alone, if any.
func Decision(s Script) (Code, bool) {
	if int(s) >= len(dispatch) || dispatch[s].code == Unknown {
		return Unknown, false
	}
	return dispatch[s].code, true
}

func concat(sets ...[]Code) []Code {
	var n int
	for _, set := range sets {
		n += len(set)
	}
	if n == 0 {
		return nil
	}
	all := make([]Code, 0, n)
	for _, set := range sets {
		all = append(all, set...)
	}
	return all
}
