package langguess

import (
	"sort"
	"unicode"

	"github.com/npillmayer/langguess/pagemap"
)

// Script is a Unicode block, or a category merged from several blocks.
// Block names follow the Unicode Blocks.txt file, except for the Latin-1
// Supplement and Latin Extended-A/B blocks, which form one category
// "Extended Latin", and the synthetic category "Hangul".
type Script uint16

// Scripts used during classification.
const (
	ScriptOther Script = iota // letters outside the block table, e.g. beyond the BMP
	ScriptBasicLatin
	ScriptExtendedLatin
	ScriptIPAExtensions
	ScriptSpacingModifierLetters
	ScriptCombiningDiacriticalMarks
	ScriptGreekAndCoptic
	ScriptCyrillic
	ScriptCyrillicSupplement
	ScriptArmenian
	ScriptHebrew
	ScriptArabic
	ScriptSyriac
	ScriptArabicSupplement
	ScriptThaana
	ScriptNKo
	ScriptSamaritan
	ScriptMandaic
	ScriptArabicExtendedA
	ScriptDevanagari
	ScriptBengali
	ScriptGurmukhi
	ScriptGujarati
	ScriptOriya
	ScriptTamil
	ScriptTelugu
	ScriptKannada
	ScriptMalayalam
	ScriptSinhala
	ScriptThai
	ScriptLao
	ScriptTibetan
	ScriptMyanmar
	ScriptGeorgian
	ScriptHangulJamo
	ScriptEthiopic
	ScriptEthiopicSupplement
	ScriptCherokee
	ScriptCanadianSyllabics
	ScriptOgham
	ScriptRunic
	ScriptTagalog
	ScriptHanunoo
	ScriptBuhid
	ScriptTagbanwa
	ScriptKhmer
	ScriptMongolian
	ScriptCanadianSyllabicsExtended
	ScriptLimbu
	ScriptTaiLe
	ScriptNewTaiLue
	ScriptKhmerSymbols
	ScriptBuginese
	ScriptTaiTham
	ScriptBalinese
	ScriptSundanese
	ScriptBatak
	ScriptLepcha
	ScriptOlChiki
	ScriptVedicExtensions
	ScriptPhoneticExtensions
	ScriptPhoneticExtensionsSupplement
	ScriptCombiningDiacriticalMarksSupplement
	ScriptLatinExtendedAdditional
	ScriptGreekExtended
	ScriptGeneralPunctuation
	ScriptSuperscriptsAndSubscripts
	ScriptLetterlikeSymbols
	ScriptNumberForms
	ScriptGlagolitic
	ScriptLatinExtendedC
	ScriptCoptic
	ScriptGeorgianSupplement
	ScriptTifinagh
	ScriptEthiopicExtended
	ScriptCyrillicExtendedA
	ScriptSupplementalPunctuation
	ScriptCJKRadicalsSupplement
	ScriptKangxiRadicals
	ScriptCJKSymbolsAndPunctuation
	ScriptHiragana
	ScriptKatakana
	ScriptBopomofo
	ScriptHangulCompatibilityJamo
	ScriptKanbun
	ScriptBopomofoExtended
	ScriptKatakanaPhoneticExtensions
	ScriptEnclosedCJKLettersAndMonths
	ScriptCJKCompatibility
	ScriptCJKUnifiedIdeographsExtensionA
	ScriptYijingHexagramSymbols
	ScriptCJKUnifiedIdeographs
	ScriptYiSyllables
	ScriptYiRadicals
	ScriptLisu
	ScriptVai
	ScriptCyrillicExtendedB
	ScriptBamum
	ScriptModifierToneLetters
	ScriptLatinExtendedD
	ScriptSylotiNagri
	ScriptPhagsPa
	ScriptSaurashtra
	ScriptDevanagariExtended
	ScriptKayahLi
	ScriptRejang
	ScriptHangulJamoExtendedA
	ScriptJavanese
	ScriptCham
	ScriptMyanmarExtendedA
	ScriptTaiViet
	ScriptEthiopicExtendedA
	ScriptMeeteiMayek
	ScriptHangulSyllables
	ScriptHangulJamoExtendedB
	ScriptCJKCompatibilityIdeographs
	ScriptAlphabeticPresentationForms
	ScriptArabicPresentationFormsA
	ScriptArabicPresentationFormsB
	ScriptHalfwidthAndFullwidthForms
	ScriptHangul // Hangul Syllables, Hangul Jamo and Hangul Compatibility Jamo, merged
	numScripts
)

var scriptNames = [...]string{
	ScriptOther:                               "No Block",
	ScriptBasicLatin:                          "Basic Latin",
	ScriptExtendedLatin:                       "Extended Latin",
	ScriptIPAExtensions:                       "IPA Extensions",
	ScriptSpacingModifierLetters:              "Spacing Modifier Letters",
	ScriptCombiningDiacriticalMarks:           "Combining Diacritical Marks",
	ScriptGreekAndCoptic:                      "Greek and Coptic",
	ScriptCyrillic:                            "Cyrillic",
	ScriptCyrillicSupplement:                  "Cyrillic Supplement",
	ScriptArmenian:                            "Armenian",
	ScriptHebrew:                              "Hebrew",
	ScriptArabic:                              "Arabic",
	ScriptSyriac:                              "Syriac",
	ScriptArabicSupplement:                    "Arabic Supplement",
	ScriptThaana:                              "Thaana",
	ScriptNKo:                                 "NKo",
	ScriptSamaritan:                           "Samaritan",
	ScriptMandaic:                             "Mandaic",
	ScriptArabicExtendedA:                     "Arabic Extended-A",
	ScriptDevanagari:                          "Devanagari",
	ScriptBengali:                             "Bengali",
	ScriptGurmukhi:                            "Gurmukhi",
	ScriptGujarati:                            "Gujarati",
	ScriptOriya:                               "Oriya",
	ScriptTamil:                               "Tamil",
	ScriptTelugu:                              "Telugu",
	ScriptKannada:                             "Kannada",
	ScriptMalayalam:                           "Malayalam",
	ScriptSinhala:                             "Sinhala",
	ScriptThai:                                "Thai",
	ScriptLao:                                 "Lao",
	ScriptTibetan:                             "Tibetan",
	ScriptMyanmar:                             "Myanmar",
	ScriptGeorgian:                            "Georgian",
	ScriptHangulJamo:                          "Hangul Jamo",
	ScriptEthiopic:                            "Ethiopic",
	ScriptEthiopicSupplement:                  "Ethiopic Supplement",
	ScriptCherokee:                            "Cherokee",
	ScriptCanadianSyllabics:                   "Unified Canadian Aboriginal Syllabics",
	ScriptOgham:                               "Ogham",
	ScriptRunic:                               "Runic",
	ScriptTagalog:                             "Tagalog",
	ScriptHanunoo:                             "Hanunoo",
	ScriptBuhid:                               "Buhid",
	ScriptTagbanwa:                            "Tagbanwa",
	ScriptKhmer:                               "Khmer",
	ScriptMongolian:                           "Mongolian",
	ScriptCanadianSyllabicsExtended:           "Unified Canadian Aboriginal Syllabics Extended",
	ScriptLimbu:                               "Limbu",
	ScriptTaiLe:                               "Tai Le",
	ScriptNewTaiLue:                           "New Tai Lue",
	ScriptKhmerSymbols:                        "Khmer Symbols",
	ScriptBuginese:                            "Buginese",
	ScriptTaiTham:                             "Tai Tham",
	ScriptBalinese:                            "Balinese",
	ScriptSundanese:                           "Sundanese",
	ScriptBatak:                               "Batak",
	ScriptLepcha:                              "Lepcha",
	ScriptOlChiki:                             "Ol Chiki",
	ScriptVedicExtensions:                     "Vedic Extensions",
	ScriptPhoneticExtensions:                  "Phonetic Extensions",
	ScriptPhoneticExtensionsSupplement:        "Phonetic Extensions Supplement",
	ScriptCombiningDiacriticalMarksSupplement: "Combining Diacritical Marks Supplement",
	ScriptLatinExtendedAdditional:             "Latin Extended Additional",
	ScriptGreekExtended:                       "Greek Extended",
	ScriptGeneralPunctuation:                  "General Punctuation",
	ScriptSuperscriptsAndSubscripts:           "Superscripts and Subscripts",
	ScriptLetterlikeSymbols:                   "Letterlike Symbols",
	ScriptNumberForms:                         "Number Forms",
	ScriptGlagolitic:                          "Glagolitic",
	ScriptLatinExtendedC:                      "Latin Extended-C",
	ScriptCoptic:                              "Coptic",
	ScriptGeorgianSupplement:                  "Georgian Supplement",
	ScriptTifinagh:                            "Tifinagh",
	ScriptEthiopicExtended:                    "Ethiopic Extended",
	ScriptCyrillicExtendedA:                   "Cyrillic Extended-A",
	ScriptSupplementalPunctuation:             "Supplemental Punctuation",
	ScriptCJKRadicalsSupplement:               "CJK Radicals Supplement",
	ScriptKangxiRadicals:                      "Kangxi Radicals",
	ScriptCJKSymbolsAndPunctuation:            "CJK Symbols and Punctuation",
	ScriptHiragana:                            "Hiragana",
	ScriptKatakana:                            "Katakana",
	ScriptBopomofo:                            "Bopomofo",
	ScriptHangulCompatibilityJamo:             "Hangul Compatibility Jamo",
	ScriptKanbun:                              "Kanbun",
	ScriptBopomofoExtended:                    "Bopomofo Extended",
	ScriptKatakanaPhoneticExtensions:          "Katakana Phonetic Extensions",
	ScriptEnclosedCJKLettersAndMonths:         "Enclosed CJK Letters and Months",
	ScriptCJKCompatibility:                    "CJK Compatibility",
	ScriptCJKUnifiedIdeographsExtensionA:      "CJK Unified Ideographs Extension A",
	ScriptYijingHexagramSymbols:               "Yijing Hexagram Symbols",
	ScriptCJKUnifiedIdeographs:                "CJK Unified Ideographs",
	ScriptYiSyllables:                         "Yi Syllables",
	ScriptYiRadicals:                          "Yi Radicals",
	ScriptLisu:                                "Lisu",
	ScriptVai:                                 "Vai",
	ScriptCyrillicExtendedB:                   "Cyrillic Extended-B",
	ScriptBamum:                               "Bamum",
	ScriptModifierToneLetters:                 "Modifier Tone Letters",
	ScriptLatinExtendedD:                      "Latin Extended-D",
	ScriptSylotiNagri:                         "Syloti Nagri",
	ScriptPhagsPa:                             "Phags-pa",
	ScriptSaurashtra:                          "Saurashtra",
	ScriptDevanagariExtended:                  "Devanagari Extended",
	ScriptKayahLi:                             "Kayah Li",
	ScriptRejang:                              "Rejang",
	ScriptHangulJamoExtendedA:                 "Hangul Jamo Extended-A",
	ScriptJavanese:                            "Javanese",
	ScriptCham:                                "Cham",
	ScriptMyanmarExtendedA:                    "Myanmar Extended-A",
	ScriptTaiViet:                             "Tai Viet",
	ScriptEthiopicExtendedA:                   "Ethiopic Extended-A",
	ScriptMeeteiMayek:                         "Meetei Mayek",
	ScriptHangulSyllables:                     "Hangul Syllables",
	ScriptHangulJamoExtendedB:                 "Hangul Jamo Extended-B",
	ScriptCJKCompatibilityIdeographs:          "CJK Compatibility Ideographs",
	ScriptAlphabeticPresentationForms:         "Alphabetic Presentation Forms",
	ScriptArabicPresentationFormsA:            "Arabic Presentation Forms-A",
	ScriptArabicPresentationFormsB:            "Arabic Presentation Forms-B",
	ScriptHalfwidthAndFullwidthForms:          "Halfwidth and Fullwidth Forms",
	ScriptHangul:                              "Hangul",
}

// String returns the Unicode block name of s.
func (s Script) String() string {
	if int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return scriptNames[ScriptOther]
}

// blockRanges lists the BMP blocks in ascending order.
var blockRanges = []struct {
	from, to rune
	script   Script
}{
	{0x0000, 0x007F, ScriptBasicLatin},
	{0x0080, 0x00FF, ScriptExtendedLatin},
	{0x0100, 0x017F, ScriptExtendedLatin},
	{0x0180, 0x024F, ScriptExtendedLatin},
	{0x0250, 0x02AF, ScriptIPAExtensions},
	{0x02B0, 0x02FF, ScriptSpacingModifierLetters},
	{0x0300, 0x036F, ScriptCombiningDiacriticalMarks},
	{0x0370, 0x03FF, ScriptGreekAndCoptic},
	{0x0400, 0x04FF, ScriptCyrillic},
	{0x0500, 0x052F, ScriptCyrillicSupplement},
	{0x0530, 0x058F, ScriptArmenian},
	{0x0590, 0x05FF, ScriptHebrew},
	{0x0600, 0x06FF, ScriptArabic},
	{0x0700, 0x074F, ScriptSyriac},
	{0x0750, 0x077F, ScriptArabicSupplement},
	{0x0780, 0x07BF, ScriptThaana},
	{0x07C0, 0x07FF, ScriptNKo},
	{0x0800, 0x083F, ScriptSamaritan},
	{0x0840, 0x085F, ScriptMandaic},
	{0x08A0, 0x08FF, ScriptArabicExtendedA},
	{0x0900, 0x097F, ScriptDevanagari},
	{0x0980, 0x09FF, ScriptBengali},
	{0x0A00, 0x0A7F, ScriptGurmukhi},
	{0x0A80, 0x0AFF, ScriptGujarati},
	{0x0B00, 0x0B7F, ScriptOriya},
	{0x0B80, 0x0BFF, ScriptTamil},
	{0x0C00, 0x0C7F, ScriptTelugu},
	{0x0C80, 0x0CFF, ScriptKannada},
	{0x0D00, 0x0D7F, ScriptMalayalam},
	{0x0D80, 0x0DFF, ScriptSinhala},
	{0x0E00, 0x0E7F, ScriptThai},
	{0x0E80, 0x0EFF, ScriptLao},
	{0x0F00, 0x0FFF, ScriptTibetan},
	{0x1000, 0x109F, ScriptMyanmar},
	{0x10A0, 0x10FF, ScriptGeorgian},
	{0x1100, 0x11FF, ScriptHangulJamo},
	{0x1200, 0x137F, ScriptEthiopic},
	{0x1380, 0x139F, ScriptEthiopicSupplement},
	{0x13A0, 0x13FF, ScriptCherokee},
	{0x1400, 0x167F, ScriptCanadianSyllabics},
	{0x1680, 0x169F, ScriptOgham},
	{0x16A0, 0x16FF, ScriptRunic},
	{0x1700, 0x171F, ScriptTagalog},
	{0x1720, 0x173F, ScriptHanunoo},
	{0x1740, 0x175F, ScriptBuhid},
	{0x1760, 0x177F, ScriptTagbanwa},
	{0x1780, 0x17FF, ScriptKhmer},
	{0x1800, 0x18AF, ScriptMongolian},
	{0x18B0, 0x18FF, ScriptCanadianSyllabicsExtended},
	{0x1900, 0x194F, ScriptLimbu},
	{0x1950, 0x197F, ScriptTaiLe},
	{0x1980, 0x19DF, ScriptNewTaiLue},
	{0x19E0, 0x19FF, ScriptKhmerSymbols},
	{0x1A00, 0x1A1F, ScriptBuginese},
	{0x1A20, 0x1AAF, ScriptTaiTham},
	{0x1B00, 0x1B7F, ScriptBalinese},
	{0x1B80, 0x1BBF, ScriptSundanese},
	{0x1BC0, 0x1BFF, ScriptBatak},
	{0x1C00, 0x1C4F, ScriptLepcha},
	{0x1C50, 0x1C7F, ScriptOlChiki},
	{0x1CD0, 0x1CFF, ScriptVedicExtensions},
	{0x1D00, 0x1D7F, ScriptPhoneticExtensions},
	{0x1D80, 0x1DBF, ScriptPhoneticExtensionsSupplement},
	{0x1DC0, 0x1DFF, ScriptCombiningDiacriticalMarksSupplement},
	{0x1E00, 0x1EFF, ScriptLatinExtendedAdditional},
	{0x1F00, 0x1FFF, ScriptGreekExtended},
	{0x2000, 0x206F, ScriptGeneralPunctuation},
	{0x2070, 0x209F, ScriptSuperscriptsAndSubscripts},
	{0x2100, 0x214F, ScriptLetterlikeSymbols},
	{0x2150, 0x218F, ScriptNumberForms},
	{0x2C00, 0x2C5F, ScriptGlagolitic},
	{0x2C60, 0x2C7F, ScriptLatinExtendedC},
	{0x2C80, 0x2CFF, ScriptCoptic},
	{0x2D00, 0x2D2F, ScriptGeorgianSupplement},
	{0x2D30, 0x2D7F, ScriptTifinagh},
	{0x2D80, 0x2DDF, ScriptEthiopicExtended},
	{0x2DE0, 0x2DFF, ScriptCyrillicExtendedA},
	{0x2E00, 0x2E7F, ScriptSupplementalPunctuation},
	{0x2E80, 0x2EFF, ScriptCJKRadicalsSupplement},
	{0x2F00, 0x2FDF, ScriptKangxiRadicals},
	{0x3000, 0x303F, ScriptCJKSymbolsAndPunctuation},
	{0x3040, 0x309F, ScriptHiragana},
	{0x30A0, 0x30FF, ScriptKatakana},
	{0x3100, 0x312F, ScriptBopomofo},
	{0x3130, 0x318F, ScriptHangulCompatibilityJamo},
	{0x3190, 0x319F, ScriptKanbun},
	{0x31A0, 0x31BF, ScriptBopomofoExtended},
	{0x31F0, 0x31FF, ScriptKatakanaPhoneticExtensions},
	{0x3200, 0x32FF, ScriptEnclosedCJKLettersAndMonths},
	{0x3300, 0x33FF, ScriptCJKCompatibility},
	{0x3400, 0x4DBF, ScriptCJKUnifiedIdeographsExtensionA},
	{0x4DC0, 0x4DFF, ScriptYijingHexagramSymbols},
	{0x4E00, 0x9FFF, ScriptCJKUnifiedIdeographs},
	{0xA000, 0xA48F, ScriptYiSyllables},
	{0xA490, 0xA4CF, ScriptYiRadicals},
	{0xA4D0, 0xA4FF, ScriptLisu},
	{0xA500, 0xA63F, ScriptVai},
	{0xA640, 0xA69F, ScriptCyrillicExtendedB},
	{0xA6A0, 0xA6FF, ScriptBamum},
	{0xA700, 0xA71F, ScriptModifierToneLetters},
	{0xA720, 0xA7FF, ScriptLatinExtendedD},
	{0xA800, 0xA82F, ScriptSylotiNagri},
	{0xA840, 0xA87F, ScriptPhagsPa},
	{0xA880, 0xA8DF, ScriptSaurashtra},
	{0xA8E0, 0xA8FF, ScriptDevanagariExtended},
	{0xA900, 0xA92F, ScriptKayahLi},
	{0xA930, 0xA95F, ScriptRejang},
	{0xA960, 0xA97F, ScriptHangulJamoExtendedA},
	{0xA980, 0xA9DF, ScriptJavanese},
	{0xAA00, 0xAA5F, ScriptCham},
	{0xAA60, 0xAA7F, ScriptMyanmarExtendedA},
	{0xAA80, 0xAADF, ScriptTaiViet},
	{0xAB00, 0xAB2F, ScriptEthiopicExtendedA},
	{0xABC0, 0xABFF, ScriptMeeteiMayek},
	{0xAC00, 0xD7AF, ScriptHangulSyllables},
	{0xD7B0, 0xD7FF, ScriptHangulJamoExtendedB},
	{0xF900, 0xFAFF, ScriptCJKCompatibilityIdeographs},
	{0xFB00, 0xFB4F, ScriptAlphabeticPresentationForms},
	{0xFB50, 0xFDFF, ScriptArabicPresentationFormsA},
	{0xFE70, 0xFEFF, ScriptArabicPresentationFormsB},
	{0xFF00, 0xFFEF, ScriptHalfwidthAndFullwidthForms},
}

var blockMap pagemap.BMP

func init() {
	for _, b := range blockRanges {
		blockMap.SetRange(b.from, b.to, uint16(b.script))
	}
}

// blockOf returns the Unicode block of r.
func blockOf(r rune) Script {
	return Script(blockMap.Lookup(r))
}

// mergedBlocks folds blocks into the category they are counted with. These
// sub-blocks are used by the same languages; counting them separately would
// dilute their signal.
var mergedBlocks = map[Script]Script{
	ScriptBopomofo:                 ScriptCJKUnifiedIdeographs,
	ScriptBopomofoExtended:         ScriptCJKUnifiedIdeographs,
	ScriptKangxiRadicals:           ScriptCJKUnifiedIdeographs,
	ScriptArabicPresentationFormsA: ScriptCJKUnifiedIdeographs,
	ScriptArabicPresentationFormsB: ScriptArabic,

	ScriptHangulSyllables:         ScriptHangul,
	ScriptHangulJamo:              ScriptHangul,
	ScriptHangulCompatibilityJamo: ScriptHangul,

	ScriptKatakana:                   ScriptHiragana,
	ScriptKatakanaPhoneticExtensions: ScriptHiragana,
}

// Profile counts the letters of a normalized text per script and returns the
// scripts in order of descending count. Ties are ordered by descending block
// name. Text without letters yields an empty profile.
//
// Ideographs are ambiguous between Chinese, Japanese and Korean. If the text
// contains kana as well, the ideograph count is added to the Hiragana count;
// if it contains Hangul, it is added to the Hangul count. Both may happen for
// the same text.
func Profile(text string) []Script {
	var counts [numScripts]int
	for _, r := range text {
		if unicode.IsLetter(r) {
			counts[blockOf(r)]++
		}
	}
	for from, to := range mergedBlocks {
		counts[to] += counts[from]
		counts[from] = 0
	}
	if cjk := counts[ScriptCJKUnifiedIdeographs]; cjk > 0 {
		if counts[ScriptHiragana] > 0 {
			counts[ScriptHiragana] += cjk
		}
		if counts[ScriptHangul] > 0 {
			counts[ScriptHangul] += cjk
		}
	}
	scripts := make([]Script, 0, 4)
	for s, n := range counts {
		if n > 0 {
			scripts = append(scripts, Script(s))
		}
	}
	sort.Slice(scripts, func(i, j int) bool {
		a, b := scripts[i], scripts[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return a.String() > b.String()
	})
	return scripts
}
