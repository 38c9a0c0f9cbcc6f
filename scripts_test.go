package langguess

import (
	"reflect"
	"testing"
)

func TestBlockOf(t *testing.T) {
	tests := []struct {
		r    rune
		want Script
	}{
		{r: 'a', want: ScriptBasicLatin},
		{r: 'é', want: ScriptExtendedLatin},
		{r: 'ő', want: ScriptExtendedLatin},
		{r: 'ǎ', want: ScriptExtendedLatin},
		{r: 'ạ', want: ScriptLatinExtendedAdditional},
		{r: 'λ', want: ScriptGreekAndCoptic},
		{r: 'ж', want: ScriptCyrillic},
		{r: 'ش', want: ScriptArabic},
		{r: 'の', want: ScriptHiragana},
		{r: 'カ', want: ScriptKatakana},
		{r: '한', want: ScriptHangulSyllables},
		{r: '中', want: ScriptCJKUnifiedIdeographs},
		{r: 0x20000, want: ScriptOther}, // CJK extension B, outside the BMP
	}
	for _, tt := range tests {
		if got := blockOf(tt.r); got != tt.want {
			t.Fatalf("block of %q: got %s, want %s", tt.r, got, tt.want)
		}
	}
}

func TestScriptNames(t *testing.T) {
	if len(scriptNames) != int(numScripts) {
		t.Fatalf("%d script names for %d scripts", len(scriptNames), numScripts)
	}
	for s := ScriptOther; s < numScripts; s++ {
		if s.String() == "" {
			t.Fatalf("script %d has no name", s)
		}
	}
	if ScriptExtendedLatin.String() != "Extended Latin" {
		t.Fatalf("unexpected name %q", ScriptExtendedLatin.String())
	}
	if Script(9999).String() != "No Block" {
		t.Fatalf("out-of-range script should be named No Block")
	}
}

func TestBlockRangesSorted(t *testing.T) {
	for i := 1; i < len(blockRanges); i++ {
		if blockRanges[i].from <= blockRanges[i-1].to {
			t.Fatalf("block ranges overlap or unsorted at %U", blockRanges[i].from)
		}
	}
}

func TestProfile(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Script
	}{
		{name: "empty", in: "", want: []Script{}},
		{name: "no letters", in: "123 !?", want: []Script{}},
		{name: "basic latin", in: "Hello world", want: []Script{ScriptBasicLatin}},
		{name: "latin mix", in: "ñandú", want: []Script{ScriptBasicLatin, ScriptExtendedLatin}},
		{name: "vietnamese", in: "Việt Nam", want: []Script{ScriptBasicLatin, ScriptLatinExtendedAdditional}},
		{name: "ties by name", in: "ab αβ", want: []Script{ScriptGreekAndCoptic, ScriptBasicLatin}},
		{name: "katakana merged", in: "コンピュータ", want: []Script{ScriptHiragana}},
		{name: "presentation forms", in: "ﻣﺮﺣﺒﺎ", want: []Script{ScriptArabic}},
		{name: "presentation forms A", in: "\ufb50\ufb51\ufb52\ufb53", want: []Script{ScriptCJKUnifiedIdeographs}},
		{name: "ethiopic before greek", in: "ሰላምሰላምሰላም αβ", want: []Script{ScriptEthiopic, ScriptGreekAndCoptic}},
		{name: "japanese boost", in: "日本語の文章です", want: []Script{ScriptHiragana, ScriptCJKUnifiedIdeographs}},
		{name: "korean boost", in: "大韓民國 만세", want: []Script{ScriptHangul, ScriptCJKUnifiedIdeographs}},
		{name: "double boost", in: "漢字 かな 한글",
			want: []Script{ScriptHiragana, ScriptHangul, ScriptCJKUnifiedIdeographs}},
	}
	for _, tt := range tests {
		if got := Profile(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%s: Profile(%q) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestDispatchCoversDecisiveScripts(t *testing.T) {
	for _, s := range []Script{ScriptHangul, ScriptGreekAndCoptic, ScriptHiragana,
		ScriptCJKUnifiedIdeographs, ScriptCyrillic, ScriptArabic, ScriptDevanagari,
		ScriptMyanmar, ScriptMongolian, ScriptLatinExtendedAdditional} {
		if !dispatch[s].decisive() {
			t.Fatalf("%s should be decisive", s)
		}
	}
	for _, s := range []Script{ScriptOther, ScriptGreekExtended, ScriptEthiopic, ScriptCherokee} {
		if dispatch[s].decisive() {
			t.Fatalf("%s should not be decisive", s)
		}
	}
	if code, ok := Decision(ScriptMongolian); !ok || code != "mn-Mong" {
		t.Fatalf("Mongolian script should decide mn-Mong, got %s", code)
	}
	if _, ok := Decision(ScriptCyrillic); ok {
		t.Fatalf("Cyrillic should be scored, not decided")
	}
	if c := Candidates(ScriptBasicLatin); len(c) != len(basicLatin)+len(extendedLatin) || c[0] != "en" {
		t.Fatalf("unexpected basic latin candidates %v", c)
	}
}
