package langguess

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "Hello, World!", want: "Hello World "},
		{in: "  tabs\tand\nnewlines  ", want: " tabs and newlines "},
		{in: "1234 !?", want: " "},
		{in: "e\u0301te\u0301", want: "\u00e9t\u00e9"}, // combining acute composes
		{in: "don't", want: "don t"},
		{in: "Москва-2024", want: "Москва "},
		{in: "日本語、テスト。", want: "日本語 テスト "},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"The quick brown fox -- jumps!!",
		"ä́ x̣",
		"ខ្មែរ ភាសា",
		"ᄀ́ᅡ",
		"\t\n    ",
		"Ελληνικά, 123, עברית",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
