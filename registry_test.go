package langguess

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	if name, ok := r.Name("en"); !ok || name != "english" {
		t.Fatalf("name of en: got (%q, %v)", name, ok)
	}
	if id, ok := r.ID("en"); !ok || id != 26110 {
		t.Fatalf("id of en: got (%d, %v)", id, ok)
	}
	if name, _ := r.Name("uk"); name != "ukrainian" {
		t.Fatalf("name of uk: got %q", name)
	}
	if id, _ := r.ID("uk"); id != 26510 {
		t.Fatalf("id of uk: got %d", id)
	}
	if _, ok := r.Name("mn-Mong"); ok {
		t.Fatalf("mn-Mong should have no name")
	}
	if _, ok := r.ID("pt_BR"); ok {
		t.Fatalf("pt_BR should have no id")
	}
	if err := r.SetName("xx", "test"); !errors.Is(err, ErrFrozen) {
		t.Fatalf("default registry should be frozen, got %v", err)
	}
}

func TestRegistryInfo(t *testing.T) {
	r := NewRegistry()
	if err := r.SetName("mn-Mong", "mongolian"); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		code Code
		want string
	}{
		{code: "en", want: "en (26110, english)"},
		{code: "mn-Mong", want: "mn-Mong (UNKNOWN, mongolian)"},
		{code: "pt_PT", want: "pt_PT (UNKNOWN, UNKNOWN)"},
		{code: Unknown, want: "UNKNOWN (UNKNOWN, UNKNOWN)"},
	}
	for _, tt := range tests {
		if got := r.Info(tt.code).String(); got != tt.want {
			t.Fatalf("info of %s: got %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFindByName(t *testing.T) {
	r := NewRegistry()
	if got := r.FindByName("Port"); !reflect.DeepEqual(got, []Code{"pt"}) {
		t.Fatalf("FindByName(Port) = %v", got)
	}
	if got := r.FindByName("serb"); !reflect.DeepEqual(got, []Code{"sh", "sr"}) {
		t.Fatalf("FindByName(serb) = %v", got)
	}
	if got := r.FindByName("zzz"); len(got) != 0 {
		t.Fatalf("FindByName(zzz) = %v", got)
	}
	if err := r.SetName("sr", "srpski"); err != nil {
		t.Fatal(err)
	}
	if got := r.FindByName("serb"); !reflect.DeepEqual(got, []Code{"sh"}) {
		t.Fatalf("renamed code should not be found by its old name: %v", got)
	}
	if got := r.FindByName("srp"); !reflect.DeepEqual(got, []Code{"sr"}) {
		t.Fatalf("FindByName(srp) = %v", got)
	}
}

func TestRegistryCodes(t *testing.T) {
	r := NewRegistry()
	codes := r.Codes()
	if len(codes) != len(languageNames) {
		t.Fatalf("expected %d codes, got %d", len(languageNames), len(codes))
	}
	if err := r.SetID("pt_BR", 26391); err != nil {
		t.Fatal(err)
	}
	if len(r.Codes()) != len(codes)+1 {
		t.Fatalf("code with id only should be listed")
	}
}

func TestCodeTag(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{code: "en", want: "en"},
		{code: "pt_BR", want: "pt-BR"},
		{code: "mn-Mong", want: "mn-Mong"},
		{code: "zh-tw", want: "zh-TW"},
	}
	for _, tt := range tests {
		tag, err := tt.code.Tag()
		if err != nil {
			t.Fatalf("tag of %s: %v", tt.code, err)
		}
		if tag.String() != tt.want {
			t.Fatalf("tag of %s: got %s, want %s", tt.code, tag, tt.want)
		}
	}
	if _, err := Unknown.Tag(); err == nil {
		t.Fatalf("unknown code should have no tag")
	}
	if Unknown.String() != "UNKNOWN" || !Unknown.IsUnknown() {
		t.Fatalf("unexpected zero code %q", Unknown.String())
	}
}
