package template

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractVariables(t *testing.T) {
	tests := []struct {
		name string
		lang Language
		text string
		want []string
	}{
		{"mustache", Mustache, "Hello {{name}}, you are {{ age }}.", []string{"name", "age"}},
		{"mustache duplicates", Mustache, "{{a}} {{b}} {{a}}", []string{"a", "b"}},
		{"mustache escaped", Mustache, `\{{literal}} {{real}}`, []string{"real"}},
		{"mustache unterminated", Mustache, "{{a}} {{b", []string{"a"}},
		{"mustache empty tag", Mustache, "{{ }}", nil},
		{"fstring", FString, "Hello {name}, {{not}} {age}", []string{"name", "age"}},
		{"fstring closing escape", FString, "}} {x}", []string{"x"}},
		{"fstring unterminated", FString, "{a} {b", []string{"a"}},
		{"none", None, "{{a}} {b}", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractVariables(tt.lang, tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ExtractVariables mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	for in, want := range map[string]Language{"mustache": Mustache, " F_STRING ": FString, "none": None} {
		got, err := ParseLanguage(in)
		if err != nil || got != want {
			t.Fatalf("ParseLanguage(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseLanguage("jinja"); err == nil {
		t.Fatal("expected error for unknown language")
	}
}
