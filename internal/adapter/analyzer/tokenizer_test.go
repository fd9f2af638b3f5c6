package analyzer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Hello World", []string{"hello", "world"}},
		{"  spaced\tout\ntokens  ", []string{"spaced", "out", "tokens"}},
		{"Conscienciologia estuda a consciência.", []string{"conscienciologia", "estuda", "a", "consciência."}},
		{"", nil},
		{"   \n\t  ", nil},
	}

	for _, tt := range tests {
		got := Tokenize(tt.input)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"consci", "consciência", true},  // query inside content
		{"consciência", "consci", true},  // content inside query
		{"consciência", "consciência.", true},
		{"consciência", "consciente", false}, // overlap without containment
		{"a", "anything", true},              // known permissive edge
		{"alpha", "beta", false},
	}

	for _, tt := range tests {
		if got := Match(tt.a, tt.b); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
