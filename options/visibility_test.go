package options

import (
	"errors"
	"testing"
)

func TestParseVisibility(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Visibility
	}{
		{name: "absent defaults to all", input: nil, want: VisibilityAll},
		{name: "list is a union from none", input: []any{"spoiler", "template"}, want: VisibilitySpoiler | VisibilityTemplate},
		{name: "string list", input: []string{"simple_ui"}, want: VisibilitySimpleUI},
		{name: "empty list is none", input: []any{}, want: VisibilityNone},
		{name: "single tag replaces all", input: "spoiler", want: VisibilitySpoiler},
		{name: "tags are case insensitive", input: "Complex_UI", want: VisibilityComplexUI},
		{name: "binary string", input: "0b0101", want: VisibilityTemplate | VisibilityComplexUI},
		{name: "integer", input: 6, want: VisibilitySimpleUI | VisibilityComplexUI},
		{name: "json number", input: 8.0, want: VisibilitySpoiler},
		{name: "none tag", input: "none", want: VisibilityNone},
		{name: "true is the template bit", input: true, want: VisibilityTemplate},
		{name: "false is none", input: false, want: VisibilityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVisibility(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s (%d), got %s (%d)", tt.want, tt.want, got, got)
			}
		})
	}
}

func TestParseVisibilityListIsNotUnionWithAll(t *testing.T) {
	got, err := ParseVisibility([]any{"spoiler", "template"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == VisibilityAll || got.Has(VisibilitySimpleUI) {
		t.Fatalf("list must start from none, got %s", got)
	}
	if got != VisibilitySpoiler|VisibilityTemplate {
		t.Fatalf("expected spoiler|template, got %s", got)
	}
}

func TestParseVisibilityErrors(t *testing.T) {
	inputs := []any{
		"sometimes",
		[]any{"spoiler", "nowhere"},
		[]any{"spoiler", 3},
		"0bxyz",
		2.5,
		map[string]any{"a": 1},
	}
	for _, input := range inputs {
		_, err := ParseVisibility(input)
		if !errors.Is(err, ErrInvalidVisibility) {
			t.Fatalf("input %#v: expected ErrInvalidVisibility, got %v", input, err)
		}
	}
}

func TestVisibilityString(t *testing.T) {
	cases := map[Visibility]string{
		VisibilityNone:                          "none",
		VisibilityAll:                           "all",
		VisibilitySpoiler | VisibilityTemplate:  "template|spoiler",
		VisibilitySimpleUI:                      "simple_ui",
		Visibility(0b10000):                     "0b10000",
	}
	for v, want := range cases {
		if got := v.String(); got != want {
			t.Fatalf("visibility %d: expected %q, got %q", int(v), want, got)
		}
	}
}
