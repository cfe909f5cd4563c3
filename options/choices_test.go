package options

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeChoices(t *testing.T) {
	got, err := NormalizeChoices(
		map[string]int{"easy": 0, "hard": 1},
		map[string]int{"normal": 0},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]int{"option_easy": 0, "option_hard": 1, "alias_normal": 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizeChoicesEmpty(t *testing.T) {
	got, err := NormalizeChoices(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty attribute set, got %v", got)
	}
}

func TestNormalizeChoicesCollision(t *testing.T) {
	_, err := NormalizeChoices(map[string]int{"Easy": 0, "easy": 1}, nil)
	if !errors.Is(err, ErrChoiceCollision) {
		t.Fatalf("expected ErrChoiceCollision, got %v", err)
	}
}

func TestMergeChoicesKeepsExisting(t *testing.T) {
	base := map[string]int{"option_a": 0, "option_b": 1}
	got := mergeChoices(base, map[string]int{"option_a": 7, "alias_win": 0})
	want := map[string]int{"option_a": 0, "option_b": 1, "alias_win": 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if _, ok := base["alias_win"]; ok {
		t.Fatalf("merge must not mutate the base map")
	}
}

func TestSpecChoiceAccessors(t *testing.T) {
	spec := &Spec{Choices: map[string]int{"option_hard": 1, "option_easy": 0, "alias_normal": 0}}
	options := spec.ChoiceOptions()
	if len(options) != 2 || options[0].Name != "easy" || options[1].Name != "hard" {
		t.Fatalf("unexpected choice options: %+v", options)
	}
	aliases := spec.ChoiceAliases()
	if len(aliases) != 1 || aliases[0] != (Choice{Name: "normal", Value: 0}) {
		t.Fatalf("unexpected aliases: %+v", aliases)
	}
}
