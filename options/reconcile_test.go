package options

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-manual-options/logger"
)

func reconcileFields(t *testing.T, existing *Spec, fields map[string]any) *Spec {
	t.Helper()
	entry, err := decodeEntry(Row{Name: existing.Name, Fields: fields}, false)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	spec, err := reconcileEntry(existing, entry, logger.Nop{})
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	return spec
}

func hookToggle() *Spec {
	return &Spec{
		Name:        "deathlink_extra",
		Kind:        KindToggle,
		Origin:      OriginHook,
		DisplayName: "Extra",
		Doc:         "Provided by a hook.",
		RichTextDoc: "**rich**",
		Default:     false,
		Visibility:  VisibilityTemplate,
	}
}

func TestReconcileKeepsExistingFields(t *testing.T) {
	existing := hookToggle()
	spec := reconcileFields(t, existing, map[string]any{})

	if !reflect.DeepEqual(spec, existing) {
		t.Fatalf("empty entry must not change the spec\nwant %#v\ngot  %#v", existing, spec)
	}
	if spec == existing {
		t.Fatalf("reconcile must return a copy")
	}
}

func TestReconcileOverridesDeclaredFields(t *testing.T) {
	spec := reconcileFields(t, hookToggle(), map[string]any{
		"display_name":  "Renamed",
		"description":   "New doc.",
		"rich_text_doc": "new rich",
		"default":       true,
		"visibility":    "spoiler",
	})
	if spec.DisplayName != "Renamed" || spec.Doc != "New doc." || spec.RichTextDoc != "new rich" {
		t.Fatalf("unexpected documentation: %#v", spec)
	}
	if spec.Default != true {
		t.Fatalf("expected default true, got %#v", spec.Default)
	}
	if spec.Visibility != VisibilitySpoiler {
		t.Fatalf("expected spoiler visibility, got %s", spec.Visibility)
	}
}

func TestReconcileNeverChangesKind(t *testing.T) {
	spec := reconcileFields(t, hookToggle(), map[string]any{
		"type":   "range",
		"values": map[string]any{"low": 1},
	})
	if spec.Kind != KindToggle {
		t.Fatalf("expected kind to stay Toggle, got %s", spec.Kind)
	}
	if spec.SpecialRangeNames != nil || spec.Choices != nil {
		t.Fatalf("payload must not change: %#v", spec)
	}
}

func TestReconcileFalsyValuesAreIgnored(t *testing.T) {
	existing := hookToggle()
	existing.Default = true
	spec := reconcileFields(t, existing, map[string]any{
		"display_name":  "",
		"rich_text_doc": "",
		"default":       false,
		"visibility":    []any{},
	})
	if spec.DisplayName != "Extra" || spec.RichTextDoc != "**rich**" {
		t.Fatalf("falsy documentation must not overwrite: %#v", spec)
	}
	if spec.Default != true {
		t.Fatalf("falsy default must not overwrite, got %#v", spec.Default)
	}
	if spec.Visibility != VisibilityTemplate {
		t.Fatalf("falsy visibility must not overwrite, got %s", spec.Visibility)
	}
}

func TestReconcileHiddenWins(t *testing.T) {
	spec := reconcileFields(t, hookToggle(), map[string]any{
		"hidden":     true,
		"visibility": "all",
	})
	if spec.Visibility != VisibilityNone {
		t.Fatalf("expected hidden option, got %s", spec.Visibility)
	}
}

func TestReconcileGoalMergesAliases(t *testing.T) {
	goal := GoalOption([]string{"defeat_boss", "collect_all"})
	spec := reconcileFields(t, goal, map[string]any{
		"aliases": map[string]any{"win": 0},
		"values":  map[string]any{"defeat_boss": 5, "speedrun": 2},
	})
	want := map[string]int{
		"option_defeat_boss": 0,
		"option_collect_all": 1,
		"option_speedrun":    2,
		"alias_win":          0,
	}
	if !reflect.DeepEqual(spec.Choices, want) {
		t.Fatalf("expected superset %v, got %v", want, spec.Choices)
	}
	if !reflect.DeepEqual(goal.Choices, map[string]int{"option_defeat_boss": 0, "option_collect_all": 1}) {
		t.Fatalf("existing spec must not be mutated: %v", goal.Choices)
	}
}

func TestReconcileOnlyGoalSelectorMergesChoices(t *testing.T) {
	existing := &Spec{
		Name:    "mode",
		Kind:    KindChoice,
		Origin:  OriginHook,
		Choices: map[string]int{"option_a": 0},
	}
	spec := reconcileFields(t, existing, map[string]any{"aliases": map[string]any{"b": 0}})
	if !reflect.DeepEqual(spec.Choices, map[string]int{"option_a": 0}) {
		t.Fatalf("choices of non goal options must not change, got %v", spec.Choices)
	}
}
