package options

import (
	"sort"
	"strings"

	"github.com/mitchellh/copystructure"
)

const (
	choicePrefix = "option_"
	aliasPrefix  = "alias_"
)

// Spec is one compiled option definition.
//
// Which payload fields matter depends on Kind: Choices for the choice family,
// RangeStart/RangeEnd/SpecialRangeNames for the range family, Framework for
// KindFramework (and for toggles backed by a host class such as DeathLink).
type Spec struct {
	Name        string
	Kind        Kind
	Origin      Origin
	Framework   string
	DisplayName string
	Doc         string
	RichTextDoc string
	Default     any
	Visibility  Visibility

	// Choices is the flat attribute set produced by NormalizeChoices.
	Choices map[string]int

	RangeStart        int
	RangeEnd          int
	SpecialRangeNames map[string]int
}

// Clone returns a deep copy of s.
func (s *Spec) Clone() *Spec {
	if s == nil {
		return nil
	}
	cloned, err := copystructure.Copy(*s)
	if err != nil {
		// Spec only holds plain values and maps; fall back to a shallow copy
		// with fresh maps.
		out := *s
		out.Choices = copyIntMap(s.Choices)
		out.SpecialRangeNames = copyIntMap(s.SpecialRangeNames)
		return &out
	}
	out := cloned.(Spec)
	return &out
}

// Choice is a single named value of a choice-family option.
type Choice struct {
	Name  string
	Value int
}

// ChoiceOptions returns the primary choices sorted by value, then name.
func (s *Spec) ChoiceOptions() []Choice {
	return s.choicesWithPrefix(choicePrefix)
}

// ChoiceAliases returns the alias choices sorted by value, then name.
func (s *Spec) ChoiceAliases() []Choice {
	return s.choicesWithPrefix(aliasPrefix)
}

func (s *Spec) choicesWithPrefix(prefix string) []Choice {
	if s == nil {
		return nil
	}
	out := make([]Choice, 0, len(s.Choices))
	for key, value := range s.Choices {
		if name, ok := strings.CutPrefix(key, prefix); ok {
			out = append(out, Choice{Name: name, Value: value})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value < out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func copyIntMap(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// implicitDefault is the default the host class carries when none was declared.
func implicitDefault(spec *Spec) any {
	switch spec.Kind {
	case KindToggle:
		return false
	case KindDefaultOnToggle:
		return true
	case KindChoice, KindTextChoice:
		return 0
	case KindRange, KindNamedRange:
		return spec.RangeStart
	default:
		return nil
	}
}
