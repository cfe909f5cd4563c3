package options

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-errors"
)

const placeholderDoc = "an Option"

// SupportedTypes lists the option types a declarative entry may create.
var SupportedTypes = []string{"Toggle", "Choice", "Range"}

// compileEntry builds a new Spec for an option the working set does not know yet.
func compileEntry(name string, entry Entry) (*Spec, error) {
	spec := &Spec{
		Name:        name,
		Origin:      OriginTable,
		DisplayName: name,
		Visibility:  VisibilityAll,
	}
	if entry.DisplayName != nil {
		spec.DisplayName = *entry.DisplayName
	}

	switch strings.ToLower(strings.TrimSpace(entry.Type)) {
	case "toggle":
		spec.Kind = KindToggle
		if Truthy(entry.Default) {
			spec.Kind = KindDefaultOnToggle
		}
	case "choice":
		choices, err := NormalizeChoices(entry.Values, entry.Aliases)
		if err != nil {
			return nil, compileError(stageTable, name, ErrChoiceCollision, err, nil)
		}
		spec.Choices = choices
		spec.Kind = KindChoice
		if entry.AllowCustomValue {
			spec.Kind = KindTextChoice
		}
	case "range":
		spec.Kind = KindRange
		spec.RangeStart, spec.RangeEnd = 0, 1
		if entry.RangeStart != nil {
			spec.RangeStart = *entry.RangeStart
		}
		if entry.RangeEnd != nil {
			spec.RangeEnd = *entry.RangeEnd
		}
		if len(entry.Values) > 0 {
			spec.Kind = KindNamedRange
			spec.SpecialRangeNames = make(map[string]int, len(entry.Values)+1)
			for label, value := range entry.Values {
				spec.SpecialRangeNames[strings.ToLower(label)] = value
			}
			spec.SpecialRangeNames["default"] = spec.RangeStart
			if entry.Default != nil {
				if value, ok := asInt(entry.Default); ok {
					spec.SpecialRangeNames["default"] = value
				}
			}
		}
	default:
		return nil, invalidOptionType(name, entry.Type)
	}

	spec.Default = implicitDefault(spec)
	if Truthy(entry.Default) {
		spec.Default = entry.Default
	}

	if entry.RichTextDoc != nil {
		spec.RichTextDoc = *entry.RichTextDoc
	}

	visibility, changed, err := entryVisibility(entry)
	if err != nil {
		return nil, compileError(stageTable, name, ErrInvalidVisibility, err, nil)
	}
	if changed {
		spec.Visibility = visibility
	}

	spec.Doc = placeholderDoc
	if entry.Description != nil {
		spec.Doc = *entry.Description
	}

	return spec, nil
}

// entryVisibility resolves the hidden/visibility pair. hidden wins and makes
// the option invisible everywhere; a falsy visibility leaves it unchanged.
func entryVisibility(entry Entry) (Visibility, bool, error) {
	if Truthy(entry.Hidden) {
		return VisibilityNone, true, nil
	}
	if !Truthy(entry.Visibility) {
		return VisibilityNone, false, nil
	}
	mask, err := ParseVisibility(entry.Visibility)
	if err != nil {
		return VisibilityNone, false, err
	}
	return mask, true, nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func invalidOptionType(name, declared string) error {
	detail := errors.New(
		fmt.Sprintf("option %s has an invalid type of %q, it must be one of the following: %v", name, declared, SupportedTypes),
		errors.CategoryValidation,
	).
		WithTextCode("INVALID_OPTION_TYPE").
		WithMetadata(map[string]any{
			"option":          name,
			"type":            declared,
			"supported_types": SupportedTypes,
		})
	return compileError(stageTable, name, ErrInvalidOptionType, detail, map[string]any{"type": declared})
}
