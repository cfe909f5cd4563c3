package options

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-errors"
)

// NormalizeChoices flattens primary values and aliases into the attribute
// set a choice option carries: "option_<label>" for values and
// "alias_<label>" for aliases, numbers copied unchanged.
func NormalizeChoices(values, aliases map[string]int) (map[string]int, error) {
	out := make(map[string]int, len(values)+len(aliases))
	seen := make(map[string]string, len(values)+len(aliases))

	add := func(prefix string, labels map[string]int) error {
		keys := make([]string, 0, len(labels))
		for label := range labels {
			keys = append(keys, label)
		}
		sort.Strings(keys)
		for _, label := range keys {
			attr := prefix + label
			folded := strings.ToLower(attr)
			if previous, ok := seen[folded]; ok {
				return choiceCollision(previous, attr)
			}
			seen[folded] = attr
			out[attr] = labels[label]
		}
		return nil
	}

	if err := add(choicePrefix, values); err != nil {
		return nil, err
	}
	if err := add(aliasPrefix, aliases); err != nil {
		return nil, err
	}
	return out, nil
}

// mergeChoices adds the attributes of extra that base does not define yet.
func mergeChoices(base, extra map[string]int) map[string]int {
	out := copyIntMap(base)
	if out == nil {
		out = make(map[string]int, len(extra))
	}
	for attr, value := range extra {
		if _, ok := out[attr]; ok {
			continue
		}
		out[attr] = value
	}
	return out
}

func choiceCollision(first, second string) error {
	detail := errors.New(fmt.Sprintf("choice attributes %q and %q collide", first, second), errors.CategoryOperation).
		WithTextCode("CHOICE_COLLISION").
		WithMetadata(map[string]any{
			"first":  first,
			"second": second,
		})
	return &sentinelError{base: ErrChoiceCollision, err: detail}
}
