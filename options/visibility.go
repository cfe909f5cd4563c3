package options

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-errors"
)

// Visibility is the bitmask telling the host where an option is shown.
type Visibility int

const (
	VisibilityNone      Visibility = 0b0000
	VisibilityTemplate  Visibility = 0b0001
	VisibilitySimpleUI  Visibility = 0b0010
	VisibilityComplexUI Visibility = 0b0100
	VisibilitySpoiler   Visibility = 0b1000
	VisibilityAll       Visibility = 0b1111
)

const binaryMarker = "0b"

var visibilityTags = map[string]Visibility{
	"none":       VisibilityNone,
	"template":   VisibilityTemplate,
	"simple_ui":  VisibilitySimpleUI,
	"complex_ui": VisibilityComplexUI,
	"spoiler":    VisibilitySpoiler,
	"all":        VisibilityAll,
}

// Has reports whether every bit of flag is set in v.
func (v Visibility) Has(flag Visibility) bool {
	return v&flag == flag
}

func (v Visibility) String() string {
	switch v {
	case VisibilityNone:
		return "none"
	case VisibilityAll:
		return "all"
	}
	if v < 0 || v&^VisibilityAll != 0 {
		return binaryMarker + strconv.FormatInt(int64(v), 2)
	}
	var parts []string
	for _, flag := range []Visibility{VisibilityTemplate, VisibilitySimpleUI, VisibilityComplexUI, VisibilitySpoiler} {
		if v.Has(flag) {
			parts = append(parts, flag.tagName())
		}
	}
	return strings.Join(parts, "|")
}

func (v Visibility) tagName() string {
	for name, flag := range visibilityTags {
		if flag == v {
			return name
		}
	}
	return ""
}

// VisibilityTags lists the accepted tag names, sorted.
func VisibilityTags() []string {
	out := make([]string, 0, len(visibilityTags))
	for name := range visibilityTags {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ParseVisibility converts a declared visibility into a bitmask.
//
// nil means visible everywhere. A list is the union of its tags starting from
// VisibilityNone. A string starting with "0b" is a literal mask, any other
// string is a single tag. Integers are used as is.
func ParseVisibility(input any) (Visibility, error) {
	switch v := input.(type) {
	case nil:
		return VisibilityAll, nil
	case Visibility:
		return v, nil
	case bool:
		if v {
			return VisibilityTemplate, nil
		}
		return VisibilityNone, nil
	case string:
		return parseVisibilityString(v)
	case []string:
		mask := VisibilityNone
		for _, tag := range v {
			flag, err := lookupVisibilityTag(tag)
			if err != nil {
				return VisibilityNone, err
			}
			mask |= flag
		}
		return mask, nil
	case []any:
		mask := VisibilityNone
		for idx, item := range v {
			tag, ok := item.(string)
			if !ok {
				return VisibilityNone, invalidVisibility(fmt.Sprint(item), map[string]any{"index": idx})
			}
			flag, err := lookupVisibilityTag(tag)
			if err != nil {
				return VisibilityNone, err
			}
			mask |= flag
		}
		return mask, nil
	case float64:
		if v != math.Trunc(v) {
			return VisibilityNone, invalidVisibility(strconv.FormatFloat(v, 'g', -1, 64), nil)
		}
		return Visibility(int(v)), nil
	}

	val := reflect.ValueOf(input)
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Visibility(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Visibility(val.Uint()), nil
	}
	return VisibilityNone, invalidVisibility(fmt.Sprintf("%v", input), map[string]any{"input_type": fmt.Sprintf("%T", input)})
}

func parseVisibilityString(input string) (Visibility, error) {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, binaryMarker) {
		mask, err := strconv.ParseInt(trimmed, 0, 64)
		if err != nil {
			return VisibilityNone, invalidVisibility(input, map[string]any{"reason": err.Error()})
		}
		return Visibility(mask), nil
	}
	return lookupVisibilityTag(trimmed)
}

func lookupVisibilityTag(tag string) (Visibility, error) {
	flag, ok := visibilityTags[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return VisibilityNone, invalidVisibility(tag, nil)
	}
	return flag, nil
}

func invalidVisibility(tag string, meta map[string]any) error {
	if meta == nil {
		meta = map[string]any{}
	}
	meta["tag"] = tag
	meta["valid_tags"] = VisibilityTags()
	detail := errors.New(fmt.Sprintf("invalid visibility %q, expected one of %v", tag, VisibilityTags()), errors.CategoryValidation).
		WithTextCode("INVALID_VISIBILITY").
		WithMetadata(meta)
	return &sentinelError{base: ErrInvalidVisibility, err: detail}
}
