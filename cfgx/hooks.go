package cfgx

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

var (
	stringType    = reflect.TypeOf("")
	stringPtrType = reflect.TypeOf((*string)(nil))
)

// DefaultDecodeHooks returns the standard hook set (long strings, string slices, integral floats).
func DefaultDecodeHooks() []mapstructure.DecodeHookFunc {
	return []mapstructure.DecodeHookFunc{
		LongStringHook(),
		StringSliceHook(),
		IntegralFloatHook(),
	}
}

// LongStringHook joins a list of lines with "\n" when the target is a string.
// Data files use it for multi-line descriptions.
func LongStringHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != stringType && to != stringPtrType {
			return data, nil
		}
		if from.Kind() != reflect.Slice && from.Kind() != reflect.Array {
			return data, nil
		}
		val := reflect.ValueOf(data)
		lines := make([]string, 0, val.Len())
		for i := 0; i < val.Len(); i++ {
			item := val.Index(i).Interface()
			line, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("cfgx: line %d: expected string, got %T", i, item)
			}
			lines = append(lines, line)
		}
		return strings.Join(lines, "\n"), nil
	}
}

// StringSliceHook lifts a scalar string into a one element []string.
func StringSliceHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		if to.Kind() != reflect.Slice || to.Elem().Kind() != reflect.String {
			return data, nil
		}
		return []string{reflect.ValueOf(data).String()}, nil
	}
}

// IntegralFloatHook narrows whole float64 values to int when the target is an
// interface, so JSON numbers keep their integer identity in untyped fields.
func IntegralFloatHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to.Kind() != reflect.Interface {
			return data, nil
		}
		f, ok := data.(float64)
		if !ok {
			return data, nil
		}
		if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
			return data, nil
		}
		return int(f), nil
	}
}
