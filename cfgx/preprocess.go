package cfgx

import (
	"fmt"
	"reflect"
)

// Preprocessor functions transform raw input before decoding begins.
type Preprocessor func(any) (any, error)

// PreprocessDropKeys returns a copy of the input map without the keys for
// which drop reports true. Nil input becomes an empty map.
func PreprocessDropKeys(drop func(key string) bool) Preprocessor {
	return func(input any) (any, error) {
		base, err := toMap(input)
		if err != nil {
			return nil, err
		}
		if drop == nil {
			return base, nil
		}
		for key := range base {
			if drop(key) {
				delete(base, key)
			}
		}
		return base, nil
	}
}

// PreprocessWrapList nests a top level list under key so list shaped
// documents decode into the same struct as map shaped ones.
func PreprocessWrapList(key string) Preprocessor {
	return func(input any) (any, error) {
		if input == nil {
			return map[string]any{}, nil
		}
		val := reflect.ValueOf(input)
		if val.Kind() == reflect.Slice || val.Kind() == reflect.Array {
			return map[string]any{key: input}, nil
		}
		return input, nil
	}
}

func toMap(input any) (map[string]any, error) {
	if input == nil {
		return map[string]any{}, nil
	}
	if m, ok := input.(map[string]any); ok {
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	}
	val := reflect.ValueOf(input)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("cfgx: expected map input, got %T", input)
	}
	out := make(map[string]any, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key, ok := iter.Key().Interface().(string)
		if !ok {
			return nil, fmt.Errorf("cfgx: cannot convert map key %T to string", iter.Key().Interface())
		}
		out[key] = iter.Value().Interface()
	}
	return out, nil
}
