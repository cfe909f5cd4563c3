package cfgx

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mitchellh/copystructure"
)

const (
	stagePreprocess = "preprocess"
	stageDecode     = "decode"
	stageValidate   = "validate"
)

var (
	// ErrPreprocess wraps failures while executing preprocessors before decoding.
	ErrPreprocess = errors.New("cfgx: preprocess stage failed")
	// ErrDecode wraps mapstructure decode failures.
	ErrDecode = errors.New("cfgx: decode stage failed")
	// ErrValidate wraps validator-reported errors.
	ErrValidate = errors.New("cfgx: validate stage failed")
)

// StageError describes a failure in a specific build stage along with contextual metadata.
type StageError struct {
	Stage string
	Base  error
	Err   error
	Meta  map[string]any
}

// Error implements the error interface.
func (e *StageError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap allows errors.Is/As to inspect the underlying error.
func (e *StageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether the target matches either the stage sentinel or wrapped error.
func (e *StageError) Is(target error) bool {
	if e == nil {
		return target == nil
	}
	if errors.Is(e.Base, target) {
		return true
	}
	return errors.Is(e.Err, target)
}

func stageError(stage string, base, err error, meta map[string]any) error {
	if err == nil {
		return nil
	}
	return &StageError{
		Stage: stage,
		Base:  base,
		Err:   err,
		Meta:  meta,
	}
}

type builder[T any] struct {
	input         any
	defaults      *T
	preprocessors []Preprocessor
	decodeHooks   []mapstructure.DecodeHookFunc
	decoderConfig mapstructure.DecoderConfig
	validator     func(*T) error
	useHookSet    bool
}

func newBuilder[T any](input any) *builder[T] {
	return &builder[T]{
		input: input,
		decoderConfig: mapstructure.DecoderConfig{
			TagName:          "mapstructure",
			WeaklyTypedInput: true,
		},
		useHookSet: true,
	}
}

// Build runs preprocessors, decodes the result into T and validates it.
// Defaults registered with WithDefaults are deep copied before the decode
// overlays them, so the same defaults value can seed many builds.
func Build[T any](input any, opts ...Option[T]) (T, error) {
	b := newBuilder[T](input)
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b.build()
}

func (b *builder[T]) build() (T, error) {
	var result T
	if b.defaults != nil {
		cloned, err := copystructure.Copy(*b.defaults)
		if err != nil {
			return result, stageError(stageDecode, ErrDecode, err, map[string]any{"reason": "clone_defaults"})
		}
		result = cloned.(T)
	}

	current := b.input
	for idx, pre := range b.preprocessors {
		if pre == nil {
			continue
		}
		next, err := pre(current)
		if err != nil {
			var zero T
			return zero, stageError(stagePreprocess, ErrPreprocess, err, map[string]any{
				"preprocessor_index": idx,
			})
		}
		current = next
	}

	if err := b.decode(current, &result); err != nil {
		var zero T
		return zero, err
	}

	if b.validator != nil {
		if err := b.validator(&result); err != nil {
			var zero T
			return zero, stageError(stageValidate, ErrValidate, err, nil)
		}
	}

	return result, nil
}

func (b *builder[T]) decode(input any, result *T) error {
	config := b.decoderConfig
	config.Result = prepareDecodeTarget(result)
	config.DecodeHook = b.composeDecodeHooks()
	decoder, err := mapstructure.NewDecoder(&config)
	if err != nil {
		return stageError(stageDecode, ErrDecode, err, map[string]any{"reason": "decoder_config"})
	}
	if err := decoder.Decode(input); err != nil {
		return stageError(stageDecode, ErrDecode, err, nil)
	}
	return nil
}

func (b *builder[T]) composeDecodeHooks() mapstructure.DecodeHookFunc {
	hooks := make([]mapstructure.DecodeHookFunc, 0, len(b.decodeHooks)+3)
	if b.useHookSet {
		hooks = append(hooks, DefaultDecodeHooks()...)
	}
	hooks = append(hooks, b.decodeHooks...)
	if len(hooks) == 0 {
		return nil
	}
	if len(hooks) == 1 {
		return hooks[0]
	}
	return mapstructure.ComposeDecodeHookFunc(hooks...)
}

func prepareDecodeTarget[T any](result *T) any {
	val := reflect.ValueOf(result).Elem()
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return val.Interface()
	}
	return val.Addr().Interface()
}
