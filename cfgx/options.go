package cfgx

import "github.com/go-viper/mapstructure/v2"

// Option allows callers to tweak builder behavior before decoding.
type Option[T any] func(*builder[T])

// WithDefaults seeds the decode target with a copy of value. Later calls override earlier defaults.
func WithDefaults[T any](value T) Option[T] {
	return func(b *builder[T]) {
		b.defaults = &value
	}
}

// WithPreprocess registers one or more preprocessors to run sequentially before decode.
func WithPreprocess[T any](pre ...Preprocessor) Option[T] {
	return func(b *builder[T]) {
		b.preprocessors = append(b.preprocessors, pre...)
	}
}

// WithPreprocessFunc is a convenience for registering inline preprocessors.
func WithPreprocessFunc[T any](fn func(any) (any, error)) Option[T] {
	if fn == nil {
		return func(*builder[T]) {}
	}
	return WithPreprocess[T](Preprocessor(fn))
}

// WithDropKeys removes top level map keys matching drop before decoding.
func WithDropKeys[T any](drop func(key string) bool) Option[T] {
	return WithPreprocess[T](PreprocessDropKeys(drop))
}

// WithDecodeHooks appends custom decode hooks onto the builder.
func WithDecodeHooks[T any](hooks ...mapstructure.DecodeHookFunc) Option[T] {
	return func(b *builder[T]) {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			b.decodeHooks = append(b.decodeHooks, hook)
		}
	}
}

// WithStrictKeys makes unknown input keys a decode error.
func WithStrictKeys[T any]() Option[T] {
	return func(b *builder[T]) {
		b.decoderConfig.ErrorUnused = true
	}
}

// WithWeakTyping toggles WeaklyTypedInput behavior.
func WithWeakTyping[T any](enabled bool) Option[T] {
	return func(b *builder[T]) {
		b.decoderConfig.WeaklyTypedInput = enabled
	}
}

// WithTagName overrides the struct tag key mapstructure uses while decoding.
func WithTagName[T any](tag string) Option[T] {
	return func(b *builder[T]) {
		if tag == "" {
			return
		}
		b.decoderConfig.TagName = tag
	}
}

// WithValidator registers the validator invoked after decoding. Last call wins.
func WithValidator[T any](validator func(*T) error) Option[T] {
	return func(b *builder[T]) {
		b.validator = validator
	}
}

// WithoutDefaultHooks disables automatic inclusion of default decode hooks.
func WithoutDefaultHooks[T any]() Option[T] {
	return func(b *builder[T]) {
		b.useHookSet = false
	}
}

// WithDefaultHooks forces default hooks back on (useful when another option disabled them earlier).
func WithDefaultHooks[T any]() Option[T] {
	return func(b *builder[T]) {
		b.useHookSet = true
	}
}
