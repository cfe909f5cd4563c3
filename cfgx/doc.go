// Package cfgx decodes loosely typed documents (parsed JSON, YAML or TOML
// fragments) into typed structs through a small staged pipeline:
// preprocess, decode and validate.
//
// Every stage failure is reported as a *StageError that wraps one of the
// ErrPreprocess/ErrDecode/ErrValidate sentinels, so callers can branch with
// errors.Is and still read the stage metadata through errors.As.
//
// Option catalog:
//   - Preprocessing: WithPreprocess, WithPreprocessFunc, WithDropKeys.
//   - Decoder behavior: WithDecodeHooks, WithStrictKeys, WithWeakTyping, WithTagName,
//     WithoutDefaultHooks/WithDefaultHooks.
//   - Defaults: WithDefaults.
//   - Validation: WithValidator.
//
// Hook helpers:
//   - LongStringHook joins lists of lines into a single string.
//   - StringSliceHook lifts a scalar string into a one element slice.
//   - IntegralFloatHook narrows integral float64 values (as produced by JSON
//     parsers) to int when the target is an interface.
package cfgx
