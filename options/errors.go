package options

import (
	goerrors "errors"
	"fmt"
)

var (
	// ErrInvalidOptionType is returned when a new table entry declares a type
	// other than toggle, choice or range.
	ErrInvalidOptionType = goerrors.New("options: invalid option type")
	// ErrInvalidVisibility is returned for unknown visibility tags.
	ErrInvalidVisibility = goerrors.New("options: invalid visibility")
	// ErrChoiceCollision flags two choice labels resolving to the same attribute.
	ErrChoiceCollision = goerrors.New("options: choice attribute collision")
	// ErrEntry wraps failures decoding a declarative table entry.
	ErrEntry = goerrors.New("options: invalid option entry")
	// ErrHook wraps errors returned by extension hooks.
	ErrHook = goerrors.New("options: hook failed")
)

const (
	stageBeforeOptions = "before_options"
	stageBuiltins      = "builtins"
	stageTable         = "table"
	stageAfterOptions  = "after_options"
	stageBeforeGroups  = "before_groups"
	stageAfterGroups   = "after_groups"
)

// CompileError describes a failure in one compiler stage, optionally tied to
// a single option.
type CompileError struct {
	Stage  string
	Option string
	Base   error
	Err    error
	Meta   map[string]any
}

func (e *CompileError) Error() string {
	if e == nil {
		return ""
	}
	if e.Option != "" {
		return fmt.Sprintf("%s: option %q: %v", e.Stage, e.Option, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *CompileError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target matches the stage sentinel or the wrapped error.
func (e *CompileError) Is(target error) bool {
	if e == nil {
		return target == nil
	}
	if e.Base != nil && goerrors.Is(e.Base, target) {
		return true
	}
	return goerrors.Is(e.Err, target)
}

func compileError(stage, option string, base, err error, meta map[string]any) error {
	if err == nil {
		return nil
	}
	return &CompileError{
		Stage:  stage,
		Option: option,
		Base:   base,
		Err:    err,
		Meta:   meta,
	}
}

// sentinelError pairs a structured detail error with the sentinel callers
// match on.
type sentinelError struct {
	base error
	err  error
}

func (e *sentinelError) Error() string {
	return fmt.Sprintf("%v: %v", e.base, e.err)
}

func (e *sentinelError) Unwrap() []error {
	return []error{e.base, e.err}
}
