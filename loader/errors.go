package loader

import (
	goerrors "errors"
	"fmt"
)

var (
	// ErrFormat is returned for data files with an unknown extension.
	ErrFormat = goerrors.New("loader: unsupported file format")
	// ErrRead wraps I/O failures.
	ErrRead = goerrors.New("loader: read failed")
	// ErrParse wraps parser failures.
	ErrParse = goerrors.New("loader: parse failed")
	// ErrKeyDelimiter flags object keys containing the key delimiter, which
	// would be split into nested paths once mounted.
	ErrKeyDelimiter = goerrors.New("loader: key contains the path delimiter")
	// ErrExtract wraps failures decoding records out of the mounted documents.
	ErrExtract = goerrors.New("loader: invalid data")
)

// LoadError ties a failure to the data file it came from.
type LoadError struct {
	File string
	Base error
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	if e == nil {
		return target == nil
	}
	if e.Base != nil && goerrors.Is(e.Base, target) {
		return true
	}
	return goerrors.Is(e.Err, target)
}

func loadError(file string, base, err error) error {
	if err == nil {
		return nil
	}
	return &LoadError{File: file, Base: base, Err: err}
}
