package loader

import (
	"encoding/base64"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	opts "github.com/goliatone/go-options"
	"github.com/knadh/koanf/v2"
)

// Resolver rewrites string values of the mounted data documents in place.
type Resolver interface {
	Resolve(k *koanf.Koanf) *koanf.Koanf
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(k *koanf.Koanf) *koanf.Koanf

func (f ResolverFunc) Resolve(k *koanf.Koanf) *koanf.Koanf {
	return f(k)
}

type delimiters struct {
	start string
	end   string
}

func toString(v any) string {
	return fmt.Sprintf("%v", reflect.ValueOf(v))
}

// stringValues calls fn for every string leaf. Values inside lists are not
// visited; koanf only flattens nested objects.
func stringValues(k *koanf.Koanf, fn func(key, val string)) {
	for key, val := range k.All() {
		if s, ok := val.(string); ok {
			fn(key, s)
		}
	}
}

type variables struct {
	delims delimiters
}

// NewVariableResolver replaces start+path+end references with the value at
// path. A reference spanning the whole string keeps the referenced type;
// embedded references are rendered as text. Unknown paths are left alone.
func NewVariableResolver(start, end string) Resolver {
	return &variables{delims: delimiters{start: start, end: end}}
}

func (v *variables) Resolve(k *koanf.Koanf) *koanf.Koanf {
	stringValues(k, func(key, val string) {
		start := strings.Index(val, v.delims.start)
		if start == -1 {
			return
		}
		open := start + len(v.delims.start)
		end := strings.Index(val[open:], v.delims.end)
		if end == -1 {
			return
		}
		path := val[open : open+end]
		if path == "" || !k.Exists(path) {
			return
		}

		replacement := k.Get(path)
		if start == 0 && open+end+len(v.delims.end) == len(val) {
			k.Set(key, replacement)
			return
		}
		k.Set(key, val[:start]+toString(replacement)+val[open+end+len(v.delims.end):])
	})
	return k
}

// EvalErrorHandler decides what happens to a value whose expression failed.
type EvalErrorHandler func(key, expr string, err error, k *koanf.Koanf)

type expression struct {
	delims    delimiters
	evaluator opts.Evaluator
	onError   EvalErrorHandler
}

// NewExpressionResolver evaluates values wrapped entirely in start/end with
// the go-options expr evaluator against the mounted documents. Failed
// expressions leave the value unchanged unless onErr says otherwise.
func NewExpressionResolver(start, end string, eval opts.Evaluator, onErr EvalErrorHandler) Resolver {
	if start == "" {
		start = "{{"
	}
	if end == "" {
		end = "}}"
	}
	if eval == nil {
		eval = opts.NewExprEvaluator()
	}
	return &expression{
		delims:    delimiters{start: start, end: end},
		evaluator: eval,
		onError:   onErr,
	}
}

func (e *expression) Resolve(k *koanf.Koanf) *koanf.Koanf {
	stringValues(k, func(key, val string) {
		if !strings.HasPrefix(val, e.delims.start) || !strings.HasSuffix(val, e.delims.end) {
			return
		}
		if len(val) < len(e.delims.start)+len(e.delims.end) {
			return
		}
		expr := strings.TrimSpace(val[len(e.delims.start) : len(val)-len(e.delims.end)])
		result, err := e.evaluator.Evaluate(opts.RuleContext{Snapshot: k.Raw()}, expr)
		if err != nil {
			if e.onError != nil {
				e.onError(key, expr, err, k)
			}
			return
		}
		k.Set(key, result)
	})
	return k
}

// OnEvalRemove deletes values whose expression failed.
func OnEvalRemove() EvalErrorHandler {
	return func(key, _ string, _ error, k *koanf.Koanf) {
		k.Delete(key)
	}
}

type uris struct {
	fsys   fs.FS
	delims delimiters
}

// NewURIResolver inlines values of the form start+protocol+end+target, such
// as @file://intro.md. Supported protocols are file (read from fsys, trailing
// newlines trimmed) and base64. Unreadable targets are left alone.
func NewURIResolver(start, end string, fsys fs.FS) Resolver {
	return &uris{fsys: fsys, delims: delimiters{start: start, end: end}}
}

func (u *uris) Resolve(k *koanf.Koanf) *koanf.Koanf {
	stringValues(k, func(key, val string) {
		if !strings.HasPrefix(val, u.delims.start) {
			return
		}
		rest := val[len(u.delims.start):]
		protocol, target, ok := strings.Cut(rest, u.delims.end)
		if !ok || protocol == "" {
			return
		}

		var (
			content string
			err     error
		)
		switch protocol {
		case "file":
			content, err = readFileURI(u.fsys, target)
		case "base64":
			content, err = decodeBase64URI(target)
		default:
			return
		}
		if err == nil {
			k.Set(key, content)
		}
	})
	return k
}

func readFileURI(fsys fs.FS, target string) (string, error) {
	if fsys == nil {
		return "", fs.ErrNotExist
	}
	b, err := fs.ReadFile(fsys, target)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\n"), nil
}

func decodeBase64URI(target string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(target)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DefaultResolvers returns the variable, expression and URI resolvers in the
// order the loader applies them.
func DefaultResolvers(fsys fs.FS) []Resolver {
	return []Resolver{
		NewVariableResolver("${", "}"),
		NewExpressionResolver("{{", "}}", nil, nil),
		NewURIResolver("@", "://", fsys),
	}
}
