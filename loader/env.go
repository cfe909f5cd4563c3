package loader

import (
	goerrors "errors"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/sjson"
)

// Env is a koanf provider that renders environment variables as a JSON
// document. Keys are written with sjson, so numeric path segments address
// array items:
//
//	MANUALOPTS_DATA_DIR=worlds/demo
//	MANUALOPTS_EXTRA__0=first
//
// Pair it with the koanf json parser.
type Env struct {
	prefix  string
	delim   string
	cb      func(key, value string) (string, any)
	environ func() []string
}

// EnvProvider captures variables starting with prefix. cb maps a variable
// name to a key using delim for nesting; a blank key skips the variable.
func EnvProvider(prefix, delim string, cb func(string) string) *Env {
	e := &Env{prefix: prefix, delim: delim, environ: os.Environ}
	if cb != nil {
		e.cb = func(key, value string) (string, any) {
			return cb(key), value
		}
	}
	return e
}

// ReadBytes returns the captured variables as JSON.
func (e *Env) ReadBytes() ([]byte, error) {
	vars := e.environ()
	sort.Strings(vars)

	out := "{}"
	for _, kv := range vars {
		if e.prefix != "" && !strings.HasPrefix(kv, e.prefix) {
			continue
		}
		name, raw, _ := strings.Cut(kv, "=")

		key, value := name, any(raw)
		if e.cb != nil {
			key, value = e.cb(name, raw)
			if key == "" {
				continue
			}
		}

		var err error
		out, err = sjson.Set(out, strings.ReplaceAll(key, e.delim, "."), value)
		if err != nil {
			return nil, err
		}
	}
	return []byte(out), nil
}

// Read is not supported; use ReadBytes with a parser.
func (e *Env) Read() (map[string]any, error) {
	return nil, goerrors.New("env provider does not support Read")
}
