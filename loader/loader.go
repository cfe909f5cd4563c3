package loader

import (
	"context"
	goerrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/goliatone/go-manual-options/logger"
	"github.com/goliatone/go-manual-options/options"
)

// document is one parsed data file.
type document struct {
	key    string
	path   string
	format Format
	raw    []byte
	parsed map[string]any
}

// Loader reads a data directory into options.Sources.
type Loader struct {
	settings  Settings
	fsys      fs.FS
	logger    logger.Logger
	resolvers []Resolver
}

// Option configures a Loader.
type Option func(*Loader)

func WithLogger(l logger.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithFS sets the file system @file:// references are read from. It
// defaults to the data directory.
func WithFS(fsys fs.FS) Option {
	return func(ld *Loader) {
		ld.fsys = fsys
	}
}

// WithResolvers replaces the default resolvers.
func WithResolvers(resolvers ...Resolver) Option {
	return func(ld *Loader) {
		ld.resolvers = resolvers
	}
}

// New builds a Loader for settings.
func New(settings Settings, opts ...Option) *Loader {
	ld := &Loader{
		settings: settings,
		logger:   logger.NewDefaultLogger("loader"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(ld)
		}
	}
	if ld.fsys == nil {
		ld.fsys = os.DirFS(settings.DataDir)
	}
	if ld.resolvers == nil {
		ld.resolvers = DefaultResolvers(ld.fsys)
	}
	return ld
}

// Settings returns the settings the loader was built with.
func (l *Loader) Settings() Settings {
	return l.settings
}

type dataFile struct {
	key  string
	name string
}

func (l *Loader) files() []dataFile {
	return []dataFile{
		{key: "game", name: l.settings.Game},
		{key: "items", name: l.settings.Items},
		{key: "locations", name: l.settings.Locations},
		{key: "categories", name: l.settings.Categories},
		{key: "options", name: l.settings.Options},
	}
}

// Load reads every configured file, mounts it under its key, runs the
// resolvers and extracts the compiler sources. Missing files are skipped.
func (l *Loader) Load(ctx context.Context) (options.Sources, error) {
	root := koanf.New(keyDelim)
	docs := map[string]*document{}

	for _, f := range l.files() {
		if err := ctx.Err(); err != nil {
			return options.Sources{}, err
		}
		if f.name == "" {
			continue
		}
		doc, err := l.readDocument(f.key, f.name)
		if err != nil {
			return options.Sources{}, err
		}
		if doc == nil {
			continue
		}
		if err := root.Load(confmap.Provider(map[string]any{f.key: doc.parsed}, ""), nil); err != nil {
			return options.Sources{}, loadError(doc.path, ErrParse,
				errors.Wrap(err, errors.CategoryOperation, "failed to mount data file").
					WithTextCode("MOUNT_FAILED").
					WithMetadata(map[string]any{"key": f.key}))
		}
		docs[f.key] = doc
	}

	if l.settings.Resolve {
		for _, r := range l.resolvers {
			if err := ctx.Err(); err != nil {
				return options.Sources{}, err
			}
			root = r.Resolve(root)
		}
	}

	return l.extract(root, docs)
}

func (l *Loader) readDocument(key, name string) (*document, error) {
	path := filepath.Join(l.settings.DataDir, name)

	format, err := FormatOf(path)
	if err != nil {
		return nil, loadError(path, ErrFormat, err)
	}

	raw, err := file.Provider(path).ReadBytes()
	if goerrors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("data file %s not found, skipping", path)
		return nil, nil
	}
	if err != nil {
		return nil, loadError(path, ErrRead,
			errors.Wrap(err, errors.CategoryOperation, "failed to read data file").
				WithTextCode("FILE_READ_FAILED").
				WithMetadata(map[string]any{"key": key}))
	}

	raw, err = wrapArray(format, raw)
	if err == nil {
		var parsed map[string]any
		parsed, err = format.Parser().Unmarshal(raw)
		if err == nil {
			if bad := delimitedKey(parsed, ""); bad != "" {
				return nil, loadError(path, ErrKeyDelimiter,
					errors.New("object key contains the path delimiter", errors.CategoryValidation).
						WithTextCode("KEY_DELIMITER").
						WithMetadata(map[string]any{"key": bad, "delimiter": keyDelim}))
			}
			l.logger.Debug("loaded %s as %s", path, format)
			return &document{key: key, path: path, format: format, raw: raw, parsed: parsed}, nil
		}
	}
	return nil, loadError(path, ErrParse,
		errors.Wrap(err, errors.CategoryValidation, "failed to parse data file").
			WithTextCode("FILE_PARSE_FAILED").
			WithMetadata(map[string]any{"format": string(format)}))
}

// delimitedKey returns the path of the first object key containing the key
// delimiter, or "".
func delimitedKey(m map[string]any, prefix string) string {
	for _, key := range sortedKeys(m) {
		path := key
		if prefix != "" {
			path = prefix + "/" + key
		}
		if strings.Contains(key, keyDelim) {
			return path
		}
		if nested, ok := m[key].(map[string]any); ok {
			if bad := delimitedKey(nested, path); bad != "" {
				return bad
			}
		}
	}
	return ""
}
