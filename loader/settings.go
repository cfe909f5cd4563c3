package loader

import (
	goerrors "errors"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/goliatone/go-manual-options/cfgx"
)

const (
	// EnvPrefix selects the environment variables read by LoadSettings.
	EnvPrefix = "MANUALOPTS_"
	envDelim  = "__"
	keyDelim  = "."
)

// Settings locates the data files of a manual world and controls how they
// are read.
type Settings struct {
	DataDir       string `koanf:"data_dir" json:"data_dir"`
	Game          string `koanf:"game" json:"game"`
	Items         string `koanf:"items" json:"items"`
	Locations     string `koanf:"locations" json:"locations"`
	Categories    string `koanf:"categories" json:"categories"`
	Options       string `koanf:"options" json:"options"`
	Resolve       bool   `koanf:"resolve" json:"resolve"`
	StrictEntries bool   `koanf:"strict_entries" json:"strict_entries"`
}

// DefaultSettings returns the conventional file layout of a data directory.
func DefaultSettings() Settings {
	return Settings{
		DataDir:    "data",
		Game:       "game.json",
		Items:      "items.json",
		Locations:  "locations.json",
		Categories: "categories.json",
		Options:    "options.json",
		Resolve:    true,
	}
}

// RegisterFlags adds one flag per setting. Flag names use dashes and map to
// the underscored setting keys.
func RegisterFlags(fs *pflag.FlagSet) {
	def := DefaultSettings()
	fs.String("data-dir", def.DataDir, "directory holding the data files")
	fs.String("game", def.Game, "game file, relative to the data directory")
	fs.String("items", def.Items, "items file, relative to the data directory")
	fs.String("locations", def.Locations, "locations file, relative to the data directory")
	fs.String("categories", def.Categories, "categories file, relative to the data directory")
	fs.String("options", def.Options, "options file, relative to the data directory")
	fs.Bool("resolve", def.Resolve, "resolve ${var}, {{ expr }} and @file:// references")
	fs.Bool("strict-entries", def.StrictEntries, "reject unknown keys in option entries")
}

// LoadSettings layers struct defaults, MANUALOPTS_* environment variables and
// flags (when fs is not nil), in that order of precedence.
func LoadSettings(fs *pflag.FlagSet) (Settings, error) {
	k := koanf.New(keyDelim)

	if err := k.Load(structs.Provider(DefaultSettings(), "koanf"), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.CategoryOperation, "failed to load default settings").
			WithTextCode("STRUCT_LOAD_FAILED")
	}

	envProvider := EnvProvider(EnvPrefix, keyDelim, func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), envDelim, keyDelim)
	})
	if err := k.Load(envProvider, json.Parser()); err != nil {
		return Settings{}, errors.Wrap(err, errors.CategoryOperation, "failed to load environment variables").
			WithTextCode("ENV_LOAD_FAILED").
			WithMetadata(map[string]any{"prefix": EnvPrefix})
	}

	if fs != nil {
		flags := posflag.ProviderWithFlag(fs, keyDelim, k, func(f *pflag.Flag) (string, any) {
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(fs, f)
		})
		if err := k.Load(flags, nil); err != nil {
			return Settings{}, errors.Wrap(err, errors.CategoryOperation, "failed to load settings from flags").
				WithTextCode("FLAGS_LOAD_FAILED")
		}
	}

	settings, err := cfgx.Build[Settings](k.Raw(),
		cfgx.WithTagName[Settings]("koanf"),
		cfgx.WithDefaults(DefaultSettings()),
		cfgx.WithValidator(func(s *Settings) error {
			if strings.TrimSpace(s.DataDir) == "" {
				return goerrors.New("data_dir is required")
			}
			return nil
		}),
	)
	if err != nil {
		return Settings{}, errors.Wrap(err, errors.CategoryValidation, "invalid settings").
			WithTextCode("INVALID_SETTINGS")
	}
	return settings, nil
}
