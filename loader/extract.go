package loader

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/v2"

	"github.com/goliatone/go-manual-options/cfgx"
	"github.com/goliatone/go-manual-options/options"
)

type gameDoc struct {
	Game          string            `mapstructure:"game"`
	Creator       string            `mapstructure:"creator"`
	DeathLink     any               `mapstructure:"death_link"`
	StartingItems []startingItemDoc `mapstructure:"starting_items"`
}

type startingItemDoc struct {
	YAMLOption []string `mapstructure:"yaml_option"`
}

type categoryDoc struct {
	YAMLOption []string `mapstructure:"yaml_option"`
}

type itemsDoc struct {
	Data []struct {
		Name string `mapstructure:"name"`
		Trap any    `mapstructure:"trap"`
	} `mapstructure:"data"`
}

type locationsDoc struct {
	Data []struct {
		Name    string `mapstructure:"name"`
		Victory any    `mapstructure:"victory"`
	} `mapstructure:"data"`
}

func isMeta(key string) bool {
	return strings.HasPrefix(key, "$")
}

func (l *Loader) extract(root *koanf.Koanf, docs map[string]*document) (options.Sources, error) {
	var src options.Sources

	if doc := docs["game"]; doc != nil {
		game, err := cfgx.Build[gameDoc](root.Get(doc.key))
		if err != nil {
			return src, loadError(doc.path, ErrExtract, err)
		}
		l.logger.Debug("game %q by %q", game.Game, game.Creator)
		src.DeathLink = options.Truthy(game.DeathLink)
		for idx, start := range game.StartingItems {
			if len(start.YAMLOption) == 0 {
				continue
			}
			src.StartingItems = append(src.StartingItems, options.Record{
				Name:        fmt.Sprintf("starting_items[%d]", idx),
				YAMLOptions: start.YAMLOption,
			})
		}
	}

	if doc := docs["items"]; doc != nil {
		items, err := cfgx.Build[itemsDoc](root.Get(doc.key+keyDelim+arrayKey),
			cfgx.WithPreprocess[itemsDoc](cfgx.PreprocessWrapList(arrayKey)))
		if err != nil {
			return src, loadError(doc.path, ErrExtract, err)
		}
		for _, item := range items.Data {
			if options.Truthy(item.Trap) {
				src.HasTraps = true
				break
			}
		}
	}

	if doc := docs["locations"]; doc != nil {
		locations, err := cfgx.Build[locationsDoc](root.Get(doc.key+keyDelim+arrayKey),
			cfgx.WithPreprocess[locationsDoc](cfgx.PreprocessWrapList(arrayKey)))
		if err != nil {
			return src, loadError(doc.path, ErrExtract, err)
		}
		for _, location := range locations.Data {
			if options.Truthy(location.Victory) {
				src.VictoryNames = append(src.VictoryNames, location.Name)
			}
		}
	}

	if doc := docs["categories"]; doc != nil {
		categories, _ := root.Get(doc.key).(map[string]any)
		for _, name := range orderedKeys(objectKeys(doc.format, doc.raw, doc.parsed), categories) {
			if isMeta(name) {
				continue
			}
			category, err := cfgx.Build[categoryDoc](categories[name])
			if err != nil {
				return src, loadError(doc.path, ErrExtract, fmt.Errorf("category %q: %w", name, err))
			}
			src.Categories = append(src.Categories, options.Record{Name: name, YAMLOptions: category.YAMLOption})
		}
	}

	if doc := docs["options"]; doc != nil {
		data, _ := root.Get(doc.key + keyDelim + arrayKey).(map[string]any)
		table := options.NewTable()
		for _, name := range orderedKeys(objectKeys(doc.format, doc.raw, doc.parsed, arrayKey), data) {
			if isMeta(name) {
				continue
			}
			fields, ok := data[name].(map[string]any)
			if !ok {
				return src, loadError(doc.path, ErrExtract, fmt.Errorf("option %q: entry must be an object", name))
			}
			table.Append(name, fields)
		}
		src.Options = table
	}

	return src, nil
}

// orderedKeys returns the keys of m following order, then any key order did
// not mention, sorted.
func orderedKeys(order []string, m map[string]any) []string {
	out := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, key := range order {
		if _, ok := m[key]; ok && !seen[key] {
			out = append(out, key)
			seen[key] = true
		}
	}
	for _, key := range sortedKeys(m) {
		if !seen[key] {
			out = append(out, key)
		}
	}
	return out
}
