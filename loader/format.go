package loader

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"github.com/tidwall/gjson"
	yamlv3 "gopkg.in/yaml.v3"
)

// Format is the encoding of a data file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// arrayKey is where a document whose top level is a list is mounted.
const arrayKey = "data"

func (f Format) String() string {
	return string(f)
}

func (f Format) Parser() koanf.Parser {
	switch f {
	case FormatTOML:
		return toml.Parser()
	case FormatYAML:
		return yaml.Parser()
	default:
		return json.Parser()
	}
}

// FormatOf infers the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.New("unsupported data file type", errors.CategoryValidation).
		WithTextCode("INVALID_FILE_TYPE").
		WithMetadata(map[string]any{
			"path":        path,
			"valid_types": []string{string(FormatJSON), string(FormatYAML), string(FormatTOML)},
		})
}

// wrapArray rewrites a document whose top level is a list into an object
// holding the list under arrayKey, so every document parses to a map.
func wrapArray(format Format, raw []byte) ([]byte, error) {
	switch format {
	case FormatJSON:
		if gjson.ParseBytes(raw).IsArray() {
			return append(append([]byte(`{"`+arrayKey+`":`), raw...), '}'), nil
		}
	case FormatYAML:
		var doc yamlv3.Node
		if err := yamlv3.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		if len(doc.Content) == 1 && doc.Content[0].Kind == yamlv3.SequenceNode {
			wrapped := &yamlv3.Node{
				Kind: yamlv3.MappingNode,
				Content: []*yamlv3.Node{
					{Kind: yamlv3.ScalarNode, Value: arrayKey},
					doc.Content[0],
				},
			}
			return yamlv3.Marshal(wrapped)
		}
	}
	return raw, nil
}

// objectKeys returns the keys of the object at path in document order.
// TOML documents do not expose their order, so their keys come back sorted
// from the parsed value instead.
func objectKeys(format Format, raw []byte, parsed map[string]any, path ...string) []string {
	switch format {
	case FormatJSON:
		target := gjson.ParseBytes(raw)
		for _, segment := range path {
			target = target.Get(escapeKey(segment))
		}
		var keys []string
		target.ForEach(func(key, _ gjson.Result) bool {
			keys = append(keys, key.String())
			return true
		})
		return keys
	case FormatYAML:
		var doc yamlv3.Node
		if err := yamlv3.Unmarshal(raw, &doc); err == nil && len(doc.Content) == 1 {
			if node := yamlMapping(doc.Content[0], path); node != nil {
				keys := make([]string, 0, len(node.Content)/2)
				for i := 0; i+1 < len(node.Content); i += 2 {
					keys = append(keys, node.Content[i].Value)
				}
				return keys
			}
		}
	}
	return sortedKeys(lookupMap(parsed, path))
}

func yamlMapping(node *yamlv3.Node, path []string) *yamlv3.Node {
	for node != nil && node.Kind == yamlv3.AliasNode {
		node = node.Alias
	}
	if node == nil || node.Kind != yamlv3.MappingNode {
		return nil
	}
	if len(path) == 0 {
		return node
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == path[0] {
			return yamlMapping(node.Content[i+1], path[1:])
		}
	}
	return nil
}

func lookupMap(m map[string]any, path []string) map[string]any {
	for _, segment := range path {
		next, ok := m[segment].(map[string]any)
		if !ok {
			return nil
		}
		m = next
	}
	return m
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// escapeKey escapes gjson path syntax in a single object key.
func escapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		if strings.ContainsRune(`\.*?|#@:!=<>%[](){},`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
