package options

import (
	"strings"

	"github.com/tidwall/sjson"
)

type specDocument struct {
	Kind              string         `json:"kind"`
	Origin            Origin         `json:"origin,omitempty"`
	Framework         string         `json:"framework,omitempty"`
	DisplayName       string         `json:"display_name"`
	Doc               string         `json:"doc,omitempty"`
	RichTextDoc       string         `json:"rich_text_doc,omitempty"`
	Default           any            `json:"default"`
	Visibility        int            `json:"visibility"`
	Choices           map[string]int `json:"choices,omitempty"`
	RangeStart        *int           `json:"range_start,omitempty"`
	RangeEnd          *int           `json:"range_end,omitempty"`
	SpecialRangeNames map[string]int `json:"special_range_names,omitempty"`
}

type groupDocument struct {
	Name        string   `json:"name"`
	DefaultOpen bool     `json:"default_open"`
	Options     []string `json:"options"`
}

func newSpecDocument(spec *Spec) specDocument {
	doc := specDocument{
		Kind:              spec.Kind.String(),
		Origin:            spec.Origin,
		Framework:         spec.Framework,
		DisplayName:       spec.DisplayName,
		Doc:               spec.Doc,
		RichTextDoc:       spec.RichTextDoc,
		Default:           spec.Default,
		Visibility:        int(spec.Visibility),
		Choices:           spec.Choices,
		SpecialRangeNames: spec.SpecialRangeNames,
	}
	if spec.Kind.IsRange() {
		start, end := spec.RangeStart, spec.RangeEnd
		doc.RangeStart, doc.RangeEnd = &start, &end
	}
	return doc
}

// ExportJSON renders the schema as a JSON document: an "options" object in
// working-set order followed by the assembled "groups".
func (s *Schema) ExportJSON() ([]byte, error) {
	doc := []byte(`{"options":{},"groups":[]}`)
	var err error
	for _, spec := range s.options.Specs() {
		doc, err = sjson.SetBytes(doc, "options."+escapePath(spec.Name), newSpecDocument(spec))
		if err != nil {
			return nil, compileError("export", spec.Name, nil, err, nil)
		}
	}

	groups, err := s.BuildGroups()
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		doc, err = sjson.SetBytes(doc, "groups.-1", groupDocument{
			Name:        group.Name,
			DefaultOpen: group.DefaultOpen,
			Options:     group.OptionNames(),
		})
		if err != nil {
			return nil, compileError("export", "", nil, err, map[string]any{"group": group.Name})
		}
	}
	return doc, nil
}

const pathSpecialChars = `\.*?|#@:!=<>%[](){},`

// escapePath escapes characters that sjson and gjson treat as path syntax.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		if strings.ContainsRune(pathSpecialChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
