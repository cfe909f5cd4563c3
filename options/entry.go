package options

import (
	"reflect"
	"strings"

	"github.com/goliatone/go-manual-options/cfgx"
)

// Entry is one row of the declarative option table after decoding.
// Pointer fields distinguish "absent" from "empty" where the compiler cares.
type Entry struct {
	Type             string         `mapstructure:"type"`
	DisplayName      *string        `mapstructure:"display_name"`
	Description      *string        `mapstructure:"description"`
	RichTextDoc      *string        `mapstructure:"rich_text_doc"`
	Default          any            `mapstructure:"default"`
	Hidden           any            `mapstructure:"hidden"`
	Visibility       any            `mapstructure:"visibility"`
	Group            string         `mapstructure:"group"`
	Values           map[string]int `mapstructure:"values"`
	Aliases          map[string]int `mapstructure:"aliases"`
	AllowCustomValue bool           `mapstructure:"allow_custom_value"`
	RangeStart       *int           `mapstructure:"range_start"`
	RangeEnd         *int           `mapstructure:"range_end"`
}

// Row is a raw table entry keyed by option name.
type Row struct {
	Name   string
	Fields map[string]any
}

// Table is the declarative option table in authoring order.
type Table struct {
	rows []Row
}

// NewTable builds a table from rows, keeping their order.
func NewTable(rows ...Row) *Table {
	t := &Table{}
	for _, row := range rows {
		t.Append(row.Name, row.Fields)
	}
	return t
}

// Append adds a row at the end of the table.
func (t *Table) Append(name string, fields map[string]any) *Table {
	t.rows = append(t.rows, Row{Name: name, Fields: fields})
	return t
}

// Rows returns the rows in authoring order.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	return append([]Row(nil), t.rows...)
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// isComment reports whether a row is commented out by a leading underscore.
func (r Row) isComment() bool {
	return strings.HasPrefix(r.Name, "_")
}

func decodeEntry(row Row, strict bool) (Entry, error) {
	opts := []cfgx.Option[Entry]{
		cfgx.WithDropKeys[Entry](func(key string) bool { return strings.HasPrefix(key, "$") }),
	}
	if strict {
		opts = append(opts, cfgx.WithStrictKeys[Entry]())
	}
	entry, err := cfgx.Build[Entry](row.Fields, opts...)
	if err != nil {
		return Entry{}, compileError(stageTable, row.Name, ErrEntry, err, nil)
	}
	return entry, nil
}

// Truthy mirrors the truthiness rules option tables were authored against:
// nil, false, zero numbers, empty strings and empty collections are falsy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Bool:
		return val.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return val.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return val.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return val.Float() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return val.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !val.IsNil()
	default:
		return true
	}
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
