package options

import (
	"strings"

	"github.com/goliatone/go-manual-options/logger"
)

const (
	derivedDoc     = "Should items/locations linked to this option be enabled?"
	negationMarker = "!"
)

// Record is a category or starting-item definition that may reference
// options through its yaml_option list.
type Record struct {
	Name        string
	YAMLOptions []string
}

// AddDerivedToggles adds a default-on toggle for every option referenced by
// records that ws does not define yet. A single leading "!" is stripped; the
// negation itself is interpreted by item and location generation.
// It returns the names it added, in order.
func AddDerivedToggles(ws *WorkingSet, records []Record, log logger.Logger) []string {
	if log == nil {
		log = logger.Nop{}
	}
	var added []string
	for _, record := range records {
		for _, ref := range record.YAMLOptions {
			name := strings.TrimPrefix(ref, negationMarker)
			if name == "" {
				log.Debug("empty yaml_option reference in %q skipped", record.Name)
				continue
			}
			if ws.Has(name) {
				continue
			}
			ws.Set(&Spec{
				Name:        name,
				Kind:        KindDefaultOnToggle,
				Origin:      OriginDerived,
				DisplayName: name,
				Doc:         derivedDoc,
				Default:     true,
				Visibility:  VisibilityAll,
			})
			added = append(added, name)
			log.Debug("derived toggle %q from %q", name, record.Name)
		}
	}
	return added
}
