package options

import (
	"strings"

	"github.com/goliatone/go-manual-options/logger"
)

const goalOption = "goal"

// reconcileEntry merges a declarative entry into an option that already
// exists. The declared value wins field by field when present; everything
// else, the kind included, is kept.
func reconcileEntry(existing *Spec, entry Entry, log logger.Logger) (*Spec, error) {
	spec := existing.Clone()

	if declared := strings.TrimSpace(entry.Type); declared != "" && !sameFamily(spec.Kind, declared) {
		log.Debug("option %q keeps kind %s, declared type %q ignored", spec.Name, spec.Kind, declared)
	}

	if isGoalSelector(spec) && (len(entry.Values) > 0 || len(entry.Aliases) > 0) {
		extra, err := NormalizeChoices(entry.Values, entry.Aliases)
		if err != nil {
			return nil, compileError(stageTable, spec.Name, ErrChoiceCollision, err, nil)
		}
		spec.Choices = mergeChoices(spec.Choices, extra)
	}

	if entry.DisplayName != nil && *entry.DisplayName != "" {
		spec.DisplayName = *entry.DisplayName
	}

	if entry.Description != nil {
		spec.Doc = *entry.Description
	}

	if entry.RichTextDoc != nil && *entry.RichTextDoc != "" {
		spec.RichTextDoc = *entry.RichTextDoc
	}

	if Truthy(entry.Default) {
		spec.Default = entry.Default
	}

	visibility, changed, err := entryVisibility(entry)
	if err != nil {
		return nil, compileError(stageTable, spec.Name, ErrInvalidVisibility, err, nil)
	}
	if changed {
		spec.Visibility = visibility
	}

	return spec, nil
}

func isGoalSelector(spec *Spec) bool {
	return spec.Name == goalOption && spec.Origin == OriginBuiltin && spec.Kind.IsChoice()
}

func sameFamily(kind Kind, declared string) bool {
	switch strings.ToLower(declared) {
	case "toggle":
		return kind.IsToggle()
	case "choice":
		return kind.IsChoice()
	case "range":
		return kind.IsRange()
	}
	return false
}
