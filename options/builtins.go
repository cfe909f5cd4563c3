package options

import "github.com/goliatone/go-manual-options/logger"

// ItemLocationGroup is the reserved presentation group. It always exists,
// is always last and is always open by default.
const ItemLocationGroup = "Item & Location Options"

const (
	goalDoc        = "Choose your victory condition."
	fillerTrapsDoc = "How many fillers will be replaced with traps. 0 means no additional traps, 100 means all fillers are traps."
)

// frameworkOption builds a placeholder spec for an option class the host
// framework implements on its own.
func frameworkOption(name, class, displayName string) *Spec {
	return &Spec{
		Name:        name,
		Kind:        KindFramework,
		Origin:      OriginBuiltin,
		Framework:   class,
		DisplayName: displayName,
		Visibility:  VisibilityAll,
	}
}

// DefaultItemLocationOptions returns the framework options the reserved
// group always lists first.
func DefaultItemLocationOptions() []*Spec {
	return []*Spec{
		frameworkOption("local_items", "LocalItems", "Local Items"),
		frameworkOption("non_local_items", "NonLocalItems", "Non-local Items"),
		frameworkOption("start_inventory", "StartInventory", "Start Inventory"),
		frameworkOption("start_inventory_from_pool", "StartInventoryPool", "Start Inventory from Pool"),
		frameworkOption("start_hints", "StartHints", "Start Hints"),
		frameworkOption("start_location_hints", "StartLocationHints", "Start Location Hints"),
		frameworkOption("exclude_locations", "ExcludeLocations", "Excluded Locations"),
		frameworkOption("priority_locations", "PriorityLocations", "Priority Locations"),
		frameworkOption("item_links", "ItemLinks", "Item Links"),
		frameworkOption("plando_items", "PlandoItems", "Plando Items"),
	}
}

// GoalOption builds the victory condition selector: one choice per victory
// name, valued by its position.
func GoalOption(victoryNames []string) *Spec {
	choices := make(map[string]int, len(victoryNames))
	for idx, name := range victoryNames {
		choices[choicePrefix+name] = idx
	}
	return &Spec{
		Name:        goalOption,
		Kind:        KindChoice,
		Origin:      OriginBuiltin,
		DisplayName: goalOption,
		Doc:         goalDoc,
		Default:     0,
		Visibility:  VisibilityAll,
		Choices:     choices,
	}
}

// addBuiltins seeds the options every generated world carries, on top of
// whatever the before-options hook produced.
func addBuiltins(ws *WorkingSet, src Sources, log logger.Logger) {
	pool := frameworkOption("start_inventory_from_pool", "StartInventoryPool", "Start Inventory from Pool")
	pool.Doc = "Start with these items and don't place them in the world."
	ws.Set(pool)

	if len(src.VictoryNames) > 1 {
		if ws.Has(goalOption) {
			log.Warn("existing goal option created by hooks will be overwritten by the generated goal option; " +
				"add aliases in the after-options hook to keep supporting old player settings")
		}
		ws.Set(GoalOption(src.VictoryNames))
	}

	if src.HasTraps {
		ws.Set(&Spec{
			Name:        "filler_traps",
			Kind:        KindRange,
			Origin:      OriginBuiltin,
			DisplayName: "filler_traps",
			Doc:         fillerTrapsDoc,
			Default:     0,
			Visibility:  VisibilityAll,
			RangeStart:  0,
			RangeEnd:    100,
		})
	}

	if src.DeathLink {
		ws.Set(&Spec{
			Name:        "death_link",
			Kind:        KindToggle,
			Origin:      OriginBuiltin,
			Framework:   "DeathLink",
			DisplayName: "Death Link",
			Doc:         "When you die, everyone dies. Of course the reverse is true too.",
			Default:     false,
			Visibility:  VisibilityAll,
		})
	}
}
