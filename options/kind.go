package options

import "fmt"

// Kind tags the option class a Spec stands for. The set is closed: the host
// framework reads the tag to know how to interpret the rest of the Spec.
type Kind int

const (
	KindUnknown Kind = iota
	KindToggle
	KindDefaultOnToggle
	KindChoice
	KindTextChoice
	KindRange
	KindNamedRange
	// KindFramework marks options whose behavior lives entirely in the host
	// framework (start inventory pools, plando, item links). Spec.Framework
	// names the host class.
	KindFramework
)

var kindNames = map[Kind]string{
	KindUnknown:         "Unknown",
	KindToggle:          "Toggle",
	KindDefaultOnToggle: "DefaultOnToggle",
	KindChoice:          "Choice",
	KindTextChoice:      "TextChoice",
	KindRange:           "Range",
	KindNamedRange:      "NamedRange",
	KindFramework:       "Framework",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsToggle reports whether k belongs to the toggle family.
func (k Kind) IsToggle() bool {
	return k == KindToggle || k == KindDefaultOnToggle
}

// IsChoice reports whether k belongs to the choice family.
func (k Kind) IsChoice() bool {
	return k == KindChoice || k == KindTextChoice
}

// IsRange reports whether k belongs to the range family.
func (k Kind) IsRange() bool {
	return k == KindRange || k == KindNamedRange
}

// Origin records which stage introduced a Spec into the working set.
type Origin string

const (
	OriginHook    Origin = "hook"
	OriginBuiltin Origin = "builtin"
	OriginTable   Origin = "table"
	OriginDerived Origin = "derived"
)
