package options

// Group is a named, ordered set of options presented together.
type Group struct {
	Name        string
	Options     []*Spec
	DefaultOpen bool
}

// OptionNames returns the member names in order.
func (g Group) OptionNames() []string {
	out := make([]string, 0, len(g.Options))
	for _, spec := range g.Options {
		out = append(out, spec.Name)
	}
	return out
}

// Assignments accumulates option → group assignments. An option belongs to at
// most one group: assigning it again moves it and the last assignment wins.
// Groups keep the order in which they were first used.
type Assignments struct {
	groups  []string
	members map[string][]string
	owner   map[string]string
}

func NewAssignments() *Assignments {
	return &Assignments{
		members: map[string][]string{},
		owner:   map[string]string{},
	}
}

// Assign places option in group.
func (a *Assignments) Assign(option, group string) {
	if option == "" || group == "" {
		return
	}
	if a.members == nil {
		a.members = map[string][]string{}
		a.owner = map[string]string{}
	}
	if current, ok := a.owner[option]; ok {
		if current == group {
			return
		}
		a.members[current] = removeName(a.members[current], option)
	}
	if _, ok := a.members[group]; !ok {
		a.groups = append(a.groups, group)
	}
	a.members[group] = append(a.members[group], option)
	a.owner[option] = group
}

// Group returns the group option is assigned to.
func (a *Assignments) Group(option string) (string, bool) {
	if a == nil {
		return "", false
	}
	group, ok := a.owner[option]
	return group, ok
}

// Groups returns group names in first-use order, including groups whose
// members were all moved elsewhere.
func (a *Assignments) Groups() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.groups...)
}

// Members returns the options assigned to group in assignment order.
func (a *Assignments) Members(group string) []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.members[group]...)
}

// Has reports whether group was ever used.
func (a *Assignments) Has(group string) bool {
	if a == nil {
		return false
	}
	_, ok := a.members[group]
	return ok
}

// Remove drops group and its assignments.
func (a *Assignments) Remove(group string) {
	if !a.Has(group) {
		return
	}
	for _, option := range a.members[group] {
		delete(a.owner, option)
	}
	delete(a.members, group)
	a.groups = removeName(a.groups, group)
}

// Len returns the number of groups.
func (a *Assignments) Len() int {
	if a == nil {
		return 0
	}
	return len(a.groups)
}

// Clone returns an independent copy.
func (a *Assignments) Clone() *Assignments {
	out := NewAssignments()
	if a == nil {
		return out
	}
	out.groups = append(out.groups, a.groups...)
	for group, members := range a.members {
		out.members[group] = append([]string(nil), members...)
	}
	for option, group := range a.owner {
		out.owner[option] = group
	}
	return out
}

func removeName(names []string, name string) []string {
	out := names[:0:0]
	for _, existing := range names {
		if existing != name {
			out = append(out, existing)
		}
	}
	return out
}

// assembleGroups turns assignments into presentation groups without changing
// them. Members of the reserved group are appended to base instead of
// creating a second group, and the reserved group always comes last. A group
// is kept even when none of its options resolve; a group every option moved
// out of is dropped.
func assembleGroups(ws *WorkingSet, assignments *Assignments, base []*Spec) []Group {
	reserved := make([]*Spec, 0, len(base))
	seen := map[string]bool{}
	for _, spec := range base {
		if spec == nil || seen[spec.Name] {
			continue
		}
		seen[spec.Name] = true
		if current, ok := ws.Get(spec.Name); ok {
			reserved = append(reserved, current.Clone())
			continue
		}
		reserved = append(reserved, spec.Clone())
	}

	for _, name := range assignments.Members(ItemLocationGroup) {
		if seen[name] {
			continue
		}
		if spec, ok := ws.Get(name); ok {
			seen[name] = true
			reserved = append(reserved, spec.Clone())
		}
	}

	groups := make([]Group, 0, assignments.Len()+1)
	for _, name := range assignments.Groups() {
		if name == ItemLocationGroup {
			continue
		}
		assigned := assignments.Members(name)
		if len(assigned) == 0 {
			continue
		}
		members := make([]*Spec, 0, len(assigned))
		for _, option := range assigned {
			if spec, ok := ws.Get(option); ok {
				members = append(members, spec.Clone())
			}
		}
		groups = append(groups, Group{Name: name, Options: members})
	}

	return append(groups, Group{Name: ItemLocationGroup, Options: reserved, DefaultOpen: true})
}
