package options

// Schema is the result of a compilation. It is never mutated after Compile
// returns; accessors hand out copies.
type Schema struct {
	options      *WorkingSet
	assignments  *Assignments
	itemLocation []*Spec
	beforeGroups []AssignmentsHook
	afterGroups  []GroupsHook
}

// Options returns a copy of the compiled working set.
func (s *Schema) Options() *WorkingSet {
	return s.options.Clone()
}

// Option returns a copy of the named spec.
func (s *Schema) Option(name string) (*Spec, bool) {
	spec, ok := s.options.Get(name)
	if !ok {
		return nil, false
	}
	return spec.Clone(), true
}

// Names returns option names in working-set order.
func (s *Schema) Names() []string {
	return s.options.Names()
}

// Assignments returns a copy of the group assignments recorded while compiling.
func (s *Schema) Assignments() *Assignments {
	return s.assignments.Clone()
}

// BuildGroups assembles the presentation groups. Every call starts from a
// fresh copy of the recorded assignments, so repeated calls return equal
// results.
func (s *Schema) BuildGroups() ([]Group, error) {
	assignments := s.assignments.Clone()
	for idx, hook := range s.beforeGroups {
		next, err := hook(assignments)
		if err != nil {
			return nil, compileError(stageBeforeGroups, "", ErrHook, err, map[string]any{"hook_index": idx})
		}
		if next != nil {
			assignments = next
		}
	}

	groups := assembleGroups(s.options, assignments, s.itemLocation)

	for idx, hook := range s.afterGroups {
		next, err := hook(groups)
		if err != nil {
			return nil, compileError(stageAfterGroups, "", ErrHook, err, map[string]any{"hook_index": idx})
		}
		if next != nil {
			groups = next
		}
	}
	return groups, nil
}
