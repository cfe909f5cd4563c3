package options

// WorkingSet is an insertion ordered name → Spec mapping. Replacing an
// existing name keeps its original position.
type WorkingSet struct {
	order []string
	specs map[string]*Spec
}

// NewWorkingSet returns an empty working set seeded with specs in order.
func NewWorkingSet(specs ...*Spec) *WorkingSet {
	ws := &WorkingSet{specs: map[string]*Spec{}}
	for _, spec := range specs {
		ws.Set(spec)
	}
	return ws
}

func (ws *WorkingSet) Len() int {
	if ws == nil {
		return 0
	}
	return len(ws.order)
}

func (ws *WorkingSet) Has(name string) bool {
	if ws == nil {
		return false
	}
	_, ok := ws.specs[name]
	return ok
}

// Get returns the spec registered under name.
func (ws *WorkingSet) Get(name string) (*Spec, bool) {
	if ws == nil {
		return nil, false
	}
	spec, ok := ws.specs[name]
	return spec, ok
}

// Set inserts spec at the end of the set, or replaces the spec with the same
// name in place. Nil specs and empty names are ignored.
func (ws *WorkingSet) Set(spec *Spec) {
	if spec == nil || spec.Name == "" {
		return
	}
	if ws.specs == nil {
		ws.specs = map[string]*Spec{}
	}
	if _, ok := ws.specs[spec.Name]; !ok {
		ws.order = append(ws.order, spec.Name)
	}
	ws.specs[spec.Name] = spec
}

// Delete removes name from the set and reports whether it was present.
func (ws *WorkingSet) Delete(name string) bool {
	if !ws.Has(name) {
		return false
	}
	delete(ws.specs, name)
	for i, existing := range ws.order {
		if existing == name {
			ws.order = append(ws.order[:i], ws.order[i+1:]...)
			break
		}
	}
	return true
}

// Names returns the option names in insertion order.
func (ws *WorkingSet) Names() []string {
	if ws == nil {
		return nil
	}
	return append([]string(nil), ws.order...)
}

// Specs returns the specs in insertion order.
func (ws *WorkingSet) Specs() []*Spec {
	if ws == nil {
		return nil
	}
	out := make([]*Spec, 0, len(ws.order))
	for _, name := range ws.order {
		out = append(out, ws.specs[name])
	}
	return out
}

// Clone deep copies the set and every spec in it.
func (ws *WorkingSet) Clone() *WorkingSet {
	out := NewWorkingSet()
	if ws == nil {
		return out
	}
	for _, name := range ws.order {
		out.Set(ws.specs[name].Clone())
	}
	return out
}
