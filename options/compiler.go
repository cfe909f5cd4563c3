package options

import (
	"reflect"

	"github.com/goliatone/go-manual-options/logger"
)

// Hook types. Each receives a copy it may modify and returns the structure
// the pipeline continues with; a nil result keeps the input.
type (
	OptionsHook     func(*WorkingSet) (*WorkingSet, error)
	AssignmentsHook func(*Assignments) (*Assignments, error)
	GroupsHook      func([]Group) ([]Group, error)
)

type compilerSettings struct {
	logger        logger.Logger
	beforeOptions []OptionsHook
	afterOptions  []OptionsHook
	beforeGroups  []AssignmentsHook
	afterGroups   []GroupsHook
	itemLocation  []*Spec
	strict        bool
}

// Sources bundles everything the compiler reads. Other subsystems produce it
// (see the loader package for the file based one).
type Sources struct {
	// Options is the declarative option table.
	Options *Table
	// Categories and StartingItems carry yaml_option references.
	Categories    []Record
	StartingItems []Record
	// VictoryNames lists victory locations in order; more than one yields a goal option.
	VictoryNames []string
	// HasTraps adds the filler_traps option.
	HasTraps bool
	// DeathLink adds the death_link option.
	DeathLink bool
}

// Compiler turns Sources into a Schema. It holds configuration only, so one
// Compiler can compile many sources.
type Compiler struct {
	settings compilerSettings
}

// Option configures a Compiler.
type Option func(*compilerSettings)

// New builds a Compiler.
func New(opts ...Option) *Compiler {
	settings := compilerSettings{
		logger:       logger.NewDefaultLogger("options"),
		itemLocation: DefaultItemLocationOptions(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}
	return &Compiler{settings: settings}
}

func WithLogger(l logger.Logger) Option {
	return func(s *compilerSettings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBeforeOptions registers hooks that seed the working set before
// built-in and table options are added. Hooks run in registration order.
func WithBeforeOptions(hooks ...OptionsHook) Option {
	return func(s *compilerSettings) {
		s.beforeOptions = appendNonNil(s.beforeOptions, hooks)
	}
}

// WithAfterOptions registers hooks that post-process the completed working set.
func WithAfterOptions(hooks ...OptionsHook) Option {
	return func(s *compilerSettings) {
		s.afterOptions = appendNonNil(s.afterOptions, hooks)
	}
}

// WithBeforeGroups registers hooks that rewrite group assignments before assembly.
func WithBeforeGroups(hooks ...AssignmentsHook) Option {
	return func(s *compilerSettings) {
		s.beforeGroups = appendNonNil(s.beforeGroups, hooks)
	}
}

// WithAfterGroups registers hooks that rewrite the assembled group list.
func WithAfterGroups(hooks ...GroupsHook) Option {
	return func(s *compilerSettings) {
		s.afterGroups = appendNonNil(s.afterGroups, hooks)
	}
}

// WithItemLocationBase replaces the base members of the reserved group.
func WithItemLocationBase(specs ...*Spec) Option {
	return func(s *compilerSettings) {
		s.itemLocation = specs
	}
}

// WithStrictEntries makes unknown keys in table entries an error.
func WithStrictEntries(enabled bool) Option {
	return func(s *compilerSettings) {
		s.strict = enabled
	}
}

func appendNonNil[H any](dst []H, hooks []H) []H {
	for _, hook := range hooks {
		if reflect.ValueOf(hook).IsNil() {
			continue
		}
		dst = append(dst, hook)
	}
	return dst
}

// Compile runs the pipeline: before-options hooks, built-in options, the
// declarative table in order, derived toggles, after-options hooks.
func (c *Compiler) Compile(src Sources) (*Schema, error) {
	log := c.settings.logger

	ws, err := runOptionsHooks(stageBeforeOptions, NewWorkingSet(), c.settings.beforeOptions)
	if err != nil {
		return nil, err
	}
	for _, spec := range ws.Specs() {
		if spec.Origin == "" {
			spec.Origin = OriginHook
		}
	}

	addBuiltins(ws, src, log)

	assignments := NewAssignments()
	for _, row := range src.Options.Rows() {
		if row.isComment() {
			log.Debug("option %q commented out", row.Name)
			continue
		}
		if err := c.applyRow(ws, assignments, row); err != nil {
			return nil, err
		}
	}

	AddDerivedToggles(ws, src.Categories, log)
	AddDerivedToggles(ws, src.StartingItems, log)

	ws, err = runOptionsHooks(stageAfterOptions, ws, c.settings.afterOptions)
	if err != nil {
		return nil, err
	}

	base := make([]*Spec, 0, len(c.settings.itemLocation))
	for _, spec := range c.settings.itemLocation {
		base = append(base, spec.Clone())
	}

	return &Schema{
		options:      ws,
		assignments:  assignments,
		itemLocation: base,
		beforeGroups: append([]AssignmentsHook(nil), c.settings.beforeGroups...),
		afterGroups:  append([]GroupsHook(nil), c.settings.afterGroups...),
	}, nil
}

func (c *Compiler) applyRow(ws *WorkingSet, assignments *Assignments, row Row) error {
	entry, err := decodeEntry(row, c.settings.strict)
	if err != nil {
		return err
	}

	var spec *Spec
	if existing, ok := ws.Get(row.Name); ok {
		spec, err = reconcileEntry(existing, entry, c.settings.logger)
	} else {
		spec, err = compileEntry(row.Name, entry)
	}
	if err != nil {
		return err
	}
	ws.Set(spec)

	if entry.Group != "" {
		assignments.Assign(row.Name, entry.Group)
	}
	return nil
}

func runOptionsHooks(stage string, ws *WorkingSet, hooks []OptionsHook) (*WorkingSet, error) {
	current := ws
	for idx, hook := range hooks {
		next, err := hook(current.Clone())
		if err != nil {
			return nil, compileError(stage, "", ErrHook, err, map[string]any{"hook_index": idx})
		}
		if next != nil {
			current = next
		}
	}
	return current, nil
}
