package synth

import (
	"log/slog"

	"github.com/schemakit/schemakit/descriptor"
	"github.com/schemakit/schemakit/fragment"
	"github.com/schemakit/schemakit/primitives"
)

// Synthesizer turns type descriptors into JSON Schema fragments. It holds the
// primitive type table and the composite fragment cache; a single Synthesizer
// is safe for concurrent use.
type Synthesizer struct {
	table  *primitives.Table
	logger *slog.Logger
	cache  cache
}

// Option configures a [Synthesizer].
type Option func(*Synthesizer)

// WithTable replaces the primitive type table. The default is
// [primitives.Default].
func WithTable(table *primitives.Table) Option {
	return func(s *Synthesizer) {
		s.table = table
	}
}

// WithLogger sets the logger used for debug output. The default is
// [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synthesizer) {
		s.logger = logger
	}
}

// New constructs a Synthesizer with an empty cache.
func New(options ...Option) *Synthesizer {
	s := &Synthesizer{
		table:  primitives.Default(),
		logger: slog.Default(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// CreateSchema synthesizes the schema fragment for t. It fails only with a
// [*RecursiveTypeError] when t's record graph re-enters itself; every other
// shape produces some fragment, possibly empty.
func (s *Synthesizer) CreateSchema(t descriptor.Type) (fragment.Fragment, error) {
	return s.synthesize(t, visitedSet{}, nil)
}

// visitedSet tracks the canonical names of record types currently being
// expanded in one call tree. It is threaded downward with copy semantics: a
// child's additions are never visible to a sibling branch.
type visitedSet map[string]struct{}

func (v visitedSet) has(name string) bool {
	_, ok := v[name]
	return ok
}

func (v visitedSet) with(name string) visitedSet {
	child := make(visitedSet, len(v)+1)
	for visited := range v {
		child[visited] = struct{}{}
	}
	child[name] = struct{}{}
	return child
}

// synthesize classifies t and emits its fragment. Classification order
// matters: structurally recognizable categories (enumeration, optional,
// collection) are decided before the annotation overrides that could apply
// to any category.
func (s *Synthesizer) synthesize(t descriptor.Type, visited visitedSet, multiSelect *descriptor.MultiSelect) (fragment.Fragment, error) {
	switch {
	case descriptor.HasBase(t, descriptor.EnumerationMarker):
		frag := fragment.Object(
			fragment.F("type", fragment.String("string")),
			fragment.F("enum", fragment.StringArray(t.EnumValues()...)),
		)
		return decorate(frag, t.Annotations()), nil

	case descriptor.HasBase(t, descriptor.OptionalName) && len(t.TypeArgs()) == 1:
		// Multi-select describes element selection, not optionality, so the
		// context stops here rather than passing through the unwrap.
		inner, err := s.synthesize(t.TypeArgs()[0], visited, nil)
		if err != nil {
			return fragment.Empty(), err
		}
		return decorate(inner, t.Annotations()), nil

	case descriptor.HasBase(t, descriptor.SequenceMarker) && len(t.TypeArgs()) == 1:
		// The multi-select context is consumed here: it shapes this array
		// fragment, while the element type is synthesized normally.
		element, err := s.synthesize(t.TypeArgs()[0], visited, nil)
		if err != nil {
			return fragment.Empty(), err
		}
		frag := fragment.Object(
			fragment.F("type", fragment.String("array")),
			fragment.F("items", element),
		)
		if multiSelect != nil {
			frag = frag.
				With("uniqueItems", fragment.Bool(multiSelect.UniqueItems)).
				With("createIfNoneMatch", fragment.Bool(multiSelect.CreateIfNoneMatches))
		}
		return frag, nil

	case multiSelect != nil:
		// Multi-select on a non-collection: the value set is populated
		// externally, so emit a permissive empty enumeration.
		frag := fragment.Object(
			fragment.F("type", fragment.String("string")),
			fragment.F("enum", fragment.Array()),
		)
		return decorate(frag, t.Annotations()), nil

	default:
		return s.synthesizePlain(t, visited)
	}
}

// synthesizePlain handles scalars and records, resolving overrides in
// precedence order: FormatAs beats ExposeAs beats the primitive table beats
// record decomposition; anything else degrades to the empty fragment.
func (s *Synthesizer) synthesizePlain(t descriptor.Type, visited visitedSet) (fragment.Fragment, error) {
	annotations := t.Annotations()

	if formatAs, ok := descriptor.FindIn[descriptor.FormatAs](annotations); ok {
		frag := fragment.Object(fragment.F("type", fragment.String(formatAs.Type)))
		if formatAs.Format != "" {
			frag = frag.With("format", fragment.String(formatAs.Format))
		}
		return decorate(frag, annotations), nil
	}

	if exposeAs, ok := descriptor.FindIn[descriptor.ExposeAs](annotations); ok {
		// ExposeAs chains can loop (two types exposing each other), so the
		// exposing type joins the visited set before the redirect.
		name := t.CanonicalName()
		if visited.has(name) {
			return fragment.Empty(), &RecursiveTypeError{TypeName: name}
		}
		frag, err := s.synthesize(exposeAs.Target, visited.with(name), nil)
		if err != nil {
			return fragment.Empty(), err
		}
		return decorate(frag, annotations), nil
	}

	if frag, ok := s.table.Lookup(t.CanonicalName()); ok {
		return decorate(frag, annotations), nil
	}

	if t.IsRecord() {
		if visited.has(t.CanonicalName()) {
			return fragment.Empty(), &RecursiveTypeError{TypeName: t.CanonicalName()}
		}
		frag, err := s.decompose(t, visited)
		if err != nil {
			return fragment.Empty(), err
		}
		return decorate(frag, annotations), nil
	}

	return decorate(fragment.Empty(), annotations), nil
}

// decorate merges description and title overrides onto frag, description
// first. Later overrides win by key; existing keys keep their position.
func decorate(frag fragment.Fragment, annotations descriptor.AnnotationSet) fragment.Fragment {
	if description, ok := descriptor.FindIn[descriptor.Description](annotations); ok && description.Text != "" {
		frag = frag.With("description", fragment.String(description.Text))
	}
	if title, ok := descriptor.FindIn[descriptor.Title](annotations); ok && title.Text != "" {
		frag = frag.With("title", fragment.String(title.Text))
	}
	return frag
}
