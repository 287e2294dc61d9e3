package descriptor

// Annotation is the common interface for all schema override markers that
// can be attached to a type or a record member. Annotations are pure data
// carriers with no behavior of their own; the synthesis engine is the sole
// consumer and pattern-matches on the concrete variant.
type Annotation interface {
	isAnnotation()
}

// FormatAs overrides the emitted schema with an explicit JSON Schema type
// and optional format string. When present it is the complete answer for the
// annotated type: any ExposeAs annotation on the same target is ignored.
type FormatAs struct {
	// Type is the JSON Schema type keyword, e.g. "string" or "integer".
	Type string
	// Format is the optional JSON Schema format keyword, e.g. "date-time".
	// Empty means no format key is emitted.
	Format string
}

// ExposeAs instructs the engine to emit the schema of Target in place of the
// schema of the annotated type or member. The target is carried as a type
// reference rather than a name so that the engine never resolves strings.
type ExposeAs struct {
	Target Type
}

// Description attaches a human-readable description to the emitted fragment.
type Description struct {
	Text string
}

// Title attaches a title to the emitted fragment.
type Title struct {
	Text string
}

// Hide excludes a record member from the emitted properties entirely.
type Hide struct{}

// Order assigns a relative position to a record member. Members are sorted
// by ascending rank; members sharing a rank (including the default 0) keep
// their declaration order.
type Order struct {
	Rank int
}

// MultiSelect marks a member as an externally-populated multi-selection.
// When the member's type is a collection, the emitted array fragment is
// extended with the uniqueItems and createIfNoneMatch keys; otherwise the
// member degrades to a permissive empty enumeration.
type MultiSelect struct {
	UniqueItems         bool
	CreateIfNoneMatches bool
}

// NewMultiSelect returns a MultiSelect with both flags set to true, the
// documented defaults.
func NewMultiSelect() MultiSelect {
	return MultiSelect{UniqueItems: true, CreateIfNoneMatches: true}
}

func (FormatAs) isAnnotation()    {}
func (ExposeAs) isAnnotation()    {}
func (Description) isAnnotation() {}
func (Title) isAnnotation()       {}
func (Hide) isAnnotation()        {}
func (Order) isAnnotation()       {}
func (MultiSelect) isAnnotation() {}

// AnnotationSet is an ordered collection of annotations attached to a type
// or member. Annotations are not designed to stack: queries return the first
// annotation of the requested kind and ignore the rest.
type AnnotationSet []Annotation

// FindIn returns the first annotation of type A in the set, if any.
func FindIn[A Annotation](set AnnotationSet) (A, bool) {
	for _, annotation := range set {
		if match, ok := annotation.(A); ok {
			return match, true
		}
	}
	var zero A
	return zero, false
}

// Has reports whether the set contains an annotation of type A.
func Has[A Annotation](set AnnotationSet) bool {
	_, ok := FindIn[A](set)
	return ok
}

// Merge returns a new set with extra appended after the receiver's
// annotations. Because queries take the first match per kind, annotations
// already present keep precedence over the appended ones.
func (s AnnotationSet) Merge(extra ...Annotation) AnnotationSet {
	if len(extra) == 0 {
		return s
	}
	merged := make(AnnotationSet, 0, len(s)+len(extra))
	merged = append(merged, s...)
	merged = append(merged, extra...)
	return merged
}
