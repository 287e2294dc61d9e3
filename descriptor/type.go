package descriptor

// Structural markers reported through [Type.Bases]. The synthesis engine
// classifies a type by scanning its base list for these names before
// consulting any annotation override.
const (
	// EnumerationMarker appears in the base list of enumeration types.
	EnumerationMarker = "schemakit.Enumeration"
	// SequenceMarker appears in the base list of collection types.
	SequenceMarker = "schemakit.Sequence"
	// OptionalName is the canonical name prefix of the optional wrapper.
	OptionalName = "schemakit.Optional"
)

// Type is an opaque handle to a program type's shape. Implementations are
// owned by an introspection facility (see reflectdesc); the engine holds a
// Type only for the duration of a synthesis call and caches results by
// canonical name, never by handle.
type Type interface {
	// CanonicalName returns the full, unique name of the type, e.g.
	// "time.Time" or "schemakit.Optional[main.Address]".
	CanonicalName() string

	// SimpleName returns the short name used as a composite schema title.
	SimpleName() string

	// Bases returns the canonical names of the type's base types and
	// structural markers, outermost first.
	Bases() []string

	// TypeArgs returns the type arguments of a parameterized shape: the
	// wrapped type for optionals, the element type for collections. Empty
	// for plain types.
	TypeArgs() []Type

	// Members returns the field-like members of a record type in
	// declaration order. Empty for non-records.
	Members() []Member

	// Annotations returns the annotations attached to the type itself.
	Annotations() AnnotationSet

	// IsRecord reports whether the type is class-like: named, with typed
	// fields that can be decomposed into schema properties.
	IsRecord() bool

	// EnumValues returns the textual forms of an enumeration's values, in
	// their defining order. Only meaningful when Bases contains
	// EnumerationMarker; queried at synthesis time.
	EnumValues() []string
}

// Member describes one field-like member of a record type.
type Member struct {
	// Name is the member's emitted property name.
	Name string
	// Type is the member's declared type.
	Type Type
	// Annotations holds the overrides attached to the member.
	Annotations AnnotationSet
	// Mutable reports whether the member has write access. Both readable
	// and writable members participate in decomposition.
	Mutable bool
}

// HasBase reports whether t lists the given canonical name among its bases.
func HasBase(t Type, name string) bool {
	for _, base := range t.Bases() {
		if base == name {
			return true
		}
	}
	return false
}

// Enumeration is implemented by enumeration types to expose their value set.
// The introspection facility queries EnumValues on the type's zero value at
// synthesis time, mirroring a companion-object lookup.
type Enumeration interface {
	EnumValues() []string
}

// Optional is the canonical optional wrapper. A record field declared as
// Optional[T] (or as a pointer, which the reflection facility treats the
// same way) is excluded from the required list and its schema is the schema
// of T.
type Optional[T any] struct {
	value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: &v}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the wrapped value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	if o.value == nil {
		var zero T
		return zero, false
	}
	return *o.value, true
}

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool {
	return o.value != nil
}
