package reflectdesc

import (
	"reflect"
	"strings"

	"github.com/schemakit/schemakit/descriptor"
)

// Annotated can be implemented by a type to attach annotations to the type
// itself, mirroring type-level annotations in the source program. The method
// is queried on the zero value and must not depend on receiver state.
type Annotated interface {
	SchemaAnnotations() []descriptor.Annotation
}

var (
	enumerationType = reflect.TypeOf((*descriptor.Enumeration)(nil)).Elem()
	annotatedType   = reflect.TypeOf((*Annotated)(nil)).Elem()
)

// For returns the descriptor for the Go type T.
func For[T any]() descriptor.Type {
	return Of(reflect.TypeFor[T]())
}

// Of returns the descriptor for a reflect.Type. Construction is cheap and
// lazy: members and enumeration values are derived on demand, so descriptors
// for recursive type graphs never loop during construction.
func Of(t reflect.Type) descriptor.Type {
	return rtype{t: t}
}

// rtype adapts a reflect.Type to the descriptor.Type contract.
type rtype struct {
	t reflect.Type
}

func (r rtype) CanonicalName() string {
	if wrapped, ok := optionalElem(r.t); ok {
		return descriptor.OptionalName + "[" + Of(wrapped).CanonicalName() + "]"
	}
	if r.t.PkgPath() != "" {
		return r.t.PkgPath() + "." + r.t.Name()
	}
	return r.t.String()
}

func (r rtype) SimpleName() string {
	if _, ok := optionalElem(r.t); ok {
		return "Optional"
	}
	if name := r.t.Name(); name != "" {
		if i := strings.Index(name, "["); i > 0 {
			return name[:i]
		}
		return name
	}
	return r.t.String()
}

func (r rtype) Bases() []string {
	if isEnumeration(r.t) {
		return []string{descriptor.EnumerationMarker}
	}
	if _, ok := optionalElem(r.t); ok {
		return []string{descriptor.OptionalName}
	}
	switch r.t.Kind() {
	case reflect.Slice, reflect.Array:
		return []string{descriptor.SequenceMarker}
	}
	return nil
}

func (r rtype) TypeArgs() []descriptor.Type {
	if wrapped, ok := optionalElem(r.t); ok {
		return []descriptor.Type{Of(wrapped)}
	}
	switch r.t.Kind() {
	case reflect.Slice, reflect.Array:
		return []descriptor.Type{Of(r.t.Elem())}
	}
	return nil
}

func (r rtype) Members() []descriptor.Member {
	if !r.IsRecord() {
		return nil
	}
	var members []descriptor.Member
	for i := 0; i < r.t.NumField(); i++ {
		field := r.t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, skip := memberName(field)
		if skip {
			continue
		}
		annotations := parseMemberTag(r.t, field)
		annotations = annotations.Merge(registeredFieldAnnotations(r.t, field.Name)...)
		members = append(members, descriptor.Member{
			Name:        name,
			Type:        Of(field.Type),
			Annotations: annotations,
			Mutable:     true,
		})
	}
	return members
}

func (r rtype) Annotations() descriptor.AnnotationSet {
	var set descriptor.AnnotationSet
	if impl, ok := zeroValueAs[Annotated](r.t, annotatedType); ok {
		set = descriptor.AnnotationSet(impl.SchemaAnnotations())
	}
	return set.Merge(registeredTypeAnnotations(r.t)...)
}

func (r rtype) IsRecord() bool {
	if _, ok := optionalElem(r.t); ok {
		return false
	}
	if isEnumeration(r.t) {
		return false
	}
	return r.t.Kind() == reflect.Struct
}

func (r rtype) EnumValues() []string {
	if impl, ok := zeroValueAs[descriptor.Enumeration](r.t, enumerationType); ok {
		return impl.EnumValues()
	}
	return nil
}

// memberName resolves the emitted property name from the json tag, falling
// back to the Go field name. A json:"-" tag excludes the field outright.
func memberName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	name := field.Name
	if tag != "" {
		if commaIdx := strings.Index(tag, ","); commaIdx != -1 {
			tag = tag[:commaIdx]
		}
		if tag != "" {
			name = tag
		}
	}
	return name, false
}

// optionalElem reports whether t is an optional wrapper and returns the
// wrapped type. Pointers and descriptor.Optional[T] both qualify.
func optionalElem(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() == reflect.Pointer {
		return t.Elem(), true
	}
	if t.Kind() == reflect.Struct &&
		t.PkgPath() == "github.com/schemakit/schemakit/descriptor" &&
		strings.HasPrefix(t.Name(), "Optional[") {
		// The wrapper stores its payload as a single *T field.
		return t.Field(0).Type.Elem(), true
	}
	return nil, false
}

func isEnumeration(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		return false
	}
	return t.Implements(enumerationType) || reflect.PointerTo(t).Implements(enumerationType)
}

// zeroValueAs materialises a zero value of t and asserts it (or its address)
// to the interface I, supporting both value and pointer receivers.
func zeroValueAs[I any](t reflect.Type, iface reflect.Type) (I, bool) {
	var zero I
	if t.Kind() == reflect.Pointer {
		return zero, false
	}
	if t.Implements(iface) {
		impl, ok := reflect.Zero(t).Interface().(I)
		return impl, ok
	}
	if reflect.PointerTo(t).Implements(iface) {
		impl, ok := reflect.New(t).Interface().(I)
		return impl, ok
	}
	return zero, false
}
