package reflectdesc

import (
	"reflect"
	"sync"

	"github.com/schemakit/schemakit/descriptor"
)

// registry collects annotations attached programmatically, for overrides the
// struct-tag grammar cannot express (ExposeAs carries a type reference) and
// for annotating types the caller does not own. Registration normally
// happens in init or package variable initialisation, before any synthesis.
var registry = struct {
	sync.RWMutex
	types  map[reflect.Type][]descriptor.Annotation
	fields map[reflect.Type]map[string][]descriptor.Annotation
}{
	types:  map[reflect.Type][]descriptor.Annotation{},
	fields: map[reflect.Type]map[string][]descriptor.Annotation{},
}

// Annotate attaches annotations to the type T itself. Annotations registered
// earlier take precedence over later ones of the same kind; tag-derived and
// interface-derived annotations take precedence over registered ones.
func Annotate[T any](annotations ...descriptor.Annotation) {
	t := reflect.TypeFor[T]()
	registry.Lock()
	defer registry.Unlock()
	registry.types[t] = appendCopy(registry.types[t], annotations)
}

// AnnotateField attaches annotations to the named Go field of the struct
// type T. The name is the Go field name, not the emitted property name.
func AnnotateField[T any](fieldName string, annotations ...descriptor.Annotation) {
	t := reflect.TypeFor[T]()
	registry.Lock()
	defer registry.Unlock()
	fields, ok := registry.fields[t]
	if !ok {
		fields = map[string][]descriptor.Annotation{}
		registry.fields[t] = fields
	}
	fields[fieldName] = appendCopy(fields[fieldName], annotations)
}

// appendCopy never appends in place: a registered slice is replaced, not
// grown, so slice headers handed to earlier readers keep a private backing
// array even when registration happens after synthesis has started.
func appendCopy(existing, extra []descriptor.Annotation) []descriptor.Annotation {
	combined := make([]descriptor.Annotation, 0, len(existing)+len(extra))
	combined = append(combined, existing...)
	return append(combined, extra...)
}

// ExposeAs builds an ExposeAs annotation targeting the Go type Target.
func ExposeAs[Target any]() descriptor.ExposeAs {
	return descriptor.ExposeAs{Target: For[Target]()}
}

func registeredTypeAnnotations(t reflect.Type) []descriptor.Annotation {
	registry.RLock()
	defer registry.RUnlock()
	return registry.types[t]
}

func registeredFieldAnnotations(t reflect.Type, fieldName string) []descriptor.Annotation {
	registry.RLock()
	defer registry.RUnlock()
	return registry.fields[t][fieldName]
}
