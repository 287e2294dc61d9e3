// Package descriptor defines the contract between an introspection facility
// and the schema synthesis engine: the [Type] handle describing a program
// type's shape, the [Member] record for its fields, and the annotation
// variants ([FormatAs], [ExposeAs], [Description], [Title], [Hide], [Order],
// [MultiSelect]) that override how a type or field is rendered.
//
// The package carries no reflection of its own. A concrete facility such as
// reflectdesc maps a language's type metadata onto this contract; the engine
// consumes Types and AnnotationSets without assuming where they came from.
package descriptor
