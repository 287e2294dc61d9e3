// Package reflectdesc implements the descriptor contract on top of Go
// reflection. It maps Go shapes onto the engine's classification surface:
// pointers and [descriptor.Optional] become the optional wrapper, slices and
// arrays become sequences, named types implementing
// [descriptor.Enumeration] become enumerations, and structs become records.
//
// Field overrides are declared in the `schema` struct tag; annotations the
// tag grammar cannot carry (notably ExposeAs type references) are attached
// programmatically via [Annotate] and [AnnotateField].
package reflectdesc
