// Package schemakit converts annotated Go types into JSON Schema fragments.
//
// The package-level entry points [CreateSchema], [CreatePrettySchema], and
// [CreateMarkdownSchema] derive a schema from a type parameter using the
// reflection-backed descriptor facility and a shared synthesis engine.
// Overrides are declared in `schema` struct tags (description, title, order,
// format, hide, multiselect) or attached programmatically through
// reflectdesc for annotations tags cannot carry, such as ExposeAs type
// references.
//
// Fields are required unless declared as a pointer or as
// [descriptor.Optional]; recursive record types fail with
// [synth.RecursiveTypeError].
package schemakit
