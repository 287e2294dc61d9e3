// Package synth implements the schema synthesis engine: a pure, synchronous,
// recursive decision procedure that classifies a type descriptor as an
// enumeration, optional wrapper, collection, scalar, or record, and emits the
// matching JSON Schema fragment.
//
// Override precedence for plain types is FormatAs, then ExposeAs, then the
// primitive type table, then record decomposition; description and title
// overrides are merged on top in every branch. Record fragments are memoized
// in a process-wide cache keyed by canonical type name. The only failure mode
// is [RecursiveTypeError], raised when a record type graph re-enters itself.
package synth
