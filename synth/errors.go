package synth

import "fmt"

// RecursiveTypeError is returned when synthesis re-enters a record type that
// is already being expanded in the current call tree. Recursive record types
// cannot be expressed without schema cross-references, which this system does
// not emit, so the expansion fails instead of truncating silently.
type RecursiveTypeError struct {
	// TypeName is the canonical name of the re-entered type.
	TypeName string
}

func (e *RecursiveTypeError) Error() string {
	return fmt.Sprintf("recursive type %s cannot be rendered as a schema", e.TypeName)
}
