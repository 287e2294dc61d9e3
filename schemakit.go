package schemakit

import (
	"github.com/schemakit/schemakit/descriptor"
	"github.com/schemakit/schemakit/descriptor/reflectdesc"
	"github.com/schemakit/schemakit/fragment"
	"github.com/schemakit/schemakit/present"
	"github.com/schemakit/schemakit/synth"
)

// defaultSynthesizer backs the package-level entry points. Its composite
// cache is shared process-wide; use [synth.New] directly for an isolated
// cache or a custom primitive table.
var defaultSynthesizer = synth.New()

// CreateSchema derives the JSON Schema fragment for the Go type T.
//
// Example:
//
//	type Person struct {
//	    Name string `json:"name"`
//	    Age  *int   `json:"age"`
//	}
//
//	frag, err := schemakit.CreateSchema[Person]()
func CreateSchema[T any]() (fragment.Fragment, error) {
	return defaultSynthesizer.CreateSchema(reflectdesc.For[T]())
}

// CreateSchemaFor derives the schema fragment for an already-built type
// descriptor, for callers with their own introspection facility.
func CreateSchemaFor(t descriptor.Type) (fragment.Fragment, error) {
	return defaultSynthesizer.CreateSchema(t)
}

// CreatePrettySchema derives the schema for T and renders it as indented
// JSON wrapped in a display container with the given left padding in pixels.
func CreatePrettySchema[T any](indentPixels int) (string, error) {
	frag, err := CreateSchema[T]()
	if err != nil {
		return "", err
	}
	return present.HTML(frag, indentPixels)
}

// CreateMarkdownSchema is [CreatePrettySchema] with the decorated output
// converted to Markdown.
func CreateMarkdownSchema[T any](indentPixels int) (string, error) {
	frag, err := CreateSchema[T]()
	if err != nil {
		return "", err
	}
	return present.Markdown(frag, indentPixels)
}
