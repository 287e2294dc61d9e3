// Package primitives holds the primitive type table: the static mapping from
// a canonical type name to its base JSON Schema fragment. The table is
// configuration, not logic; deployments replace or extend it via [Table.Merge]
// and the loaders in this package.
package primitives

import "github.com/schemakit/schemakit/fragment"

// Table maps canonical type names to schema fragments. A Table is built once
// and read concurrently; it must not be modified after being handed to a
// synthesizer.
type Table struct {
	entries map[string]fragment.Fragment
}

// New returns an empty table with the given entries.
func New(entries map[string]fragment.Fragment) *Table {
	copied := make(map[string]fragment.Fragment, len(entries))
	for name, frag := range entries {
		copied[name] = frag
	}
	return &Table{entries: copied}
}

// Default returns the table covering Go's built-in scalar types plus
// time.Time. Integer kinds map to "integer", floats to "number".
func Default() *Table {
	str := fragment.Object(fragment.F("type", fragment.String("string")))
	integer := fragment.Object(fragment.F("type", fragment.String("integer")))
	number := fragment.Object(fragment.F("type", fragment.String("number")))
	boolean := fragment.Object(fragment.F("type", fragment.String("boolean")))
	dateTime := fragment.Object(
		fragment.F("type", fragment.String("string")),
		fragment.F("format", fragment.String("date-time")),
	)

	entries := map[string]fragment.Fragment{
		"string":    str,
		"bool":      boolean,
		"float32":   number,
		"float64":   number,
		"time.Time": dateTime,
	}
	for _, name := range []string{
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
	} {
		entries[name] = integer
	}
	return &Table{entries: entries}
}

// Lookup returns the fragment registered for the canonical name, if any.
func (t *Table) Lookup(canonicalName string) (fragment.Fragment, bool) {
	frag, ok := t.entries[canonicalName]
	return frag, ok
}

// Merge returns a new table containing the receiver's entries overlaid with
// other's; on name collision the entry from other wins.
func (t *Table) Merge(other *Table) *Table {
	merged := make(map[string]fragment.Fragment, len(t.entries)+len(other.entries))
	for name, frag := range t.entries {
		merged[name] = frag
	}
	for name, frag := range other.entries {
		merged[name] = frag
	}
	return &Table{entries: merged}
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
