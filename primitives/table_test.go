package primitives

import (
	"testing"

	"github.com/schemakit/schemakit/fragment"
)

func TestDefaultTableMapsBuiltins(t *testing.T) {
	table := Default()
	cases := []struct {
		name     string
		expected string
	}{
		{"string", `{"type":"string"}`},
		{"bool", `{"type":"boolean"}`},
		{"int", `{"type":"integer"}`},
		{"uint32", `{"type":"integer"}`},
		{"float64", `{"type":"number"}`},
		{"time.Time", `{"type":"string","format":"date-time"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			frag, ok := table.Lookup(tc.name)
			if !ok {
				t.Fatalf("Expected an entry for %s", tc.name)
			}
			if frag.String() != tc.expected {
				t.Errorf("Expected '%s', got '%s'", tc.expected, frag.String())
			}
		})
	}
}

func TestLookupMissingType(t *testing.T) {
	if _, ok := Default().Lookup("example.Widget"); ok {
		t.Error("Expected no entry for an unknown type")
	}
}

func TestMergeOverlaysEntries(t *testing.T) {
	custom := New(map[string]fragment.Fragment{
		"string": fragment.Object(
			fragment.F("type", fragment.String("string")),
			fragment.F("maxLength", fragment.Number(255)),
		),
		"example.Widget": fragment.Object(fragment.F("type", fragment.String("object"))),
	})
	merged := Default().Merge(custom)

	frag, ok := merged.Lookup("string")
	if !ok {
		t.Fatal("Expected a string entry")
	}
	if _, ok := frag.Get("maxLength"); !ok {
		t.Error("Expected overlay entry to win on collision")
	}
	if _, ok := merged.Lookup("example.Widget"); !ok {
		t.Error("Expected new entry to be present")
	}
	if _, ok := merged.Lookup("int"); !ok {
		t.Error("Expected default entries to survive the merge")
	}
}

func TestMergeDoesNotMutateReceiver(t *testing.T) {
	base := Default()
	before := base.Len()
	_ = base.Merge(New(map[string]fragment.Fragment{
		"example.Widget": fragment.Empty(),
	}))
	if base.Len() != before {
		t.Errorf("Expected receiver to keep %d entries, got %d", before, base.Len())
	}
}
