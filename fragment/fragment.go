package fragment

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
)

type kind int

const (
	kindEmpty kind = iota
	kindObject
	kindArray
	kindString
	kindNumber
	kindBool
)

// Fragment is an immutable JSON-like tree value representing a piece of
// schema. Object fragments remember key insertion order, which carries the
// property ordering decided during decomposition. All modifying operations
// return a new Fragment; a Fragment is never mutated after construction and
// is safe to share across goroutines.
type Fragment struct {
	kind    kind
	str     string
	num     float64
	boolean bool
	items   []Fragment
	keys    []string
	values  map[string]Fragment
}

// Field is a key/value pair used to build object fragments in order.
type Field struct {
	Key   string
	Value Fragment
}

// F is a convenience constructor for a [Field].
func F(key string, value Fragment) Field {
	return Field{Key: key, Value: value}
}

// Empty returns the empty fragment, emitted for unknown or unmapped types.
// It marshals as {}.
func Empty() Fragment {
	return Fragment{}
}

// Object builds an object fragment with the given fields in order. A later
// duplicate key replaces the earlier value but keeps the earlier position.
func Object(fields ...Field) Fragment {
	f := Fragment{kind: kindObject, values: map[string]Fragment{}}
	for _, field := range fields {
		if _, exists := f.values[field.Key]; !exists {
			f.keys = append(f.keys, field.Key)
		}
		f.values[field.Key] = field.Value
	}
	return f
}

// Array builds an array fragment from the given items.
func Array(items ...Fragment) Fragment {
	copied := make([]Fragment, len(items))
	copy(copied, items)
	return Fragment{kind: kindArray, items: copied}
}

// StringArray builds an array fragment of string values, e.g. an enum list
// or a required list.
func StringArray(values ...string) Fragment {
	items := make([]Fragment, len(values))
	for i, v := range values {
		items[i] = String(v)
	}
	return Fragment{kind: kindArray, items: items}
}

// String returns a string fragment.
func String(v string) Fragment {
	return Fragment{kind: kindString, str: v}
}

// Number returns a number fragment.
func Number(v float64) Fragment {
	return Fragment{kind: kindNumber, num: v}
}

// Bool returns a boolean fragment.
func Bool(v bool) Fragment {
	return Fragment{kind: kindBool, boolean: v}
}

// IsEmpty reports whether f is the empty fragment.
func (f Fragment) IsEmpty() bool {
	return f.kind == kindEmpty
}

// IsObject reports whether f is an object fragment. The empty fragment also
// marshals as an object but reports false here.
func (f Fragment) IsObject() bool {
	return f.kind == kindObject
}

// Get returns the value stored under key in an object fragment.
func (f Fragment) Get(key string) (Fragment, bool) {
	if f.kind != kindObject {
		return Fragment{}, false
	}
	v, ok := f.values[key]
	return v, ok
}

// Keys returns a copy of an object fragment's keys in insertion order.
func (f Fragment) Keys() []string {
	keys := make([]string, len(f.keys))
	copy(keys, f.keys)
	return keys
}

// Items returns a copy of an array fragment's elements.
func (f Fragment) Items() []Fragment {
	items := make([]Fragment, len(f.items))
	copy(items, f.items)
	return items
}

// StringValue returns the value of a string fragment, or "" otherwise.
func (f Fragment) StringValue() string {
	return f.str
}

// BoolValue returns the value of a boolean fragment, or false otherwise.
func (f Fragment) BoolValue() bool {
	return f.boolean
}

// With returns a new object fragment with key bound to value. An existing
// key keeps its position with the value replaced; a new key is appended.
// Calling With on a non-object (including the empty fragment) promotes it to
// a fresh object holding only the new key.
func (f Fragment) With(key string, value Fragment) Fragment {
	if f.kind != kindObject {
		return Object(F(key, value))
	}
	merged := Fragment{
		kind:   kindObject,
		keys:   make([]string, len(f.keys)),
		values: make(map[string]Fragment, len(f.values)+1),
	}
	copy(merged.keys, f.keys)
	for k, v := range f.values {
		merged.values[k] = v
	}
	if _, exists := merged.values[key]; !exists {
		merged.keys = append(merged.keys, key)
	}
	merged.values[key] = value
	return merged
}

// Equal reports deep equality of two fragments, including object key order.
func (f Fragment) Equal(other Fragment) bool {
	if f.kind != other.kind {
		return false
	}
	switch f.kind {
	case kindEmpty:
		return true
	case kindString:
		return f.str == other.str
	case kindNumber:
		return f.num == other.num
	case kindBool:
		return f.boolean == other.boolean
	case kindArray:
		if len(f.items) != len(other.items) {
			return false
		}
		for i := range f.items {
			if !f.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case kindObject:
		if len(f.keys) != len(other.keys) {
			return false
		}
		for i, key := range f.keys {
			if other.keys[i] != key {
				return false
			}
			if !f.values[key].Equal(other.values[key]) {
				return false
			}
		}
		return true
	}
	return false
}

// MarshalJSON renders the fragment as JSON, emitting object keys in
// insertion order. The empty fragment marshals as {}.
func (f Fragment) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := f.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (f Fragment) encode(buf *bytes.Buffer) error {
	switch f.kind {
	case kindEmpty:
		buf.WriteString("{}")
	case kindString:
		encoded, err := gojson.Marshal(f.str)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	case kindNumber:
		encoded, err := gojson.Marshal(f.num)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	case kindBool:
		encoded, err := gojson.Marshal(f.boolean)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	case kindArray:
		buf.WriteByte('[')
		for i, item := range f.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case kindObject:
		buf.WriteByte('{')
		for i, key := range f.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodedKey, err := gojson.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(encodedKey)
			buf.WriteByte(':')
			if err := f.values[key].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// Pretty renders the fragment as indented JSON text with two-space
// indentation, preserving object key order.
func (f Fragment) Pretty() (string, error) {
	compact, err := f.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("failed to marshal fragment: %w", err)
	}
	var buf bytes.Buffer
	if err := gojson.Indent(&buf, compact, "", "  "); err != nil {
		return "", fmt.Errorf("failed to indent fragment: %w", err)
	}
	return buf.String(), nil
}

// String returns the compact JSON representation of the fragment. On
// marshalling failure it returns a JSON-formatted error string rather than
// panicking, so the result is always safe to use in log output.
func (f Fragment) String() string {
	encoded, err := f.MarshalJSON()
	if err != nil {
		return "{\"error\": \"failed to marshal fragment: " + err.Error() + "\"}"
	}
	return string(encoded)
}
