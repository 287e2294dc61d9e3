package primitives

import (
	"fmt"
	"sort"

	gojson "github.com/goccy/go-json"
	"github.com/kaptinlin/jsonrepair"
	"gopkg.in/yaml.v3"

	"github.com/schemakit/schemakit/fragment"
)

// LoadYAML parses a YAML document mapping canonical type names to schema
// fragments, e.g.
//
//	string:    {type: string}
//	uuid.UUID: {type: string, format: uuid}
//
// The returned table contains only the loaded entries; merge with [Default]
// to keep the built-in mapping.
func LoadYAML(data []byte) (*Table, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse primitive table YAML: %w", err)
	}
	return tableFromRaw(raw)
}

// LoadJSON parses a JSON document with the same shape as [LoadYAML]. Tables
// are often maintained by hand, so when the content is not valid JSON it is
// repaired with jsonrepair and parsed again before giving up.
func LoadJSON(content string) (*Table, error) {
	var raw map[string]any
	if err := gojson.Unmarshal([]byte(content), &raw); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(content)
		if repairErr != nil {
			return nil, fmt.Errorf("failed to parse primitive table JSON: %w", err)
		}
		if err := gojson.Unmarshal([]byte(repaired), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse repaired primitive table JSON: %w", err)
		}
	}
	return tableFromRaw(raw)
}

func tableFromRaw(raw map[string]any) (*Table, error) {
	entries := make(map[string]fragment.Fragment, len(raw))
	for name, value := range raw {
		frag, err := fragmentFromAny(value)
		if err != nil {
			return nil, fmt.Errorf("invalid fragment for type %q: %w", name, err)
		}
		entries[name] = frag
	}
	return New(entries), nil
}

// fragmentFromAny converts a decoded YAML/JSON value into a fragment. Object
// keys are ordered deterministically: "type" first, "format" second, the
// rest alphabetical, since the decoders do not preserve document order.
func fragmentFromAny(value any) (fragment.Fragment, error) {
	switch v := value.(type) {
	case string:
		return fragment.String(v), nil
	case bool:
		return fragment.Bool(v), nil
	case int:
		return fragment.Number(float64(v)), nil
	case int64:
		return fragment.Number(float64(v)), nil
	case uint64:
		// yaml.v3 falls back to uint64 for integers above MaxInt64.
		return fragment.Number(float64(v)), nil
	case float64:
		return fragment.Number(v), nil
	case []any:
		items := make([]fragment.Fragment, 0, len(v))
		for _, item := range v {
			frag, err := fragmentFromAny(item)
			if err != nil {
				return fragment.Empty(), err
			}
			items = append(items, frag)
		}
		return fragment.Array(items...), nil
	case map[string]any:
		fields := make([]fragment.Field, 0, len(v))
		for _, key := range orderedKeys(v) {
			frag, err := fragmentFromAny(v[key])
			if err != nil {
				return fragment.Empty(), err
			}
			fields = append(fields, fragment.F(key, frag))
		}
		return fragment.Object(fields...), nil
	case nil:
		return fragment.Empty(), nil
	default:
		return fragment.Empty(), fmt.Errorf("unsupported value of type %T", value)
	}
}

func orderedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		if key != "type" && key != "format" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	ordered := make([]string, 0, len(m))
	if _, ok := m["type"]; ok {
		ordered = append(ordered, "type")
	}
	if _, ok := m["format"]; ok {
		ordered = append(ordered, "format")
	}
	return append(ordered, keys...)
}
