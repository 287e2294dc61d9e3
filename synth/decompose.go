package synth

import (
	"sort"

	"github.com/schemakit/schemakit/descriptor"
	"github.com/schemakit/schemakit/fragment"
)

// property is one surviving record member with its resolved fragment and
// ordering rank.
type property struct {
	name     string
	frag     fragment.Fragment
	rank     int
	required bool
}

// decompose renders a record type as an object schema: title, required list,
// and properties in override-rank order. Results are memoized per canonical
// type name; the cache entry is written only after decomposition completes,
// so readers never observe a partial fragment.
func (s *Synthesizer) decompose(t descriptor.Type, visited visitedSet) (fragment.Fragment, error) {
	name := t.CanonicalName()
	if frag, ok := s.cache.get(name); ok {
		return frag, nil
	}
	s.logger.Debug("decomposing composite type", "type", name)

	childVisited := visited.with(name)

	var properties []property
	for _, member := range t.Members() {
		if descriptor.Has[descriptor.Hide](member.Annotations) {
			continue
		}

		frag, err := s.memberFragment(member, childVisited)
		if err != nil {
			return fragment.Empty(), err
		}
		frag = decorate(frag, member.Annotations)

		rank := 0
		if order, ok := descriptor.FindIn[descriptor.Order](member.Annotations); ok {
			rank = order.Rank
		}

		properties = append(properties, property{
			name: member.Name,
			frag: frag,
			// Required-ness depends only on the declared type being the
			// optional wrapper, never on annotations.
			required: !descriptor.HasBase(member.Type, descriptor.OptionalName),
			rank:     rank,
		})
	}

	// Stable sort keeps declaration order among members sharing a rank,
	// including the default rank 0.
	sort.SliceStable(properties, func(i, j int) bool {
		return properties[i].rank < properties[j].rank
	})

	var required []string
	fields := make([]fragment.Field, 0, len(properties))
	for _, prop := range properties {
		if prop.required {
			required = append(required, prop.name)
		}
		fields = append(fields, fragment.F(prop.name, prop.frag))
	}

	frag := fragment.Object(
		fragment.F("title", fragment.String(t.SimpleName())),
		fragment.F("type", fragment.String("object")),
	)
	if len(required) > 0 {
		frag = frag.With("required", fragment.StringArray(required...))
	}
	frag = frag.With("properties", fragment.Object(fields...))
	if description, ok := descriptor.FindIn[descriptor.Description](t.Annotations()); ok && description.Text != "" {
		frag = frag.With("description", fragment.String(description.Text))
	}

	return s.cache.insert(name, frag), nil
}

// memberFragment resolves one member's fragment: a MultiSelect override is
// captured and passed into synthesis; otherwise a member-level FormatAs is
// the complete answer and beats a member-level ExposeAs, which in turn
// redirects synthesis to its target; otherwise the declared type is used.
func (s *Synthesizer) memberFragment(member descriptor.Member, visited visitedSet) (fragment.Fragment, error) {
	if multiSelect, ok := descriptor.FindIn[descriptor.MultiSelect](member.Annotations); ok {
		return s.synthesize(member.Type, visited, &multiSelect)
	}
	if formatAs, ok := descriptor.FindIn[descriptor.FormatAs](member.Annotations); ok {
		frag := fragment.Object(fragment.F("type", fragment.String(formatAs.Type)))
		if formatAs.Format != "" {
			frag = frag.With("format", fragment.String(formatAs.Format))
		}
		return frag, nil
	}
	if exposeAs, ok := descriptor.FindIn[descriptor.ExposeAs](member.Annotations); ok {
		return s.synthesize(exposeAs.Target, visited, nil)
	}
	return s.synthesize(member.Type, visited, nil)
}
