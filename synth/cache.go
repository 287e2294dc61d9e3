package synth

import (
	"sync"

	"github.com/schemakit/schemakit/fragment"
)

// cache memoizes the fragments of composite types, keyed by canonical type
// name. Entries are written at most once and never invalidated: type shapes
// are fixed at build time, so a finished fragment stays valid for the life of
// the process.
//
// Concurrent callers may race to decompose the same uncached type; that is
// resolved by redundant computation, since decomposition is a pure function
// of the type descriptor. The insert is an atomic insert-if-absent, so every
// reader observes exactly one complete fragment per name.
type cache struct {
	entries sync.Map // canonical name -> fragment.Fragment
}

func (c *cache) get(name string) (fragment.Fragment, bool) {
	value, ok := c.entries.Load(name)
	if !ok {
		return fragment.Empty(), false
	}
	return value.(fragment.Fragment), true
}

// insert stores frag under name unless an entry already exists, and returns
// the fragment that ended up in the cache.
func (c *cache) insert(name string, frag fragment.Fragment) fragment.Fragment {
	stored, _ := c.entries.LoadOrStore(name, frag)
	return stored.(fragment.Fragment)
}
