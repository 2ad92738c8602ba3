// Package avlmap is an owning keyed-map facade over avl.Tree: unlike the
// intrusive avl package, callers do not embed a node header in their own
// records. The map allocates and owns one entry per (key, value) pair and
// frees it automatically as entries are replaced or removed.
//
// A void-pointer-and-comparison-callback implementation can be built on
// top of an intrusive tree without much trouble; this package is that
// facade. Here the callback is a Go comparator over the key type K
// instead of a void pointer, following common Put/Get/Delete naming for
// keyed map types.
package avlmap

import (
	"github.com/nsavoretti/avl"
)

// Comparator orders two keys the same way a standard library comparison
// function does: negative if a < b, zero if equal, positive if a > b.
type Comparator[K any] func(a, b K) int

type entry[K any, V any] struct {
	hdr   avl.Node[*entry[K, V]]
	key   K
	value V
}

// Map is an ordered associative container keyed by K, storing values of
// type V. The zero value is not valid; use New or NewWith.
type Map[K any, V any] struct {
	tree *avl.Tree[*entry[K, V]]
	cmp  Comparator[K]
}

// NewWith constructs an empty Map ordered by cmp.
func NewWith[K any, V any](cmp Comparator[K]) *Map[K, V] {
	if cmp == nil {
		panic("avlmap: NewWith requires a non-nil comparator")
	}
	m := &Map[K, V]{cmp: cmp}
	m.tree = avl.New(func(a, b *entry[K, V]) int {
		return cmp(a.key, b.key)
	}, nil)
	return m
}

func (m *Map[K, V]) keyCompare(key K, owner *entry[K, V]) int {
	return m.cmp(key, owner.key)
}

// Len returns the number of entries currently stored.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Put inserts key with the given value, or overwrites the value of an
// existing entry for key. Returns true if a new entry was created.
func (m *Map[K, V]) Put(key K, value V) bool {
	e := &entry[K, V]{key: key, value: value}
	old := avl.Insert(m.tree, &e.hdr, e)
	return old == nil
}

// Get returns the value stored for key, and whether it was found.
func (m *Map[K, V]) Get(key K) (V, bool) {
	n := avl.Get(m.tree, key, m.keyCompare)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.Owner().value, true
}

// GetOrPut returns the existing value for key if present; otherwise it
// inserts key with value produced by makeValue and returns that. The second
// result reports whether a new entry was created.
func (m *Map[K, V]) GetOrPut(key K, makeValue func() V) (V, bool) {
	if n := avl.Get(m.tree, key, m.keyCompare); n != nil {
		return n.Owner().value, false
	}
	e := &entry[K, V]{key: key, value: makeValue()}
	avl.Insert(m.tree, &e.hdr, e)
	return e.value, true
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	return avl.Get(m.tree, key, m.keyCompare) != nil
}

// Delete removes the entry for key, if any, and reports whether one was
// removed.
func (m *Map[K, V]) Delete(key K) bool {
	return avl.Remove(m.tree, key, m.keyCompare) != nil
}

// Clear removes every entry, releasing the map's internal nodes for
// garbage collection.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Keys returns every key in ascending order. Time complexity is O(n).
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.tree.Len())
	walkInorder(m.tree.Root(), func(e *entry[K, V]) {
		out = append(out, e.key)
	})
	return out
}

// Values returns every value, ordered by ascending key. Time complexity
// is O(n).
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.tree.Len())
	walkInorder(m.tree.Root(), func(e *entry[K, V]) {
		out = append(out, e.value)
	})
	return out
}

func walkInorder[K any, V any](n *avl.Node[*entry[K, V]], fn func(*entry[K, V])) {
	if n == nil {
		return
	}
	walkInorder(n.Left(), fn)
	fn(n.Owner())
	walkInorder(n.Right(), fn)
}
