package avlmap

import "golang.org/x/exp/constraints"

// New constructs an empty Map for an ordered key type, using the natural
// less-than order (ties broken by equality). Ground in the same
// constraints.Ordered convenience the wider package collection's own AVL
// tree uses for its default constructor.
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return NewWith[K, V](OrderedCompare[K])
}

// OrderedCompare is the natural Comparator for any constraints.Ordered
// type.
func OrderedCompare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
