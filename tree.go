package avl

// Tree is the handle for an AVL tree. The zero value is not valid; use
// New.
type Tree[T any] struct {
	root *Node[T]
	size int

	compare CompareFunc[T]
	del     DeleteFunc[T]
}

// New constructs an empty tree. compare must induce a strict total order
// over every node ever inserted and must return 0 when called with the
// same owner as both arguments. del, if non-nil, is invoked exactly once
// per node when the tree relinquishes ownership of it during Clear or
// Drop; it is never called for a node returned by Remove.
func New[T any](compare CompareFunc[T], del DeleteFunc[T]) *Tree[T] {
	if compare == nil {
		panic("avl: New requires a non-nil compare function")
	}
	return &Tree[T]{compare: compare, del: del}
}

// Len returns the number of nodes currently in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// Root returns the tree's root node, or nil if the tree is empty. It
// exists for diagnostics and invariant-checking tests; ordinary callers
// should use Get/Insert/Remove.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Drop empties the tree, invoking the deleter on every node (equivalent
// to Clear), and leaves it ready for reuse or for the garbage collector to
// reclaim -- Go has no manual free, so "discard" is simply dropping the
// last reference.
func (t *Tree[T]) Drop() {
	t.Clear()
}
