package avl

// Clear empties the tree, invoking the deleter (if any) on every node
// exactly once, and resets Len to 0. It uses O(1) auxiliary stack frames
// regardless of tree height: recursion is disallowed here because a
// post-order recursive teardown could overflow the goroutine stack on
// pathological depths, and because teardown must remain safe even when
// other invariants have been weakened.
//
// The algorithm repeatedly rotates the current node's left child to the
// top of the subtree -- a plain structural right rotation, which is
// exactly rotateRightRaw already used by insertion and removal -- until
// no left child remains, emits that node to the deleter, and continues
// with its right child. Every node is visited exactly once in O(n) time.
func (t *Tree[T]) Clear() {
	cur := t.root
	for cur != nil {
		for cur.left != nil {
			cur = rotateRightRaw(cur, cur.left)
		}
		next := cur.right
		if t.del != nil {
			t.del(cur.owner)
		}
		cur = next
	}
	t.root = nil
	t.size = 0
}
