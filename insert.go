package avl

// Insert installs item into the tree under owner's order. item must not
// already be linked into any tree; its left/right/balance fields are
// reset here. If an element comparing equal to owner already exists,
// item is swapped into its place (inheriting its children and balance
// factor) and the replaced node is returned for the caller to dispose of
// -- the tree never calls the deleter for a node displaced this way,
// since ownership passes straight back to the caller. On a genuine
// insertion, Insert returns nil and Len grows by one.
func Insert[T any](t *Tree[T], item *Node[T], owner T) *Node[T] {
	item.left = nil
	item.right = nil
	item.balance = 0
	item.owner = owner

	if t.root == nil {
		t.root = item
		t.size++
		return nil
	}

	var pivot, pivotParent *Node[T]
	var pivotParentDir dir
	var path dirStack

	cur := t.root
	var parent *Node[T]
	var parentDir dir

	for cur != nil {
		res := t.compare(owner, cur.owner)
		if res == 0 {
			item.left = cur.left
			item.right = cur.right
			item.balance = cur.balance
			replaceChild(t, parent, parentDir, item)
			return cur
		}

		if cur.balance != 0 {
			pivot = cur
			pivotParent = parent
			pivotParentDir = parentDir
			path = dirStack{}
		}

		step := dirRight
		if res < 0 {
			step = dirLeft
		}
		path.push(step)

		parent = cur
		parentDir = step
		if step == dirLeft {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	replaceChild(t, parent, parentDir, item)
	t.size++

	if pivot == nil {
		pivot = t.root
		pivotParent = nil
	}
	rebalanceAfterInsert(t, pivot, pivotParent, pivotParentDir, &path)
	return nil
}

// GetOrInsert looks up the node whose owner compares equal to key; on a
// hit it returns that node and false. On a miss it calls factory(key) to
// build a new node (factory must return a node whose owner compares
// equal to key under cmp), inserts it, and returns the new node and true.
// factory is invoked at most once, and only on a miss.
func GetOrInsert[K, T any](t *Tree[T], key K, cmp HetCompareFunc[K, T], factory func(key K) *Node[T]) (*Node[T], bool) {
	if t.root == nil {
		item := factory(key)
		item.left = nil
		item.right = nil
		item.balance = 0
		t.root = item
		t.size++
		return item, true
	}

	var pivot, pivotParent *Node[T]
	var pivotParentDir dir
	var path dirStack

	cur := t.root
	var parent *Node[T]
	var parentDir dir

	for cur != nil {
		res := cmp(key, cur.owner)
		if res == 0 {
			return cur, false
		}

		if cur.balance != 0 {
			pivot = cur
			pivotParent = parent
			pivotParentDir = parentDir
			path = dirStack{}
		}

		step := dirRight
		if res < 0 {
			step = dirLeft
		}
		path.push(step)

		parent = cur
		parentDir = step
		if step == dirLeft {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	item := factory(key)
	item.left = nil
	item.right = nil
	item.balance = 0

	replaceChild(t, parent, parentDir, item)
	t.size++

	if pivot == nil {
		pivot = t.root
		pivotParent = nil
	}
	rebalanceAfterInsert(t, pivot, pivotParent, pivotParentDir, &path)
	return item, true
}

// replaceChild re-links parent's child in direction d to point at
// newChild, or updates the tree's root if parent is nil.
func replaceChild[T any](t *Tree[T], parent *Node[T], d dir, newChild *Node[T]) {
	if parent == nil {
		t.root = newChild
		return
	}
	if d == dirLeft {
		parent.left = newChild
	} else {
		parent.right = newChild
	}
}

// rebalanceAfterInsert replays the recorded pivot->leaf direction path,
// adjusting each visited node's balance factor by -1 for a left step and
// +1 for a right step, then applies at most one rotation at the pivot if
// it ends up at ±2. A single rotation always suffices for insertion: it
// restores the subtree's pre-insertion height, so no ancestor above the
// pivot ever needs to be revisited.
func rebalanceAfterInsert[T any](t *Tree[T], pivot, pivotParent *Node[T], pivotParentDir dir, path *dirStack) {
	node := pivot
	for i := 0; i < path.len(); i++ {
		if path.at(i) == dirLeft {
			node.balance--
			node = node.left
		} else {
			node.balance++
			node = node.right
		}
	}

	if pivot.balance != 2 && pivot.balance != -2 {
		return
	}

	newSub := dispatchRotateInsert(pivot)
	replaceChild(t, pivotParent, pivotParentDir, newSub)
}
