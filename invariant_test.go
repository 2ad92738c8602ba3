package avl

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkBalance walks the subtree verifying that every stored balance
// factor equals height(right)-height(left) and has magnitude <= 1
// (testable property 2), and counts the nodes visited.
func checkBalance[T any](t *testing.T, n *Node[T]) (height, count int) {
	t.Helper()
	if n == nil {
		return 0, 0
	}
	lh, lc := checkBalance(t, n.left)
	rh, rc := checkBalance(t, n.right)

	diff := rh - lh
	require.LessOrEqual(t, diff, 1, "node out of AVL balance (too right heavy)")
	require.GreaterOrEqual(t, diff, -1, "node out of AVL balance (too left heavy)")
	require.Equal(t, diff, int(n.balance), "stored balance factor does not match subtree heights")

	if lh > rh {
		height = lh + 1
	} else {
		height = rh + 1
	}
	return height, lc + rc + 1
}

// checkHeightBound verifies testable property 4: height(root) <=
// ceil(1.44*log2(len+1.065) - 0.328).
func checkHeightBound(t *testing.T, height, size int) {
	t.Helper()
	if size == 0 {
		require.Equal(t, 0, height)
		return
	}
	bound := math.Ceil(1.44*math.Log2(float64(size)+1.065) - 0.328)
	require.LessOrEqual(t, float64(height), bound, "AVL height bound violated")
}

// inorderKeys walks the tree using keyOf to project each owner, checking
// BST order as it goes (testable property 1), and returns the sequence.
func inorderKeys[T, K any](t *testing.T, n *Node[T], keyOf func(T) K, less func(a, b K) bool, out []K) []K {
	t.Helper()
	if n == nil {
		return out
	}
	out = inorderKeys(t, n.left, keyOf, less, out)
	k := keyOf(n.owner)
	if len(out) > 0 {
		require.True(t, less(out[len(out)-1], k), "BST order violated: %v should precede %v", out[len(out)-1], k)
	}
	out = append(out, k)
	out = inorderKeys(t, n.right, keyOf, less, out)
	return out
}

// assertInvariants checks BST order, AVL balance, size accounting, and
// the AVL height bound against t's current contents. keyOf/less project
// and order owners for the BST-order check.
func assertInvariants[T, K any](tst *testing.T, t *Tree[T], keyOf func(T) K, less func(a, b K) bool) {
	tst.Helper()
	height, count := checkBalance(tst, t.root)
	assert.Equal(tst, t.size, count, "Len does not match reachable node count")
	checkHeightBound(tst, height, t.size)
	inorderKeys(tst, t.root, keyOf, less, nil)
}

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func intKeyCompare(key int, owner int) int {
	return intCompare(key, owner)
}

func intLess(a, b int) bool { return a < b }

func identity(i int) int { return i }

// TestInvariantsSortedInsert exercises scenario S4: inserting 0..N-1 in
// ascending order must keep the tree AVL-balanced after every insert, and
// every key must be retrievable once all insertions are done.
func TestInvariantsSortedInsert(t *testing.T) {
	n := 2048
	if testing.Short() {
		n = 256
	}

	tr := New(intCompare, nil)
	items := make([]Node[int], n)

	for i := 0; i < n; i++ {
		Insert(tr, &items[i], i)
		assertInvariants[int, int](t, tr, identity, intLess)
	}

	for i := 0; i < n; i++ {
		got := Get(tr, i, intKeyCompare)
		require.NotNil(t, got)
		require.Equal(t, i, got.Owner())
	}
}

// TestInvariantsRemoveCascade exercises scenario S5: insert a random
// permutation, then remove in a different random permutation, checking
// invariants and membership after every removal.
func TestInvariantsRemoveCascade(t *testing.T) {
	n := 2048
	if testing.Short() {
		n = 256
	}

	insertOrder := shuffledRange(n, 1)
	removeOrder := shuffledRange(n, 2)

	tr := New(intCompare, nil)
	items := make([]Node[int], n)
	for _, v := range insertOrder {
		Insert(tr, &items[v], v)
	}
	assertInvariants[int, int](t, tr, identity, intLess)
	require.Equal(t, n, tr.Len())

	removed := make(map[int]bool, n)
	for idx, v := range removeOrder {
		got := Remove(tr, v, intKeyCompare)
		require.NotNil(t, got)
		removed[v] = true

		require.Equal(t, n-idx-1, tr.Len())
		assertInvariants[int, int](t, tr, identity, intLess)

		for _, other := range removeOrder {
			present := Get(tr, other, intKeyCompare) != nil
			require.Equal(t, !removed[other], present, "membership wrong for %d", other)
		}
	}
}

// shuffledRange returns a deterministic pseudo-random permutation of
// 0..n-1 (a fixed Fisher-Yates shuffle keyed on seed, not math/rand, so
// the test is reproducible without depending on global RNG state).
func shuffledRange(n int, seed uint64) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	state := seed + 0x9E3779B97F4A7C15
	for i := len(out) - 1; i > 0; i-- {
		state = state*6364136223846793005 + 1442695040888963407
		j := int(state>>33) % (i + 1)
		if j < 0 {
			j += i + 1
		}
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// TestInvariantsOrderIndependence exercises testable property 8: any two
// permutations of the same key set, each inserted then looked up, produce
// identical observable contents.
func TestInvariantsOrderIndependence(t *testing.T) {
	n := 500
	permA := shuffledRange(n, 11)
	permB := shuffledRange(n, 97)

	build := func(order []int) []int {
		tr := New(intCompare, nil)
		items := make([]Node[int], n)
		for _, v := range order {
			Insert(tr, &items[v], v)
		}
		return inorderKeys(t, tr.root, identity, intLess, nil)
	}

	got := build(permA)
	want := build(permB)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("inorder contents differ by insertion order (-want +got):\n%s", diff)
	}
}
