//
// Copyright as per Creative Commons Legal Code license, which can
// be found in the file COPYING
//

/*

Overview

This is a GO implementation of AVL trees: an ordered associative container
that guarantees O(log n) worst-case time for lookup, insertion, and
removal by maintaining the AVL balance invariant (for every node, the
heights of its two subtrees differ by at most one).

This implementation is "intrusive", meaning the caller's own record
embeds a Node header and hands the tree an "owner" value alongside it --
the style commonly used in kernel data structures. See the avlmap package
for an owning keyed-map facade built on top of this same interior, for
callers who would rather the tree store (key, value) pairs itself.

This implementation is non-recursive everywhere, including Clear, which
tears a tree down iteratively so that it does not suffer from stack
overflows regardless of tree shape. It keeps no parent pointers; removal
reconstructs the path from the root using two small scratch stacks that
live on the stack frame of the call for any realistically sized tree.

Features

Briefly, the supported operations are:

- Insertion, including a single-pass find-or-insert
- Removal
- Search (immutable and mutable variants)
- Clear (bulk teardown)

Iterators and bidirectional cursors are intentionally not implemented.

Files

- node.go    Node layout and comparator/deleter function types
- stack.go   the scratch stacks used during removal
- rotate.go  the six rotation primitives
- search.go  Get / GetMut
- insert.go  Insert / GetOrInsert
- remove.go  Remove and its retrace
- clear.go   Clear
- tree.go    the Tree handle and its constructor

License

This code and its accompanying files have been released into the
public domain.  There is NO WARRANTY, to the extent permitted by law.
See the CC0 Public Domain Dedication in the COPYING file for details

*/

package avl
