package tree

import "github.com/benz9527/xavl/lib/infra"

// AVLNode is the read-only view of one tree node. It is exposed for
// shape assertions and invariant validation, never for mutation.
type AVLNode[E infra.Ordered] interface {
	Elem() E
	Left() AVLNode[E]
	Right() AVLNode[E]
	// BalanceFactor is height(right subtree) minus height(left
	// subtree). It stays within {-1,0,1} outside a rebalance.
	BalanceFactor() int8
}

// TreeIter is a forward-only, non-restartable in-order cursor.
// Next reports false once the sequence is exhausted (or once a range
// cursor reaches its upper bound) and keeps reporting false after.
type TreeIter[E infra.Ordered] interface {
	Next() (E, bool)
}

// AVLTree is an ordered, duplicate-free element set balanced by the
// AVL height rule. Insertion and lookup are O(log n); the only
// structural mutations are Insert and Drain.
type AVLTree[E infra.Ordered] interface {
	Len() int64
	Empty() bool
	Root() AVLNode[E]
	// Insert reports false and keeps the tree untouched when an
	// element equal to elem is already present.
	Insert(elem E) bool
	// Get returns the stored element equal to elem if present.
	Get(elem E) (E, bool)
	// MustGet is the indexed-access form of Get. Looking up an absent
	// element is a caller contract violation and panics.
	MustGet(elem E) E
	// Foreach runs action over the elements in ascending order until
	// action returns false.
	Foreach(action func(idx int64, elem E) bool)
	// Iter yields every element in ascending order.
	Iter() TreeIter[E]
	// Range yields the elements of the half-open interval
	// [start, end) in ascending order. A nil bound leaves that side
	// unbounded.
	Range(start, end *E) TreeIter[E]
	// Drain empties the tree and hands every element over to the
	// returned cursor in ascending order.
	Drain() TreeIter[E]
}
