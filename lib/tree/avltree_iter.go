package tree

import (
	"github.com/benz9527/xavl/lib/infra"
)

// In-order cursor over borrowed nodes. The stack only ever holds the
// descent path to the upcoming element, so it stays O(log n) deep no
// matter how long the produced sequence is.
type avlIter[E infra.Ordered] struct {
	end   *E
	stack []*avlNode[E]
}

func (it *avlIter[E]) pushLeftSpine(x *avlNode[E]) {
	for ; x != nil; x = x.left {
		it.stack = append(it.stack, x)
	}
}

// pushFrom seeds the stack with the descent path to the least element
// that is >= start (the successor path). Nodes below start are never
// pushed; an exact match stops the descent.
func (it *avlIter[E]) pushFrom(x *avlNode[E], start E) {
	for x != nil {
		if start < x.elem {
			it.stack = append(it.stack, x)
			x = x.left
		} else if start == x.elem {
			it.stack = append(it.stack, x)
			return
		} else {
			x = x.right
		}
	}
}

func (it *avlIter[E]) Next() (E, bool) {
	size := len(it.stack)
	if size == 0 {
		var zero E
		return zero, false
	}

	x := it.stack[size-1]
	if it.end != nil && !(x.elem < *it.end) {
		// The upper bound is exclusive. Once one candidate reaches
		// it, nothing later in order can qualify.
		it.stack = it.stack[:0]
		var zero E
		return zero, false
	}
	it.stack = it.stack[:size-1]
	it.pushLeftSpine(x.right)
	return x.elem, true
}

func (tree *avlTree[E]) Iter() TreeIter[E] {
	return tree.Range(nil, nil)
}

func (tree *avlTree[E]) Range(start, end *E) TreeIter[E] {
	it := &avlIter[E]{end: end}
	if start == nil {
		it.pushLeftSpine(tree.root)
	} else {
		it.pushFrom(tree.root, *start)
	}
	return it
}

// Consuming cursor. Nodes are unlinked from the structure while it
// advances, so every yielded element is handed over rather than
// borrowed and exhausting the cursor releases every node.
type avlDrainIter[E infra.Ordered] struct {
	stack []*avlNode[E]
}

// moveLeftSpine detaches the leftmost descent path of x onto the
// stack, clearing each traversed left link.
func (it *avlDrainIter[E]) moveLeftSpine(x *avlNode[E]) {
	for x != nil {
		next := x.left
		x.left = nil
		it.stack = append(it.stack, x)
		x = next
	}
}

func (it *avlDrainIter[E]) Next() (E, bool) {
	size := len(it.stack)
	if size == 0 {
		var zero E
		return zero, false
	}

	x := it.stack[size-1]
	it.stack = it.stack[:size-1]
	it.moveLeftSpine(x.right)
	x.right = nil
	return x.elem, true
}

// Drain detaches the whole structure into a consuming cursor. The
// tree is empty as soon as Drain returns.
func (tree *avlTree[E]) Drain() TreeIter[E] {
	it := &avlDrainIter[E]{}
	it.moveLeftSpine(tree.root)
	tree.root = nil
	return it
}
