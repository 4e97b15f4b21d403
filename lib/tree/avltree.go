package tree

import (
	"github.com/benz9527/xavl/lib/infra"
)

type avlNode[E infra.Ordered] struct {
	left    *avlNode[E]
	right   *avlNode[E]
	elem    E
	balance int8 // height(right) - height(left)
}

func (node *avlNode[E]) Elem() E {
	return node.elem
}

func (node *avlNode[E]) Left() AVLNode[E] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *avlNode[E]) Right() AVLNode[E] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *avlNode[E]) BalanceFactor() int8 {
	return node.balance
}

func (node *avlNode[E]) size() int64 {
	if node == nil {
		return 0
	}
	return 1 + node.left.size() + node.right.size()
}

type avlTree[E infra.Ordered] struct {
	root *avlNode[E]
}

// Len counts the nodes by walking the child subtrees. The size is not
// cached, so this is O(n).
func (tree *avlTree[E]) Len() int64 {
	return tree.root.size()
}

func (tree *avlTree[E]) Empty() bool {
	return tree.root == nil
}

func (tree *avlTree[E]) Root() AVLNode[E] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *avlTree[E]) Insert(elem E) bool {
	root, inserted, _ := insert(tree.root, elem)
	tree.root = root
	return inserted
}

// References:
// N. Wirth, Algorithms + Data Structures = Programs, ch. 4.5 (AVL).
// avltree properties:
// https://en.wikipedia.org/wiki/AVL_tree
// p1. BST order: left subtree < node < right subtree, no duplicates.
// p2. |height(right) - height(left)| <= 1 for every node, and the
//   per-node balance factor equals exactly that signed difference.
// The two properties make the total height O(log n), which also
// bounds every recursion and traversal stack in this package.

// insert returns the possibly replaced subtree root, whether elem was
// added and whether the subtree grew one level taller. The growth
// signal is derived from the prior balance factor: growth into the
// shorter or even side is absorbed locally, only a previously even
// node deepens its subtree. It already accounts for the local
// rebalance, since a rotation shrinks the subtree by the same level
// the insertion added.
func insert[E infra.Ordered](x *avlNode[E], elem E) (*avlNode[E], bool, bool) {
	if x == nil {
		return &avlNode[E]{elem: elem}, true, true
	}

	if elem == x.elem {
		return x, false, false
	}

	var inserted, grew bool
	if elem < x.elem {
		x.left, inserted, grew = insert(x.left, elem)
		if grew {
			grew = x.balance == 0
			x.balance--
		}
	} else {
		x.right, inserted, grew = insert(x.right, elem)
		if grew {
			grew = x.balance == 0
			x.balance++
		}
	}
	return rebalance(x), inserted, grew
}

/*
b1: left-heavy, left child leans left or is even. Single right
rotation; the two factors come from the left child's prior factor.

	      X (-2)               L
	     /  \                 / \
	    L    c  ==restore==  a   X
	   / \                      / \
	  a   b                    b   c

b2: left-heavy, left child leans right. Rotate the left child left,
then the node right; the three factors come from the prior factor of
the left-right grandchild G.

	    X (-2)                 G
	   /  \                  /   \
	  L    d  ==restore==   L     X
	 / \                   / \   / \
	a   G                 a   b c   d
	   / \
	  b   c

b3/b4: right-heavy mirrors of b1/b2.
*/
func rebalance[E infra.Ordered](x *avlNode[E]) *avlNode[E] {
	switch x.balance {
	case -2:
		switch lf := x.left.balance; lf {
		case /* b1 */ -1, 0:
			x = rotateRight(x)
			if lf == -1 {
				x.right.balance, x.balance = 0, 0
			} else {
				x.right.balance, x.balance = -1, 1
			}
		case /* b2 */ 1:
			var a, b int8
			switch x.left.right.balance {
			case -1:
				a, b = 1, 0
			case 0:
				a, b = 0, 0
			case 1:
				a, b = 0, -1
			default:
				// impossible run to here
				panic( /* debug assertion */ "[avltree] left-right grandchild factor out of range")
			}
			x.left = rotateLeft(x.left)
			x = rotateRight(x)
			x.right.balance, x.left.balance, x.balance = a, b, 0
		default:
			// impossible run to here
			panic( /* debug assertion */ "[avltree] left-heavy node without a left lean")
		}
	case 2:
		switch rf := x.right.balance; rf {
		case /* b3 */ 1, 0:
			x = rotateLeft(x)
			if rf == 1 {
				x.left.balance, x.balance = 0, 0
			} else {
				x.left.balance, x.balance = 1, -1
			}
		case /* b4 */ -1:
			var a, b int8
			switch x.right.left.balance {
			case 1:
				a, b = -1, 0
			case 0:
				a, b = 0, 0
			case -1:
				a, b = 0, 1
			default:
				// impossible run to here
				panic( /* debug assertion */ "[avltree] right-left grandchild factor out of range")
			}
			x.right = rotateRight(x.right)
			x = rotateLeft(x)
			x.left.balance, x.right.balance, x.balance = a, b, 0
		default:
			// impossible run to here
			panic( /* debug assertion */ "[avltree] right-heavy node without a right lean")
		}
	default:
		// -1, 0 and 1 need no rotation.
	}
	return x
}

/*
	    X                     R
	   / \    rotateLeft(X)  / \
	  a   R   ============> X   c
	     / \               / \
	    b   c             a   b
*/
func rotateLeft[E infra.Ordered](x *avlNode[E]) *avlNode[E] {
	if x == nil || x.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[avltree] left rotate node x is nil or x.right is nil")
	}

	y := x.right
	x.right, y.left = y.left, x
	return y
}

/*
	      X                    L
	     / \   rotateRight(X) / \
	    L   c  =============> a  X
	   / \                      / \
	  a   b                    b   c
*/
func rotateRight[E infra.Ordered](x *avlNode[E]) *avlNode[E] {
	if x == nil || x.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[avltree] right rotate node x is nil or x.left is nil")
	}

	y := x.left
	x.left, y.right = y.right, x
	return y
}

func (tree *avlTree[E]) Get(elem E) (E, bool) {
	for aux := tree.root; aux != nil; {
		if elem == aux.elem {
			return aux.elem, true
		} else if elem < aux.elem {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	var zero E
	return zero, false
}

func (tree *avlTree[E]) MustGet(elem E) E {
	e, ok := tree.Get(elem)
	if !ok {
		panic("[avltree] must-get element not found")
	}
	return e
}

// Inorder traversal to implement the DFS.
func (tree *avlTree[E]) Foreach(action func(idx int64, elem E) bool) {
	aux := tree.root
	if aux == nil {
		return
	}

	stack := make([]*avlNode[E], 0, 32)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; !action(idx, aux.elem) {
			return
		}
		idx++
		stack = stack[:size-1]
		for aux = aux.right; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

func NewAVLTree[E infra.Ordered]() AVLTree[E] {
	return &avlTree[E]{}
}

// NewAVLTreeOf builds a tree by repeated insertion. Elements equal to
// an already inserted one are dropped, first inserted wins.
func NewAVLTreeOf[E infra.Ordered](elems ...E) AVLTree[E] {
	tree := &avlTree[E]{}
	for _, elem := range elems {
		tree.Insert(elem)
	}
	return tree
}
