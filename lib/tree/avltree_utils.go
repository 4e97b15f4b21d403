package tree

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/benz9527/xavl/lib/infra"
)

func subtreeHeight[E infra.Ordered](node AVLNode[E]) int64 {
	if node == nil {
		return 0
	}
	return 1 + max(subtreeHeight(node.Left()), subtreeHeight(node.Right()))
}

// TreeHeight is the number of levels, 0 for an empty tree. The AVL
// rule keeps it below 1.45*log2(n+2).
func TreeHeight[E infra.Ordered](tree AVLTree[E]) int64 {
	return subtreeHeight(tree.Root())
}

// avltree rule validation utilities.

// Inorder traversal to validate strict ascending element order. It
// covers the BST ordering rule and the no-duplicates rule at once; a
// stale subtree link would surface here as an order inversion.
func OrderViolationValidate[E infra.Ordered](tree AVLTree[E]) error {
	violated := false
	var prev *E
	tree.Foreach(func(idx int64, elem E) bool {
		if prev != nil && !(*prev < elem) {
			violated = true
			return false
		}
		aux := elem
		prev = &aux
		return true
	})
	if violated {
		return errors.New("avltree order violation")
	}
	return nil
}

// BalanceViolationValidate recomputes every subtree height from
// scratch and checks each stored balance factor against the real
// signed height difference.
func BalanceViolationValidate[E infra.Ordered](tree AVLTree[E]) error {
	return validateBalance(tree.Root())
}

func validateBalance[E infra.Ordered](node AVLNode[E]) error {
	if node == nil {
		return nil
	}

	factor := subtreeHeight(node.Right()) - subtreeHeight(node.Left())
	if factor < -1 || factor > 1 {
		return errors.New("avltree balance violation")
	}
	if int64(node.BalanceFactor()) != factor {
		return errors.New("avltree stale balance factor")
	}

	if err := validateBalance(node.Left()); err != nil {
		return err
	}
	return validateBalance(node.Right())
}

// InvariantValidate aggregates every structural validation.
func InvariantValidate[E infra.Ordered](tree AVLTree[E]) error {
	return multierr.Combine(
		OrderViolationValidate(tree),
		BalanceViolationValidate(tree),
	)
}
