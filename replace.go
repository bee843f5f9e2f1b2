package mdtree

import (
	"fmt"

	"github.com/signadot/mdtree/debug"
)

// ReplaceFunc maps a node to its replacements. Returning a slice
// containing exactly the input node keeps it; any other slice
// substitutes zero or more nodes at its position. Nil entries are
// rejected with ErrInvalidArgument.
type ReplaceFunc[M any] func(*Node[M]) ([]*Node[M], error)

// Replace rewrites a private deep copy of the tree rooted at root
// bottom-up and returns the rewritten copy. The input tree is left
// unmodified. See ReplaceInPlace for the rewrite semantics.
func Replace[M any](root *Node[M], fn ReplaceFunc[M]) (*Node[M], error) {
	cp, err := CopyTree(root, nil)
	if err != nil {
		return nil, err
	}
	return ReplaceInPlace(cp, fn)
}

// ReplaceInPlace rewrites the tree rooted at root bottom-up, reusing
// and relinking the input nodes. fn is applied once to every node,
// descendants before their parents and the root last; replacement
// nodes are not revisited. Substituting below the root may change
// child counts freely, subject to the owning parent's containment
// check; the root itself must map to exactly one node, which is
// returned.
//
// A failure partway through leaves the tree partially rewritten; use
// Replace when the input must survive errors intact.
func ReplaceInPlace[M any](root *Node[M], fn ReplaceFunc[M]) (*Node[M], error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ErrInvalidArgument)
	}
	if fn == nil {
		return nil, fmt.Errorf("%w: nil transform", ErrInvalidArgument)
	}
	if err := replaceChildren(root, fn); err != nil {
		return nil, err
	}
	out, err := fn(root)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 || out[0] == nil {
		return nil, fmt.Errorf("%w: root must be replaced by exactly one node, got %d",
			ErrInvalidArgument, len(out))
	}
	return out[0], nil
}

func replaceChildren[M any](parent *Node[M], fn ReplaceFunc[M]) error {
	child := parent.first
	for child != nil {
		next := child.next
		if err := replaceChildren(child, fn); err != nil {
			return err
		}
		out, err := fn(child)
		if err != nil {
			return err
		}
		if err := splice(child, out); err != nil {
			return err
		}
		child = next
	}
	return nil
}

// splice substitutes out for child in child's parent. out == {child}
// is the keep case and touches nothing. All replacements are
// validated against the parent before any relinking happens.
func splice[M any](child *Node[M], out []*Node[M]) error {
	if len(out) == 1 && out[0] == child {
		return nil
	}
	parent := child.parent
	for _, r := range out {
		if r == nil {
			return fmt.Errorf("%w: nil replacement node", ErrInvalidArgument)
		}
		if r == child {
			continue
		}
		if !CanContain(parent.element, r.element) {
			return invalidChild(parent.element, r.element)
		}
	}
	if debug.Replace() {
		debug.Logf("replace %s under %s with %d node(s)\n",
			ElementName(child.element), ElementName(parent.element), len(out))
	}
	anchor := child.prev
	child.Unlink()
	prev := anchor
	for _, r := range out {
		var err error
		if prev == nil {
			err = parent.Children().Prepend(r)
		} else {
			err = prev.InsertAfter(r)
		}
		if err != nil {
			return err
		}
		prev = r
	}
	return nil
}
