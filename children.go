package mdtree

import (
	"fmt"
	"iter"
)

// Children is a view over one node's child sequence. It holds no
// state of its own beyond the owner reference; the sequence lives on
// the nodes themselves.
type Children[M any] struct {
	owner *Node[M]
}

// Children returns the child sequence view of n.
func (n *Node[M]) Children() Children[M] {
	return Children[M]{owner: n}
}

// Len counts the children by walking sibling links; O(n). Use Empty
// for the O(1) emptiness check.
func (c Children[M]) Len() int {
	n := 0
	for x := c.owner.first; x != nil; x = x.next {
		n++
	}
	return n
}

// Empty reports in O(1) whether the owner has no children.
func (c Children[M]) Empty() bool { return c.owner.first == nil }

// First returns the first child, or ErrEmptyCollection if there are
// none.
func (c Children[M]) First() (*Node[M], error) {
	if c.owner.first == nil {
		return nil, fmt.Errorf("%w: node has no children", ErrEmptyCollection)
	}
	return c.owner.first, nil
}

// Last returns the last child, or ErrEmptyCollection if there are
// none.
func (c Children[M]) Last() (*Node[M], error) {
	if c.owner.last == nil {
		return nil, fmt.Errorf("%w: node has no children", ErrEmptyCollection)
	}
	return c.owner.last, nil
}

// All returns a lazy forward iterator over the current children.
// Structurally mutating the tree during iteration gives unspecified
// (but memory-safe) traversal results; editing a child's element or
// metadata in place during iteration is fine.
func (c Children[M]) All() iter.Seq[*Node[M]] {
	return func(yield func(*Node[M]) bool) {
		for x := c.owner.first; x != nil; x = x.next {
			if !yield(x) {
				return
			}
		}
	}
}

// checkAttach gates every attachment: argument sanity, the cycle
// guard, and the containment check, in that order. No structural
// change happens unless it passes.
func (c Children[M]) checkAttach(child *Node[M]) error {
	if child == nil {
		return fmt.Errorf("%w: nil child", ErrInvalidArgument)
	}
	if child.ancestorOf(c.owner) {
		return fmt.Errorf("%w: node cannot adopt itself or an ancestor", ErrInvalidOperation)
	}
	if !CanContain(c.owner.element, child.element) {
		return invalidChild(c.owner.element, child.element)
	}
	return nil
}

// Append attaches child as the new last child of the owner. A child
// that is currently linked elsewhere is unlinked first, so Append
// moves subtrees between positions and trees. On error the tree is
// unchanged.
func (c Children[M]) Append(child *Node[M]) error {
	if err := c.checkAttach(child); err != nil {
		return err
	}
	child.Unlink()
	child.parent = c.owner
	if c.owner.last == nil {
		c.owner.first, c.owner.last = child, child
		return nil
	}
	child.prev = c.owner.last
	c.owner.last.next = child
	c.owner.last = child
	return nil
}

// Prepend attaches child as the new first child of the owner, with
// the same reparenting and error behavior as Append.
func (c Children[M]) Prepend(child *Node[M]) error {
	if err := c.checkAttach(child); err != nil {
		return err
	}
	child.Unlink()
	child.parent = c.owner
	if c.owner.first == nil {
		c.owner.first, c.owner.last = child, child
		return nil
	}
	child.next = c.owner.first
	c.owner.first.prev = child
	c.owner.first = child
	return nil
}

// AppendAll appends each child in order. Validation happens per
// element: a failure partway through leaves the children attached so
// far in place. Bulk calls are not atomic, unlike the single-element
// operations.
func (c Children[M]) AppendAll(children ...*Node[M]) error {
	for _, child := range children {
		if err := c.Append(child); err != nil {
			return err
		}
	}
	return nil
}

// PrependAll prepends the children, preserving their argument order
// at the front of the sequence. Same non-atomicity as AppendAll.
func (c Children[M]) PrependAll(children ...*Node[M]) error {
	var prev *Node[M]
	for _, child := range children {
		var err error
		if prev == nil {
			err = c.Prepend(child)
		} else {
			err = prev.InsertAfter(child)
		}
		if err != nil {
			return err
		}
		prev = child
	}
	return nil
}

// Clear detaches every child; each becomes a standalone root with its
// own subtree intact. Clear always succeeds.
func (c Children[M]) Clear() {
	for x := c.owner.first; x != nil; {
		next := x.next
		x.parent, x.prev, x.next = nil, nil, nil
		x = next
	}
	c.owner.first, c.owner.last = nil, nil
}

// InsertAfter splices sibling immediately after n. n must be attached
// to a parent; the containment check runs against that parent's
// element. A sibling linked elsewhere is unlinked first. Inserting a
// node after itself is a no-op.
func (n *Node[M]) InsertAfter(sibling *Node[M]) error {
	if n.parent == nil {
		return fmt.Errorf("%w: reference node has no parent", ErrInvalidOperation)
	}
	if sibling == nil {
		return fmt.Errorf("%w: nil sibling", ErrInvalidArgument)
	}
	if sibling == n {
		return nil
	}
	if sibling.ancestorOf(n.parent) {
		return fmt.Errorf("%w: node cannot adopt itself or an ancestor", ErrInvalidOperation)
	}
	if !CanContain(n.parent.element, sibling.element) {
		return invalidChild(n.parent.element, sibling.element)
	}
	sibling.Unlink()
	sibling.parent = n.parent
	sibling.prev = n
	sibling.next = n.next
	if n.next != nil {
		n.next.prev = sibling
	} else {
		n.parent.last = sibling
	}
	n.next = sibling
	return nil
}

// InsertBefore splices sibling immediately before n, with the same
// preconditions as InsertAfter.
func (n *Node[M]) InsertBefore(sibling *Node[M]) error {
	if n.parent == nil {
		return fmt.Errorf("%w: reference node has no parent", ErrInvalidOperation)
	}
	if n.prev == nil {
		return n.parent.Children().Prepend(sibling)
	}
	return n.prev.InsertAfter(sibling)
}
