package mdtree

import "reflect"

// Empty is the default node metadata type.
type Empty = struct{}

// Node is a node of a mutable document tree. It owns its children as
// an intrusive doubly linked list; parent and sibling links are
// non-owning back-references. M is the opaque metadata type carried
// by every node of a tree.
type Node[M any] struct {
	element Element
	meta    M

	parent *Node[M]
	prev   *Node[M]
	next   *Node[M]
	first  *Node[M]
	last   *Node[M]
}

// New returns a standalone root node wrapping el, with no metadata.
func New(el Element) *Node[Empty] {
	return &Node[Empty]{element: el}
}

// NewWithMeta returns a standalone root node wrapping el with
// explicit metadata.
func NewWithMeta[M any](el Element, meta M) *Node[M] {
	return &Node[M]{element: el, meta: meta}
}

// Element returns the node's current element value.
func (n *Node[M]) Element() Element { return n.element }

// SetElement replaces the node's element in place. Existing children
// are not revalidated against the new element; legality is checked at
// insertion time only.
func (n *Node[M]) SetElement(el Element) { n.element = el }

// Meta returns the node's metadata value.
func (n *Node[M]) Meta() M { return n.meta }

// SetMeta replaces the node's metadata value.
func (n *Node[M]) SetMeta(meta M) { n.meta = meta }

// Parent returns the node's parent, or nil for a root node.
func (n *Node[M]) Parent() *Node[M] { return n.parent }

// PreviousSibling returns the sibling before n, or nil.
func (n *Node[M]) PreviousSibling() *Node[M] { return n.prev }

// NextSibling returns the sibling after n, or nil.
func (n *Node[M]) NextSibling() *Node[M] { return n.next }

// HasChildren reports in O(1) whether n has any children.
func (n *Node[M]) HasChildren() bool { return n.first != nil }

// Unlink detaches n, with its subtree intact, from its current tree
// position and returns it as a standalone root. Unlinking a root is a
// no-op.
func (n *Node[M]) Unlink() *Node[M] {
	if n.prev != nil {
		n.prev.next = n.next
	} else if n.parent != nil {
		n.parent.first = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else if n.parent != nil {
		n.parent.last = n.prev
	}
	n.parent, n.prev, n.next = nil, nil, nil
	return n
}

// Equal reports whether two trees are structurally equal: equal
// element values, equal metadata and pairwise equal child sequences
// of the same length. The comparison walks children lazily and exits
// on the first mismatch. Position in a larger tree is excluded, so
// subtrees compare independently of where they are attached.
func (n *Node[M]) Equal(o *Node[M]) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	if !ElementsEqual(n.element, o.element) {
		return false
	}
	if !metaEqual(n.meta, o.meta) {
		return false
	}
	a, b := n.first, o.first
	for a != nil && b != nil {
		if !a.Equal(b) {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}

func metaEqual[M any](a, b M) bool {
	if eq, ok := any(a).(interface{ Equal(M) bool }); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// ancestorOf reports whether n is d or a transitive parent of d.
func (n *Node[M]) ancestorOf(d *Node[M]) bool {
	for p := d; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}
