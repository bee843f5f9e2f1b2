// Package mdtree provides a mutable, doubly-linked document tree for
// Markdown-like documents.
//
// # Overview
//
// The package defines the core tree engine shared by tools that
// produce, transform, or consume document trees: the generic node
// type, the child sequence with its validated mutation operations,
// the containment rules that decide which element may be a direct
// child of which, and the tree algorithms built on top of them
// (structural equality, deep copy, bottom-up rewriting).
//
// The set of element variants is open. The engine only consumes the
// small Element contract; the concrete Markdown catalog (headings,
// paragraphs, tables, ...) lives in the markdown subpackage, and
// third parties may define their own variants.
//
// # Elements
//
// An Element is the semantic payload of a node: its kind plus any
// per-kind data. Every element has exactly one Role, Block or Inline,
// and reports via Container whether its nodes may hold children at
// all.
//
// Containment is decided by CanContain. The default policy is that a
// container holds elements of its own role; container variants may
// override it by implementing Containment (a list only holds items,
// a paragraph is a block holding inline content, and so on).
//
// # Nodes
//
// A Node wraps one element value, an opaque metadata value of the
// type parameter M, and the structural links of an intrusive doubly
// linked list: parent, previous/next sibling and the ends of its own
// child list. Child storage is intrusive so that splicing is O(1)
// regardless of position; there is no separate child slice.
//
//	root := mdtree.New(markdown.Document{})
//	para := mdtree.New(markdown.Paragraph{})
//	err := root.Children().Append(para)
//
// A node with no parent is a root, a standalone tree. Unlink detaches
// a node together with its subtree and turns it back into a root; it
// is a no-op on nodes that already are roots.
//
// After every successful mutation the following hold: the child list
// has either no ends or both; walking next links from the first child
// visits every child once and ends at the last child, and walking
// prev links is the mirror image; every child's parent link points at
// its owner; a node is attached in at most one place and the tree has
// no cycles.
//
// # Mutation and validation
//
// All structural mutation goes through the child sequence view
// returned by Children and the InsertAfter/InsertBefore splices on
// the reference node. Each entry point first consults CanContain; a
// rejected pair fails with an InvalidChildError carrying both
// elements and leaves the tree untouched. The bulk AppendAll and
// PrependAll calls validate per element and are not atomic across the
// whole call.
//
// Attaching a node that is currently linked elsewhere unlinks it
// first, so moving a subtree between trees is a single Append.
//
// Legality is checked at insertion time only. SetElement never
// revalidates existing children, so replacing a node's element in
// place can leave a tree whose parent/child pairs would no longer
// pass CanContain. That is accepted behavior, not an error; see the
// package tests for the exact contract.
//
// # Algorithms
//
// Equal compares two trees structurally: element values, metadata and
// child sequences, position in any larger tree excluded. CopyTree
// produces an independent deep copy with an optional element
// transform. Replace and ReplaceInPlace rewrite a tree bottom-up,
// substituting zero or more nodes at each position; Replace works on
// a private copy and leaves its input unchanged.
//
// # Errors
//
// Failures are reported through sentinel errors (ErrInvalidChild,
// ErrInvalidOperation, ErrEmptyCollection, ErrInvalidArgument) and
// typed carriers such as InvalidChildError that unwrap to them. The
// package never logs and never silently coerces an illegal child into
// a legal shape.
//
// # Thread safety
//
// Trees are ordinary mutable data with no internal locking. Confine a
// tree to one goroutine or synchronize around it externally.
//
// # Related packages
//
//   - github.com/signadot/mdtree/markdown - the element catalog and
//     table geometry helpers
//   - github.com/signadot/mdtree/build - literal tree construction
//   - github.com/signadot/mdtree/gmast - goldmark AST interop
//   - github.com/signadot/mdtree/encode - tree outline and YAML dumps
//   - github.com/signadot/mdtree/query - expression predicates over nodes
package mdtree
