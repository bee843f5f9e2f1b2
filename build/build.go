// Package build constructs trees from nested literal expressions. It
// is sugar over mdtree.New and Children().Append; anything build can
// make, manual construction makes identically.
//
//	doc := build.Must(markdown.Document{},
//		build.Must(markdown.Heading{Level: 1}, "Title"),
//		build.Must(markdown.Paragraph{},
//			"see ",
//			build.Must(markdown.Link{Destination: "idx.md"}, "the index"),
//		),
//	)
package build

import (
	"fmt"

	"github.com/signadot/mdtree"
	"github.com/signadot/mdtree/markdown"
)

// Tree returns a new root node holding el with the given children
// appended in order. Each kid may be a *mdtree.Node[mdtree.Empty]
// (attached as-is, unlinking it from wherever it was), an
// mdtree.Element (wrapped in a fresh node), or a string (becoming a
// markdown.Text leaf). Anything else fails with ErrInvalidArgument;
// illegal children fail with the core's InvalidChildError.
func Tree(el mdtree.Element, kids ...any) (*mdtree.Node[mdtree.Empty], error) {
	root := mdtree.New(el)
	for i, kid := range kids {
		var child *mdtree.Node[mdtree.Empty]
		switch k := kid.(type) {
		case *mdtree.Node[mdtree.Empty]:
			child = k
		case mdtree.Element:
			child = mdtree.New(k)
		case string:
			child = mdtree.New(markdown.Text{Text: k})
		default:
			return nil, fmt.Errorf("%w: child %d has unsupported type %T",
				mdtree.ErrInvalidArgument, i, kid)
		}
		if err := root.Children().Append(child); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// Must is Tree panicking on error, for literal trees in tests and
// examples where the shape is known to be legal.
func Must(el mdtree.Element, kids ...any) *mdtree.Node[mdtree.Empty] {
	n, err := Tree(el, kids...)
	if err != nil {
		panic(err)
	}
	return n
}
