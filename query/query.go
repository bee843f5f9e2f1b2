// Package query matches nodes against compiled expr-lang predicates.
// A predicate sees the element's name, role flags and exported fields
// as variables, so "name == 'heading' && level > 1" selects all
// sub-level headings.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/mdtree"
	"github.com/signadot/mdtree/debug"
)

// Query is a compiled node predicate, safe to reuse across trees.
type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles src as a boolean expr-lang expression. Variables
// not present in a given element's environment evaluate as nil.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling query %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string { return q.src }

// Match evaluates the predicate against one element.
func (q *Query) Match(el mdtree.Element) (bool, error) {
	res, err := expr.Run(q.prg, Env(el))
	if err != nil {
		return false, fmt.Errorf("running query %q: %w", q.src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: query %q returned %T, want bool",
			mdtree.ErrInvalidArgument, q.src, res)
	}
	return b, nil
}

// Env builds the evaluation environment for an element: name, the
// block/inline/container flags, and the element's exported fields
// keyed by lower-cased name.
func Env(el mdtree.Element) map[string]any {
	env := map[string]any{
		"name":      mdtree.ElementName(el),
		"block":     el.Role() == mdtree.Block,
		"inline":    el.Role() == mdtree.Inline,
		"container": el.Container(),
	}
	for k, v := range mdtree.ElementAttrs(el) {
		env[k] = v
	}
	return env
}

// Select returns the nodes of the subtree rooted at root whose
// elements match q, in depth-first pre-order.
func Select[M any](root *mdtree.Node[M], q *Query) ([]*mdtree.Node[M], error) {
	var out []*mdtree.Node[M]
	var walk func(n *mdtree.Node[M]) error
	walk = func(n *mdtree.Node[M]) error {
		ok, err := q.Match(n.Element())
		if err != nil {
			return err
		}
		if ok {
			if debug.Query() {
				debug.Logf("query %q matched ", q.src)
				debug.LogAny(Env(n.Element()))
			}
			out = append(out, n)
		}
		for c := range n.Children().All() {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return out, nil
}
