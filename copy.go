package mdtree

import (
	"fmt"
	"reflect"

	"github.com/signadot/mdtree/debug"
)

// CopyFunc computes the element for the copy of an original node. It
// is invoked once per visited node.
type CopyFunc[M any] func(original *Node[M], el Element) Element

// CopyTree returns a structurally independent deep copy of the
// subtree rooted at root. The copy is a standalone root regardless of
// where root is attached. transform, when non-nil, computes each
// copy's element from the original node; the result must be legal as
// a child of the already-copied parent or the copy fails with an
// *InvalidChildError. A nil transform deep-copies the element, so
// reference-typed element data is never shared between original and
// copy.
//
// Metadata is always deep-copied the same way.
func CopyTree[M any](root *Node[M], transform CopyFunc[M]) (*Node[M], error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ErrInvalidArgument)
	}
	if debug.Copy() {
		debug.Logf("copy %s\n", ElementName(root.element))
	}
	el := root.element
	if transform != nil {
		el = transform(root, root.element)
	} else {
		el = cloneValue(el)
	}
	cp := &Node[M]{element: el, meta: cloneValue(root.meta)}
	for child := root.first; child != nil; child = child.next {
		cc, err := CopyTree(child, transform)
		if err != nil {
			return nil, err
		}
		if err := cp.Children().Append(cc); err != nil {
			return nil, err
		}
	}
	return cp, nil
}

// cloneValue deep-copies v: slices, maps, pointers and their
// transitive contents are duplicated. Unexported struct fields cannot
// be set reflectively and copy by assignment.
func cloneValue[T any](v T) T {
	rv := reflect.ValueOf(&v).Elem()
	rv.Set(cloneReflect(rv))
	return v
}

func cloneReflect(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		c := reflect.New(v.Type()).Elem()
		c.Set(cloneReflect(v.Elem()))
		return c
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		c := reflect.New(v.Type().Elem())
		c.Elem().Set(cloneReflect(v.Elem()))
		return c
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			c.Index(i).Set(cloneReflect(v.Index(i)))
		}
		return c
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeMap(v.Type())
		for it := v.MapRange(); it.Next(); {
			c.SetMapIndex(cloneReflect(it.Key()), cloneReflect(it.Value()))
		}
		return c
	case reflect.Array:
		c := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			if c.Index(i).CanSet() {
				c.Index(i).Set(cloneReflect(v.Index(i)))
			}
		}
		return c
	case reflect.Struct:
		c := reflect.New(v.Type()).Elem()
		c.Set(v)
		for i := 0; i < c.NumField(); i++ {
			f := c.Field(i)
			if !f.CanSet() {
				continue
			}
			switch f.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Slice,
				reflect.Map, reflect.Array, reflect.Struct:
				f.Set(cloneReflect(f))
			}
		}
		return c
	}
	return v
}
