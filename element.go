package mdtree

import (
	"reflect"
	"strings"
)

// Role classifies an element as block-level or inline-level. Every
// element has exactly one role.
type Role int

const (
	Block Role = iota + 1
	Inline
)

func (r Role) String() string {
	switch r {
	case Block:
		return "block"
	case Inline:
		return "inline"
	}
	return "<unknown role>"
}

// Element is the semantic payload of a tree node: a kind tag plus any
// per-kind data. Element values are treated as values; two instances
// with the same data are interchangeable.
type Element interface {
	Role() Role

	// Container reports whether nodes holding this element may have
	// children at all.
	Container() bool
}

// Containment is an optional per-variant override of the default
// containment policy. It is consulted only for container elements.
type Containment interface {
	CanContain(child Element) bool
}

// Equaler is implemented by elements that define their own value
// equality. Elements without it compare by deep value equality.
type Equaler interface {
	Equal(other Element) bool
}

// Named is implemented by elements that choose their own short name.
// ElementName falls back to the lower-cased Go type name.
type Named interface {
	Name() string
}

// CanContain reports whether child may be a direct child of a node
// holding parent. Non-containers hold nothing. A container with a
// Containment override decides for itself; otherwise a container
// holds elements of its own role.
func CanContain(parent, child Element) bool {
	if parent == nil || child == nil {
		return false
	}
	if !parent.Container() {
		return false
	}
	if c, ok := parent.(Containment); ok {
		return c.CanContain(child)
	}
	return parent.Role() == child.Role()
}

// ElementsEqual compares two element values.
func ElementsEqual(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// ElementName returns a short lower-case name for an element variant,
// e.g. "heading" for markdown.Heading. Elements implementing Named
// choose their own.
func ElementName(el Element) string {
	if el == nil {
		return "<nil>"
	}
	if n, ok := el.(Named); ok {
		return n.Name()
	}
	t := reflect.TypeOf(el)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.ToLower(t.Name())
}

// ElementAttrs returns the exported data fields of an element value
// keyed by lower-cased field name. Embedded marker types contributing
// role and container flags are skipped. Non-struct elements return
// nil.
func ElementAttrs(el Element) map[string]any {
	v := reflect.ValueOf(el)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()
	var m map[string]any
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		if m == nil {
			m = map[string]any{}
		}
		m[strings.ToLower(f.Name)] = v.Field(i).Interface()
	}
	return m
}
