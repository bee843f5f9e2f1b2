package mdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChild is returned by every validated mutation entry
	// point when CanContain rejects the parent/child pair. The
	// returned error is an *InvalidChildError carrying both element
	// values.
	ErrInvalidChild = errors.New("invalid child")

	// ErrInvalidOperation reports a violated structural precondition
	// independent of element legality, such as splicing a sibling
	// next to a root node.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrEmptyCollection is returned by First and Last on a node
	// without children.
	ErrEmptyCollection = errors.New("empty collection")

	// ErrInvalidArgument reports a malformed argument, such as a nil
	// replacement node or an unknown table dimension.
	ErrInvalidArgument = errors.New("invalid argument")
)

// InvalidChildError carries the element pair rejected by CanContain.
// It unwraps to ErrInvalidChild.
type InvalidChildError struct {
	Parent Element
	Child  Element
}

func (e *InvalidChildError) Error() string {
	return fmt.Sprintf("invalid child: %s cannot contain %s",
		ElementName(e.Parent), ElementName(e.Child))
}

func (e *InvalidChildError) Unwrap() error { return ErrInvalidChild }

func invalidChild(parent, child Element) error {
	return &InvalidChildError{Parent: parent, Child: child}
}
