package gmast

import (
	"errors"
	"fmt"

	"github.com/signadot/mdtree"
)

var (
	// ErrUnsupportedElement is returned by Export when a node
	// carries an element outside the markdown catalog. The returned
	// error is an *UnsupportedElementError.
	ErrUnsupportedElement = errors.New("unsupported element")

	// ErrUnsupportedKind is returned by Import for goldmark node
	// kinds with no catalog mapping.
	ErrUnsupportedKind = errors.New("unsupported node kind")
)

// UnsupportedElementError carries the element Export refused to
// translate. It unwraps to ErrUnsupportedElement.
type UnsupportedElementError struct {
	Element mdtree.Element
}

func (e *UnsupportedElementError) Error() string {
	return fmt.Sprintf("unsupported element: %s has no goldmark mapping",
		mdtree.ElementName(e.Element))
}

func (e *UnsupportedElementError) Unwrap() error { return ErrUnsupportedElement }
