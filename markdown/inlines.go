package markdown

import "github.com/signadot/mdtree"

type inlineContainer struct{}

func (inlineContainer) Role() mdtree.Role { return mdtree.Inline }
func (inlineContainer) Container() bool   { return true }

type inlineLeaf struct{}

func (inlineLeaf) Role() mdtree.Role { return mdtree.Inline }
func (inlineLeaf) Container() bool   { return false }

// Text is a plain text leaf.
type Text struct {
	inlineLeaf
	Text string
}

// Emph is emphasized content (usually rendered italic).
type Emph struct{ inlineContainer }

// Strong is strongly emphasized content (usually rendered bold).
type Strong struct{ inlineContainer }

// Code is an inline code span.
type Code struct {
	inlineLeaf
	Code string
}

// HTMLInline is a raw inline HTML fragment.
type HTMLInline struct {
	inlineLeaf
	HTML string
}

// Link wraps its inline children as the link text.
type Link struct {
	inlineContainer
	Destination string
	Title       string
}

// Image wraps its inline children as the alt text.
type Image struct {
	inlineContainer
	Destination string
	Title       string
}

// SoftBreak is a soft line break within a paragraph.
type SoftBreak struct{ inlineLeaf }

// LineBreak is a hard line break.
type LineBreak struct{ inlineLeaf }

// InlineMath is an inline math span.
type InlineMath struct {
	inlineLeaf
	Math string
}

// FootnoteLink references the FootnoteDefinition with the same ID.
type FootnoteLink struct {
	inlineLeaf
	ID string
}
