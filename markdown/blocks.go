package markdown

import "github.com/signadot/mdtree"

// Marker types shared by the catalog variants. Embedding one gives a
// variant its role and container flag.

type blockContainer struct{}

func (blockContainer) Role() mdtree.Role { return mdtree.Block }
func (blockContainer) Container() bool   { return true }

type blockLeaf struct{}

func (blockLeaf) Role() mdtree.Role { return mdtree.Block }
func (blockLeaf) Container() bool   { return false }

// inlineContent marks block containers whose children are inlines
// rather than blocks ("leaf blocks with inline content" in CommonMark
// terms).
type inlineContent struct{ blockContainer }

func (inlineContent) CanContain(child mdtree.Element) bool {
	return child.Role() == mdtree.Inline
}

// Document is the root element of a complete document.
type Document struct{ blockContainer }

// Paragraph is a block of inline content.
type Paragraph struct{ inlineContent }

// Heading is a section heading of the given level (1-6 for documents
// parsed from Markdown; the tree itself does not restrict the range).
type Heading struct {
	inlineContent
	Level int
}

// BlockQuote is a quoted group of blocks.
type BlockQuote struct{ blockContainer }

// List holds Item children and nothing else.
type List struct {
	blockContainer
	// Ordered distinguishes numbered lists from bullet lists.
	Ordered bool
	// Tight mirrors the CommonMark tight/loose distinction.
	Tight bool
	// Start is the first item number of an ordered list.
	Start int
}

func (List) CanContain(child mdtree.Element) bool {
	_, ok := child.(Item)
	return ok
}

// Item is a single list item holding block content.
type Item struct{ blockContainer }

// CodeBlock is a literal block of code, fenced or indented.
type CodeBlock struct {
	blockLeaf
	// Info is the fence info string ("go", "sh", ...), empty for
	// indented blocks.
	Info string
	Code string
}

// HTMLBlock is a raw HTML block.
type HTMLBlock struct {
	blockLeaf
	HTML string
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{ blockLeaf }

// DisplayMath is a display-mode math block.
type DisplayMath struct {
	blockLeaf
	Math string
}

// FootnoteDefinition is the block content of a footnote, referenced
// by FootnoteLink elements carrying the same ID.
type FootnoteDefinition struct {
	blockContainer
	ID string
}
