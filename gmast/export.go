package gmast

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/signadot/mdtree"
	"github.com/signadot/mdtree/markdown"
)

// Export converts an mdtree tree built from catalog elements into a
// goldmark tree. Any node carrying a non-catalog element fails the
// whole export with an *UnsupportedElementError; nothing is dropped
// or coerced silently.
func Export[M any](root *mdtree.Node[M]) (ast.Node, error) {
	return exportNode(root)
}

func exportNode[M any](n *mdtree.Node[M]) (ast.Node, error) {
	var g ast.Node
	switch el := n.Element().(type) {
	case markdown.Document:
		g = ast.NewDocument()
	case markdown.Paragraph:
		g = ast.NewParagraph()
	case markdown.Heading:
		g = ast.NewHeading(el.Level)
	case markdown.BlockQuote:
		g = ast.NewBlockquote()
	case markdown.List:
		marker := byte('-')
		if el.Ordered {
			marker = '.'
		}
		l := ast.NewList(marker)
		l.IsTight = el.Tight
		l.Start = el.Start
		g = l
	case markdown.Item:
		g = ast.NewListItem(0)
	case markdown.ThematicBreak:
		g = ast.NewThematicBreak()
	case markdown.CodeBlock:
		fcb := ast.NewFencedCodeBlock(nil)
		fcb.AppendChild(fcb, ast.NewString([]byte(el.Code)))
		return fcb, nil
	case markdown.HTMLBlock:
		hb := ast.NewHTMLBlock(ast.HTMLBlockType7)
		hb.AppendChild(hb, ast.NewString([]byte(el.HTML)))
		return hb, nil
	case markdown.DisplayMath:
		fcb := ast.NewFencedCodeBlock(nil)
		fcb.AppendChild(fcb, ast.NewString([]byte(el.Math)))
		return fcb, nil
	case markdown.FootnoteDefinition:
		g = east.NewFootnote([]byte(el.ID))

	case markdown.Text:
		return ast.NewString([]byte(el.Text)), nil
	case markdown.Emph:
		g = ast.NewEmphasis(1)
	case markdown.Strong:
		g = ast.NewEmphasis(2)
	case markdown.Code:
		cs := ast.NewCodeSpan()
		cs.AppendChild(cs, ast.NewString([]byte(el.Code)))
		return cs, nil
	case markdown.HTMLInline:
		return ast.NewString([]byte(el.HTML)), nil
	case markdown.Link:
		l := ast.NewLink()
		l.Destination = []byte(el.Destination)
		l.Title = []byte(el.Title)
		g = l
	case markdown.Image:
		l := ast.NewLink()
		l.Destination = []byte(el.Destination)
		l.Title = []byte(el.Title)
		g = ast.NewImage(l)
	case markdown.SoftBreak:
		t := ast.NewText()
		t.SetSoftLineBreak(true)
		return t, nil
	case markdown.LineBreak:
		t := ast.NewText()
		t.SetHardLineBreak(true)
		return t, nil
	case markdown.InlineMath:
		cs := ast.NewCodeSpan()
		cs.AppendChild(cs, ast.NewString([]byte(el.Math)))
		return cs, nil
	case markdown.FootnoteLink:
		// Import stores the goldmark footnote index as the ID
		idx, _ := strconv.Atoi(el.ID)
		g = east.NewFootnoteLink(idx)

	case markdown.Table:
		return exportTable(n, el)
	default:
		return nil, &UnsupportedElementError{Element: n.Element()}
	}
	if err := exportChildren(g, n); err != nil {
		return nil, err
	}
	return g, nil
}

func exportChildren[M any](g ast.Node, n *mdtree.Node[M]) error {
	for child := range n.Children().All() {
		gc, err := exportNode(child)
		if err != nil {
			return err
		}
		g.AppendChild(g, gc)
	}
	return nil
}

// exportTable flattens the catalog's header/body wrappers back into
// the goldmark shape: header rows become TableHeader nodes, body rows
// hang off the table directly.
func exportTable[M any](n *mdtree.Node[M], el markdown.Table) (ast.Node, error) {
	aligns := make([]east.Alignment, len(el.Spec))
	for i, a := range el.Spec {
		aligns[i] = exportAlign(a)
	}
	t := east.NewTable()
	t.Alignments = aligns

	for wrapper := range n.Children().All() {
		switch wrapper.Element().(type) {
		case markdown.TableHeader:
			for row := range wrapper.Children().All() {
				r, err := exportRow(row, aligns)
				if err != nil {
					return nil, err
				}
				t.AppendChild(t, east.NewTableHeader(r))
			}
		case markdown.TableBody:
			for row := range wrapper.Children().All() {
				r, err := exportRow(row, aligns)
				if err != nil {
					return nil, err
				}
				t.AppendChild(t, r)
			}
		default:
			return nil, &UnsupportedElementError{Element: wrapper.Element()}
		}
	}
	return t, nil
}

func exportRow[M any](row *mdtree.Node[M], aligns []east.Alignment) (*east.TableRow, error) {
	r := east.NewTableRow(aligns)
	for cell := range row.Children().All() {
		el, ok := cell.Element().(markdown.TableCell)
		if !ok {
			return nil, &UnsupportedElementError{Element: cell.Element()}
		}
		c := east.NewTableCell()
		c.Alignment = exportAlign(el.Align)
		if err := exportChildren(c, cell); err != nil {
			return nil, err
		}
		r.AppendChild(r, c)
	}
	return r, nil
}

func exportAlign(a markdown.Alignment) east.Alignment {
	switch a {
	case markdown.AlignLeft:
		return east.AlignLeft
	case markdown.AlignCenter:
		return east.AlignCenter
	case markdown.AlignRight:
		return east.AlignRight
	}
	return east.AlignNone
}
