package gmast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/signadot/mdtree"
	"github.com/signadot/mdtree/markdown"
)

// FromMarkdown parses source as Markdown (GFM tables and footnotes
// enabled) and imports the result.
func FromMarkdown(source []byte) (*mdtree.Node[mdtree.Empty], error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table, extension.Footnote))
	doc := md.Parser().Parse(text.NewReader(source))
	return Import(doc, source)
}

// Import converts a goldmark tree into an mdtree tree. source must be
// the bytes the goldmark tree was parsed from; goldmark text nodes
// reference it by segment.
func Import(n ast.Node, source []byte) (*mdtree.Node[mdtree.Empty], error) {
	out, err := convert(n, source)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%w: %s maps to %d nodes, want 1",
			mdtree.ErrInvalidArgument, n.Kind(), len(out))
	}
	return out[0], nil
}

// convert maps one goldmark node to zero or more tree nodes. Text
// nodes may yield two (the text plus a trailing line break element);
// rendering artifacts like footnote backlinks yield none.
func convert(n ast.Node, source []byte) ([]*mdtree.Node[mdtree.Empty], error) {
	one := func(el mdtree.Element) ([]*mdtree.Node[mdtree.Empty], error) {
		node := mdtree.New(el)
		if err := convertChildren(node, n, source); err != nil {
			return nil, err
		}
		return []*mdtree.Node[mdtree.Empty]{node}, nil
	}
	leaf := func(el mdtree.Element) ([]*mdtree.Node[mdtree.Empty], error) {
		return []*mdtree.Node[mdtree.Empty]{mdtree.New(el)}, nil
	}

	switch v := n.(type) {
	case *ast.Document:
		return one(markdown.Document{})
	case *ast.Heading:
		return one(markdown.Heading{Level: v.Level})
	case *ast.Paragraph:
		return one(markdown.Paragraph{})
	case *ast.TextBlock:
		return one(markdown.Paragraph{})
	case *ast.Blockquote:
		return one(markdown.BlockQuote{})
	case *ast.List:
		return one(markdown.List{
			Ordered: v.IsOrdered(),
			Tight:   v.IsTight,
			Start:   v.Start,
		})
	case *ast.ListItem:
		return one(markdown.Item{})
	case *ast.ThematicBreak:
		return leaf(markdown.ThematicBreak{})
	case *ast.FencedCodeBlock:
		return leaf(markdown.CodeBlock{
			Info: string(v.Language(source)),
			Code: linesValue(v.Lines(), source),
		})
	case *ast.CodeBlock:
		return leaf(markdown.CodeBlock{Code: linesValue(v.Lines(), source)})
	case *ast.HTMLBlock:
		html := linesValue(v.Lines(), source)
		if v.HasClosure() {
			html += string(v.ClosureLine.Value(source))
		}
		return leaf(markdown.HTMLBlock{HTML: html})

	case *ast.Text:
		var out []*mdtree.Node[mdtree.Empty]
		if txt := v.Segment.Value(source); len(txt) > 0 {
			out = append(out, mdtree.New(markdown.Text{Text: string(txt)}))
		}
		switch {
		case v.HardLineBreak():
			out = append(out, mdtree.New(markdown.LineBreak{}))
		case v.SoftLineBreak():
			out = append(out, mdtree.New(markdown.SoftBreak{}))
		}
		return out, nil
	case *ast.String:
		return leaf(markdown.Text{Text: string(v.Value)})
	case *ast.CodeSpan:
		return leaf(markdown.Code{Code: nodeText(v, source)})
	case *ast.Emphasis:
		if v.Level >= 2 {
			return one(markdown.Strong{})
		}
		return one(markdown.Emph{})
	case *ast.Link:
		return one(markdown.Link{
			Destination: string(v.Destination),
			Title:       string(v.Title),
		})
	case *ast.Image:
		return one(markdown.Image{
			Destination: string(v.Destination),
			Title:       string(v.Title),
		})
	case *ast.AutoLink:
		url := string(v.URL(source))
		node := mdtree.New(markdown.Link{Destination: url})
		label := mdtree.New(markdown.Text{Text: string(v.Label(source))})
		if err := node.Children().Append(label); err != nil {
			return nil, err
		}
		return []*mdtree.Node[mdtree.Empty]{node}, nil
	case *ast.RawHTML:
		return leaf(markdown.HTMLInline{HTML: segmentsValue(v.Segments, source)})

	case *east.Table:
		return convertTable(v, source)
	case *east.Footnote:
		return one(markdown.FootnoteDefinition{ID: string(v.Ref)})
	case *east.FootnoteLink:
		return leaf(markdown.FootnoteLink{ID: strconv.Itoa(v.Index)})
	case *east.FootnoteList:
		// rendering wrapper: splice its footnote definitions through
		var out []*mdtree.Node[mdtree.Empty]
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			ns, err := convert(c, source)
			if err != nil {
				return nil, err
			}
			out = append(out, ns...)
		}
		return out, nil
	case *east.FootnoteBacklink:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, n.Kind())
}

func convertChildren(dst *mdtree.Node[mdtree.Empty], n ast.Node, source []byte) error {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		ns, err := convert(c, source)
		if err != nil {
			return err
		}
		if err := dst.Children().AppendAll(ns...); err != nil {
			return err
		}
	}
	return nil
}

// convertTable rebuilds the goldmark table shape (one header row plus
// bare body rows) as the catalog shape (header and body wrappers).
func convertTable(t *east.Table, source []byte) ([]*mdtree.Node[mdtree.Empty], error) {
	spec := make([]markdown.Alignment, len(t.Alignments))
	for i, a := range t.Alignments {
		spec[i] = importAlign(a)
	}
	table := mdtree.New(markdown.Table{Spec: spec})

	var body *mdtree.Node[mdtree.Empty]
	for c := t.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *east.TableHeader:
			row, err := convertRow(v, source, true)
			if err != nil {
				return nil, err
			}
			header := mdtree.New(markdown.TableHeader{})
			if err := header.Children().Append(row); err != nil {
				return nil, err
			}
			if err := table.Children().Append(header); err != nil {
				return nil, err
			}
		case *east.TableRow:
			row, err := convertRow(v, source, false)
			if err != nil {
				return nil, err
			}
			if body == nil {
				body = mdtree.New(markdown.TableBody{})
			}
			if err := body.Children().Append(row); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: %s inside table", ErrUnsupportedKind, c.Kind())
		}
	}
	if body != nil {
		if err := table.Children().Append(body); err != nil {
			return nil, err
		}
	}
	return []*mdtree.Node[mdtree.Empty]{table}, nil
}

func convertRow(n ast.Node, source []byte, header bool) (*mdtree.Node[mdtree.Empty], error) {
	row := mdtree.New(markdown.TableRow{})
	col := 0
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		tc, ok := c.(*east.TableCell)
		if !ok {
			return nil, fmt.Errorf("%w: %s inside table row", ErrUnsupportedKind, c.Kind())
		}
		cell := mdtree.New(markdown.TableCell{
			Align:  importAlign(tc.Alignment),
			Header: header,
			Column: col,
		})
		if err := convertChildren(cell, tc, source); err != nil {
			return nil, err
		}
		if err := row.Children().Append(cell); err != nil {
			return nil, err
		}
		col++
	}
	return row, nil
}

func importAlign(a east.Alignment) markdown.Alignment {
	switch a {
	case east.AlignLeft:
		return markdown.AlignLeft
	case east.AlignCenter:
		return markdown.AlignCenter
	case east.AlignRight:
		return markdown.AlignRight
	}
	return markdown.AlignNone
}

func linesValue(lines *text.Segments, source []byte) string {
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}

func segmentsValue(segs *text.Segments, source []byte) string {
	var sb strings.Builder
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}

// nodeText concatenates the text segments below an inline node, used
// for code spans whose content goldmark stores as child text nodes.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			sb.Write(v.Segment.Value(source))
		case *ast.String:
			sb.Write(v.Value)
		}
	}
	return sb.String()
}
