package gmast_test

import (
	"errors"
	"strings"
	"testing"

	east "github.com/yuin/goldmark/extension/ast"

	"github.com/signadot/mdtree"
	"github.com/signadot/mdtree/build"
	"github.com/signadot/mdtree/gmast"
	"github.com/signadot/mdtree/markdown"
)

func TestFromMarkdown(t *testing.T) {
	source := []byte("# Title\n\nhello *world*\n\n- a\n- b\n")
	got, err := gmast.FromMarkdown(source)
	if err != nil {
		t.Fatal(err)
	}
	want := build.Must(markdown.Document{},
		build.Must(markdown.Heading{Level: 1}, "Title"),
		build.Must(markdown.Paragraph{},
			"hello ",
			build.Must(markdown.Emph{}, "world"),
		),
		build.Must(markdown.List{Tight: true},
			build.Must(markdown.Item{}, build.Must(markdown.Paragraph{}, "a")),
			build.Must(markdown.Item{}, build.Must(markdown.Paragraph{}, "b")),
		),
	)
	if !got.Equal(want) {
		t.Errorf("imported tree differs from expectation")
	}
}

func TestFromMarkdownTable(t *testing.T) {
	source := []byte("| a | b |\n|---|--:|\n| 1 | 2 |\n")
	got, err := gmast.FromMarkdown(source)
	if err != nil {
		t.Fatal(err)
	}
	table, err := got.Children().First()
	if err != nil {
		t.Fatal(err)
	}
	want := build.Must(
		markdown.Table{Spec: []markdown.Alignment{markdown.AlignNone, markdown.AlignRight}},
		build.Must(markdown.TableHeader{},
			build.Must(markdown.TableRow{},
				build.Must(markdown.TableCell{Align: markdown.AlignNone, Header: true, Column: 0}, "a"),
				build.Must(markdown.TableCell{Align: markdown.AlignRight, Header: true, Column: 1}, "b"),
			),
		),
		build.Must(markdown.TableBody{},
			build.Must(markdown.TableRow{},
				build.Must(markdown.TableCell{Align: markdown.AlignNone, Column: 0}, "1"),
				build.Must(markdown.TableCell{Align: markdown.AlignRight, Column: 1}, "2"),
			),
		),
	)
	if !table.Equal(want) {
		t.Errorf("imported table differs from expectation")
	}
	rows, cols, err := markdown.TableSize(table)
	if err != nil {
		t.Fatal(err)
	}
	if rows != 2 || cols != 2 {
		t.Errorf("table size = (%d, %d), want (2, 2)", rows, cols)
	}
}

func TestFromMarkdownLineBreaks(t *testing.T) {
	got, err := gmast.FromMarkdown([]byte("one\ntwo\\\nthree\n"))
	if err != nil {
		t.Fatal(err)
	}
	p, err := got.Children().First()
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for c := range p.Children().All() {
		names = append(names, mdtree.ElementName(c.Element()))
	}
	want := []string{"text", "softbreak", "text", "linebreak", "text"}
	if len(names) != len(want) {
		t.Fatalf("children = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("children = %v, want %v", names, want)
		}
	}
}

func TestFromMarkdownCodeBlock(t *testing.T) {
	got, err := gmast.FromMarkdown([]byte("```go\nfmt.Println(1)\n```\n"))
	if err != nil {
		t.Fatal(err)
	}
	cb, err := got.Children().First()
	if err != nil {
		t.Fatal(err)
	}
	el, ok := cb.Element().(markdown.CodeBlock)
	if !ok {
		t.Fatalf("element = %T, want CodeBlock", cb.Element())
	}
	if el.Info != "go" {
		t.Errorf("info = %q, want %q", el.Info, "go")
	}
	if el.Code != "fmt.Println(1)\n" {
		t.Errorf("code = %q", el.Code)
	}
	if cb.HasChildren() {
		t.Error("code block content lives in the element, not in children")
	}
}

func TestExportRoundTrip(t *testing.T) {
	orig := build.Must(markdown.Document{},
		build.Must(markdown.Heading{Level: 2}, "Details"),
		build.Must(markdown.Paragraph{},
			"see ",
			build.Must(markdown.Strong{}, "this"),
			mdtree.New(markdown.SoftBreak{}),
			build.Must(markdown.Link{Destination: "idx.md", Title: "t"}, "the index"),
		),
	)
	g, err := gmast.Export(orig)
	if err != nil {
		t.Fatal(err)
	}
	back, err := gmast.Import(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(orig) {
		t.Errorf("round trip changed the tree")
	}
}

func TestExportTableShape(t *testing.T) {
	table := build.Must(
		markdown.Table{Spec: []markdown.Alignment{markdown.AlignLeft, markdown.AlignCenter}},
		build.Must(markdown.TableHeader{},
			build.Must(markdown.TableRow{},
				build.Must(markdown.TableCell{Align: markdown.AlignLeft, Header: true}, "h1"),
				build.Must(markdown.TableCell{Align: markdown.AlignCenter, Header: true, Column: 1}, "h2"),
			),
		),
		build.Must(markdown.TableBody{},
			build.Must(markdown.TableRow{},
				build.Must(markdown.TableCell{Align: markdown.AlignLeft}, "b1"),
				build.Must(markdown.TableCell{Align: markdown.AlignCenter, Column: 1}, "b2"),
			),
		),
	)
	g, err := gmast.Export(table)
	if err != nil {
		t.Fatal(err)
	}
	gt, ok := g.(*east.Table)
	if !ok {
		t.Fatalf("exported %T, want *east.Table", g)
	}
	if len(gt.Alignments) != 2 || gt.Alignments[0] != east.AlignLeft || gt.Alignments[1] != east.AlignCenter {
		t.Errorf("alignments = %v", gt.Alignments)
	}
	// goldmark shape: header node first, then bare rows
	first := gt.FirstChild()
	if _, ok := first.(*east.TableHeader); !ok {
		t.Errorf("first child is %T, want *east.TableHeader", first)
	}
	if _, ok := first.NextSibling().(*east.TableRow); !ok {
		t.Errorf("second child is %T, want *east.TableRow", first.NextSibling())
	}
}

func TestFromMarkdownFootnotes(t *testing.T) {
	got, err := gmast.FromMarkdown([]byte("text[^1]\n\n[^1]: note\n"))
	if err != nil {
		t.Fatal(err)
	}

	var links []markdown.FootnoteLink
	var defs []*mdtree.Node[mdtree.Empty]
	var walk func(n *mdtree.Node[mdtree.Empty])
	walk = func(n *mdtree.Node[mdtree.Empty]) {
		switch el := n.Element().(type) {
		case markdown.FootnoteLink:
			links = append(links, el)
		case markdown.FootnoteDefinition:
			defs = append(defs, n)
		}
		for c := range n.Children().All() {
			walk(c)
		}
	}
	walk(got)

	if len(links) != 1 || links[0].ID != "1" {
		t.Fatalf("footnote links = %v, want one with ID 1", links)
	}
	if len(defs) != 1 {
		t.Fatalf("got %d footnote definitions, want 1", len(defs))
	}
	def := defs[0]
	if el := def.Element().(markdown.FootnoteDefinition); el.ID != "1" {
		t.Errorf("definition ID = %q, want %q", el.ID, "1")
	}
	// definition content parses as regular blocks
	var content strings.Builder
	var collect func(n *mdtree.Node[mdtree.Empty])
	collect = func(n *mdtree.Node[mdtree.Empty]) {
		if el, ok := n.Element().(markdown.Text); ok {
			content.WriteString(el.Text)
		}
		for c := range n.Children().All() {
			collect(c)
		}
	}
	collect(def)
	if !strings.Contains(content.String(), "note") {
		t.Errorf("definition text = %q, want it to contain %q", content.String(), "note")
	}
}

type custom struct{}

func (custom) Role() mdtree.Role { return mdtree.Block }
func (custom) Container() bool   { return false }

func TestExportUnsupported(t *testing.T) {
	root := mdtree.New(markdown.Document{})
	if err := root.Children().Append(mdtree.New(custom{})); err != nil {
		t.Fatal(err)
	}
	_, err := gmast.Export(root)
	if !errors.Is(err, gmast.ErrUnsupportedElement) {
		t.Fatalf("err = %v, want ErrUnsupportedElement", err)
	}
	var ue *gmast.UnsupportedElementError
	if !errors.As(err, &ue) {
		t.Fatal("error must carry the element")
	}
	if _, ok := ue.Element.(custom); !ok {
		t.Errorf("carried element = %T", ue.Element)
	}
}

func TestImportUnsupportedKind(t *testing.T) {
	// a table cell outside a table has no mapping of its own
	_, err := gmast.Import(east.NewTableCell(), nil)
	if !errors.Is(err, gmast.ErrUnsupportedKind) {
		t.Errorf("err = %v, want ErrUnsupportedKind", err)
	}
}
