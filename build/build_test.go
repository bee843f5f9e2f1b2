package build_test

import (
	"errors"
	"testing"

	"github.com/signadot/mdtree"
	"github.com/signadot/mdtree/build"
	"github.com/signadot/mdtree/markdown"
)

func TestTree(t *testing.T) {
	root, err := build.Tree(markdown.Document{},
		build.Must(markdown.Paragraph{}, "hello"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if got := root.Children().Len(); got != 1 {
		t.Fatalf("document has %d children, want 1", got)
	}
	p, err := root.Children().First()
	if err != nil {
		t.Fatal(err)
	}
	leaf, err := p.Children().First()
	if err != nil {
		t.Fatal(err)
	}
	want := markdown.Text{Text: "hello"}
	if !mdtree.ElementsEqual(leaf.Element(), want) {
		t.Errorf("leaf element = %v, want %v", leaf.Element(), want)
	}
}

func TestTreeKinds(t *testing.T) {
	// a bare element, a string, and a prebuilt node in one call
	existing := mdtree.New(markdown.ThematicBreak{})
	root, err := build.Tree(markdown.Document{},
		markdown.ThematicBreak{},
		build.Must(markdown.Paragraph{}, "p"),
		existing,
	)
	if err != nil {
		t.Fatal(err)
	}
	if got := root.Children().Len(); got != 3 {
		t.Fatalf("document has %d children, want 3", got)
	}
	if existing.Parent() != root {
		t.Error("prebuilt node must be adopted")
	}
}

func TestTreeErrors(t *testing.T) {
	t.Run("unsupported child type", func(t *testing.T) {
		_, err := build.Tree(markdown.Document{}, 42)
		if !errors.Is(err, mdtree.ErrInvalidArgument) {
			t.Errorf("err = %v, want ErrInvalidArgument", err)
		}
	})
	t.Run("illegal child", func(t *testing.T) {
		_, err := build.Tree(markdown.Document{}, "loose text")
		if !errors.Is(err, mdtree.ErrInvalidChild) {
			t.Errorf("err = %v, want ErrInvalidChild", err)
		}
	})
	t.Run("must panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Must should panic on an illegal tree")
			}
		}()
		build.Must(markdown.Document{}, "loose text")
	})
}

func TestTreeEquivalence(t *testing.T) {
	built := build.Must(markdown.Paragraph{},
		"see ",
		build.Must(markdown.Link{Destination: "idx.md"}, "the index"),
	)

	manual := mdtree.New(markdown.Paragraph{})
	if err := manual.Children().Append(mdtree.New(markdown.Text{Text: "see "})); err != nil {
		t.Fatal(err)
	}
	link := mdtree.New(markdown.Link{Destination: "idx.md"})
	if err := link.Children().Append(mdtree.New(markdown.Text{Text: "the index"})); err != nil {
		t.Fatal(err)
	}
	if err := manual.Children().Append(link); err != nil {
		t.Fatal(err)
	}

	if !built.Equal(manual) {
		t.Error("built and manual trees must be structurally equal")
	}
}
