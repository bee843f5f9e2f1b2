// Package encode renders document trees for humans: an indented
// outline with optional ANSI color, and a YAML rendition for tooling
// that wants the tree as data. It renders structure, not Markdown;
// turning a tree back into Markdown text is not this package's job.
package encode

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/signadot/mdtree"
)

type EncState struct {
	indent int
	colors *Colors
}

type EncodeOption func(*EncState)

// EncodeIndent sets the per-level indent width (default 3, matching
// the branch glyph width).
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		es.indent = n
	}
}

// EncodeColors enables colored output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		es.colors = c
	}
}

// Encode writes the tree rooted at root as an indented outline, one
// node per line: the element name followed by its exported fields.
//
//	document
//	├─ heading level=1
//	│  └─ text text="Title"
//	└─ paragraph
//	   └─ text text="hello"
func Encode[M any](root *mdtree.Node[M], w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 3}
	for _, opt := range opts {
		opt(es)
	}
	if root == nil {
		return fmt.Errorf("%w: nil root", mdtree.ErrInvalidArgument)
	}
	if err := encodeLine(root, w, es, ""); err != nil {
		return err
	}
	return encodeChildren(root, w, es, "")
}

func encodeChildren[M any](n *mdtree.Node[M], w io.Writer, es *EncState, prefix string) error {
	last, err := n.Children().Last()
	if err != nil {
		// childless
		return nil
	}
	rule := strings.Repeat("─", max(es.indent-2, 0))
	pad := strings.Repeat(" ", max(es.indent-1, 1))
	for child := range n.Children().All() {
		branch, cont := "├"+rule+" ", "│"+pad
		if child == last {
			branch, cont = "└"+rule+" ", " "+pad
		}
		if es.colors != nil {
			branch = es.colors.Branch("%s", branch)
		}
		if _, err := io.WriteString(w, prefix+branch); err != nil {
			return err
		}
		if err := encodeLine(child, w, es, prefix+cont); err != nil {
			return err
		}
		if err := encodeChildren(child, w, es, prefix+cont); err != nil {
			return err
		}
	}
	return nil
}

func encodeLine[M any](n *mdtree.Node[M], w io.Writer, es *EncState, prefix string) error {
	name := mdtree.ElementName(n.Element())
	attrs := attrString(n.Element())
	if es.colors != nil {
		if n.Element().Role() == mdtree.Block {
			name = es.colors.Block("%s", name)
		} else {
			name = es.colors.Inline("%s", name)
		}
		if attrs != "" {
			attrs = es.colors.Attr("%s", attrs)
		}
	}
	line := name
	if attrs != "" {
		line += " " + attrs
	}
	_, err := io.WriteString(w, line+"\n")
	return err
}

// attrString renders the exported fields of an element value as
// space-separated key=value pairs in field order, lower-cased keys,
// strings quoted.
func attrString(el mdtree.Element) string {
	m := mdtree.ElementAttrs(el)
	if len(m) == 0 {
		return ""
	}
	var parts []string
	v := reflect.ValueOf(el)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		key := strings.ToLower(f.Name)
		val, ok := m[key]
		if !ok {
			continue
		}
		switch x := val.(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s=%q", key, x))
		default:
			parts = append(parts, fmt.Sprintf("%s=%v", key, x))
		}
	}
	return strings.Join(parts, " ")
}
