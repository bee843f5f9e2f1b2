package markdown

import (
	"fmt"
	"iter"
	"slices"

	"github.com/signadot/mdtree"
)

// Alignment is a table column alignment.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "<unknown alignment>"
}

// Table is the root of a pipe table. Its children are TableHeader and
// TableBody wrapper nodes only.
type Table struct {
	blockContainer
	// Spec holds the per-column alignments declared by the table's
	// delimiter row.
	Spec []Alignment
}

func (Table) CanContain(child mdtree.Element) bool {
	switch child.(type) {
	case TableHeader, TableBody:
		return true
	}
	return false
}

// Equal compares tables by their column spec. Table carries a slice,
// so it opts out of the default deep-equality comparison to make nil
// and empty specs interchangeable.
func (t Table) Equal(other mdtree.Element) bool {
	o, ok := other.(Table)
	return ok && slices.Equal(t.Spec, o.Spec)
}

// TableHeader wraps the header rows of a table.
type TableHeader struct{ blockContainer }

func (TableHeader) CanContain(child mdtree.Element) bool {
	_, ok := child.(TableRow)
	return ok
}

// TableBody wraps the body rows of a table.
type TableBody struct{ blockContainer }

func (TableBody) CanContain(child mdtree.Element) bool {
	_, ok := child.(TableRow)
	return ok
}

// TableRow holds TableCell children only.
type TableRow struct{ blockContainer }

func (TableRow) CanContain(child mdtree.Element) bool {
	_, ok := child.(TableCell)
	return ok
}

// TableCell is a single cell holding inline content.
type TableCell struct {
	inlineContent
	Align Alignment
	// Header marks cells of header rows.
	Header bool
	// Column is the zero-based column index.
	Column int
}

// TableRows flattens the header/body wrapper nodes of a table into a
// lazy sequence of row nodes, header rows first. It fails with
// ErrInvalidArgument when the node's element is not Table.
func TableRows[M any](table *mdtree.Node[M]) (iter.Seq[*mdtree.Node[M]], error) {
	if table == nil {
		return nil, fmt.Errorf("%w: nil table node", mdtree.ErrInvalidArgument)
	}
	if _, ok := table.Element().(Table); !ok {
		return nil, fmt.Errorf("%w: table geometry on %s node",
			mdtree.ErrInvalidArgument, mdtree.ElementName(table.Element()))
	}
	return func(yield func(*mdtree.Node[M]) bool) {
		for wrapper := range table.Children().All() {
			if _, ok := wrapper.Element().(TableHeader); !ok {
				continue
			}
			for row := range wrapper.Children().All() {
				if !yield(row) {
					return
				}
			}
		}
		for wrapper := range table.Children().All() {
			if _, ok := wrapper.Element().(TableBody); !ok {
				continue
			}
			for row := range wrapper.Children().All() {
				if !yield(row) {
					return
				}
			}
		}
	}, nil
}

// TableRowCount counts the rows of a table without touching any
// row's cells. Callers needing only the row count should prefer this
// over TableSize, which walks every cell.
func TableRowCount[M any](table *mdtree.Node[M]) (int, error) {
	seq, err := TableRows(table)
	if err != nil {
		return 0, err
	}
	n := 0
	for range seq {
		n++
	}
	return n, nil
}

// TableSize returns the number of rows and columns of a table. The
// column count is the maximum cell count over all rows, so the scan
// is O(rows x cols).
func TableSize[M any](table *mdtree.Node[M]) (rows, cols int, err error) {
	seq, err := TableRows(table)
	if err != nil {
		return 0, 0, err
	}
	for row := range seq {
		rows++
		if n := row.Children().Len(); n > cols {
			cols = n
		}
	}
	return rows, cols, nil
}

// TableDimension selects which dimension TableSizeOf reports.
type TableDimension int

const (
	TableDimRows TableDimension = iota + 1
	TableDimColumns
)

// TableSizeOf returns a single table dimension. Row queries take the
// cheap row-count path; column queries pay for the full scan. An
// unknown dimension fails with ErrInvalidArgument.
func TableSizeOf[M any](table *mdtree.Node[M], dim TableDimension) (int, error) {
	switch dim {
	case TableDimRows:
		return TableRowCount(table)
	case TableDimColumns:
		_, cols, err := TableSize(table)
		return cols, err
	default:
		return 0, fmt.Errorf("%w: unknown table dimension %d", mdtree.ErrInvalidArgument, int(dim))
	}
}
