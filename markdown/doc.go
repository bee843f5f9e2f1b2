// Package markdown is the built-in element catalog for mdtree: the
// CommonMark block and inline variants, the pipe-table family and a
// few common extensions (math, footnotes).
//
// Each variant is a small value type implementing mdtree.Element.
// Variants are data only; all tree behavior lives in the core.
// Containment follows the default role rule except where a variant
// overrides it: leaf blocks with inline content (Paragraph, Heading)
// accept inlines, List accepts only Item, and the table family forms
// a fixed hierarchy Table > TableHeader/TableBody > TableRow >
// TableCell > inlines.
//
// The package also provides the table geometry helpers TableRows,
// TableRowCount, TableSize and TableSizeOf, which operate on nodes
// whose element is Table.
package markdown
