// Package gmast converts between mdtree document trees and the
// goldmark AST (github.com/yuin/goldmark/ast plus the GFM table and
// footnote extension nodes).
//
// Import walks a parsed goldmark tree and produces an equivalent
// mdtree tree rooted at markdown.Document. The produced tree is built
// exclusively through validated mutations, so it satisfies every
// structural invariant of the core. FromMarkdown bundles parsing
// (tables and footnotes enabled) and Import.
//
// Export is the inverse mapping. It fails with an
// *UnsupportedElementError for any element outside the markdown
// catalog; unknown elements are never dropped or coerced.
//
// The mapping is documented lossy in both directions where the two
// models disagree:
//
//   - goldmark stores block text as segments into the parsed source;
//     exported CodeBlock/HTMLBlock content travels as an ast.String
//     child instead, and fence info strings are not reconstructed.
//   - soft and hard line breaks are flags on goldmark text nodes;
//     exported breaks become empty ast.Text nodes carrying the flag.
//   - DisplayMath and InlineMath have no goldmark analog and export
//     as code blocks and code spans.
//   - goldmark footnotes are index-based; footnote identifiers pass
//     through the extension nodes' reference bytes where possible.
package gmast
