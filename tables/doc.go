// Package tables turns the table subtrees of an assembled form hierarchy
// into flat, per-table field lists and infers semantic labels for cells
// whose OCR text came back empty.
//
// [Extract] pulls every table node out of a hierarchy as a [Table]: the
// table's own metadata plus the cell-level detections inside it. The
// [Engine] then clusters field positions to classify each table's shape
// (single header row, two-axis with row and column headers, or numbered
// rows) and synthesizes a positional context label ("State1",
// "Primary Insured - Policy Number") for every empty cell. [Merge] writes
// the synthesized text back onto the tree.
//
// The inference is heuristic: it guesses row and column semantics from
// coordinates alone. Ambiguous layouts fall back to the single-header
// shape, tables without a recognizable header row are skipped, and a cell
// that resolves to no header is labeled "Unknown field"; no table ever
// blocks processing.
package tables
