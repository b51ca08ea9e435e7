// Package cleandoc compacts an assembled document hierarchy for output.
//
// Cleaning is a lossy, one-way transformation: per-detection ids are
// dropped, box geometry is folded into a single spatial_info string, and
// text is normalized. Run it only after hierarchy assembly, table
// processing and any reorganization have finished.
package cleandoc
