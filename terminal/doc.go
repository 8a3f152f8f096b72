// Package terminal wraps a tcell screen behind a cell-flush interface.
//
// Cells are written as whole frames (row-major) and translated to tcell styles.
// Input is converted to a flat Event value so callers do not depend on tcell types.
package terminal
