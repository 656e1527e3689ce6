// Package board holds the in-memory state behind one pipeline board: the
// record store, the per-stage projection over it, the visibility rule shared
// by both, and the value types describing drops and their reconciliation.
//
// Nothing in this package performs I/O. The application layer drives it.
package board
