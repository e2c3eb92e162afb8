// Package section provides the presentational blocks the landing page is
// assembled from.
//
// Every block is a pure function from its props to a gomponents node tree:
// no state, no I/O, no error paths. Identical props always render identical
// markup, and each block marks its root element with a data-section
// attribute naming its Kind.
package section
