// Package dlx implements Knuth's Algorithm X over a toroidal Dancing Links
// mesh: the four-way circularly linked matrix, the cover/uncover primitives
// that reversibly remove a column and the rows intersecting it, and an
// explicit-stack search engine that enumerates exact covers without
// recursion.
package dlx

// handle is a stable index into a Mesh's node arena, starting at 0 for the
// first allocated node; use invalidHandle for "no node".
type handle int

const invalidHandle handle = -1

// node is a single element of the toroidal mesh: a column header, the root
// sentinel, or a data node belonging to one input row and one column.
//
// Column headers and the root self-reference through header. Row is -1 for
// headers and the root; Col is unused on the root.
type node struct {
	left, right, up, down handle
	header                handle
	row                   int
	col                   int
}
