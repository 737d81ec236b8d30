// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package terrain

import (
	"github.com/gviegas/ocean/linear"
)

// NodeID identifies a node in a Store.
// It is only valid until the next Tree.Build.
type NodeID int

// Nil represents an invalid NodeID.
const Nil NodeID = -1

// Quadrant identifies the position of a node under
// its parent.
//
// With north towards +z and east towards +x, the four
// quadrants are laid out as follows:
//
//	+z
//	 ^  Q4 | Q3
//	 |  ---+---
//	 |  Q1 | Q2
//	 +---------> +x
type Quadrant int

// Quadrants.
const (
	Root Quadrant = iota
	Q1            // -x, -z (south-west)
	Q2            // +x, -z (south-east)
	Q3            // +x, +z (north-east)
	Q4            // -x, +z (north-west)
)

// String implements fmt.Stringer.
func (q Quadrant) String() string {
	switch q {
	case Root:
		return "root"
	case Q1:
		return "Q1"
	case Q2:
		return "Q2"
	case Q3:
		return "Q3"
	case Q4:
		return "Q4"
	}
	return "invalid"
}

// Edge identifies one of the four edges of a patch.
type Edge int

// Edges.
const (
	North Edge = iota // +z
	South             // -z
	East              // +x
	West              // -x
)

// String implements fmt.Stringer.
func (e Edge) String() string {
	switch e {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "invalid"
}

// Opposite returns the edge facing e.
func (e Edge) Opposite() Edge { return e ^ 1 }

// Offsets of each quadrant's origin relative to the
// parent's origin, in units of a quarter of the parent's
// extent.
var quadrantOffsets = [4][2]float32{
	Q1 - 1: {-1, -1},
	Q2 - 1: {+1, -1},
	Q3 - 1: {+1, +1},
	Q4 - 1: {-1, +1},
}

// Sibling adjacency: siblingOf[q-1][e] is the quadrant
// sharing edge e with quadrant q, or Root if edge e is
// on the parent's boundary.
var siblingOf = [4][4]Quadrant{
	Q1 - 1: {North: Q4, East: Q2},
	Q2 - 1: {North: Q3, West: Q1},
	Q3 - 1: {South: Q2, West: Q4},
	Q4 - 1: {South: Q1, East: Q3},
}

// Node is a square patch of the domain.
type Node struct {
	// Center of the patch. Origin[1] is the
	// height of the domain.
	Origin linear.V3

	// Extents of the patch along x and z.
	Width, Height float32

	// Patch is the leaf's patch, or NoHandle for
	// internal nodes and missing leaves.
	Patch Handle

	Quadrant Quadrant

	// Tessellation scale of each edge (indexed by
	// Edge), either 1 or 2.
	// Only meaningful for leaves, and only after a
	// call to Tree.TessScale.
	Scale [4]float32

	Parent NodeID

	// Children is indexed by Quadrant-1.
	// Either every element is Nil or none is.
	Children [4]NodeID

	// Neighbors is indexed by Edge.
	// Only siblings are recorded; edges that lie on
	// the parent's boundary are Nil.
	// The links are kept for callers that walk the
	// tree. TessScale does not read them: it locates
	// neighbors with FindNodeAt, which also finds the
	// ones across the parent's boundary.
	Neighbors [4]NodeID
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool { return n.Children[0] == Nil }

// init initializes every field of n.
func (n *Node) init(parent NodeID, q Quadrant, origin linear.V3, w, h float32) {
	*n = Node{
		Origin:    origin,
		Width:     w,
		Height:    h,
		Patch:     NoHandle,
		Quadrant:  q,
		Scale:     [4]float32{1, 1, 1, 1},
		Parent:    parent,
		Children:  [4]NodeID{Nil, Nil, Nil, Nil},
		Neighbors: [4]NodeID{Nil, Nil, Nil, Nil},
	}
}
