// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package terrain

// FindNodeAt returns the node whose origin is closest to
// the point (x, z), descending from the root.
// The search stops at a node whose origin matches the
// point exactly, or at a leaf. Points outside the domain
// resolve to a node along its boundary.
// It returns Nil if the tree has not been built.
func (t *Tree) FindNodeAt(x, z float32) NodeID {
	id := t.root
	for id != Nil {
		n := t.store.Node(id)
		ox, oz := n.Origin[0], n.Origin[2]
		if (ox == x && oz == z) || n.Leaf() {
			return id
		}
		switch {
		case ox >= x && oz >= z:
			id = n.Children[Q1-1]
		case ox <= x && oz >= z:
			id = n.Children[Q2-1]
		case ox <= x && oz <= z:
			id = n.Children[Q3-1]
		case ox >= x && oz <= z:
			id = n.Children[Q4-1]
		default:
			// NaN.
			return id
		}
	}
	return Nil
}

// probe returns the point just past the midpoint of
// edge e of n.
func probe(n *Node, e Edge) (x, z float32) {
	x, z = n.Origin[0], n.Origin[2]
	d := probeOffset + n.Width/2
	switch e {
	case North:
		z += d
	case South:
		z -= d
	case East:
		x += d
	case West:
		x -= d
	}
	return
}

// TessScale computes the tessellation scale of each edge
// of leaf id and stores it in the node's Scale field.
// An edge scale is 2 when the node across that edge is
// wider than the leaf, and 1 otherwise. The wider node's
// edge keeps scale 1, so both sides tessellate the shared
// edge with the same number of segments once the shader
// divides the leaf's edge level by its scale.
func (t *Tree) TessScale(id NodeID) [4]float32 {
	n := t.store.Node(id)
	for e := North; e <= West; e++ {
		x, z := probe(n, e)
		if nb := t.FindNodeAt(x, z); nb != Nil && t.store.Node(nb).Width > n.Width {
			n.Scale[e] = 2
		} else {
			n.Scale[e] = 1
		}
	}
	return n.Scale
}
