// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package terrain

import (
	"math"

	"github.com/gviegas/ocean"
	"github.com/gviegas/ocean/linear"
)

// BuildStats describes the outcome of a Tree.Build.
type BuildStats struct {
	// Number of nodes allocated, including the root.
	Nodes int
	// Number of leaves, including forced and missing
	// ones.
	Leaves int
	// Number of nodes that should have been subdivided
	// but became leaves because the store was full.
	Forced int
	// Number of leaves that have no patch because the
	// pool could not create one.
	Missing int
	// Width of the narrowest leaf.
	MinWidth float32
}

// Tree is a quadtree of patches.
type Tree struct {
	cutoff float32
	store  *Store
	pool   PatchPool
	root   NodeID
	stats  BuildStats
}

// NewTree creates a new Tree that allocates nodes from
// store and patches from pool.
// It stops subdividing patches narrower than cutoff.
func NewTree(store *Store, pool PatchPool, cutoff float32) *Tree {
	return &Tree{
		cutoff: cutoff,
		store:  store,
		pool:   pool,
		root:   Nil,
	}
}

// Build discards the current tree and builds a new one
// covering the domain centered on origin with the given
// extents, subdivided according to the camera position.
// Running out of nodes or patches degrades the result
// but is not an error; see BuildStats.
func (t *Tree) Build(origin linear.V3, width, height float32, camera *linear.V3) BuildStats {
	t.store.Clear()
	t.pool.Clear()
	t.stats = BuildStats{MinWidth: width}

	root, err := t.store.Alloc()
	if err != nil {
		// Only possible with a zero-capacity store.
		t.root = Nil
		return t.stats
	}
	t.root = root
	t.store.Node(root).init(Nil, Root, origin, width, height)
	if t.needsSubdivision(root, camera) {
		t.divide(root, camera)
	} else {
		t.finalize(root)
	}
	t.stats.Nodes = t.store.Len()

	if t.stats.Forced > 0 || t.stats.Missing > 0 {
		ocean.Logger().Warn("terrain degraded",
			"forced", t.stats.Forced,
			"missing", t.stats.Missing,
			"nodes", t.stats.Nodes)
	}
	return t.stats
}

// needsSubdivision reports whether node id is both close
// enough to the camera and wide enough to be subdivided.
func (t *Tree) needsSubdivision(id NodeID, camera *linear.V3) bool {
	n := t.store.Node(id)
	if n.Width < t.cutoff {
		return false
	}
	d := math.Hypot(float64(camera[0]-n.Origin[0]), float64(camera[2]-n.Origin[2]))
	diag := math.Hypot(0.5*float64(n.Width), 0.5*float64(n.Height))
	return d <= distFactor*diag
}

// divide subdivides node id and then, recursively, each
// of its children.
// If the four children cannot be allocated, node id is
// turned into a leaf instead.
func (t *Tree) divide(id NodeID, camera *linear.V3) {
	mark := t.store.Len()
	var kids [4]NodeID
	for i := range kids {
		c, err := t.store.Alloc()
		if err != nil {
			t.store.Truncate(mark)
			t.stats.Forced++
			t.finalize(id)
			return
		}
		kids[i] = c
	}

	n := t.store.Node(id)
	w, h := n.Width/2, n.Height/2
	for i, c := range kids {
		q := Quadrant(i + 1)
		o := n.Origin
		o[0] += quadrantOffsets[i][0] * w / 2
		o[2] += quadrantOffsets[i][1] * h / 2
		cn := t.store.Node(c)
		cn.init(id, q, o, w, h)
		for e, s := range siblingOf[i] {
			if s != Root {
				cn.Neighbors[e] = kids[s-1]
			}
		}
	}
	n.Children = kids

	for _, c := range kids {
		if t.needsSubdivision(c, camera) {
			t.divide(c, camera)
		} else {
			t.finalize(c)
		}
	}
}

// finalize makes node id a leaf by creating its patch.
func (t *Tree) finalize(id NodeID) {
	n := t.store.Node(id)
	t.stats.Leaves++
	t.stats.MinWidth = min(t.stats.MinWidth, n.Width)
	h, err := t.pool.Create(&n.Origin, n.Width, n.Height)
	if err != nil {
		t.stats.Missing++
		n.Patch = NoHandle
		return
	}
	n.Patch = h
}

// Root returns the root node, or Nil if the tree has
// not been built.
func (t *Tree) Root() NodeID { return t.root }

// Node returns the node identified by id.
func (t *Tree) Node(id NodeID) *Node { return t.store.Node(id) }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if t.root == Nil {
		return 0
	}
	return t.store.Len()
}

// Stats returns the statistics of the last build.
func (t *Tree) Stats() BuildStats { return t.stats }

// Walk calls f for each node of the tree in depth-first
// order, parents before children and children in
// quadrant order.
// If f returns false, the node's children are skipped.
func (t *Tree) Walk(f func(id NodeID, n *Node) bool) {
	if t.root != Nil {
		t.walk(t.root, f)
	}
}

func (t *Tree) walk(id NodeID, f func(NodeID, *Node) bool) {
	n := t.store.Node(id)
	if !f(id, n) || n.Leaf() {
		return
	}
	for _, c := range n.Children {
		t.walk(c, f)
	}
}

// Leaves returns the leaves of the tree in the order
// they are drawn.
func (t *Tree) Leaves() []NodeID {
	var ids []NodeID
	t.Walk(func(id NodeID, n *Node) bool {
		if n.Leaf() {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// Reset releases every node and patch.
func (t *Tree) Reset() {
	t.store.Clear()
	t.pool.Clear()
	t.root = Nil
	t.stats = BuildStats{}
}
