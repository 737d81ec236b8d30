// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package terrain

import (
	"io"

	"github.com/segmentio/encoding/json"
)

// Leaf describes a leaf of a Tree.
type Leaf struct {
	Origin [3]float32 `json:"origin"`
	Width  float32    `json:"width"`
	Height float32    `json:"height"`
	Patch  Handle     `json:"patch"`
	// Indexed by Edge.
	Scale [4]float32 `json:"scale"`
}

// Snapshot is a copy of the leaves of a Tree.
type Snapshot struct {
	Generation uint64 `json:"generation"`
	Leaves     []Leaf `json:"leaves"`
}

// Snapshot returns the leaves of t in drawing order,
// with up to date edge scales.
func (t *Tree) Snapshot() []Leaf {
	ids := t.Leaves()
	leaves := make([]Leaf, 0, len(ids))
	for _, id := range ids {
		scale := t.TessScale(id)
		n := t.Node(id)
		leaves = append(leaves, Leaf{
			Origin: n.Origin,
			Width:  n.Width,
			Height: n.Height,
			Patch:  n.Patch,
			Scale:  scale,
		})
	}
	return leaves
}

// WriteJSON writes s to w as indented JSON.
func (s *Snapshot) WriteJSON(w io.Writer) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
