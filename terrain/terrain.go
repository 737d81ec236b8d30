// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package terrain implements the adaptive quadtree that splits
// a flat square domain into tessellated patches.
//
// A Tree is rebuilt from scratch every time the camera moves.
// Patches close to the camera are subdivided until they reach
// the cutoff width, while distant ones stay coarse. Each leaf
// owns a patch (four corner positions uploaded to the GPU) and,
// right before it is drawn, resolves a tessellation scale for
// each of its edges so that neighbors of different sizes meet
// without cracks.
//
// Nodes live in a fixed-capacity Store and patches in a
// fixed-capacity PatchPool. Running out of either is never
// an error: the affected branch stops subdividing (a forced
// leaf) or the leaf is drawn without geometry (a missing leaf,
// which RenderAll skips).
//
// Surface bundles the pieces for use by a render loop.
package terrain

import (
	"errors"

	"github.com/gviegas/ocean/linear"
)

const (
	// DefaultCutoff is the default minimum patch width.
	// Patches narrower than this are never subdivided.
	DefaultCutoff = 25

	// DefaultMaxNodes is the default capacity of the
	// node store.
	DefaultMaxNodes = 500

	// PatchVertices is the number of control points
	// of a patch.
	PatchVertices = 4

	// A patch is subdivided only if the camera is within
	// this many half-diagonals of its origin.
	distFactor = 2.5

	// Distance past the edge midpoint at which neighbors
	// are probed.
	probeOffset = 1
)

// ErrCapacityExceeded means that the node store is full.
var ErrCapacityExceeded = errors.New("terrain: node capacity exceeded")

// ErrPoolExhausted means that no patch could be created.
var ErrPoolExhausted = errors.New("terrain: patch pool exhausted")

// ErrConfig means that a Config has invalid values.
var ErrConfig = errors.New("terrain: invalid configuration")

// Config is used to configure a Surface.
type Config struct {
	// Minimum patch width.
	//
	// Default is 25.
	Cutoff float32

	// The maximum number of nodes in a tree,
	// including internal ones.
	//
	// Default is 500.
	MaxNodes int

	// The maximum number of patches.
	// Since only leaves own patches, values greater
	// than MaxNodes are never used in full.
	//
	// Default is MaxNodes.
	MaxPatches int

	// Translation applied to the surface when drawn.
	//
	// Default is (0, -20, 0).
	ModelOffset linear.V3
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Cutoff:      DefaultCutoff,
		MaxNodes:    DefaultMaxNodes,
		MaxPatches:  DefaultMaxNodes,
		ModelOffset: linear.V3{0, -20, 0},
	}
}

func (c *Config) validate() error {
	switch {
	case !(c.Cutoff > 0):
		return errors.Join(ErrConfig, errors.New("terrain: cutoff must be positive"))
	case c.MaxNodes < 1:
		return errors.Join(ErrConfig, errors.New("terrain: max nodes must be at least 1"))
	case c.MaxPatches < 1:
		return errors.Join(ErrConfig, errors.New("terrain: max patches must be at least 1"))
	}
	return nil
}
