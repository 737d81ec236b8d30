// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package terrain

import (
	"errors"
	"fmt"
	"time"

	"github.com/gviegas/ocean"
	"github.com/gviegas/ocean/driver"
	"github.com/gviegas/ocean/linear"
)

// ErrNotInitialized means that Surface.Init was not
// called or that the surface was shut down.
var ErrNotInitialized = errors.New("terrain: surface not initialized")

// Stats describes the current state of a Surface.
type Stats struct {
	// Incremented by every completed build.
	Generation uint64
	BuildStats
	// Leaves drawn by the last RenderAll.
	Draws int
	// Leaves skipped by the last RenderAll.
	Skipped int
}

// Surface is the sea surface as seen by a render loop.
// Rebuild and RenderAll must be called from the thread
// that owns the graphics context, and a frame's Rebuild
// must return before its RenderAll is called.
type Surface struct {
	cfg   Config
	gpu   driver.GPU
	ib    driver.Buffer
	pool  *GPUPool
	store *Store
	tree  *Tree
	rend  *Renderer

	// Parameters of the last build.
	built  bool
	origin linear.V3
	width  float32
	height float32
	camera linear.V3

	stats Stats
}

// NewSurface creates a new Surface.
// Init must be called before it can be used.
func NewSurface(cfg Config) (*Surface, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Surface{cfg: cfg}, nil
}

// Config returns the surface's configuration.
func (s *Surface) Config() Config { return s.cfg }

// Init creates the shared index buffer and the node
// and patch pools.
func (s *Surface) Init(gpu driver.GPU) error {
	if s.gpu != nil {
		s.Shutdown()
	}
	ib, err := gpu.NewIndexBuffer([]uint32{0, 1, 2, 3})
	if err != nil {
		return fmt.Errorf("terrain: index buffer: %w", err)
	}
	s.gpu = gpu
	s.ib = ib
	s.pool = NewGPUPool(gpu, ib, s.cfg.MaxPatches)
	s.store = NewStore(s.cfg.MaxNodes)
	s.tree = NewTree(s.store, s.pool, s.cfg.Cutoff)
	s.rend = NewRenderer(gpu, s.cfg.ModelOffset)
	s.built = false
	s.stats = Stats{}
	ocean.Logger().Info("terrain initialized",
		"driver", gpu.Driver().Name(),
		"maxNodes", s.cfg.MaxNodes,
		"maxPatches", s.cfg.MaxPatches,
		"cutoff", s.cfg.Cutoff)
	return nil
}

// Shutdown releases every GPU resource created by the
// surface. It has no effect if the surface is not
// initialized.
func (s *Surface) Shutdown() {
	if s.gpu == nil {
		return
	}
	s.tree.Reset()
	s.pool.Shutdown()
	s.ib.Destroy()
	*s = Surface{cfg: s.cfg}
	ocean.Logger().Info("terrain shut down")
}

// Invalidate causes the next call to Rebuild to build
// the tree even if the camera has not moved.
func (s *Surface) Invalidate() { s.built = false }

// Rebuild builds the tree for the domain centered on
// origin with the given extents, as seen from
// fc.Camera.
// It does nothing if neither the domain nor the camera
// changed since the last build. It reports whether a
// build took place.
func (s *Surface) Rebuild(origin linear.V3, width, height float32, fc *FrameContext) (bool, error) {
	if s.gpu == nil {
		return false, ErrNotInitialized
	}
	if s.built && s.camera == fc.Camera && s.origin == origin && s.width == width && s.height == height {
		return false, nil
	}
	start := time.Now()
	bs := s.tree.Build(origin, width, height, &fc.Camera)
	instrumentRebuild(start, bs)

	s.built = true
	s.origin = origin
	s.width = width
	s.height = height
	s.camera = fc.Camera
	s.stats.Generation++
	s.stats.BuildStats = bs
	ocean.Logger().Debug("terrain rebuilt",
		"generation", s.stats.Generation,
		"nodes", bs.Nodes,
		"leaves", bs.Leaves,
		"minWidth", bs.MinWidth,
		"elapsed", time.Since(start))
	return true, nil
}

// RenderAll draws the current tree using prog.
func (s *Surface) RenderAll(prog driver.Program, fc *FrameContext) error {
	if s.gpu == nil {
		return ErrNotInitialized
	}
	drawn, skipped := s.rend.RenderAll(s.tree, s.pool, prog, fc)
	instrumentRender(drawn, skipped)
	s.stats.Draws = drawn
	s.stats.Skipped = skipped
	return nil
}

// Stats returns the surface's statistics.
func (s *Surface) Stats() Stats { return s.stats }

// Tree returns the current tree.
// It is nil if the surface is not initialized.
func (s *Surface) Tree() *Tree { return s.tree }

// Snapshot returns a copy of the current leaves.
func (s *Surface) Snapshot() Snapshot {
	snap := Snapshot{Generation: s.stats.Generation}
	if s.tree != nil {
		snap.Leaves = s.tree.Snapshot()
	}
	return snap
}
