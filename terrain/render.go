// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package terrain

import (
	"github.com/gviegas/ocean/driver"
	"github.com/gviegas/ocean/linear"
)

// Names of the uniforms set by Renderer.
const (
	UniformM        = "M"
	UniformV        = "V"
	UniformP        = "P"
	UniformMV       = "MV"
	UniformMVP      = "MVP"
	UniformN        = "N"
	UniformEyePos   = "eyePos"
	UniformTime     = "Time"
	UniformWaveSize = "waveSize"
)

// Names of the edge scale uniforms, indexed by Edge.
var UniformScale = [4]string{
	North: "tscale_posz",
	South: "tscale_negz",
	East:  "tscale_posx",
	West:  "tscale_negx",
}

// FrameContext holds the per-frame state shared by
// rebuilding and drawing.
// It is owned by the caller and only read during
// Surface.Rebuild and Surface.RenderAll.
type FrameContext struct {
	// Camera position, in world space.
	Camera linear.V3
	View   linear.M4
	Proj   linear.M4
	// Elapsed time, in seconds.
	Time     float32
	WaveSize uint32
	// Draw patches as lines.
	Wireframe bool
}

// Renderer draws the leaves of a Tree.
type Renderer struct {
	gpu   driver.GPU
	model linear.M4
}

// NewRenderer creates a new Renderer that draws through
// gpu, translating every patch by offset.
func NewRenderer(gpu driver.GPU, offset linear.V3) *Renderer {
	r := &Renderer{gpu: gpu}
	r.model.Translate(offset[0], offset[1], offset[2])
	return r
}

// setFrame sets the uniforms that are the same for
// every leaf.
func (r *Renderer) setFrame(u driver.Uniforms, fc *FrameContext) {
	var mv, mvp linear.M4
	mv.Mul(&fc.View, &r.model)
	mvp.Mul(&fc.Proj, &mv)
	var n linear.M3
	n.Normal(&mv)

	u.SetFloat(UniformTime, fc.Time)
	u.SetM4(UniformV, &fc.View)
	u.SetM4(UniformM, &r.model)
	u.SetM4(UniformP, &fc.Proj)
	u.SetM4(UniformMV, &mv)
	u.SetM4(UniformMVP, &mvp)
	u.SetM3(UniformN, &n)
	u.SetUint(UniformWaveSize, fc.WaveSize)
	u.SetV3(UniformEyePos, &fc.Camera)
}

// RenderAll draws every leaf of t that has a patch,
// in depth-first order.
// Leaves without a patch are skipped.
// It returns the number of leaves drawn and skipped.
func (r *Renderer) RenderAll(t *Tree, pool PatchPool, prog driver.Program, fc *FrameContext) (drawn, skipped int) {
	if t.Root() == Nil {
		return
	}
	prog.Use()
	r.setFrame(prog, fc)
	t.Walk(func(id NodeID, n *Node) bool {
		if !n.Leaf() {
			return true
		}
		if n.Patch == NoHandle {
			skipped++
			return false
		}
		scale := t.TessScale(id)
		for e := range scale {
			prog.SetFloat(UniformScale[e], scale[e])
		}
		r.gpu.DrawPatches(pool.Array(n.Patch), PatchVertices, PatchVertices, fc.Wireframe)
		drawn++
		return false
	})
	return
}
