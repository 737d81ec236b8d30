// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package terrain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gviegas/ocean/driver"
	"github.com/gviegas/ocean/driver/drivertest"
	"github.com/gviegas/ocean/linear"
)

func newFrame(camera linear.V3) *FrameContext {
	fc := &FrameContext{
		Camera:   camera,
		Time:     1.5,
		WaveSize: 3,
	}
	var center linear.V3
	center.Add(&camera, &linear.V3{0, -1, -1})
	fc.View.LookAt(&camera, &center, &linear.V3{0, 1, 0})
	fc.Proj.Perspective(0.785, 16.0/9.0, 0.1, 2000)
	return fc
}

func newProgram(t *testing.T, gpu *drivertest.GPU) *drivertest.Program {
	prog, err := gpu.NewProgram([]driver.Stage{{Kind: driver.SVertex}})
	require.NoError(t, err)
	return prog.(*drivertest.Program)
}

func TestRenderAll(t *testing.T) {
	gpu, pool := newGPUPool(t, DefaultMaxNodes)
	tr := NewTree(NewStore(DefaultMaxNodes), pool, DefaultCutoff)
	cam := linear.V3{0, 100, 0}
	tr.Build(linear.V3{}, domain, domain, &cam)
	prog := newProgram(t, gpu)
	fc := newFrame(cam)

	r := NewRenderer(gpu, linear.V3{0, -20, 0})
	drawn, skipped := r.RenderAll(tr, pool, prog, fc)
	require.Equal(t, 160, drawn)
	require.Zero(t, skipped)
	require.Len(t, gpu.Draws, 160)

	leaves := tr.Leaves()
	for i, d := range gpu.Draws {
		n := tr.Node(leaves[i])
		require.Same(t, pool.Array(n.Patch), driver.VertexArray(d.Array), "draw %d", i)
		require.Equal(t, PatchVertices, d.PatchVerts)
		require.Equal(t, PatchVertices, d.Count)
		require.False(t, d.Wireframe)
		require.Equal(t, []uint32{0, 1, 2, 3}, d.Array.IB.Indices())
		for e := North; e <= West; e++ {
			require.Equal(t, n.Scale[e], d.Uniforms[UniformScale[e]], "draw %d %s", i, e)
		}
	}

	var m, mv, mvp linear.M4
	m.Translate(0, -20, 0)
	mv.Mul(&fc.View, &m)
	mvp.Mul(&fc.Proj, &mv)
	var nm linear.M3
	nm.Normal(&mv)
	for name, want := range map[string]any{
		UniformM:        m,
		UniformV:        fc.View,
		UniformP:        fc.Proj,
		UniformMV:       mv,
		UniformMVP:      mvp,
		UniformN:        nm,
		UniformEyePos:   cam,
		UniformTime:     float32(1.5),
		UniformWaveSize: uint32(3),
	} {
		have, ok := prog.Value(name)
		require.True(t, ok, name)
		require.Equal(t, want, have, name)
	}
}

func TestRenderAllWireframe(t *testing.T) {
	gpu, pool := newGPUPool(t, DefaultMaxNodes)
	tr := NewTree(NewStore(DefaultMaxNodes), pool, DefaultCutoff)
	cam := linear.V3{400, 0, -300}
	tr.Build(linear.V3{}, domain, domain, &cam)
	fc := newFrame(cam)
	fc.Wireframe = true

	drawn, _ := NewRenderer(gpu, linear.V3{}).RenderAll(tr, pool, newProgram(t, gpu), fc)
	require.Equal(t, 112, drawn)
	for _, d := range gpu.Draws {
		require.True(t, d.Wireframe)
	}
}

func TestRenderAllSkipsMissing(t *testing.T) {
	gpu, pool := newGPUPool(t, 10)
	tr := NewTree(NewStore(DefaultMaxNodes), pool, DefaultCutoff)
	cam := linear.V3{}
	s := tr.Build(linear.V3{}, domain, domain, &cam)
	require.Equal(t, 150, s.Missing)

	drawn, skipped := NewRenderer(gpu, linear.V3{}).RenderAll(tr, pool, newProgram(t, gpu), newFrame(cam))
	require.Equal(t, 10, drawn)
	require.Equal(t, 150, skipped)
	require.Len(t, gpu.Draws, 10)
}

func TestRenderAllEmpty(t *testing.T) {
	gpu, pool := newGPUPool(t, 4)
	tr := NewTree(NewStore(4), pool, DefaultCutoff)
	drawn, skipped := NewRenderer(gpu, linear.V3{}).RenderAll(tr, pool, newProgram(t, gpu), newFrame(linear.V3{}))
	require.Zero(t, drawn)
	require.Zero(t, skipped)
	require.Empty(t, gpu.Draws)
}
