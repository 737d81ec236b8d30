// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package terrain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gviegas/ocean/driver"
	"github.com/gviegas/ocean/driver/drivertest"
	"github.com/gviegas/ocean/linear"
)

// countPool is a PatchPool that only counts patches.
type countPool struct {
	max     int
	n       int
	created int
	clears  int
}

func (p *countPool) Create(*linear.V3, float32, float32) (Handle, error) {
	if p.max > 0 && p.n >= p.max {
		return NoHandle, ErrPoolExhausted
	}
	p.n++
	p.created++
	return Handle(p.n - 1), nil
}

func (p *countPool) Array(Handle) driver.VertexArray { return nil }
func (p *countPool) Clear()                          { p.n = 0; p.clears++ }
func (p *countPool) Shutdown()                       { p.n = 0 }
func (p *countPool) Len() int                        { return p.n }

func newGPUPool(t *testing.T, n int) (*drivertest.GPU, *GPUPool) {
	gpu := drivertest.New()
	ib, err := gpu.NewIndexBuffer([]uint32{0, 1, 2, 3})
	require.NoError(t, err)
	return gpu, NewGPUPool(gpu, ib, n)
}

func TestCorners(t *testing.T) {
	have := Corners(&linear.V3{10, -2, 20}, 4, 6)
	want := [12]float32{
		12, -2, 23,
		12, -2, 17,
		8, -2, 17,
		8, -2, 23,
	}
	require.Equal(t, want, have)
}

func TestGPUPool(t *testing.T) {
	gpu, p := newGPUPool(t, 40)
	require.Equal(t, 40, p.Cap())
	require.Equal(t, 0, p.Len())

	for i := range 40 {
		h, err := p.Create(&linear.V3{float32(i), 0, 0}, 1, 1)
		require.NoError(t, err)
		require.Equal(t, Handle(i), h)
	}
	require.Equal(t, 40, p.Len())
	_, err := p.Create(&linear.V3{}, 1, 1)
	require.ErrorIs(t, err, ErrPoolExhausted)
	require.Equal(t, 40, gpu.LiveArrays())

	va := p.Array(7).(*drivertest.VertexArray)
	require.Equal(t, []uint32{0, 1, 2, 3}, va.IB.Indices())
	pos := Corners(&linear.V3{7, 0, 0}, 1, 1)
	require.Equal(t, pos[:], va.VB.Floats())

	p.Clear()
	require.Equal(t, 0, p.Len())
	require.Equal(t, 0, gpu.LiveArrays())
	require.Equal(t, 1, gpu.LiveBuffers(), "only the shared index buffer must remain")
	require.True(t, va.Destroyed())

	h, err := p.Create(&linear.V3{}, 1, 1)
	require.NoError(t, err)
	require.Equal(t, Handle(0), h)

	p.Shutdown()
	require.Equal(t, 0, gpu.LiveArrays())
	_, err = p.Create(&linear.V3{}, 1, 1)
	require.ErrorIs(t, err, ErrPoolExhausted)
}

func TestGPUPoolDeviceMemory(t *testing.T) {
	gpu, p := newGPUPool(t, 8)
	gpu.MaxArrays = 3
	for range 3 {
		_, err := p.Create(&linear.V3{}, 1, 1)
		require.NoError(t, err)
	}
	_, err := p.Create(&linear.V3{}, 1, 1)
	require.ErrorIs(t, err, ErrPoolExhausted)
	require.ErrorIs(t, err, driver.ErrNoDeviceMemory)
	require.Equal(t, 3, p.Len())
	require.Equal(t, 1+3, gpu.LiveBuffers(), "vertex buffer must be destroyed on failure")

	// The slot taken by the failed call is free again.
	gpu.MaxArrays = 4
	h, err := p.Create(&linear.V3{}, 1, 1)
	require.NoError(t, err)
	require.Equal(t, Handle(3), h)
	require.Equal(t, 4, p.Len())
	gpu.MaxArrays = 0
	for range 4 {
		_, err = p.Create(&linear.V3{}, 1, 1)
		require.NoError(t, err)
	}
	require.Equal(t, 8, p.Len())
	_, err = p.Create(&linear.V3{}, 1, 1)
	require.ErrorIs(t, err, ErrPoolExhausted)
	require.NotErrorIs(t, err, driver.ErrNoDeviceMemory)
}
