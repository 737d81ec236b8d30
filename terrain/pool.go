// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package terrain

import (
	"fmt"

	"github.com/gviegas/ocean/driver"
	"github.com/gviegas/ocean/internal/bitm"
	"github.com/gviegas/ocean/linear"
)

// Handle identifies a patch in a PatchPool.
type Handle int

// NoHandle represents an invalid Handle.
const NoHandle Handle = -1

// PatchPool is the interface that manages the geometry
// of leaf patches.
type PatchPool interface {
	// Create creates the geometry of a patch centered
	// on origin, with the given extents along x and z.
	// It fails with ErrPoolExhausted if no more patches
	// can be created.
	Create(origin *linear.V3, width, height float32) (Handle, error)

	// Array returns the vertex array of a patch.
	Array(h Handle) driver.VertexArray

	// Clear releases every patch.
	Clear()

	// Shutdown releases the pool permanently.
	Shutdown()

	// Len returns the number of live patches.
	Len() int
}

// Corners returns the four corner positions of a patch,
// in the order (+x,+z), (+x,-z), (-x,-z), (-x,+z).
func Corners(origin *linear.V3, width, height float32) [12]float32 {
	x, y, z := origin[0], origin[1], origin[2]
	w, h := width/2, height/2
	return [12]float32{
		x + w, y, z + h,
		x + w, y, z - h,
		x - w, y, z - h,
		x - w, y, z + h,
	}
}

type patch struct {
	vb driver.Buffer
	va driver.VertexArray
}

// GPUPool is a PatchPool that stores patches in GPU
// memory. Each patch has its own vertex buffer and
// vertex array, the latter sourcing indices from a
// single index buffer shared by every patch.
type GPUPool struct {
	gpu     driver.GPU
	ib      driver.Buffer
	patches []patch
	// Bits at or beyond len(patches) are always set.
	used bitm.Bitm[uint32]
}

// NewGPUPool creates a new GPUPool that holds at most
// n patches.
// ib is the shared index buffer; the pool does not own it.
func NewGPUPool(gpu driver.GPU, ib driver.Buffer, n int) *GPUPool {
	p := &GPUPool{
		gpu:     gpu,
		ib:      ib,
		patches: make([]patch, n),
	}
	p.used.Grow((n + 31) / 32)
	p.reserve()
	return p
}

// reserve sets the bits that do not map to a patch.
func (p *GPUPool) reserve() {
	for i := len(p.patches); i < p.used.Cap(); i++ {
		p.used.Set(i)
	}
}

// Create implements PatchPool.
func (p *GPUPool) Create(origin *linear.V3, width, height float32) (Handle, error) {
	idx, ok := p.used.Search()
	if !ok {
		return NoHandle, ErrPoolExhausted
	}
	p.used.Set(idx)
	pos := Corners(origin, width, height)
	vb, err := p.gpu.NewVertexBuffer(pos[:])
	if err != nil {
		p.used.Unset(idx)
		return NoHandle, fmt.Errorf("%w: %w", ErrPoolExhausted, err)
	}
	va, err := p.gpu.NewVertexArray(vb, p.ib)
	if err != nil {
		vb.Destroy()
		p.used.Unset(idx)
		return NoHandle, fmt.Errorf("%w: %w", ErrPoolExhausted, err)
	}
	p.patches[idx] = patch{vb, va}
	return Handle(idx), nil
}

// Array implements PatchPool.
func (p *GPUPool) Array(h Handle) driver.VertexArray { return p.patches[h].va }

// Clear implements PatchPool.
func (p *GPUPool) Clear() {
	for i := range p.patches {
		if !p.used.IsSet(i) {
			continue
		}
		p.patches[i].va.Destroy()
		p.patches[i].vb.Destroy()
		p.patches[i] = patch{}
	}
	p.used.Clear()
	p.reserve()
}

// Shutdown implements PatchPool.
// Create fails with ErrPoolExhausted after Shutdown.
func (p *GPUPool) Shutdown() {
	p.Clear()
	p.patches = nil
	p.used = bitm.Bitm[uint32]{}
	p.gpu = nil
	p.ib = nil
}

// Len implements PatchPool.
func (p *GPUPool) Len() int { return len(p.patches) - p.used.Rem() }

// Cap returns the maximum number of patches.
func (p *GPUPool) Cap() int { return len(p.patches) }
