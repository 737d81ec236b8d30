// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package drivertest provides an in-memory driver.GPU
// that records what is created and drawn through it.
// It needs no graphics context and is meant for tests.
package drivertest

import (
	"maps"

	"github.com/gviegas/ocean/driver"
	"github.com/gviegas/ocean/linear"
)

// Name is the name of the driver.
const Name = "drivertest"

// Driver implements driver.Driver.
type Driver struct {
	gpu *GPU
	// OpenErr, if not nil, is returned by Open.
	OpenErr error
}

// Open implements driver.Driver.
func (d *Driver) Open() (driver.GPU, error) {
	if d.OpenErr != nil {
		return nil, d.OpenErr
	}
	if d.gpu == nil {
		d.gpu = New()
		d.gpu.drv = d
	}
	return d.gpu, nil
}

// Name implements driver.Driver.
func (d *Driver) Name() string { return Name }

// Close implements driver.Driver.
func (d *Driver) Close() { d.gpu = nil }

// GPU implements driver.GPU.
type GPU struct {
	drv *Driver

	// MaxArrays limits the number of live vertex arrays.
	// NewVertexArray fails with driver.ErrNoDeviceMemory
	// when the limit is reached. Zero means no limit.
	MaxArrays int

	// Draws lists every DrawPatches call, in order.
	Draws []Draw

	buffers int
	arrays  int
	created int
	current *Program
}

// New creates a new GPU that is not owned by a Driver.
func New() *GPU { return &GPU{} }

// Draw records a call to GPU.DrawPatches.
type Draw struct {
	Array      *VertexArray
	PatchVerts int
	Count      int
	Wireframe  bool
	// Uniforms is a copy of the current program's
	// uniform values at the time of the call.
	Uniforms map[string]any
}

// Driver implements driver.GPU.
func (g *GPU) Driver() driver.Driver {
	if g.drv == nil {
		return &Driver{gpu: g}
	}
	return g.drv
}

// NewVertexBuffer implements driver.GPU.
func (g *GPU) NewVertexBuffer(data []float32) (driver.Buffer, error) {
	g.buffers++
	return &Buffer{gpu: g, f: append([]float32(nil), data...)}, nil
}

// NewIndexBuffer implements driver.GPU.
func (g *GPU) NewIndexBuffer(data []uint32) (driver.Buffer, error) {
	g.buffers++
	return &Buffer{gpu: g, index: true, u: append([]uint32(nil), data...)}, nil
}

// NewVertexArray implements driver.GPU.
func (g *GPU) NewVertexArray(vb, ib driver.Buffer) (driver.VertexArray, error) {
	if g.MaxArrays > 0 && g.arrays >= g.MaxArrays {
		return nil, driver.ErrNoDeviceMemory
	}
	g.arrays++
	g.created++
	return &VertexArray{gpu: g, VB: vb.(*Buffer), IB: ib.(*Buffer)}, nil
}

// NewProgram implements driver.GPU.
func (g *GPU) NewProgram(stages []driver.Stage) (driver.Program, error) {
	return &Program{
		gpu:    g,
		Stages: append([]driver.Stage(nil), stages...),
		values: make(map[string]any),
	}, nil
}

// DrawPatches implements driver.GPU.
func (g *GPU) DrawPatches(va driver.VertexArray, patchVerts, count int, wireframe bool) {
	d := Draw{
		Array:      va.(*VertexArray),
		PatchVerts: patchVerts,
		Count:      count,
		Wireframe:  wireframe,
	}
	if g.current != nil {
		d.Uniforms = maps.Clone(g.current.values)
	}
	g.Draws = append(g.Draws, d)
}

// Limits implements driver.GPU.
func (g *GPU) Limits() driver.Limits {
	return driver.Limits{MaxPatchVertices: 32, MaxTessLevel: 64}
}

// LiveBuffers returns the number of buffers not yet destroyed.
func (g *GPU) LiveBuffers() int { return g.buffers }

// LiveArrays returns the number of vertex arrays not yet destroyed.
func (g *GPU) LiveArrays() int { return g.arrays }

// CreatedArrays returns the number of vertex arrays ever created.
func (g *GPU) CreatedArrays() int { return g.created }

// Buffer implements driver.Buffer.
type Buffer struct {
	gpu       *GPU
	index     bool
	f         []float32
	u         []uint32
	destroyed bool
}

// Destroy implements driver.Destroyer.
func (b *Buffer) Destroy() {
	if !b.destroyed {
		b.destroyed = true
		b.gpu.buffers--
	}
}

// Index implements driver.Buffer.
func (b *Buffer) Index() bool { return b.index }

// Len implements driver.Buffer.
func (b *Buffer) Len() int {
	if b.index {
		return len(b.u)
	}
	return len(b.f)
}

// Floats returns the contents of a vertex buffer.
func (b *Buffer) Floats() []float32 { return b.f }

// Indices returns the contents of an index buffer.
func (b *Buffer) Indices() []uint32 { return b.u }

// Destroyed reports whether Destroy was called.
func (b *Buffer) Destroyed() bool { return b.destroyed }

// VertexArray implements driver.VertexArray.
type VertexArray struct {
	gpu       *GPU
	VB, IB    *Buffer
	destroyed bool
}

// Destroy implements driver.Destroyer.
func (a *VertexArray) Destroy() {
	if !a.destroyed {
		a.destroyed = true
		a.gpu.arrays--
	}
}

// Destroyed reports whether Destroy was called.
func (a *VertexArray) Destroyed() bool { return a.destroyed }

// Program implements driver.Program.
type Program struct {
	gpu       *GPU
	Stages    []driver.Stage
	values    map[string]any
	destroyed bool
}

// Use implements driver.Program.
func (p *Program) Use() { p.gpu.current = p }

// Destroy implements driver.Destroyer.
func (p *Program) Destroy() {
	p.destroyed = true
	if p.gpu.current == p {
		p.gpu.current = nil
	}
}

// Value returns the last value set for the named uniform.
func (p *Program) Value(name string) (any, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Values returns a copy of every uniform value set so far.
func (p *Program) Values() map[string]any { return maps.Clone(p.values) }

// SetFloat implements driver.Uniforms.
func (p *Program) SetFloat(name string, v float32) { p.values[name] = v }

// SetInt implements driver.Uniforms.
func (p *Program) SetInt(name string, v int32) { p.values[name] = v }

// SetUint implements driver.Uniforms.
func (p *Program) SetUint(name string, v uint32) { p.values[name] = v }

// SetV3 implements driver.Uniforms.
func (p *Program) SetV3(name string, v *linear.V3) { p.values[name] = *v }

// SetV4 implements driver.Uniforms.
func (p *Program) SetV4(name string, v *linear.V4) { p.values[name] = *v }

// SetM3 implements driver.Uniforms.
func (p *Program) SetM3(name string, m *linear.M3) { p.values[name] = *m }

// SetM4 implements driver.Uniforms.
func (p *Program) SetM4(name string, m *linear.M4) { p.values[name] = *m }
