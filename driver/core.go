// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"github.com/gviegas/ocean/linear"
)

// GPU is the main interface to an underlying driver
// implementation.
// A GPU is obtained from a call to Driver.Open.
// None of its methods are safe for parallel execution;
// they must be called from the thread that owns the
// graphics context.
type GPU interface {
	// Driver returns the Driver that owns the GPU.
	Driver() Driver

	// NewVertexBuffer creates a new static vertex buffer
	// containing data.
	NewVertexBuffer(data []float32) (Buffer, error)

	// NewIndexBuffer creates a new static index buffer
	// containing data.
	NewIndexBuffer(data []uint32) (Buffer, error)

	// NewVertexArray creates a new vertex array that
	// sources 3-component positions from vb (attribute 0)
	// and indices from ib.
	// The vertex array does not own vb nor ib.
	NewVertexArray(vb, ib Buffer) (VertexArray, error)

	// NewProgram creates a new program from the given
	// shader stages.
	NewProgram(stages []Stage) (Program, error)

	// DrawPatches draws count indices of va as patches
	// of patchVerts control points each, using the
	// program most recently passed to Program.Use.
	// If wireframe is set, polygons are rasterized as
	// lines for the duration of the call.
	DrawPatches(va VertexArray, patchVerts, count int, wireframe bool)

	// Limits returns the implementation limits.
	// They are immutable for the lifetime of the GPU.
	Limits() Limits
}

// Destroyer is the interface that wraps the Destroy method.
// Types that implement this interface may allocate external
// memory that is not managed by GC, so Destroy must be
// called explicitly to ensure such memory is deallocated.
type Destroyer interface {
	Destroy()
}

// Buffer is the interface that defines a static GPU buffer.
type Buffer interface {
	Destroyer

	// Index reports whether the buffer holds index data.
	Index() bool

	// Len returns the number of elements in the buffer
	// (float32 components or uint32 indices).
	Len() int
}

// VertexArray is the interface that defines a vertex array
// object binding a vertex buffer and an index buffer.
type VertexArray interface {
	Destroyer
}

// StageKind is the type of a shader stage.
type StageKind int

// Shader stages.
const (
	SVertex StageKind = iota
	STessControl
	STessEval
	SFragment
)

// String implements fmt.Stringer.
func (k StageKind) String() string {
	switch k {
	case SVertex:
		return "vertex"
	case STessControl:
		return "tess control"
	case STessEval:
		return "tess eval"
	case SFragment:
		return "fragment"
	}
	return "unknown"
}

// Stage is a shader stage given as source code.
type Stage struct {
	Kind   StageKind
	Source string
}

// Uniforms is the interface used to set named uniform
// values of a program.
// Setting a uniform whose name does not resolve to an
// active uniform is silently ignored.
type Uniforms interface {
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
	SetUint(name string, v uint32)
	SetV3(name string, v *linear.V3)
	SetV4(name string, v *linear.V4)
	SetM3(name string, m *linear.M3)
	SetM4(name string, m *linear.M4)
}

// Program is the interface that defines a linked
// shader program.
type Program interface {
	Destroyer
	Uniforms

	// Use makes the program current.
	// Uniforms are set on the program regardless of
	// whether it is current.
	Use()
}

// Limits describes implementation limits.
type Limits struct {
	// Maximum number of control points per patch.
	MaxPatchVertices int
	// Maximum tessellation level.
	MaxTessLevel int
}
