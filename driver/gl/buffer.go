// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gviegas/ocean/driver"
)

// buffer implements driver.Buffer.
type buffer struct {
	id    uint32
	index bool
	n     int
}

// NewVertexBuffer implements driver.GPU.
func (g *GPU) NewVertexBuffer(data []float32) (driver.Buffer, error) {
	b := &buffer{n: len(data)}
	gl.GenBuffers(1, &b.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if err := checkError("vertex buffer"); err != nil {
		b.Destroy()
		return nil, err
	}
	return b, nil
}

// NewIndexBuffer implements driver.GPU.
func (g *GPU) NewIndexBuffer(data []uint32) (driver.Buffer, error) {
	b := &buffer{index: true, n: len(data)}
	gl.GenBuffers(1, &b.id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	if err := checkError("index buffer"); err != nil {
		b.Destroy()
		return nil, err
	}
	return b, nil
}

// Destroy implements driver.Destroyer.
func (b *buffer) Destroy() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

// Index implements driver.Buffer.
func (b *buffer) Index() bool { return b.index }

// Len implements driver.Buffer.
func (b *buffer) Len() int { return b.n }

// vertexArray implements driver.VertexArray.
type vertexArray struct {
	id uint32
}

// NewVertexArray implements driver.GPU.
func (g *GPU) NewVertexArray(vb, ib driver.Buffer) (driver.VertexArray, error) {
	a := new(vertexArray)
	gl.GenVertexArrays(1, &a.id)
	gl.BindVertexArray(a.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.(*buffer).id)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	// The element binding is part of the VAO state.
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.(*buffer).id)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if err := checkError("vertex array"); err != nil {
		a.Destroy()
		return nil, err
	}
	return a, nil
}

// Destroy implements driver.Destroyer.
func (a *vertexArray) Destroy() {
	if a.id != 0 {
		gl.DeleteVertexArrays(1, &a.id)
		a.id = 0
	}
}
