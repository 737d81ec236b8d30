// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package gl implements driver interfaces using OpenGL 4.1
// (core profile).
//
// The driver registers itself as "opengl". Open must be
// called with a 4.1 core context current on the calling
// thread, and every GPU method must be called from that
// same thread.
package gl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gviegas/ocean"
	"github.com/gviegas/ocean/driver"
)

const driverName = "opengl"

func init() { driver.Register(&Driver{}) }

// Driver implements driver.Driver.
type Driver struct {
	gpu *GPU
}

// Open implements driver.Driver.
func (d *Driver) Open() (driver.GPU, error) {
	if d.gpu != nil {
		return d.gpu, nil
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", driver.ErrNotInstalled, err)
	}
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	if major < 4 {
		// Tessellation stages need 4.0.
		return nil, fmt.Errorf("%w: OpenGL %d.%d", driver.ErrNoDevice, major, minor)
	}
	var patch, tess int32
	gl.GetIntegerv(gl.MAX_PATCH_VERTICES, &patch)
	gl.GetIntegerv(gl.MAX_TESS_GEN_LEVEL, &tess)
	d.gpu = &GPU{
		drv: d,
		limits: driver.Limits{
			MaxPatchVertices: int(patch),
			MaxTessLevel:     int(tess),
		},
	}
	ocean.Logger().Info("opengl context",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"maxPatchVertices", patch,
		"maxTessLevel", tess)
	return d.gpu, nil
}

// Name implements driver.Driver.
func (d *Driver) Name() string { return driverName }

// Close implements driver.Driver.
// The context itself is owned by the caller.
func (d *Driver) Close() { d.gpu = nil }

// GPU implements driver.GPU.
type GPU struct {
	drv    *Driver
	limits driver.Limits
}

// Driver implements driver.GPU.
func (g *GPU) Driver() driver.Driver { return g.drv }

// Limits implements driver.GPU.
func (g *GPU) Limits() driver.Limits { return g.limits }

// DrawPatches implements driver.GPU.
func (g *GPU) DrawPatches(va driver.VertexArray, patchVerts, count int, wireframe bool) {
	gl.BindVertexArray(va.(*vertexArray).id)
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.PatchParameteri(gl.PATCH_VERTICES, int32(patchVerts))
	gl.DrawElements(gl.PATCHES, int32(count), gl.UNSIGNED_INT, gl.PtrOffset(0))
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	gl.BindVertexArray(0)
}

// checkError drains the GL error queue.
// GL_OUT_OF_MEMORY is reported as driver.ErrNoDeviceMemory;
// any other error as driver.ErrFatal.
func checkError(op string) error {
	var err error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if err != nil {
			continue
		}
		switch code {
		case gl.OUT_OF_MEMORY:
			err = fmt.Errorf("%w: %s", driver.ErrNoDeviceMemory, op)
		default:
			err = fmt.Errorf("%w: %s: GL error 0x%04x", driver.ErrFatal, op, code)
		}
	}
	return err
}
