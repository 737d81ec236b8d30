// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"math"

	"github.com/gviegas/ocean/linear"
)

const (
	fovY      = 45 * math.Pi / 180
	zNear     = 0.1
	zFar      = 2000
	orthoSize = 5
	maxPitch  = math.Pi/2 - 0.01
)

// camera is a fly camera.
// Yaw 0 and pitch 0 look towards +z.
type camera struct {
	pos        linear.V3
	yaw, pitch float64
	// World units per second.
	speed float32
	// Radians per pixel per second.
	mouseSpeed  float64
	perspective bool
}

func newCamera(speed float32) *camera {
	return &camera{
		speed:       speed,
		mouseSpeed:  0.075,
		perspective: true,
	}
}

// axes returns the camera's forward, right and up vectors.
func (c *camera) axes() (fwd, right, up linear.V3) {
	sy, cy := math.Sincos(c.yaw)
	sp, cp := math.Sincos(c.pitch)
	fwd = linear.V3{float32(cp * sy), float32(sp), float32(cp * cy)}
	sr, cr := math.Sincos(c.yaw - math.Pi/2)
	right = linear.V3{float32(sr), 0, float32(cr)}
	up.Cross(&right, &fwd)
	return
}

// look rotates the camera by the cursor offset (dx, dy)
// from the center of the window.
func (c *camera) look(dx, dy, dt float64) {
	c.yaw += c.mouseSpeed * dt * dx
	c.pitch = max(-maxPitch, min(maxPitch, c.pitch+c.mouseSpeed*dt*dy))
}

// move moves the camera forward and to the right by the
// given factors, scaled by speed and elapsed time.
func (c *camera) move(forward, strafe float32, dt float64) {
	fwd, right, _ := c.axes()
	s := c.speed * float32(dt)
	var d linear.V3
	d.Scale(forward*s, &fwd)
	c.pos.Add(&c.pos, &d)
	d.Scale(strafe*s, &right)
	c.pos.Add(&c.pos, &d)
}

// view sets m to contain the view matrix.
func (c *camera) view(m *linear.M4) {
	fwd, _, up := c.axes()
	var center linear.V3
	center.Add(&c.pos, &fwd)
	m.LookAt(&c.pos, &center, &up)
}

// proj sets m to contain the projection matrix.
func (c *camera) proj(m *linear.M4, aspect float32) {
	if c.perspective {
		m.Perspective(fovY, aspect, zNear, zFar)
	} else {
		m.Ortho(-orthoSize*aspect, orthoSize*aspect, -orthoSize, orthoSize, 0.001, 3000)
	}
}
