// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// LookAt sets m to contain a right-handed view matrix
// for a camera at eye looking towards center.
func (m *M4) LookAt(eye, center, up *V3) {
	var f, s, u V3
	f.Sub(center, eye)
	f.Norm(&f)
	s.Cross(&f, up)
	s.Norm(&s)
	u.Cross(&s, &f)
	*m = M4{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}

// Perspective sets m to contain a perspective projection
// with clip-space depth in [-1, 1].
// yfov is given in radians.
func (m *M4) Perspective(yfov, aspect, znear, zfar float32) {
	f := float32(1 / math.Tan(float64(yfov)/2))
	*m = M4{
		{0: f / aspect},
		{1: f},
		{2: (zfar + znear) / (znear - zfar), 3: -1},
		{2: 2 * zfar * znear / (znear - zfar)},
	}
}

// Ortho sets m to contain an orthographic projection
// with clip-space depth in [-1, 1].
func (m *M4) Ortho(left, right, bottom, top, znear, zfar float32) {
	*m = M4{
		{0: 2 / (right - left)},
		{1: 2 / (top - bottom)},
		{2: -2 / (zfar - znear)},
		{
			-(right + left) / (right - left),
			-(top + bottom) / (top - bottom),
			-(zfar + znear) / (zfar - znear),
			1,
		},
	}
}
