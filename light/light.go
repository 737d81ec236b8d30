// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package light implements the light sources and the
// material that shade the sea surface.
package light

import (
	"strconv"

	"github.com/gviegas/ocean/driver"
	"github.com/gviegas/ocean/linear"
)

// Kind is the kind of a light source.
type Kind int

// Kinds of light.
const (
	Point Kind = iota
	Spot
	Directional
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Spot:
		return "spot"
	case Directional:
		return "directional"
	}
	return "invalid"
}

// uniform returns the name of the uniform that tells
// whether lights of kind k are on.
func (k Kind) uniform() string {
	switch k {
	case Point:
		return "pointLightOn"
	case Spot:
		return "spotLightOn"
	default:
		return "dirLightOn"
	}
}

// Light defines a light source.
type Light struct {
	Ambient  linear.V3
	Diffuse  linear.V3
	Specular linear.V3

	// Position of the light, in world space.
	// W is 0 for directional lights, in which case
	// XYZ is the direction the light travels.
	Position linear.V4

	// Direction of the cone, in world space.
	// Only applies to spot lights.
	SpotDir linear.V3
	// Only applies to spot lights.
	SpotExp float32
	// Cone cutoff angle, in degrees.
	// 180 means no cutoff.
	SpotCutoff float32

	// Constant, linear and quadratic attenuation.
	Attenuation linear.V3

	On bool
}

// New creates a new light that is on, has unit intensity
// and no attenuation, located at position.
func New(position linear.V4) Light {
	return Light{
		Ambient:     linear.V3{1, 1, 1},
		Diffuse:     linear.V3{1, 1, 1},
		Specular:    linear.V3{1, 1, 1},
		Position:    position,
		SpotDir:     linear.V3{0, 0, -1},
		SpotCutoff:  180,
		Attenuation: linear.V3{1, 0, 0},
		On:          true,
	}
}

// Kind returns the kind of l.
func (l *Light) Kind() Kind {
	switch {
	case l.Position[3] == 0:
		return Directional
	case l.SpotCutoff < 180:
		return Spot
	}
	return Point
}

// Toggle switches l on or off.
func (l *Light) Toggle() { l.On = !l.On }

// Set is an ordered set of lights.
type Set []Light

// DefaultSet returns the lights of the sea scene:
// a point light, a spot light and a directional light,
// in this order.
func DefaultSet() Set {
	amb := linear.V3{0.3, 0.53, 0.9}
	spec := linear.V3{0.4, 0.4, 0.7}

	point := New(linear.V4{0, 20, -20, 1})
	point.Ambient, point.Diffuse, point.Specular = amb, amb, spec
	point.Attenuation = linear.V3{1.1, 0, 0}

	spot := New(linear.V4{10, 10, -10, 1})
	spot.Ambient, spot.Diffuse, spot.Specular = amb, amb, spec
	spot.SpotDir = linear.V3{-0.5, -1, 1}
	spot.SpotExp = 5
	spot.SpotCutoff = 60

	dir := New(linear.V4{5, -10, -5, 0})
	dir.Ambient, dir.Diffuse, dir.Specular = amb, amb, spec

	return Set{point, spot, dir}
}

// Toggle switches every light of kind k on or off.
func (s Set) Toggle(k Kind) {
	for i := range s {
		if s[i].Kind() == k {
			s[i].Toggle()
		}
	}
}

// On reports whether any light of kind k is on.
func (s Set) On(k Kind) bool {
	for i := range s {
		if s[i].Kind() == k && s[i].On {
			return true
		}
	}
	return false
}

// Apply sets the uniforms of every light in s.
// Positions and spot directions are transformed to eye
// space by view.
func (s Set) Apply(u driver.Uniforms, view *linear.M4) {
	for _, k := range [...]Kind{Directional, Point, Spot} {
		var on int32
		if s.On(k) {
			on = 1
		}
		u.SetInt(k.uniform(), on)
	}
	for i := range s {
		l := &s[i]
		pre := "Lights[" + strconv.Itoa(i) + "]."
		u.SetV3(pre+"Ambient", &l.Ambient)
		u.SetV3(pre+"Diffuse", &l.Diffuse)
		u.SetV3(pre+"Specular", &l.Specular)

		var pos linear.V4
		pos.Mul(view, &l.Position)
		u.SetV4(pre+"Position", &pos)

		d := linear.V4{l.SpotDir[0], l.SpotDir[1], l.SpotDir[2], 0}
		d.Mul(view, &d)
		u.SetV3(pre+"SpotDir", &linear.V3{d[0], d[1], d[2]})

		u.SetFloat(pre+"SpotExp", l.SpotExp)
		u.SetFloat(pre+"SpotCutoff", l.SpotCutoff)
		u.SetV3(pre+"Attenuation", &l.Attenuation)
	}
}
