// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package light

import (
	"github.com/gviegas/ocean/driver"
	"github.com/gviegas/ocean/linear"
)

// Material defines the reflectance of a surface.
type Material struct {
	Ambient   linear.V4
	Diffuse   linear.V4
	Specular  linear.V4
	Exponent  linear.V4
	Shininess float32
}

// SeaMaterial returns the material of the sea.
func SeaMaterial() Material {
	c := linear.V4{0.15, 0.26, 0.55, 1}
	return Material{
		Ambient:   c,
		Diffuse:   c,
		Specular:  c,
		Exponent:  c,
		Shininess: 100,
	}
}

// Apply sets the uniforms of m.
func (m *Material) Apply(u driver.Uniforms) {
	u.SetV4("Material.Ambient", &m.Ambient)
	u.SetV4("Material.Diffuse", &m.Diffuse)
	u.SetV4("Material.Specular", &m.Specular)
	u.SetV4("Material.Exponent", &m.Exponent)
	u.SetFloat("Material.Shininess", m.Shininess)
}
