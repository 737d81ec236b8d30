// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package light

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gviegas/ocean/driver/drivertest"
	"github.com/gviegas/ocean/linear"
)

func newProgram(t *testing.T) *drivertest.Program {
	prog, err := drivertest.New().NewProgram(nil)
	require.NoError(t, err)
	return prog.(*drivertest.Program)
}

func TestDefaultSet(t *testing.T) {
	s := DefaultSet()
	require.Len(t, s, 3)
	require.Equal(t, Point, s[0].Kind())
	require.Equal(t, Spot, s[1].Kind())
	require.Equal(t, Directional, s[2].Kind())
	for i := range s {
		require.True(t, s[i].On)
		require.Equal(t, linear.V3{0.3, 0.53, 0.9}, s[i].Ambient)
		require.Equal(t, linear.V3{0.4, 0.4, 0.7}, s[i].Specular)
	}
	require.Equal(t, linear.V3{1.1, 0, 0}, s[0].Attenuation)
	require.Equal(t, float32(60), s[1].SpotCutoff)
}

func TestToggle(t *testing.T) {
	s := DefaultSet()
	s.Toggle(Spot)
	require.False(t, s.On(Spot))
	require.True(t, s.On(Point))
	require.True(t, s.On(Directional))

	prog := newProgram(t)
	var view linear.M4
	view.I()
	s.Apply(prog, &view)
	for name, want := range map[string]int32{
		"spotLightOn":  0,
		"pointLightOn": 1,
		"dirLightOn":   1,
	} {
		have, ok := prog.Value(name)
		require.True(t, ok, name)
		require.Equal(t, want, have, name)
	}

	s.Toggle(Spot)
	require.True(t, s.On(Spot))
}

func TestApply(t *testing.T) {
	s := DefaultSet()
	prog := newProgram(t)
	var view linear.M4
	view.Translate(1, 2, 3)
	s.Apply(prog, &view)

	// Positions move with the view; directions do not.
	pos, _ := prog.Value("Lights[0].Position")
	require.Equal(t, linear.V4{1, 22, -17, 1}, pos)
	pos, _ = prog.Value("Lights[2].Position")
	require.Equal(t, linear.V4{5, -10, -5, 0}, pos)
	dir, _ := prog.Value("Lights[1].SpotDir")
	require.Equal(t, linear.V3{-0.5, -1, 1}, dir)

	for _, name := range []string{
		"Lights[1].Ambient",
		"Lights[1].Diffuse",
		"Lights[1].Specular",
		"Lights[1].SpotExp",
		"Lights[1].SpotCutoff",
		"Lights[1].Attenuation",
	} {
		_, ok := prog.Value(name)
		require.True(t, ok, name)
	}
	exp, _ := prog.Value("Lights[1].SpotExp")
	require.Equal(t, float32(5), exp)
}

func TestSeaMaterial(t *testing.T) {
	m := SeaMaterial()
	prog := newProgram(t)
	m.Apply(prog)
	c := linear.V4{0.15, 0.26, 0.55, 1}
	for _, name := range []string{"Ambient", "Diffuse", "Specular", "Exponent"} {
		have, ok := prog.Value("Material." + name)
		require.True(t, ok, name)
		require.Equal(t, c, have, name)
	}
	have, _ := prog.Value("Material.Shininess")
	require.Equal(t, float32(100), have)
}
