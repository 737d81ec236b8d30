// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gviegas/ocean/driver"
	"github.com/gviegas/ocean/linear"
)

// shaderType maps a driver.StageKind to a GL shader type.
func shaderType(k driver.StageKind) (uint32, bool) {
	switch k {
	case driver.SVertex:
		return gl.VERTEX_SHADER, true
	case driver.STessControl:
		return gl.TESS_CONTROL_SHADER, true
	case driver.STessEval:
		return gl.TESS_EVALUATION_SHADER, true
	case driver.SFragment:
		return gl.FRAGMENT_SHADER, true
	}
	return 0, false
}

// program implements driver.Program.
type program struct {
	id   uint32
	locs map[string]int32
}

// NewProgram implements driver.GPU.
func (g *GPU) NewProgram(stages []driver.Stage) (driver.Program, error) {
	shaders := make([]uint32, 0, len(stages))
	defer func() {
		for _, s := range shaders {
			gl.DeleteShader(s)
		}
	}()
	for _, st := range stages {
		s, err := compile(st)
		if err != nil {
			return nil, err
		}
		shaders = append(shaders, s)
	}

	id := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(id, s)
	}
	gl.LinkProgram(id)
	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(id, n, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("%w: %s", driver.ErrLink, strings.TrimRight(log, "\x00"))
	}
	for _, s := range shaders {
		gl.DetachShader(id, s)
	}
	return &program{id: id, locs: make(map[string]int32)}, nil
}

func compile(st driver.Stage) (uint32, error) {
	typ, ok := shaderType(st.Kind)
	if !ok {
		return 0, fmt.Errorf("%w: invalid stage %d", driver.ErrCompile, st.Kind)
	}
	s := gl.CreateShader(typ)
	src, free := gl.Strs(st.Source + "\x00")
	gl.ShaderSource(s, 1, src, nil)
	free()
	gl.CompileShader(s)
	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(s, n, nil, gl.Str(log))
		gl.DeleteShader(s)
		return 0, fmt.Errorf("%w: %s: %s", driver.ErrCompile, st.Kind, strings.TrimRight(log, "\x00"))
	}
	return s, nil
}

// Use implements driver.Program.
func (p *program) Use() { gl.UseProgram(p.id) }

// Destroy implements driver.Destroyer.
func (p *program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// loc returns the location of the named uniform.
// Inactive uniforms resolve to -1, which callers skip.
func (p *program) loc(name string) int32 {
	l, ok := p.locs[name]
	if !ok {
		l = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		p.locs[name] = l
	}
	return l
}

// SetFloat implements driver.Uniforms.
func (p *program) SetFloat(name string, v float32) {
	if l := p.loc(name); l >= 0 {
		gl.ProgramUniform1f(p.id, l, v)
	}
}

// SetInt implements driver.Uniforms.
func (p *program) SetInt(name string, v int32) {
	if l := p.loc(name); l >= 0 {
		gl.ProgramUniform1i(p.id, l, v)
	}
}

// SetUint implements driver.Uniforms.
func (p *program) SetUint(name string, v uint32) {
	if l := p.loc(name); l >= 0 {
		gl.ProgramUniform1ui(p.id, l, v)
	}
}

// SetV3 implements driver.Uniforms.
func (p *program) SetV3(name string, v *linear.V3) {
	if l := p.loc(name); l >= 0 {
		gl.ProgramUniform3fv(p.id, l, 1, &v[0])
	}
}

// SetV4 implements driver.Uniforms.
func (p *program) SetV4(name string, v *linear.V4) {
	if l := p.loc(name); l >= 0 {
		gl.ProgramUniform4fv(p.id, l, 1, &v[0])
	}
}

// SetM3 implements driver.Uniforms.
func (p *program) SetM3(name string, m *linear.M3) {
	if l := p.loc(name); l >= 0 {
		gl.ProgramUniformMatrix3fv(p.id, l, 1, false, &m[0][0])
	}
}

// SetM4 implements driver.Uniforms.
func (p *program) SetM4(name string, m *linear.M4) {
	if l := p.loc(name); l >= 0 {
		gl.ProgramUniformMatrix4fv(p.id, l, 1, false, &m[0][0])
	}
}
