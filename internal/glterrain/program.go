// Package glterrain wires the terrain package's geometry and texture data
// onto the GPU. It is the only package in this module allowed to call into
// go-gl directly for terrain rendering; terrain itself stays GPU-agnostic
// so its LOD/culling/catalog logic can be unit tested without a context.
package glterrain

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-engine/math"
)

// Program wraps a linked GLSL program and the uniform locations the terrain
// shaders use.
type Program struct {
	Handle uint32

	ModelLoc      int32
	ViewProjLoc   int32
	XZScaleLoc    int32
	YScaleLoc     int32
	OffsetLoc     int32
	ColorLoc      int32
	DoTextureLoc  int32
	HeightmapLoc  int32
	OverlayLoc    int32
	TextureWLoc   int32
	TextureHLoc   int32
}

// NewProgram compiles and links vertSrc/fragSrc and resolves every uniform
// location the terrain renderer needs. Unused uniforms resolve to -1 and
// are silently skipped by gl.Uniform* calls, matching how the reference
// shader toolchain tolerates optimized-out uniforms.
func NewProgram(vertSrc, fragSrc string) (*Program, error) {
	handle, err := linkProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}

	loc := func(name string) int32 {
		return gl.GetUniformLocation(handle, gl.Str(name+"\x00"))
	}

	return &Program{
		Handle:       handle,
		ModelLoc:     loc("model"),
		ViewProjLoc:  loc("viewProj"),
		XZScaleLoc:   loc("xzScale"),
		YScaleLoc:    loc("yScale"),
		OffsetLoc:    loc("offset"),
		ColorLoc:     loc("inColor"),
		DoTextureLoc: loc("doTexture"),
		HeightmapLoc: loc("heightmapTexture"),
		OverlayLoc:   loc("overlayTexture"),
		TextureWLoc:  loc("textureWidth"),
		TextureHLoc:  loc("textureHeight"),
	}, nil
}

func (p *Program) Use() { gl.UseProgram(p.Handle) }

func (p *Program) SetMat4(loc int32, m math.Mat4) {
	if loc < 0 {
		return
	}
	gl.UniformMatrix4fv(loc, 1, false, (*float32)(unsafe.Pointer(&m[0][0])))
}

func (p *Program) SetFloat(loc int32, v float32) {
	if loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec2(loc int32, x, y float32) {
	if loc >= 0 {
		gl.Uniform2f(loc, x, y)
	}
}

func (p *Program) SetVec4(loc int32, x, y, z, w float32) {
	if loc >= 0 {
		gl.Uniform4f(loc, x, y, z, w)
	}
}

func (p *Program) SetInt(loc int32, v int32) {
	if loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.Handle)
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
