package glterrain

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-engine/math"
	"render-engine/terrain"
)

// Driver implements terrain.GPU on top of a single linked terrain shader
// program. A terrain package never constructs one itself; cmd/terrain-demo
// wires it in at startup once the GL context exists, matching the GPU
// dependency the rest of the terrain logic otherwise never takes a
// dependency on at all.
type Driver struct {
	program *Program

	heightmapUnit int32
	overlayUnit   int32

	overlayTex uint32
	doOverlay  float32
}

// NewDriver compiles the terrain shader program. Must be called on the
// thread holding the current GL context.
func NewDriver() (*Driver, error) {
	prog, err := NewProgram(TerrainVertSrc, TerrainFragSrc)
	if err != nil {
		return nil, err
	}
	return &Driver{program: prog, heightmapUnit: 1, overlayUnit: 0}, nil
}

// SetOverlay arms the fragment shader's optional colour-wash texture. Pass
// zero to disable it and fall back to flat LOD-debug tinting.
func (d *Driver) SetOverlay(tex uint32) {
	d.overlayTex = tex
	if tex != 0 {
		d.doOverlay = 1
	} else {
		d.doOverlay = 0
	}
}

func (d *Driver) UploadGrid(positions []float32) (vao, vbo uint32) {
	m := UploadGrid(positions)
	return m.VAO, m.VBO
}

func (d *Driver) UploadIndices(vao uint32, indices []uint32) (ebo uint32) {
	m := &Mesh{VAO: vao}
	m.UploadIndices(indices)
	return m.EBO
}

func (d *Driver) UploadHeightmapTexture(hm *terrain.Heightmap) uint32 {
	return UploadHeightmap(hm)
}

func (d *Driver) ReleaseMesh(vao, vbo, ebo uint32) {
	m := &Mesh{VAO: vao, VBO: vbo, EBO: ebo}
	m.Release()
}

func (d *Driver) BeginFrame(viewProj math.Mat4, xzScale, yScale float32) {
	d.program.Use()
	d.program.SetMat4(d.program.ModelLoc, math.Mat4Identity())
	d.program.SetMat4(d.program.ViewProjLoc, viewProj)
	d.program.SetFloat(d.program.XZScaleLoc, xzScale)
	d.program.SetFloat(d.program.YScaleLoc, yScale)
	d.program.SetInt(d.program.HeightmapLoc, d.heightmapUnit)
	d.program.SetInt(d.program.OverlayLoc, d.overlayUnit)
	d.program.SetFloat(d.program.DoTextureLoc, d.doOverlay)

	if d.overlayTex != 0 {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(d.overlayUnit))
		gl.BindTexture(gl.TEXTURE_2D, d.overlayTex)
	}
}

func (d *Driver) BindMesh(vao, ebo uint32) {
	m := &Mesh{VAO: vao, EBO: ebo}
	m.Bind()
}

func (d *Driver) BindHeightmapTexture(textureID uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(d.heightmapUnit))
	gl.BindTexture(gl.TEXTURE_2D, textureID)
}

func (d *Driver) SetBlockUniforms(sampleOffset math.Vec3, color [4]float32, heightmapWidth, heightmapHeight float32) {
	d.program.SetVec2(d.program.OffsetLoc, sampleOffset.X, sampleOffset.Z)
	d.program.SetVec4(d.program.ColorLoc, color[0], color[1], color[2], color[3])
	d.program.SetFloat(d.program.TextureWLoc, heightmapWidth)
	d.program.SetFloat(d.program.TextureHLoc, heightmapHeight)
}

func (d *Driver) DrawStrip(first, count int) {
	DrawStrip(first, count)
}

// Delete releases the shader program. Safe to call once, after the last
// Render of the last frame that used this driver.
func (d *Driver) Delete() {
	d.program.Delete()
}
