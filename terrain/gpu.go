package terrain

import "render-engine/math"

// GPU is the minimal device-side surface GeoMipMapping and Naive need to
// render. Keeping it as an interface, implemented by internal/glterrain,
// means the LOD/culling/catalog logic above stays free of any GL import and
// can be unit tested without a graphics context.
type GPU interface {
	// UploadGrid uploads the shared per-vertex (x, z) grid and returns a
	// pair of opaque handles the GPU layer will need again on every draw.
	UploadGrid(positions []float32) (vao, vbo uint32)
	// UploadIndices uploads the shared index catalog into an element
	// buffer bound to vao, and returns its handle.
	UploadIndices(vao uint32, indices []uint32) (ebo uint32)
	// UploadHeightmapTexture mirrors hm onto the GPU and marks hm
	// device-loaded.
	UploadHeightmapTexture(hm *Heightmap) (textureID uint32)
	// ReleaseMesh frees vao/vbo/ebo. ebo may be zero if UploadIndices was
	// never called.
	ReleaseMesh(vao, vbo, ebo uint32)

	// BeginFrame activates the terrain program and sets the per-frame
	// uniforms shared by every block: view-projection matrix, the
	// sample-to-world xz scale, and height scale.
	BeginFrame(viewProj math.Mat4, xzScale, yScale float32)
	// BindMesh makes vao/ebo current for a run of draw calls.
	BindMesh(vao, ebo uint32)
	// BindHeightmapTexture binds the heightmap sampler for this frame.
	BindHeightmapTexture(textureID uint32)
	// SetBlockUniforms sets the per-block uniforms: sample-space offset, the
	// LOD-debug tint colour, and the heightmap's dimensions (needed by the
	// vertex shader both for the UV lookup and to center the block in world
	// space).
	SetBlockUniforms(sampleOffset math.Vec3, color [4]float32, heightmapWidth, heightmapHeight float32)
	// DrawStrip issues one triangle-strip draw call over `count` indices
	// starting at catalog offset `first`.
	DrawStrip(first, count int)
}
