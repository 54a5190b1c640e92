package terrain

import "render-engine/math"

// Naive is the brute-force reference terrain: one draw call over every
// sample in the heightmap at full resolution, no LOD and no per-block
// culling. It exists to validate GeoMipMapping's visual output against a
// version of the same terrain that cannot possibly have a seam, and as a
// baseline for measuring how much the LOD scheme actually saves.
//
// Unlike the reference implementation, Naive shares GeoMipMapping's
// heightmap-sampling vertex shader and GPU interface rather than baking
// height and per-vertex normals into its own vertex buffer; this lets both
// terrains run through the same GPU abstraction and removes an entire
// second shader program from the render path for a debug-only code path.
type Naive struct {
	heightmap       *Heightmap
	width, height   int
	xzScale, yScale float32

	indexCount int

	vao, vbo, ebo uint32
}

// NewNaive builds a Naive terrain over the whole heightmap.
func NewNaive(hm *Heightmap, xzScale, yScale float32) *Naive {
	return &Naive{
		heightmap: hm,
		width:     hm.Width(),
		height:    hm.Height(),
		xzScale:   xzScale,
		yScale:    yScale,
	}
}

func (n *Naive) Width() int  { return n.width }
func (n *Naive) Height() int { return n.height }

// LoadBuffers uploads a flat width x height vertex grid and a single
// row-major triangle-strip index catalog with a primitive restart between
// rows, matching the reference naive renderer's index layout.
func (n *Naive) LoadBuffers(gpu GPU) {
	positions := make([]float32, 0, n.width*n.height*2)
	for i := 0; i < n.height; i++ {
		for j := 0; j < n.width; j++ {
			positions = append(positions, float32(j), float32(i))
		}
	}

	indices := make([]uint32, 0, n.height*n.width*2)
	for i := 0; i < n.height-1; i++ {
		for j := 0; j < n.width; j++ {
			indices = append(indices, uint32(j+n.width*i))
			indices = append(indices, uint32(j+n.width*(i+1)))
		}
		indices = append(indices, RestartIndex)
	}
	n.indexCount = len(indices)

	n.vao, n.vbo = gpu.UploadGrid(positions)
	n.ebo = gpu.UploadIndices(n.vao, indices)
	gpu.UploadHeightmapTexture(n.heightmap)
}

func (n *Naive) UnloadBuffers(gpu GPU) {
	gpu.ReleaseMesh(n.vao, n.vbo, n.ebo)
}

// Render issues the single full-resolution draw call.
func (n *Naive) Render(gpu GPU, camera *Camera) {
	gpu.BeginFrame(camera.ViewProjMatrix(), n.xzScale, n.yScale)
	gpu.BindMesh(n.vao, n.ebo)
	gpu.BindHeightmapTexture(n.heightmap.TextureID())
	// The whole grid is already laid out over [0, width) x [0, height) in
	// sample space, so it needs no extra origin: the shader centers it in
	// world space itself from textureWidth/textureHeight.
	gpu.SetBlockUniforms(math.Vec3{}, [4]float32{0.5, 0.5, 0.5, 1}, float32(n.width), float32(n.height))
	gpu.DrawStrip(0, n.indexCount)
}
