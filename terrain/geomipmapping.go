package terrain

// GeoMipMapping is a continuous-LOD terrain built from a grid of blocks,
// each drawn from a single shared index catalog keyed by (LOD, border
// configuration). See Catalog for how that index buffer is laid out.
type GeoMipMapping struct {
	heightmap *Heightmap

	xzScale, yScale float32
	blockSize       int
	minLOD, maxLOD  int
	maxPossibleLOD  int

	nBlocksX, nBlocksZ int
	width, height      int // in samples

	blocks  [][]*Block // [row][col]
	catalog *Catalog

	BaseDistance         float32
	Ladder               LadderMode
	LODActive            bool
	FrustumCullingActive bool

	vao, vbo, ebo uint32
	loaded        bool
}

// NewGeoMipMapping validates the construction parameters and builds the
// block grid and index catalog. blockSize must be 2^n+1 for some n >= 1;
// anything else is a configuration error the caller must fix before the
// engine can run, not a recoverable runtime condition.
func NewGeoMipMapping(hm *Heightmap, xzScale, yScale float32, blockSize, minLOD, maxLOD int) (*GeoMipMapping, error) {
	if blockSize < 3 || (blockSize-1)&(blockSize-2) != 0 {
		return nil, &ConfigError{Field: "blockSize", Reason: "must be of the form 2^n + 1"}
	}
	maxPossibleLOD := log2(blockSize - 1)
	if maxLOD > maxPossibleLOD {
		maxLOD = maxPossibleLOD
	}
	if minLOD < 0 {
		minLOD = 0
	}
	if minLOD > maxLOD {
		return nil, &ConfigError{Field: "minLOD", Reason: "cannot exceed maxLOD"}
	}

	nBlocksX := (hm.Width() - 1) / (blockSize - 1)
	nBlocksZ := (hm.Height() - 1) / (blockSize - 1)
	width := nBlocksX*(blockSize-1) + 1
	height := nBlocksZ*(blockSize-1) + 1

	g := &GeoMipMapping{
		heightmap:            hm,
		xzScale:              xzScale,
		yScale:               yScale,
		blockSize:            blockSize,
		minLOD:               minLOD,
		maxLOD:               maxLOD,
		maxPossibleLOD:       maxPossibleLOD,
		nBlocksX:             nBlocksX,
		nBlocksZ:             nBlocksZ,
		width:                width,
		height:               height,
		BaseDistance:         float32(blockSize) * xzScale,
		Ladder:               LadderGeometric,
		LODActive:            true,
		FrustumCullingActive: true,
	}

	g.blocks = make([][]*Block, nBlocksZ)
	for row := 0; row < nBlocksZ; row++ {
		g.blocks[row] = make([]*Block, nBlocksX)
		for col := 0; col < nBlocksX; col++ {
			g.blocks[row][col] = newBlock(hm, row, col, blockSize, xzScale, yScale, width, height)
		}
	}

	g.catalog = BuildCatalog(blockSize, minLOD, maxLOD)

	return g, nil
}

func log2(v int) int {
	n := 0
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}

func (g *GeoMipMapping) Width() int  { return g.width }
func (g *GeoMipMapping) Height() int { return g.height }

// Blocks exposes the block grid, row-major, for HUD/debug consumers.
func (g *GeoMipMapping) Blocks() [][]*Block { return g.blocks }

// SetYScale changes the terrain's vertical scale and rebuilds every block's
// AABB to match, closing the staleness gap the reference implementation
// leaves open when yScale changes after construction.
func (g *GeoMipMapping) SetYScale(yScale float32) {
	g.yScale = yScale
	for _, row := range g.blocks {
		for _, b := range row {
			b.RebuildAABB(g.xzScale, g.yScale, g.width, g.height)
		}
	}
}

// LoadBuffers uploads the shared vertex grid, index catalog and heightmap
// texture via gpu. Must be called once before the first Render.
func (g *GeoMipMapping) LoadBuffers(gpu GPU) {
	positions := make([]float32, 0, g.blockSize*g.blockSize*2)
	for i := 0; i < g.blockSize; i++ {
		for j := 0; j < g.blockSize; j++ {
			positions = append(positions, float32(j), float32(i))
		}
	}

	g.vao, g.vbo = gpu.UploadGrid(positions)
	g.ebo = gpu.UploadIndices(g.vao, g.catalog.Indices)
	gpu.UploadHeightmapTexture(g.heightmap)
	g.loaded = true
}

// UnloadBuffers releases every GPU handle this terrain owns.
func (g *GeoMipMapping) UnloadBuffers(gpu GPU) {
	gpu.ReleaseMesh(g.vao, g.vbo, g.ebo)
	g.loaded = false
}

// updateLOD is pass 1a: refresh every block's LOD from its distance to
// camera. While the camera is frozen, blocks keep their current LOD,
// matching the reference behaviour that a frozen camera also freezes LOD
// selection, not just culling; with LODActive false every block is still
// forced to maxLOD.
func (g *GeoMipMapping) updateLOD(camera *Camera) {
	pos := camera.EffectivePosition()
	for _, row := range g.blocks {
		for _, b := range row {
			if !g.LODActive {
				b.CurrentLOD = g.maxLOD
				continue
			}
			if camera.Frozen() {
				continue
			}
			d := b.TrueCenter.Sub(pos)
			squaredDistance := d.Dot(d)
			b.CurrentLOD = selectLOD(squaredDistance, g.BaseDistance, g.minLOD, g.maxLOD, g.Ladder)
		}
	}
}

// updateBorders is pass 1b: recompute every block's border bitmap. Must run
// after updateLOD so every neighbor's CurrentLOD is already current.
func (g *GeoMipMapping) updateBorders() {
	for row := range g.blocks {
		for col := range g.blocks[row] {
			g.blocks[row][col].CurrentBorderBitmap = calculateBorderBitmap(g.blocks, row, col)
		}
	}
}

// Render runs the two-pass per-frame schedule: pass 1 refreshes every
// block's LOD and border bitmap, pass 2 culls and draws. Both passes run
// single-threaded and synchronously, so pass 2 always reads the LODs and
// border bitmaps that pass 1 has finished writing.
func (g *GeoMipMapping) Render(gpu GPU, camera *Camera) {
	g.updateLOD(camera)
	g.updateBorders()

	camera.RefreshFrustum()

	gpu.BeginFrame(camera.ViewProjMatrix(), g.xzScale, g.yScale)
	gpu.BindMesh(g.vao, g.ebo)
	gpu.BindHeightmapTexture(g.heightmap.TextureID())

	for _, row := range g.blocks {
		for _, b := range row {
			if g.FrustumCullingActive && !camera.InsideFrustum(b.AABBMin, b.AABBMax) {
				continue
			}

			color := lodDebugColor(b.CurrentLOD)
			gpu.SetBlockUniforms(b.SampleOrigin, color, float32(g.width), float32(g.height))

			idx := b.CurrentLOD - g.minLOD
			if b.CurrentLOD >= 2 {
				gpu.DrawStrip(g.catalog.CenterStarts[idx], g.catalog.CenterSizes[idx])
			}

			borderIdx := idx*16 + b.CurrentBorderBitmap
			gpu.DrawStrip(g.catalog.BorderStarts[borderIdx], g.catalog.BorderSizes[borderIdx])
		}
	}
}

func lodDebugColor(lod int) [4]float32 {
	switch lod % 3 {
	case 0:
		return [4]float32{0.7, 0.3, 0.3, 1}
	case 1:
		return [4]float32{0.3, 0.7, 0.3, 1}
	default:
		return [4]float32{0.3, 0.3, 0.7, 1}
	}
}
