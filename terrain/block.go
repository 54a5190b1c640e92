package terrain

import "render-engine/math"

// Block is one cell of the terrain's grid partition: a (blockSize x
// blockSize) patch of the heightmap, rendered as an independent draw call so
// it can carry its own LOD and border configuration.
type Block struct {
	// Row/Col locate this block within the terrain's block grid.
	Row, Col int

	// SampleOrigin is this block's (x, z) origin in heightmap sample space
	// (not world units). The vertex shader adds it to the shared per-vertex
	// grid coordinates to look up the right heightmap texel and to derive
	// the final, xzScale-converted world position, so block placement and
	// heightmap sampling always agree regardless of xzScale.
	SampleOrigin math.Vec3

	// WorldCenter is the AABB's center; culling itself tests AABBMin/AABBMax.
	// TrueCenter uses the heightmap sample at the block's exact geometric
	// center rather than the min/max midpoint, matching the reference
	// implementation's distinct "center for culling" vs "center for LOD
	// distance" points: a block that is mostly flat but has one tall spike
	// should cull against the spike but pick LOD by local, not extremal,
	// distance.
	WorldCenter      math.Vec3
	TrueCenter       math.Vec3
	AABBMin, AABBMax math.Vec3

	// CurrentLOD and CurrentBorderBitmap are written once per frame by the
	// LOD/border resolution pass and read by the render pass; see the
	// two-pass scheduling note on GeoMipMapping.Render.
	CurrentLOD          int
	CurrentBorderBitmap int

	blockSize int

	// Sample-space coordinates, cached so RebuildAABB never needs to
	// rescan the heightmap.
	sampleBaseX, sampleBaseZ     int
	sampleCenterX, sampleCenterZ int
	minSample, maxSample         uint16
	centerSample                 uint16
}

// newBlock scans the (blockSize x blockSize) sample window for (row, col)
// and builds its AABB and translation, matching the reference constructor's
// per-block loop.
func newBlock(hm *Heightmap, row, col, blockSize int, xzScale, yScale float32, totalWidth, totalHeight int) *Block {
	baseX := col * (blockSize - 1)
	baseZ := row * (blockSize - 1)

	minY, maxY := hm.At(baseX, baseZ), hm.At(baseX, baseZ)
	for dz := 0; dz < blockSize; dz++ {
		for dx := 0; dx < blockSize; dx++ {
			s := hm.At(baseX+dx, baseZ+dz)
			if s < minY {
				minY = s
			}
			if s > maxY {
				maxY = s
			}
		}
	}

	centerX := baseX + (blockSize-1)/2
	centerZ := baseZ + (blockSize-1)/2

	b := &Block{
		Row:           row,
		Col:           col,
		blockSize:     blockSize,
		sampleBaseX:   baseX,
		sampleBaseZ:   baseZ,
		sampleCenterX: centerX,
		sampleCenterZ: centerZ,
		minSample:     minY,
		maxSample:     maxY,
		centerSample:  hm.At(centerX, centerZ),
	}
	b.RebuildAABB(xzScale, yScale, totalWidth, totalHeight)
	return b
}

// RebuildAABB recomputes WorldCenter/TrueCenter/AABBMin/AABBMax/SampleOrigin
// from the cached sample extrema and the given scale factors. The reference
// implementation computes the AABB once at construction time and never
// revisits it if yScale changes later, which silently desyncs culling from
// the rendered geometry; this engine instead exposes RebuildAABB so callers
// that change yScale at runtime can restore the invariant explicitly.
func (b *Block) RebuildAABB(xzScale, yScale float32, totalWidth, totalHeight int) {
	halfW := float32(totalWidth) * xzScale / 2
	halfH := float32(totalHeight) * xzScale / 2
	halfSpan := float32(b.blockSize-1) * xzScale / 2

	worldX := -halfW + float32(b.sampleCenterX)*xzScale
	worldZ := -halfH + float32(b.sampleCenterZ)*xzScale

	minYScaled := float32(b.minSample) * yScale
	maxYScaled := float32(b.maxSample) * yScale
	trueYScaled := float32(b.centerSample) * yScale

	b.WorldCenter = math.Vec3{X: worldX, Y: minYScaled + (maxYScaled-minYScaled)/2, Z: worldZ}
	b.TrueCenter = math.Vec3{X: worldX, Y: trueYScaled, Z: worldZ}
	b.AABBMin = math.Vec3{X: worldX - halfSpan, Y: minYScaled, Z: worldZ - halfSpan}
	b.AABBMax = math.Vec3{X: worldX + halfSpan, Y: maxYScaled, Z: worldZ + halfSpan}
	b.SampleOrigin = math.Vec3{X: float32(b.sampleBaseX), Z: float32(b.sampleBaseZ)}
}
