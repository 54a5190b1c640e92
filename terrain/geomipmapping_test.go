package terrain

import (
	"errors"
	"testing"

	"render-engine/math"
)

// fakeGPU is a no-op GPU that just records calls, for exercising the
// LOD/culling/catalog logic without a real graphics context.
type fakeGPU struct {
	beginFrameCalls int
	drawStripCalls  int
	uploadedIndices []uint32
}

func (f *fakeGPU) UploadGrid(positions []float32) (vao, vbo uint32) { return 1, 2 }
func (f *fakeGPU) UploadIndices(vao uint32, indices []uint32) (ebo uint32) {
	f.uploadedIndices = indices
	return 3
}
func (f *fakeGPU) UploadHeightmapTexture(hm *Heightmap) uint32 {
	hm.MarkDeviceLoaded(42)
	return 42
}
func (f *fakeGPU) ReleaseMesh(vao, vbo, ebo uint32) {}
func (f *fakeGPU) BeginFrame(viewProj math.Mat4, xzScale, yScale float32) { f.beginFrameCalls++ }
func (f *fakeGPU) BindMesh(vao, ebo uint32)                              {}
func (f *fakeGPU) BindHeightmapTexture(textureID uint32)                 {}
func (f *fakeGPU) SetBlockUniforms(sampleOffset math.Vec3, color [4]float32, w, h float32) {}
func (f *fakeGPU) DrawStrip(first, count int)                           { f.drawStripCalls++ }

func testHeightmap(w, h int) *Heightmap {
	samples := make([]uint16, w*h)
	return &Heightmap{width: w, height: h, samples: samples, hostLoaded: true}
}

func TestNewGeoMipMappingRejectsBadBlockSize(t *testing.T) {
	hm := testHeightmap(17, 17)
	_, err := NewGeoMipMapping(hm, 1, 1, 10, 0, 4)
	if err == nil {
		t.Fatal("expected an error for a block size that isn't 2^n+1")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}

func TestNewGeoMipMappingClampsMaxLODToBlockSize(t *testing.T) {
	hm := testHeightmap(9, 9)
	g, err := NewGeoMipMapping(hm, 1, 1, 9, 0, 99)
	if err != nil {
		t.Fatalf("NewGeoMipMapping: %v", err)
	}
	if g.maxLOD != g.maxPossibleLOD {
		t.Errorf("expected maxLOD clamped to %d, got %d", g.maxPossibleLOD, g.maxLOD)
	}
}

func TestNewGeoMipMappingRejectsMinAboveMax(t *testing.T) {
	hm := testHeightmap(9, 9)
	_, err := NewGeoMipMapping(hm, 1, 1, 9, 3, 2)
	if err == nil {
		t.Fatal("expected an error when minLOD exceeds maxLOD")
	}
}

func TestGeoMipMappingBuildsExpectedBlockGrid(t *testing.T) {
	// A 17x17 heightmap with blockSize 9 (8-sample stride) yields a 2x2
	// block grid exactly.
	hm := testHeightmap(17, 17)
	g, err := NewGeoMipMapping(hm, 1, 1, 9, 0, 2)
	if err != nil {
		t.Fatalf("NewGeoMipMapping: %v", err)
	}
	if len(g.blocks) != 2 || len(g.blocks[0]) != 2 {
		t.Fatalf("expected a 2x2 block grid, got %dx%d", len(g.blocks), len(g.blocks[0]))
	}
	if g.Width() != 17 || g.Height() != 17 {
		t.Errorf("expected terrain dimensions 17x17, got %dx%d", g.Width(), g.Height())
	}
}

func TestGeoMipMappingLoadBuffersMarksHeightmapDeviceLoaded(t *testing.T) {
	hm := testHeightmap(9, 9)
	g, err := NewGeoMipMapping(hm, 1, 1, 9, 0, 2)
	if err != nil {
		t.Fatalf("NewGeoMipMapping: %v", err)
	}
	gpu := &fakeGPU{}
	g.LoadBuffers(gpu)

	if !hm.DeviceLoaded() {
		t.Error("expected LoadBuffers to mark the heightmap device-loaded")
	}
	if len(gpu.uploadedIndices) == 0 {
		t.Error("expected the catalog's indices to reach UploadIndices")
	}
}

func TestGeoMipMappingLODDisabledForcesMaxLOD(t *testing.T) {
	hm := testHeightmap(9, 9)
	g, err := NewGeoMipMapping(hm, 1, 1, 9, 0, 2)
	if err != nil {
		t.Fatalf("NewGeoMipMapping: %v", err)
	}
	g.LODActive = false

	cam := NewCamera(math.Vec3{X: 1000, Y: 1000, Z: 1000}, math.Vec3{Y: 1}, 0.1, 5000, 1, 0, 0)
	g.updateLOD(cam)

	for _, row := range g.blocks {
		for _, b := range row {
			if b.CurrentLOD != g.maxLOD {
				t.Errorf("expected every block at maxLOD %d with LOD disabled, got %d", g.maxLOD, b.CurrentLOD)
			}
		}
	}
}

func TestGeoMipMappingFrozenCameraSkipsLODUpdate(t *testing.T) {
	hm := testHeightmap(9, 9)
	g, err := NewGeoMipMapping(hm, 1, 1, 9, 0, 2)
	if err != nil {
		t.Fatalf("NewGeoMipMapping: %v", err)
	}

	cam := NewCamera(math.Vec3{X: 0, Y: 0, Z: 0}, math.Vec3{Y: 1}, 0.1, 5000, 1, 0, 0)
	g.updateLOD(cam)
	before := g.blocks[0][0].CurrentLOD

	cam.SetFrozen(true)
	cam.Position = math.Vec3{X: 100000, Y: 100000, Z: 100000}
	g.updateLOD(cam)

	if g.blocks[0][0].CurrentLOD != before {
		t.Errorf("expected frozen camera to leave CurrentLOD at %d, got %d", before, g.blocks[0][0].CurrentLOD)
	}
}

func TestGeoMipMappingRenderDrawsEveryUnculledBlock(t *testing.T) {
	hm := testHeightmap(17, 17)
	g, err := NewGeoMipMapping(hm, 1, 1, 9, 0, 2)
	if err != nil {
		t.Fatalf("NewGeoMipMapping: %v", err)
	}
	g.FrustumCullingActive = false

	gpu := &fakeGPU{}
	g.LoadBuffers(gpu)

	cam := NewCamera(math.Vec3{X: 8, Y: 100, Z: 8}, math.Vec3{Y: 1}, 0.1, 5000, 1, -90, -90)
	g.Render(gpu, cam)

	blockCount := 0
	for _, row := range g.blocks {
		blockCount += len(row)
	}
	// Each unculled block draws at least one border strip, plus a center
	// strip at LOD >= 2.
	if gpu.drawStripCalls < blockCount {
		t.Errorf("expected at least %d draw calls with culling off, got %d", blockCount, gpu.drawStripCalls)
	}
	if gpu.beginFrameCalls != 1 {
		t.Errorf("expected exactly one BeginFrame per Render call, got %d", gpu.beginFrameCalls)
	}
}

func TestSetYScaleRebuildsAABBs(t *testing.T) {
	hm := testHeightmap(9, 9)
	hm.samples[0] = 100
	g, err := NewGeoMipMapping(hm, 1, 1, 9, 0, 2)
	if err != nil {
		t.Fatalf("NewGeoMipMapping: %v", err)
	}

	before := g.blocks[0][0].AABBMax.Y
	g.SetYScale(2)
	after := g.blocks[0][0].AABBMax.Y

	if after != before*2 {
		t.Errorf("expected AABBMax.Y to double after SetYScale(2): before=%v after=%v", before, after)
	}
}
