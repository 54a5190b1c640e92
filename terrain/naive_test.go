package terrain

import (
	"testing"

	"render-engine/math"
)

func TestNaiveLoadBuffersIndexCount(t *testing.T) {
	hm := testHeightmap(4, 3)
	n := NewNaive(hm, 1, 1)
	gpu := &fakeGPU{}
	n.LoadBuffers(gpu)

	// 2 rows of stitching between 3 rows of samples, 4 columns each, plus
	// one restart sentinel per stitched row.
	wantRows := n.height - 1
	wantPerRow := n.width*2 + 1
	want := wantRows * wantPerRow
	if len(gpu.uploadedIndices) != want {
		t.Errorf("expected %d indices, got %d", want, len(gpu.uploadedIndices))
	}
}

func TestNaiveRenderDrawsOneStrip(t *testing.T) {
	hm := testHeightmap(4, 4)
	n := NewNaive(hm, 1, 1)
	gpu := &fakeGPU{}
	n.LoadBuffers(gpu)

	cam := NewCamera(math.Vec3{X: 0, Y: 10, Z: 0}, math.Vec3{Y: 1}, 0.1, 100, 1, 0, -90)
	n.Render(gpu, cam)

	if gpu.drawStripCalls != 1 {
		t.Errorf("expected exactly one draw call for the naive terrain, got %d", gpu.drawStripCalls)
	}
	if gpu.beginFrameCalls != 1 {
		t.Errorf("expected exactly one BeginFrame call, got %d", gpu.beginFrameCalls)
	}
}
