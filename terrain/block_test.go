package terrain

import "testing"

// flatHeightmap builds a w x h heightmap where every sample has the same
// elevation, for tests that only care about block placement, not relief.
func flatHeightmap(w, h int, elevation uint16) *Heightmap {
	samples := make([]uint16, w*h)
	for i := range samples {
		samples[i] = elevation
	}
	return &Heightmap{width: w, height: h, samples: samples, hostLoaded: true}
}

func TestNewBlockSampleOriginMatchesGrid(t *testing.T) {
	hm := flatHeightmap(17, 17, 100)
	b := newBlock(hm, 0, 0, 9, 1, 1, 17, 17)
	if b.SampleOrigin.X != 0 || b.SampleOrigin.Z != 0 {
		t.Errorf("block (0,0): expected SampleOrigin (0,0), got (%v,%v)", b.SampleOrigin.X, b.SampleOrigin.Z)
	}

	b2 := newBlock(hm, 0, 1, 9, 1, 1, 17, 17)
	if b2.SampleOrigin.X != 8 || b2.SampleOrigin.Z != 0 {
		t.Errorf("block (0,1): expected SampleOrigin (8,0), got (%v,%v)", b2.SampleOrigin.X, b2.SampleOrigin.Z)
	}
}

func TestNewBlockAABBTracksMinMaxSamples(t *testing.T) {
	hm := flatHeightmap(9, 9, 0)
	// Poke a spike in the middle of the block.
	hm.samples[4*9+4] = 1000

	b := newBlock(hm, 0, 0, 9, 1, 1, 9, 9)
	if b.AABBMin.Y != 0 {
		t.Errorf("expected AABBMin.Y 0, got %v", b.AABBMin.Y)
	}
	if b.AABBMax.Y != 1000 {
		t.Errorf("expected AABBMax.Y 1000, got %v", b.AABBMax.Y)
	}
}

func TestRebuildAABBRespondsToYScaleChange(t *testing.T) {
	hm := flatHeightmap(9, 9, 0)
	hm.samples[0] = 10
	hm.samples[8*9+8] = 50

	b := newBlock(hm, 0, 0, 9, 1, 1, 9, 9)
	if b.AABBMax.Y != 50 {
		t.Errorf("expected initial AABBMax.Y 50, got %v", b.AABBMax.Y)
	}

	b.RebuildAABB(1, 2, 9, 9)
	if b.AABBMax.Y != 100 {
		t.Errorf("expected AABBMax.Y 100 after yScale=2 rebuild, got %v", b.AABBMax.Y)
	}
	// RebuildAABB must not disturb SampleOrigin: it is pure sample space
	// and never depends on xzScale/yScale.
	if b.SampleOrigin.X != 0 || b.SampleOrigin.Z != 0 {
		t.Errorf("expected SampleOrigin unchanged at (0,0), got (%v,%v)", b.SampleOrigin.X, b.SampleOrigin.Z)
	}
}

func TestRebuildAABBWorldCenterScalesWithXZScale(t *testing.T) {
	hm := flatHeightmap(17, 17, 0)
	b := newBlock(hm, 0, 1, 9, 1, 1, 17, 17)
	centerAtScale1 := b.WorldCenter.X

	b.RebuildAABB(2, 1, 17, 17)
	if b.WorldCenter.X != centerAtScale1*2 {
		t.Errorf("expected WorldCenter.X to double with xzScale=2: got %v, want %v", b.WorldCenter.X, centerAtScale1*2)
	}
}
