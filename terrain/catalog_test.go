package terrain

import "testing"

func TestBuildCatalogNoIndexOutOfRange(t *testing.T) {
	c := BuildCatalog(9, 0, 3)
	maxValid := uint32(9 * 9)
	for i, idx := range c.Indices {
		if idx == RestartIndex {
			continue
		}
		if idx >= maxValid {
			t.Fatalf("Indices[%d] = %d out of range for a %dx%d grid", i, idx, c.BlockSize, c.BlockSize)
		}
	}
}

func TestBuildCatalogBorderTableCoversEveryConfiguration(t *testing.T) {
	c := BuildCatalog(9, 0, 3)
	numLevels := c.MaxLOD - c.MinLOD + 1
	wantEntries := numLevels * 16
	if len(c.BorderStarts) != wantEntries || len(c.BorderSizes) != wantEntries {
		t.Fatalf("expected %d border table entries (one per LOD x 16 configs), got starts=%d sizes=%d",
			wantEntries, len(c.BorderStarts), len(c.BorderSizes))
	}
	for i, size := range c.BorderSizes {
		if size <= 0 {
			t.Errorf("border entry %d has non-positive size %d", i, size)
		}
	}
}

func TestBuildCatalogCenterRegionEmptyForLOD0And1(t *testing.T) {
	c := BuildCatalog(9, 0, 3)
	if c.CenterSizes[0] != 0 {
		t.Errorf("LOD 0 center region: expected size 0, got %d", c.CenterSizes[0])
	}
	if c.CenterSizes[1] != 0 {
		t.Errorf("LOD 1 center region: expected size 0, got %d", c.CenterSizes[1])
	}
}

func TestBuildCatalogHigherLODHasLargerCenterRegion(t *testing.T) {
	c := BuildCatalog(17, 0, 4)
	// LOD grows with detail in this engine (see lod.go): the highest LOD
	// should produce the largest center index run.
	if c.CenterSizes[len(c.CenterSizes)-1] <= c.CenterSizes[2] {
		t.Errorf("expected center region to grow with LOD: lod2=%d lodMax=%d",
			c.CenterSizes[2], c.CenterSizes[len(c.CenterSizes)-1])
	}
}

func TestBuildCatalogIndicesEndWithRestart(t *testing.T) {
	c := BuildCatalog(9, 0, 2)
	if len(c.Indices) == 0 {
		t.Fatal("expected a non-empty index buffer")
	}
	if c.Indices[len(c.Indices)-1] != RestartIndex {
		t.Error("expected the index buffer to end with a restart sentinel")
	}
}

func TestBuildCatalogMinLODAboveZeroSkipsLod0AndLod1(t *testing.T) {
	c := BuildCatalog(9, 2, 4)
	// With minLOD=2, no LOD-0 or LOD-1 region was ever loaded, so the
	// border table only has entries for LOD 2..4.
	wantEntries := (4 - 2 + 1) * 16
	if len(c.BorderStarts) != wantEntries {
		t.Errorf("expected %d border entries starting at minLOD=2, got %d", wantEntries, len(c.BorderStarts))
	}
}
