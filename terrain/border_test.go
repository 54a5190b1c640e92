package terrain

import "testing"

func gridOfLODs(lods [][]int) [][]*Block {
	grid := make([][]*Block, len(lods))
	for r, row := range lods {
		grid[r] = make([]*Block, len(row))
		for c, lod := range row {
			grid[r][c] = &Block{Row: r, Col: c, CurrentLOD: lod}
		}
	}
	return grid
}

func TestCalculateBorderBitmapNoNeighborsFiner(t *testing.T) {
	grid := gridOfLODs([][]int{
		{2, 2, 2},
		{2, 2, 2},
		{2, 2, 2},
	})
	if got := calculateBorderBitmap(grid, 1, 1); got != 0 {
		t.Errorf("uniform LOD grid: expected bitmap 0, got %04b", got)
	}
}

func TestCalculateBorderBitmapAllNeighborsCoarser(t *testing.T) {
	// Center block is finer (higher LOD number) than every neighbor
	// (lower LOD number), so all four bits should be set.
	grid := gridOfLODs([][]int{
		{1, 1, 1},
		{1, 2, 1},
		{1, 1, 1},
	})
	got := calculateBorderBitmap(grid, 1, 1)
	want := borderLeft | borderRight | borderTop | borderBottom
	if got != want {
		t.Errorf("all-coarser neighbors: expected %04b, got %04b", want, got)
	}
}

func TestCalculateBorderBitmapSingleSide(t *testing.T) {
	grid := gridOfLODs([][]int{
		{2, 2, 2},
		{2, 2, 0},
		{2, 2, 2},
	})
	got := calculateBorderBitmap(grid, 1, 1)
	if got != borderRight {
		t.Errorf("right neighbor coarser: expected %04b, got %04b", borderRight, got)
	}
}

func TestCalculateBorderBitmapEdgeClampsToSelf(t *testing.T) {
	// Top-left corner block has no up/left neighbor; clamping means it
	// compares against itself on those sides, which never sets a bit.
	grid := gridOfLODs([][]int{
		{3, 1},
		{1, 1},
	})
	if got := calculateBorderBitmap(grid, 0, 0); got != (borderRight | borderBottom) {
		t.Errorf("corner block: expected %04b, got %04b", borderRight|borderBottom, got)
	}
}
