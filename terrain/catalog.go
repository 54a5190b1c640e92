package terrain

// RestartIndex is the primitive-restart sentinel written between each
// triangle strip segment. The renderer must enable GL_PRIMITIVE_RESTART and
// set this as the restart index before drawing from the shared index
// buffer.
const RestartIndex uint32 = 0xFFFFFFFF

// Catalog is the shared index buffer for one (blockSize, minLOD, maxLOD)
// combination: every block in a terrain built with those parameters draws
// from the same Indices slice, selecting a sub-range by LOD and border
// configuration. Building it is pure geometry — no GPU calls — so it can be
// unit tested directly.
type Catalog struct {
	BlockSize      int
	MinLOD, MaxLOD int

	Indices []uint32

	// CenterStarts/CenterSizes are indexed by (lod - MinLOD). LOD 0 and 1
	// have no center region (their single border block covers everything),
	// so those two slots are always size 0.
	CenterStarts, CenterSizes []int

	// BorderStarts/BorderSizes are indexed by (lod-MinLOD)*16 + borderBitmap.
	BorderStarts, BorderSizes []int
}

// BuildCatalog generates the full index catalog for a terrain with the
// given block size and LOD range. blockSize must be 2^n+1; callers are
// expected to have validated this already (GeoMipMapping's constructor does
// so and returns a *ConfigError otherwise).
func BuildCatalog(blockSize, minLOD, maxLOD int) *Catalog {
	c := &Catalog{BlockSize: blockSize, MinLOD: minLOD, MaxLOD: maxLOD}

	total := 0

	if minLOD == 0 {
		lod0Count := c.loadLod0Block()
		total += lod0Count
		for i := 0; i < 16; i++ {
			c.BorderStarts = append(c.BorderStarts, total-lod0Count)
			c.BorderSizes = append(c.BorderSizes, lod0Count)
		}
		c.CenterStarts = append(c.CenterStarts, 0)
		c.CenterSizes = append(c.CenterSizes, 0)
	}

	if minLOD == 0 || minLOD == 1 {
		for i := 0; i < 16; i++ {
			lod1Count := c.loadLod1Block(i)
			total += lod1Count
			c.BorderStarts = append(c.BorderStarts, total-lod1Count)
			c.BorderSizes = append(c.BorderSizes, lod1Count)
		}
		c.CenterStarts = append(c.CenterStarts, 0)
		c.CenterSizes = append(c.CenterSizes, 0)
	}

	start := maxInt(minLOD, 2)
	for lod := start; lod <= maxLOD; lod++ {
		borderCount := c.loadBorderAreaForLod(lod, total)
		total += borderCount

		centerCount := c.loadCenterAreaForLod(lod)
		total += centerCount
		c.CenterStarts = append(c.CenterStarts, total-centerCount)
	}

	return c
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (c *Catalog) pushIndex(x, y int) {
	c.Indices = append(c.Indices, uint32(y*c.BlockSize+x))
}

func (c *Catalog) restart() {
	c.Indices = append(c.Indices, RestartIndex)
}

// loadLod0Block emits the single 2x2 quad covering the whole block: the
// coarsest possible LOD has no interior structure at all.
func (c *Catalog) loadLod0Block() int {
	b := c.BlockSize - 1
	c.pushIndex(0, 0)
	c.pushIndex(0, b)
	c.pushIndex(b, 0)
	c.pushIndex(b, b)
	c.restart()
	return 5
}

// loadLod1Block emits the single LOD-1 (3x3 sample) block for one of the 16
// border configurations. LOD 1 has no separate center region, so the whole
// block is one border segment built from this 16-way case split, ported
// directly from the reference geometry.
func (c *Catalog) loadLod1Block(configuration int) int {
	count := 0
	b := c.BlockSize - 1
	step := 1 << (c.MaxLOD - 1)

	switch {
	case configuration == 0b1111:
		c.pushIndex(0, 0)
		c.pushIndex(step, step)
		c.pushIndex(b, 0)
		c.pushIndex(b, b)
		c.restart()

		c.pushIndex(0, 0)
		c.pushIndex(0, b)
		c.pushIndex(step, step)
		c.pushIndex(b, b)
		c.restart()
		count += 10

	case configuration == 0b1110 || configuration == 0b1101 || configuration == 0b1011 || configuration == 0b0111:
		if configuration == 0b1110 || configuration == 0b0111 {
			c.pushIndex(0, 0)
			c.pushIndex(step, step)
			c.pushIndex(b, 0)
			c.pushIndex(b, b)
			c.restart()
			count += 5

			if configuration == 0b1110 {
				c.pushIndex(b, b)
				c.pushIndex(step, step)
				c.pushIndex(step, b)
				c.pushIndex(0, b)
				c.restart()

				c.pushIndex(0, b)
				c.pushIndex(step, step)
				c.pushIndex(0, 0)
				c.restart()
				count += 9
			} else {
				c.pushIndex(0, b)
				c.pushIndex(step, step)
				c.pushIndex(0, step)
				c.pushIndex(0, 0)
				c.restart()

				c.pushIndex(b, b)
				c.pushIndex(step, step)
				c.pushIndex(0, b)
				c.restart()
				count += 9
			}
		} else {
			c.pushIndex(0, 0)
			c.pushIndex(0, b)
			c.pushIndex(step, step)
			c.pushIndex(b, b)
			c.restart()
			count += 5

			if configuration == 0b1101 {
				c.pushIndex(0, 0)
				c.pushIndex(step, step)
				c.pushIndex(step, 0)
				c.pushIndex(b, 0)
				c.restart()

				c.pushIndex(step, step)
				c.pushIndex(b, b)
				c.pushIndex(b, 0)
				c.restart()
				count += 9
			} else {
				c.pushIndex(b, 0)
				c.pushIndex(step, step)
				c.pushIndex(b, step)
				c.pushIndex(b, b)
				c.restart()

				c.pushIndex(0, 0)
				c.pushIndex(step, step)
				c.pushIndex(b, 0)
				c.restart()
				count += 9
			}
		}

	case configuration == 0b0011 || configuration == 0b1100:
		if configuration == 0b0011 {
			c.pushIndex(b, step)
			c.pushIndex(b, 0)
			c.pushIndex(step, step)
			c.pushIndex(0, 0)
			c.pushIndex(0, b)
			c.restart()

			c.pushIndex(0, step)
			c.pushIndex(0, b)
			c.pushIndex(step, step)
			c.pushIndex(b, b)
			c.pushIndex(b, step)
			c.restart()
			count += 12
		} else {
			c.pushIndex(step, 0)
			c.pushIndex(0, 0)
			c.pushIndex(step, step)
			c.pushIndex(0, b)
			c.pushIndex(step, b)
			c.restart()

			c.pushIndex(step, b)
			c.pushIndex(b, b)
			c.pushIndex(step, step)
			c.pushIndex(b, 0)
			c.pushIndex(step, 0)
			c.restart()
			count += 12
		}

	case configuration&(borderLeft|borderTop) == 0:
		count += c.loadBottomRightCorner(step, configuration)
		c.pushIndex(0, 0)
		c.pushIndex(0, step)
		c.pushIndex(step, 0)
		c.pushIndex(step, step)
		c.restart()
		count += 5

	case configuration&(borderTop|borderRight) == 0:
		count += c.loadBottomLeftCorner(step, configuration)
		c.pushIndex(step, 0)
		c.pushIndex(step, step)
		c.pushIndex(b, 0)
		c.pushIndex(b, step)
		c.restart()
		count += 5

	case configuration&(borderRight|borderBottom) == 0:
		count += c.loadTopLeftCorner(step, configuration)
		c.pushIndex(step, step)
		c.pushIndex(step, b)
		c.pushIndex(b, step)
		c.pushIndex(b, b)
		c.restart()
		count += 5

	case configuration&(borderBottom|borderLeft) == 0:
		count += c.loadTopRightCorner(step, configuration)
		c.pushIndex(0, step)
		c.pushIndex(0, b)
		c.pushIndex(step, step)
		c.pushIndex(step, b)
		c.restart()
		count += 5
	}

	return count
}

// loadCenterAreaForLod emits the interior triangle strips for a LOD whose
// step size leaves at least one interior vertex row, ported directly from
// the reference implementation's nested loop.
func (c *Catalog) loadCenterAreaForLod(lod int) int {
	step := 1 << (c.MaxLOD - lod)
	count := 0
	b := c.BlockSize

	for i := step; i < b-step-1; i += step {
		for j := step; j < b-step; j += step {
			c.pushIndex(j, i)
			c.pushIndex(j, i+step)
			count += 2
		}
		c.restart()
		count++
	}

	c.CenterSizes = append(c.CenterSizes, count)
	return count
}

// loadBorderAreaForLod emits all 16 border configurations for one LOD
// level, in increasing configuration order, and records their offsets
// relative to accumulatedCount (the running total index count before this
// LOD's border segments were written).
func (c *Catalog) loadBorderAreaForLod(lod, accumulatedCount int) int {
	total := 0
	for i := 0; i < 16; i++ {
		count := c.loadBorderAreaForConfiguration(lod, i)
		total += count
		accumulatedCount += count
		c.BorderStarts = append(c.BorderStarts, accumulatedCount-count)
	}
	return total
}

// loadBorderAreaForConfiguration walks the border subblocks clockwise
// starting from the top-left corner.
func (c *Catalog) loadBorderAreaForConfiguration(lod, configuration int) int {
	step := 1 << (c.MaxLOD - lod)
	count := 0

	count += c.loadTopLeftCorner(step, configuration)
	count += c.loadTopBorder(step, configuration)
	count += c.loadTopRightCorner(step, configuration)
	count += c.loadRightBorder(step, configuration)
	count += c.loadBottomRightCorner(step, configuration)
	count += c.loadBottomBorder(step, configuration)
	count += c.loadBottomLeftCorner(step, configuration)
	count += c.loadLeftBorder(step, configuration)

	c.BorderSizes = append(c.BorderSizes, count)
	return count
}

func (c *Catalog) loadTopLeftCorner(step, configuration int) int {
	switch {
	case configuration&borderLeft != 0 && configuration&borderTop != 0:
		c.pushIndex(2*step, step)
		c.pushIndex(2*step, 0)
		c.pushIndex(step, step)
		c.pushIndex(0, 0)
		c.pushIndex(0, 2*step)
		c.restart()

		c.pushIndex(step, 2*step)
		c.pushIndex(step, step)
		c.pushIndex(0, 2*step)
		c.restart()
		return 10

	case configuration&borderLeft != 0:
		c.pushIndex(step, 0)
		c.pushIndex(0, 0)
		c.pushIndex(step, step)
		c.pushIndex(0, 2*step)
		c.pushIndex(step, 2*step)
		c.restart()

		c.pushIndex(step, 0)
		c.pushIndex(step, step)
		c.pushIndex(2*step, 0)
		c.pushIndex(2*step, step)
		c.restart()
		return 11

	case configuration&borderTop != 0:
		c.pushIndex(0, step)
		c.pushIndex(0, 2*step)
		c.pushIndex(step, step)
		c.pushIndex(step, 2*step)
		c.restart()

		c.pushIndex(2*step, step)
		c.pushIndex(2*step, 0)
		c.pushIndex(step, step)
		c.pushIndex(0, 0)
		c.pushIndex(0, step)
		c.restart()
		return 11

	default:
		c.pushIndex(0, step)
		c.pushIndex(0, 2*step)
		c.pushIndex(step, step)
		c.pushIndex(step, 2*step)
		c.restart()

		c.pushIndex(0, 0)
		c.pushIndex(0, step)
		c.pushIndex(step, 0)
		c.pushIndex(step, step)
		c.pushIndex(2*step, 0)
		c.pushIndex(2*step, step)
		c.restart()
		return 12
	}
}

func (c *Catalog) loadTopRightCorner(step, configuration int) int {
	b := c.BlockSize - 1
	switch {
	case configuration&borderRight != 0 && configuration&borderTop != 0:
		c.pushIndex(b-step, 2*step)
		c.pushIndex(b, 2*step)
		c.pushIndex(b-step, step)
		c.pushIndex(b, 0)
		c.pushIndex(b-2*step, 0)
		c.restart()

		c.pushIndex(b-step, step)
		c.pushIndex(b-2*step, 0)
		c.pushIndex(b-2*step, step)
		c.restart()
		return 10

	case configuration&borderRight != 0:
		c.pushIndex(b-step, 2*step)
		c.pushIndex(b, 2*step)
		c.pushIndex(b-step, step)
		c.pushIndex(b, 0)
		c.pushIndex(b-step, 0)
		c.restart()

		c.pushIndex(b-2*step, 0)
		c.pushIndex(b-2*step, step)
		c.pushIndex(b-step, 0)
		c.pushIndex(b-step, step)
		c.restart()
		return 11

	case configuration&borderTop != 0:
		c.pushIndex(b-step, step)
		c.pushIndex(b-step, 2*step)
		c.pushIndex(b, step)
		c.pushIndex(b, 2*step)
		c.restart()

		c.pushIndex(b, step)
		c.pushIndex(b, 0)
		c.pushIndex(b-step, step)
		c.pushIndex(b-2*step, 0)
		c.pushIndex(b-2*step, step)
		c.restart()
		return 11

	default:
		c.pushIndex(b-2*step, 0)
		c.pushIndex(b-2*step, step)
		c.pushIndex(b-step, 0)
		c.pushIndex(b-step, step)
		c.pushIndex(b, 0)
		c.pushIndex(b, step)
		c.restart()

		c.pushIndex(b-step, step)
		c.pushIndex(b-step, 2*step)
		c.pushIndex(b, step)
		c.pushIndex(b, 2*step)
		c.restart()
		return 12
	}
}

func (c *Catalog) loadBottomRightCorner(step, configuration int) int {
	b := c.BlockSize - 1
	switch {
	case configuration&borderRight != 0 && configuration&borderBottom != 0:
		c.pushIndex(b-2*step, b-step)
		c.pushIndex(b-2*step, b)
		c.pushIndex(b-step, b-step)
		c.pushIndex(b, b)
		c.pushIndex(b, b-2*step)
		c.restart()

		c.pushIndex(b-step, b-2*step)
		c.pushIndex(b-step, b-step)
		c.pushIndex(b, b-2*step)
		c.restart()
		return 10

	case configuration&borderRight != 0:
		c.pushIndex(b-step, b)
		c.pushIndex(b, b)
		c.pushIndex(b-step, b-step)
		c.pushIndex(b, b-2*step)
		c.pushIndex(b-step, b-2*step)
		c.restart()

		c.pushIndex(b-2*step, b-step)
		c.pushIndex(b-2*step, b)
		c.pushIndex(b-step, b-step)
		c.pushIndex(b-step, b)
		c.restart()
		return 11

	case configuration&borderBottom != 0:
		c.pushIndex(b-step, b-2*step)
		c.pushIndex(b-step, b-step)
		c.pushIndex(b, b-2*step)
		c.pushIndex(b, b-step)
		c.restart()

		c.pushIndex(b-2*step, b-step)
		c.pushIndex(b-2*step, b)
		c.pushIndex(b-step, b-step)
		c.pushIndex(b, b)
		c.pushIndex(b, b-step)
		c.restart()
		return 11

	default:
		c.pushIndex(b-step, b-2*step)
		c.pushIndex(b-step, b-step)
		c.pushIndex(b, b-2*step)
		c.pushIndex(b, b-step)
		c.restart()

		c.pushIndex(b, b)
		c.pushIndex(b, b-step)
		c.pushIndex(b-step, b)
		c.pushIndex(b-step, b-step)
		c.pushIndex(b-2*step, b)
		c.pushIndex(b-2*step, b-step)
		c.restart()
		return 12
	}
}

func (c *Catalog) loadBottomLeftCorner(step, configuration int) int {
	b := c.BlockSize - 1
	switch {
	case configuration&borderLeft != 0 && configuration&borderBottom != 0:
		c.pushIndex(step, b-2*step)
		c.pushIndex(0, b-2*step)
		c.pushIndex(step, b-step)
		c.pushIndex(0, b)
		c.pushIndex(2*step, b)
		c.restart()

		c.pushIndex(step, b-step)
		c.pushIndex(2*step, b)
		c.pushIndex(2*step, b-step)
		c.restart()
		return 10

	case configuration&borderLeft != 0:
		c.pushIndex(2*step, b)
		c.pushIndex(2*step, b-step)
		c.pushIndex(step, b)
		c.pushIndex(step, b-step)
		c.restart()

		c.pushIndex(step, b-2*step)
		c.pushIndex(0, b-2*step)
		c.pushIndex(step, b-step)
		c.pushIndex(0, b)
		c.pushIndex(step, b)
		c.restart()
		return 11

	case configuration&borderBottom != 0:
		c.pushIndex(0, b-step)
		c.pushIndex(0, b)
		c.pushIndex(step, b-step)
		c.pushIndex(2*step, b)
		c.pushIndex(2*step, b-step)
		c.restart()

		c.pushIndex(0, b-2*step)
		c.pushIndex(0, b-step)
		c.pushIndex(step, b-2*step)
		c.pushIndex(step, b-step)
		c.restart()
		return 11

	default:
		c.pushIndex(2*step, b)
		c.pushIndex(2*step, b-step)
		c.pushIndex(step, b)
		c.pushIndex(step, b-step)
		c.pushIndex(0, b)
		c.pushIndex(0, b-step)
		c.restart()

		c.pushIndex(0, b-2*step)
		c.pushIndex(0, b-step)
		c.pushIndex(step, b-2*step)
		c.pushIndex(step, b-step)
		c.restart()
		return 12
	}
}

// loadTopBorder emits the top edge strip between the two top corners. When
// the neighbor above is coarser (borderTop set), every other step is
// stitched into a 5-index fan so the edge matches the neighbor's vertex
// density; otherwise it is a plain strip at this block's own density.
func (c *Catalog) loadTopBorder(step, configuration int) int {
	count := 0
	b := c.BlockSize

	if configuration&borderTop != 0 {
		for j := step * 2; j < b-step*3; j += step * 2 {
			c.pushIndex(j+2*step, step)
			c.pushIndex(j+2*step, 0)
			c.pushIndex(j+step, step)
			c.pushIndex(j, 0)
			c.pushIndex(j, step)
			c.restart()
			count += 6
		}
	} else {
		for j := step * 2; j < b-step*2; j += step {
			c.pushIndex(j, 0)
			c.pushIndex(j, step)
			count += 2
		}
	}
	c.restart()
	count++
	return count
}

func (c *Catalog) loadRightBorder(step, configuration int) int {
	count := 0
	b := c.BlockSize

	if configuration&borderRight != 0 {
		for i := step * 2; i < b-step*3; i += step * 2 {
			c.pushIndex(b-1-step, i+2*step)
			c.pushIndex(b-1, i+2*step)
			c.pushIndex(b-1-step, i+step)
			c.pushIndex(b-1, i)
			c.pushIndex(b-1-step, i)
			c.restart()
			count += 6
		}
	} else {
		for i := step * 2; i < b-step*2; i += step {
			c.pushIndex(b-1, i)
			c.pushIndex(b-1-step, i)
			count += 2
		}
	}
	c.restart()
	count++
	return count
}

func (c *Catalog) loadBottomBorder(step, configuration int) int {
	count := 0
	b := c.BlockSize

	if configuration&borderBottom != 0 {
		for j := step * 2; j < b-step*3; j += step * 2 {
			c.pushIndex(j, b-step-1)
			c.pushIndex(j, b-1)
			c.pushIndex(j+step, b-step-1)
			c.pushIndex(j+2*step, b-1)
			c.pushIndex(j+2*step, b-step-1)
			c.restart()
			count += 6
		}
	} else {
		for j := step * 2; j < b-step*2; j += step {
			c.pushIndex(j, b-1-step)
			c.pushIndex(j, b-1)
			count += 2
		}
	}
	c.restart()
	count++
	return count
}

func (c *Catalog) loadLeftBorder(step, configuration int) int {
	count := 0
	b := c.BlockSize

	if configuration&borderLeft != 0 {
		for i := step * 2; i < b-step*3; i += step * 2 {
			c.pushIndex(step, i)
			c.pushIndex(0, i)
			c.pushIndex(step, i+step)
			c.pushIndex(0, i+2*step)
			c.pushIndex(step, i+2*step)
			c.restart()
			count += 6
		}
	} else {
		for i := step * 2; i < b-step*2; i += step {
			c.pushIndex(step, i)
			c.pushIndex(0, i)
			count += 2
		}
	}
	c.restart()
	count++
	return count
}
