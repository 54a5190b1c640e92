package terrain

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
)

// HeightmapFilter selects the sampler filtering mode used when the
// heightmap is mirrored onto the GPU. Both nearest and linear filtering
// appear in the reference implementation with no documented preference, so
// this is an explicit, caller-chosen parameter rather than a guess.
type HeightmapFilter int

const (
	FilterNearest HeightmapFilter = iota
	FilterLinear
)

// Heightmap owns a width x height grid of 16-bit elevation samples decoded
// from a single-channel greyscale image. It is immutable after Load.
//
// The grid tracks two independent lifecycle states: hostLoaded (samples are
// resident in Go memory) and deviceLoaded (a GPU texture mirror exists,
// tracked externally by whoever uploaded it via MarkDeviceLoaded). Clear
// only drops the host copy once a device copy is known to exist, so the
// CPU/GPU ownership split never leaves the heightmap with no readable copy
// at all.
type Heightmap struct {
	width, height int
	samples       []uint16

	filter HeightmapFilter

	hostLoaded   bool
	deviceLoaded bool
	textureID    uint32
}

// Load decodes the PNG at path into a Heightmap. A 16-bit greyscale image
// is read as is; any other colour model is converted to 16-bit grey. A file
// that is not a PNG fails with ErrUnsupportedFormat, a PNG that cannot be
// decoded with ErrDecodeFailed.
func Load(path string, filter HeightmapFilter) (*Heightmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &AssetError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if errors.Is(err, image.ErrFormat) {
		return nil, &AssetError{Path: path, Op: "decode", Err: fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)}
	}
	if err != nil {
		return nil, &AssetError{Path: path, Op: "decode", Err: fmt.Errorf("%w: %v", ErrDecodeFailed, err)}
	}

	gray, ok := img.(*image.Gray16)
	if !ok {
		gray = toGray16(img)
	}

	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, &AssetError{Path: path, Op: "decode", Err: fmt.Errorf("%w: empty image", ErrUnsupportedFormat)}
	}

	samples := make([]uint16, w*h)
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			c := gray.Gray16At(bounds.Min.X+x, bounds.Min.Y+z)
			samples[z*w+x] = c.Y
		}
	}

	return &Heightmap{
		width:      w,
		height:     h,
		samples:    samples,
		filter:     filter,
		hostLoaded: true,
	}, nil
}

// toGray16 converts an arbitrary decoded image into single-channel 16-bit
// grey, for inputs that decode to a concrete type other than *image.Gray16
// (e.g. an 8-bit greyscale PNG, which the color model still widens to 16
// bits per the standard library's Gray16Model conversion).
func toGray16(img image.Image) *image.Gray16 {
	b := img.Bounds()
	out := image.NewGray16(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, color.Gray16Model.Convert(img.At(x, y)))
		}
	}
	return out
}

func (h *Heightmap) Width() int  { return h.width }
func (h *Heightmap) Height() int { return h.height }

func (h *Heightmap) Filter() HeightmapFilter { return h.filter }

// Samples exposes the raw row-major sample grid. Callers must treat it as
// read-only; it is shared, not copied.
func (h *Heightmap) Samples() []uint16 {
	return h.samples
}

// At returns the elevation sample at column x, row z. Out-of-range
// coordinates are a programmer error: the engine's invariants guarantee
// every caller has already clamped against Width/Height.
func (h *Heightmap) At(x, z int) uint16 {
	if x < 0 || x >= h.width {
		outOfBounds("heightmap x", x, h.width)
	}
	if z < 0 || z >= h.height {
		outOfBounds("heightmap z", z, h.height)
	}
	return h.samples[z*h.width+x]
}

// MarkDeviceLoaded records that a GPU texture mirror now exists, identified
// by textureID. Called by the renderer after a successful upload.
func (h *Heightmap) MarkDeviceLoaded(textureID uint32) {
	h.deviceLoaded = true
	h.textureID = textureID
}

func (h *Heightmap) TextureID() uint32   { return h.textureID }
func (h *Heightmap) HostLoaded() bool    { return h.hostLoaded }
func (h *Heightmap) DeviceLoaded() bool  { return h.deviceLoaded }

// Clear drops the host-side sample grid. It is only safe once a device copy
// exists; calling it before MarkDeviceLoaded is a configuration mistake by
// the caller and is rejected rather than silently discarding the only copy
// of the data.
func (h *Heightmap) Clear() error {
	if !h.deviceLoaded {
		return fmt.Errorf("terrain: cannot clear heightmap samples before a GPU copy exists")
	}
	h.samples = nil
	h.hostLoaded = false
	return nil
}
