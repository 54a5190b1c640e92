package glterrain

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/draw"

	"render-engine/terrain"
)

// UploadHeightmap mirrors hm's sample grid onto the GPU as a single-channel
// R16 texture, and reports the resulting texture id back to hm so its
// host/device lifecycle tracking stays accurate.
func UploadHeightmap(hm *terrain.Heightmap) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	filter := int32(gl.LINEAR)
	if hm.Filter() == terrain.FilterNearest {
		filter = gl.NEAREST
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R16, int32(hm.Width()), int32(hm.Height()), 0, gl.RED, gl.UNSIGNED_SHORT, gl.Ptr(hm.Samples()))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	hm.MarkDeviceLoaded(tex)
	return tex
}

// UploadOverlay decodes the image at path, resizes it to at most maxSize on
// its longest side with Catmull-Rom resampling, and uploads it as an 8-bit
// RGBA texture. Overlay textures are a purely cosmetic colour wash over the
// terrain, so a soft downscale is preferable to paying for a full-resolution
// upload of an asset that may be much larger than the terrain itself.
func UploadOverlay(path string, maxSize int) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &terrain.AssetError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return 0, &terrain.AssetError{Path: path, Op: "decode", Err: fmt.Errorf("%w: %v", terrain.ErrDecodeFailed, err)}
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxSize || h > maxSize {
		scale := float64(maxSize) / float64(max(w, h))
		w = int(float64(w) * scale)
		h = int(float64(h) * scale)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(dst.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
