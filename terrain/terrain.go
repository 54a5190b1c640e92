package terrain

// Terrain is implemented by every renderable terrain strategy in this
// package (GeoMipMapping and the brute-force Naive reference). Keeping it
// as an interface rather than a base type avoids the GeoMipMapping <->
// Block <-> Terrain pointer cycle a shared base struct would otherwise
// need: a Block never needs to reach back up to its owning terrain, only
// the terrain's own methods ever operate on both together.
//
// Every method takes the GPU it should render through explicitly rather
// than storing one, so the LOD/culling/catalog logic underneath stays
// mockable in tests that never touch a graphics context.
type Terrain interface {
	// LoadBuffers uploads vertex/index/texture data via gpu. Must be
	// called once, from the thread holding the GL context, before the
	// first Render.
	LoadBuffers(gpu GPU)

	// UnloadBuffers releases every GPU handle this terrain owns. Safe to
	// call at most once after LoadBuffers; calling it twice is a
	// programmer error.
	UnloadBuffers(gpu GPU)

	// Render draws the terrain from camera's point of view.
	Render(gpu GPU, camera *Camera)

	Width() int
	Height() int
}
