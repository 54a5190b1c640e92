package terrain

import "render-engine/math"

// Plane is a half-space ax + by + cz + d = 0. Normal points into the
// "inside" of whatever volume the plane bounds.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// DistanceTo returns the signed distance from pt to the plane. Positive
// means pt is on the inside (same side as Normal).
func (p Plane) DistanceTo(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes of a view frustum: left, right, bottom,
// top, near, far.
type Frustum struct {
	Planes [6]Plane
}

// FrustumFromVP extracts the six frustum planes from a view-projection
// matrix via the standard Gribb/Hartmann method.
//
// Convention: this engine stores matrices as [col][row] and passes them to
// GLSL with transpose=false, so the GLSL matrix is the transpose of the Go
// matrix. Gribb/Hartmann operates on the GLSL matrix rows, which correspond
// to Go matrix columns (vp[0..3][col]); r0..r3 below hold those columns.
func FrustumFromVP(vp math.Mat4) Frustum {
	r0 := math.Vec4{X: vp[0][0], Y: vp[1][0], Z: vp[2][0], W: vp[3][0]}
	r1 := math.Vec4{X: vp[0][1], Y: vp[1][1], Z: vp[2][1], W: vp[3][1]}
	r2 := math.Vec4{X: vp[0][2], Y: vp[1][2], Z: vp[2][2], W: vp[3][2]}
	r3 := math.Vec4{X: vp[0][3], Y: vp[1][3], Z: vp[2][3], W: vp[3][3]}

	var f Frustum
	f.Planes[0] = normalizePlane(r3.X+r0.X, r3.Y+r0.Y, r3.Z+r0.Z, r3.W+r0.W) // left
	f.Planes[1] = normalizePlane(r3.X-r0.X, r3.Y-r0.Y, r3.Z-r0.Z, r3.W-r0.W) // right
	f.Planes[2] = normalizePlane(r3.X+r1.X, r3.Y+r1.Y, r3.Z+r1.Z, r3.W+r1.W) // bottom
	f.Planes[3] = normalizePlane(r3.X-r1.X, r3.Y-r1.Y, r3.Z-r1.Z, r3.W-r1.W) // top
	f.Planes[4] = normalizePlane(r3.X+r2.X, r3.Y+r2.Y, r3.Z+r2.Z, r3.W+r2.W) // near
	f.Planes[5] = normalizePlane(r3.X-r2.X, r3.Y-r2.Y, r3.Z-r2.Z, r3.W-r2.W) // far
	return f
}

func normalizePlane(a, b, c, d float32) Plane {
	l := math.Vec3{X: a, Y: b, Z: c}.Length()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: math.Vec3{X: a / l, Y: b / l, Z: c / l}, D: d / l}
}

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max math.Vec3
}

// IntersectsFrustum returns false if the AABB is entirely outside any one of
// the six planes (the "positive vertex" test: for each plane, the corner
// most aligned with the plane normal is the one most likely to be inside).
func (box AABB) IntersectsFrustum(f *Frustum) bool {
	for i := 0; i < 6; i++ {
		p := f.Planes[i]
		px := box.Max.X
		if p.Normal.X < 0 {
			px = box.Min.X
		}
		py := box.Max.Y
		if p.Normal.Y < 0 {
			py = box.Min.Y
		}
		pz := box.Max.Z
		if p.Normal.Z < 0 {
			pz = box.Min.Z
		}
		if p.DistanceTo(math.Vec3{X: px, Y: py, Z: pz}) < 0 {
			return false
		}
	}
	return true
}
