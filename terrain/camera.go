package terrain

import (
	gomath "math"

	"render-engine/math"
)

const (
	defaultMoveSpeed  = 6.0
	defaultSpeedBoost = 3.0
	pitchLimit        = 89.0
)

// Camera is a yaw/pitch perspective viewpoint. It derives its basis vectors,
// view matrix and frustum from position/yaw/pitch/zoom, and can be frozen so
// that culling and LOD selection keep using a snapshotted frustum while the
// live camera continues to move — useful for visually debugging the culling
// pipeline from outside it.
type Camera struct {
	Position math.Vec3
	WorldUp  math.Vec3

	Yaw, Pitch float32 // degrees
	Zoom       float32 // vertical field of view, degrees

	ZNear, ZFar, AspectRatio float32

	Front, Right, Up math.Vec3

	MoveSpeed  float32
	SpeedBoost float32

	flyOrigin    math.Vec3
	flyDirection math.Vec3
	lookFromYaw  float32

	frozen       bool
	frozenPos    math.Vec3
	frozenFrustum Frustum
}

// NewCamera constructs a camera at position, looking roughly along
// yaw/pitch, matching the reference implementation's constructor parameter
// order.
func NewCamera(position, worldUp math.Vec3, zNear, zFar, aspectRatio, yaw, pitch float32) *Camera {
	c := &Camera{
		Position:    position,
		WorldUp:     worldUp,
		Yaw:         yaw,
		Pitch:       pitch,
		Zoom:        45,
		ZNear:       zNear,
		ZFar:        zFar,
		AspectRatio: aspectRatio,
		MoveSpeed:   defaultMoveSpeed,
		SpeedBoost:  defaultSpeedBoost,
	}
	c.updateCameraVectors()
	return c
}

func deg2rad(d float32) float32 { return d * float32(gomath.Pi) / 180 }

// updateCameraVectors recomputes Front/Right/Up from Yaw/Pitch. The trig
// layout matches the reference camera exactly: front.y follows pitch alone,
// so pitch=±90 looks straight up/down regardless of yaw.
func (c *Camera) updateCameraVectors() {
	yawR, pitchR := deg2rad(c.Yaw), deg2rad(c.Pitch)
	front := math.Vec3{
		X: float32(gomath.Cos(float64(yawR)) * gomath.Cos(float64(pitchR))),
		Y: float32(gomath.Sin(float64(pitchR))),
		Z: float32(gomath.Sin(float64(yawR)) * gomath.Cos(float64(pitchR))),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// ViewMatrix builds the look-at matrix for the live (never frozen) camera
// state.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix builds the perspective matrix from Zoom/AspectRatio/
// ZNear/ZFar.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Mat4Perspective(deg2rad(c.Zoom), c.AspectRatio, c.ZNear, c.ZFar)
}

// ViewProjMatrix returns the combined view-then-projection transform. With
// this package's row-vector convention (p' = p·M) that is
// ViewMatrix.Mul(ProjectionMatrix).
func (c *Camera) ViewProjMatrix() math.Mat4 {
	return c.ViewMatrix().Mul(c.ProjectionMatrix())
}

// Frozen reports whether culling/LOD should be using the snapshotted state.
func (c *Camera) Frozen() bool { return c.frozen }

// SetFrozen toggles the frozen snapshot. Freezing (false -> true) captures
// the current position and frustum; unfreezing simply stops consulting the
// snapshot. The live camera keeps moving either way.
func (c *Camera) SetFrozen(frozen bool) {
	if frozen && !c.frozen {
		c.frozenPos = c.Position
		c.frozenFrustum = FrustumFromVP(c.ViewProjMatrix())
	}
	c.frozen = frozen
}

// RefreshFrustum recomputes the live frustum. Called once per frame, before
// culling, when not frozen — culling always reads EffectiveFrustum, which
// falls back to the snapshot while frozen.
func (c *Camera) RefreshFrustum() {
	if c.frozen {
		return
	}
	c.frozenFrustum = FrustumFromVP(c.ViewProjMatrix())
}

// EffectivePosition is the position LOD distance calculations should use:
// the live position, unless frozen, in which case the snapshotted one.
func (c *Camera) EffectivePosition() math.Vec3 {
	if c.frozen {
		return c.frozenPos
	}
	return c.Position
}

// EffectiveFrustum is the frustum culling should test against.
func (c *Camera) EffectiveFrustum() *Frustum {
	return &c.frozenFrustum
}

// InsideFrustum reports whether the AABB [min,max] is not entirely outside
// any of the camera's current (possibly frozen) frustum planes.
func (c *Camera) InsideFrustum(min, max math.Vec3) bool {
	return AABB{Min: min, Max: max}.IntersectsFrustum(c.EffectiveFrustum())
}

// --- Nudge actions, grounded on the reference camera's processKeyboard. ---

func (c *Camera) speed(boosted bool, dt float32) float32 {
	if boosted {
		return c.MoveSpeed * c.SpeedBoost * dt
	}
	return c.MoveSpeed * dt
}

func (c *Camera) MoveForward(dt float32, boosted bool) {
	c.Position = c.Position.Add(c.Front.Mul(c.speed(boosted, dt)))
}

func (c *Camera) MoveBackward(dt float32, boosted bool) {
	c.Position = c.Position.Sub(c.Front.Mul(c.speed(boosted, dt)))
}

func (c *Camera) StrafeLeft(dt float32, boosted bool) {
	c.Position = c.Position.Sub(c.Right.Mul(c.speed(boosted, dt)))
}

func (c *Camera) StrafeRight(dt float32, boosted bool) {
	c.Position = c.Position.Add(c.Right.Mul(c.speed(boosted, dt)))
}

func (c *Camera) MoveUp(dt float32, boosted bool) {
	c.Position = c.Position.Add(c.Up.Mul(c.speed(boosted, dt)))
}

func (c *Camera) MoveDown(dt float32, boosted bool) {
	c.Position = c.Position.Sub(c.Up.Mul(c.speed(boosted, dt)))
}

func (c *Camera) LookUp() {
	c.Pitch = minF32(pitchLimit, c.Pitch+1)
	c.updateCameraVectors()
}

func (c *Camera) LookDown() {
	c.Pitch = maxF32(-pitchLimit, c.Pitch-1)
	c.updateCameraVectors()
}

func (c *Camera) LookLeft() {
	c.Yaw -= 1
	c.updateCameraVectors()
}

func (c *Camera) LookRight() {
	c.Yaw += 1
	c.updateCameraVectors()
}

// Look applies a continuous mouse-look delta in degrees, clamping pitch.
func (c *Camera) Look(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch = clampF32(c.Pitch+deltaPitch, -pitchLimit, pitchLimit)
	c.updateCameraVectors()
}

// BeginFly arms a linear flight from the current position toward target,
// to be driven by successive LerpFly(t) calls with t in [0,1].
func (c *Camera) BeginFly(target math.Vec3) {
	c.flyOrigin = c.Position
	c.flyDirection = target.Sub(c.Position)
}

// LerpFly moves the camera to flyOrigin + flyDirection*t.
func (c *Camera) LerpFly(t float32) {
	c.Position = c.flyOrigin.Add(c.flyDirection.Mul(t))
}

// BeginLook arms a one-revolution look flight starting from the current yaw.
func (c *Camera) BeginLook() {
	c.lookFromYaw = c.Yaw
}

// LerpLook sweeps yaw through a full 360 degree revolution as t goes 0->1.
func (c *Camera) LerpLook(t float32) {
	c.Yaw = c.lookFromYaw + 360*t
	c.updateCameraVectors()
}

func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampF32(v, lo, hi float32) float32 {
	return maxF32(lo, minF32(hi, v))
}
