package terrain

import (
	"testing"

	"render-engine/math"
)

func TestNewCameraFacesYawZero(t *testing.T) {
	c := NewCamera(math.Vec3{}, math.Vec3{Y: 1}, 0.1, 100, 1.0, 0, 0)
	// Yaw=0, pitch=0: front should point along +X with no vertical tilt.
	if c.Front.Y != 0 {
		t.Errorf("expected level front vector, got Y=%v", c.Front.Y)
	}
	if c.Front.X <= 0 {
		t.Errorf("expected front.X > 0 at yaw=0, got %v", c.Front.X)
	}
}

func TestCameraLookClampsPitch(t *testing.T) {
	c := NewCamera(math.Vec3{}, math.Vec3{Y: 1}, 0.1, 100, 1.0, 0, 0)
	c.Look(0, 1000)
	if c.Pitch > pitchLimit {
		t.Errorf("expected pitch clamped to %v, got %v", pitchLimit, c.Pitch)
	}
	c.Look(0, -2000)
	if c.Pitch < -pitchLimit {
		t.Errorf("expected pitch clamped to %v, got %v", -pitchLimit, c.Pitch)
	}
}

func TestCameraMoveForwardAdvancesAlongFront(t *testing.T) {
	c := NewCamera(math.Vec3{}, math.Vec3{Y: 1}, 0.1, 100, 1.0, 0, 0)
	c.MoveSpeed = 1
	before := c.Position
	c.MoveForward(1, false)
	after := c.Position

	moved := after.Sub(before)
	expected := c.Front.Mul(1)
	if moved.X != expected.X || moved.Y != expected.Y || moved.Z != expected.Z {
		t.Errorf("expected displacement %v, got %v", expected, moved)
	}
}

func TestCameraBoostedMoveIsFaster(t *testing.T) {
	c1 := NewCamera(math.Vec3{}, math.Vec3{Y: 1}, 0.1, 100, 1.0, 0, 0)
	c1.MoveSpeed = 1
	c1.SpeedBoost = 3
	c2 := NewCamera(math.Vec3{}, math.Vec3{Y: 1}, 0.1, 100, 1.0, 0, 0)
	c2.MoveSpeed = 1
	c2.SpeedBoost = 3

	c1.MoveForward(1, false)
	c2.MoveForward(1, true)

	d1 := c1.Position.Sub(math.Vec3{}).Length()
	d2 := c2.Position.Sub(math.Vec3{}).Length()
	if d2 <= d1 {
		t.Errorf("expected boosted move to travel further: normal=%v boosted=%v", d1, d2)
	}
}

func TestCameraFreezeSnapshotsPositionAndFrustum(t *testing.T) {
	c := NewCamera(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{Y: 1}, 0.1, 100, 1.0, 0, 0)
	c.RefreshFrustum()
	c.SetFrozen(true)
	snapshot := *c.EffectiveFrustum()

	c.Position = math.Vec3{X: 99, Y: 99, Z: 99}
	c.RefreshFrustum() // must be a no-op while frozen

	if c.EffectivePosition() != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("expected frozen position to stay (1,2,3), got %v", c.EffectivePosition())
	}
	if *c.EffectiveFrustum() != snapshot {
		t.Errorf("expected frozen frustum to stay at the snapshot taken when freezing")
	}

	c.SetFrozen(false)
	if c.EffectivePosition() != c.Position {
		t.Errorf("expected unfrozen EffectivePosition to track live Position")
	}
}
