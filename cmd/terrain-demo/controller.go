package main

import (
	"fmt"

	"render-engine/core"
	"render-engine/terrain"
)

// CameraController maps window input onto a terrain.Camera and the
// per-terrain debug toggles (freeze, LOD, culling). It keeps its own
// debounce state for keys that should fire once per press rather than
// repeat every frame they're held.
type CameraController struct {
	lookSpeed      float32
	lastMouseX     float64
	lastMouseY     float64
	firstMouse     bool
	rightMouseDown bool

	freezeKeyWasDown bool
	lodKeyWasDown    bool
	cullKeyWasDown   bool
	frozen           bool
	lodOn            bool
	cullOn           bool

	// OnToggleLOD and OnToggleCull let main wire these debounced key
	// presses into the concrete terrain (only GeoMipMapping has LOD/
	// culling toggles; Naive has neither).
	OnToggleLOD  func(on bool)
	OnToggleCull func(on bool)
}

func NewCameraController() *CameraController {
	return &CameraController{
		lookSpeed:  0.12,
		firstMouse: true,
		lodOn:      true,
		cullOn:     true,
	}
}

func (cc *CameraController) Update(window *core.Window, camera *terrain.Camera, deltaTime float32) {
	boosted := window.IsKeyPressed(core.KeyLeftShift)

	if window.IsKeyPressed(core.KeyW) {
		camera.MoveForward(deltaTime, boosted)
	}
	if window.IsKeyPressed(core.KeyS) {
		camera.MoveBackward(deltaTime, boosted)
	}
	if window.IsKeyPressed(core.KeyA) {
		camera.StrafeLeft(deltaTime, boosted)
	}
	if window.IsKeyPressed(core.KeyD) {
		camera.StrafeRight(deltaTime, boosted)
	}
	if window.IsKeyPressed(core.KeySpace) {
		camera.MoveUp(deltaTime, boosted)
	}
	if window.IsKeyPressed(core.KeyLeftControl) {
		camera.MoveDown(deltaTime, boosted)
	}

	cc.rightMouseDown = window.IsMouseButtonPressed(1)
	if cc.rightMouseDown {
		mouseX, mouseY := window.GetCursorPos()
		if cc.firstMouse {
			cc.lastMouseX, cc.lastMouseY = mouseX, mouseY
			cc.firstMouse = false
		}
		dx := float32(mouseX-cc.lastMouseX) * cc.lookSpeed
		dy := float32(cc.lastMouseY-mouseY) * cc.lookSpeed
		camera.Look(dx, dy)
		cc.lastMouseX, cc.lastMouseY = mouseX, mouseY
	} else {
		cc.firstMouse = true
	}

	fDown := window.IsKeyPressed(core.KeyF)
	if fDown && !cc.freezeKeyWasDown {
		cc.frozen = !cc.frozen
		camera.SetFrozen(cc.frozen)
		fmt.Printf("[Freeze] %s\n", onOff(cc.frozen))
	}
	cc.freezeKeyWasDown = fDown

	lDown := window.IsKeyPressed(core.KeyL)
	if lDown && !cc.lodKeyWasDown {
		cc.lodOn = !cc.lodOn
		if cc.OnToggleLOD != nil {
			cc.OnToggleLOD(cc.lodOn)
		}
		fmt.Printf("[LOD] %s\n", onOff(cc.lodOn))
	}
	cc.lodKeyWasDown = lDown

	cDown := window.IsKeyPressed(core.KeyC)
	if cDown && !cc.cullKeyWasDown {
		cc.cullOn = !cc.cullOn
		if cc.OnToggleCull != nil {
			cc.OnToggleCull(cc.cullOn)
		}
		fmt.Printf("[Culling] %s\n", onOff(cc.cullOn))
	}
	cc.cullKeyWasDown = cDown
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
