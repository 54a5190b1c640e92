// Command terrain-demo is a playable GeoMipMapping terrain viewer: it loads
// a heightmap, builds either the continuous-LOD engine or the brute-force
// Naive reference, and lets the viewer fly around it with WASD + mouse look.
package main

import (
	"fmt"
	"time"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"render-engine/applog"
	"render-engine/config"
	"render-engine/core"
	"render-engine/internal/glterrain"
	"render-engine/math"
	"render-engine/terrain"
)

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("config: %v\n", err)
		return
	}

	if err := applog.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Printf("logger: %v\n", err)
		return
	}
	defer applog.Sync()
	applog.Info("starting terrain-demo", zap.String("heightmap", cfg.Terrain.HeightmapPath))

	windowConfig := core.DefaultWindowConfig()
	windowConfig.Title = "Terrain Demo"
	windowConfig.Width = cfg.Window.Width
	windowConfig.Height = cfg.Window.Height
	windowConfig.Fullscreen = cfg.Window.Fullscreen
	windowConfig.VSync = cfg.Window.VSync

	window, err := core.NewWindow(windowConfig)
	if err != nil {
		applog.Fatal("window creation failed", zap.Error(err))
	}
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		applog.Fatal("gl init failed", zap.Error(err))
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PRIMITIVE_RESTART)
	gl.PrimitiveRestartIndex(terrain.RestartIndex)

	driver, err := glterrain.NewDriver()
	if err != nil {
		applog.Fatal("shader program link failed", zap.Error(err))
	}
	defer driver.Delete()

	filter := terrain.FilterLinear
	if cfg.Terrain.HeightmapFilter == "nearest" {
		filter = terrain.FilterNearest
	}
	hm, err := terrain.Load(cfg.Terrain.HeightmapPath, filter)
	if err != nil {
		applog.Fatal("heightmap load failed", zap.Error(err))
	}

	if cfg.Terrain.OverlayPath != "" {
		overlayTex, err := glterrain.UploadOverlay(cfg.Terrain.OverlayPath, 2048)
		if err != nil {
			applog.Warn("overlay load failed, continuing without it", zap.Error(err))
		} else {
			driver.SetOverlay(overlayTex)
		}
	}

	var terr terrain.Terrain
	var gmm *terrain.GeoMipMapping
	if cfg.Terrain.Naive {
		terr = terrain.NewNaive(hm, cfg.Terrain.XZScale, cfg.Terrain.YScale)
	} else {
		gmm, err = terrain.NewGeoMipMapping(hm, cfg.Terrain.XZScale, cfg.Terrain.YScale, cfg.Terrain.BlockSize, cfg.Terrain.MinLOD, cfg.Terrain.MaxLOD)
		if err != nil {
			applog.Fatal("terrain construction failed", zap.Error(err))
		}
		gmm.BaseDistance = cfg.Terrain.BaseDistance
		gmm.LODActive = cfg.Terrain.LODActive
		gmm.FrustumCullingActive = cfg.Terrain.FrustumCullActive
		if cfg.Terrain.GeometricLadder {
			gmm.Ladder = terrain.LadderGeometric
		} else {
			gmm.Ladder = terrain.LadderLinear
		}
		terr = gmm
	}
	terr.LoadBuffers(driver)
	defer terr.UnloadBuffers(driver)

	aspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)
	camera := terrain.NewCamera(
		math.Vec3{X: cfg.Camera.StartX, Y: cfg.Camera.StartY, Z: cfg.Camera.StartZ},
		math.Vec3{X: 0, Y: 1, Z: 0},
		cfg.Camera.ZNear, cfg.Camera.ZFar, aspect,
		cfg.Camera.Yaw, cfg.Camera.Pitch,
	)
	camera.MoveSpeed = cfg.Camera.MoveSpeed

	controller := NewCameraController()
	if gmm != nil {
		controller.OnToggleLOD = func(on bool) { gmm.LODActive = on }
		controller.OnToggleCull = func(on bool) { gmm.FrustumCullingActive = on }
	}
	debugOverlay := &DebugOverlay{}

	frameCount := 0
	displayFPS := 0
	lastTime := time.Now()
	lastFrame := time.Now()

	applog.Info("controls: WASD move, right-mouse-drag look, F toggle freeze, L toggle LOD, C toggle culling, ESC quit")

	for !window.ShouldClose() {
		window.PollEvents()
		if window.IsKeyPressed(core.KeyEscape) {
			break
		}

		now := time.Now()
		deltaTime := float32(now.Sub(lastFrame).Seconds())
		if deltaTime > 0.05 {
			deltaTime = 0.05
		}
		lastFrame = now

		controller.Update(window, camera, deltaTime)

		gl.ClearColor(0.45, 0.62, 0.8, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		terr.Render(driver, camera)

		frameCount++
		if now.Sub(lastTime).Seconds() >= 1.0 {
			displayFPS = frameCount
			frameCount = 0
			lastTime = now
			window.SetTitle(fmt.Sprintf("Terrain Demo | FPS: %d | pos (%.1f, %.1f, %.1f)",
				displayFPS, camera.EffectivePosition().X, camera.EffectivePosition().Y, camera.EffectivePosition().Z))

			debugOverlay.Clear()
			debugOverlay.AddLine("fps=%d pos=(%.1f, %.1f, %.1f)", displayFPS,
				camera.EffectivePosition().X, camera.EffectivePosition().Y, camera.EffectivePosition().Z)
			if gmm != nil {
				debugOverlay.AddLine("blocks=%d lodHistogram=%v", blockCount(gmm), lodHistogram(gmm))
			}
			applog.Debug(debugOverlay.GetText())
		}

		window.SwapBuffers()
	}

	applog.Info("exiting terrain-demo")
}

func blockCount(gmm *terrain.GeoMipMapping) int {
	n := 0
	for _, row := range gmm.Blocks() {
		n += len(row)
	}
	return n
}

// lodHistogram counts blocks currently rendering at each LOD, keyed by LOD
// level, for the HUD's per-frame breakdown.
func lodHistogram(gmm *terrain.GeoMipMapping) map[int]int {
	h := make(map[int]int)
	for _, row := range gmm.Blocks() {
		for _, b := range row {
			h[b.CurrentLOD]++
		}
	}
	return h
}
