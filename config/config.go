// Package config handles terrain demo configuration loading.
package config

// Config holds every setting the demo binary needs at startup.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds GeoMipMapping construction parameters.
type TerrainConfig struct {
	HeightmapPath     string  `yaml:"heightmap_path"`
	OverlayPath       string  `yaml:"overlay_path"`
	BlockSize         int     `yaml:"block_size"`
	MinLOD            int     `yaml:"min_lod"`
	MaxLOD            int     `yaml:"max_lod"`
	XZScale           float32 `yaml:"xz_scale"`
	YScale            float32 `yaml:"y_scale"`
	BaseDistance      float32 `yaml:"base_distance"`
	GeometricLadder   bool    `yaml:"geometric_ladder"`
	HeightmapFilter   string  `yaml:"heightmap_filter"` // "nearest" or "linear"
	LODActive         bool    `yaml:"lod_active"`
	FrustumCullActive bool    `yaml:"frustum_cull_active"`
	Naive             bool    `yaml:"naive"` // start in brute-force reference mode
}

// CameraConfig holds the initial viewer placement and projection.
type CameraConfig struct {
	StartX    float32 `yaml:"start_x"`
	StartY    float32 `yaml:"start_y"`
	StartZ    float32 `yaml:"start_z"`
	Yaw       float32 `yaml:"yaw"`
	Pitch     float32 `yaml:"pitch"`
	FOV       float32 `yaml:"fov"`
	ZNear     float32 `yaml:"z_near"`
	ZFar      float32 `yaml:"z_far"`
	MoveSpeed float32 `yaml:"move_speed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values, tuned for the
// bundled sample heightmap.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			HeightmapPath:     "assets/heightmap.png",
			OverlayPath:       "",
			BlockSize:         17,
			MinLOD:            0,
			MaxLOD:            4,
			XZScale:           1.0,
			YScale:            1.0,
			BaseDistance:      128,
			GeometricLadder:   true,
			HeightmapFilter:   "linear",
			LODActive:         true,
			FrustumCullActive: true,
			Naive:             false,
		},
		Camera: CameraConfig{
			StartX: 0, StartY: 200, StartZ: 0,
			Yaw: -90, Pitch: -20,
			FOV:       45,
			ZNear:     0.1,
			ZFar:      4000,
			MoveSpeed: 6,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
