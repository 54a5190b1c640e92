package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagHeightmap  = flag.String("heightmap", "", "Path to heightmap PNG")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagNaive      = flag.Bool("naive", false, "Use the brute-force naive terrain instead of GeoMipMapping")
	flagNoLOD      = flag.Bool("no-lod", false, "Disable LOD (always draw max detail)")
	flagNoCull     = flag.Bool("no-cull", false, "Disable frustum culling")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to cfg, highest priority.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagHeightmap != "" {
		cfg.Terrain.HeightmapPath = *flagHeightmap
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagNaive {
		cfg.Terrain.Naive = true
	}
	if *flagNoLOD {
		cfg.Terrain.LODActive = false
	}
	if *flagNoCull {
		cfg.Terrain.FrustumCullActive = false
	}
}
