package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagMesh      = flag.String("mesh", "", "Path to the OBJ mesh")
	flagBackend   = flag.String("backend", "", "Window backend: sdl or ebiten")
	flagWidth     = flag.Int("width", 0, "Frame width")
	flagHeight    = flag.Int("height", 0, "Frame height")
	flagCull      = flag.Bool("cull", false, "Enable back-face culling")
	flagNoWire    = flag.Bool("no-wireframe", false, "Disable the wireframe overlay")
	flagWorkers   = flag.Int("workers", 0, "Parallel raster bands")
	flagNoCapture = flag.Bool("no-capture", false, "Skip the capture of the first frame")
)

// ParseFlags parses command-line flags. Call this early in main().
// A single positional argument, if given, is taken as the mesh path.
func ParseFlags() {
	flag.Parse()
	if *flagMesh == "" && flag.NArg() > 0 {
		*flagMesh = flag.Arg(0)
	}
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMesh != "" {
		cfg.Viewer.Mesh = *flagMesh
	}
	if *flagBackend != "" {
		cfg.Viewer.Backend = *flagBackend
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
	if *flagCull {
		cfg.Render.CullBackfaces = true
	}
	if *flagNoWire {
		cfg.Render.Wireframe = false
	}
	if *flagWorkers > 0 {
		cfg.Render.Workers = *flagWorkers
	}
	if *flagNoCapture {
		cfg.Viewer.CaptureOnStart = false
	}
}
