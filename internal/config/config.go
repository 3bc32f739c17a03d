package config

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Window holds window and context settings
type Window struct {
	Title    string `toml:"title"`
	X        int    `toml:"x"`
	Y        int    `toml:"y"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Samples  int    `toml:"samples"`
	FPSLimit int    `toml:"fps_limit"`
}

// Camera holds projection defaults
type Camera struct {
	FOV  float32 `toml:"fov"`
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`
}

// Tuning holds the shader constants of one curve variant.
// Zero values mean the variant does not use that constant.
type Tuning struct {
	Thickness  float32 `toml:"thickness"`
	MiterLimit float32 `toml:"miter_limit"`
	Segments   int32   `toml:"segments"`
	Fogged     bool    `toml:"fogged"`
	LineWidth  float32 `toml:"line_width"`
}

// Settings is the full viewer configuration
type Settings struct {
	Window Window `toml:"window"`
	Camera Camera `toml:"camera"`
	Scene  struct {
		FogColor []float32 `toml:"fog_color"`
		// Units lists the curve variants drawn, in draw order.
		Units []string `toml:"units"`
	} `toml:"scene"`
	Tuning struct {
		Polygon  Tuning `toml:"polygon"`
		Bezier   Tuning `toml:"bezier"`
		Polyline Tuning `toml:"polyline"`
	} `toml:"tuning"`
}

// Default decodes the compiled-in defaults.
func Default() (*Settings, error) {
	return Parse(defaultsTOML)
}

// Parse decodes settings from a TOML document.
func Parse(data []byte) (*Settings, error) {
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if len(s.Scene.FogColor) != 4 {
		return nil, fmt.Errorf("scene.fog_color: want 4 components, got %d", len(s.Scene.FogColor))
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return nil, fmt.Errorf("window size %dx%d is not positive", s.Window.Width, s.Window.Height)
	}
	return &s, nil
}

// FogColor returns the global fog color, also used as the clear color.
func (s *Settings) FogColor() mgl32.Vec4 {
	return mgl32.Vec4{s.Scene.FogColor[0], s.Scene.FogColor[1], s.Scene.FogColor[2], s.Scene.FogColor[3]}
}

// FrameSettings holds settings adjustable while the viewer runs
type FrameSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 = unlimited
}

var globalFrameSettings = &FrameSettings{}

// GetFPSLimit returns the current frame rate cap, 0 if uncapped
func GetFPSLimit() int {
	globalFrameSettings.mu.RLock()
	defer globalFrameSettings.mu.RUnlock()
	return globalFrameSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap
func SetFPSLimit(limit int) {
	globalFrameSettings.mu.Lock()
	defer globalFrameSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalFrameSettings.fpsLimit = limit
}
