package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/lantern/engine/core"
	"github.com/spaghettifunk/lantern/engine/math"
)

// Application holds the host-level settings read from the TOML
// configuration file.
type Application struct {
	// The application name used in windowing.
	Name string `toml:"name"`
	// Window starting position, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting size.
	StartWidth  uint32 `toml:"start_width"`
	StartHeight uint32 `toml:"start_height"`
	// Directory the scene textures are loaded from.
	AssetDir string `toml:"asset_dir"`
	// One of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

func defaults() *Application {
	return &Application{
		Name:        "Lantern",
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  1280,
		StartHeight: 720,
		AssetDir:    "assets",
		LogLevel:    "debug",
	}
}

// Load reads the configuration file at path. A missing file yields
// the defaults; a malformed one is an error.
func Load(path string) (*Application, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			core.LogInfo("no configuration file at %s; using defaults", path)
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// keep the window inside sane bounds regardless of what the file says
	cfg.StartWidth = math.Clamp(cfg.StartWidth, 320, 4096)
	cfg.StartHeight = math.Clamp(cfg.StartHeight, 240, 4096)

	return cfg, nil
}

// Level maps the configured log level onto the logger's levels,
// falling back to debug.
func (a *Application) Level() core.LogLevel {
	switch a.LogLevel {
	case "info":
		return core.InfoLevel
	case "warn":
		return core.WarnLevel
	case "error":
		return core.ErrorLevel
	default:
		return core.DebugLevel
	}
}
