package engine

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"

	"github.com/lumen-gfx/lumen/engine/core"
)

// Config holds the startup options read from the optional TOML file. The
// template runs fine without one; every field has a working default.
type Config struct {
	ApplicationName string `toml:"application_name"`
	StartPosX       uint32 `toml:"start_pos_x"`
	StartPosY       uint32 `toml:"start_pos_y"`
	StartWidth      uint32 `toml:"start_width"`
	StartHeight     uint32 `toml:"start_height"`
	LogLevel        string `toml:"log_level"`
	ClearColor      string `toml:"clear_color"`
	Vsync           bool   `toml:"vsync"`
	DiscreteGPU     bool   `toml:"discrete_gpu"`
	Debug           bool   `toml:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		ApplicationName: "Lumen",
		StartPosX:       100,
		StartPosY:       100,
		StartWidth:      1280,
		StartHeight:     720,
		LogLevel:        "info",
		ClearColor:      "#19334c",
		Vsync:           true,
		DiscreteGPU:     true,
		Debug:           false,
	}
}

// LoadConfig reads the TOML file at path, falling back to defaults when
// the file does not exist. A file that exists but fails to parse is an
// error; silently running with defaults would mask the typo.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			core.LogDebug("no config file at %s, using defaults", path)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

// ParseClearColor resolves a color name ("cornflowerblue") or a #rrggbb /
// #rrggbbaa hex string into normalized RGBA components.
func ParseClearColor(s string) (r, g, b, a float32, err error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, 0, 0, 0, fmt.Errorf("empty clear color")
	}

	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}

	named, ok := colornames.Map[s]
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("unknown color name %q", s)
	}
	return normalizeComp(named.R), normalizeComp(named.G), normalizeComp(named.B), normalizeComp(named.A), nil
}

func normalizeComp(v uint8) float32 {
	return float32(v) / 255.0
}

func parseHexColor(s string) (r, g, b, a float32, err error) {
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return 0, 0, 0, 0, fmt.Errorf("hex color %q must be #rrggbb or #rrggbbaa", s)
	}

	value, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	if len(hex) == 6 {
		value = value<<8 | 0xff
	}
	r = float32(value>>24&0xff) / 255.0
	g = float32(value>>16&0xff) / 255.0
	b = float32(value>>8&0xff) / 255.0
	a = float32(value&0xff) / 255.0
	return r, g, b, a, nil
}

func logLevelFromString(s string) core.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return core.DebugLevel
	case "warn", "warning":
		return core.WarnLevel
	case "error":
		return core.ErrorLevel
	case "fatal":
		return core.FatalLevel
	default:
		return core.InfoLevel
	}
}
