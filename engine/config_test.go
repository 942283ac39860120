package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-gfx/lumen/engine/core"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	content := `
application_name = "demo"
start_width = 640
start_height = 480
log_level = "debug"
clear_color = "cornflowerblue"
vsync = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", config.ApplicationName)
	assert.Equal(t, uint32(640), config.StartWidth)
	assert.Equal(t, uint32(480), config.StartHeight)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "cornflowerblue", config.ClearColor)
	assert.False(t, config.Vsync)
	// Untouched fields keep their defaults.
	assert.Equal(t, uint32(100), config.StartPosX)
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	require.NoError(t, os.WriteFile(path, []byte("start_width = ["), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestParseClearColorNamed(t *testing.T) {
	r, g, b, a, err := ParseClearColor("cornflowerblue")
	require.NoError(t, err)
	assert.InDelta(t, 100.0/255.0, r, 0.001)
	assert.InDelta(t, 149.0/255.0, g, 0.001)
	assert.InDelta(t, 237.0/255.0, b, 0.001)
	assert.InDelta(t, 1.0, a, 0.001)
}

func TestParseClearColorHex(t *testing.T) {
	r, g, b, a, err := ParseClearColor("#19334c")
	require.NoError(t, err)
	assert.InDelta(t, 0x19/255.0, r, 0.001)
	assert.InDelta(t, 0x33/255.0, g, 0.001)
	assert.InDelta(t, 0x4c/255.0, b, 0.001)
	assert.InDelta(t, 1.0, a, 0.001)
}

func TestParseClearColorHexWithAlpha(t *testing.T) {
	r, g, b, a, err := ParseClearColor("#FF000080")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 0.001)
	assert.InDelta(t, 0.0, g, 0.001)
	assert.InDelta(t, 0.0, b, 0.001)
	assert.InDelta(t, 128.0/255.0, a, 0.001)
}

func TestParseClearColorInvalid(t *testing.T) {
	for _, input := range []string{"", "notacolor", "#12", "#zzzzzz"} {
		_, _, _, _, err := ParseClearColor(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestLogLevelFromString(t *testing.T) {
	assert.Equal(t, core.DebugLevel, logLevelFromString("debug"))
	assert.Equal(t, core.WarnLevel, logLevelFromString("WARN"))
	assert.Equal(t, core.WarnLevel, logLevelFromString("warning"))
	assert.Equal(t, core.ErrorLevel, logLevelFromString("error"))
	assert.Equal(t, core.FatalLevel, logLevelFromString("fatal"))
	assert.Equal(t, core.InfoLevel, logLevelFromString("info"))
	assert.Equal(t, core.InfoLevel, logLevelFromString("anything"))
}
