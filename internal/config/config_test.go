package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
driver: spi
pixels: 10
brightness: 0.5
spi:
  dev: SPI0.0
  speed_hz: 2400000
buttons:
  a: GPIO5
  b: GPIO6
  debounce_ms: 30
buzzer:
  pin: GPIO12
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "spi", c.Driver)
	assert.Equal(t, 10, c.Pixels)
	assert.Equal(t, 0.5, c.Brightness)
	assert.Equal(t, "SPI0.0", c.SPI.Dev)
	assert.Equal(t, int64(2400000), c.SPI.SpeedHz)
	assert.Equal(t, "GPIO6", c.Buttons.B)
	assert.Equal(t, 30, c.Buttons.DebounceMs)
	assert.Equal(t, "GPIO12", c.Buzzer.Pin)
	assert.NoError(t, c.Validate())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Config{Driver: "sim", Pixels: 12, Brightness: 1, FPS: 60, Seed: 7}
	require.NoError(t, Save(path, in))
	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestMergeOverridesOnlySetFields(t *testing.T) {
	c := &Config{Driver: "sim", Pixels: 10, Brightness: 0.8, FPS: 30, Buttons: Buttons{A: "GPIO5", DebounceMs: 50}}
	c.Merge(&Config{Driver: "spi", Buttons: Buttons{B: "GPIO6"}})
	assert.Equal(t, "spi", c.Driver)
	assert.Equal(t, 10, c.Pixels)
	assert.Equal(t, 0.8, c.Brightness)
	assert.Equal(t, "GPIO5", c.Buttons.A)
	assert.Equal(t, "GPIO6", c.Buttons.B)
	assert.Equal(t, 50, c.Buttons.DebounceMs)

	c.Merge(nil)
	assert.Equal(t, "spi", c.Driver)
}

func TestValidate(t *testing.T) {
	ok := Config{Pixels: 10, Brightness: 1}
	assert.NoError(t, ok.Validate())

	for name, c := range map[string]Config{
		"short strip":   {Pixels: 9, Brightness: 1},
		"dark":          {Pixels: 10, Brightness: 0},
		"too bright":    {Pixels: 10, Brightness: 1.5},
		"negative fps":  {Pixels: 10, Brightness: 1, FPS: -1},
		"negative wait": {Pixels: 10, Brightness: 1, Buttons: Buttons{DebounceMs: -5}},
	} {
		assert.Error(t, c.Validate(), name)
	}
}
