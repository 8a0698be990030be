package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. SPI0.0, "" for the first port
	SpeedHz int64  `yaml:"speed_hz"` // e.g. 2500000
}

type Buttons struct {
	A          string `yaml:"a"` // GPIO name, e.g. GPIO5
	B          string `yaml:"b"`
	DebounceMs int    `yaml:"debounce_ms"`
}

type Buzzer struct {
	Pin string `yaml:"pin"` // PWM capable GPIO, e.g. GPIO12
}

type Config struct {
	Driver     string  `yaml:"driver"` // "spi" | "console" | "sim"
	Pixels     int     `yaml:"pixels"`
	Brightness float64 `yaml:"brightness"`
	FPS        int     `yaml:"fps"`
	Seed       int64   `yaml:"seed,omitempty"`

	SPI     SPI     `yaml:"spi,omitempty"`
	Buttons Buttons `yaml:"buttons,omitempty"`
	Buzzer  Buzzer  `yaml:"buzzer,omitempty"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Merge copies every field set in o over c.
func (c *Config) Merge(o *Config) {
	if o == nil {
		return
	}
	if o.Driver != "" {
		c.Driver = o.Driver
	}
	if o.Pixels > 0 {
		c.Pixels = o.Pixels
	}
	if o.Brightness > 0 {
		c.Brightness = o.Brightness
	}
	if o.FPS > 0 {
		c.FPS = o.FPS
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.SPI.Dev != "" {
		c.SPI.Dev = o.SPI.Dev
	}
	if o.SPI.SpeedHz != 0 {
		c.SPI.SpeedHz = o.SPI.SpeedHz
	}
	if o.Buttons.A != "" {
		c.Buttons.A = o.Buttons.A
	}
	if o.Buttons.B != "" {
		c.Buttons.B = o.Buttons.B
	}
	if o.Buttons.DebounceMs != 0 {
		c.Buttons.DebounceMs = o.Buttons.DebounceMs
	}
	if o.Buzzer.Pin != "" {
		c.Buzzer.Pin = o.Buzzer.Pin
	}
}

func (c *Config) Validate() error {
	if c.Pixels < 10 {
		return fmt.Errorf("pixels: need at least 10, got %d", c.Pixels)
	}
	if c.Brightness <= 0 || c.Brightness > 1 {
		return fmt.Errorf("brightness: %v not in (0,1]", c.Brightness)
	}
	if c.FPS < 0 {
		return fmt.Errorf("fps: %d is negative", c.FPS)
	}
	if c.Buttons.DebounceMs < 0 {
		return fmt.Errorf("buttons.debounce_ms: %d is negative", c.Buttons.DebounceMs)
	}
	return nil
}
