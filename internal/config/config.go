// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nicekb/niceview/internal/script"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Role    string        `yaml:"role"`    // central | peripheral
	Variant string        `yaml:"variant"` // status | log (central only)
	Panel   PanelConfig   `yaml:"panel"`
	Output  OutputConfig  `yaml:"output"`
	Bus     BusConfig     `yaml:"bus"`
	Script  []script.Step `yaml:"script"`
}

// ---- PANEL ----

type PanelConfig struct {
	Driver string `yaml:"driver"` // sim | spi

	// Real panel wiring (driver: spi), periph.io names
	SPI  string `yaml:"spi"`  // e.g. "/dev/spidev0.0"; empty = first port
	CS   string `yaml:"cs"`   // e.g. "GPIO8"
	DISP string `yaml:"disp"` // optional

	Hz     int64 `yaml:"hz"`
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
}

// ---- OUTPUT ----

type OutputConfig struct {
	Dir   string `yaml:"dir"`   // one PNG per flush; empty = no files
	Scale int    `yaml:"scale"` // PNG and window magnification
}

// ---- BUS ----

type BusConfig struct {
	Depth       int `yaml:"depth"`
	Subscribers int `yaml:"subscribers"`
}

const (
	RoleCentral    = "central"
	RolePeripheral = "peripheral"

	VariantStatus = "status"
	VariantLog    = "log"

	DriverSim = "sim"
	DriverSPI = "spi"
)

// Load reads a YAML config file. Unknown keys are an error.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes a YAML config document. An empty document is a zero Config.
func Parse(b []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
