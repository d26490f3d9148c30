package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// MatrixCfg describes the LED grid and its post-processing.
type MatrixCfg struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Pin        int    `yaml:"pin"` // data pin; ignored by SPI drivers
	Brightness uint8  `yaml:"brightness"`
	ColorOrder string `yaml:"color_order"`
	Serpentine bool   `yaml:"serpentine"`
	Gamma      bool   `yaml:"gamma"`
	FPS        int    `yaml:"fps"`
}

type Config struct {
	Driver   string    `yaml:"driver"`  // "nrz" | "term" | "fake"
	SPIDev   string    `yaml:"spi_dev"` // e.g. /dev/spidev0.0; empty picks the first port
	LogLevel string    `yaml:"log_level"`
	Matrix   MatrixCfg `yaml:"matrix"`
}

// Default mirrors the stock board: a 32x8 serpentine chain on GPIO 18 at
// half brightness. The console driver previews in RGB; real WS2812 chains
// usually want color_order GRB and driver nrz.
func Default() *Config {
	return &Config{
		Driver:   "term",
		LogLevel: "info",
		Matrix: MatrixCfg{
			Width:      32,
			Height:     8,
			Pin:        18,
			Brightness: 128,
			ColorOrder: "RGB",
			Serpentine: true,
			Gamma:      true,
			FPS:        30,
		},
	}
}

// Load reads path over Default, so absent keys keep their defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
