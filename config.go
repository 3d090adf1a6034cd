package gui

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config sizes the fixed-capacity stores of a GUI. Exceeding any of them is a
// fatal usage error, so size them for the largest UI the host builds.
type Config struct {
	TempArenaSize int `toml:"temp_arena_size"` // bytes per temp arena (two are kept)
	MaxBoxes      int `toml:"max_boxes"`       // boxes per frame across all panels
	MaxPanels     int `toml:"max_panels"`
	MaxRetained   int `toml:"max_retained"` // retained entries across all panels
	MaxIDDepth    int `toml:"max_id_depth"`
	MaxPanelDepth int `toml:"max_panel_depth"`

	Snap  SnapConfig `toml:"snap"`
	Style Style      `toml:"style"`
}

// DefaultConfig returns capacities that fit a typical tool UI.
func DefaultConfig() Config {
	return Config{
		TempArenaSize: 256 << 10,
		MaxBoxes:      8192,
		MaxPanels:     64,
		MaxRetained:   4096,
		MaxIDDepth:    64,
		MaxPanelDepth: 8,
		Snap:          DefaultSnapConfig(),
		Style:         DefaultStyle(),
	}
}

// LoadConfig reads a TOML file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("gui: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML over DefaultConfig. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("gui: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports capacities that cannot work.
func (c Config) Validate() error {
	switch {
	case c.TempArenaSize <= 0:
		return fmt.Errorf("gui: temp_arena_size must be positive, got %d", c.TempArenaSize)
	case c.MaxBoxes <= 0:
		return fmt.Errorf("gui: max_boxes must be positive, got %d", c.MaxBoxes)
	case c.MaxPanels <= 0:
		return fmt.Errorf("gui: max_panels must be positive, got %d", c.MaxPanels)
	case c.MaxRetained <= 0:
		return fmt.Errorf("gui: max_retained must be positive, got %d", c.MaxRetained)
	case c.MaxIDDepth <= 0:
		return fmt.Errorf("gui: max_id_depth must be positive, got %d", c.MaxIDDepth)
	case c.MaxPanelDepth <= 0:
		return fmt.Errorf("gui: max_panel_depth must be positive, got %d", c.MaxPanelDepth)
	}
	return nil
}
