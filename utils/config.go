package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for a simulation run
type Config struct {
	Width               int           `json:"width" yaml:"width"`
	Height              int           `json:"height" yaml:"height"`
	Chance              uint8         `json:"chance" yaml:"chance"`
	Seed                uint64        `json:"seed" yaml:"seed"`
	PatternFile         string        `json:"pattern_file" yaml:"pattern_file"`
	ExportFile          string        `json:"export_file" yaml:"export_file"`
	ExportFormat        string        `json:"export_format" yaml:"export_format"`
	MaxGenerations      int           `json:"max_generations" yaml:"max_generations"`
	Workers             int           `json:"workers" yaml:"workers"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	Render              bool          `json:"render" yaml:"render"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		Chance:              40,
		MaxGenerations:      1000,
		FrameRate:           150 * time.Millisecond,
		Render:              true,
		AutoRestart:         false,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the configuration for values the simulation cannot run with
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return errors.Errorf("board must be at least 3x3, got %dx%d", c.Width, c.Height)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("frame_rate must not be negative, got %s", c.FrameRate)
	}
	return nil
}
