package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width" yaml:"width"`
	Height              int           `json:"height" yaml:"height"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	Boundary            string        `json:"boundary" yaml:"boundary"`
	MaxGenerations      int           `json:"max_generations" yaml:"max_generations"`
	Seed                int64         `json:"seed" yaml:"seed"`
	PatternFile         string        `json:"pattern_file" yaml:"pattern_file"`
	WatchPattern        bool          `json:"watch_pattern" yaml:"watch_pattern"`
	Workers             int           `json:"workers" yaml:"workers"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	Colors              bool          `json:"colors" yaml:"colors"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		Boundary:            model.Toroidal.String(),
		MaxGenerations:      1000,
		Workers:             1,
		AutoRestart:         true,
		StagnationThreshold: 5,
		Colors:              true,
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
		if err = yaml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal yaml from file: %+v", filename)
		}
	default:
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}
	return config, nil
}

// BoundaryPolicy returns the parsed boundary policy
func (c Config) BoundaryPolicy() (model.Boundary, error) {
	return model.ParseBoundary(c.Boundary)
}

// Validate checks the configuration for values the game cannot run with
func (c Config) Validate() error {
	if c.PatternFile == "" && (c.Width <= 0 || c.Height <= 0) {
		return errors.Wrapf(ErrInvalidConfig, "dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative frame rate %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative max generations %d", c.MaxGenerations)
	}
	if c.WatchPattern && c.PatternFile == "" {
		return errors.Wrap(ErrInvalidConfig, "watch_pattern requires pattern_file")
	}
	if _, err := c.BoundaryPolicy(); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}
