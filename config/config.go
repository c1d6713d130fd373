// Package config loads pyramid build settings from a TOML or YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/janelia-flyem/labelpyramid/datatype/common/downres"
	"github.com/janelia-flyem/labelpyramid/datatype/common/labels"
	"github.com/janelia-flyem/labelpyramid/dvid"
)

const (
	// DefaultLevels is the number of downres levels built below the source.
	DefaultLevels = 5

	// DefaultAnisotropicLevels is the number of leading levels that keep Z.
	DefaultAnisotropicLevels = 3
)

// Config is the full contents of a configuration file.
type Config struct {
	Pyramid PyramidConfig  `toml:"pyramid" yaml:"pyramid"`
	Logging dvid.LogConfig `toml:"logging" yaml:"logging"`
}

// PyramidConfig is the [pyramid] section.
type PyramidConfig struct {
	// Vote names the label vote rule, "consensus" or "legacy".
	Vote string `toml:"vote" yaml:"vote"`

	// Levels is the number of levels computed below the source.
	Levels int `toml:"levels" yaml:"levels"`

	// AnisotropicLevels is how many of the first levels only collapse X and Y.
	AnisotropicLevels int `toml:"anisotropic_levels" yaml:"anisotropic_levels"`

	// Workers bounds the goroutines used per level.  0 means all CPUs.
	Workers int `toml:"workers" yaml:"workers"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Pyramid: PyramidConfig{
			Vote:              labels.ConsensusVote,
			Levels:            DefaultLevels,
			AnisotropicLevels: DefaultAnisotropicLevels,
			Workers:           dvid.NumCPU,
		},
		Logging: dvid.LogConfig{
			Level: "info",
		},
	}
}

// Load reads the given file over the defaults.  Files ending in .yaml or .yml are
// parsed as YAML and everything else as TOML.  A relative log file is taken relative
// to the configuration file's directory.
func Load(filename string) (*Config, error) {
	c := Default()
	if filename == "" {
		return c, nil
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("could not read config file %q: %v", filename, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("could not decode YAML config %q: %v", filename, err)
		}
	default:
		if _, err := toml.DecodeFile(filename, c); err != nil {
			return nil, fmt.Errorf("could not decode TOML config %q: %v", filename, err)
		}
	}
	if c.Logging.Logfile != "" && !filepath.IsAbs(c.Logging.Logfile) {
		c.Logging.Logfile = filepath.Join(filepath.Dir(filename), c.Logging.Logfile)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("bad config %q: %v", filename, err)
	}
	return c, nil
}

// Validate returns an error for settings that can't be used to build a pyramid.
func (c *Config) Validate() error {
	if _, err := labels.VoteRule[uint64](c.Pyramid.Vote); err != nil {
		return err
	}
	if c.Pyramid.Levels <= 0 {
		return fmt.Errorf("pyramid levels must be positive, got %d", c.Pyramid.Levels)
	}
	if c.Pyramid.AnisotropicLevels < 0 {
		return fmt.Errorf("anisotropic levels cannot be negative, got %d", c.Pyramid.AnisotropicLevels)
	}
	if c.Pyramid.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Pyramid.Workers)
	}
	if _, err := dvid.ParseLogMode(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// Modes returns the downres mode of each configured level.
func (c *Config) Modes() []downres.Mode {
	return downres.DefaultModes(c.Pyramid.Levels, c.Pyramid.AnisotropicLevels)
}
