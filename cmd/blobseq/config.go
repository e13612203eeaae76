package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"blobseq/sequence"
)

const (
	GrowthFixed    = "fixed"
	GrowthDoubling = "doubling"
)

// Config holds the settings that can come from a YAML file. Command-line
// options override them.
type Config struct {
	Growth          string `yaml:"growth,omitempty"`
	Chunk           int    `yaml:"chunk,omitempty"`
	LegacySizeCheck bool   `yaml:"legacy-size-check,omitempty"`
	Repeat          int    `yaml:"repeat,omitempty"`
	Number          int    `yaml:"number,omitempty"`
	LogLevel        string `yaml:"log-level,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Growth:   GrowthFixed,
		Chunk:    sequence.DefaultChunk,
		Repeat:   3,
		Number:   1000,
		LogLevel: "info",
	}
}

// LoadConfig reads path over the defaults. A missing path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Growth {
	case GrowthFixed, GrowthDoubling:
	default:
		return errors.Errorf("unknown growth policy %q (want %s or %s)", c.Growth, GrowthFixed, GrowthDoubling)
	}
	if c.Chunk < 1 {
		return errors.Errorf("chunk must be positive, got %d", c.Chunk)
	}
	if c.Repeat < 0 {
		return errors.Errorf("repeat must not be negative, got %d", c.Repeat)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log-level")
	}
	return nil
}

// SequenceOptions translates the config into options for the sequences the
// program creates.
func (c Config) SequenceOptions(logger logrus.FieldLogger) []sequence.Option {
	growth := sequence.FixedChunk(c.Chunk)
	if c.Growth == GrowthDoubling {
		growth = sequence.Doubling(c.Chunk)
	}
	opts := []sequence.Option{
		sequence.WithGrowth(growth),
		sequence.WithLogger(logger),
	}
	if c.LegacySizeCheck {
		opts = append(opts, sequence.WithLegacySizeCheck())
	}
	return opts
}

func (c Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
