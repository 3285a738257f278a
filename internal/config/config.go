// Package config loads the YAML description of one co-simulation run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInstance  = "instance"
	DefaultStartTime = 0.0
	DefaultStopTime  = 0.1
	DefaultStepSize  = 0.01
)

// ErrInvalid reports a run configuration that cannot be executed.
var ErrInvalid = errors.New("config: invalid run configuration")

type Config struct {
	FMU             string         `yaml:"fmu"`
	WorkDir         string         `yaml:"work_dir,omitempty"`
	Instance        string         `yaml:"instance"`
	StartTime       float64        `yaml:"start_time"`
	StopTime        float64        `yaml:"stop_time"`
	StepSize        float64        `yaml:"step_size"`
	Tolerance       float64        `yaml:"tolerance,omitempty"`
	LoggingOn       bool           `yaml:"logging_on"`
	DebugCategories []string       `yaml:"debug_categories,omitempty"`
	StartValues     map[string]any `yaml:"start_values,omitempty"`
	Outputs         []string       `yaml:"outputs"`
}

func Default() *Config {
	return &Config{
		Instance:  DefaultInstance,
		StartTime: DefaultStartTime,
		StopTime:  DefaultStopTime,
		StepSize:  DefaultStepSize,
	}
}

// Load reads path over the defaults and validates the result. A relative fmu
// path is resolved against the directory of the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.FMU != "" && !filepath.IsAbs(cfg.FMU) {
		cfg.FMU = filepath.Join(filepath.Dir(path), cfg.FMU)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.FMU == "":
		return fmt.Errorf("%w: fmu is required", ErrInvalid)
	case c.Instance == "":
		return fmt.Errorf("%w: instance name is required", ErrInvalid)
	case c.StepSize <= 0:
		return fmt.Errorf("%w: step_size must be positive, got %g", ErrInvalid, c.StepSize)
	case c.StopTime <= c.StartTime:
		return fmt.Errorf("%w: stop_time %g must be after start_time %g", ErrInvalid, c.StopTime, c.StartTime)
	case c.Tolerance < 0:
		return fmt.Errorf("%w: tolerance must not be negative", ErrInvalid)
	}

	seen := make(map[string]bool, len(c.Outputs))
	for _, name := range c.Outputs {
		if name == "" {
			return fmt.Errorf("%w: empty output name", ErrInvalid)
		}
		if seen[name] {
			return fmt.Errorf("%w: output %s listed twice", ErrInvalid, name)
		}
		seen[name] = true
	}
	for name, v := range c.StartValues {
		switch v.(type) {
		case bool, int, int64, float64, string:
		default:
			return fmt.Errorf("%w: start_values[%s] has unsupported type %T", ErrInvalid, name, v)
		}
	}
	return nil
}

// Steps returns the number of communication steps between start and stop.
func (c *Config) Steps() int {
	n := (c.StopTime - c.StartTime) / c.StepSize
	steps := int(n)
	if n-float64(steps) > 1e-9 {
		steps++
	}
	return steps
}
