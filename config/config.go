package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/bench"
	"github.com/katalvlaran/algoviz/logger"
	"github.com/katalvlaran/algoviz/sorttrace"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root document.
type Config struct {
	Server Server `yaml:"server"`
	Sweep  Sweep  `yaml:"sweep"`
}

// Server configures the HTTP service.
type Server struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	IdleTimeout  time.Duration `yaml:"idleTimeout"`
	CORSOrigins  []string      `yaml:"corsOrigins"`
	LogMode      logger.Mode   `yaml:"logMode"`
	Limits       Limits        `yaml:"limits"`
}

// Limits caps request parameters so a single call cannot exhaust the
// process. Requests over a limit are rejected with 400.
//
// MaxN bounds traced sorts, whose step list grows as n² for the quadratic
// algorithms; MaxSweepN bounds headless sweeps.
type Limits struct {
	MaxN      int `yaml:"maxN"`
	MaxRows   int `yaml:"maxRows"`
	MaxCols   int `yaml:"maxCols"`
	MaxSweepN int `yaml:"maxSweepN"`
	MaxTrials int `yaml:"maxTrials"`
	MaxPoints int `yaml:"maxPoints"`
	// MaxConcurrentSweeps bounds sweeps running at once; extra requests wait.
	MaxConcurrentSweeps int `yaml:"maxConcurrentSweeps"`
}

// Sweep is a bench.SweepConfig plus the metric used for rendering.
type Sweep struct {
	bench.SweepConfig `yaml:",inline"`
	Metric            bench.Metric `yaml:"metric"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
			CORSOrigins:  []string{"*"},
			LogMode:      logger.ModeDev,
			Limits: Limits{
				MaxN:      512,
				MaxRows:   201,
				MaxCols:   201,
				MaxSweepN: 20000,
				MaxTrials: 20,
				MaxPoints: 30,

				MaxConcurrentSweeps: 2,
			},
		},
		Sweep: Sweep{
			SweepConfig: bench.DefaultSweepConfig(),
			Metric:      bench.Comparisons,
		},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(b)
}

// Parse overlays the YAML document b onto Default and validates the result.
// An empty document yields Default.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every section.
func (c Config) Validate() error {
	s := c.Server
	if s.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 || s.IdleTimeout < 0 {
		return fmt.Errorf("%w: negative server timeout", ErrInvalidConfig)
	}
	if err := s.Limits.validate(); err != nil {
		return err
	}
	if err := c.Sweep.SweepConfig.Validate(); err != nil {
		return fmt.Errorf("%w: sweep: %w", ErrInvalidConfig, err)
	}
	for _, key := range c.Sweep.Algorithms {
		if _, err := sorttrace.Lookup(key); err != nil {
			return fmt.Errorf("%w: sweep: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

func (l Limits) validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"maxN", l.MaxN},
		{"maxRows", l.MaxRows},
		{"maxCols", l.MaxCols},
		{"maxSweepN", l.MaxSweepN},
		{"maxTrials", l.MaxTrials},
		{"maxPoints", l.MaxPoints},
		{"maxConcurrentSweeps", l.MaxConcurrentSweeps},
	}
	for _, c := range checks {
		if c.v < 1 {
			return fmt.Errorf("%w: server.limits.%s must be positive, got %d", ErrInvalidConfig, c.name, c.v)
		}
	}
	if l.MaxRows < 3 || l.MaxCols < 3 {
		return fmt.Errorf("%w: server.limits grid must allow at least 3x3", ErrInvalidConfig)
	}

	return nil
}
