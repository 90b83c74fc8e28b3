// Package config provides the run configuration of the tape machine.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tapesim/core"
	"gopkg.in/yaml.v3"
)

// Config holds everything a run needs besides the program.
type Config struct {
	// TapeSize is the number of cells on the tape.
	TapeSize int `yaml:"tape_size"`

	// MaxSteps stops a run after that many instructions. Zero means no
	// limit.
	MaxSteps uint64 `yaml:"max_steps"`

	// FreqGHz is the clock of the simulated core.
	FreqGHz float64 `yaml:"freq_ghz"`

	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// DumpTape prints the cells around the pointer after a run.
	DumpTape bool `yaml:"dump_tape"`

	// DumpWindow is how many cells on each side of the pointer are dumped.
	DumpWindow int `yaml:"dump_window"`
}

// Default returns the conventional configuration: 30,000 cells, no step
// limit.
func Default() Config {
	return Config{
		TapeSize:   core.DefaultTapeSize,
		FreqGHz:    1,
		LogLevel:   "warn",
		DumpWindow: 16,
	}
}

// Parse reads a YAML document. Keys missing from the document keep their
// default value.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile reads the YAML configuration at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Validate checks that the values can drive a run.
func (c Config) Validate() error {
	if c.TapeSize < 1 {
		return fmt.Errorf("config: tape_size must be positive, got %d", c.TapeSize)
	}

	if c.FreqGHz <= 0 {
		return fmt.Errorf("config: freq_ghz must be positive, got %g", c.FreqGHz)
	}

	if c.DumpWindow < 0 {
		return fmt.Errorf("config: dump_window must not be negative, got %d", c.DumpWindow)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Freq returns the core clock.
func (c Config) Freq() sim.Freq {
	return sim.Freq(c.FreqGHz) * sim.GHz
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}

	return level
}

// LevelVerbose is the handler level selected by "trace". Every record passes
// it, core.Trace records and debug state checkpoints included.
const LevelVerbose = slog.LevelDebug - 4

// ParseLevel maps a level name to the minimum level a handler lets through.
// From the most to the least verbose: trace, debug, info, warn, error.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelVerbose, nil
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("config: unknown log_level %q", name)
	}
}
