package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	downsampler "github.com/tphakala/go-pcm-downsampler"
	"github.com/tphakala/go-pcm-downsampler/internal/pcm"
)

// fileConfig is the YAML configuration file layout.
type fileConfig struct {
	Narrowing     string `yaml:"narrowing"`
	SIMD          *bool  `yaml:"simd"`
	MaxInputBytes int    `yaml:"max_input_bytes"`
	Verbose       bool   `yaml:"verbose"`
}

// options holds the effective settings after merging file and flags.
type options struct {
	configPath    string
	narrowing     string
	simd          bool
	maxInputBytes int
	verbose       bool
}

// loadFileConfig reads a YAML configuration file.
func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &fc, nil
}

// merge applies file values for every flag the user did not set.
func (o *options) merge(fc *fileConfig, cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("narrowing") && fc.Narrowing != "" {
		o.narrowing = fc.Narrowing
	}
	if !flags.Changed("simd") && fc.SIMD != nil {
		o.simd = *fc.SIMD
	}
	if !flags.Changed("max-input-bytes") && fc.MaxInputBytes != 0 {
		o.maxInputBytes = fc.MaxInputBytes
	}
	if !flags.Changed("verbose") && fc.Verbose {
		o.verbose = true
	}
}

// newLogger returns a text logger on w at Info, or Debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// converterConfig builds the library configuration.
func (o *options) converterConfig(logger *slog.Logger) (*downsampler.Config, error) {
	narrowing, err := pcm.ParseNarrowing(o.narrowing)
	if err != nil {
		return nil, err
	}

	cfg := downsampler.DefaultConfig()
	cfg.Narrowing = narrowing
	cfg.EnableSIMD = o.simd
	cfg.MaxInputBytes = o.maxInputBytes
	cfg.Logger = logger
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
