// Package commands implements the downsample command tree.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	downsampler "github.com/tphakala/go-pcm-downsampler"
)

// app carries state shared by subcommands of one invocation.
type app struct {
	opts      options
	logger    *slog.Logger
	converter *downsampler.Converter
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "downsample",
		Short: "Convert 48 kHz mono 16-bit PCM to 44.1 kHz",
		Long: `downsample converts mono 16-bit little-endian PCM sampled at 48 kHz
into the equivalent stream at 44.1 kHz.

The signal passes a windowed-sinc low-pass filter and is then resampled
by linear interpolation.

Examples:
  # Convert a raw PCM file
  downsample convert in.pcm out.pcm

  # Convert a WAV file, clamping overflowing samples
  downsample wav --narrowing saturate in.wav out.wav

  # Inspect the filter
  downsample filter`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "YAML configuration file")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&a.opts.narrowing, "narrowing", "wrap", "int16 overflow policy: wrap or saturate")
	flags.BoolVar(&a.opts.simd, "simd", false, "use SIMD kernels for the filter")
	flags.IntVar(&a.opts.maxInputBytes, "max-input-bytes", 0, "largest accepted input in bytes (0 = 1 GiB)")

	rootCmd.AddCommand(
		newConvertCmd(a),
		newWAVCmd(a),
		newFilterCmd(a),
		newInfoCmd(a),
	)
	return rootCmd
}

// setup merges configuration and builds the converter.
func (a *app) setup(cmd *cobra.Command) error {
	if a.opts.configPath != "" {
		fc, err := loadFileConfig(a.opts.configPath)
		if err != nil {
			return err
		}
		a.opts.merge(fc, cmd)
	}

	a.logger = newLogger(cmd.ErrOrStderr(), a.opts.verbose)
	cfg, err := a.opts.converterConfig(a.logger)
	if err != nil {
		return err
	}

	conv, err := downsampler.New(cfg)
	if err != nil {
		return err
	}
	a.converter = conv
	return nil
}
