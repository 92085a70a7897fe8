package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"

	downsampler "github.com/tphakala/go-pcm-downsampler"
)

// WAV format constants
const (
	wavInputRate    = 48000
	wavOutputRate   = 44100
	wavBitDepth     = 16
	wavChannels     = 1
	wavFormatPCM    = 1
	wavOutputPerm   = 0o644
	minRequiredArgs = 2
)

// Errors reported for unsupported WAV input.
var (
	errInvalidWAV      = errors.New("invalid WAV file")
	errUnsupportedWAV  = errors.New("unsupported WAV format")
	errSampleRateInput = errors.New("only 48 kHz input is supported")
)

func newWAVCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wav <input.wav> <output.wav>",
		Short: "Convert a 48 kHz mono 16-bit WAV file",
		Args:  cobra.ExactArgs(minRequiredArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := convertWAV(a.converter, args[0], args[1], a.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d Hz -> %d Hz, %d samples -> %d samples\n",
				stats.inputRate, stats.outputRate, stats.inputSamples, stats.outputSamples)
			return nil
		},
	}
}

type wavStats struct {
	inputRate     int
	outputRate    int
	inputSamples  int
	outputSamples int
}

// wavInput holds the decoded samples of a validated input file.
type wavInput struct {
	rate     int
	channels int
	bitDepth int
	samples  []int16
}

// readWAVInput opens, validates and decodes a WAV file.
func readWAVInput(path string, logger *slog.Logger) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open input file: %w", downsampler.ErrIO, err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", errInvalidWAV, path)
	}

	format := decoder.Format()
	in := &wavInput{
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
	}
	logger.Debug("input format",
		"rate", in.rate,
		"channels", in.channels,
		"bit_depth", in.bitDepth)

	if in.rate != wavInputRate {
		return nil, fmt.Errorf("%w: got %d Hz", errSampleRateInput, in.rate)
	}
	if in.channels != wavChannels || in.bitDepth != wavBitDepth {
		return nil, fmt.Errorf("%w: %d channels, %d-bit (want mono 16-bit)",
			errUnsupportedWAV, in.channels, in.bitDepth)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read audio data: %w", downsampler.ErrIO, err)
	}

	in.samples = make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		in.samples[i] = int16(v)
	}
	return in, nil
}

// writeWAVOutput encodes samples as a mono 16-bit WAV file.
func writeWAVOutput(path string, samples []int16, rate int) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, wavOutputPerm)
	if err != nil {
		return fmt.Errorf("%w: failed to create output file: %w", downsampler.ErrIO, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("%w: %w", downsampler.ErrIO, closeErr)
		}
	}()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(f, rate, wavBitDepth, wavChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: wavChannels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w: failed to write audio data: %w", downsampler.ErrIO, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: failed to finalize WAV header: %w", downsampler.ErrIO, err)
	}
	return nil
}

// convertWAV converts a 48 kHz WAV file to a 44.1 kHz WAV file.
func convertWAV(conv *downsampler.Converter, inPath, outPath string, logger *slog.Logger) (*wavStats, error) {
	in, err := readWAVInput(inPath, logger)
	if err != nil {
		return nil, err
	}

	res, err := conv.ConvertSamples(in.samples)
	if err != nil {
		return nil, err
	}

	if err := writeWAVOutput(outPath, res.Samples, wavOutputRate); err != nil {
		return nil, err
	}

	return &wavStats{
		inputRate:     in.rate,
		outputRate:    wavOutputRate,
		inputSamples:  len(in.samples),
		outputSamples: len(res.Samples),
	}, nil
}
