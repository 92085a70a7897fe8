package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	downsampler "github.com/tphakala/go-pcm-downsampler"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestWAV(t *testing.T, path string, rate, channels int, samples []int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           samples,
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
}

func TestConvertCmd_Success(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pcm")
	out := filepath.Join(dir, "out.pcm")
	require.NoError(t, os.WriteFile(in, make([]byte, 960), 0o644))

	stdout, err := runCommand(t, "convert", in, out)
	require.NoError(t, err)
	assert.Equal(t, "success\n", stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, data, 882)
}

func TestConvertCmd_MissingInput(t *testing.T) {
	dir := t.TempDir()
	stdout, err := runCommand(t, "convert", filepath.Join(dir, "missing.pcm"), filepath.Join(dir, "out.pcm"))
	require.Error(t, err)
	assert.ErrorIs(t, err, downsampler.ErrIO)
	assert.Equal(t, "failed fopen\n", stdout)
}

func TestConvertCmd_InputTooLarge(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pcm")
	require.NoError(t, os.WriteFile(in, make([]byte, 960), 0o644))

	stdout, err := runCommand(t, "--max-input-bytes", "100", "convert", in, filepath.Join(dir, "out.pcm"))
	require.Error(t, err)
	assert.Equal(t, "failed alloc\n", stdout)
}

func TestConvertCmd_WrongArgs(t *testing.T) {
	_, err := runCommand(t, "convert", "only-one")
	assert.Error(t, err)
}

func TestRootCmd_InvalidNarrowing(t *testing.T) {
	_, err := runCommand(t, "--narrowing", "round", "info")
	assert.Error(t, err)
}

func TestInfoCmd(t *testing.T) {
	stdout, err := runCommand(t, "--narrowing", "saturate", "info")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Filter order:")
	assert.Contains(t, stdout, "148")
	assert.Contains(t, stdout, "149")
	assert.Contains(t, stdout, "saturate")
}

func TestFilterCmd(t *testing.T) {
	stdout, err := runCommand(t, "filter", "--coefficients")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Order:            148 (149 taps)")
	assert.Contains(t, stdout, "Group delay:      74 samples")
	assert.Contains(t, stdout, "b[148] =")
}

func TestWAVCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")

	samples := make([]int, 4800)
	for i := range samples {
		samples[i] = (i % 100) * 100
	}
	writeTestWAV(t, in, 48000, 1, samples)

	stdout, err := runCommand(t, "wav", in, out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "48000 Hz -> 44100 Hz, 4800 samples -> 4410 samples")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 44100, buf.Format.SampleRate)
	assert.Equal(t, 1, buf.Format.NumChannels)
	assert.Len(t, buf.Data, 4410)
}

func TestWAVCmd_RejectsUnsupportedInput(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		channels int
		want     error
	}{
		{"44.1 kHz input", 44100, 1, errSampleRateInput},
		{"stereo input", 48000, 2, errUnsupportedWAV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			in := filepath.Join(dir, "in.wav")
			writeTestWAV(t, in, tt.rate, tt.channels, make([]int, 200))

			_, err := runCommand(t, "wav", in, filepath.Join(dir, "out.wav"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWAVCmd_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	require.NoError(t, os.WriteFile(in, []byte("not a wav file"), 0o644))

	_, err := runCommand(t, "wav", in, filepath.Join(dir, "out.wav"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidWAV)
}
