package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	downsampler "github.com/tphakala/go-pcm-downsampler"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
narrowing: saturate
simd: true
max_input_bytes: 4096
verbose: true
`)
	fc, err := loadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "saturate", fc.Narrowing)
	require.NotNil(t, fc.SIMD)
	assert.True(t, *fc.SIMD)
	assert.Equal(t, 4096, fc.MaxInputBytes)
	assert.True(t, fc.Verbose)
}

func TestLoadFileConfig_Errors(t *testing.T) {
	_, err := loadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = loadFileConfig(writeConfig(t, "narrowing: [unterminated"))
	assert.Error(t, err)
}

func TestOptionsMerge_FlagsWin(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	o := &options{}
	cmd.Flags().StringVar(&o.narrowing, "narrowing", "wrap", "")
	cmd.Flags().BoolVar(&o.simd, "simd", false, "")
	cmd.Flags().IntVar(&o.maxInputBytes, "max-input-bytes", 0, "")
	cmd.Flags().BoolVar(&o.verbose, "verbose", false, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--narrowing", "wrap"}))

	simd := true
	o.merge(&fileConfig{Narrowing: "saturate", SIMD: &simd, MaxInputBytes: 2048}, cmd)

	assert.Equal(t, "wrap", o.narrowing, "explicit flag should win over file")
	assert.True(t, o.simd)
	assert.Equal(t, 2048, o.maxInputBytes)
	assert.False(t, o.verbose)
}

func TestOptionsConverterConfig(t *testing.T) {
	o := &options{narrowing: "clamp", simd: true, maxInputBytes: 1 << 20}
	cfg, err := o.converterConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, downsampler.NarrowSaturate, cfg.Narrowing)
	assert.True(t, cfg.EnableSIMD)
	assert.Equal(t, 1<<20, cfg.MaxInputBytes)

	o.maxInputBytes = -1
	_, err = o.converterConfig(nil)
	assert.ErrorIs(t, err, downsampler.ErrInvalidConfig)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	path := writeConfig(t, "narrowing: saturate\n")
	stdout, err := runCommand(t, "--config", path, "info")
	require.NoError(t, err)
	assert.Contains(t, stdout, "saturate")
}
