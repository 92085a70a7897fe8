package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	downsampler "github.com/tphakala/go-pcm-downsampler"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input.pcm> <output.pcm>",
		Short: "Convert a headerless PCM file",
		Long: `Convert a raw mono 16-bit little-endian PCM file from 48 kHz to 44.1 kHz.

Prints one of "success", "failed fopen", "failed alloc" or
"failed resample" and exits non-zero on failure.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.converter.ConvertFile(args[0], args[1])
			fmt.Fprintln(cmd.OutOrStdout(), downsampler.Status(err))
			return err
		},
	}
}
