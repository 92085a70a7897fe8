package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	downsampler "github.com/tphakala/go-pcm-downsampler"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show converter configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := a.converter.Info()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Algorithm:\t%s\n", info.Algorithm)
			fmt.Fprintf(w, "Rates:\t%.0f Hz -> %.0f Hz\n", downsampler.RateDAT, downsampler.RateCD)
			fmt.Fprintf(w, "Ratio:\t%.5f\n", info.Ratio)
			fmt.Fprintf(w, "Filter order:\t%d\n", info.FilterOrder)
			fmt.Fprintf(w, "Filter taps:\t%d\n", info.FilterLength)
			fmt.Fprintf(w, "Latency:\t%d samples\n", info.Latency)
			fmt.Fprintf(w, "Narrowing:\t%s\n", info.Narrowing)
			fmt.Fprintf(w, "SIMD:\t%t (%s)\n", info.SIMDEnabled, info.SIMDType)
			return w.Flush()
		},
	}
}
