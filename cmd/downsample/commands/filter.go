package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Band edges for the response summary, as fractions of 48 kHz.
const (
	summaryPassEdge = 20000.0 / 48000.0
	summaryStopEdge = 22050.0 / 48000.0

	defaultResponsePoints = 4096
	hzPerUnit             = 48000.0
)

func newFilterCmd(a *app) *cobra.Command {
	var (
		points int
		coeffs bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Show the anti-aliasing filter and its response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := a.converter.Design()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Edge frequency:   %.0f Hz\n", d.Params.EdgeFrequency*hzPerUnit)
			fmt.Fprintf(out, "Transition width: %.0f Hz\n", d.Params.TransitionWidth*hzPerUnit)
			fmt.Fprintf(out, "Order:            %d (%d taps)\n", d.Order, d.Taps())
			fmt.Fprintf(out, "Group delay:      %d samples\n", d.GroupDelay())

			summary := d.Response(points).Summarize(summaryPassEdge, summaryStopEdge)
			fmt.Fprintf(out, "Passband ripple:  %.4f .. %.4f dB (0-%.0f Hz)\n",
				summary.PassbandMinDB, summary.PassbandMaxDB, summaryPassEdge*hzPerUnit)
			fmt.Fprintf(out, "Stopband peak:    %.1f dB (above %.0f Hz)\n",
				summary.StopbandMaxDB, summaryStopEdge*hzPerUnit)

			if coeffs {
				for i, c := range d.Coefficients {
					fmt.Fprintf(out, "b[%d] = %.12g\n", i, c)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&points, "points", defaultResponsePoints, "FFT size for the response")
	cmd.Flags().BoolVar(&coeffs, "coefficients", false, "print every coefficient")
	return cmd
}
