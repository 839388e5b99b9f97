package main

import (
	"fmt"

	"github.com/spf13/cobra"

	algosht "github.com/cwbudde/algo-sht"
)

func newGridCommand(a *app) *cobra.Command {
	var (
		bandwidth int
		degree    int
		order     int
		imagPath  string
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the samples of Y_l^m on the grid as CSV",
		Long: "Samples the spherical harmonic Y_l^m on the bandwidth-B grid and prints\n" +
			"the real plane, one colatitude per row. The imaginary plane goes to --imag.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			re, im, err := algosht.SynthesizeHarmonic(bandwidth, degree, order)
			if err != nil {
				return err
			}

			n := algosht.GridSize(bandwidth)
			a.logger.Debug("sampled harmonic", "bandwidth", bandwidth, "degree", degree, "order", order)

			if imagPath != "" {
				if err := writeGridFile(imagPath, im, n); err != nil {
					return fmt.Errorf("write imaginary plane: %w", err)
				}
			}

			return writeGrid(cmd.OutOrStdout(), re, n)
		},
	}

	cmd.Flags().IntVarP(&bandwidth, "bandwidth", "b", 8, "bandwidth B (grid side 2B)")
	cmd.Flags().IntVarP(&degree, "degree", "l", 0, "harmonic degree l")
	cmd.Flags().IntVarP(&order, "order", "m", 0, "harmonic order m")
	cmd.Flags().StringVar(&imagPath, "imag", "", "write the imaginary plane to this file")

	return cmd
}

func newWeightsCommand(a *app) *cobra.Command {
	var bandwidth int

	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Print the 4B quadrature weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := algosht.MakeWeights(bandwidth)
			if err != nil {
				return err
			}

			a.logger.Debug("weights computed", "bandwidth", bandwidth, "count", len(w))

			out := cmd.OutOrStdout()
			for _, v := range w {
				if _, err := fmt.Fprintln(out, formatFloat(v)); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&bandwidth, "bandwidth", "b", 8, "bandwidth B")

	return cmd
}
