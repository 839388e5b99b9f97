package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	algosht "github.com/cwbudde/algo-sht"
)

func newForwardCommand(a *app) *cobra.Command {
	var imagPath string

	cmd := &cobra.Command{
		Use:   "forward <grid.csv>",
		Short: "Transform a CSV grid into packed coefficients",
		Long: "Reads a 2B×2B real plane (and optionally an imaginary plane) and prints\n" +
			"the B² coefficients as l,m,re,im rows in packed order.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, n, err := readGridFile(args[0])
			if err != nil {
				return err
			}

			var im []float64
			if imagPath != "" {
				var m int
				if im, m, err = readGridFile(imagPath); err != nil {
					return err
				}

				if m != n {
					return fmt.Errorf("%w: real %dx%d, imaginary %dx%d", algosht.ErrShapeMismatch, n, n, m, m)
				}
			}

			if n%2 != 0 {
				return fmt.Errorf("%w: %d", algosht.ErrOddSize, n)
			}

			b := n / 2

			t, err := a.newTransformer(b)
			if err != nil {
				return err
			}

			coeffs, err := algosht.NewCoefficients(b)
			if err != nil {
				return err
			}

			if err := t.Forward(coeffs, re, im); err != nil {
				return err
			}

			a.logger.Info("forward transform", "bandwidth", b, "backend", t.Backend(), "real", im == nil)

			return writeCoefficients(cmd.OutOrStdout(), coeffs)
		},
	}

	cmd.Flags().StringVar(&imagPath, "imag", "", "CSV file with the imaginary plane")

	return cmd
}

func newInverseCommand(a *app) *cobra.Command {
	var imagPath string

	cmd := &cobra.Command{
		Use:   "inverse <coeffs.csv>",
		Short: "Synthesise a CSV grid from packed coefficients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			coeffs, err := readCoefficients(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			t, err := a.newTransformer(coeffs.Bandwidth)
			if err != nil {
				return err
			}

			n := algosht.GridSize(coeffs.Bandwidth)
			re := make([]float64, n*n)
			im := make([]float64, n*n)

			if err := t.Inverse(re, im, coeffs); err != nil {
				return err
			}

			a.logger.Info("inverse transform", "bandwidth", coeffs.Bandwidth, "backend", t.Backend())

			if imagPath != "" {
				if err := writeGridFile(imagPath, im, n); err != nil {
					return fmt.Errorf("write imaginary plane: %w", err)
				}
			}

			return writeGrid(cmd.OutOrStdout(), re, n)
		},
	}

	cmd.Flags().StringVar(&imagPath, "imag", "", "write the imaginary plane to this file")

	return cmd
}
