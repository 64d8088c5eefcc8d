package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var spectrumCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "Print the power spectrum of a signal",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		centered, _ := cmd.Flags().GetBool("centered")
		top, _ := cmd.Flags().GetInt("top")

		var freqs, power []float64
		if centered {
			freqs = engine.FrequenciesCentered()
			power = engine.PowerSpectrumCentered()
		} else {
			freqs = engine.Frequencies()
			power = engine.PowerSpectrum()
		}
		phases := engine.Phases()

		order := make([]int, len(power))
		for i := range order {
			order[i] = i
		}
		if top > 0 && top < len(order) {
			// Strongest bins first when truncating.
			sort.Slice(order, func(a, b int) bool { return power[order[a]] > power[order[b]] })
			order = order[:top]
			sort.Ints(order)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Bin\tFrequency\tPower\tPhase [rad]\n")
		fmt.Fprintf(tw, "---\t---------\t-----\t-----------\n")
		for _, i := range order {
			phase := phases[i]
			if centered {
				// The phase table stays in natural order; map the shifted bin back.
				n := len(power)
				phase = phases[(i+(n+1)/2)%n]
			}
			fmt.Fprintf(tw, "%d\t%.0f\t%.6g\t%+.4f\n", i, freqs[i], power[i], phase)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		total := floats.Sum(power)
		peak := floats.MaxIdx(power)
		fmt.Printf("\npoints: %d  max frequency: %d\n", engine.Size(), engine.MaxFrequency())
		fmt.Printf("total power: %.6g  mean: %.6g  stddev: %.6g\n",
			total, stat.Mean(power, nil), math.Sqrt(stat.Variance(power, nil)))
		fmt.Printf("peak: bin %d (frequency %.0f, power %.6g)\n", peak, freqs[peak], power[peak])

		return nil
	},
}

func init() {
	spectrumCmd.Flags().Bool("centered", false, "center the spectrum around frequency zero")
	spectrumCmd.Flags().Int("top", 0, "print only the N strongest bins (0 = all)")
	rootCmd.AddCommand(spectrumCmd)
}
