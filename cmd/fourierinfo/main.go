// Command fourierinfo inspects the discrete Fourier spectrum of a signal and
// reports band-limited reconstruction quality from the terminal.
//
// Examples:
//
//	fourierinfo spectrum --signal step --top 10
//	fourierinfo spectrum --input samples.txt --centered
//	fourierinfo reconstruct --signal circle --kmin 0 --kmax 5
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/guilmont/web-fourier/fourier"
	"github.com/guilmont/web-fourier/signal"
)

var rootCmd = &cobra.Command{
	Use:   "fourierinfo",
	Short: "Inspect discrete Fourier spectra of signals",
	Long: `fourierinfo computes the direct discrete Fourier transform of a signal
and prints its power spectrum, phases, and band-limited reconstruction
quality. Signals come from the built-in generators or from a text file
with one sample per line.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, viper.GetViper())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("signal", "step", "built-in signal name (sine, square, step, noise, circle, ellipse, lissajous, star)")
	rootCmd.PersistentFlags().String("input", "", "read real samples from a file instead, one per line")
	rootCmd.PersistentFlags().Int("points", 500, "sample count for built-in signals")
	rootCmd.PersistentFlags().Int64("seed", 1, "seed for the noise generator")

	viper.BindPFlag("signal", rootCmd.PersistentFlags().Lookup("signal"))
	viper.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input"))
	viper.BindPFlag("points", rootCmd.PersistentFlags().Lookup("points"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
}

func initConfig() {
	viper.SetEnvPrefix("FOURIERINFO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// bindFlags lets environment variables and config values fill in any flag the
// user did not set on the command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				lastErr = err
			}
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			lastErr = err
		}
	})

	return lastErr
}

// loadEngine builds an engine from the shared signal selection flags.
func loadEngine() (*fourier.Engine, error) {
	if path := viper.GetString("input"); path != "" {
		data, err := readSamples(path)
		if err != nil {
			return nil, err
		}
		return fourier.NewFromReal(data)
	}

	gen := signal.NewGenerator(
		signal.WithPoints(viper.GetInt("points")),
		signal.WithSeed(viper.GetInt64("seed")),
	)

	name := viper.GetString("signal")
	switch name {
	case "sine":
		data, err := gen.Sine(4, 1)
		if err != nil {
			return nil, err
		}
		return fourier.NewFromReal(data)
	case "square":
		data, err := gen.Square(3, 1)
		if err != nil {
			return nil, err
		}
		return fourier.NewFromReal(data)
	case "step":
		n := gen.Points()
		data, err := gen.Step(n/3-1, 2*n/3)
		if err != nil {
			return nil, err
		}
		return fourier.NewFromReal(data)
	case "noise":
		data, err := gen.WhiteNoise(1)
		if err != nil {
			return nil, err
		}
		return fourier.NewFromReal(data)
	case "circle":
		curve, err := gen.Circle(1)
		if err != nil {
			return nil, err
		}
		return fourier.New(curve)
	case "ellipse":
		curve, err := gen.Ellipse(2, 1)
		if err != nil {
			return nil, err
		}
		return fourier.New(curve)
	case "lissajous":
		curve, err := gen.Lissajous(3, 2, 0, 1)
		if err != nil {
			return nil, err
		}
		return fourier.New(curve)
	case "star":
		curve, err := gen.Star(5, 1, 0.4)
		if err != nil {
			return nil, err
		}
		return fourier.New(curve)
	default:
		return nil, fmt.Errorf("unknown signal %q", name)
	}
}

func readSamples(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var data []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		data = append(data, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return data, nil
}
