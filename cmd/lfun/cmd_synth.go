// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lfun/dataset"
	"github.com/katalvlaran/lfun/lfunc"
	"github.com/katalvlaran/lfun/synthetic"
)

const (
	minFFTNN = 64
	maxFFTNN = 1 << 20

	// float64 kinds cannot confirm zeros much beyond this many bits.
	syntheticPrecLimit = 40
)

var (
	synthKind   string
	synthName   string
	synthZeros  int
	synthDegree int
	synthA      float64
	synthH      float64
	synthOut    string
)

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Write a synthetic dataset with known zeros",
	Long: `Generates a self-dual dataset from a closed-form function whose zeros are
known exactly. The grid size is the smallest power of two whose output region
holds at least --zeros zeros.

Kinds:
  cos         Λ(t) = cos t, zeros at π/2 + kπ
  stationary  Λ(t) = cos t − 0.99, close zero pairs around every 2kπ`,
	Args: cobra.NoArgs,
	RunE: runSynth,
}

func init() {
	synthCmd.Flags().StringVar(&synthKind, "kind", "cos", "Synthetic function kind")
	synthCmd.Flags().StringVar(&synthName, "name", "", "Dataset name (default: the kind)")
	synthCmd.Flags().IntVar(&synthZeros, "zeros", 10, "Minimum number of zeros in the output region")
	synthCmd.Flags().IntVar(&synthDegree, "degree", 2, "Degree d")
	synthCmd.Flags().Float64Var(&synthA, "a", 4, "Sample density A")
	synthCmd.Flags().Float64Var(&synthH, "h", 8, "Gaussian width H of the rank sum")
	synthCmd.Flags().StringVarP(&synthOut, "output", "o", "", "Output file (required)")
	synthCmd.MarkFlagRequired("output")
}

func runSynth(cmd *cobra.Command, args []string) error {
	k, err := synthetic.Lookup(synthKind)
	if err != nil {
		return err
	}
	if synthZeros <= 0 {
		return fmt.Errorf("--zeros must be > 0, got %d", synthZeros)
	}
	if cfg.Precision.Target > syntheticPrecLimit {
		logger.Warn("target precision exceeds what synthetic samples can confirm",
			zap.Uint("target", cfg.Precision.Target),
			zap.Int("limit", syntheticPrecLimit))
	}

	nn, err := gridFor(k, synthZeros, synthA, cfg.Zeros.OutputRatio)
	if err != nil {
		return err
	}
	params := lfunc.Params{Degree: synthDegree, A: synthA, H: synthH, FFTNN: nn}
	L, _, err := synthetic.NewContext(k, params, cfg.ContextOptions(logger)...)
	if err != nil {
		return err
	}

	name := synthName
	if name == "" {
		name = k.Name
	}
	rec, err := dataset.FromContext(name, L)
	if err != nil {
		return err
	}
	if err := dataset.Save(synthOut, rec); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: kind=%s fft_nn=%d samples=%d\n",
		synthOut, k.Name, nn, len(rec.Samples.Primal))
	return nil
}

// gridFor returns the smallest power of two FFTNN ≥ minFFTNN whose output
// region [0, FFTNN/(ratio·A)] holds at least want zeros of k.
func gridFor(k synthetic.Kind, want int, a float64, ratio int) (int, error) {
	for nn := minFFTNN; nn <= maxFFTNN; nn *= 2 {
		if len(k.Zeros(float64(nn/ratio)/a)) >= want {
			return nn, nil
		}
	}
	return 0, fmt.Errorf("%d zeros of %s need fft_nn above %d", want, k.Name, maxFFTNN)
}
