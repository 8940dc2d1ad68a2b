package cli

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
	"unicode/utf8"

	"github.com/happyhackingspace/chargram/bigram"
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCommand() *cobra.Command {
	var modelPath string
	var length int
	var temperature float64
	var seed string
	var randSeed uint64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate text from a trained model",
		Example: `  chargram generate --model model.json --length 200
  chargram generate --length 80 --temperature 0.6 --seed q
  chargram generate --length 80 --seed-rand 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(modelPath)
			if err != nil {
				return err
			}

			var opts []bigram.GenerateOption
			if seed != "" {
				r, _ := utf8.DecodeRuneInString(seed)
				opts = append(opts, bigram.WithSeed(r))
			}
			if cmd.Flags().Changed("seed-rand") {
				opts = append(opts, bigram.WithRand(rand.New(rand.NewPCG(randSeed, randSeed))))
			}

			start := time.Now()
			text, err := model.Generate(length, temperature, opts...)
			if err != nil {
				return err
			}
			slog.Debug("Generation completed", "length", length, "temperature", temperature, "duration", time.Since(start))

			fmt.Println(text)
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "Path to model file (default: auto-detect model.json)")
	cmd.Flags().IntVar(&length, "length", 100, "Number of characters to generate")
	cmd.Flags().Float64Var(&temperature, "temperature", 1.0, "Sampling temperature; 1 samples the trained distribution")
	cmd.Flags().StringVar(&seed, "seed", "", "Seed character to start generation from")
	cmd.Flags().Uint64Var(&randSeed, "seed-rand", 0, "Random source seed for reproducible output")
	return cmd
}
