package cli

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/happyhackingspace/chargram"
	"github.com/happyhackingspace/chargram/bigram"
	"github.com/happyhackingspace/chargram/internal/corpus"
	"github.com/spf13/cobra"
)

func (c *CLI) newTrainCommand() *cobra.Command {
	var corpusPath string
	var alpha float64
	var normalize bool

	cmd := &cobra.Command{
		Use:   "train <modelfile>",
		Short: "Train a bigram model on a text corpus",
		Args:  cobra.ExactArgs(1),
		Example: `  chargram train model.json --corpus corpus.txt
  chargram train model.json --corpus data --alpha 0.5
  chargram train model.json --corpus https://example.com/page.html
  cat corpus.txt | chargram train model.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			modelPath := args[0]
			text, source, err := readText(corpusPath)
			if err != nil {
				return err
			}
			if normalize {
				text = corpus.Normalize(text)
			}

			slog.Info("Training model", "source", source, "chars", utf8.RuneCountInString(text), "alpha", alpha)
			start := time.Now()
			model, err := chargram.Train(text, &chargram.TrainConfig{Alpha: alpha, Verbose: c.verbose})
			if err != nil {
				return err
			}
			slog.Debug("Training completed", "vocabulary", model.Size(), "duration", time.Since(start))

			if err := model.Save(modelPath); err != nil {
				return err
			}
			slog.Info("Model saved", "path", modelPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "Corpus file, folder, or URL (default: stdin)")
	cmd.Flags().Float64Var(&alpha, "alpha", bigram.DefaultAlpha, "Additive smoothing strength")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Lowercase and collapse whitespace before training")
	return cmd
}
