package cli

import (
	"fmt"
	"log/slog"
	"math"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

func (c *CLI) newEvaluateCommand() *cobra.Command {
	var modelPath string

	cmd := &cobra.Command{
		Use:   "evaluate [file-folder-or-url]",
		Short: "Score text perplexity under a trained model",
		Args:  cobra.MaximumNArgs(1),
		Example: `  chargram evaluate heldout.txt --model model.json
  chargram evaluate https://example.com/article.html
  cat heldout.txt | chargram evaluate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			text, source, err := readText(target)
			if err != nil {
				return err
			}

			model, err := loadModel(modelPath)
			if err != nil {
				return err
			}

			slog.Info("Evaluating", "source", source, "chars", utf8.RuneCountInString(text))
			start := time.Now()
			ce, err := model.CrossEntropy(text)
			if err != nil {
				return err
			}
			slog.Debug("Evaluation completed", "duration", time.Since(start))

			fmt.Printf("Perplexity:    %.4f\n", math.Exp(ce))
			fmt.Printf("Cross-entropy: %.4f nats/char\n", ce)
			fmt.Printf("Vocabulary:    %d characters\n", model.Size())
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "Path to model file (default: auto-detect model.json)")
	return cmd
}
