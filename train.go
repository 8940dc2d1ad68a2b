package chargram

import (
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/happyhackingspace/chargram/bigram"
)

// TrainConfig holds configuration for training.
type TrainConfig struct {
	// Alpha is the additive smoothing strength; zero selects
	// bigram.DefaultAlpha.
	Alpha   float64
	Verbose bool
}

// Train trains a bigram model on the corpus text. Training is atomic: it
// either returns a complete model or an error, and it never mutates a
// model returned by an earlier call.
func Train(corpus string, config *TrainConfig) (*Model, error) {
	alpha := bigram.DefaultAlpha
	verbose := false
	if config != nil {
		if config.Alpha != 0 {
			alpha = config.Alpha
		}
		verbose = config.Verbose
	}

	if verbose {
		slog.Debug("Training bigram model", "chars", utf8.RuneCountInString(corpus), "alpha", alpha)
	}
	start := time.Now()
	lm, err := bigram.Train(corpus, alpha)
	if err != nil {
		return nil, fmt.Errorf("chargram: %w", err)
	}
	if verbose {
		slog.Debug("Training completed", "vocabulary", lm.Size(), "duration", time.Since(start))
	}
	return &Model{lm: lm}, nil
}
