package bigram

import (
	"fmt"
	"math"
)

// CrossEntropy returns the mean negative log probability, in nats per
// transition, of the adjacent character pairs of text under the model.
// Pairs where either character is outside the vocabulary are skipped, not
// penalized; a text with no scorable pair at all returns
// ErrNoScorableTransitions.
func (m *Model) CrossEntropy(text string) (float64, error) {
	if m.Size() == 0 {
		return 0, fmt.Errorf("bigram: %w", ErrEmptyModel)
	}
	var nll float64
	scored := 0
	prev := -1
	for _, r := range text {
		cur := m.vocab.Index(r)
		if prev >= 0 && cur >= 0 {
			nll -= math.Log(m.probs.At(prev, cur))
			scored++
		}
		prev = cur
	}
	if scored == 0 {
		return 0, fmt.Errorf("bigram: %w", ErrNoScorableTransitions)
	}
	return nll / float64(scored), nil
}

// Perplexity returns exp of the cross-entropy of text under the model.
// It is always >= 1, and approaches 1 when the model is near-certain about
// every transition in the text.
func (m *Model) Perplexity(text string) (float64, error) {
	ce, err := m.CrossEntropy(text)
	if err != nil {
		return 0, err
	}
	return math.Exp(ce), nil
}
