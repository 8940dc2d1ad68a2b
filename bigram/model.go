package bigram

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultAlpha is the additive smoothing strength used when the caller does
// not supply one.
const DefaultAlpha = 0.75

// Model is a trained character-level bigram model. It is immutable once
// Train or ImportSnapshot returns: concurrent Generate, Perplexity, and
// ExportSnapshot calls against the same model are safe, and retraining
// always produces a fresh model without touching previously returned ones.
type Model struct {
	vocab  *Vocab
	counts *mat.Dense // raw transition counts, retained for export
	probs  *mat.Dense // smoothed row-stochastic transition matrix
	alpha  float64
}

// Train builds a model from the corpus text. Each adjacent character pair
// increments one transition count; counts are then smoothed with
// P(j|i) = (count[i][j] + alpha) / (rowSum_i + alpha*N), so every
// transition keeps a strictly positive probability and characters never
// observed as predecessors get a uniform row.
func Train(text string, alpha float64) (*Model, error) {
	if math.IsNaN(alpha) || alpha <= 0 {
		return nil, fmt.Errorf("bigram: alpha %v: %w", alpha, ErrInvalidAlpha)
	}
	vocab, err := BuildVocab(text)
	if err != nil {
		return nil, err
	}
	counts := countTransitions(text, vocab)
	return &Model{
		vocab:  vocab,
		counts: counts,
		probs:  normalize(counts, alpha),
		alpha:  alpha,
	}, nil
}

// countTransitions fills the NxN matrix of adjacent-pair counts. A text
// with no pairs (a single character) yields an all-zero matrix.
func countTransitions(text string, vocab *Vocab) *mat.Dense {
	n := vocab.Size()
	counts := mat.NewDense(n, n, nil)
	prev := -1
	for _, r := range text {
		cur := vocab.Index(r)
		if prev >= 0 && cur >= 0 {
			counts.Set(prev, cur, counts.At(prev, cur)+1)
		}
		prev = cur
	}
	return counts
}

// normalize converts counts into the smoothed row-stochastic probability
// matrix. All-zero rows come out as the uniform distribution 1/N.
func normalize(counts *mat.Dense, alpha float64) *mat.Dense {
	n, _ := counts.Dims()
	probs := mat.NewDense(n, n, nil)
	for i := range n {
		row := counts.RawRowView(i)
		denom := floats.Sum(row) + alpha*float64(n)
		dst := probs.RawRowView(i)
		for j, c := range row {
			dst[j] = (c + alpha) / denom
		}
	}
	return probs
}

// Alpha returns the smoothing strength the model was trained with.
func (m *Model) Alpha() float64 {
	return m.alpha
}

// Size returns the vocabulary size.
func (m *Model) Size() int {
	if m == nil {
		return 0
	}
	return m.vocab.Size()
}

// Runes returns the vocabulary in index order.
func (m *Model) Runes() []rune {
	return m.vocab.Runes()
}

// Prob returns the smoothed probability of next following current, or 0 if
// either character is outside the vocabulary.
func (m *Model) Prob(current, next rune) float64 {
	i := m.vocab.Index(current)
	j := m.vocab.Index(next)
	if i < 0 || j < 0 {
		return 0
	}
	return m.probs.At(i, j)
}

// Count returns the raw transition count from current to next, or 0 if
// either character is outside the vocabulary.
func (m *Model) Count(current, next rune) float64 {
	i := m.vocab.Index(current)
	j := m.vocab.Index(next)
	if i < 0 || j < 0 {
		return 0
	}
	return m.counts.At(i, j)
}
