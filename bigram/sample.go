package bigram

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
)

// minTemperature bounds the 1/T exponent; temperatures at or below it
// behave as near-greedy selection.
const minTemperature = 1e-6

type generateOptions struct {
	temperature float64
	seed        rune
	haveSeed    bool
	rng         *rand.Rand
}

// GenerateOption configures a single Generate call.
type GenerateOption func(*generateOptions)

// WithTemperature adjusts the randomness of character selection.
// A value of 1 samples the trained distribution unchanged, small values
// approach always picking the most probable next character, and values
// above 1 flatten the distribution toward uniform.
func WithTemperature(t float64) GenerateOption {
	return func(o *generateOptions) { o.temperature = t }
}

// WithSeed sets the character generation starts from. A seed outside the
// vocabulary falls back to the first vocabulary character.
func WithSeed(r rune) GenerateOption {
	return func(o *generateOptions) {
		o.seed = r
		o.haveSeed = true
	}
}

// WithRand sets the random source, for reproducible generation. Each
// Generate call should get its own source; the model itself holds no
// random state.
func WithRand(rng *rand.Rand) GenerateOption {
	return func(o *generateOptions) { o.rng = rng }
}

// Generate produces exactly length characters by walking the transition
// matrix from the seed character, sampling each step from the current row
// reshaped by temperature: p^(1/T), renormalized. The rescaling is
// computed in log space so very peaked rows and tiny temperatures stay
// finite.
func (m *Model) Generate(length int, opts ...GenerateOption) (string, error) {
	if m.Size() == 0 {
		return "", fmt.Errorf("bigram: %w", ErrEmptyModel)
	}
	if length < 0 {
		return "", fmt.Errorf("bigram: length %d: %w", length, ErrInvalidLength)
	}

	o := &generateOptions{temperature: 1.0}
	for _, opt := range opts {
		opt(o)
	}
	if math.IsNaN(o.temperature) || o.temperature <= 0 {
		return "", fmt.Errorf("bigram: temperature %v: %w", o.temperature, ErrInvalidTemperature)
	}
	if length == 0 {
		return "", nil
	}

	rng := o.rng
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}

	cur := 0
	if o.haveSeed {
		if i := m.vocab.Index(o.seed); i >= 0 {
			cur = i
		}
	}

	invT := 1.0 / math.Max(o.temperature, minTemperature)
	n := m.vocab.Size()
	weights := make([]float64, n)

	var b strings.Builder
	b.Grow(length)
	for range length {
		row := m.probs.RawRowView(cur)
		for j, p := range row {
			weights[j] = math.Log(p) * invT
		}
		// Subtract the max log weight before exponentiation so the
		// largest weight is exactly 1 and the rest cannot overflow.
		maxLog := floats.Max(weights)
		total := 0.0
		for j := range weights {
			weights[j] = math.Exp(weights[j] - maxLog)
			total += weights[j]
		}

		u := rng.Float64() * total
		next := n - 1
		for j, w := range weights {
			u -= w
			if u < 0 {
				next = j
				break
			}
		}

		b.WriteRune(m.vocab.Rune(next))
		cur = next
	}
	return b.String(), nil
}
