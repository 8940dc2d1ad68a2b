// Package bigram implements a character-level bigram language model:
// transition counting, additive smoothing, perplexity scoring,
// temperature-controlled sampling, and a JSON snapshot codec.
package bigram

import "fmt"

// Vocab maps between characters and integer indices. Indices are assigned
// in order of first occurrence, and that order is part of the snapshot
// contract.
type Vocab struct {
	toIndex map[rune]int
	toRune  []rune
}

// NewVocab creates an empty vocabulary.
func NewVocab() *Vocab {
	return &Vocab{
		toIndex: make(map[rune]int),
	}
}

// Add adds a character to the vocabulary if not already present, returns
// its index.
func (v *Vocab) Add(r rune) int {
	if i, ok := v.toIndex[r]; ok {
		return i
	}
	i := len(v.toRune)
	v.toIndex[r] = i
	v.toRune = append(v.toRune, r)
	return i
}

// Index returns the index for a character, or -1 if not found.
func (v *Vocab) Index(r rune) int {
	if i, ok := v.toIndex[r]; ok {
		return i
	}
	return -1
}

// Rune returns the character at the given index.
func (v *Vocab) Rune(i int) rune {
	return v.toRune[i]
}

// Size returns the number of distinct characters.
func (v *Vocab) Size() int {
	if v == nil {
		return 0
	}
	return len(v.toRune)
}

// Runes returns a copy of the vocabulary in index order.
func (v *Vocab) Runes() []rune {
	out := make([]rune, len(v.toRune))
	copy(out, v.toRune)
	return out
}

// BuildVocab scans text and returns the vocabulary of its distinct
// characters in order of first occurrence. Text shorter than two
// characters cannot produce a transition and is rejected.
func BuildVocab(text string) (*Vocab, error) {
	v := NewVocab()
	total := 0
	for _, r := range text {
		v.Add(r)
		total++
	}
	if total < 2 || v.Size() == 0 {
		return nil, fmt.Errorf("bigram: %w", ErrEmptyCorpus)
	}
	return v, nil
}
