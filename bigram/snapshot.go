package bigram

import (
	"encoding/json"
	"fmt"
	"math"
	"unicode/utf8"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

// Snapshot is the portable JSON form of a trained model. Raw counts plus
// alpha are stored rather than the derived probability table: counts are
// exact integers, so export/import round trips are byte-stable, and the
// probability table is rebuilt on import.
type Snapshot struct {
	Version    int         `json:"version"`
	Vocabulary []string    `json:"vocabulary"`
	Alpha      float64     `json:"alpha"`
	Counts     [][]float64 `json:"counts"`
}

// ExportSnapshot serializes the model to indented JSON.
func ExportSnapshot(m *Model) ([]byte, error) {
	if m.Size() == 0 {
		return nil, fmt.Errorf("bigram: %w", ErrEmptyModel)
	}
	n := m.vocab.Size()
	snap := Snapshot{
		Version:    SnapshotVersion,
		Vocabulary: make([]string, n),
		Alpha:      m.alpha,
		Counts:     make([][]float64, n),
	}
	for i := range n {
		snap.Vocabulary[i] = string(m.vocab.Rune(i))
		row := make([]float64, n)
		copy(row, m.counts.RawRowView(i))
		snap.Counts[i] = row
	}
	return json.MarshalIndent(snap, "", "  ")
}

// ImportSnapshot reconstructs a model from snapshot bytes produced by
// ExportSnapshot.
func ImportSnapshot(data []byte) (*Model, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("bigram: %v: %w", err, ErrMalformedSnapshot)
	}
	return snap.Model()
}

// Model validates the snapshot and rebuilds the trained model from it.
func (s *Snapshot) Model() (*Model, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("bigram: snapshot version %d: %w", s.Version, ErrMalformedSnapshot)
	}
	if len(s.Vocabulary) == 0 {
		return nil, fmt.Errorf("bigram: empty vocabulary: %w", ErrMalformedSnapshot)
	}
	if math.IsNaN(s.Alpha) || s.Alpha <= 0 {
		return nil, fmt.Errorf("bigram: alpha %v: %w", s.Alpha, ErrMalformedSnapshot)
	}

	vocab := NewVocab()
	for _, entry := range s.Vocabulary {
		// U+FFFD is a legitimate vocabulary character (invalid UTF-8 in
		// the training corpus decodes to it), so only reject entries
		// that are badly encoded or not exactly one character.
		if !utf8.ValidString(entry) || utf8.RuneCountInString(entry) != 1 {
			return nil, fmt.Errorf("bigram: vocabulary entry %q is not a single character: %w", entry, ErrMalformedSnapshot)
		}
		r, _ := utf8.DecodeRuneInString(entry)
		if vocab.Index(r) >= 0 {
			return nil, fmt.Errorf("bigram: duplicate vocabulary entry %q: %w", entry, ErrMalformedSnapshot)
		}
		vocab.Add(r)
	}

	n := vocab.Size()
	if len(s.Counts) != n {
		return nil, fmt.Errorf("bigram: counts have %d rows for %d characters: %w", len(s.Counts), n, ErrMalformedSnapshot)
	}
	counts := mat.NewDense(n, n, nil)
	for i, row := range s.Counts {
		if len(row) != n {
			return nil, fmt.Errorf("bigram: counts row %d has %d columns for %d characters: %w", i, len(row), n, ErrMalformedSnapshot)
		}
		for j, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
				return nil, fmt.Errorf("bigram: counts[%d][%d] = %v: %w", i, j, c, ErrMalformedSnapshot)
			}
			counts.Set(i, j, c)
		}
	}

	probs := normalize(counts, s.Alpha)
	for i := range n {
		if sum := floats.Sum(probs.RawRowView(i)); math.Abs(sum-1) > 1e-9 {
			return nil, fmt.Errorf("bigram: probability row %d sums to %v: %w", i, sum, ErrMalformedSnapshot)
		}
	}

	return &Model{
		vocab:  vocab,
		counts: counts,
		probs:  probs,
		alpha:  s.Alpha,
	}, nil
}
