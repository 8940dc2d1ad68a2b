// Package chargram trains, scores, and samples character-level bigram
// language models.
//
//	model, _ := chargram.Train("to be or not to be", nil)
//	text, _ := model.Generate(100, 0.8)
//	ppl, _ := model.Perplexity("to be")
//	fmt.Println(text, ppl)
package chargram

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/happyhackingspace/chargram/bigram"
)

// Model wraps a trained bigram language model. It is immutable once built
// and safe for concurrent use.
type Model struct {
	lm *bigram.Model
}

// New loads a model from "model.json", searching the current directory
// and parent directories up to the module root (where go.mod lives).
func New() (*Model, error) {
	path, err := findModel("model.json")
	if err != nil {
		return nil, fmt.Errorf("chargram: %w", err)
	}
	return Load(path)
}

func findModel(name string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		// Stop at module root
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%s not found", name)
}

// Load reads a model snapshot from a file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chargram: %w", err)
	}
	lm, err := bigram.ImportSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("chargram: %w", err)
	}
	return &Model{lm: lm}, nil
}

// Save writes the model snapshot to a file.
func (m *Model) Save(path string) error {
	data, err := bigram.ExportSnapshot(m.lm)
	if err != nil {
		return fmt.Errorf("chargram: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Export serializes the model to its snapshot text.
func (m *Model) Export() (string, error) {
	data, err := bigram.ExportSnapshot(m.lm)
	if err != nil {
		return "", fmt.Errorf("chargram: %w", err)
	}
	return string(data), nil
}

// Import reconstructs a model from snapshot text produced by Export.
func Import(snapshot string) (*Model, error) {
	lm, err := bigram.ImportSnapshot([]byte(snapshot))
	if err != nil {
		return nil, fmt.Errorf("chargram: %w", err)
	}
	return &Model{lm: lm}, nil
}

// Generate samples exactly length characters at the given temperature.
// Further options (seed character, random source) are forwarded to
// bigram.Generate.
func (m *Model) Generate(length int, temperature float64, opts ...bigram.GenerateOption) (string, error) {
	all := append([]bigram.GenerateOption{bigram.WithTemperature(temperature)}, opts...)
	out, err := m.lm.Generate(length, all...)
	if err != nil {
		return "", fmt.Errorf("chargram: %w", err)
	}
	return out, nil
}

// Perplexity scores text under the model; see bigram.Model.Perplexity for
// the out-of-vocabulary policy.
func (m *Model) Perplexity(text string) (float64, error) {
	ppl, err := m.lm.Perplexity(text)
	if err != nil {
		return 0, fmt.Errorf("chargram: %w", err)
	}
	return ppl, nil
}

// CrossEntropy returns the mean negative log probability of text under the
// model, in nats per transition.
func (m *Model) CrossEntropy(text string) (float64, error) {
	ce, err := m.lm.CrossEntropy(text)
	if err != nil {
		return 0, fmt.Errorf("chargram: %w", err)
	}
	return ce, nil
}

// Size returns the vocabulary size.
func (m *Model) Size() int {
	return m.lm.Size()
}

// Alpha returns the smoothing strength the model was trained with.
func (m *Model) Alpha() float64 {
	return m.lm.Alpha()
}
