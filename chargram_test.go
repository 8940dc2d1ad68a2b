package chargram

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/happyhackingspace/chargram/bigram"
)

func TestTrainDefaults(t *testing.T) {
	m, err := Train("hello world", nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Alpha() != bigram.DefaultAlpha {
		t.Errorf("Alpha = %v, want %v", m.Alpha(), bigram.DefaultAlpha)
	}
	if m.Size() != 8 {
		t.Errorf("Size = %d, want 8", m.Size())
	}
}

func TestTrainEmptyCorpus(t *testing.T) {
	if _, err := Train("", nil); !errors.Is(err, bigram.ErrEmptyCorpus) {
		t.Errorf("err = %v, want bigram.ErrEmptyCorpus", err)
	}
}

func TestTrainCustomAlpha(t *testing.T) {
	m, err := Train("ab", &TrainConfig{Alpha: 1})
	if err != nil {
		t.Fatal(err)
	}
	if m.Alpha() != 1 {
		t.Errorf("Alpha = %v, want 1", m.Alpha())
	}
	if _, err := Train("ab", &TrainConfig{Alpha: -1}); !errors.Is(err, bigram.ErrInvalidAlpha) {
		t.Errorf("err = %v, want bigram.ErrInvalidAlpha", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m, err := Train("the quick brown fox", nil)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "model.json")
	if err := m.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	orig, err := m.Perplexity("the quick")
	if err != nil {
		t.Fatal(err)
	}
	got, err := loaded.Perplexity("the quick")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(orig-got) > 1e-9 {
		t.Errorf("perplexity after reload = %v, want %v", got, orig)
	}
}

func TestExportImport(t *testing.T) {
	m, err := Train("abracadabra", &TrainConfig{Alpha: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	snapshot, err := m.Export()
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := Import(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	again, err := loaded.Export()
	if err != nil {
		t.Fatal(err)
	}
	if snapshot != again {
		t.Error("snapshot changed across an import/export round trip")
	}
}

func TestImportMalformed(t *testing.T) {
	if _, err := Import("{"); !errors.Is(err, bigram.ErrMalformedSnapshot) {
		t.Errorf("err = %v, want bigram.ErrMalformedSnapshot", err)
	}
}

func TestNewModelNotFound(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := New()
	if err == nil {
		t.Fatal("expected an error with no model file present")
	}
	if !strings.Contains(err.Error(), "model.json not found") {
		t.Errorf("err = %v, want it to name the missing file", err)
	}
}

func TestGenerateFacade(t *testing.T) {
	m, err := Train("go gophers go", nil)
	if err != nil {
		t.Fatal(err)
	}
	out, err := m.Generate(64, 0.8)
	if err != nil {
		t.Fatal(err)
	}
	if len([]rune(out)) != 64 {
		t.Errorf("generated %d characters, want 64", len([]rune(out)))
	}
	if _, err := m.Generate(10, 0); !errors.Is(err, bigram.ErrInvalidTemperature) {
		t.Errorf("err = %v, want bigram.ErrInvalidTemperature", err)
	}
}
