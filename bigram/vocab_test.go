package bigram

import (
	"errors"
	"testing"
)

func TestVocabInsertionOrder(t *testing.T) {
	v, err := BuildVocab("banana")
	if err != nil {
		t.Fatal(err)
	}
	want := []rune{'b', 'a', 'n'}
	got := v.Runes()
	if len(got) != len(want) {
		t.Fatalf("Runes() = %q, want %q", string(got), string(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Runes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if v.Index('a') != 1 || v.Index('b') != 0 || v.Index('n') != 2 {
		t.Errorf("indices: b=%d a=%d n=%d, want 0 1 2", v.Index('b'), v.Index('a'), v.Index('n'))
	}
	if v.Index('z') != -1 {
		t.Error("Index of missing character should be -1")
	}
}

func TestVocabAddDuplicate(t *testing.T) {
	v := NewVocab()
	id0 := v.Add('x')
	id1 := v.Add('y')
	id2 := v.Add('x')
	if id0 != 0 || id1 != 1 || id2 != 0 {
		t.Errorf("IDs: %d, %d, %d; want 0, 1, 0", id0, id1, id2)
	}
	if v.Size() != 2 {
		t.Errorf("Size = %d, want 2", v.Size())
	}
}

func TestBuildVocabTooShort(t *testing.T) {
	for _, text := range []string{"", "a"} {
		if _, err := BuildVocab(text); !errors.Is(err, ErrEmptyCorpus) {
			t.Errorf("BuildVocab(%q) err = %v, want ErrEmptyCorpus", text, err)
		}
	}
}

func TestBuildVocabSingleDistinct(t *testing.T) {
	v, err := BuildVocab("aa")
	if err != nil {
		t.Fatal(err)
	}
	if v.Size() != 1 {
		t.Errorf("Size = %d, want 1", v.Size())
	}
}

func TestBuildVocabDeterministic(t *testing.T) {
	a, err := BuildVocab("hello world")
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildVocab("hello world")
	if err != nil {
		t.Fatal(err)
	}
	if string(a.Runes()) != string(b.Runes()) {
		t.Errorf("orders differ: %q vs %q", string(a.Runes()), string(b.Runes()))
	}
}
