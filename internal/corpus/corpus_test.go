package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractText(t *testing.T) {
	html := `<html><head><title>Title</title><style>body { color: red; }</style></head>
<body><script>var x = 1;</script><p>Hello</p>  <p>world</p></body></html>`
	text, err := ExtractText(html)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(text, "color") || strings.Contains(text, "var x") {
		t.Errorf("script/style content leaked into %q", text)
	}
	if !strings.Contains(text, "Hello world") {
		t.Errorf("ExtractText = %q, want it to contain %q", text, "Hello world")
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace("a\n\n  b\tc  ")
	if got != "a b c" {
		t.Errorf("CollapseWhitespace = %q, want %q", got, "a b c")
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize("Hello\n WORLD")
	if got != "hello world" {
		t.Errorf("Normalize = %q, want %q", got, "hello world")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0644); err != nil {
		t.Fatal(err)
	}
	text, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if text != "plain text" {
		t.Errorf("Load = %q, want %q", text, "plain text")
	}
}

func TestLoadFolder(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.txt":    "second",
		"a.txt":    "first",
		"page.htm": "<html><body>third</body></html>",
		"skip.bin": "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	text, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if text != "first\nsecond\nthird" {
		t.Errorf("Load = %q, want %q", text, "first\nsecond\nthird")
	}
}

func TestLoadEmptyFolder(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected an error for a folder with no corpus files")
	}
}

func TestLooksLikeHTML(t *testing.T) {
	if !LooksLikeHTML("  <!DOCTYPE html><html></html>") {
		t.Error("doctype prefix not detected")
	}
	if LooksLikeHTML("once upon a time") {
		t.Error("plain text misdetected as HTML")
	}
}
