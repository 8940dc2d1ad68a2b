// Package corpus loads training text from files, folders, URLs, and HTML
// documents.
package corpus

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// textExtensions are the file types picked up when loading a folder.
var textExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".md":   true,
	".html": true,
	".htm":  true,
}

// Load reads corpus text from path, which may be a single file or a
// folder. Folders contribute every recognized file in sorted name order,
// concatenated with newlines. HTML files are reduced to their visible
// text.
func Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("corpus: %w", err)
	}
	if info.IsDir() {
		return loadFolder(path)
	}
	return loadFile(path)
}

func loadFolder(folder string) (string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return "", fmt.Errorf("corpus: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !textExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return "", fmt.Errorf("corpus: no corpus files in %s", folder)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		text, err := loadFile(filepath.Join(folder, name))
		if err != nil {
			return "", err
		}
		slog.Debug("Loaded corpus file", "file", name, "chars", len(text))
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n"), nil
}

func loadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("corpus: %w", err)
	}
	if isHTMLPath(path) {
		return ExtractText(string(data))
	}
	return string(data), nil
}

func isHTMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}

// LoadURL fetches a page and reduces it to corpus text when the response
// is HTML.
func LoadURL(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("corpus: fetch URL: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("corpus: fetch URL: HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("corpus: read response: %w", err)
	}
	content := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") || LooksLikeHTML(content) {
		return ExtractText(content)
	}
	return content, nil
}

// LooksLikeHTML reports whether content starts like an HTML document.
func LooksLikeHTML(content string) bool {
	head := strings.ToLower(strings.TrimSpace(content))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// ExtractText reduces an HTML document to its visible text with
// whitespace collapsed. Script, style, and noscript content is dropped.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("corpus: parse HTML: %w", err)
	}
	doc.Find("script, style, noscript").Remove()
	return CollapseWhitespace(doc.Text()), nil
}

// CollapseWhitespace replaces runs of whitespace, including newlines, with
// a single space.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Normalize lowercases text and collapses whitespace.
func Normalize(text string) string {
	return CollapseWhitespace(strings.ToLower(text))
}
