package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/happyhackingspace/chargram"
	"github.com/happyhackingspace/chargram/internal/corpus"
)

// readText resolves a text argument into its content. An empty target
// reads stdin; http(s) targets are fetched; anything else is a file or
// folder path.
func readText(target string) (string, string, error) {
	if target == "" {
		if isStdinTerminal() {
			return "", "", fmt.Errorf("no input: pass a file, folder, or URL, or pipe text on stdin")
		}
		text, err := readFromStdin()
		return text, "stdin", err
	}
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		slog.Debug("Fetching corpus", "url", target)
		text, err := corpus.LoadURL(target)
		return text, target, err
	}
	text, err := corpus.Load(target)
	return text, target, err
}

func isStdinTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func readFromStdin() (string, error) {
	slog.Debug("Reading from stdin")
	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	content := string(body)
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("stdin is empty")
	}
	if corpus.LooksLikeHTML(content) {
		return corpus.ExtractText(content)
	}
	return content, nil
}

func loadModel(modelPath string) (*chargram.Model, error) {
	if modelPath != "" {
		slog.Debug("Loading model", "path", modelPath)
		return chargram.Load(modelPath)
	}
	return chargram.New()
}
