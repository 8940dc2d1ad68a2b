package cli

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/happyhackingspace/chargram/internal/corpus"
	"github.com/spf13/cobra"
)

func (c *CLI) newFetchCommand() *cobra.Command {
	var dataFolder string

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Download a page as corpus material into the data folder",
		Args:  cobra.ExactArgs(1),
		Example: `  chargram fetch https://www.gutenberg.org/cache/epub/1342/pg1342.txt
  chargram fetch https://example.com/article.html --data-folder data`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			slog.Info("Fetching corpus", "url", target)
			text, err := corpus.LoadURL(target)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(dataFolder, 0755); err != nil {
				return fmt.Errorf("create data folder: %w", err)
			}
			dest := filepath.Join(dataFolder, corpusFileName(target))
			if err := os.WriteFile(dest, []byte(text), 0644); err != nil {
				return fmt.Errorf("write corpus file: %w", err)
			}
			slog.Info("Corpus saved", "path", dest, "chars", len(text))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataFolder, "data-folder", "data", "Folder to store fetched corpus files")
	return cmd
}

// corpusFileName derives a .txt file name from a URL, falling back to the
// host when the path has no usable base.
func corpusFileName(rawURL string) string {
	name := "corpus"
	if u, err := url.Parse(rawURL); err == nil {
		if base := filepath.Base(u.Path); base != "." && base != "/" && base != "" {
			name = base
		} else if u.Host != "" {
			name = u.Host
		}
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
	return sanitized + ".txt"
}
