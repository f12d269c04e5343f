package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/contents"
	"github.com/takaishi/minigrep/search"
)

// Run loads the configured file, filters its lines and writes the matches to out,
// one per line. No matches is not an error.
func Run(cfg *config.Config, out io.Writer) error {
	text, err := contents.Load(cfg.FilePath)
	if err != nil {
		return err
	}
	slog.Debug("file loaded", "path", cfg.FilePath, "bytes", len(text))

	var results []string
	if cfg.IgnoreCase {
		results = search.SearchCaseInsensitive(cfg.Query, text)
	} else {
		results = search.Search(cfg.Query, text)
	}
	slog.Debug("search finished", "ignore_case", cfg.IgnoreCase, "matches", len(results))

	w := newLineWriter(out)
	for _, line := range results {
		if err := w.WriteLine(line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
