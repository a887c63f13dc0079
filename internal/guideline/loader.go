package guideline

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"alimgen/internal/domain"
)

var (
	figurePattern    = regexp.MustCompile(`(?s)<figure>.*?</figure>`)
	imgPattern       = regexp.MustCompile(`<img[^>]*>`)
	blankRunsPattern = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// Loader reads the compliance-guideline corpus from a directory of markdown
// and text documents, strips embedded image markup, and chunks the remainder
// for indexing. A missing corpus degrades to an empty slice, never an error.
type Loader struct {
	dir     string
	chunker domain.Chunker
	log     *slog.Logger
}

func NewLoader(dir string, chunker domain.Chunker, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{dir: dir, chunker: chunker, log: log}
}

// Load returns the ordered guideline chunks across all documents.
func (l *Loader) Load() []string {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		l.log.Warn("guideline corpus unavailable, continuing without guidelines", "dir", l.dir, "error", err)
		return nil
	}

	var chunks []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".md" && ext != ".txt" {
			continue
		}
		path := filepath.Join(l.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			l.log.Warn("guideline document unreadable, skipping", "path", path, "error", err)
			continue
		}
		fileChunks := l.chunker.Chunk(CleanMarkup(string(data)))
		chunks = append(chunks, fileChunks...)
		l.log.Debug("guideline document loaded", "file", entry.Name(), "chunks", len(fileChunks))
	}
	l.log.Info("guideline corpus loaded", "documents", l.dir, "chunks", len(chunks))
	return chunks
}

// CleanMarkup drops figure blocks and stray image tags left over from the
// crawled guideline pages, then collapses the resulting blank-line runs.
func CleanMarkup(text string) string {
	text = figurePattern.ReplaceAllString(text, "")
	text = imgPattern.ReplaceAllString(text, "")
	text = blankRunsPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
