package chunker

import (
	"strings"
	"unicode/utf8"
)

// Guideline documents are Korean prose; anything at or below this many runes
// carries too little context to be worth indexing.
const minChunkRunes = 50

// ParagraphChunker accumulates blank-line-separated paragraphs into chunks of
// roughly chunkSize runes. Paragraphs are never split internally.
type ParagraphChunker struct {
	chunkSize    int
	chunkOverlap int
}

// NewParagraphChunker creates a chunker with the given target size in runes.
// chunkOverlap is accepted for interface compatibility; no sliding-window
// overlap is applied.
func NewParagraphChunker(chunkSize, chunkOverlap int) *ParagraphChunker {
	if chunkSize <= 0 {
		chunkSize = 800
	}
	if chunkOverlap < 0 {
		chunkOverlap = 0
	}
	return &ParagraphChunker{chunkSize: chunkSize, chunkOverlap: chunkOverlap}
}

// Chunk splits text on blank-line boundaries and greedily packs paragraphs
// until adding the next one would reach the target size. Chunks with 50 or
// fewer runes after trimming are discarded.
func (c *ParagraphChunker) Chunk(text string) []string {
	paragraphs := strings.Split(text, "\n\n")

	var chunks []string
	var buf strings.Builder
	for _, paragraph := range paragraphs {
		if utf8.RuneCountInString(buf.String())+utf8.RuneCountInString(paragraph) < c.chunkSize {
			buf.WriteString(paragraph)
			buf.WriteString("\n\n")
			continue
		}
		if flushed := strings.TrimSpace(buf.String()); flushed != "" {
			chunks = append(chunks, flushed)
		}
		buf.Reset()
		buf.WriteString(paragraph)
		buf.WriteString("\n\n")
	}
	if flushed := strings.TrimSpace(buf.String()); flushed != "" {
		chunks = append(chunks, flushed)
	}

	kept := chunks[:0]
	for _, ch := range chunks {
		if utf8.RuneCountInString(strings.TrimSpace(ch)) > minChunkRunes {
			kept = append(kept, ch)
		}
	}
	return kept
}
