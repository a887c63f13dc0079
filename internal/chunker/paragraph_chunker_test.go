package chunker_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"alimgen/internal/chunker"
)

var _ = Describe("ParagraphChunker", func() {
	It("packs paragraphs until the target size is reached", func() {
		c := chunker.NewParagraphChunker(100, 0)
		p1 := strings.Repeat("가", 60)
		p2 := strings.Repeat("나", 60)
		p3 := strings.Repeat("다", 60)

		chunks := c.Chunk(p1 + "\n\n" + p2 + "\n\n" + p3)

		Expect(chunks).To(HaveLen(3))
		Expect(chunks[0]).To(Equal(p1))
		Expect(chunks[1]).To(Equal(p2))
		Expect(chunks[2]).To(Equal(p3))
	})

	It("keeps small paragraphs together in one chunk", func() {
		c := chunker.NewParagraphChunker(800, 100)
		p1 := strings.Repeat("가", 40)
		p2 := strings.Repeat("나", 40)

		chunks := c.Chunk(p1 + "\n\n" + p2)

		Expect(chunks).To(HaveLen(1))
		Expect(chunks[0]).To(ContainSubstring(p1))
		Expect(chunks[0]).To(ContainSubstring(p2))
	})

	It("measures paragraph size in runes, not bytes", func() {
		// 60 Hangul runes are 180 bytes; a byte-based size check would
		// flush far too early.
		c := chunker.NewParagraphChunker(200, 0)
		p1 := strings.Repeat("가", 60)
		p2 := strings.Repeat("나", 60)
		p3 := strings.Repeat("다", 60)

		chunks := c.Chunk(p1 + "\n\n" + p2 + "\n\n" + p3)

		Expect(chunks).To(HaveLen(1))
	})

	It("discards chunks of 50 runes or fewer", func() {
		c := chunker.NewParagraphChunker(800, 100)

		Expect(c.Chunk(strings.Repeat("짧", 50))).To(BeEmpty())
		Expect(c.Chunk(strings.Repeat("긴", 51))).To(HaveLen(1))
	})

	It("returns an empty slice for empty input", func() {
		c := chunker.NewParagraphChunker(800, 100)

		Expect(c.Chunk("")).To(BeEmpty())
		Expect(c.Chunk("\n\n\n\n")).To(BeEmpty())
	})
})
