package guideline_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"alimgen/internal/chunker"
	"alimgen/internal/guideline"
)

const sampleDoc = `# 알림톡 템플릿 작성 가이드

<figure>
<img src="banner.png" alt="배너">
<figcaption>알림톡 소개 배너</figcaption>
</figure>

알림톡 템플릿은 정보성 메시지 기준을 충족해야 하며, 수신자가 신청하거나 거래한 내용과 직접 관련된 정보만 담을 수 있습니다. 광고성 문구를 포함하면 심사에서 반려됩니다.

<img src="inline.png">

변수는 #{변수명} 형식으로 표기하며, 실제 발송 시점에 고객별 값으로 치환됩니다. 변수명은 한글로 의미가 드러나게 짓는 것을 권장합니다.`

var _ = Describe("Loader", func() {
	newChunker := func() *chunker.ParagraphChunker {
		return chunker.NewParagraphChunker(800, 100)
	}

	Describe("Load", func() {
		It("returns cleaned chunks from markdown documents", func() {
			dir := GinkgoT().TempDir()
			Expect(os.WriteFile(filepath.Join(dir, "guide.md"), []byte(sampleDoc), 0o644)).To(Succeed())

			chunks := guideline.NewLoader(dir, newChunker(), nil).Load()

			Expect(chunks).NotTo(BeEmpty())
			joined := strings.Join(chunks, "\n")
			Expect(joined).To(ContainSubstring("정보성 메시지 기준"))
			Expect(joined).NotTo(ContainSubstring("<figure>"))
			Expect(joined).NotTo(ContainSubstring("<img"))
		})

		It("skips files that are neither markdown nor plain text", func() {
			dir := GinkgoT().TempDir()
			Expect(os.WriteFile(filepath.Join(dir, "guide.md"), []byte(sampleDoc), 0o644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, "meta.json"), []byte(`{"광고성":"`+strings.Repeat("금지 문구 예시 ", 10)+`"}`), 0o644)).To(Succeed())

			chunks := guideline.NewLoader(dir, newChunker(), nil).Load()

			Expect(strings.Join(chunks, "\n")).NotTo(ContainSubstring("금지 문구 예시"))
		})

		It("returns nothing when the corpus directory is missing", func() {
			missing := filepath.Join(GinkgoT().TempDir(), "no-such-dir")
			Expect(guideline.NewLoader(missing, newChunker(), nil).Load()).To(BeEmpty())
		})
	})

	Describe("CleanMarkup", func() {
		It("removes figure blocks including their captions", func() {
			out := guideline.CleanMarkup("앞부분\n\n<figure>\n<img src=\"a.png\">\n<figcaption>설명</figcaption>\n</figure>\n\n뒷부분")
			Expect(out).NotTo(ContainSubstring("figcaption"))
			Expect(out).To(ContainSubstring("앞부분"))
			Expect(out).To(ContainSubstring("뒷부분"))
		})

		It("collapses the blank-line runs left behind", func() {
			out := guideline.CleanMarkup("첫 단락\n\n<img src=\"a.png\">\n\n\n\n둘째 단락")
			Expect(out).NotTo(ContainSubstring("\n\n\n"))
		})
	})
})
