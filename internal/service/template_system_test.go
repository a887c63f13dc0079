package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"alimgen/internal/chunker"
	"alimgen/internal/dates"
	"alimgen/internal/embedding"
	"alimgen/internal/entity"
	"alimgen/internal/guideline"
	"alimgen/internal/service"
	"alimgen/internal/template"
	"alimgen/internal/testhelpers"
	"alimgen/internal/vectorstore"
)

const entityResponse = `{
  "extracted_info": {
    "dates": ["2025년 06월 02일(월요일) 14시"],
    "names": ["홍길동"],
    "locations": ["강남점"],
    "events": ["세미나"],
    "others": []
  },
  "message_intent": "행사안내",
  "context": "강남점 세미나 참석 안내",
  "message_type": "정보성",
  "urgency_level": "보통",
  "target_audience": "세미나 신청 고객"
}`

const templateResponse = `[세미나 참석 안내]
안녕하세요, #{수신자명}님.
신청하신 세미나 일정을 안내드립니다.

▶ 행사명: #{행사명}
▶ 일시: #{일시}
▶ 장소: #{장소}

[참석 안내]
- 시작 10분 전까지 입장 부탁드립니다.
- 주차 공간이 협소하니 대중교통 이용을 권장드립니다.
- 일정 변경 시 개별 연락드리겠습니다.

궁금한 사항은 언제든 문의해주세요.

※ 본 메시지는 세미나를 신청하신 분들께만 발송되는 정보성 안내 메시지입니다.`

var _ = Describe("TemplateSystem", func() {
	fixedClock := func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local) }

	newSystem := func(completer *testhelpers.ScriptedCompleter) *service.TemplateSystem {
		missingDir := filepath.Join(GinkgoT().TempDir(), "no-guidelines")
		return service.New(service.Deps{
			Extractor:  entity.NewExtractor(completer, nil),
			Generator:  template.NewGenerator(completer, dates.NewNormalizerAt(fixedClock), nil),
			Embeddings: embedding.NewService(nil, nil),
			Guidelines: guideline.NewLoader(missingDir, chunker.NewParagraphChunker(800, 100), nil),
			NewStore:   func(string) vectorstore.Storage { return vectorstore.NewMemoryStore() },
		})
	}

	It("refuses to generate before initialization", func() {
		sys := newSystem(&testhelpers.ScriptedCompleter{})
		_, err := sys.Generate(context.Background(), "내일 세미나 안내")
		Expect(err).To(MatchError(service.ErrNotInitialized))
	})

	It("generates a complete result end-to-end", func() {
		completer := &testhelpers.ScriptedCompleter{Responses: []string{entityResponse, templateResponse}}
		sys := newSystem(completer)
		Expect(sys.Initialize(context.Background())).To(Succeed())

		result, err := sys.Generate(context.Background(), "내일 2시에 강남점에서 세미나 있어요")
		Expect(err).NotTo(HaveOccurred())

		Expect(result.ID).NotTo(BeEmpty())
		Expect(result.UserInput).To(Equal("내일 2시에 강남점에서 세미나 있어요"))
		Expect(result.GeneratedTemplate).To(Equal(templateResponse))
		Expect(result.Variables).To(Equal([]string{"수신자명", "행사명", "일시", "장소"}))
		Expect(result.Entities.MessageIntent).To(Equal("행사안내"))

		Expect(result.FilledTemplate).To(ContainSubstring("홍길동님"))
		Expect(result.FilledTemplate).To(ContainSubstring("행사명: 세미나"))
		Expect(result.FilledTemplate).To(ContainSubstring("장소: 강남점"))
		Expect(result.FilledTemplate).NotTo(ContainSubstring("#{수신자명}"))
	})

	It("feeds similar templates from the seed corpus into the generation prompt", func() {
		completer := &testhelpers.ScriptedCompleter{Responses: []string{entityResponse, templateResponse}}
		sys := newSystem(completer)
		Expect(sys.Initialize(context.Background())).To(Succeed())

		_, err := sys.Generate(context.Background(), "행사 참가 안내 템플릿 만들어줘")
		Expect(err).NotTo(HaveOccurred())

		Expect(completer.Prompts).To(HaveLen(2))
		Expect(completer.Prompts[1]).To(ContainSubstring("참고 템플릿 예시"))
		Expect(completer.Prompts[1]).To(ContainSubstring("안내"))
	})

	It("still returns a usable result when the model is unreachable", func() {
		completer := &testhelpers.ScriptedCompleter{Err: errors.New("model down")}
		sys := newSystem(completer)
		Expect(sys.Initialize(context.Background())).To(Succeed())

		result, err := sys.Generate(context.Background(), "3일 뒤 점검 안내")
		Expect(err).NotTo(HaveOccurred())

		Expect(result.GeneratedTemplate).To(ContainSubstring("#{연락처}"))
		Expect(result.GeneratedTemplate).To(ContainSubstring("※"))
		Expect(result.Entities.MessageIntent).To(Equal("일반안내"))
		// Fallback entities carry no values, so filling changes nothing.
		Expect(result.FilledTemplate).To(Equal(result.GeneratedTemplate))
		Expect(result.Variables).NotTo(BeEmpty())
	})

	It("indexes guideline documents when the corpus directory exists", func() {
		dir := GinkgoT().TempDir()
		doc := "알림톡 템플릿은 정보성 메시지 기준을 충족해야 하며, 광고성 문구를 포함하면 심사에서 반려될 수 있으므로 발송 목적을 분명히 적어야 합니다."
		Expect(os.WriteFile(filepath.Join(dir, "guide.md"), []byte(doc), 0o644)).To(Succeed())

		completer := &testhelpers.ScriptedCompleter{Responses: []string{entityResponse, templateResponse}}
		sys := service.New(service.Deps{
			Extractor:  entity.NewExtractor(completer, nil),
			Generator:  template.NewGenerator(completer, dates.NewNormalizerAt(fixedClock), nil),
			Embeddings: embedding.NewService(nil, nil),
			Guidelines: guideline.NewLoader(dir, chunker.NewParagraphChunker(800, 100), nil),
			NewStore:   func(string) vectorstore.Storage { return vectorstore.NewMemoryStore() },
		})
		Expect(sys.Initialize(context.Background())).To(Succeed())

		_, err := sys.Generate(context.Background(), "세미나 안내")
		Expect(err).NotTo(HaveOccurred())
		Expect(completer.Prompts[1]).To(ContainSubstring("참고 문서 내용"))
		Expect(completer.Prompts[1]).To(ContainSubstring("정보성 메시지 기준"))
	})
})
