package template

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"alimgen/internal/dates"
	"alimgen/internal/domain"
)

var variablePattern = regexp.MustCompile(`#\{([^}]+)\}`)

// Placeholder synonym sets, applied one category at a time in this order.
// A placeholder whose name is not in any set stays literal.
var fillPatterns = []struct {
	pattern *regexp.Regexp
	values  func(domain.ExtractedInfo) []string
}{
	{regexp.MustCompile(`(?i)#\{(일시|날짜|시간|적용일|방문일정|예약일정|행사일시)\}`), func(i domain.ExtractedInfo) []string { return i.Dates }},
	{regexp.MustCompile(`(?i)#\{(수신자명|수신자|고객명|보호자명|회원명)\}`), func(i domain.ExtractedInfo) []string { return i.Names }},
	{regexp.MustCompile(`(?i)#\{(장소|매장명|주소|위치|행사장소)\}`), func(i domain.ExtractedInfo) []string { return i.Locations }},
	{regexp.MustCompile(`(?i)#\{(행사명|이벤트명|활동명|프로그램명)\}`), func(i domain.ExtractedInfo) []string { return i.Events }},
}

// Generator produces AlrimTalk template drafts from retrieval results and
// extracted entities, with a deterministic skeleton fallback when the hosted
// model is unavailable.
type Generator struct {
	llm        domain.Completer
	normalizer *dates.Normalizer
	log        *slog.Logger
}

func NewGenerator(completer domain.Completer, normalizer *dates.Normalizer, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	if normalizer == nil {
		normalizer = dates.NewNormalizer()
	}
	return &Generator{llm: completer, normalizer: normalizer, log: log}
}

// Generate returns the template draft and a preview with extracted values
// filled in. Guideline excerpts switch the prompt to its guideline-aware
// variant. Completion failure yields the fallback skeleton, never an error.
func (g *Generator) Generate(ctx context.Context, userInput string, entities domain.Entities, similar []domain.SearchResult, guidelines []string) (string, string) {
	normalized := g.normalizer.Normalize(userInput)
	if normalized != userInput {
		g.log.Debug("relative dates normalized", "input", userInput, "normalized", normalized)
	}

	prompt := buildGenerationPrompt(normalized, entities, formatExamples(similar), formatGuidelines(guidelines))

	draft := ""
	response, err := g.llm.Complete(ctx, prompt)
	if err != nil {
		g.log.Warn("template generation failed, using fallback skeleton", "error", err)
		draft = FallbackTemplate(entities)
	} else {
		draft = strings.TrimSpace(strings.ReplaceAll(response, "```", ""))
	}

	return draft, g.Fill(draft, entities)
}

// Fill substitutes known placeholder names with the first extracted value of
// the matching category. Categories without values leave their placeholders
// untouched.
func (g *Generator) Fill(template string, entities domain.Entities) string {
	filled := template
	for _, fp := range fillPatterns {
		values := fp.values(entities.ExtractedInfo)
		if len(values) == 0 {
			continue
		}
		filled = fp.pattern.ReplaceAllString(filled, values[0])
	}
	return filled
}

// Optimize applies at most one coarse quality expansion: short templates get
// the extra-guidance block, templates with few placeholders get the contact
// block. Everything else passes through unchanged.
func (g *Generator) Optimize(template string, entities domain.Entities) string {
	if utf8.RuneCountInString(template) < 200 {
		return insertBeforeNotice(template, additionalInfoBlock)
	}
	if len(Variables(template)) < 3 {
		return insertBeforeNotice(template, contactBlock)
	}
	return template
}

// Variables returns the de-duplicated placeholder names found in the
// template, in first-seen order.
func Variables(template string) []string {
	matches := variablePattern.FindAllStringSubmatch(template, -1)
	seen := make(map[string]struct{}, len(matches))
	var names []string
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}

// FallbackTemplate is the fixed business-message skeleton used when the model
// cannot be reached. Empty categories keep their placeholder token so the
// result is still a valid template.
func FallbackTemplate(entities domain.Entities) string {
	info := entities.ExtractedInfo
	intent := orDefault(entities.MessageIntent, "일반안내")

	return fmt.Sprintf(`안녕하세요, %s님.
%s에 대해 상세히 안내드립니다.

▶ 주요 내용: %s
▶ 일시: %s
▶ 장소: %s

[상세 안내사항]
- 참석하실 분들께서는 미리 준비해주시기 바랍니다.
- 자세한 내용은 별도 공지사항을 확인해주세요.
- 변경사항이 있을 경우 개별 안내드리겠습니다.

[문의사항]
궁금한 사항이 있으시면 언제든 연락 부탁드립니다.
- 연락처: #{연락처}
- 운영시간: 평일 오전 9시~오후 6시

※ 본 메시지는 관련 서비스를 신청하신 분들께만 발송되는 정보성 안내 메시지입니다.`,
		firstOr(info.Names, "#{수신자명}"),
		intent,
		firstOr(info.Events, "#{행사명}"),
		firstOr(info.Dates, "#{일시}"),
		firstOr(info.Locations, "#{장소}"),
	)
}

const additionalInfoBlock = `
[추가 안내사항]
- 정확한 정보 확인을 위해 사전 연락 부탁드립니다.
- 변경사항 발생 시 즉시 안내드리겠습니다.
- 기타 문의사항은 고객센터를 이용해주세요.`

const contactBlock = `
[문의 및 연락처]
- 담당자: #{담당자명}
- 연락처: #{문의전화}
- 운영시간: #{운영시간}`

// insertBeforeNotice places the block just before the legal-notice marker so
// expansions never push the mandatory closing sentence into the middle of the
// message.
func insertBeforeNotice(template, block string) string {
	if i := strings.Index(template, "※"); i >= 0 {
		return template[:i] + block + "\n\n※" + template[i+len("※"):]
	}
	return template + block
}

func firstOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return values[0]
}
