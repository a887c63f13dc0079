package template

import (
	"fmt"
	"strings"

	"alimgen/internal/domain"
)

func buildGenerationPrompt(userInput string, entities domain.Entities, examples, guidelines string) string {
	info := entities.ExtractedInfo
	intent := orDefault(entities.MessageIntent, "일반안내")
	context := orDefault(entities.Context, userInput)
	messageType := orDefault(entities.MessageType, "정보성")
	urgency := orDefault(entities.UrgencyLevel, "보통")

	var b strings.Builder
	b.WriteString(`
아래 문서는 카카오 알림톡 및 관련 비즈니스 메시지 가이드의 예시들입니다.
사용자의 요청에 따라 이 문서의 형식과 내용을 참고하여 창의적이고 새로운 메시지 템플릿을 만들어 주세요.

**중요 지침:**
1. 사용자 요청에 포함된 날짜는 이미 정확하게 계산되어 있습니다. 템플릿에 날짜와 요일을 포함시킬 때, 반드시 제공된 날짜와 요일 정보를 정확히 사용하세요.
2. 답변은 1000자 이내로 작성해 주세요.
3. 문서에 직접적인 내용이 없더라도, 문서의 톤과 스타일을 바탕으로 답변을 완성하세요.
4. 카카오 알림톡의 형식과 규정에 맞는 템플릿을 작성해주세요.

추출된 정보:
`)
	fmt.Fprintf(&b, "- 날짜: %s\n", orNone(info.Dates))
	fmt.Fprintf(&b, "- 이름: %s\n", orNone(info.Names))
	fmt.Fprintf(&b, "- 장소: %s\n", orNone(info.Locations))
	fmt.Fprintf(&b, "- 이벤트: %s\n", orNone(info.Events))
	fmt.Fprintf(&b, "- 기타정보: %s\n", orNone(info.Others))
	fmt.Fprintf(&b, "\n메시지 의도: %s\n메시지 유형: %s\n긴급도: %s\n상황: %s\n", intent, messageType, urgency, context)

	if guidelines != "" {
		fmt.Fprintf(&b, "\n---\n참고 문서 내용:\n%s\n---\n", guidelines)
	}
	if examples != "" {
		fmt.Fprintf(&b, "\n참고 템플릿 예시:\n%s\n", examples)
	}

	fmt.Fprintf(&b, `
사용자 요청: %s

위 요청에 맞는 알림톡 메시지 템플릿을 작성해주세요.

필수 준수사항:
1. 정보통신망법 준수 (정보성 메시지 기준)
2. 추출된 구체적 정보들을 #{변수명} 형태로 포함
3. 수신자에게 필요한 모든 정보 포함
4. 명확하고 정중한 안내 톤
5. 메시지 끝에 발송 사유 및 법적 근거 명시
6. 충분한 설명과 안내사항 포함

템플릿 구조:
- 인사말 및 발신자 소개
- 주요 안내 내용 (상세히)
- 구체적인 정보 (일시, 장소, 방법 등)
- 추가 안내사항 또는 주의사항
- 문의처 또는 연락방법
- 발송 사유 및 법적 근거

실용적이고 완성도 높은 템플릿을 생성해주세요:
`, userInput)

	return b.String()
}

func formatExamples(similar []domain.SearchResult) string {
	if len(similar) == 0 {
		return ""
	}
	if len(similar) > 2 {
		similar = similar[:2]
	}
	var lines []string
	for i, s := range similar {
		lines = append(lines, fmt.Sprintf("%d. %s\n", i+1, s.Text))
	}
	return strings.Join(lines, "\n")
}

func formatGuidelines(guidelines []string) string {
	if len(guidelines) > 3 {
		guidelines = guidelines[:3]
	}
	return strings.Join(guidelines, "\n")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "없음"
	}
	return strings.Join(values, ", ")
}
