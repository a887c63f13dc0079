package llm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"alimgen/internal/llm"
)

var _ = Describe("DecodeObject", func() {
	type payload struct {
		Intent string `json:"message_intent"`
	}

	It("decodes a bare JSON object", func() {
		var p payload
		Expect(llm.DecodeObject(`{"message_intent":"행사안내"}`, &p)).To(Succeed())
		Expect(p.Intent).To(Equal("행사안내"))
	})

	It("strips code fences around the object", func() {
		raw := "```json\n{\"message_intent\":\"예약확인\"}\n```"
		var p payload
		Expect(llm.DecodeObject(raw, &p)).To(Succeed())
		Expect(p.Intent).To(Equal("예약확인"))
	})

	It("ignores prose before and after the object", func() {
		raw := "요청하신 결과입니다:\n{\"message_intent\":\"결제알림\"}\n이상입니다."
		var p payload
		Expect(llm.DecodeObject(raw, &p)).To(Succeed())
		Expect(p.Intent).To(Equal("결제알림"))
	})

	It("fails when no object is present", func() {
		var p payload
		Expect(llm.DecodeObject("죄송합니다, 추출할 수 없습니다.", &p)).NotTo(Succeed())
	})

	It("fails on malformed JSON between the braces", func() {
		var p payload
		Expect(llm.DecodeObject("{not json}", &p)).NotTo(Succeed())
	})
})
