package dates_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"alimgen/internal/dates"
)

var _ = Describe("Normalizer", func() {
	// 2025-06-01 is a Sunday.
	var n *dates.Normalizer

	BeforeEach(func() {
		today := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
		n = dates.NewNormalizerAt(func() time.Time { return today })
	})

	It("rewrites 내일 to tomorrow's date with its weekday", func() {
		out := n.Normalize("내일 2시에 강남점에서 세미나 있어요")
		Expect(out).To(ContainSubstring("2025년 06월 02일(월요일)"))
		Expect(out).NotTo(ContainSubstring("내일"))
	})

	It("rewrites 글피 two days ahead", func() {
		out := n.Normalize("글피에 뵙겠습니다")
		Expect(out).To(ContainSubstring("2025년 06월 03일(화요일)"))
	})

	It("rewrites N일 뒤 with the computed date", func() {
		out := n.Normalize("3일 뒤 행사 안내")
		Expect(out).To(ContainSubstring("2025년 06월 04일(수요일)"))
	})

	It("resolves each N일 뒤 occurrence independently", func() {
		out := n.Normalize("2일 뒤 사전 점검, 5일 뒤 본 행사")
		Expect(out).To(ContainSubstring("2025년 06월 03일(화요일)"))
		Expect(out).To(ContainSubstring("2025년 06월 06일(금요일)"))
	})

	It("accepts whitespace inside the relative-day pattern", func() {
		out := n.Normalize("10 일 뒤 마감")
		Expect(out).To(ContainSubstring("2025년 06월 11일(수요일)"))
	})

	It("is idempotent once no relative tokens remain", func() {
		once := n.Normalize("내일 2시에 강남점에서 세미나 있어요")
		Expect(n.Normalize(once)).To(Equal(once))
	})

	It("leaves text without relative dates untouched", func() {
		in := "2025년 06월 09일에 주문하신 상품이 발송되었습니다"
		Expect(n.Normalize(in)).To(Equal(in))
	})
})
