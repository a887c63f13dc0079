package embedding_test

import (
	"context"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"alimgen/internal/embedding"
	"alimgen/internal/testhelpers"
)

var _ = Describe("Service", func() {
	corpus := []string{
		"가격 변경 안내 메시지 예시",
		"방문 예약 확인 메시지 예시",
	}

	It("falls back to tf-idf when the remote embedder fails", func() {
		remote := &testhelpers.FailingEmbedder{}
		svc := embedding.NewService(remote, slog.Default())

		embedder, vectors := svc.ForCorpus(context.Background(), corpus)

		Expect(embedder.Name()).To(Equal("tfidf"))
		Expect(vectors).To(HaveLen(len(corpus)))
		for _, v := range vectors {
			Expect(v).To(HaveLen(embedding.FallbackDimension))
		}
		// The whole batch falls back after the first failure.
		Expect(remote.Calls).To(Equal(1))
	})

	It("goes straight to tf-idf without a remote embedder", func() {
		svc := embedding.NewService(nil, slog.Default())

		embedder, vectors := svc.ForCorpus(context.Background(), corpus)

		Expect(embedder.Name()).To(Equal("tfidf"))
		Expect(vectors).To(HaveLen(len(corpus)))
	})

	It("uses random vectors when even tf-idf cannot prepare", func() {
		svc := embedding.NewService(nil, slog.Default())

		embedder, vectors := svc.ForCorpus(context.Background(), []string{"   ", "  "})

		Expect(embedder.Name()).To(Equal("random"))
		Expect(vectors).To(HaveLen(2))
		for _, v := range vectors {
			Expect(v).To(HaveLen(embedding.FallbackDimension))
		}
	})

	It("produces bit-identical vectors across repeated fallback runs", func() {
		svc := embedding.NewService(nil, slog.Default())

		_, first := svc.ForCorpus(context.Background(), corpus)
		_, second := svc.ForCorpus(context.Background(), corpus)

		Expect(first).To(Equal(second))
	})
})
