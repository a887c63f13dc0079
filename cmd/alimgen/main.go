package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"alimgen/internal/chunker"
	"alimgen/internal/config"
	"alimgen/internal/dates"
	"alimgen/internal/embedding"
	"alimgen/internal/entity"
	"alimgen/internal/guideline"
	"alimgen/internal/llm"
	"alimgen/internal/service"
	"alimgen/internal/summarizer"
	"alimgen/internal/template"
	"alimgen/internal/tui"
	"alimgen/internal/vectorstore"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to config YAML")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// .env is optional; in production the variables are set directly.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(log, "failed to load config", err)
	}

	apiKey := os.Getenv(cfg.OpenAI.APIKeyEnv)
	completer, err := llm.NewClient(apiKey, cfg.OpenAI.Model, log)
	if err != nil {
		fatal(log, "failed to configure completion model", err)
	}

	embeddings := embedding.NewService(embedding.NewOpenAIEmbedder(apiKey, cfg.OpenAI.EmbeddingModel), log)
	paragraphs := chunker.NewParagraphChunker(cfg.Chunker.ChunkSize, cfg.Chunker.ChunkOverlap)

	newStore, err := storeFactory(cfg)
	if err != nil {
		fatal(log, "failed to configure vector store", err)
	}

	system := service.New(service.Deps{
		Extractor:           entity.NewExtractor(completer, log),
		Generator:           template.NewGenerator(completer, dates.NewNormalizer(), log),
		Embeddings:          embeddings,
		Guidelines:          guideline.NewLoader(cfg.Guidelines.Dir, paragraphs, log),
		Summarizer:          summarizer.NewFrequencySummarizer(),
		NewStore:            newStore,
		TemplateTopK:        cfg.Search.TemplateTopK,
		GuidelineTopK:       cfg.Search.GuidelineTopK,
		SummaryMaxSentences: cfg.Summarizer.MaxSentences,
		Log:                 log,
	})

	if err := system.Initialize(context.Background()); err != nil {
		fatal(log, "system initialization failed", err)
	}

	m := tui.New(system, system.Summary())
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fatal(log, "tui crashed", err)
	}
}

func storeFactory(cfg *config.AppConfig) (func(string) vectorstore.Storage, error) {
	switch cfg.VectorStore.Type {
	case "memory", "":
		return func(string) vectorstore.Storage { return vectorstore.NewMemoryStore() }, nil
	case "qdrant":
		qcfg := cfg.VectorStore.Qdrant
		if qcfg == nil {
			return nil, fmt.Errorf("qdrant config missing")
		}
		return func(corpus string) vectorstore.Storage {
			return vectorstore.NewQdrantStore(vectorstore.QdrantConfig{
				URL:        qcfg.URL,
				APIKey:     qcfg.APIKey,
				Collection: qcfg.Collection + "-" + corpus,
				Timeout:    time.Duration(qcfg.TimeoutSecs) * time.Second,
			})
		}, nil
	default:
		return nil, fmt.Errorf("unknown vector store: %s", cfg.VectorStore.Type)
	}
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
