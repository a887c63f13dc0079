package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"alimgen/internal/domain"
	"alimgen/internal/embedding"
	"alimgen/internal/entity"
	"alimgen/internal/guideline"
	"alimgen/internal/search"
	"alimgen/internal/template"
	"alimgen/internal/vectorstore"
)

// ErrNotInitialized is returned when Generate is called before Initialize.
var ErrNotInitialized = errors.New("template system not initialized")

var placeholderPattern = regexp.MustCompile(`#\{[^}]+\}`)

// Deps wires the stateless processors and corpora sources into the system.
type Deps struct {
	Extractor  *entity.Extractor
	Generator  *template.Generator
	Embeddings *embedding.Service
	Guidelines *guideline.Loader
	Summarizer domain.Summarizer

	// NewStore creates one vector store per named corpus.
	NewStore func(corpus string) vectorstore.Storage

	TemplateTopK        int
	GuidelineTopK       int
	SummaryMaxSentences int
	Log                 *slog.Logger
}

// TemplateSystem is the orchestrator: it owns the two read-only corpora and
// their similarity indexes, and answers one request end-to-end. After
// Initialize succeeds nothing is mutated, so concurrent Generate calls are
// safe without locking.
type TemplateSystem struct {
	deps Deps

	templates      []string
	guidelines     []string
	templateIndex  *search.Index
	guidelineIndex *search.Index
	summary        string
	ready          bool

	log *slog.Logger
}

func New(deps Deps) *TemplateSystem {
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	if deps.TemplateTopK <= 0 {
		deps.TemplateTopK = 3
	}
	if deps.GuidelineTopK <= 0 {
		deps.GuidelineTopK = 3
	}
	if deps.SummaryMaxSentences <= 0 {
		deps.SummaryMaxSentences = 5
	}
	return &TemplateSystem{deps: deps, log: deps.Log}
}

// Initialize loads both corpora and builds one similarity index per corpus.
// A missing guideline corpus degrades to guideline-free generation; an index
// build failure is fatal.
func (s *TemplateSystem) Initialize(ctx context.Context) error {
	s.templates = SampleTemplates()

	// Placeholder names carry no retrieval signal; mask them so similarity
	// reflects template structure and wording.
	masked := make([]string, len(s.templates))
	for i, t := range s.templates {
		masked[i] = placeholderPattern.ReplaceAllString(t, "[VARIABLE]")
	}
	templateIndex, err := search.BuildMasked(ctx, s.templates, masked, s.deps.Embeddings, s.deps.NewStore("templates"), s.log)
	if err != nil {
		return fmt.Errorf("build template index: %w", err)
	}
	s.templateIndex = templateIndex

	s.guidelines = s.deps.Guidelines.Load()
	guidelineIndex, err := search.Build(ctx, s.guidelines, s.deps.Embeddings, s.deps.NewStore("guidelines"), s.log)
	if err != nil {
		return fmt.Errorf("build guideline index: %w", err)
	}
	s.guidelineIndex = guidelineIndex

	if s.deps.Summarizer != nil && len(s.guidelines) > 0 {
		if summary, err := s.deps.Summarizer.Summarize(strings.Join(s.guidelines, "\n"), s.deps.SummaryMaxSentences); err == nil {
			s.summary = summary
		}
	}

	s.ready = true
	s.log.Info("template system ready",
		"templates", s.templateIndex.Size(),
		"guideline_chunks", s.guidelineIndex.Size())
	return nil
}

// Summary is the guideline corpus digest computed at startup, if any.
func (s *TemplateSystem) Summary() string { return s.summary }

// Generate answers one request end-to-end. It is best-effort by contract:
// under total external-model unavailability it still returns a filled
// fallback skeleton, with the degradation visible only in logs.
func (s *TemplateSystem) Generate(ctx context.Context, userInput string) (domain.GenerationResult, error) {
	if !s.ready {
		return domain.GenerationResult{}, ErrNotInitialized
	}

	entities := s.deps.Extractor.Extract(ctx, userInput)
	if v := s.deps.Extractor.Validate(entities); !v.IsValid {
		s.log.Info("extracted entities incomplete",
			"completeness", v.CompletenessScore,
			"quality", v.QualityScore,
			"issues", strings.Join(v.Issues, "; "))
	}

	similar := s.templateIndex.Search(ctx, userInput, s.deps.TemplateTopK)

	guidelineQuery := userInput + " " + entities.MessageIntent
	guidelineHits := s.guidelineIndex.Search(ctx, guidelineQuery, s.deps.GuidelineTopK)
	guidelines := make([]string, 0, len(guidelineHits))
	for _, hit := range guidelineHits {
		guidelines = append(guidelines, hit.Text)
	}

	draft, _ := s.deps.Generator.Generate(ctx, userInput, entities, similar, guidelines)
	optimized := s.deps.Generator.Optimize(draft, entities)

	return domain.GenerationResult{
		ID:                uuid.NewString(),
		UserInput:         userInput,
		GeneratedTemplate: optimized,
		FilledTemplate:    s.deps.Generator.Fill(optimized, entities),
		Variables:         template.Variables(optimized),
		Entities:          entities,
	}, nil
}
