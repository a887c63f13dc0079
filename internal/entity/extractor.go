package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"alimgen/internal/domain"
	"alimgen/internal/llm"
)

// Fallback record values. The pipeline must never fail a request solely
// because entity extraction failed.
const (
	fallbackIntent   = "일반안내"
	fallbackType     = "정보성"
	fallbackUrgency  = "보통"
	fallbackAudience = "일반고객"
)

const (
	issueLowCompleteness = "추출된 정보가 부족합니다"
	issueUnclearIntent   = "메시지 의도가 불명확합니다"
)

// Extractor turns a raw request into a structured Entities record via the
// hosted model, degrading to a deterministic fallback record on any failure.
type Extractor struct {
	llm domain.Completer
	log *slog.Logger
}

func NewExtractor(completer domain.Completer, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{llm: completer, log: log}
}

// Fallback is the record used when extraction cannot produce anything better:
// empty categories, generic metadata, the raw input carried as context.
func Fallback(userInput string) domain.Entities {
	return domain.Entities{
		ExtractedInfo: domain.ExtractedInfo{
			Dates:     []string{},
			Names:     []string{},
			Locations: []string{},
			Events:    []string{},
			Others:    []string{},
		},
		MessageIntent:  fallbackIntent,
		Context:        userInput,
		MessageType:    fallbackType,
		UrgencyLevel:   fallbackUrgency,
		TargetAudience: fallbackAudience,
	}
}

// Extract never fails; call errors and unparsable responses both yield the
// fallback record.
func (e *Extractor) Extract(ctx context.Context, userInput string) domain.Entities {
	prompt := fmt.Sprintf(extractionPromptFormat, userInput)
	response, err := e.llm.Complete(ctx, prompt)
	if err != nil {
		e.log.Warn("entity extraction failed, using fallback record", "error", err)
		return Fallback(userInput)
	}
	var entities domain.Entities
	if err := llm.DecodeObject(response, &entities); err != nil {
		e.log.Warn("entity response not parseable, using fallback record", "error", err)
		return Fallback(userInput)
	}
	return entities
}

// Enhance re-prompts with additional context and returns the refined record,
// or the original unchanged when the context is empty or re-parsing fails.
func (e *Extractor) Enhance(ctx context.Context, entities domain.Entities, additionalContext string) domain.Entities {
	if additionalContext == "" {
		return entities
	}
	existing, err := json.MarshalIndent(entities, "", "  ")
	if err != nil {
		return entities
	}
	prompt := fmt.Sprintf(enhancePromptFormat, string(existing), additionalContext)
	response, err := e.llm.Complete(ctx, prompt)
	if err != nil {
		e.log.Warn("entity enhancement failed, keeping original record", "error", err)
		return entities
	}
	var enhanced domain.Entities
	if err := llm.DecodeObject(response, &enhanced); err != nil {
		e.log.Warn("enhanced response not parseable, keeping original record", "error", err)
		return entities
	}
	return enhanced
}

// Validate scores an extracted record. Completeness counts filled categories;
// quality averages per-category heuristics. Both land in [0, 100].
func (e *Extractor) Validate(entities domain.Entities) domain.Validation {
	info := entities.ExtractedInfo
	categories := [][]string{info.Dates, info.Names, info.Locations, info.Events, info.Others}
	filled := 0
	for _, c := range categories {
		if len(c) > 0 {
			filled++
		}
	}
	completeness := float64(filled) / float64(len(categories)) * 100

	var factors []float64
	if len(info.Dates) > 0 {
		factor := 0.3
		for _, d := range info.Dates {
			if utf8.RuneCountInString(d) > 4 {
				factor = 0.8
				break
			}
		}
		factors = append(factors, factor)
	}
	if len(info.Names) > 0 {
		factor := 0.4
		for _, n := range info.Names {
			if utf8.RuneCountInString(n) >= 2 {
				factor = 0.9
				break
			}
		}
		factors = append(factors, factor)
	}
	quality := 50.0
	if len(factors) > 0 {
		sum := 0.0
		for _, f := range factors {
			sum += f
		}
		quality = sum / float64(len(factors)) * 100
	}

	var issues []string
	if completeness < 40 {
		issues = append(issues, issueLowCompleteness)
	}
	if entities.MessageIntent == "" {
		issues = append(issues, issueUnclearIntent)
	}

	return domain.Validation{
		IsValid:           len(issues) == 0,
		CompletenessScore: completeness,
		QualityScore:      quality,
		Issues:            issues,
	}
}
