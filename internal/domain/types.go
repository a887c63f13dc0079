package domain

// ExtractedInfo holds the five entity categories pulled out of a request.
type ExtractedInfo struct {
	Dates     []string `json:"dates"`
	Names     []string `json:"names"`
	Locations []string `json:"locations"`
	Events    []string `json:"events"`
	Others    []string `json:"others"`
}

// Entities is the structured intent record extracted from a raw user request.
// It is immutable after creation; Enhance returns a new record.
type Entities struct {
	ExtractedInfo  ExtractedInfo `json:"extracted_info"`
	MessageIntent  string        `json:"message_intent"`
	Context        string        `json:"context"`
	MessageType    string        `json:"message_type"`
	UrgencyLevel   string        `json:"urgency_level"`
	TargetAudience string        `json:"target_audience"`
}

// Validation scores an Entities record. Computed on demand, not persisted.
type Validation struct {
	IsValid           bool
	CompletenessScore float64
	QualityScore      float64
	Issues            []string
}

// SearchResult is a matching corpus text with its similarity score.
type SearchResult struct {
	Text  string
	Score float64
}

// GenerationResult is the unit returned per request.
type GenerationResult struct {
	ID                string
	UserInput         string
	GeneratedTemplate string
	FilledTemplate    string
	Variables         []string
	Entities          Entities
}
