// internal/handlers/aisearch/models.go
package aisearch

import "edupath-server/internal/models"

// Request is the search endpoint input. Context is optional free text the
// caller may attach (e.g. the page the search was issued from).
type Request struct {
	Query   string `json:"query"`
	Context string `json:"context,omitempty"`
}

// Interpretation classifies a free-text query. Produced once per request by
// either the completion API or a static default.
type Interpretation struct {
	Type             string   `json:"type"`
	SearchTerm       string   `json:"searchTerm"`
	RelatedTerms     []string `json:"relatedTerms"`
	Filters          Filters  `json:"filters"`
	Intent           string   `json:"intent"`
	SuggestedQueries []string `json:"suggestedQueries"`
}

// Filters are optional narrowing hints extracted from the query.
type Filters struct {
	Country       string `json:"country,omitempty"`
	Field         string `json:"field,omitempty"`
	Level         string `json:"level,omitempty"`
	RankingBucket string `json:"rankingBucket,omitempty"`
	BudgetBucket  string `json:"budgetBucket,omitempty"`
}

// Results groups the per-category hits.
type Results struct {
	Universities []models.University `json:"universities"`
	Courses      []models.Course     `json:"courses"`
	Countries    []models.Country    `json:"countries"`
}

// Response is the search endpoint envelope.
type Response struct {
	Success         bool           `json:"success"`
	Query           string         `json:"query"`
	Interpretation  Interpretation `json:"interpretation"`
	Results         Results        `json:"results"`
	NaturalResponse string         `json:"naturalResponse"`
	TotalResults    int            `json:"totalResults"`
	FallbackMode    bool           `json:"fallbackMode,omitempty"`
}

// modelResult mirrors the JSON object the completion API is asked to
// produce. Missing fields are tolerated downstream.
type modelResult struct {
	Interpretation  Interpretation `json:"interpretation"`
	NaturalResponse string         `json:"naturalResponse"`
}

// queryTypes are the recognized interpretation classifications. Anything
// else the model invents is coerced to "mixed".
var queryTypes = map[string]bool{
	"university": true,
	"course":     true,
	"country":    true,
	"mixed":      true,
}
