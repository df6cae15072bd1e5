// internal/handlers/essayreview/models.go
package essayreview

// Request is the essay-review endpoint input. Prompt and EssayType are
// optional context for the reviewer.
type Request struct {
	Essay     string `json:"essay"`
	Prompt    string `json:"prompt,omitempty"`
	EssayType string `json:"essayType,omitempty"`
}

// Feedback is the structured review of one essay.
type Feedback struct {
	OverallScore      int      `json:"overallScore"`
	Summary           string   `json:"summary"`
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
	StructureFeedback string   `json:"structureFeedback"`
	SuggestedEdits    []string `json:"suggestedEdits"`
}

// Stats are mechanical metrics computed locally on both paths.
type Stats struct {
	WordCount      int `json:"wordCount"`
	SentenceCount  int `json:"sentenceCount"`
	ParagraphCount int `json:"paragraphCount"`
}

// Response is the essay-review envelope. Like the match endpoint it always
// answers 200, with AIPowered reflecting which path produced the feedback.
type Response struct {
	Success   bool     `json:"success"`
	Feedback  Feedback `json:"feedback"`
	Stats     Stats    `json:"stats"`
	AIPowered bool     `json:"aiPowered"`
}

// modelResult mirrors the JSON object the completion API is asked to
// produce. Missing fields are tolerated downstream.
type modelResult struct {
	Feedback Feedback `json:"feedback"`
}
