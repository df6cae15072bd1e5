// internal/handlers/aimatch/models.go
package aimatch

// StudentProfile is the caller-supplied matching input. Request-scoped and
// never persisted.
type StudentProfile struct {
	AcademicScore      float64  `json:"academicScore"`
	PreferredCountries []string `json:"preferredCountries"`
	FieldOfStudy       string   `json:"fieldOfStudy"`
	DegreeLevel        string   `json:"degreeLevel"`
	Budget             string   `json:"budget"`
	EnglishTest        string   `json:"englishTest"`
	EnglishScore       float64  `json:"englishScore"`
	WorkExperience     int      `json:"workExperience"`
	Priorities         []string `json:"priorities"`
}

// UniversityMatch is a candidate institution enriched with scoring output.
type UniversityMatch struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	Country                  string   `json:"country"`
	Location                 string   `json:"location"`
	Ranking                  int      `json:"ranking"`
	Image                    string   `json:"image"`
	Programs                 []string `json:"programs"`
	MatchScore               int      `json:"matchScore"`
	AdmissionChance          string   `json:"admissionChance"`
	Reasons                  []string `json:"reasons"`
	KeyStrengths             []string `json:"keyStrengths"`
	Recommendation           string   `json:"recommendation"`
	EstimatedCost            string   `json:"estimatedCost"`
	ScholarshipOpportunities []string `json:"scholarshipOpportunities"`
}

// Analysis is the overall guidance block accompanying the matches.
type Analysis struct {
	OverallSummary  string   `json:"overallSummary"`
	Recommendations []string `json:"recommendations"`
	Alternatives    []string `json:"alternatives"`
	NextSteps       []string `json:"nextSteps"`
}

// Response is the match endpoint envelope. Exactly one production path
// populates it; AIPowered always reflects which one ran.
type Response struct {
	Success   bool              `json:"success"`
	Matches   []UniversityMatch `json:"matches"`
	Analysis  Analysis          `json:"analysis"`
	Profile   StudentProfile    `json:"profile"`
	AIPowered bool              `json:"aiPowered"`
}

// modelResult mirrors the JSON object the completion API is asked to produce.
// Fields may be missing when the model under-delivers; downstream code
// tolerates zero values.
type modelResult struct {
	Matches  []modelMatch `json:"matches"`
	Analysis Analysis     `json:"analysis"`
}

type modelMatch struct {
	Name                     string   `json:"name"`
	MatchScore               int      `json:"matchScore"`
	AdmissionChance          string   `json:"admissionChance"`
	Reasons                  []string `json:"reasons"`
	KeyStrengths             []string `json:"keyStrengths"`
	Recommendation           string   `json:"recommendation"`
	EstimatedCost            string   `json:"estimatedCost"`
	ScholarshipOpportunities []string `json:"scholarshipOpportunities"`
}
