// internal/handlers/aisearch/prompt.go
package aisearch

import (
	"encoding/json"
	"strings"

	"edupath-server/internal/models"
)

const systemInstruction = `You are a study-abroad search assistant. ` +
	`Classify the user's query and respond with strict JSON only, no narration, using this schema: ` +
	`{"interpretation":{"type":"university"|"course"|"country"|"mixed","searchTerm":string,"relatedTerms":string[],` +
	`"filters":{"country":string,"field":string,"level":string,"rankingBucket":string,"budgetBucket":string},` +
	`"intent":string,"suggestedQueries":string[]},"naturalResponse":string}. ` +
	`The naturalResponse is a short conversational answer to the query. ` +
	`Base the answer only on the provided reference data.`

// buildUserPrompt embeds the query and a bounded slice of reference names so
// the model grounds its answer in records we can serve.
func buildUserPrompt(req *Request, universities []models.University, countries []models.Country, limit int) string {
	if limit > 0 && len(universities) > limit {
		universities = universities[:limit]
	}

	uniNames := make([]string, 0, len(universities))
	for _, u := range universities {
		uniNames = append(uniNames, u.Name)
	}
	countryNames := make([]string, 0, len(countries))
	for _, c := range countries {
		countryNames = append(countryNames, c.Name)
	}

	uniJSON, _ := json.Marshal(uniNames)
	countryJSON, _ := json.Marshal(countryNames)

	var sb strings.Builder
	sb.WriteString("Query: ")
	sb.WriteString(req.Query)
	if req.Context != "" {
		sb.WriteString("\nContext: ")
		sb.WriteString(req.Context)
	}
	sb.WriteString("\n\nKnown universities:\n")
	sb.Write(uniJSON)
	sb.WriteString("\n\nKnown destination countries:\n")
	sb.Write(countryJSON)
	return sb.String()
}
