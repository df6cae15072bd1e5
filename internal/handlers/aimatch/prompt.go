// internal/handlers/aimatch/prompt.go
package aimatch

import (
	"encoding/json"
	"fmt"
	"strings"

	"edupath-server/internal/models"
)

const systemInstruction = `You are an expert international-education counsellor. ` +
	`Given a student profile and a list of candidate universities, select and rank the best matches. ` +
	`Respond with strict JSON only, no narration, using this schema: ` +
	`{"matches":[{"name":string,"matchScore":number(0-100),"admissionChance":"High"|"Good"|"Moderate"|"Competitive",` +
	`"reasons":string[],"keyStrengths":string[],"recommendation":string,"estimatedCost":string,"scholarshipOpportunities":string[]}],` +
	`"analysis":{"overallSummary":string,"recommendations":string[],"alternatives":string[],"nextSteps":string[]}}. ` +
	`Return at most 10 matches ranked by matchScore descending. Only name universities from the provided list.`

// buildUserPrompt embeds the profile and a bounded slice of reference data
// into a single user message.
func buildUserPrompt(profile *StudentProfile, universities []models.University, limit int) string {
	if limit > 0 && len(universities) > limit {
		universities = universities[:limit]
	}

	profileJSON, _ := json.Marshal(profile)
	contextJSON, _ := json.Marshal(universities)

	var sb strings.Builder
	sb.WriteString("Student profile:\n")
	sb.Write(profileJSON)
	sb.WriteString("\n\nCandidate universities:\n")
	sb.Write(contextJSON)
	sb.WriteString(fmt.Sprintf("\n\nRecommend the best universities for a %s in %s.",
		profile.DegreeLevel, profile.FieldOfStudy))
	return sb.String()
}
