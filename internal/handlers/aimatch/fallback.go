// internal/handlers/aimatch/fallback.go
package aimatch

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"edupath-server/internal/models"
)

// budgetThresholds maps the fixed budget-bucket strings to a maximum annual
// tuition amount. Buckets not in the map fall back to maxBudgetThreshold.
var budgetThresholds = map[string]int{
	"Under $20,000":      20000,
	"$20,000 - $40,000":  40000,
	"$40,000 - $60,000":  60000,
	"$60,000 - $80,000":  80000,
	"$80,000 - $100,000": 100000,
}

const maxBudgetThreshold = 100000

const fallbackBaseScore = 50

// fallbackMatch scores every candidate with the deterministic rule set, ranks
// descending and keeps the top maxMatches. No network calls.
func fallbackMatch(profile *StudentProfile, universities []models.University, maxMatches int) []UniversityMatch {
	matches := make([]UniversityMatch, 0, len(universities))

	for _, u := range universities {
		score := fallbackBaseScore
		var reasons []string

		// Country preference only applies when the caller stated one.
		if len(profile.PreferredCountries) > 0 {
			if containsString(profile.PreferredCountries, u.Country) {
				score += 20
				reasons = append(reasons, fmt.Sprintf("Located in preferred country %s", u.Country))
			} else {
				score -= 30
			}
		}

		if profile.AcademicScore >= 80 && u.Ranking <= 50 {
			score += 15
			reasons = append(reasons, "Strong academic profile fits a top-50 institution")
		}
		if profile.AcademicScore >= 60 && u.Ranking > 50 && u.Ranking <= 200 {
			score += 10
			reasons = append(reasons, "Academic profile aligns with institution ranking")
		}

		threshold, ok := budgetThresholds[profile.Budget]
		if !ok {
			threshold = maxBudgetThreshold
		}
		if amount, parsed := parseTuitionAmount(u.Tuition); parsed {
			if amount <= threshold {
				score += 10
				reasons = append(reasons, "Tuition fits the stated budget")
			} else {
				score -= 20
			}
		}

		if field := strings.TrimSpace(profile.FieldOfStudy); field != "" {
			if programMatches(u.Programs, field) {
				score += 15
				reasons = append(reasons, fmt.Sprintf("Offers programs in %s", field))
			}
		}

		score = clampScore(score)

		matches = append(matches, UniversityMatch{
			ID:              u.ID,
			Name:            u.Name,
			Country:         u.Country,
			Location:        u.Location,
			Ranking:         u.Ranking,
			Image:           u.Image,
			Programs:        u.Programs,
			MatchScore:      score,
			AdmissionChance: fallbackAdmissionChance(score),
			Reasons:         reasons,
			KeyStrengths:    keyStrengths(u),
			Recommendation:  fmt.Sprintf("Review %s's %s requirements and application deadlines.", u.Name, profile.DegreeLevel),
			EstimatedCost:   u.Tuition,
			ScholarshipOpportunities: []string{
				"Merit-based scholarships",
				"International student grants",
			},
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}

// fallbackAdmissionChance uses a three-bucket scale; the AI-path contract has
// a fourth "High" bucket the rule-based path never produces.
func fallbackAdmissionChance(score int) string {
	switch {
	case score >= 80:
		return "Good"
	case score >= 60:
		return "Moderate"
	default:
		return "Competitive"
	}
}

func fallbackAnalysis(profile *StudentProfile, matches []UniversityMatch) Analysis {
	summary := fmt.Sprintf("Based on your profile, %d universities were matched using our standard criteria.", len(matches))
	if field := strings.TrimSpace(profile.FieldOfStudy); field != "" {
		summary = fmt.Sprintf("Based on your interest in %s, %d universities were matched using our standard criteria.", field, len(matches))
	}

	return Analysis{
		OverallSummary: summary,
		Recommendations: []string{
			"Shortlist three to five universities across ambition levels",
			"Verify English-test score requirements for each shortlisted program",
		},
		Alternatives: []string{
			"Consider nearby countries with lower tuition for similar programs",
		},
		NextSteps: []string{
			"Prepare academic transcripts and references",
			"Book a counselling session to refine your shortlist",
		},
	}
}

// parseTuitionAmount extracts the leading numeric amount from a tuition
// string such as "$54,000 per year".
func parseTuitionAmount(tuition string) (int, bool) {
	start := -1
	for i, r := range tuition {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, false
	}

	end := start
	for end < len(tuition) {
		ch := tuition[end]
		if (ch >= '0' && ch <= '9') || ch == ',' {
			end++
			continue
		}
		break
	}

	digits := strings.ReplaceAll(tuition[start:end], ",", "")
	amount, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// programMatches reports bidirectional case-insensitive containment between
// the requested field of study and any candidate program.
func programMatches(programs []string, field string) bool {
	f := strings.ToLower(field)
	for _, p := range programs {
		pl := strings.ToLower(p)
		if strings.Contains(pl, f) || strings.Contains(f, pl) {
			return true
		}
	}
	return false
}

func containsString(items []string, v string) bool {
	for _, it := range items {
		if strings.EqualFold(it, v) {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func keyStrengths(u models.University) []string {
	strengths := []string{fmt.Sprintf("Ranked #%d globally", u.Ranking)}
	if len(u.Programs) > 0 {
		strengths = append(strengths, fmt.Sprintf("Known for %s", u.Programs[0]))
	}
	return strengths
}
