// internal/handlers/essayreview/fallback.go
package essayreview

import (
	"fmt"
	"strings"
)

const (
	minStrongWordCount = 400
	maxStrongWordCount = 800
)

// computeStats derives mechanical metrics from the essay text. Sentences are
// counted by terminal punctuation, paragraphs by blank-line separation.
func computeStats(essay string) Stats {
	stats := Stats{
		WordCount: len(strings.Fields(essay)),
	}

	for _, r := range essay {
		if r == '.' || r == '!' || r == '?' {
			stats.SentenceCount++
		}
	}

	for _, block := range strings.Split(essay, "\n\n") {
		if strings.TrimSpace(block) != "" {
			stats.ParagraphCount++
		}
	}
	return stats
}

// fallbackFeedback produces rule-based feedback from the mechanical stats.
// It never inspects meaning, only shape.
func fallbackFeedback(stats Stats) Feedback {
	score := 50
	var strengths, improvements []string

	switch {
	case stats.WordCount >= minStrongWordCount && stats.WordCount <= maxStrongWordCount:
		score += 20
		strengths = append(strengths, fmt.Sprintf("Good length at %d words", stats.WordCount))
	case stats.WordCount < minStrongWordCount:
		score -= 10
		improvements = append(improvements, fmt.Sprintf("At %d words the essay is short; aim for %d-%d words", stats.WordCount, minStrongWordCount, maxStrongWordCount))
	default:
		score -= 5
		improvements = append(improvements, fmt.Sprintf("At %d words the essay runs long; tighten it toward %d words", stats.WordCount, maxStrongWordCount))
	}

	if stats.ParagraphCount >= 3 {
		score += 15
		strengths = append(strengths, "Clear multi-paragraph structure")
	} else {
		improvements = append(improvements, "Break the essay into an introduction, body paragraphs and a conclusion")
	}

	if stats.SentenceCount > 0 {
		avg := stats.WordCount / stats.SentenceCount
		if avg > 30 {
			score -= 5
			improvements = append(improvements, "Average sentence length is high; split long sentences for readability")
		} else if avg >= 10 {
			score += 10
			strengths = append(strengths, "Balanced sentence length")
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return Feedback{
		OverallScore: score,
		Summary:      "Automated structural review. For feedback on content and voice, book a counselling session.",
		Strengths:    strengths,
		Improvements: improvements,
		StructureFeedback: fmt.Sprintf("%d paragraphs, %d sentences, %d words.",
			stats.ParagraphCount, stats.SentenceCount, stats.WordCount),
		SuggestedEdits: []string{
			"Open with a concrete moment rather than a general statement",
			"Close by connecting your story to the program you are applying for",
		},
	}
}
