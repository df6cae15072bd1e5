// internal/handlers/aisearch/fallback.go
package aisearch

import (
	"fmt"
	"strings"

	"edupath-server/internal/referencedata"
)

// fallbackSearch runs plain case-insensitive substring search across all
// three categories, keeping source-collection order. No fuzzy matching, no
// synonym expansion.
func fallbackSearch(query string, data *referencedata.Provider, limit int) Results {
	return Results{
		Universities: data.SearchUniversities(query, limit),
		Courses:      data.SearchCourses(query, limit),
		Countries:    data.SearchCountries(query, limit),
	}
}

// fallbackInterpretation is the static default used when the completion path
// did not run or under-delivered.
func fallbackInterpretation(query string) Interpretation {
	return Interpretation{
		Type:       "mixed",
		SearchTerm: query,
		Intent:     fmt.Sprintf("Find universities, courses or destinations matching %q", query),
		SuggestedQueries: []string{
			"Top universities for computer science",
			"Affordable countries for international students",
			"Masters programs in engineering",
		},
	}
}

func fallbackNaturalResponse(query string, results Results) string {
	total := len(results.Universities) + len(results.Courses) + len(results.Countries)
	if total == 0 {
		return fmt.Sprintf("We couldn't find anything matching %q. Try a university name, a field of study, or a country.", query)
	}

	var parts []string
	if n := len(results.Universities); n > 0 {
		parts = append(parts, fmt.Sprintf("%d universities", n))
	}
	if n := len(results.Courses); n > 0 {
		parts = append(parts, fmt.Sprintf("%d courses", n))
	}
	if n := len(results.Countries); n > 0 {
		parts = append(parts, fmt.Sprintf("%d destinations", n))
	}
	return fmt.Sprintf("We found %s matching %q.", strings.Join(parts, ", "), query)
}
