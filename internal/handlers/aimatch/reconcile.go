// internal/handlers/aimatch/reconcile.go
package aimatch

import (
	"strings"

	"edupath-server/internal/referencedata"

	"github.com/google/uuid"
)

// reconcile maps the model's named matches onto canonical reference-data
// records. Unresolvable names get a synthesized placeholder so the response
// shape stays uniform.
func reconcile(profile *StudentProfile, raw []modelMatch, data *referencedata.Provider) []UniversityMatch {
	out := make([]UniversityMatch, 0, len(raw))

	for _, m := range raw {
		match := UniversityMatch{
			Name:                     m.Name,
			MatchScore:               clampScore(m.MatchScore),
			AdmissionChance:          m.AdmissionChance,
			Reasons:                  m.Reasons,
			KeyStrengths:             m.KeyStrengths,
			Recommendation:           m.Recommendation,
			EstimatedCost:            m.EstimatedCost,
			ScholarshipOpportunities: m.ScholarshipOpportunities,
		}

		if u, ok := data.ResolveUniversity(m.Name); ok {
			match.ID = u.ID
			match.Name = u.Name
			match.Country = u.Country
			match.Location = u.Location
			match.Ranking = u.Ranking
			match.Image = u.Image
			match.Programs = u.Programs
			if match.EstimatedCost == "" {
				match.EstimatedCost = u.Tuition
			}
		} else {
			match.ID = uuid.NewString()
			match.Location = "Location available on request"
			match.Country = placeholderCountry(profile)
			match.Ranking = 0
			match.Image = referencedata.DefaultImage
			if f := strings.TrimSpace(profile.FieldOfStudy); f != "" {
				match.Programs = []string{f}
			}
		}

		out = append(out, match)
	}
	return out
}

func placeholderCountry(profile *StudentProfile) string {
	if len(profile.PreferredCountries) > 0 {
		return profile.PreferredCountries[0]
	}
	return "International"
}
