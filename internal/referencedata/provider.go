// internal/referencedata/provider.go
package referencedata

import (
	"strings"

	"edupath-server/internal/models"
)

// Provider exposes read-only access to the static catalog collections.
// Populated at process start and never mutated, so unsynchronized concurrent
// reads are safe.
type Provider struct {
	universities []models.University
	courses      []models.Course
	countries    []models.Country
}

// NewProvider returns a Provider over the built-in catalog.
func NewProvider() *Provider {
	return &Provider{
		universities: universities,
		courses:      courses,
		countries:    countries,
	}
}

// NewProviderWithData returns a Provider over caller-supplied collections.
// Used by tests and by the catalog seeding tool.
func NewProviderWithData(u []models.University, c []models.Course, n []models.Country) *Provider {
	return &Provider{universities: u, courses: c, countries: n}
}

// Universities returns the full institution collection in source order.
func (p *Provider) Universities() []models.University {
	return p.universities
}

// Courses returns the full course collection in source order.
func (p *Provider) Courses() []models.Course {
	return p.courses
}

// Countries returns the full destination collection in source order.
func (p *Provider) Countries() []models.Country {
	return p.countries
}

// SearchUniversities returns up to limit institutions whose name, country or
// any program contains the query, case-insensitively, in source order.
func (p *Provider) SearchUniversities(query string, limit int) []models.University {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []models.University
	for _, u := range p.universities {
		if containsFold(u.Name, q) || containsFold(u.Country, q) || anyContainsFold(u.Programs, q) {
			out = append(out, u)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// SearchCourses returns up to limit courses whose name, field or any skill
// contains the query.
func (p *Provider) SearchCourses(query string, limit int) []models.Course {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []models.Course
	for _, c := range p.courses {
		if containsFold(c.Name, q) || containsFold(c.Field, q) || anyContainsFold(c.Skills, q) {
			out = append(out, c)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// SearchCountries returns up to limit destinations whose name or any popular
// city contains the query.
func (p *Provider) SearchCountries(query string, limit int) []models.Country {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []models.Country
	for _, c := range p.countries {
		if containsFold(c.Name, q) || anyContainsFold(c.PopularCities, q) {
			out = append(out, c)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// FilterUniversities narrows the institution collection by optional country
// and field-of-study filters. Empty filters match everything.
func (p *Provider) FilterUniversities(country, field string) []models.University {
	country = strings.ToLower(strings.TrimSpace(country))
	field = strings.ToLower(strings.TrimSpace(field))

	var out []models.University
	for _, u := range p.universities {
		if country != "" && !containsFold(u.Country, country) {
			continue
		}
		if field != "" && !anyContainsFold(u.Programs, field) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// ResolveUniversity maps a free-form institution name to a canonical record
// by bidirectional case-insensitive containment.
func (p *Provider) ResolveUniversity(name string) (models.University, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return models.University{}, false
	}
	for _, u := range p.universities {
		cn := strings.ToLower(u.Name)
		if strings.Contains(cn, n) || strings.Contains(n, cn) {
			return u, true
		}
	}
	return models.University{}, false
}

func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

func anyContainsFold(items []string, lowerQuery string) bool {
	for _, it := range items {
		if strings.Contains(strings.ToLower(it), lowerQuery) {
			return true
		}
	}
	return false
}
