// internal/referencedata/provider_test.go
package referencedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchUniversities(t *testing.T) {
	p := NewProvider()

	tests := []struct {
		name     string
		query    string
		limit    int
		validate func(t *testing.T, names []string)
	}{
		{
			name:  "exact name is first hit",
			query: "Harvard University",
			limit: 10,
			validate: func(t *testing.T, names []string) {
				require.NotEmpty(t, names)
				assert.Equal(t, "Harvard University", names[0])
			},
		},
		{
			name:  "case-insensitive substring",
			query: "oxford",
			limit: 10,
			validate: func(t *testing.T, names []string) {
				require.Len(t, names, 1)
				assert.Equal(t, "University of Oxford", names[0])
			},
		},
		{
			name:  "program attribute matches",
			query: "forestry",
			limit: 10,
			validate: func(t *testing.T, names []string) {
				require.NotEmpty(t, names)
				assert.Equal(t, "University of British Columbia", names[0])
			},
		},
		{
			name:  "limit is respected",
			query: "university",
			limit: 3,
			validate: func(t *testing.T, names []string) {
				assert.Len(t, names, 3)
			},
		},
		{
			name:  "no hits returns empty",
			query: "zzzz",
			limit: 10,
			validate: func(t *testing.T, names []string) {
				assert.Empty(t, names)
			},
		},
		{
			name:  "blank query returns empty",
			query: "   ",
			limit: 10,
			validate: func(t *testing.T, names []string) {
				assert.Empty(t, names)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := p.SearchUniversities(tt.query, tt.limit)
			names := make([]string, len(hits))
			for i, u := range hits {
				names[i] = u.Name
			}
			tt.validate(t, names)
		})
	}
}

func TestFilterUniversities(t *testing.T) {
	p := NewProvider()

	t.Run("country only", func(t *testing.T) {
		hits := p.FilterUniversities("Canada", "")
		require.NotEmpty(t, hits)
		for _, u := range hits {
			assert.Equal(t, "Canada", u.Country)
		}
	})

	t.Run("country and field", func(t *testing.T) {
		hits := p.FilterUniversities("Canada", "Medicine")
		require.NotEmpty(t, hits)
		for _, u := range hits {
			assert.Equal(t, "Canada", u.Country)
		}
	})

	t.Run("empty filters return everything", func(t *testing.T) {
		assert.Len(t, p.FilterUniversities("", ""), len(p.Universities()))
	})
}

func TestResolveUniversity(t *testing.T) {
	p := NewProvider()

	tests := []struct {
		name       string
		input      string
		expectedID string
		found      bool
	}{
		{"exact name", "Harvard University", "harvard", true},
		{"model name contains candidate", "Harvard University (Cambridge, USA)", "harvard", true},
		{"candidate contains model name", "Oxford", "oxford", true},
		{"case-insensitive", "eth zurich", "eth-zurich", true},
		{"unknown institution", "Atlantis Institute of Technology", "", false},
		{"empty name", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := p.ResolveUniversity(tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expectedID, u.ID)
			}
		})
	}
}

func TestSearchCoursesAndCountries(t *testing.T) {
	p := NewProvider()

	courses := p.SearchCourses("engineering", 10)
	require.NotEmpty(t, courses)
	for _, c := range courses {
		assert.NotEmpty(t, c.Name)
	}

	countries := p.SearchCountries("canada", 10)
	require.Len(t, countries, 1)
	assert.Equal(t, "CA", countries[0].Code)
}
