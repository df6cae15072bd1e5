// internal/models/lead.go
package models

import "time"

// LeadPriority buckets drive the notification channel selection.
type LeadPriority string

const (
	LeadPriorityLow    LeadPriority = "low"
	LeadPriorityNormal LeadPriority = "normal"
	LeadPriorityHigh   LeadPriority = "high"
)

var priorityRank = map[LeadPriority]int{
	LeadPriorityLow:    0,
	LeadPriorityNormal: 1,
	LeadPriorityHigh:   2,
}

// AtLeast reports whether p ranks at or above threshold. Unknown values rank
// below low, so a garbled threshold never opens the gate wider.
func (p LeadPriority) AtLeast(threshold LeadPriority) bool {
	pr, ok := priorityRank[p]
	if !ok {
		return false
	}
	tr, ok := priorityRank[threshold]
	if !ok {
		return false
	}
	return pr >= tr
}

// Lead is a captured enquiry from any of the site forms.
type Lead struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone,omitempty"`
	CountryInterest string       `json:"countryInterest,omitempty"`
	FieldOfStudy    string       `json:"fieldOfStudy,omitempty"`
	Message         string       `json:"message,omitempty"`
	Source          string       `json:"source"`
	Priority        LeadPriority `json:"priority"`
	CreatedAt       time.Time    `json:"createdAt"`
}
