// internal/models/catalog.go
package models

// University is a canonical reference-data institution record.
type University struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Country  string   `json:"country"`
	Location string   `json:"location"`
	Ranking  int      `json:"ranking"`
	Tuition  string   `json:"tuition"`
	Programs []string `json:"programs"`
	Image    string   `json:"image"`
}

// Course is a canonical reference-data course record.
type Course struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Field    string   `json:"field"`
	Level    string   `json:"level"`
	Duration string   `json:"duration"`
	Skills   []string `json:"skills"`
}

// Country is a canonical reference-data destination record.
type Country struct {
	Name          string   `json:"name"`
	Code          string   `json:"code"`
	AvgTuition    string   `json:"avgTuition"`
	AvgLivingCost string   `json:"avgLivingCost"`
	PopularCities []string `json:"popularCities"`
	Image         string   `json:"image"`
}
