// internal/handlers/admin/bulkimport/models.go
package bulkimport

// Record is one incoming college row. Field names follow the export format
// of the admin dashboard's spreadsheet tooling.
type Record struct {
	Name     string   `json:"name"`
	Country  string   `json:"country"`
	Location string   `json:"location,omitempty"`
	Ranking  int      `json:"ranking,omitempty"`
	Tuition  string   `json:"tuition,omitempty"`
	Programs []string `json:"programs,omitempty"`
	Image    string   `json:"image,omitempty"`
}

// RecordError reports why one record was rejected, keyed by its position in
// the submitted array.
type RecordError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Details summarizes one import run.
type Details struct {
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Errors     []RecordError `json:"errors,omitempty"`
}

// Response is the import endpoint envelope.
type Response struct {
	Success bool    `json:"success"`
	Details Details `json:"details"`
}
