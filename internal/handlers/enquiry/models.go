// internal/handlers/enquiry/models.go
package enquiry

// Request is the lead-capture input from any of the site forms.
type Request struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	CountryInterest string `json:"countryInterest,omitempty"`
	FieldOfStudy    string `json:"fieldOfStudy,omitempty"`
	Message         string `json:"message,omitempty"`
	Source          string `json:"source,omitempty"`
}

// Response acknowledges a stored enquiry. Secondary sink outcomes are never
// reflected here.
type Response struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message"`
}
