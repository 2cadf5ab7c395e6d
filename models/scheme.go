package models

import "time"

// Scheme is a single government scheme record served by the catalogue.
// All fields except CreatedBy/CreatedAt are supplied by the author.
type Scheme struct {
	// SchemeID is the server-assigned identifier of the record.
	SchemeID int64 `json:"id"`

	// Title is the official scheme name shown in listings.
	Title string `json:"title"`

	// Description is the long-form explanation of the scheme.
	Description string `json:"description"`

	// Category groups schemes for filtering (e.g. "agriculture",
	// "education", "health").
	Category string `json:"category"`

	// Eligibility describes who may apply.
	Eligibility string `json:"eligibility,omitempty"`

	// Benefits describes what a successful applicant receives.
	Benefits string `json:"benefits,omitempty"`

	// Link is an optional URL to the official scheme page.
	Link string `json:"link,omitempty"`

	// CreatedBy is the identity of the authenticated user who created
	// the record.
	CreatedBy string `json:"created_by,omitempty"`

	// CreatedAt is the record creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Scheme model.
func (s Scheme) TableName() string {
	return "schemes"
}

// SchemeFilter narrows a scheme listing. Zero-value fields are ignored,
// so an empty filter returns the whole catalogue.
type SchemeFilter struct {
	// Category restricts results to an exact category match.
	Category string `json:"category,omitempty"`

	// Keyword restricts results to schemes whose title or description
	// contains the keyword (case-insensitive).
	Keyword string `json:"keyword,omitempty"`
}
