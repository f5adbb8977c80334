package domain

import "time"

// LeadStatus enumerates where a lead sits in the outreach funnel.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadQualified LeadStatus = "qualified"
	LeadContacted LeadStatus = "contacted"
	LeadResponded LeadStatus = "responded"
)

// Valid reports whether s is one of the known lead statuses.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadNew, LeadQualified, LeadContacted, LeadResponded:
		return true
	}
	return false
}

// LeadSource identifies where a scraped lead came from.
type LeadSource string

const (
	SourceLinkedIn   LeadSource = "linkedin"
	SourceGoogleMaps LeadSource = "google_maps"
)

// Valid reports whether s is a supported scrape source.
func (s LeadSource) Valid() bool {
	return s == SourceLinkedIn || s == SourceGoogleMaps
}

// Lead is a prospective contact produced by the generator.
// Status is not enforced to move forward; any valid status may be set.
type Lead struct {
	ID              string     `json:"id" db:"id" dynamodbav:"id"`
	Name            string     `json:"name" db:"name" dynamodbav:"name"`
	Title           string     `json:"title" db:"title" dynamodbav:"title"`
	Company         string     `json:"company" db:"company" dynamodbav:"company"`
	Location        string     `json:"location" db:"location" dynamodbav:"location"`
	Email           string     `json:"email,omitempty" db:"email" dynamodbav:"email,omitempty"`
	LinkedInURL     string     `json:"linkedin_url,omitempty" db:"linkedin_url" dynamodbav:"linkedin_url,omitempty"`
	Industry        string     `json:"industry" db:"industry" dynamodbav:"industry"`
	ConfidenceScore float64    `json:"confidence_score" db:"confidence_score" dynamodbav:"confidence_score"`
	IsDecisionMaker bool       `json:"is_decision_maker" db:"is_decision_maker" dynamodbav:"is_decision_maker"`
	Status          LeadStatus `json:"status" db:"status" dynamodbav:"status"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at" dynamodbav:"created_at"`
}

// IndustryMatch grades how well a lead's industry fits the product.
type IndustryMatch string

const (
	MatchHigh   IndustryMatch = "high"
	MatchMedium IndustryMatch = "medium"
	MatchLow    IndustryMatch = "low"
)

// Evaluation is the outcome of running a lead through the evaluator.
// Evaluated is false when the lead was passed through unchanged.
type Evaluation struct {
	Lead          Lead          `json:"lead"`
	IndustryMatch IndustryMatch `json:"industry_match,omitempty"`
	Reasoning     string        `json:"reasoning,omitempty"`
	Evaluated     bool          `json:"evaluated"`
	Error         string        `json:"error,omitempty"`
}
