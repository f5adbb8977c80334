package domain

import (
	"strings"
	"time"
)

// CampaignStatus enumerates the lifecycle states of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignPaused, CampaignCompleted:
		return true
	}
	return false
}

// Campaign is an outreach campaign with its template body and rolling rates.
//
// The rate metrics are percentages seeded at creation. They are never
// recomputed from send or tracking events.
type Campaign struct {
	ID             string         `json:"id" db:"id"`
	Name           string         `json:"name" db:"name"`
	Subject        string         `json:"subject" db:"subject"`
	Content        string         `json:"content" db:"content"`
	TargetRegion   string         `json:"target_region" db:"target_region"`
	TargetIndustry string         `json:"target_industry" db:"target_industry"`
	Status         CampaignStatus `json:"status" db:"status"`
	LeadsCount     int            `json:"leads_count" db:"leads_count"`
	OpenRate       float64        `json:"open_rate" db:"open_rate"`
	ClickRate      float64        `json:"click_rate" db:"click_rate"`
	ResponseRate   float64        `json:"response_rate" db:"response_rate"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// HasUnrenderedTokens reports whether the body still contains template
// placeholders.
func (c *Campaign) HasUnrenderedTokens() bool {
	return strings.Contains(c.Content, "{{") && strings.Contains(c.Content, "}}")
}

// Performance is the compact rate view of a single campaign.
type Performance struct {
	OpenRate     float64 `json:"open_rate"`
	ClickRate    float64 `json:"click_rate"`
	ResponseRate float64 `json:"response_rate"`
	LeadsCount   int     `json:"leads_count"`
}

// SendResult is returned by a successful dispatch.
type SendResult struct {
	MessageID  string    `json:"message_id"`
	CampaignID string    `json:"campaign_id"`
	LeadID     string    `json:"lead_id,omitempty"`
	Recipient  string    `json:"recipient"`
	SentAt     time.Time `json:"sent_at"`
}
