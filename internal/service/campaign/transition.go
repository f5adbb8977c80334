package campaign

import (
	"slices"

	"github.com/quotable/leadintel/internal/domain"
)

// Transition is a guarded status change.
type Transition struct {
	Name string
	From []domain.CampaignStatus
	To   domain.CampaignStatus

	// LeadsCount, when set, is written together with the status.
	LeadsCount *int
}

// Allowed reports whether a campaign in status s may take this transition.
func (t Transition) Allowed(s domain.CampaignStatus) bool {
	return slices.Contains(t.From, s)
}

// Apply moves c to the target status. The caller checks Allowed first.
func (t Transition) Apply(c *domain.Campaign) {
	c.Status = t.To
	if t.LeadsCount != nil {
		c.LeadsCount = *t.LeadsCount
	}
}

// FromStrings returns the allowed source statuses as plain strings.
func (t Transition) FromStrings() []string {
	out := make([]string, len(t.From))
	for i, s := range t.From {
		out[i] = string(s)
	}
	return out
}

var (
	pauseTransition = Transition{
		Name: "pause",
		From: []domain.CampaignStatus{domain.CampaignActive},
		To:   domain.CampaignPaused,
	}
	resumeTransition = Transition{
		Name: "resume",
		From: []domain.CampaignStatus{domain.CampaignPaused},
		To:   domain.CampaignActive,
	}
	completeTransition = Transition{
		Name: "complete",
		From: []domain.CampaignStatus{domain.CampaignActive, domain.CampaignPaused},
		To:   domain.CampaignCompleted,
	}
)

// LaunchTransition activates a draft with the given audience size.
func LaunchTransition(leadsCount int) Transition {
	return Transition{
		Name:       "launch",
		From:       []domain.CampaignStatus{domain.CampaignDraft},
		To:         domain.CampaignActive,
		LeadsCount: &leadsCount,
	}
}
