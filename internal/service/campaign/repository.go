package campaign

import (
	"context"

	"github.com/quotable/leadintel/internal/domain"
)

// Repository defines the data access contract for campaigns.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Get returns a single campaign. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Campaign, error)

	// List returns campaigns matching the given filter, ordered by created_at DESC.
	List(ctx context.Context, filter ListFilter) ([]domain.Campaign, error)

	// Create inserts a new campaign. The ID must already be set.
	Create(ctx context.Context, c *domain.Campaign) error

	// Update applies the non-nil fields and bumps updated_at. Returns
	// ErrNotFound if the campaign doesn't exist.
	Update(ctx context.Context, id string, u UpdateFields) (*domain.Campaign, error)

	// Delete removes a campaign. Returns ErrNotFound if it doesn't exist.
	Delete(ctx context.Context, id string) error

	// Transition atomically moves a campaign to t.To when its current status
	// is one of t.From. Returns ErrInvalidTransition otherwise.
	Transition(ctx context.Context, id string, t Transition) (*domain.Campaign, error)
}

// ListFilter controls pagination and filtering for campaign lists.
type ListFilter struct {
	Status domain.CampaignStatus
	Limit  int
	Offset int
}

// UpdateFields holds the mutable fields for a campaign update.
// Nil fields are not applied.
type UpdateFields struct {
	Name           *string `json:"name,omitempty"`
	Subject        *string `json:"subject,omitempty"`
	Content        *string `json:"content,omitempty"`
	TargetRegion   *string `json:"target_region,omitempty"`
	TargetIndustry *string `json:"target_industry,omitempty"`
}

// Empty reports whether no field is set.
func (u UpdateFields) Empty() bool {
	return u.Name == nil && u.Subject == nil && u.Content == nil &&
		u.TargetRegion == nil && u.TargetIndustry == nil
}

// Apply copies the set fields onto c.
func (u UpdateFields) Apply(c *domain.Campaign) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Subject != nil {
		c.Subject = *u.Subject
	}
	if u.Content != nil {
		c.Content = *u.Content
	}
	if u.TargetRegion != nil {
		c.TargetRegion = *u.TargetRegion
	}
	if u.TargetIndustry != nil {
		c.TargetIndustry = *u.TargetIndustry
	}
}
