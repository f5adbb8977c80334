package lead

import (
	"context"

	"github.com/quotable/leadintel/internal/domain"
)

// Repository defines the data access contract for leads.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Save inserts or replaces the given leads by ID.
	Save(ctx context.Context, leads ...domain.Lead) error

	// Get returns a single lead. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Lead, error)

	// List returns leads matching the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]domain.Lead, error)

	// UpdateStatus sets a lead's status. Returns ErrNotFound if missing.
	UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) error
}

// ListFilter controls filtering and pagination for lead lists.
type ListFilter struct {
	Status             domain.LeadStatus
	DecisionMakersOnly bool
	Limit              int
	Offset             int
}

// Matches reports whether l passes the non-paging parts of the filter.
func (f ListFilter) Matches(l domain.Lead) bool {
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if f.DecisionMakersOnly && !l.IsDecisionMaker {
		return false
	}
	return true
}
