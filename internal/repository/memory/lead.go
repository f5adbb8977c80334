package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/service/lead"
)

// LeadRepo implements lead.Repository in process memory.
type LeadRepo struct {
	mu    sync.RWMutex
	leads map[string]domain.Lead
}

// NewLeadRepo creates an empty lead store.
func NewLeadRepo() *LeadRepo {
	return &LeadRepo{leads: make(map[string]domain.Lead)}
}

func (r *LeadRepo) Save(_ context.Context, leads ...domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range leads {
		r.leads[l.ID] = l
	}
	return nil
}

func (r *LeadRepo) Get(_ context.Context, id string) (*domain.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.leads[id]
	if !ok {
		return nil, lead.ErrNotFound
	}
	return &l, nil
}

func (r *LeadRepo) List(_ context.Context, f lead.ListFilter) ([]domain.Lead, error) {
	r.mu.RLock()
	out := make([]domain.Lead, 0, len(r.leads))
	for _, l := range r.leads {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return page(out, f.Offset, f.Limit), nil
}

func (r *LeadRepo) UpdateStatus(_ context.Context, id string, status domain.LeadStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.leads[id]
	if !ok {
		return lead.ErrNotFound
	}
	l.Status = status
	r.leads[id] = l
	return nil
}
