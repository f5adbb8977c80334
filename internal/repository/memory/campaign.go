package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/pkg/simulate"
	"github.com/quotable/leadintel/internal/service/campaign"
)

// CampaignRepo implements campaign.Repository in process memory.
type CampaignRepo struct {
	mu        sync.Mutex
	campaigns map[string]*domain.Campaign
	latency   Latency
	now       func() time.Time
}

// NewCampaignRepo creates a store holding the given campaigns.
func NewCampaignRepo(latency Latency, seed ...domain.Campaign) *CampaignRepo {
	r := &CampaignRepo{
		campaigns: make(map[string]*domain.Campaign, len(seed)),
		latency:   latency,
		now:       time.Now,
	}
	for i := range seed {
		c := seed[i]
		r.campaigns[c.ID] = &c
	}
	return r
}

// NewSeededCampaignRepo creates a store with the demo campaigns.
func NewSeededCampaignRepo(latency Latency) *CampaignRepo {
	return NewCampaignRepo(latency, SeedCampaigns()...)
}

func (r *CampaignRepo) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	if err := simulate.Sleep(ctx, r.latency.Get); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, campaign.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *CampaignRepo) List(ctx context.Context, f campaign.ListFilter) ([]domain.Campaign, error) {
	if err := simulate.Sleep(ctx, r.latency.List); err != nil {
		return nil, err
	}
	r.mu.Lock()
	out := make([]domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		out = append(out, *c)
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return page(out, f.Offset, f.Limit), nil
}

func (r *CampaignRepo) Create(ctx context.Context, c *domain.Campaign) error {
	if c.ID == "" {
		return fmt.Errorf("campaign id required")
	}
	if err := simulate.Sleep(ctx, r.latency.Create); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.campaigns[c.ID]; exists {
		return fmt.Errorf("campaign %s already exists", c.ID)
	}
	cp := *c
	r.campaigns[cp.ID] = &cp
	return nil
}

func (r *CampaignRepo) Update(ctx context.Context, id string, u campaign.UpdateFields) (*domain.Campaign, error) {
	if err := simulate.Sleep(ctx, r.latency.Write); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, campaign.ErrNotFound
	}
	u.Apply(c)
	c.UpdatedAt = r.now().UTC()
	cp := *c
	return &cp, nil
}

func (r *CampaignRepo) Delete(ctx context.Context, id string) error {
	if err := simulate.Sleep(ctx, r.latency.Write); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[id]; !ok {
		return campaign.ErrNotFound
	}
	delete(r.campaigns, id)
	return nil
}

func (r *CampaignRepo) Transition(ctx context.Context, id string, t campaign.Transition) (*domain.Campaign, error) {
	if err := simulate.Sleep(ctx, r.latency.Write); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, campaign.ErrNotFound
	}
	if !t.Allowed(c.Status) {
		return nil, fmt.Errorf("%w: cannot %s a %s campaign", campaign.ErrInvalidTransition, t.Name, c.Status)
	}
	t.Apply(c)
	c.UpdatedAt = r.now().UTC()
	cp := *c
	return &cp, nil
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	if offset < 0 {
		offset = 0
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
