// Package redisstore implements the campaign repository on Redis. Each campaign
// is a JSON string under "<prefix>campaign:<id>"; a sorted set scored by
// creation time indexes them for listing.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/service/campaign"
)

// maxTxRetries bounds optimistic-lock retries on concurrent writers.
const maxTxRetries = 5

// ErrExists is returned by Create when the id is already taken.
var ErrExists = errors.New("campaign already exists")

// CampaignRepo implements campaign.Repository on Redis.
type CampaignRepo struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewCampaignRepo creates a Redis-backed campaign repository.
func NewCampaignRepo(client *redis.Client, prefix string) *CampaignRepo {
	return &CampaignRepo{client: client, prefix: prefix, now: time.Now}
}

func (r *CampaignRepo) key(id string) string { return r.prefix + "campaign:" + id }
func (r *CampaignRepo) indexKey() string     { return r.prefix + "campaigns" }

func (r *CampaignRepo) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return r.load(ctx, r.client, id)
}

func (r *CampaignRepo) load(ctx context.Context, c redis.Cmdable, id string) (*domain.Campaign, error) {
	data, err := c.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, campaign.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	var out domain.Campaign
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode campaign %s: %w", id, err)
	}
	return &out, nil
}

func (r *CampaignRepo) List(ctx context.Context, f campaign.ListFilter) ([]domain.Campaign, error) {
	ids, err := r.client.ZRevRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list campaign ids: %w", err)
	}
	out := []domain.Campaign{}
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load campaigns: %w", err)
	}

	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue // removed between ZREVRANGE and MGET
		}
		var c domain.Campaign
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return nil, fmt.Errorf("decode campaign %s: %w", ids[i], err)
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		out = append(out, c)
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Offset >= len(out) {
		return []domain.Campaign{}, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *CampaignRepo) Create(ctx context.Context, c *domain.Campaign) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode campaign: %w", err)
	}
	ok, err := r.client.SetNX(ctx, r.key(c.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrExists, c.ID)
	}
	if err := r.client.ZAdd(ctx, r.indexKey(), redis.Z{
		Score:  float64(c.CreatedAt.UnixMilli()),
		Member: c.ID,
	}).Err(); err != nil {
		return fmt.Errorf("index campaign: %w", err)
	}
	return nil
}

// mutate loads, changes and stores a campaign under WATCH so a concurrent
// writer forces a retry instead of a lost update.
func (r *CampaignRepo) mutate(ctx context.Context, id string, fn func(*domain.Campaign) error) (*domain.Campaign, error) {
	key := r.key(id)
	var result *domain.Campaign

	txf := func(tx *redis.Tx) error {
		c, err := r.load(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
		c.UpdatedAt = r.now().UTC()
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("encode campaign: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err == nil {
			result = c
		}
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return nil, fmt.Errorf("update campaign %s: too much contention", id)
}

func (r *CampaignRepo) Update(ctx context.Context, id string, u campaign.UpdateFields) (*domain.Campaign, error) {
	return r.mutate(ctx, id, func(c *domain.Campaign) error {
		u.Apply(c)
		return nil
	})
}

func (r *CampaignRepo) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if n == 0 {
		return campaign.ErrNotFound
	}
	if err := r.client.ZRem(ctx, r.indexKey(), id).Err(); err != nil {
		return fmt.Errorf("unindex campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepo) Transition(ctx context.Context, id string, t campaign.Transition) (*domain.Campaign, error) {
	return r.mutate(ctx, id, func(c *domain.Campaign) error {
		if !t.Allowed(c.Status) {
			return fmt.Errorf("%w: cannot %s a %s campaign", campaign.ErrInvalidTransition, t.Name, c.Status)
		}
		t.Apply(c)
		return nil
	})
}

// Seed stores campaigns when the store holds none and reports how many it
// wrote. A store with any campaigns, including one whose seed campaigns
// were deleted, is left alone. Concurrent seeders may both pass the empty
// check; ids that lost the race are skipped.
func (r *CampaignRepo) Seed(ctx context.Context, campaigns ...domain.Campaign) (int, error) {
	n, err := r.client.ZCard(ctx, r.indexKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("count campaigns: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	seeded := 0
	for i := range campaigns {
		c := campaigns[i]
		err := r.Create(ctx, &c)
		switch {
		case err == nil:
			seeded++
		case errors.Is(err, ErrExists):
		default:
			return seeded, err
		}
	}
	return seeded, nil
}
