package tracking

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/pkg/simulate"
)

// DefaultLatency is the artificial delay of the in-memory recorder.
const DefaultLatency = 500 * time.Millisecond

// Recorder persists events and reports per-campaign totals.
type Recorder interface {
	Record(ctx context.Context, e Event) error
	Counts(ctx context.Context, campaignID string) (domain.TrackingCounts, error)
}

// MemoryRecorder tallies events in process.
type MemoryRecorder struct {
	mu      sync.Mutex
	counts  map[string]*domain.TrackingCounts
	latency time.Duration
}

func NewMemoryRecorder(latency time.Duration) *MemoryRecorder {
	return &MemoryRecorder{counts: make(map[string]*domain.TrackingCounts), latency: latency}
}

func (m *MemoryRecorder) Record(ctx context.Context, e Event) error {
	if err := simulate.Sleep(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.counts[e.CampaignID]
	if !ok {
		c = &domain.TrackingCounts{CampaignID: e.CampaignID}
		m.counts[e.CampaignID] = c
	}
	switch e.Type {
	case EventOpen:
		c.Opens++
	case EventClick:
		c.Clicks++
	}
	return nil
}

func (m *MemoryRecorder) Counts(_ context.Context, campaignID string) (domain.TrackingCounts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.counts[campaignID]; ok {
		return *c, nil
	}
	return domain.TrackingCounts{CampaignID: campaignID}, nil
}

// RedisRecorder keeps a hash of counters per campaign under
// "<prefix>tracking:<campaignID>".
type RedisRecorder struct {
	client *redis.Client
	prefix string
}

func NewRedisRecorder(client *redis.Client, prefix string) *RedisRecorder {
	return &RedisRecorder{client: client, prefix: prefix}
}

func (r *RedisRecorder) key(campaignID string) string {
	return r.prefix + "tracking:" + campaignID
}

func field(t EventType) string {
	if t == EventClick {
		return "clicks"
	}
	return "opens"
}

func (r *RedisRecorder) Record(ctx context.Context, e Event) error {
	if err := r.client.HIncrBy(ctx, r.key(e.CampaignID), field(e.Type), 1).Err(); err != nil {
		return fmt.Errorf("record %s: %w", e.Type, err)
	}
	return nil
}

func (r *RedisRecorder) Counts(ctx context.Context, campaignID string) (domain.TrackingCounts, error) {
	out := domain.TrackingCounts{CampaignID: campaignID}
	vals, err := r.client.HMGet(ctx, r.key(campaignID), "opens", "clicks").Result()
	if err != nil {
		return out, fmt.Errorf("read tracking counts: %w", err)
	}
	out.Opens = toInt(vals[0])
	out.Clicks = toInt(vals[1])
	return out, nil
}

func toInt(v interface{}) int64 {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
