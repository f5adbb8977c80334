package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"
)

// ErrNotFound is returned when no document exists under a key.
var ErrNotFound = errors.New("archived document not found")

// Report kinds used as key prefixes.
const (
	KindOptimization = "optimization"
	KindIntelligence = "intelligence"
)

// Archive stores JSON documents by key.
type Archive interface {
	Put(ctx context.Context, key string, v interface{}) error
	Get(ctx context.Context, key string, v interface{}) error
	// List returns keys under prefix, newest first.
	List(ctx context.Context, prefix string) ([]string, error)
}

// ReportKey returns the dated key for a report of the given kind, e.g.
// optimization/2024/01/15/10-30-00.json.
func ReportKey(kind string, at time.Time) string {
	at = at.UTC()
	return path.Join(kind, at.Format("2006/01/02"), at.Format("15-04-05")+".json")
}

// SaveReport archives v under a key derived from kind and at.
func SaveReport(ctx context.Context, a Archive, kind string, at time.Time, v interface{}) (string, error) {
	key := ReportKey(kind, at)
	if err := a.Put(ctx, key, v); err != nil {
		return "", fmt.Errorf("archive %s report: %w", kind, err)
	}
	return key, nil
}

// LatestReport loads the newest report of the given kind into v.
func LatestReport(ctx context.Context, a Archive, kind string, v interface{}) (string, error) {
	keys, err := a.List(ctx, kind+"/")
	if err != nil {
		return "", err
	}
	if len(keys) == 0 {
		return "", ErrNotFound
	}
	if err := a.Get(ctx, keys[0], v); err != nil {
		return "", err
	}
	return keys[0], nil
}
