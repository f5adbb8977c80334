package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryArchive keeps documents in process. It is used when no bucket is
// configured and in tests.
type MemoryArchive struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{docs: make(map[string][]byte)}
}

func (a *MemoryArchive) Put(_ context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling data: %w", err)
	}
	a.mu.Lock()
	a.docs[key] = data
	a.mu.Unlock()
	return nil
}

func (a *MemoryArchive) Get(_ context.Context, key string, v interface{}) error {
	a.mu.RLock()
	data, ok := a.docs[key]
	a.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(data, v)
}

func (a *MemoryArchive) List(_ context.Context, prefix string) ([]string, error) {
	a.mu.RLock()
	keys := make([]string, 0, len(a.docs))
	for k := range a.docs {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	a.mu.RUnlock()
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, nil
}
