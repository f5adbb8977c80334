// Package feed reads industry news headlines from RSS and Atom feeds.
package feed

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/quotable/leadintel/internal/pkg/httpretry"
)

// DefaultMaxItems caps Headlines when no limit is configured.
const DefaultMaxItems = 10

// Item is a single feed entry.
type Item struct {
	GUID    string    `json:"guid"`
	Title   string    `json:"title"`
	Link    string    `json:"link"`
	Source  string    `json:"source"`
	PubDate time.Time `json:"pub_date"`
}

// Reader fetches and merges a fixed set of feeds.
type Reader struct {
	urls     []string
	client   httpretry.HTTPDoer
	parser   *gofeed.Parser
	maxItems int
	now      func() time.Time
}

// NewReader creates a reader over urls. client is typically a
// *httpretry.RetryClient.
func NewReader(client httpretry.HTTPDoer, urls []string, maxItems int) *Reader {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return &Reader{
		urls:     urls,
		client:   client,
		parser:   gofeed.NewParser(),
		maxItems: maxItems,
		now:      time.Now,
	}
}

// Fetch downloads and parses one feed.
func (r *Reader) Fetch(ctx context.Context, url string) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed %s: status %d", url, resp.StatusCode)
	}

	parsed, err := r.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", url, err)
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		items = append(items, r.toItem(parsed.Title, it))
	}
	return items, nil
}

func (r *Reader) toItem(source string, it *gofeed.Item) Item {
	item := Item{
		GUID:   it.GUID,
		Title:  strings.TrimSpace(it.Title),
		Link:   it.Link,
		Source: source,
	}
	if item.GUID == "" {
		item.GUID = it.Link
	}
	switch {
	case it.PublishedParsed != nil:
		item.PubDate = *it.PublishedParsed
	case it.UpdatedParsed != nil:
		item.PubDate = *it.UpdatedParsed
	default:
		item.PubDate = r.now()
	}
	return item
}

// Latest merges every configured feed, newest first, de-duplicated by
// GUID and capped at the reader's limit. Feeds that fail are logged and
// skipped.
func (r *Reader) Latest(ctx context.Context) ([]Item, error) {
	seen := make(map[string]bool)
	var all []Item
	for _, url := range r.urls {
		items, err := r.Fetch(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("[feed.Reader] skipping %s: %v", url, err)
			continue
		}
		for _, it := range items {
			if it.Title == "" || seen[it.GUID] {
				continue
			}
			seen[it.GUID] = true
			all = append(all, it)
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].PubDate.After(all[j].PubDate) })
	if len(all) > r.maxItems {
		all = all[:r.maxItems]
	}
	return all, nil
}

// Headlines returns the titles of Latest.
func (r *Reader) Headlines(ctx context.Context) ([]string, error) {
	items, err := r.Latest(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out, nil
}
