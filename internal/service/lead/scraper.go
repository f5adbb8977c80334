package lead

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/pkg/simulate"
)

// MaxScrapeResults bounds a single scrape request.
const MaxScrapeResults = 100

// ScrapeOptions describe a simulated crawl.
type ScrapeOptions struct {
	Source     domain.LeadSource `json:"source"`
	Region     string            `json:"region"`
	Industry   string            `json:"industry"`
	Keywords   []string          `json:"keywords,omitempty"`
	MaxResults int               `json:"max_results,omitempty"`
}

// Validate normalises defaults and rejects unusable options.
func (o *ScrapeOptions) Validate() error {
	if o.Source == "" {
		o.Source = domain.SourceLinkedIn
	}
	if !o.Source.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSource, o.Source)
	}
	if o.MaxResults < 0 || o.MaxResults > MaxScrapeResults {
		return fmt.Errorf("%w: max_results must be between 0 and %d", ErrInvalidOptions, MaxScrapeResults)
	}
	if o.Industry == "" {
		o.Industry = DefaultIndustry
	}
	return nil
}

// ScraperDelays are the artificial latencies of a crawl.
type ScraperDelays struct {
	Crawl   time.Duration
	PerLead time.Duration
}

// DefaultScraperDelays mirror a slow remote crawl.
func DefaultScraperDelays() ScraperDelays {
	return ScraperDelays{Crawl: 2 * time.Second, PerLead: 200 * time.Millisecond}
}

// Scraper simulates collecting leads from a public source.
type Scraper struct {
	gen    *Generator
	rnd    simulate.Source
	delays ScraperDelays
}

// NewScraper creates a scraper over gen.
func NewScraper(gen *Generator, rnd simulate.Source, delays ScraperDelays) *Scraper {
	return &Scraper{gen: gen, rnd: rnd, delays: delays}
}

// Scrape returns MaxResults leads, or 5 to 14 when MaxResults is zero.
func (s *Scraper) Scrape(ctx context.Context, opts ScrapeOptions) ([]domain.Lead, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log.Printf("[lead.Scraper] scraping %s for %q in %s", opts.Source, opts.Region, opts.Industry)

	if err := simulate.Sleep(ctx, s.delays.Crawl); err != nil {
		return nil, err
	}

	n := opts.MaxResults
	if n == 0 {
		n = s.rnd.Intn(10) + 5
	}

	leads := make([]domain.Lead, 0, n)
	for i := 0; i < n; i++ {
		leads = append(leads, s.gen.Generate(opts.Region, opts.Industry))
		if err := simulate.Sleep(ctx, s.delays.PerLead); err != nil {
			return nil, err
		}
	}

	scrapedTotal.WithLabelValues(string(opts.Source)).Add(float64(len(leads)))
	log.Printf("[lead.Scraper] scraped %d leads", len(leads))
	return leads, nil
}
