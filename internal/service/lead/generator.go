package lead

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/pkg/simulate"
)

// DefaultIndustry is used when no industry is requested.
const DefaultIndustry = "Insurance"

// decisionMakerKeywords are matched case-sensitively against titles.
var decisionMakerKeywords = []string{"Chief", "VP", "Director", "Head", "Manager"}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// IsDecisionMaker reports whether title contains a seniority keyword.
func IsDecisionMaker(title string) bool {
	for _, kw := range decisionMakerKeywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// Confidence maps a uniform draw r in [0,1) onto [0.7,1.0) for decision
// makers and [0.3,0.7) otherwise.
func Confidence(decisionMaker bool, r float64) float64 {
	if decisionMaker {
		return 0.7 + r*0.3
	}
	return 0.3 + r*0.4
}

// Generator produces synthetic leads. It holds no mutable state beyond its
// random source.
type Generator struct {
	rnd simulate.Source
	now func() time.Time
}

// NewGenerator creates a generator drawing from rnd.
func NewGenerator(rnd simulate.Source) *Generator {
	return &Generator{rnd: rnd, now: time.Now}
}

// Generate returns one lead. An empty industry defaults to Insurance; a
// region selects the first location containing it, else a random one.
func (g *Generator) Generate(region, industry string) domain.Lead {
	if industry == "" {
		industry = DefaultIndustry
	}

	first := g.pick(firstNames)
	last := g.pick(lastNames)
	title := g.pick(titles)
	company := g.pick(companies)
	location := g.location(region)

	domainPart := nonAlnum.ReplaceAllString(strings.ToLower(company), "") + ".com"
	lf, ll := strings.ToLower(first), strings.ToLower(last)

	dm := IsDecisionMaker(title)
	return domain.Lead{
		ID:              "lead-" + uuid.NewString(),
		Name:            first + " " + last,
		Title:           title,
		Company:         company,
		Location:        location,
		Email:           fmt.Sprintf("%s.%s@%s", lf, ll, domainPart),
		LinkedInURL:     fmt.Sprintf("https://linkedin.com/in/%s-%s-%d", lf, ll, g.rnd.Intn(10000)),
		Industry:        industry,
		ConfidenceScore: Confidence(dm, g.rnd.Float64()),
		IsDecisionMaker: dm,
		Status:          domain.LeadNew,
		CreatedAt:       g.now().UTC(),
	}
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rnd.Intn(len(pool))]
}

func (g *Generator) location(region string) string {
	if region != "" {
		for _, loc := range locations {
			if strings.Contains(loc, region) {
				return loc
			}
		}
	}
	return g.pick(locations)
}
