package lead

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/llm"
	"github.com/quotable/leadintel/internal/pkg/simulate"
)

// qualifiedThreshold is the confidence above which a lead is qualified.
const qualifiedThreshold = 0.7

// Assessor asks a model for a free-text lead assessment.
type Assessor interface {
	EvaluateLead(ctx context.Context, p llm.LeadProfile) (string, error)
}

// Summary aggregates one evaluation batch.
type Summary struct {
	Total         int `json:"total"`
	Evaluated     int `json:"evaluated"`
	PassedThrough int `json:"passed_through"`
}

// Evaluator scores leads one at a time with a fixed pause before each.
type Evaluator struct {
	assessor Assessor
	rnd      simulate.Source
	delay    time.Duration
}

// NewEvaluator creates an evaluator that waits delay before each lead.
func NewEvaluator(a Assessor, rnd simulate.Source, delay time.Duration) *Evaluator {
	return &Evaluator{assessor: a, rnd: rnd, delay: delay}
}

// Evaluate processes leads sequentially. When the model call fails the lead
// is returned unchanged with Evaluated=false; nothing is retried or dropped.
// The model's text is kept as reasoning only: decision-maker and confidence
// come from the title heuristic used at generation time.
//
// A cancelled context stops the batch and returns what was finished.
func (e *Evaluator) Evaluate(ctx context.Context, leads []domain.Lead) ([]domain.Evaluation, Summary, error) {
	sum := Summary{Total: len(leads)}
	out := make([]domain.Evaluation, 0, len(leads))

	for _, l := range leads {
		if err := simulate.Sleep(ctx, e.delay); err != nil {
			return out, sum, err
		}

		reasoning, err := e.assessor.EvaluateLead(ctx, llm.LeadProfile{
			Name:     l.Name,
			Title:    l.Title,
			Company:  l.Company,
			Industry: l.Industry,
		})
		if err != nil {
			if ctx.Err() != nil {
				return out, sum, ctx.Err()
			}
			log.Printf("[lead.Evaluator] lead %s passed through: %v", l.ID, err)
			evaluatedTotal.WithLabelValues("passed_through").Inc()
			sum.PassedThrough++
			out = append(out, domain.Evaluation{Lead: l, Error: err.Error()})
			continue
		}

		scored := l
		scored.IsDecisionMaker = IsDecisionMaker(l.Title)
		scored.ConfidenceScore = Confidence(scored.IsDecisionMaker, e.rnd.Float64())
		if scored.ConfidenceScore > qualifiedThreshold {
			scored.Status = domain.LeadQualified
		} else {
			scored.Status = domain.LeadNew
		}

		evaluatedTotal.WithLabelValues("evaluated").Inc()
		sum.Evaluated++
		out = append(out, domain.Evaluation{
			Lead:          scored,
			IndustryMatch: industryMatch(l.Industry),
			Reasoning:     reasoning,
			Evaluated:     true,
		})
	}

	log.Printf("[lead.Evaluator] evaluated %d/%d leads", sum.Evaluated, sum.Total)
	return out, sum, nil
}

func industryMatch(industry string) domain.IndustryMatch {
	if strings.Contains(strings.ToLower(industry), "insurance") {
		return domain.MatchHigh
	}
	return domain.MatchMedium
}
