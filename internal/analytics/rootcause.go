package analytics

import (
	"math"

	"github.com/quotable/leadintel/internal/domain"
)

var issueDescriptions = map[domain.IssueCategory]string{
	domain.IssueContent:         "Email content is not engaging enough to drive clicks",
	domain.IssueTiming:          "Email sending time may not be optimal for the target audience",
	domain.IssueTargeting:       "Target audience may not be well-aligned with the campaign message",
	domain.IssuePersonalization: "Email personalization could be improved with more specific details",
}

var recommendationPool = map[domain.IssueCategory][]string{
	domain.IssueContent: {
		"Improve email content with more compelling value propositions",
		"Add social proof or case studies to build credibility",
		"Make the call to action more specific and actionable",
	},
	domain.IssueTiming: {
		"Test different sending times to find the optimal time for your audience",
		"Consider the time zone differences for international campaigns",
		"Analyze when your audience is most active and schedule accordingly",
	},
	domain.IssueTargeting: {
		"Refine your target audience to focus on more qualified leads",
		"Segment your audience based on industry, role, or company size",
		"Tailor your message to address specific pain points of your audience",
	},
	domain.IssuePersonalization: {
		"Use more dynamic fields to personalize the email content",
		"Reference specific details about the recipient's company or industry",
		"Personalize the subject line to increase open rates",
	},
}

// personalizationImpact is fixed regardless of how many tokens remain.
const personalizationImpact = 2.5

// BenchmarkFor returns the regional benchmark for region, falling back to
// the industry benchmark.
func BenchmarkFor(b domain.Benchmarks, region string) domain.Metrics {
	if m, ok := b.Regional[region]; ok {
		return m
	}
	return b.Industry
}

// FindIssues compares current rates against the benchmark and returns the
// issues in content, timing, targeting, personalization order.
func FindIssues(c *domain.Campaign, pa *domain.PerformanceAnalysis) []domain.Issue {
	bench := BenchmarkFor(pa.Benchmarks, c.TargetRegion)
	openDiff := pa.Current.OpenRate - bench.OpenRate
	clickDiff := pa.Current.ClickRate - bench.ClickRate
	responseDiff := pa.Current.ResponseRate - bench.ResponseRate

	issues := []domain.Issue{}
	if clickDiff < 0 {
		issues = append(issues, newIssue(domain.IssueContent,
			severity(clickDiff < -3, domain.SeverityMedium), math.Abs(clickDiff)*2))
	}
	if openDiff < 0 {
		issues = append(issues, newIssue(domain.IssueTiming,
			severity(openDiff < -5, domain.SeverityMedium), math.Abs(openDiff)*1.5))
	}
	if responseDiff < 0 {
		issues = append(issues, newIssue(domain.IssueTargeting,
			severity(responseDiff < -2, domain.SeverityLow), math.Abs(responseDiff)*3))
	}
	if c.HasUnrenderedTokens() {
		issues = append(issues, newIssue(domain.IssuePersonalization, domain.SeverityMedium, personalizationImpact))
	}
	return issues
}

func severity(high bool, otherwise domain.Severity) domain.Severity {
	if high {
		return domain.SeverityHigh
	}
	return otherwise
}

func newIssue(cat domain.IssueCategory, sev domain.Severity, impact float64) domain.Issue {
	return domain.Issue{
		Category:    cat,
		Severity:    sev,
		Description: issueDescriptions[cat],
		Impact:      impact,
	}
}

// RecommendationsFor concatenates the pools of the categories present,
// in issue order.
func RecommendationsFor(issues []domain.Issue) []string {
	out := []string{}
	seen := map[domain.IssueCategory]bool{}
	for _, is := range issues {
		if seen[is.Category] {
			continue
		}
		seen[is.Category] = true
		out = append(out, recommendationPool[is.Category]...)
	}
	return out
}
