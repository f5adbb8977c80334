package llm

import (
	"context"
	"fmt"
	"strings"
)

// Tone is the register requested for generated emails.
type Tone string

const (
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
	ToneProfessional Tone = "professional"
)

// Recipient describes who a generated email is addressed to.
type Recipient struct {
	Name     string
	Title    string
	Company  string
	Location string
}

// EmailBrief is the campaign context for email generation.
type EmailBrief struct {
	Subject  string
	Region   string
	Industry string
	Tone     Tone
}

// LeadProfile is what the evaluator shows the model about a lead.
type LeadProfile struct {
	Name        string
	Title       string
	Company     string
	Industry    string
	Description string
}

// CampaignSnapshot and PerformanceSnapshot feed optimization prompts.
type CampaignSnapshot struct {
	Subject  string
	Content  string
	Region   string
	Industry string
}

type PerformanceSnapshot struct {
	OpenRate            float64
	ClickRate           float64
	ResponseRate        float64
	AverageOpenRate     float64
	AverageClickRate    float64
	AverageResponseRate float64
}

// Suggestions are returned by SuggestOptimizations.
type Suggestions struct {
	Suggestions         []string `json:"suggestions"`
	ExpectedImprovement float64  `json:"expected_improvement"`
}

// cannedSuggestions stand in for parsed model advice; the model is still
// called so failures surface to the caller.
var cannedSuggestions = []string{
	"Shorten the subject line to under 50 characters",
	"Add more personalization in the first paragraph",
	"Include industry-specific statistics to build credibility",
	"Make the call to action more specific and actionable",
	"Send emails on Tuesday or Wednesday morning for better open rates",
}

const (
	evaluateTemperature = 0.3
	cannedImprovement   = 15
)

// Copywriter runs the fixed marketing prompts against a Completer.
type Copywriter struct {
	completer Completer
	prompts   *Prompts
}

// NewCopywriter parses the prompt set and binds it to c.
func NewCopywriter(c Completer) (*Copywriter, error) {
	p, err := NewPrompts()
	if err != nil {
		return nil, err
	}
	return &Copywriter{completer: c, prompts: p}, nil
}

// Prompts exposes the parsed prompt set for other callers.
func (w *Copywriter) Prompts() *Prompts { return w.prompts }

// Completer returns the underlying completer.
func (w *Copywriter) Completer() Completer { return w.completer }

// GenerateEmail writes a personalized email body for r.
func (w *Copywriter) GenerateEmail(ctx context.Context, r Recipient, b EmailBrief) (string, error) {
	if b.Tone == "" {
		b.Tone = ToneProfessional
	}
	vars := map[string]interface{}{
		"name":     r.Name,
		"title":    r.Title,
		"company":  r.Company,
		"location": r.Location,
		"subject":  b.Subject,
		"region":   b.Region,
		"industry": b.Industry,
		"tone":     string(b.Tone),
	}
	msgs, err := w.messages(PromptEmailSystem, PromptEmailUser, vars)
	if err != nil {
		return "", err
	}
	out, err := w.completer.Complete(ctx, Request{Messages: msgs, Temperature: DefaultTemperature})
	if err != nil {
		return "", fmt.Errorf("generate email: %w", err)
	}
	body := strings.TrimSpace(out)
	if body == "" {
		return "", fmt.Errorf("generate email: %w", ErrEmptyResponse)
	}
	return body, nil
}

// EvaluateLead returns the model's free-text assessment of a lead.
func (w *Copywriter) EvaluateLead(ctx context.Context, p LeadProfile) (string, error) {
	vars := map[string]interface{}{
		"name":        p.Name,
		"title":       p.Title,
		"company":     p.Company,
		"industry":    p.Industry,
		"description": p.Description,
	}
	msgs, err := w.messages(PromptEvaluateSystem, PromptEvaluateUser, vars)
	if err != nil {
		return "", err
	}
	out, err := w.completer.Complete(ctx, Request{Messages: msgs, Temperature: evaluateTemperature})
	if err != nil {
		return "", fmt.Errorf("evaluate lead: %w", err)
	}
	return out, nil
}

// SuggestOptimizations asks the model for campaign advice. The returned
// list is the fixed suggestion set with a 15% expected improvement.
func (w *Copywriter) SuggestOptimizations(ctx context.Context, c CampaignSnapshot, p PerformanceSnapshot) (*Suggestions, error) {
	vars := map[string]interface{}{
		"subject":           c.Subject,
		"content":           c.Content,
		"region":            c.Region,
		"industry":          c.Industry,
		"open_rate":         p.OpenRate,
		"click_rate":        p.ClickRate,
		"response_rate":     p.ResponseRate,
		"avg_open_rate":     p.AverageOpenRate,
		"avg_click_rate":    p.AverageClickRate,
		"avg_response_rate": p.AverageResponseRate,
	}
	msgs, err := w.messages(PromptOptimizeSystem, PromptOptimizeUser, vars)
	if err != nil {
		return nil, err
	}
	if _, err := w.completer.Complete(ctx, Request{Messages: msgs, Temperature: DefaultTemperature}); err != nil {
		return nil, fmt.Errorf("suggest optimizations: %w", err)
	}
	out := make([]string, len(cannedSuggestions))
	copy(out, cannedSuggestions)
	return &Suggestions{Suggestions: out, ExpectedImprovement: cannedImprovement}, nil
}

func (w *Copywriter) messages(systemName, userName string, vars map[string]interface{}) ([]Message, error) {
	system, err := w.prompts.Render(systemName, vars)
	if err != nil {
		return nil, err
	}
	user, err := w.prompts.Render(userName, vars)
	if err != nil {
		return nil, err
	}
	return []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	}, nil
}
