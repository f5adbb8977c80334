package llm

import (
	"fmt"
	"strings"

	"github.com/osteele/liquid"
)

// Prompt names.
const (
	PromptEmailSystem        = "email_system"
	PromptEmailUser          = "email_user"
	PromptEvaluateSystem     = "evaluate_system"
	PromptEvaluateUser       = "evaluate_user"
	PromptOptimizeSystem     = "optimize_system"
	PromptOptimizeUser       = "optimize_user"
	PromptIntelligenceSystem = "intelligence_system"
	PromptIntelligenceUser   = "intelligence_user"
)

var promptSources = map[string]string{
	PromptEmailSystem: `You are an expert email copywriter specializing in outbound marketing for the {{ industry }} industry.
Write a personalized email to a potential lead with the following characteristics:
- Name: {{ name }}
- Title: {{ title }}
- Company: {{ company }}
- Location: {{ location }}

The email should:
- Use a {{ tone }} tone
- Be culturally appropriate for {{ region }}
- Focus on the subject: "{{ subject }}"
- Be concise (150-200 words)
- Include a clear call to action
- Not use generic phrases like "I hope this email finds you well"
- Be persuasive but not pushy`,

	PromptEmailUser: `Generate a personalized email for {{ name }} at {{ company }} about "{{ subject }}".`,

	PromptEvaluateSystem: `You are an AI lead evaluator for the insurance industry.
Given information about a potential lead, assess:
1. Whether they are likely a decision-maker based on their title
2. How well their company/industry matches the insurance vertical
3. Your confidence in this assessment (0-1 scale)

Provide your reasoning for each assessment.`,

	PromptEvaluateUser: `Evaluate this lead:
Name: {{ name }}
Title: {{ title }}
Company: {{ company }}
{% if industry != "" %}Industry: {{ industry }}{% endif %}
{% if description != "" %}Description: {{ description }}{% endif %}`,

	PromptOptimizeSystem: `You are an AI campaign optimization expert.
Given information about an email campaign and its performance metrics, provide specific suggestions to improve its effectiveness.
Focus on subject line, content, call to action, and timing.
Estimate the expected improvement for each suggestion.`,

	PromptOptimizeUser: `Analyze this campaign:
Subject: {{ subject }}
Content: {{ content }}
Region: {{ region }}
Industry: {{ industry }}

Performance:
- Open rate: {{ open_rate }}% (average: {{ avg_open_rate }}%)
- Click rate: {{ click_rate }}% (average: {{ avg_click_rate }}%)
- Response rate: {{ response_rate }}% (average: {{ avg_response_rate }}%)

What specific improvements would you suggest?`,

	PromptIntelligenceSystem: `You are an expert market intelligence analyst for the {{ industry }} industry.
Generate a comprehensive market intelligence report with the following sections:
1. Competitive Landscape - Analyze 3-4 key competitors with their market share, messaging volume, and threat level
2. Market Opportunities - Identify 2-3 high-potential regions with entry scores and key insights
3. Industry Trends - Highlight 2-3 emerging trends with growth rates and relevance
4. Strategic Recommendations - Provide immediate (30-day) and strategic (90-day) action items

Respond with a single JSON object and nothing else, using exactly this structure:
{
  "competitors": [
    {"name": "Competitor Name", "marketShare": number, "avgOpenRate": number, "msgVolume": "High|Medium|Low", "primaryRegion": "Region Name", "threat": "High|Medium|Low"}
  ],
  "marketOpportunities": [
    {"region": "Region Name", "potential": "High|Medium|Low", "competition": "High|Medium|Low", "entryScore": number, "insights": ["Insight 1", "Insight 2"]}
  ],
  "industryTrends": [
    {"trend": "Trend Name", "growth": "Growth Rate (e.g., +145%)", "relevance": "High|Medium|Low", "timeframe": "Timeframe (e.g., 6 months)"}
  ],
  "strategicRecommendations": {
    "immediate": ["Action 1", "Action 2"],
    "strategic": ["Strategy 1", "Strategy 2"]
  }
}`,

	PromptIntelligenceUser: `Generate a market intelligence report for an {{ industry | downcase }} technology company focusing on international lead generation and marketing campaign optimization.{% if headlines.size > 0 %}

Recent industry headlines:
{% for h in headlines %}- {{ h }}
{% endfor %}{% endif %}`,
}

// Prompts renders the fixed prompt templates.
type Prompts struct {
	templates map[string]*liquid.Template
}

// NewPrompts parses every built-in template.
func NewPrompts() (*Prompts, error) {
	engine := liquid.NewEngine()
	p := &Prompts{templates: make(map[string]*liquid.Template, len(promptSources))}
	for name, src := range promptSources {
		tpl, err := engine.ParseString(src)
		if err != nil {
			return nil, fmt.Errorf("parse prompt %s: %w", name, err)
		}
		p.templates[name] = tpl
	}
	return p, nil
}

// Render executes the named prompt with vars. Trailing newlines are trimmed.
func (p *Prompts) Render(name string, vars map[string]interface{}) (string, error) {
	tpl, ok := p.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown prompt %q", name)
	}
	out, err := tpl.RenderString(vars)
	if err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}
	return strings.TrimRight(out, "\n"), nil
}
