package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCompleter struct {
	requests []Request
	reply    string
	err      error
}

func (r *recordingCompleter) Complete(_ context.Context, req Request) (string, error) {
	r.requests = append(r.requests, req)
	return r.reply, r.err
}

func TestGenerateEmail(t *testing.T) {
	rc := &recordingCompleter{reply: "  Dear Sarah, ...  "}
	w, err := NewCopywriter(rc)
	require.NoError(t, err)

	body, err := w.GenerateEmail(context.Background(),
		Recipient{Name: "Sarah Johnson", Title: "Chief Risk Officer", Company: "Global Insurance Co", Location: "London, UK"},
		EmailBrief{Subject: "Transform your risk management strategy", Region: "Europe", Industry: "Insurance"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Dear Sarah, ...", body)

	require.Len(t, rc.requests, 1)
	req := rc.requests[0]
	assert.Equal(t, DefaultTemperature, req.Temperature)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, RoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "outbound marketing for the Insurance industry")
	assert.Contains(t, req.Messages[0].Content, "Use a professional tone")
	assert.Contains(t, req.Messages[0].Content, "Be culturally appropriate for Europe")
	assert.Equal(t, `Generate a personalized email for Sarah Johnson at Global Insurance Co about "Transform your risk management strategy".`, req.Messages[1].Content)
}

func TestGenerateEmailEmptyReply(t *testing.T) {
	w, err := NewCopywriter(&recordingCompleter{reply: "\n"})
	require.NoError(t, err)
	_, err = w.GenerateEmail(context.Background(), Recipient{Name: "x"}, EmailBrief{})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestEvaluateLeadPrompt(t *testing.T) {
	rc := &recordingCompleter{reply: "Likely a decision-maker."}
	w, err := NewCopywriter(rc)
	require.NoError(t, err)

	out, err := w.EvaluateLead(context.Background(), LeadProfile{Name: "Michael Chen", Title: "VP of Underwriting", Company: "Pacific Risk Partners"})
	require.NoError(t, err)
	assert.Equal(t, "Likely a decision-maker.", out)

	req := rc.requests[0]
	assert.Equal(t, 0.3, req.Temperature)
	user := req.Messages[1].Content
	assert.True(t, strings.HasPrefix(user, "Evaluate this lead:\nName: Michael Chen\nTitle: VP of Underwriting\nCompany: Pacific Risk Partners"))
	assert.NotContains(t, user, "Industry:")
}

func TestSuggestOptimizations(t *testing.T) {
	rc := &recordingCompleter{reply: "free text"}
	w, err := NewCopywriter(rc)
	require.NoError(t, err)

	s, err := w.SuggestOptimizations(context.Background(),
		CampaignSnapshot{Subject: "S", Content: "C", Region: "Europe", Industry: "Insurance"},
		PerformanceSnapshot{OpenRate: 28.4, AverageOpenRate: 23.2},
	)
	require.NoError(t, err)
	assert.Len(t, s.Suggestions, 5)
	assert.Equal(t, 15.0, s.ExpectedImprovement)
	assert.Contains(t, rc.requests[0].Messages[1].Content, "Open rate: 28.4% (average: 23.2%)")

	boom := errors.New("down")
	w, _ = NewCopywriter(&recordingCompleter{err: boom})
	_, err = w.SuggestOptimizations(context.Background(), CampaignSnapshot{}, PerformanceSnapshot{})
	assert.ErrorIs(t, err, boom)
}

func TestPromptsIntelligenceHeadlines(t *testing.T) {
	p, err := NewPrompts()
	require.NoError(t, err)

	out, err := p.Render(PromptIntelligenceUser, map[string]interface{}{
		"industry":  "Insurance",
		"headlines": []string{"Insurers adopt AI underwriting"},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "for an insurance technology company")
	assert.Contains(t, out, "- Insurers adopt AI underwriting")

	out, err = p.Render(PromptIntelligenceUser, map[string]interface{}{
		"industry":  "Insurance",
		"headlines": []string{},
	})
	require.NoError(t, err)
	assert.NotContains(t, out, "Recent industry headlines")

	_, err = p.Render("missing", nil)
	assert.Error(t, err)
}
