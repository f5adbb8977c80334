package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotable/leadintel/internal/app"
	"github.com/quotable/leadintel/internal/config"
	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/tracking"
)

const testTrackingSecret = "cli-test-tracking-secret"

func testLoader(t *testing.T) appLoader {
	t.Helper()
	return func(ctx context.Context) (*app.App, error) {
		cfg := config.Default()
		cfg.Tracking.Secret = testTrackingSecret
		cfg.OpenAI.APIKey = "sk-test"
		cfg.Email.User = "outreach@quotable.test"
		cfg.Simulation.DisableLatency = true
		cfg.Simulation.Seed = 3
		return app.New(ctx, cfg)
	}
}

func run(t *testing.T, load appLoader, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(load)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLeadsGenerate(t *testing.T) {
	out, err := run(t, testLoader(t), "leads", "generate", "-n", "3", "--region", "Europe", "--json")
	require.NoError(t, err)

	var leads []domain.Lead
	require.NoError(t, json.Unmarshal([]byte(out), &leads))
	assert.Len(t, leads, 3)
	for _, l := range leads {
		assert.NotEmpty(t, l.ID)
		assert.Equal(t, domain.LeadNew, l.Status)
	}
}

func TestLeadsGenerateTable(t *testing.T) {
	out, err := run(t, testLoader(t), "leads", "generate", "-n", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
}

func TestLeadsGenerateRejectsCount(t *testing.T) {
	_, err := run(t, testLoader(t), "leads", "generate", "-n", "5000")
	require.Error(t, err)
}

func TestCampaignsList(t *testing.T) {
	out, err := run(t, testLoader(t), "campaigns", "list", "--status", "active")
	require.NoError(t, err)
	assert.Contains(t, out, "European Insurance Expansion")
	assert.NotContains(t, out, "paused")

	_, err = run(t, testLoader(t), "campaigns", "list", "--status", "archived")
	require.Error(t, err)
}

func TestOptimize(t *testing.T) {
	out, err := run(t, testLoader(t), "optimize", "--json")
	require.NoError(t, err)

	var report domain.OptimizationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 3, report.CampaignsAnalyzed)
	assert.Equal(t, len(report.Recommendations), report.RecommendationsCount)

	out, err = run(t, testLoader(t), "optimize")
	require.NoError(t, err)
	assert.Contains(t, out, "recommendations")
	assert.Contains(t, out, "PRIORITY")
}

func TestLoaderErrorSurfaces(t *testing.T) {
	failing := func(context.Context) (*app.App, error) { return nil, errors.New("no config") }
	_, err := run(t, failing, "campaigns", "list")
	assert.EqualError(t, err, "no config")
}

func TestTrackLinks(t *testing.T) {
	out, err := run(t, testLoader(t), "track-links", "campaign-1", "lead-1", "msg-1",
		"https://quotable.test/demo", "--base-url", "https://api.quotable.test/")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	click := strings.TrimSpace(strings.TrimPrefix(lines[1], "click:"))
	require.True(t, strings.HasPrefix(click, "https://api.quotable.test/track/click/"))

	signer := tracking.NewSigner([]byte(testTrackingSecret))
	c, l, m, target, err := signer.Decode(strings.TrimPrefix(click, "https://api.quotable.test/track/click/"))
	require.NoError(t, err)
	assert.Equal(t, []string{"campaign-1", "lead-1", "msg-1", "https://quotable.test/demo"}, []string{c, l, m, target})

	_, _, _, _, err = tracking.NewSigner([]byte("some-other-secret-value")).Decode(strings.TrimPrefix(click, "https://api.quotable.test/track/click/"))
	assert.ErrorIs(t, err, tracking.ErrBadSignature)

	_, err = run(t, testLoader(t), "track-links", "campaign-1")
	assert.Error(t, err)
}

func TestTrackLinksDefaultBaseURL(t *testing.T) {
	out, err := run(t, testLoader(t), "track-links", "campaign-1", "lead-1", "msg-1")
	require.NoError(t, err)
	assert.Contains(t, out, "open:  http://localhost:8080/track/open/")
}
