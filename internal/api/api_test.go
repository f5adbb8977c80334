package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotable/leadintel/internal/analytics"
	"github.com/quotable/leadintel/internal/api"
	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/intelligence"
	"github.com/quotable/leadintel/internal/llm"
	"github.com/quotable/leadintel/internal/pkg/simulate"
	"github.com/quotable/leadintel/internal/repository/memory"
	"github.com/quotable/leadintel/internal/service/campaign"
	"github.com/quotable/leadintel/internal/service/lead"
	"github.com/quotable/leadintel/internal/service/sending"
	"github.com/quotable/leadintel/internal/storage"
	"github.com/quotable/leadintel/internal/tracking"
)

type fakeSender struct {
	mu   sync.Mutex
	msgs []*sending.Message
}

func (f *fakeSender) Send(_ context.Context, msg *sending.Message) (*sending.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
	return &sending.Result{MessageID: "msg-1", SentAt: time.Now()}, nil
}

// sweeper runs the optimizer over every campaign and caches the result.
type sweeper struct {
	campaigns *campaign.Service
	optimizer *analytics.Optimizer
	cache     *analytics.ReportCache
	runs      int
}

func (s *sweeper) RunOnce(ctx context.Context) (*domain.OptimizationReport, error) {
	s.runs++
	cs, err := s.campaigns.List(ctx, campaign.ListFilter{})
	if err != nil {
		return nil, err
	}
	report, err := s.optimizer.Run(ctx, cs)
	if err != nil {
		return nil, err
	}
	s.cache.Store(report)
	return report, nil
}

type fixture struct {
	handler  http.Handler
	handlers *api.Handlers
	sender   *fakeSender
	recorder *tracking.MemoryRecorder
	sweeper  *sweeper
	modelErr error
}

func intelligenceJSON(t *testing.T) string {
	t.Helper()
	b, err := json.Marshal(intelligence.DefaultReport())
	require.NoError(t, err)
	return "```json\n" + string(b) + "\n```"
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{sender: &fakeSender{}}

	reply := intelligenceJSON(t)
	completer := llm.CompleterFunc(func(ctx context.Context, _ llm.Request) (string, error) {
		if f.modelErr != nil {
			return "", f.modelErr
		}
		return reply, ctx.Err()
	})
	writer, err := llm.NewCopywriter(completer)
	require.NoError(t, err)

	rnd := simulate.New(7)
	gen := lead.NewGenerator(rnd)
	leads := lead.NewService(memory.NewLeadRepo(),
		lead.NewScraper(gen, rnd, lead.ScraperDelays{}),
		lead.NewEvaluator(writer, rnd, 0))

	campaigns := campaign.NewService(memory.NewSeededCampaignRepo(memory.NoLatency()), writer, f.sender,
		sending.Address{Name: "Quotable", Email: "outreach@quotable.test"})

	analyzer := analytics.NewAnalyzer(analytics.ExactRegion{}, simulate.NewSequence(0.5), analytics.Delays{})
	reports := analytics.NewReportCache()
	f.sweeper = &sweeper{campaigns: campaigns, optimizer: analytics.NewOptimizer(analyzer, 2), cache: reports}
	f.recorder = tracking.NewMemoryRecorder(0)

	intel := intelligence.NewService(intelligence.Config{
		Completer: completer,
		Prompts:   writer.Prompts(),
		Dashboard: analyzer,
		Archive:   storage.NewMemoryArchive(),
	})

	h := api.NewHandlers(api.Deps{
		Leads:        leads,
		Campaigns:    campaigns,
		Analyzer:     analyzer,
		Reports:      reports,
		Refresher:    f.sweeper,
		Intelligence: intel,
		Suggester:    writer,
		Recorder:     f.recorder,
	})
	f.handlers = h
	hc := api.NewHealthChecker(nil, nil, nil, "")
	f.handler = api.SetupRoutes(h, hc, tracking.NewHandler(f.recorder, trackingSigner).Routes(), []string{"http://localhost:5173"})
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, rec, &body)
	return body.Code
}

func TestHealthWithoutBackingStores(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status api.HealthStatus
	decodeBody(t, rec, &status)
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "not_configured", status.Checks["database"].Status)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/health/live", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/health/ready", nil).Code)
}

func TestReadinessFailsWhenDatabaseDown(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	hc := api.NewHealthChecker(db, rdb, nil, "")
	router := api.SetupRoutes(api.NewHandlers(api.Deps{}), hc, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Ready  bool                          `json:"ready"`
		Checks map[string]api.ComponentCheck `json:"checks"`
	}
	decodeBody(t, rec, &body)
	assert.False(t, body.Ready)
	assert.Equal(t, "down", body.Checks["database"].Status)
	assert.Equal(t, "up", body.Checks["redis"].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLeadRoutes(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/leads/generate", map[string]interface{}{"count": 3, "region": "Europe"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var generated struct {
		Leads []domain.Lead `json:"leads"`
		Count int           `json:"count"`
	}
	decodeBody(t, rec, &generated)
	require.Equal(t, 3, generated.Count)

	rec = f.do(t, http.MethodGet, "/api/leads?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Count      int `json:"count"`
		Pagination struct {
			Limit int `json:"limit"`
		} `json:"pagination"`
	}
	decodeBody(t, rec, &list)
	assert.Equal(t, 2, list.Count)
	assert.Equal(t, 2, list.Pagination.Limit)

	id := generated.Leads[0].ID
	rec = f.do(t, http.MethodGet, "/api/leads/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPut, "/api/leads/"+id+"/status", map[string]string{"status": "contacted"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated domain.Lead
	decodeBody(t, rec, &updated)
	assert.Equal(t, domain.LeadContacted, updated.Status)

	assert.Equal(t, http.StatusBadRequest,
		f.do(t, http.MethodPut, "/api/leads/"+id+"/status", map[string]string{"status": "won"}).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/api/leads/lead-missing", nil).Code)
	assert.Equal(t, http.StatusBadRequest,
		f.do(t, http.MethodPost, "/api/leads/generate", map[string]int{"count": 10000}).Code)
}

func TestScrapeRejectsUnknownSource(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/api/leads/scrape", map[string]string{"source": "myspace"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvaluateLeads(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/leads/evaluate", map[string]interface{}{
		"leads": []domain.Lead{{ID: "lead-1", Name: "Ana Ruiz", Title: "Chief Risk Officer", Industry: "Insurance"}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Results []domain.Evaluation `json:"results"`
		Summary lead.Summary        `json:"summary"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Results, 1)
	assert.True(t, body.Results[0].Evaluated)
	assert.True(t, body.Results[0].Lead.IsDecisionMaker)
	assert.Equal(t, domain.MatchHigh, body.Results[0].IndustryMatch)
	assert.Equal(t, 1, body.Summary.Evaluated)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/api/leads/evaluate", map[string]interface{}{}).Code)
	assert.Equal(t, http.StatusNotFound,
		f.do(t, http.MethodPost, "/api/leads/evaluate", map[string][]string{"lead_ids": {"lead-missing"}}).Code)
}

func TestCampaignLifecycle(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/campaigns", map[string]interface{}{
		"name":            "Nordics",
		"subject":         "Hello",
		"content":         "Dear {{name}}",
		"target_region":   "Europe",
		"target_industry": "Insurance",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var c domain.Campaign
	decodeBody(t, rec, &c)
	assert.Equal(t, domain.CampaignDraft, c.Status)
	base := "/api/campaigns/" + c.ID

	rec = f.do(t, http.MethodPost, base+"/launch", map[string]interface{}{
		"leads": []domain.Lead{{ID: "lead-1", Name: "Ana"}, {ID: "lead-2", Name: "Ben"}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeBody(t, rec, &c)
	assert.Equal(t, domain.CampaignActive, c.Status)
	assert.Equal(t, 2, c.LeadsCount)

	assert.Equal(t, http.StatusConflict, f.do(t, http.MethodPost, base+"/launch", nil).Code)
	assert.Equal(t, http.StatusConflict, f.do(t, http.MethodPost, base+"/resume", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, base+"/pause", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, base+"/resume", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, base+"/complete", nil).Code)

	rec = f.do(t, http.MethodPut, base, map[string]string{"subject": "Hello again"})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &c)
	assert.Equal(t, "Hello again", c.Subject)
	assert.Equal(t, domain.CampaignCompleted, c.Status)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, base, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, base, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, base, nil).Code)
}

func TestCreateCampaignValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/campaigns", map[string]string{"name": "No body", "subject": "Hi"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/campaigns", map[string]string{"subject": "Hi", "content": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/campaigns", map[string]string{"name": "x", "subject": "y", "bogus": "z"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCampaignGenerationFailure(t *testing.T) {
	f := newFixture(t)
	f.modelErr = &llm.APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}

	rec := f.do(t, http.MethodPost, "/api/campaigns", map[string]interface{}{
		"name":    "Generated",
		"subject": "Hi",
		"leads":   []domain.Lead{{Name: "Ana Ruiz"}},
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "content_generation_failed", errorCode(t, rec))
}

func TestListCampaigns(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/campaigns?status=paused", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Data []domain.Campaign `json:"data"`
	}
	decodeBody(t, rec, &list)
	require.NotEmpty(t, list.Data)
	for _, c := range list.Data {
		assert.Equal(t, domain.CampaignPaused, c.Status)
	}

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/api/campaigns?status=archived", nil).Code)
}

func TestListLeadsHugePage(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusCreated, f.do(t, http.MethodPost, "/api/leads/generate", map[string]int{"count": 3}).Code)

	rec := f.do(t, http.MethodGet, "/api/leads?page=9223372036854775807&limit=50", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Data       []domain.Lead          `json:"data"`
		Pagination api.PaginationParams `json:"pagination"`
	}
	decodeBody(t, rec, &list)
	assert.Empty(t, list.Data)
	assert.Equal(t, 100000, list.Pagination.Page)
}

func TestSendCampaign(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/campaigns/campaign-1/send", map[string]interface{}{
		"lead": domain.Lead{ID: "lead-9", Name: "Ana Ruiz", Company: "Guardian"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res domain.SendResult
	decodeBody(t, rec, &res)
	assert.Equal(t, "msg-1", res.MessageID)
	assert.Equal(t, "ana.ruiz@example.com", res.Recipient)
	require.Len(t, f.sender.msgs, 1)
	assert.Equal(t, "campaign-1", f.sender.msgs[0].CampaignID)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/api/campaigns/campaign-1/send", map[string]string{}).Code)
	assert.Equal(t, http.StatusNotFound,
		f.do(t, http.MethodPost, "/api/campaigns/campaign-1/send", map[string]string{"lead_id": "lead-missing"}).Code)
}

func TestCampaignPerformanceAndAnalysis(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/campaigns/campaign-1/performance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var perf domain.Performance
	decodeBody(t, rec, &perf)
	assert.Equal(t, 28.4, perf.OpenRate)

	rec = f.do(t, http.MethodGet, "/api/campaigns/campaign-1/analysis", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var analysis analytics.CampaignAnalysis
	decodeBody(t, rec, &analysis)
	require.NotNil(t, analysis.Performance)
	assert.Equal(t, 28.4, analysis.Performance.Current.OpenRate)
	require.NotNil(t, analysis.Suggestions)
	assert.GreaterOrEqual(t, analysis.Suggestions.ExpectedImprovement, float64(analytics.MinExpectedImprovement))

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/api/campaigns/nope/analysis", nil).Code)
}

func TestCampaignSuggestions(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/campaigns/campaign-2/suggestions", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var s llm.Suggestions
	decodeBody(t, rec, &s)
	assert.NotEmpty(t, s.Suggestions)

	f.modelErr = llm.ErrCircuitOpen
	rec = f.do(t, http.MethodPost, "/api/campaigns/campaign-2/suggestions", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

var trackingSigner = tracking.NewSigner([]byte("api-test-tracking-secret"))

func TestTrackingEventsReachCampaignCounts(t *testing.T) {
	f := newFixture(t)

	data := trackingSigner.Encode("campaign-1", "lead-1", "msg-1", "")
	rec := f.do(t, http.MethodGet, "/track/open/"+data, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/gif", rec.Header().Get("Content-Type"))

	click := trackingSigner.Encode("campaign-1", "lead-1", "msg-1", "https://quotable.test/demo")
	rec = f.do(t, http.MethodGet, "/track/click/"+click, nil)
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/campaigns/campaign-1/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var counts domain.TrackingCounts
	decodeBody(t, rec, &counts)
	assert.Equal(t, int64(1), counts.Opens)
	assert.Equal(t, int64(1), counts.Clicks)

	// Tracking never feeds back into the stored rates.
	rec = f.do(t, http.MethodGet, "/api/campaigns/campaign-1", nil)
	var c domain.Campaign
	decodeBody(t, rec, &c)
	assert.Equal(t, 28.4, c.OpenRate)

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/api/campaigns/nope/events", nil).Code)
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/analytics/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var d domain.DashboardAnalytics
	decodeBody(t, rec, &d)
	assert.NotZero(t, d.TotalLeads)
	assert.NotEmpty(t, d.ConversionTrend)
}

func TestOptimizations(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/optimizations", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var report domain.OptimizationReport
	decodeBody(t, rec, &report)
	require.NotEmpty(t, report.Recommendations)
	assert.Equal(t, len(report.Recommendations), report.RecommendationsCount)
	assert.Equal(t, 1, f.sweeper.runs)

	// A cached report is served without another sweep.
	f.do(t, http.MethodGet, "/api/optimizations", nil)
	assert.Equal(t, 1, f.sweeper.runs)

	id := report.Recommendations[0].ID
	rec = f.do(t, http.MethodPost, "/api/optimizations/"+id+"/apply", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var applied domain.Recommendation
	decodeBody(t, rec, &applied)
	assert.Equal(t, domain.RecommendationApplied, applied.Status)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/api/optimizations/"+id, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, "/api/optimizations/"+id, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodPost, "/api/optimizations/"+id+"/apply", nil).Code)

	rec = f.do(t, http.MethodGet, "/api/optimizations", nil)
	decodeBody(t, rec, &report)
	for _, r := range report.Recommendations {
		assert.NotEqual(t, id, r.ID)
	}

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/optimizations/refresh", nil).Code)
	assert.Equal(t, 2, f.sweeper.runs)
}

func TestRefreshOptimizationsAsync(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/optimizations/refresh?async=true", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	f.handlers.Wait()
	assert.Equal(t, 1, f.sweeper.runs)

	rec = f.do(t, http.MethodGet, "/api/optimizations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, f.sweeper.runs)
}

func TestOptimizationsFallBackToArchive(t *testing.T) {
	ctx := context.Background()
	archive := storage.NewMemoryArchive()
	archived := &domain.OptimizationReport{
		Recommendations: []domain.Recommendation{{
			ID: "campaign-2-rec-0", CampaignID: "campaign-2", Type: domain.IssueContent,
			Title: "Tighten subject lines", ExpectedImprovement: 12.5,
			Priority: domain.SeverityHigh, Status: domain.RecommendationPending,
		}},
		ProjectedImpact:   12.5,
		CampaignsAnalyzed: 3,
		GeneratedAt:       time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
	archived.Recount()
	_, err := storage.SaveReport(ctx, archive, storage.KindOptimization, archived.GeneratedAt, archived)
	require.NoError(t, err)

	refresher := &sweeper{}
	h := api.NewHandlers(api.Deps{Reports: analytics.NewReportCache(), Refresher: refresher, Archive: archive})
	router := api.SetupRoutes(h, api.NewHealthChecker(nil, nil, nil, ""), nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/optimizations", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got domain.OptimizationReport
	decodeBody(t, rec, &got)
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "campaign-2-rec-0", got.Recommendations[0].ID)
	assert.Equal(t, 1, got.HighPriorityCount)
	assert.Zero(t, refresher.runs)

	// The archived report is now cached, so recommendations can be applied.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/optimizations/campaign-2-rec-0/apply", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptimizationsWithoutRefresher(t *testing.T) {
	h := api.NewHandlers(api.Deps{Reports: analytics.NewReportCache()})
	router := api.SetupRoutes(h, api.NewHealthChecker(nil, nil, nil, ""), nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/optimizations", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/optimizations/refresh", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestIntelligence(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/intelligence", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Source string             `json:"source"`
		Report intelligence.Report `json:"report"`
		KPIs   intelligence.KPIs   `json:"kpis"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, intelligence.SourceDefault, body.Source)
	assert.NotEmpty(t, body.Report.Competitors)
	assert.NotZero(t, body.KPIs.TrendAlignment)

	rec = f.do(t, http.MethodPost, "/api/intelligence", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeBody(t, rec, &body)
	assert.Equal(t, intelligence.SourceGenerated, body.Source)

	rec = f.do(t, http.MethodGet, "/api/intelligence", nil)
	decodeBody(t, rec, &body)
	assert.Equal(t, intelligence.SourceGenerated, body.Source)
}

func TestIntelligenceProviderError(t *testing.T) {
	f := newFixture(t)
	f.modelErr = &llm.APIError{StatusCode: http.StatusTooManyRequests, Message: "slow down"}

	rec := f.do(t, http.MethodPost, "/api/intelligence", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "model_provider_error", errorCode(t, rec))
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/campaigns", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
