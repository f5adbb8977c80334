package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quotable/leadintel/internal/analytics"
	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/llm"
	"github.com/quotable/leadintel/internal/pkg/httputil"
	"github.com/quotable/leadintel/internal/service/campaign"
)

// ListCampaigns returns campaigns, newest first.
//
//	GET /api/campaigns?status=active&page=1&limit=50
func (h *Handlers) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	p := ParsePagination(r, defaultPageLimit, maxPageLimit)
	cs, err := h.campaigns.List(r.Context(), campaign.ListFilter{
		Status: domain.CampaignStatus(r.URL.Query().Get("status")),
		Limit:  p.Limit,
		Offset: p.Offset,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, ListResponse{Data: cs, Count: len(cs), Pagination: p})
}

// GetCampaign returns one campaign.
//
//	GET /api/campaigns/{id}
func (h *Handlers) GetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, c)
}

// CreateCampaign stores a new draft. Without content the body is generated
// for the first lead.
//
//	POST /api/campaigns
func (h *Handlers) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaign.CreateInput
	if !httputil.Decode(w, r, &req) {
		return
	}
	c, err := h.campaigns.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.Created(w, c)
}

// UpdateCampaign merges the given fields.
//
//	PUT /api/campaigns/{id}
func (h *Handlers) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaign.UpdateFields
	if !httputil.Decode(w, r, &req) {
		return
	}
	c, err := h.campaigns.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, c)
}

// DeleteCampaign removes a campaign.
//
//	DELETE /api/campaigns/{id}
func (h *Handlers) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	httputil.NoContent(w)
}

type launchRequest struct {
	LeadIDs []string      `json:"lead_ids,omitempty"`
	Leads   []domain.Lead `json:"leads,omitempty"`
}

// LaunchCampaign activates a draft for the given leads.
//
//	POST /api/campaigns/{id}/launch {"lead_ids": [...]}
func (h *Handlers) LaunchCampaign(w http.ResponseWriter, r *http.Request) {
	var req launchRequest
	if !httputil.DecodeOptional(w, r, &req) {
		return
	}
	leads := req.Leads
	for _, id := range req.LeadIDs {
		l, err := h.leads.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		leads = append(leads, *l)
	}

	c, err := h.campaigns.Launch(r.Context(), chi.URLParam(r, "id"), leads)
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, c)
}

// PauseCampaign handles POST /api/campaigns/{id}/pause.
func (h *Handlers) PauseCampaign(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.campaigns.Pause)
}

// ResumeCampaign handles POST /api/campaigns/{id}/resume.
func (h *Handlers) ResumeCampaign(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.campaigns.Resume)
}

// CompleteCampaign handles POST /api/campaigns/{id}/complete.
func (h *Handlers) CompleteCampaign(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.campaigns.Complete)
}

func (h *Handlers) lifecycle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id string) (*domain.Campaign, error)) {
	c, err := op(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, c)
}

type sendRequest struct {
	LeadID string       `json:"lead_id,omitempty"`
	Lead   *domain.Lead `json:"lead,omitempty"`
}

// SendCampaign sends the personalised campaign to one lead.
//
//	POST /api/campaigns/{id}/send {"lead_id": "lead-..."}
func (h *Handlers) SendCampaign(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	var target domain.Lead
	switch {
	case req.Lead != nil:
		target = *req.Lead
	case req.LeadID != "":
		l, err := h.leads.Get(r.Context(), req.LeadID)
		if err != nil {
			writeError(w, err)
			return
		}
		target = *l
	default:
		httputil.BadRequest(w, "lead_id or lead is required")
		return
	}

	res, err := h.campaigns.SendToLead(r.Context(), chi.URLParam(r, "id"), target)
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, res)
}

// CampaignPerformance returns the stored rates.
//
//	GET /api/campaigns/{id}/performance
func (h *Handlers) CampaignPerformance(w http.ResponseWriter, r *http.Request) {
	p, err := h.campaigns.Performance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, p)
}

// CampaignAnalysis runs the full analysis pipeline for one campaign.
//
//	GET /api/campaigns/{id}/analysis
func (h *Handlers) CampaignAnalysis(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := h.analyzer.Analyze(r.Context(), c)
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, res)
}

// CampaignSuggestions asks the model for advice on a campaign, comparing
// its rates with the benchmark for its region.
//
//	POST /api/campaigns/{id}/suggestions
func (h *Handlers) CampaignSuggestions(w http.ResponseWriter, r *http.Request) {
	if h.suggester == nil {
		httputil.ServiceUnavailable(w, "suggestions are not configured")
		return
	}
	c, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	bench := analytics.BenchmarkFor(analytics.Benchmarks(), c.TargetRegion)
	s, err := h.suggester.SuggestOptimizations(r.Context(),
		llm.CampaignSnapshot{
			Subject:  c.Subject,
			Content:  c.Content,
			Region:   c.TargetRegion,
			Industry: c.TargetIndustry,
		},
		llm.PerformanceSnapshot{
			OpenRate:            c.OpenRate,
			ClickRate:           c.ClickRate,
			ResponseRate:        c.ResponseRate,
			AverageOpenRate:     bench.OpenRate,
			AverageClickRate:    bench.ClickRate,
			AverageResponseRate: bench.ResponseRate,
		})
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, s)
}

// CampaignEvents reports recorded opens and clicks.
//
//	GET /api/campaigns/{id}/events
func (h *Handlers) CampaignEvents(w http.ResponseWriter, r *http.Request) {
	if h.recorder == nil {
		httputil.ServiceUnavailable(w, "tracking is not configured")
		return
	}
	c, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	counts, err := h.recorder.Counts(r.Context(), c.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, counts)
}
