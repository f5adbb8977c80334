package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/pkg/httputil"
	"github.com/quotable/leadintel/internal/service/lead"
)

// ListLeads returns stored leads.
//
//	GET /api/leads?status=qualified&decision_makers=true&page=1&limit=50
func (h *Handlers) ListLeads(w http.ResponseWriter, r *http.Request) {
	p := ParsePagination(r, defaultPageLimit, maxPageLimit)
	dm, _ := strconv.ParseBool(r.URL.Query().Get("decision_makers"))

	leads, err := h.leads.List(r.Context(), lead.ListFilter{
		Status:             domain.LeadStatus(r.URL.Query().Get("status")),
		DecisionMakersOnly: dm,
		Limit:              p.Limit,
		Offset:             p.Offset,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, ListResponse{Data: leads, Count: len(leads), Pagination: p})
}

// GetLead returns one lead.
//
//	GET /api/leads/{id}
func (h *Handlers) GetLead(w http.ResponseWriter, r *http.Request) {
	l, err := h.leads.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, l)
}

// GenerateLeads creates synthetic leads.
//
//	POST /api/leads/generate {"count": 5, "region": "Europe", "industry": "Insurance"}
func (h *Handlers) GenerateLeads(w http.ResponseWriter, r *http.Request) {
	var req lead.GenerateOptions
	if !httputil.DecodeOptional(w, r, &req) {
		return
	}
	leads, err := h.leads.Generate(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.Created(w, map[string]interface{}{"leads": leads, "count": len(leads)})
}

// ScrapeLeads runs a simulated crawl.
//
//	POST /api/leads/scrape {"source": "linkedin", "region": "Europe", "max_results": 10}
func (h *Handlers) ScrapeLeads(w http.ResponseWriter, r *http.Request) {
	var req lead.ScrapeOptions
	if !httputil.DecodeOptional(w, r, &req) {
		return
	}
	leads, err := h.leads.Scrape(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.Created(w, map[string]interface{}{"leads": leads, "count": len(leads)})
}

type evaluateRequest struct {
	LeadIDs []string      `json:"lead_ids,omitempty"`
	Leads   []domain.Lead `json:"leads,omitempty"`
}

type evaluateResponse struct {
	Results []domain.Evaluation `json:"results"`
	Summary lead.Summary        `json:"summary"`
}

// EvaluateLeads scores stored leads by id, or leads given inline.
//
//	POST /api/leads/evaluate {"lead_ids": ["lead-..."]}
func (h *Handlers) EvaluateLeads(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if len(req.LeadIDs) == 0 && len(req.Leads) == 0 {
		httputil.BadRequest(w, "lead_ids or leads is required")
		return
	}
	if len(req.LeadIDs) > 0 && len(req.Leads) > 0 {
		httputil.BadRequest(w, "use either lead_ids or leads, not both")
		return
	}

	var (
		results []domain.Evaluation
		sum     lead.Summary
		err     error
	)
	if len(req.LeadIDs) > 0 {
		results, sum, err = h.leads.EvaluateByID(r.Context(), req.LeadIDs)
	} else {
		results, sum, err = h.leads.Evaluate(r.Context(), req.Leads)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, evaluateResponse{Results: results, Summary: sum})
}

type statusRequest struct {
	Status domain.LeadStatus `json:"status"`
}

// UpdateLeadStatus sets a lead's funnel status.
//
//	PUT /api/leads/{id}/status {"status": "contacted"}
func (h *Handlers) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	l, err := h.leads.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, l)
}
