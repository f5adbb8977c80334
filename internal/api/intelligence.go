package api

import (
	"net/http"

	"github.com/quotable/leadintel/internal/intelligence"
	"github.com/quotable/leadintel/internal/pkg/httputil"
)

type intelligenceResponse struct {
	*intelligence.Snapshot
	KPIs *intelligence.KPIs `json:"kpis"`
}

// Intelligence returns the latest market report with its KPIs.
//
//	GET /api/intelligence
func (h *Handlers) Intelligence(w http.ResponseWriter, r *http.Request) {
	snap, err := h.intelligence.Latest(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeIntelligence(w, r, snap)
}

// GenerateIntelligence asks the model for a fresh report.
//
//	POST /api/intelligence
func (h *Handlers) GenerateIntelligence(w http.ResponseWriter, r *http.Request) {
	snap, err := h.intelligence.Generate(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeIntelligence(w, r, snap)
}

func (h *Handlers) writeIntelligence(w http.ResponseWriter, r *http.Request, snap *intelligence.Snapshot) {
	kpis, err := h.intelligence.KPIs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, intelligenceResponse{Snapshot: snap, KPIs: kpis})
}
