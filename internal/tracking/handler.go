package tracking

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// 1x1 transparent GIF
var pixelGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00,
	0x80, 0x00, 0x00, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x2c,
	0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x02,
	0x02, 0x44, 0x01, 0x00, 0x3b,
}

// recordTimeout bounds how long a hit may spend recording.
const recordTimeout = 5 * time.Second

// Handler serves the open pixel and click redirect for tokens signed by
// signer.
type Handler struct {
	recorder Recorder
	signer   Signer
	now      func() time.Time
}

func NewHandler(rec Recorder, signer Signer) *Handler {
	return &Handler{recorder: rec, signer: signer, now: time.Now}
}

// Routes mounts the pixel and redirect endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/open/{data}", h.HandleOpen)
	r.Get("/click/{data}", h.HandleClick)
	return r
}

// HandleOpen always serves the pixel; unverifiable tokens are not recorded.
func (h *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	campaignID, leadID, messageID, _, err := h.signer.Decode(chi.URLParam(r, "data"))
	if err != nil {
		eventsTotal.WithLabelValues(string(EventOpen), outcome(err)).Inc()
		h.servePixel(w)
		return
	}

	h.record(r, Event{
		Type:       EventOpen,
		CampaignID: campaignID,
		LeadID:     leadID,
		MessageID:  messageID,
	})
	h.servePixel(w)
}

// HandleClick records the click and redirects to the original link. The
// token must carry our signature, and only absolute http(s) targets are
// followed.
func (h *Handler) HandleClick(w http.ResponseWriter, r *http.Request) {
	campaignID, leadID, messageID, target, err := h.signer.Decode(chi.URLParam(r, "data"))
	if err == nil && !validTarget(target) {
		err = ErrMalformed
	}
	if err != nil {
		eventsTotal.WithLabelValues(string(EventClick), outcome(err)).Inc()
		http.Error(w, "bad link", http.StatusBadRequest)
		return
	}

	h.record(r, Event{
		Type:       EventClick,
		CampaignID: campaignID,
		LeadID:     leadID,
		MessageID:  messageID,
		URL:        target,
	})
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

// record never fails the response; the recipient still gets the pixel or
// the redirect.
func (h *Handler) record(r *http.Request, e Event) {
	e.IPAddress = realIP(r)
	e.UserAgent = r.UserAgent()
	e.Timestamp = h.now().UTC()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), recordTimeout)
	defer cancel()
	if err := h.recorder.Record(ctx, e); err != nil {
		eventsTotal.WithLabelValues(string(e.Type), "error").Inc()
		log.Printf("[tracking.Handler] record %s campaign=%s: %v", e.Type, e.CampaignID, err)
		return
	}
	eventsTotal.WithLabelValues(string(e.Type), "ok").Inc()
	log.Printf("[tracking.Handler] %s campaign=%s message=%s", e.Type, e.CampaignID, e.MessageID)
}

func outcome(err error) string {
	if errors.Is(err, ErrBadSignature) {
		return "forged"
	}
	return "malformed"
}

func (h *Handler) servePixel(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.Write(pixelGIF)
}

func realIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx > 0 {
			return strings.TrimSpace(xff[:idx])
		}
		return xff
	}
	if xri := r.Header.Get("X-Real-Ip"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
