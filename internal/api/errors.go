package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/quotable/leadintel/internal/analytics"
	"github.com/quotable/leadintel/internal/llm"
	"github.com/quotable/leadintel/internal/pkg/httputil"
	"github.com/quotable/leadintel/internal/service/campaign"
	"github.com/quotable/leadintel/internal/service/lead"
)

// statusClientClosedRequest is nginx's non-standard 499.
const statusClientClosedRequest = 499

// writeError maps service errors to status codes. Client errors echo the
// message; upstream and internal errors are logged and replaced with a
// generic one.
func writeError(w http.ResponseWriter, err error) {
	var parseErr *llm.ParseError
	var apiErr *llm.APIError

	switch {
	case errors.Is(err, lead.ErrNotFound),
		errors.Is(err, campaign.ErrNotFound),
		errors.Is(err, analytics.ErrRecommendationNotFound):
		httputil.NotFound(w, err.Error())
	case errors.Is(err, analytics.ErrNoReport):
		httputil.NotFound(w, err.Error())
	case errors.Is(err, lead.ErrInvalidStatus),
		errors.Is(err, lead.ErrInvalidSource),
		errors.Is(err, lead.ErrInvalidOptions),
		errors.Is(err, campaign.ErrInvalidInput),
		errors.Is(err, campaign.ErrNoSampleLead):
		httputil.BadRequest(w, err.Error())
	case errors.Is(err, campaign.ErrInvalidTransition):
		httputil.Conflict(w, err.Error())
	case errors.Is(err, llm.ErrCircuitOpen):
		log.Printf("[api] %v", err)
		httputil.ServiceUnavailable(w, "language model temporarily unavailable")
	case errors.As(err, &parseErr):
		httputil.BadGateway(w, "invalid_model_output", err)
	case errors.Is(err, campaign.ErrContentGeneration):
		httputil.BadGateway(w, "content_generation_failed", err)
	case errors.Is(err, campaign.ErrSendFailed):
		httputil.BadGateway(w, "send_failed", err)
	case errors.As(err, &apiErr):
		httputil.BadGateway(w, "model_provider_error", err)
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("[api] %v", err)
		httputil.Error(w, http.StatusGatewayTimeout, "request timed out")
	case errors.Is(err, context.Canceled):
		log.Printf("[api] request cancelled: %v", err)
		httputil.Error(w, statusClientClosedRequest, "request cancelled")
	default:
		httputil.InternalError(w, err)
	}
}
