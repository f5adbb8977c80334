package campaign

import (
	"errors"

	"github.com/quotable/leadintel/internal/service/sending"
)

// Sentinel errors for the campaign service layer.
var (
	ErrNotFound          = errors.New("campaign not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidInput      = errors.New("invalid campaign input")
	ErrNoSampleLead      = errors.New("content generation needs at least one lead")
	ErrContentGeneration = errors.New("failed to generate campaign content")

	// ErrSendFailed is the dispatch failure reported by senders.
	ErrSendFailed = sending.ErrSendFailed
)
