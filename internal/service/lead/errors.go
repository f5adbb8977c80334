package lead

import "errors"

// Sentinel errors for the lead service layer.
var (
	ErrNotFound       = errors.New("lead not found")
	ErrInvalidStatus  = errors.New("invalid lead status")
	ErrInvalidSource  = errors.New("invalid lead source")
	ErrInvalidOptions = errors.New("invalid scrape options")
)
