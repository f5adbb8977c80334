// Package httpretry retries idempotent outbound calls (feed fetches and,
// when enabled, model provider requests) with jittered exponential backoff.
package httpretry

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var retriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "leadintel_http_retries_total",
	Help: "Outbound HTTP retry attempts by host.",
}, []string{"host"})

// HTTPDoer executes a request. *http.Client and *RetryClient both satisfy it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RetryClient wraps an HTTPDoer and replays requests that fail with a
// transport error, 429, or a 5xx gateway status.
type RetryClient struct {
	next       HTTPDoer
	maxRetries int
	base       time.Duration
	ceiling    time.Duration
	floor      time.Duration
}

// Option customises a RetryClient.
type Option func(*RetryClient)

// WithBackoff sets the first backoff step and the cap on any single wait.
func WithBackoff(base, ceiling time.Duration) Option {
	return func(rc *RetryClient) {
		rc.base = base
		rc.ceiling = ceiling
		rc.floor = min(rc.floor, base)
	}
}

// NewRetryClient wraps next, or a plain client with a 30s timeout when next
// is nil. maxRetries counts replays after the first attempt; zero or less
// means 3.
func NewRetryClient(next HTTPDoer, maxRetries int, opts ...Option) *RetryClient {
	if next == nil {
		next = &http.Client{Timeout: 30 * time.Second}
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	rc := &RetryClient{
		next:       next,
		maxRetries: maxRetries,
		base:       time.Second,
		ceiling:    30 * time.Second,
		floor:      100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// Do sends req, retrying as described on RetryClient. When retries run out
// on a retryable status the last response is returned unchanged so callers
// can read the provider's error body. Context cancellation is never retried.
func (rc *RetryClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	var lastErr error
	var wait time.Duration

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			if err := rewind(req); err != nil {
				return nil, err
			}
			retriesTotal.WithLabelValues(req.URL.Host).Inc()
			log.Printf("[httpretry] %s %s%s: retry %d/%d in %s",
				req.Method, req.URL.Host, req.URL.Path, attempt, rc.maxRetries, wait)

			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, firstErr(lastErr, ctx.Err())
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, firstErr(lastErr, err)
		}

		resp, err := rc.next.Do(req)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, err
			}
			lastErr = err
		case !retryable(resp.StatusCode) || attempt == rc.maxRetries:
			return resp, nil
		default:
			lastErr = fmt.Errorf("httpretry: %s returned %d", req.URL.Host, resp.StatusCode)
		}

		if attempt == rc.maxRetries {
			return nil, lastErr
		}
		wait = rc.backoff(attempt + 1)
		if resp != nil {
			if hinted, ok := retryAfter(resp); ok {
				wait = min(hinted, rc.ceiling)
			}
			// Drain so the connection can be reused.
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
	}
}

// backoff draws uniformly from [floor, min(ceiling, base*2^(attempt-1))].
func (rc *RetryClient) backoff(attempt int) time.Duration {
	window := rc.base << (attempt - 1)
	if window <= 0 || window > rc.ceiling {
		window = rc.ceiling
	}
	return max(time.Duration(rand.Int63n(int64(window)+1)), rc.floor)
}

func rewind(req *http.Request) error {
	if req.Body == nil || req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("httpretry: rewind body: %w", err)
	}
	req.Body = body
	return nil
}

// retryAfter reads a delay-seconds Retry-After header.
func retryAfter(resp *http.Response) (time.Duration, bool) {
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
