package sending

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/quotable/leadintel/internal/pkg/logger"
	"github.com/quotable/leadintel/internal/pkg/simulate"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// DefaultSimulatedDelay is the pause before a simulated send resolves.
const DefaultSimulatedDelay = time.Second

// SimulatedSender pretends to deliver mail. Each send waits Delay and then
// succeeds when a uniform draw falls below SuccessRate.
type SimulatedSender struct {
	rnd         simulate.Source
	successRate float64
	delay       time.Duration
	now         func() time.Time
}

// NewSimulatedSender creates a simulated sender.
func NewSimulatedSender(rnd simulate.Source, successRate float64, delay time.Duration) *SimulatedSender {
	return &SimulatedSender{rnd: rnd, successRate: successRate, delay: delay, now: time.Now}
}

// Send implements Sender.
func (s *SimulatedSender) Send(ctx context.Context, msg *Message) (*Result, error) {
	log.Printf("[sending.Simulated] to=%s subject=%q body=%q",
		logger.RedactEmail(msg.To.Email), msg.Subject, truncate(msg.Body, 100))

	if err := simulate.Sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	if s.rnd.Float64() >= s.successRate {
		sendsTotal.WithLabelValues("simulated", "failed").Inc()
		return nil, ErrSendFailed
	}

	now := s.now()
	sendsTotal.WithLabelValues("simulated", "sent").Inc()
	return &Result{
		MessageID: fmt.Sprintf("mock-%d-%s", now.UnixMilli(), s.suffix(13)),
		SentAt:    now,
	}, nil
}

func (s *SimulatedSender) suffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[s.rnd.Intn(len(base36))]
	}
	return string(b)
}

// truncate keeps the first n runes of s.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i] + "..."
		}
		count++
	}
	return s
}
