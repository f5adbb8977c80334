package campaign

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/pkg/logger"
	"github.com/quotable/leadintel/internal/service/sending"
)

var whitespace = regexp.MustCompile(`\s+`)

// Personalize fills the {{name}}, {{title}}, {{company}} and {{location}}
// placeholders from the lead. Other text is left as is.
func Personalize(body string, l domain.Lead) string {
	return strings.NewReplacer(
		"{{name}}", l.Name,
		"{{title}}", l.Title,
		"{{company}}", l.Company,
		"{{location}}", l.Location,
	).Replace(body)
}

// RecipientEmail returns the lead's address, or a placeholder derived from
// the lowercased name when none is known.
func RecipientEmail(l domain.Lead) string {
	if l.Email != "" {
		return l.Email
	}
	return whitespace.ReplaceAllString(strings.ToLower(l.Name), ".") + "@example.com"
}

// SendToLead sends the campaign's personalised body to a single lead.
// Campaign metrics are not touched and failures are not retried.
func (s *Service) SendToLead(ctx context.Context, id string, l domain.Lead) (*domain.SendResult, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	to := RecipientEmail(l)
	msg := &sending.Message{
		To:         sending.Address{Name: l.Name, Email: to},
		From:       s.from,
		ReplyTo:    s.from.Email,
		Subject:    c.Subject,
		Body:       Personalize(c.Content, l),
		CampaignID: c.ID,
		LeadID:     l.ID,
	}

	res, err := s.sender.Send(ctx, msg)
	if err != nil {
		dispatchTotal.WithLabelValues("failed").Inc()
		log.Printf("[campaign.Service] send %s to %s failed: %v", c.ID, logger.RedactEmail(to), err)
		return nil, fmt.Errorf("send campaign %s to %s: %w", c.ID, l.Name, err)
	}

	dispatchTotal.WithLabelValues("sent").Inc()
	log.Printf("[campaign.Service] sent %s to %s (id: %s)", c.ID, logger.RedactEmail(to), res.MessageID)
	return &domain.SendResult{
		MessageID:  res.MessageID,
		CampaignID: c.ID,
		LeadID:     l.ID,
		Recipient:  to,
		SentAt:     res.SentAt,
	}, nil
}
