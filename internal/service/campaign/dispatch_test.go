package campaign_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/service/campaign"
	"github.com/quotable/leadintel/internal/service/sending"
)

func TestPersonalize(t *testing.T) {
	body := "Dear {{name}}, as {{title}} at {{company}} in {{location}}. {{company}} again. {{unknown}}"
	got := campaign.Personalize(body, sampleLead())
	assert.Equal(t,
		"Dear Ana Ruiz, as Chief Risk Officer at Guardian Insurance Group in Madrid, Spain. Guardian Insurance Group again. {{unknown}}",
		got)
}

func TestRecipientEmail(t *testing.T) {
	l := sampleLead()
	assert.Equal(t, "ana.ruiz@example.com", campaign.RecipientEmail(l))

	l.Name = "Mary  Jo   Smith"
	assert.Equal(t, "mary.jo.smith@example.com", campaign.RecipientEmail(l))

	l.Email = "mj@guardian.test"
	assert.Equal(t, "mj@guardian.test", campaign.RecipientEmail(l))
}

func TestSendToLead(t *testing.T) {
	s := &fakeSender{}
	svc, _ := newTestService(&fakeWriter{}, s)

	res, err := svc.SendToLead(context.Background(), "campaign-2", sampleLead())
	require.NoError(t, err)
	assert.Equal(t, "msg-1", res.MessageID)
	assert.Equal(t, "ana.ruiz@example.com", res.Recipient)
	assert.Equal(t, "lead-1", res.LeadID)

	require.Len(t, s.msgs, 1)
	msg := s.msgs[0]
	assert.Equal(t, "Innovative solutions for Asian markets", msg.Subject)
	assert.Equal(t, from, msg.From)
	assert.Equal(t, from.Email, msg.ReplyTo)
	assert.Contains(t, msg.Body, "Dear Ana Ruiz,")
	assert.Contains(t, msg.Body, "insurance sector in Madrid, Spain.")
	assert.NotContains(t, msg.Body, "{{")

	// Metrics are untouched by dispatch.
	c, err := svc.Get(context.Background(), "campaign-2")
	require.NoError(t, err)
	assert.Equal(t, 22.7, c.OpenRate)
	assert.Equal(t, 189, c.LeadsCount)
}

func TestSendToLeadFailure(t *testing.T) {
	svc, _ := newTestService(&fakeWriter{}, &fakeSender{err: sending.ErrSendFailed})
	_, err := svc.SendToLead(context.Background(), "campaign-1", sampleLead())
	assert.ErrorIs(t, err, campaign.ErrSendFailed)
}

func TestSendToLeadUnknownCampaign(t *testing.T) {
	s := &fakeSender{}
	svc, _ := newTestService(&fakeWriter{}, s)
	_, err := svc.SendToLead(context.Background(), "campaign-404", domain.Lead{Name: "x"})
	assert.ErrorIs(t, err, campaign.ErrNotFound)
	assert.Empty(t, s.msgs)
}
