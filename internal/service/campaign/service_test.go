package campaign_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/llm"
	"github.com/quotable/leadintel/internal/repository/memory"
	"github.com/quotable/leadintel/internal/service/campaign"
	"github.com/quotable/leadintel/internal/service/sending"
)

type fakeWriter struct {
	body  string
	err   error
	calls int
	got   llm.Recipient
	brief llm.EmailBrief
}

func (f *fakeWriter) GenerateEmail(_ context.Context, r llm.Recipient, b llm.EmailBrief) (string, error) {
	f.calls++
	f.got, f.brief = r, b
	return f.body, f.err
}

type fakeSender struct {
	msgs []*sending.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg *sending.Message) (*sending.Result, error) {
	f.msgs = append(f.msgs, msg)
	if f.err != nil {
		return nil, f.err
	}
	return &sending.Result{MessageID: "msg-1", SentAt: time.Now()}, nil
}

var from = sending.Address{Name: "Quotable", Email: "outreach@quotable.test"}

func newTestService(w *fakeWriter, s *fakeSender) (*campaign.Service, *memory.CampaignRepo) {
	repo := memory.NewSeededCampaignRepo(memory.NoLatency())
	return campaign.NewService(repo, w, s, from), repo
}

func sampleLead() domain.Lead {
	return domain.Lead{
		ID:       "lead-1",
		Name:     "Ana Ruiz",
		Title:    "Chief Risk Officer",
		Company:  "Guardian Insurance Group",
		Location: "Madrid, Spain",
	}
}

func TestCreateWithContent(t *testing.T) {
	w := &fakeWriter{}
	svc, _ := newTestService(w, &fakeSender{})

	c, err := svc.Create(context.Background(), campaign.CreateInput{
		Name:           "Nordics",
		Subject:        "Hello",
		Content:        "Dear {{name}}",
		TargetRegion:   "Europe",
		TargetIndustry: "Insurance",
		Leads:          []domain.Lead{sampleLead(), sampleLead()},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.ID, "campaign-"))
	assert.Equal(t, domain.CampaignDraft, c.Status)
	assert.Equal(t, 2, c.LeadsCount)
	assert.Zero(t, c.OpenRate)
	assert.Zero(t, c.ClickRate)
	assert.Zero(t, c.ResponseRate)
	assert.Equal(t, 0, w.calls)

	stored, err := svc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dear {{name}}", stored.Content)
}

func TestCreateGeneratesContent(t *testing.T) {
	w := &fakeWriter{body: "Dear Ana, a short note about risk."}
	svc, _ := newTestService(w, &fakeSender{})

	c, err := svc.Create(context.Background(), campaign.CreateInput{
		Name:           "Nordics",
		Subject:        "Hello",
		TargetRegion:   "Europe",
		TargetIndustry: "Insurance",
		Leads:          []domain.Lead{sampleLead()},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, w.calls)
	assert.Equal(t, "Ana Ruiz", w.got.Name)
	assert.Equal(t, llm.ToneProfessional, w.brief.Tone)
	assert.Equal(t, "Europe", w.brief.Region)
	assert.False(t, c.HasUnrenderedTokens())
}

func TestCreateGenerationFailurePersistsNothing(t *testing.T) {
	upstream := &llm.APIError{StatusCode: 500, Message: "boom"}
	w := &fakeWriter{err: upstream}
	svc, _ := newTestService(w, &fakeSender{})

	_, err := svc.Create(context.Background(), campaign.CreateInput{
		Name: "Nordics", Subject: "Hello", Leads: []domain.Lead{sampleLead()},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, campaign.ErrContentGeneration)
	var apiErr *llm.APIError
	assert.True(t, errors.As(err, &apiErr))

	list, err := svc.List(context.Background(), campaign.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(&fakeWriter{}, &fakeSender{})

	_, err := svc.Create(context.Background(), campaign.CreateInput{Subject: "s", Content: "c"})
	assert.ErrorIs(t, err, campaign.ErrInvalidInput)

	_, err = svc.Create(context.Background(), campaign.CreateInput{Name: "n", Subject: "s"})
	assert.ErrorIs(t, err, campaign.ErrNoSampleLead)
}

func TestPauseThenResumeKeepsMetrics(t *testing.T) {
	svc, _ := newTestService(&fakeWriter{}, &fakeSender{})
	ctx := context.Background()

	before, err := svc.Get(ctx, "campaign-1")
	require.NoError(t, err)

	paused, err := svc.Pause(ctx, "campaign-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, paused.Status)

	resumed, err := svc.Resume(ctx, "campaign-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, resumed.Status)
	assert.Equal(t, before.OpenRate, resumed.OpenRate)
	assert.Equal(t, before.ClickRate, resumed.ClickRate)
	assert.Equal(t, before.ResponseRate, resumed.ResponseRate)
	assert.Equal(t, before.LeadsCount, resumed.LeadsCount)
}

func TestLifecycleGuards(t *testing.T) {
	svc, _ := newTestService(&fakeWriter{}, &fakeSender{})
	ctx := context.Background()

	draft, err := svc.Create(ctx, campaign.CreateInput{Name: "n", Subject: "s", Content: "c"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		op      func() (*domain.Campaign, error)
		want    domain.CampaignStatus
		wantErr error
	}{
		{"pause draft", func() (*domain.Campaign, error) { return svc.Pause(ctx, draft.ID) }, "", campaign.ErrInvalidTransition},
		{"complete draft", func() (*domain.Campaign, error) { return svc.Complete(ctx, draft.ID) }, "", campaign.ErrInvalidTransition},
		{"launch draft", func() (*domain.Campaign, error) {
			return svc.Launch(ctx, draft.ID, []domain.Lead{sampleLead(), sampleLead(), sampleLead()})
		}, domain.CampaignActive, nil},
		{"launch active", func() (*domain.Campaign, error) { return svc.Launch(ctx, draft.ID, nil) }, "", campaign.ErrInvalidTransition},
		{"resume active", func() (*domain.Campaign, error) { return svc.Resume(ctx, draft.ID) }, "", campaign.ErrInvalidTransition},
		{"complete active", func() (*domain.Campaign, error) { return svc.Complete(ctx, draft.ID) }, domain.CampaignCompleted, nil},
		{"resume completed", func() (*domain.Campaign, error) { return svc.Resume(ctx, draft.ID) }, "", campaign.ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.op()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Status)
		})
	}

	final, err := svc.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, final.LeadsCount)
}

func TestCompletePaused(t *testing.T) {
	svc, _ := newTestService(&fakeWriter{}, &fakeSender{})
	c, err := svc.Complete(context.Background(), "campaign-3")
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignCompleted, c.Status)
}

func TestUpdateAndDelete(t *testing.T) {
	svc, _ := newTestService(&fakeWriter{}, &fakeSender{})
	ctx := context.Background()

	name := "Renamed"
	c, err := svc.Update(ctx, "campaign-2", campaign.UpdateFields{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", c.Name)
	assert.Equal(t, domain.CampaignActive, c.Status)

	empty := " "
	_, err = svc.Update(ctx, "campaign-2", campaign.UpdateFields{Subject: &empty})
	assert.ErrorIs(t, err, campaign.ErrInvalidInput)

	_, err = svc.Update(ctx, "campaign-404", campaign.UpdateFields{Name: &name})
	assert.ErrorIs(t, err, campaign.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "campaign-2"))
	assert.ErrorIs(t, svc.Delete(ctx, "campaign-2"), campaign.ErrNotFound)
}

func TestPerformance(t *testing.T) {
	svc, _ := newTestService(&fakeWriter{}, &fakeSender{})
	p, err := svc.Performance(context.Background(), "campaign-3")
	require.NoError(t, err)
	assert.Equal(t, domain.Performance{OpenRate: 31.2, ClickRate: 15.6, ResponseRate: 6.1, LeadsCount: 167}, *p)

	_, err = svc.Performance(context.Background(), "campaign-404")
	assert.ErrorIs(t, err, campaign.ErrNotFound)
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(&fakeWriter{}, &fakeSender{})
	_, err := svc.List(context.Background(), campaign.ListFilter{Status: "archived"})
	assert.ErrorIs(t, err, campaign.ErrInvalidInput)
}
