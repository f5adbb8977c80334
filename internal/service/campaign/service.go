package campaign

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/llm"
	"github.com/quotable/leadintel/internal/service/sending"
)

// ContentWriter drafts a campaign body for a sample recipient.
type ContentWriter interface {
	GenerateEmail(ctx context.Context, r llm.Recipient, b llm.EmailBrief) (string, error)
}

// Service implements campaign business logic. It coordinates between the
// repository layer, the content writer and the email sender.
// All public methods are safe for concurrent use if the underlying
// repository is concurrency-safe.
type Service struct {
	repo   Repository
	writer ContentWriter
	sender sending.Sender
	from   sending.Address
	now    func() time.Time
}

// NewService creates a campaign service. from is used as both the sender
// and the reply-to address of dispatched mail.
func NewService(repo Repository, writer ContentWriter, sender sending.Sender, from sending.Address) *Service {
	return &Service{repo: repo, writer: writer, sender: sender, from: from, now: time.Now}
}

// Get returns a single campaign.
func (s *Service) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.repo.Get(ctx, id)
}

// List returns campaigns matching the filter.
func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Campaign, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, f.Status)
	}
	return s.repo.List(ctx, f)
}

// CreateInput holds the fields for creating a new campaign.
type CreateInput struct {
	Name           string        `json:"name"`
	Subject        string        `json:"subject"`
	Content        string        `json:"content,omitempty"`
	TargetRegion   string        `json:"target_region"`
	TargetIndustry string        `json:"target_industry"`
	Leads          []domain.Lead `json:"leads"`
}

// Validate checks the required fields.
func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	return nil
}

// Create persists a new draft campaign. When no content is given the body
// is written by the model for the first lead; a failed generation fails
// the whole call and nothing is stored.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Campaign, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	content := in.Content
	if content == "" {
		generated, err := s.generateContent(ctx, in)
		if err != nil {
			return nil, err
		}
		content = generated
	}

	now := s.now().UTC()
	c := &domain.Campaign{
		ID:             "campaign-" + uuid.NewString(),
		Name:           in.Name,
		Subject:        in.Subject,
		Content:        content,
		TargetRegion:   in.TargetRegion,
		TargetIndustry: in.TargetIndustry,
		Status:         domain.CampaignDraft,
		LeadsCount:     len(in.Leads),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	log.Printf("[campaign.Service] created campaign %s (%q)", c.ID, c.Name)
	return c, nil
}

func (s *Service) generateContent(ctx context.Context, in CreateInput) (string, error) {
	if len(in.Leads) == 0 {
		return "", ErrNoSampleLead
	}
	sample := in.Leads[0]
	body, err := s.writer.GenerateEmail(ctx,
		llm.Recipient{
			Name:     sample.Name,
			Title:    sample.Title,
			Company:  sample.Company,
			Location: sample.Location,
		},
		llm.EmailBrief{
			Subject:  in.Subject,
			Region:   in.TargetRegion,
			Industry: in.TargetIndustry,
			Tone:     llm.ToneProfessional,
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentGeneration, err)
	}
	return body, nil
}

// Update merges the given fields into a campaign. Status is changed only
// through the lifecycle methods.
func (s *Service) Update(ctx context.Context, id string, u UpdateFields) (*domain.Campaign, error) {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if u.Subject != nil && strings.TrimSpace(*u.Subject) == "" {
		return nil, fmt.Errorf("%w: subject cannot be empty", ErrInvalidInput)
	}
	return s.repo.Update(ctx, id, u)
}

// Delete removes a campaign.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[campaign.Service] deleted campaign %s", id)
	return nil
}

// Launch activates a draft campaign for the given leads.
func (s *Service) Launch(ctx context.Context, id string, leads []domain.Lead) (*domain.Campaign, error) {
	return s.transition(ctx, id, LaunchTransition(len(leads)))
}

// Pause stops an active campaign.
func (s *Service) Pause(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.transition(ctx, id, pauseTransition)
}

// Resume reactivates a paused campaign.
func (s *Service) Resume(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.transition(ctx, id, resumeTransition)
}

// Complete closes an active or paused campaign.
func (s *Service) Complete(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.transition(ctx, id, completeTransition)
}

func (s *Service) transition(ctx context.Context, id string, t Transition) (*domain.Campaign, error) {
	c, err := s.repo.Transition(ctx, id, t)
	if err != nil {
		transitionsTotal.WithLabelValues(t.Name, "rejected").Inc()
		return nil, err
	}
	transitionsTotal.WithLabelValues(t.Name, "ok").Inc()
	log.Printf("[campaign.Service] campaign %s %s -> %s", id, t.Name, c.Status)
	return c, nil
}

// Performance returns the stored rate metrics of a campaign.
func (s *Service) Performance(ctx context.Context, id string) (*domain.Performance, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.Performance{
		OpenRate:     c.OpenRate,
		ClickRate:    c.ClickRate,
		ResponseRate: c.ResponseRate,
		LeadsCount:   c.LeadsCount,
	}, nil
}
