package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/service/campaign"
)

const campaignColumns = `id, name, subject, content, target_region, target_industry,
		       status, leads_count, open_rate, click_rate, response_rate, created_at, updated_at`

// CampaignRepo implements campaign.Repository against PostgreSQL.
type CampaignRepo struct{ db *sql.DB }

// NewCampaignRepo creates a Postgres-backed campaign repository.
func NewCampaignRepo(db *sql.DB) *CampaignRepo { return &CampaignRepo{db: db} }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	c := &domain.Campaign{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Subject, &c.Content, &c.TargetRegion, &c.TargetIndustry,
		&c.Status, &c.LeadsCount, &c.OpenRate, &c.ClickRate, &c.ResponseRate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepo) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRowContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, campaign.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return c, nil
}

func (r *CampaignRepo) List(ctx context.Context, f campaign.ListFilter) ([]domain.Campaign, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}

	q := `SELECT ` + campaignColumns + ` FROM campaigns`
	args := []any{}
	idx := 1
	if f.Status != "" {
		q += fmt.Sprintf(" WHERE status = $%d", idx)
		args = append(args, f.Status)
		idx++
	}
	q += fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, max(f.Offset, 0))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	out := []domain.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *CampaignRepo) Create(ctx context.Context, c *domain.Campaign) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO campaigns
			(id, name, subject, content, target_region, target_industry,
			 status, leads_count, open_rate, click_rate, response_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, c.ID, c.Name, c.Subject, c.Content, c.TargetRegion, c.TargetIndustry,
		c.Status, c.LeadsCount, c.OpenRate, c.ClickRate, c.ResponseRate, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepo) Update(ctx context.Context, id string, u campaign.UpdateFields) (*domain.Campaign, error) {
	sets := []string{}
	args := []any{}
	idx := 1
	add := func(col string, val any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}

	if u.Name != nil {
		add("name", *u.Name)
	}
	if u.Subject != nil {
		add("subject", *u.Subject)
	}
	if u.Content != nil {
		add("content", *u.Content)
	}
	if u.TargetRegion != nil {
		add("target_region", *u.TargetRegion)
	}
	if u.TargetIndustry != nil {
		add("target_industry", *u.TargetIndustry)
	}
	sets = append(sets, "updated_at = NOW()")

	q := fmt.Sprintf("UPDATE campaigns SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), idx, campaignColumns)
	args = append(args, id)

	c, err := scanCampaign(r.db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, campaign.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return c, nil
}

func (r *CampaignRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return campaign.ErrNotFound
	}
	return nil
}

// Transition applies the status change with a guarded UPDATE so concurrent
// callers cannot both pass the check.
func (r *CampaignRepo) Transition(ctx context.Context, id string, t campaign.Transition) (*domain.Campaign, error) {
	var leads sql.NullInt64
	if t.LeadsCount != nil {
		leads = sql.NullInt64{Int64: int64(*t.LeadsCount), Valid: true}
	}

	c, err := scanCampaign(r.db.QueryRowContext(ctx, `
		UPDATE campaigns
		SET status = $1, leads_count = COALESCE($2, leads_count), updated_at = NOW()
		WHERE id = $3 AND status = ANY($4)
		RETURNING `+campaignColumns,
		t.To, leads, id, pq.Array(t.FromStrings())))
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transition campaign: %w", err)
	}

	var current domain.CampaignStatus
	err = r.db.QueryRowContext(ctx, `SELECT status FROM campaigns WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, campaign.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read campaign status: %w", err)
	}
	return nil, fmt.Errorf("%w: cannot %s a %s campaign", campaign.ErrInvalidTransition, t.Name, current)
}
