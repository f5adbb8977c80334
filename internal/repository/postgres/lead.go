package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/service/lead"
)

const leadColumns = `id, name, title, company, location, COALESCE(email,''), COALESCE(linkedin_url,''),
		       industry, confidence_score, is_decision_maker, status, created_at`

// LeadRepo implements lead.Repository against PostgreSQL.
type LeadRepo struct{ db *sql.DB }

// NewLeadRepo creates a Postgres-backed lead repository.
func NewLeadRepo(db *sql.DB) *LeadRepo { return &LeadRepo{db: db} }

func scanLead(row rowScanner) (*domain.Lead, error) {
	l := &domain.Lead{}
	err := row.Scan(
		&l.ID, &l.Name, &l.Title, &l.Company, &l.Location, &l.Email, &l.LinkedInURL,
		&l.Industry, &l.ConfidenceScore, &l.IsDecisionMaker, &l.Status, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Save upserts the leads in one transaction.
func (r *LeadRepo) Save(ctx context.Context, leads ...domain.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO leads
			(id, name, title, company, location, email, linkedin_url,
			 industry, confidence_score, is_decision_maker, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, title = EXCLUDED.title, company = EXCLUDED.company,
			location = EXCLUDED.location, email = EXCLUDED.email,
			linkedin_url = EXCLUDED.linkedin_url, industry = EXCLUDED.industry,
			confidence_score = EXCLUDED.confidence_score,
			is_decision_maker = EXCLUDED.is_decision_maker, status = EXCLUDED.status
	`)
	if err != nil {
		return fmt.Errorf("prepare lead upsert: %w", err)
	}
	defer stmt.Close()

	for _, l := range leads {
		if _, err := stmt.ExecContext(ctx,
			l.ID, l.Name, l.Title, l.Company, l.Location, nullable(l.Email), nullable(l.LinkedInURL),
			l.Industry, l.ConfidenceScore, l.IsDecisionMaker, l.Status, l.CreatedAt,
		); err != nil {
			return fmt.Errorf("upsert lead %s: %w", l.ID, err)
		}
	}
	return tx.Commit()
}

func (r *LeadRepo) Get(ctx context.Context, id string) (*domain.Lead, error) {
	l, err := scanLead(r.db.QueryRowContext(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lead.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return l, nil
}

func (r *LeadRepo) List(ctx context.Context, f lead.ListFilter) ([]domain.Lead, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}

	where := []string{}
	args := []any{}
	idx := 1
	if f.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", idx))
		args = append(args, f.Status)
		idx++
	}
	if f.DecisionMakersOnly {
		where = append(where, "is_decision_maker")
	}

	q := `SELECT ` + leadColumns + ` FROM leads`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, max(f.Offset, 0))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	out := []domain.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

func (r *LeadRepo) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE leads SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return lead.ErrNotFound
	}
	return nil
}
