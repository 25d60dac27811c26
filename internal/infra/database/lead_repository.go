package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/xavierca1/leadmail/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT id, user_id, name, COALESCE(email, ''), COALESCE(position, ''),
		       COALESCE(requirement, ''), status, created_at, updated_at
		FROM leads
		WHERE id = $1
	`

	var lead entity.Lead
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.UserID,
		&lead.Name,
		&lead.Email,
		&lead.Position,
		&lead.Requirement,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lead %s: %w", id, err)
	}

	return &lead, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE leads SET status = $2, updated_at = NOW() WHERE id = $1`

	if _, err := r.DB.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("erro ao atualizar status do lead %s: %w", id, err)
	}
	return nil
}

// TransitionStatus is a compare-and-set on the status column. Stored values
// are compared the way FunnelRank reads them, trimmed and lowercased.
func (r *LeadRepository) TransitionStatus(ctx context.Context, id, to string, from []string) (bool, error) {
	query := `
		UPDATE leads
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND lower(btrim(status)) = ANY($3)
	`

	return r.execAffected(ctx, query, id, to, pq.Array(from))
}

func (r *LeadRepository) TransitionStatusUnless(ctx context.Context, id, to string, blocked []string) (bool, error) {
	query := `
		UPDATE leads
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND lower(btrim(status)) <> ALL($3)
	`

	return r.execAffected(ctx, query, id, to, pq.Array(blocked))
}

func (r *LeadRepository) execAffected(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao transicionar lead: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao ler linhas afetadas: %w", err)
	}
	return n > 0, nil
}
