package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xavierca1/leadmail/internal/entity"
)

type EmailLogRepository struct {
	DB *sql.DB
}

func NewEmailLogRepository(db *sql.DB) *EmailLogRepository {
	return &EmailLogRepository{DB: db}
}

func (r *EmailLogRepository) Create(ctx context.Context, l *entity.EmailLog) error {
	query := `
		INSERT INTO email_logs (id, user_id, lead_id, to_email, subject, body, status, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		l.ID,
		l.UserID,
		l.LeadID,
		l.ToEmail,
		l.Subject,
		l.Body,
		l.Status,
		l.SentAt,
	)
	if err != nil {
		return fmt.Errorf("erro ao gravar email_log %s: %w", l.ID, err)
	}
	return nil
}

func (r *EmailLogRepository) FindByID(ctx context.Context, id string) (*entity.EmailLog, error) {
	query := `
		SELECT id, user_id, lead_id, to_email, subject, body, status, sent_at, opened_at, clicked_at
		FROM email_logs
		WHERE id = $1
	`

	l, err := scanEmailLog(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar email_log %s: %w", id, err)
	}
	return l, nil
}

// CountSentSince counts rows still in status "sent" with sent_at >= since.
func (r *EmailLogRepository) CountSentSince(ctx context.Context, userID string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM email_logs
		WHERE user_id = $1 AND status = 'sent' AND sent_at >= $2
	`

	var count int
	if err := r.DB.QueryRowContext(ctx, query, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar envios do usuário %s: %w", userID, err)
	}
	return count, nil
}

func (r *EmailLogRepository) MarkOpened(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
		UPDATE email_logs
		SET opened_at = $2, status = 'opened'
		WHERE id = $1 AND opened_at IS NULL
	`

	return r.markOnce(ctx, query, id, at)
}

func (r *EmailLogRepository) MarkClicked(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
		UPDATE email_logs
		SET clicked_at = $2, status = 'clicked'
		WHERE id = $1 AND clicked_at IS NULL
	`

	return r.markOnce(ctx, query, id, at)
}

func (r *EmailLogRepository) markOnce(ctx context.Context, query, id string, at time.Time) (bool, error) {
	res, err := r.DB.ExecContext(ctx, query, id, at)
	if err != nil {
		return false, fmt.Errorf("erro ao marcar email_log %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao ler linhas afetadas: %w", err)
	}
	return n > 0, nil
}

func (r *EmailLogRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.EmailLog, error) {
	query := `
		SELECT id, user_id, lead_id, to_email, subject, body, status, sent_at, opened_at, clicked_at
		FROM email_logs
		WHERE user_id = $1
		ORDER BY sent_at DESC
		LIMIT $2
	`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar email_logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.EmailLog
	for rows.Next() {
		l, err := scanEmailLog(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear email_log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmailLog(row rowScanner) (*entity.EmailLog, error) {
	var (
		l         entity.EmailLog
		leadID    sql.NullString
		openedAt  sql.NullTime
		clickedAt sql.NullTime
	)

	err := row.Scan(
		&l.ID,
		&l.UserID,
		&leadID,
		&l.ToEmail,
		&l.Subject,
		&l.Body,
		&l.Status,
		&l.SentAt,
		&openedAt,
		&clickedAt,
	)
	if err != nil {
		return nil, err
	}

	if leadID.Valid {
		l.LeadID = &leadID.String
	}
	if openedAt.Valid {
		l.OpenedAt = &openedAt.Time
	}
	if clickedAt.Valid {
		l.ClickedAt = &clickedAt.Time
	}
	return &l, nil
}
