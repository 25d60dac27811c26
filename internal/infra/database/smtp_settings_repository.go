package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xavierca1/leadmail/internal/entity"
)

type SmtpSettingsRepository struct {
	DB *sql.DB
}

func NewSmtpSettingsRepository(db *sql.DB) *SmtpSettingsRepository {
	return &SmtpSettingsRepository{DB: db}
}

func (r *SmtpSettingsRepository) FindByUserID(ctx context.Context, userID string) (*entity.SmtpSettings, error) {
	query := `
		SELECT user_id, host, port, COALESCE(username, ''), COALESCE(password, ''),
		       from_email, COALESCE(from_name, '')
		FROM smtp_settings
		WHERE user_id = $1
	`

	var s entity.SmtpSettings
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID,
		&s.Host,
		&s.Port,
		&s.Username,
		&s.Password,
		&s.FromEmail,
		&s.FromName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar smtp_settings do usuário %s: %w", userID, err)
	}

	return &s, nil
}
