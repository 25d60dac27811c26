package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xavierca1/leadmail/internal/entity"
)

type WarmupSettingsRepository struct {
	DB *sql.DB
}

func NewWarmupSettingsRepository(db *sql.DB) *WarmupSettingsRepository {
	return &WarmupSettingsRepository{DB: db}
}

func (r *WarmupSettingsRepository) FindByUserID(ctx context.Context, userID string) (*entity.WarmupSettings, error) {
	query := `
		SELECT user_id, enabled, current_daily_limit, send_window_start, send_window_end,
		       COALESCE(timezone, 'UTC'), daily_increase, max_daily_limit, last_ramped_on
		FROM warmup_settings
		WHERE user_id = $1
	`

	var (
		w            entity.WarmupSettings
		lastRampedOn sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&w.UserID,
		&w.Enabled,
		&w.CurrentDailyLimit,
		&w.SendWindowStart,
		&w.SendWindowEnd,
		&w.Timezone,
		&w.DailyIncrease,
		&w.MaxDailyLimit,
		&lastRampedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar warmup_settings do usuário %s: %w", userID, err)
	}

	if lastRampedOn.Valid {
		w.LastRampedOn = &lastRampedOn.Time
	}
	return &w, nil
}

// RampDaily raises every enabled limit by its daily increase, capped at the
// max, at most once per UTC day. Running it twice on the same day is a no-op.
// Limits already at or above the max are left alone.
func (r *WarmupSettingsRepository) RampDaily(ctx context.Context, day time.Time) ([]entity.WarmupRamp, error) {
	query := `
		UPDATE warmup_settings
		SET current_daily_limit = LEAST(current_daily_limit + daily_increase, max_daily_limit),
		    last_ramped_on = $1
		WHERE enabled
		  AND daily_increase > 0
		  AND current_daily_limit < max_daily_limit
		  AND (last_ramped_on IS NULL OR last_ramped_on < $1)
		RETURNING user_id, current_daily_limit
	`

	rows, err := r.DB.QueryContext(ctx, query, entity.StartOfUTCDay(day))
	if err != nil {
		return nil, fmt.Errorf("erro ao aplicar rampa de warmup: %w", err)
	}
	defer rows.Close()

	var ramps []entity.WarmupRamp
	for rows.Next() {
		var ramp entity.WarmupRamp
		if err := rows.Scan(&ramp.UserID, &ramp.CurrentDailyLimit); err != nil {
			return nil, fmt.Errorf("erro ao escanear rampa: %w", err)
		}
		ramps = append(ramps, ramp)
	}
	return ramps, rows.Err()
}
