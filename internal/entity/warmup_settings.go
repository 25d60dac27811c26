package entity

import (
	"context"
	"time"
)

const (
	WarmupReasonDailyLimit   = "daily limit reached"
	WarmupReasonSendWindow   = "outside send window"
	DefaultWarmupWindowStart = 9
	DefaultWarmupWindowEnd   = 17
)

// WarmupSettings caps daily volume while a sender builds reputation.
// Window hours are compared in UTC; Timezone is only shown to the user.
type WarmupSettings struct {
	UserID            string     `json:"user_id"`
	Enabled           bool       `json:"enabled"`
	CurrentDailyLimit int        `json:"current_daily_limit"`
	SendWindowStart   int        `json:"send_window_start"`
	SendWindowEnd     int        `json:"send_window_end"`
	Timezone          string     `json:"timezone"`
	DailyIncrease     int        `json:"daily_increase"`
	MaxDailyLimit     int        `json:"max_daily_limit"`
	LastRampedOn      *time.Time `json:"last_ramped_on,omitempty"`
}

type WarmupDecision struct {
	Allowed bool
	Reason  string
}

func allow() WarmupDecision { return WarmupDecision{Allowed: true} }

func deny(reason string) WarmupDecision { return WarmupDecision{Reason: reason} }

// Evaluate gates one send attempt. The limit check runs before the window
// check, so a user over the limit gets the limit reason at any hour.
//
// The window is the linear range [start, end). A window with start > end
// (e.g. 22 -> 6) is not treated as wrapping midnight and denies every hour.
func (w *WarmupSettings) Evaluate(sentToday int, now time.Time) WarmupDecision {
	if w == nil || !w.Enabled {
		return allow()
	}

	if sentToday >= w.CurrentDailyLimit {
		return deny(WarmupReasonDailyLimit)
	}

	hour := now.UTC().Hour()
	if hour < w.SendWindowStart || hour >= w.SendWindowEnd {
		return deny(WarmupReasonSendWindow)
	}

	return allow()
}

// StartOfUTCDay is the inclusive lower bound used when counting today's sends.
func StartOfUTCDay(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

type WarmupRamp struct {
	UserID            string
	CurrentDailyLimit int
}

type WarmupSettingsRepositoryInterface interface {
	FindByUserID(ctx context.Context, userID string) (*WarmupSettings, error)
	// RampDaily advances every eligible user once per UTC day.
	RampDaily(ctx context.Context, day time.Time) ([]WarmupRamp, error)
}
