package entity

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func at(hour int) time.Time {
	return time.Date(2026, 10, 16, hour, 30, 0, 0, time.UTC)
}

func enabledWarmup(limit, start, end int) *WarmupSettings {
	return &WarmupSettings{
		UserID:            "user-1",
		Enabled:           true,
		CurrentDailyLimit: limit,
		SendWindowStart:   start,
		SendWindowEnd:     end,
		Timezone:          "America/Sao_Paulo",
	}
}

func TestWarmupEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		settings  *WarmupSettings
		sentToday int
		now       time.Time
		allowed   bool
		reason    string
	}{
		{"nil settings allow", nil, 1000, at(3), true, ""},
		{"disabled ignores limit and window", &WarmupSettings{CurrentDailyLimit: 0, SendWindowStart: 9, SendWindowEnd: 17}, 50, at(3), true, ""},
		{"under limit inside window", enabledWarmup(10, 9, 17), 9, at(12), true, ""},
		{"at limit", enabledWarmup(10, 9, 17), 10, at(12), false, WarmupReasonDailyLimit},
		{"over limit", enabledWarmup(10, 9, 17), 11, at(12), false, WarmupReasonDailyLimit},
		{"limit wins outside window", enabledWarmup(10, 9, 17), 10, at(3), false, WarmupReasonDailyLimit},
		{"before window", enabledWarmup(10, 9, 17), 0, at(8), false, WarmupReasonSendWindow},
		{"start hour is inside", enabledWarmup(10, 9, 17), 0, at(9), true, ""},
		{"end hour is outside", enabledWarmup(10, 9, 17), 0, at(17), false, WarmupReasonSendWindow},
		{"zero limit blocks everything", enabledWarmup(0, 0, 23), 0, at(12), false, WarmupReasonDailyLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.settings.Evaluate(tt.sentToday, tt.now)
			assert.Equal(t, tt.allowed, d.Allowed)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestWarmupEvaluate_ComparesInUTC(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	w := enabledWarmup(10, 9, 17)

	// 08:00 local is 11:00 UTC.
	assert.True(t, w.Evaluate(0, time.Date(2026, 10, 16, 8, 0, 0, 0, saoPaulo)).Allowed)
	// 15:00 local is 18:00 UTC.
	d := w.Evaluate(0, time.Date(2026, 10, 16, 15, 0, 0, 0, saoPaulo))
	assert.False(t, d.Allowed)
	assert.Equal(t, WarmupReasonSendWindow, d.Reason)
}

// A window that wraps midnight is not supported: with start > end no hour
// satisfies start <= hour < end, so every send is denied.
func TestWarmupEvaluate_MidnightWrapDeniesEveryHour(t *testing.T) {
	w := enabledWarmup(100, 22, 6)

	for hour := 0; hour < 24; hour++ {
		d := w.Evaluate(0, at(hour))
		assert.False(t, d.Allowed, "hour %d", hour)
		assert.Equal(t, WarmupReasonSendWindow, d.Reason, "hour %d", hour)
	}
}

func TestWarmupEvaluate_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("disabled always allows", prop.ForAll(
		func(limit, sent, hour int) bool {
			w := &WarmupSettings{Enabled: false, CurrentDailyLimit: limit, SendWindowStart: 9, SendWindowEnd: 17}
			return w.Evaluate(sent, at(hour)).Allowed
		},
		gen.IntRange(0, 500),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 23),
	))

	properties.Property("at or over the limit denies regardless of window", prop.ForAll(
		func(limit, extra, hour, start int) bool {
			w := enabledWarmup(limit, start, start+1)
			d := w.Evaluate(limit+extra, at(hour))
			return !d.Allowed && d.Reason == WarmupReasonDailyLimit
		},
		gen.IntRange(0, 500),
		gen.IntRange(0, 500),
		gen.IntRange(0, 23),
		gen.IntRange(0, 22),
	))

	properties.Property("outside [start, end) denies regardless of count", prop.ForAll(
		func(start, length, hour, sent int) bool {
			end := start + length
			if end > 24 {
				end = 24
			}
			w := enabledWarmup(sent+1, start, end)
			d := w.Evaluate(sent, at(hour))
			inside := hour >= start && hour < end
			if inside {
				return d.Allowed
			}
			return !d.Allowed && d.Reason == WarmupReasonSendWindow
		},
		gen.IntRange(0, 23),
		gen.IntRange(0, 24),
		gen.IntRange(0, 23),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

func TestStartOfUTCDay(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	// 22:00 local on the 16th is 01:00 UTC on the 17th.
	now := time.Date(2026, 10, 16, 22, 0, 0, 0, saoPaulo)

	got := StartOfUTCDay(now)

	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), got)
	assert.False(t, now.Before(got))
}
