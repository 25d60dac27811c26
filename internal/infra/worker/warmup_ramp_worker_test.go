package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/leadmail/internal/entity"
)

type fakeRamper struct {
	days  []time.Time
	ramps []entity.WarmupRamp
	err   error
}

func (f *fakeRamper) RampDaily(_ context.Context, day time.Time) ([]entity.WarmupRamp, error) {
	f.days = append(f.days, day)
	return f.ramps, f.err
}

func TestWarmupRampWorker_RunOnceReportsRamps(t *testing.T) {
	repo := &fakeRamper{ramps: []entity.WarmupRamp{{UserID: "u1", CurrentDailyLimit: 15}, {UserID: "u2", CurrentDailyLimit: 50}}}
	w := NewWarmupRampWorker(repo, time.Minute)
	local := time.FixedZone("BRT", -3*60*60)
	w.now = func() time.Time { return time.Date(2026, 10, 16, 22, 0, 0, 0, local) }

	var reported int
	w.OnRamped = func(n int) { reported = n }

	n := w.RunOnce(context.Background())

	assert.Equal(t, 2, n)
	assert.Equal(t, 2, reported)
	assert.Len(t, repo.days, 1)
	assert.Equal(t, time.UTC, repo.days[0].Location())
	assert.Equal(t, 17, repo.days[0].Day())
}

func TestWarmupRampWorker_NothingToRamp(t *testing.T) {
	w := NewWarmupRampWorker(&fakeRamper{}, time.Minute)
	called := false
	w.OnRamped = func(int) { called = true }

	assert.Equal(t, 0, w.RunOnce(context.Background()))
	assert.False(t, called)
}

func TestWarmupRampWorker_RepositoryError(t *testing.T) {
	w := NewWarmupRampWorker(&fakeRamper{err: errors.New("db down")}, time.Minute)

	assert.Equal(t, 0, w.RunOnce(context.Background()))
}

func TestWarmupRampWorker_DefaultInterval(t *testing.T) {
	assert.Equal(t, time.Hour, NewWarmupRampWorker(&fakeRamper{}, 0).tickInterval)
}

func TestWarmupRampWorker_StartRunsImmediatelyAndStops(t *testing.T) {
	repo := &fakeRamper{}
	w := NewWarmupRampWorker(repo, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
		}
		cancel()
		return false
	}, time.Second, 10*time.Millisecond)
	assert.Len(t, repo.days, 1)
}
