package worker

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/leadmail/internal/entity"
)

type WarmupRamper interface {
	RampDaily(ctx context.Context, day time.Time) ([]entity.WarmupRamp, error)
}

// WarmupRampWorker grows warmup limits once per UTC day. It ticks more often
// than daily so a restart never skips a day; repeated ticks are no-ops.
type WarmupRampWorker struct {
	repo         WarmupRamper
	tickInterval time.Duration
	now          func() time.Time

	// OnRamped, when set, receives the number of users raised by each pass.
	OnRamped func(n int)
}

func NewWarmupRampWorker(repo WarmupRamper, tickInterval time.Duration) *WarmupRampWorker {
	if tickInterval <= 0 {
		tickInterval = time.Hour
	}
	return &WarmupRampWorker{
		repo:         repo,
		tickInterval: tickInterval,
		now:          time.Now,
	}
}

func (w *WarmupRampWorker) Start(ctx context.Context) {
	log.Printf("🕒 Warmup Ramp Worker iniciado (intervalo %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Warmup Ramp Worker encerrado")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce applies today's ramp and returns how many users were raised.
func (w *WarmupRampWorker) RunOnce(ctx context.Context) int {
	ramps, err := w.repo.RampDaily(ctx, w.now().UTC())
	if err != nil {
		log.Printf("❌ Erro ao aplicar rampa de warmup: %v", err)
		return 0
	}

	for _, r := range ramps {
		log.Printf("📈 Warmup: user=%s novo limite diário=%d", r.UserID, r.CurrentDailyLimit)
	}
	if len(ramps) > 0 {
		log.Printf("✅ %d limite(s) de warmup atualizados", len(ramps))
		if w.OnRamped != nil {
			w.OnRamped(len(ramps))
		}
	}
	return len(ramps)
}
