package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/xavierca1/leadmail/internal/entity"
	"github.com/xavierca1/leadmail/internal/infra/queue"
)

// TrackEngagementUseCase records opens and clicks. Each write is a single
// conditional UPDATE, so concurrent duplicates cannot overwrite the first
// timestamp or move a lead backwards.
type TrackEngagementUseCase struct {
	LogRepo   entity.EmailLogRepositoryInterface
	LeadRepo  entity.LeadRepositoryInterface
	Publisher EngagementPublisher
	Now       func() time.Time
}

func NewTrackEngagementUseCase(
	logRepo entity.EmailLogRepositoryInterface,
	leadRepo entity.LeadRepositoryInterface,
	publisher EngagementPublisher,
) *TrackEngagementUseCase {
	return &TrackEngagementUseCase{
		LogRepo:   logRepo,
		LeadRepo:  leadRepo,
		Publisher: publisher,
		Now:       time.Now,
	}
}

// RecordOpen is a no-op for unknown ids and for repeated opens.
func (uc *TrackEngagementUseCase) RecordOpen(ctx context.Context, logID string) error {
	emailLog, err := uc.resolve(ctx, logID)
	if err != nil || emailLog == nil {
		return err
	}

	now := uc.now()
	var errs []error

	updated, err := uc.LogRepo.MarkOpened(ctx, emailLog.ID, now)
	if err != nil {
		errs = append(errs, err)
	}

	if emailLog.LeadID != nil {
		if _, err := uc.LeadRepo.TransitionStatus(ctx, *emailLog.LeadID, entity.LeadStatusOpened, entity.OpenableLeadStatuses); err != nil {
			errs = append(errs, err)
		}
	}

	if updated {
		log.Printf("👀 [TRACK] primeira abertura do email %s", emailLog.ID)
		uc.publish(ctx, queue.EventOpened, emailLog, now)
	}

	return errors.Join(errs...)
}

// RecordClick mirrors RecordOpen for clicked_at. Leads in a terminal status
// are never touched.
func (uc *TrackEngagementUseCase) RecordClick(ctx context.Context, logID string) error {
	emailLog, err := uc.resolve(ctx, logID)
	if err != nil || emailLog == nil {
		return err
	}

	now := uc.now()
	var errs []error

	updated, err := uc.LogRepo.MarkClicked(ctx, emailLog.ID, now)
	if err != nil {
		errs = append(errs, err)
	}

	if emailLog.LeadID != nil {
		if _, err := uc.LeadRepo.TransitionStatusUnless(ctx, *emailLog.LeadID, entity.LeadStatusClicked, entity.TerminalLeadStatuses); err != nil {
			errs = append(errs, err)
		}
	}

	if updated {
		log.Printf("🖱️ [TRACK] primeiro clique no email %s", emailLog.ID)
		uc.publish(ctx, queue.EventClicked, emailLog, now)
	}

	return errors.Join(errs...)
}

func (uc *TrackEngagementUseCase) resolve(ctx context.Context, logID string) (*entity.EmailLog, error) {
	if logID == "" {
		return nil, nil
	}
	emailLog, err := uc.LogRepo.FindByID(ctx, logID)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return emailLog, nil
}

func (uc *TrackEngagementUseCase) publish(ctx context.Context, eventType string, emailLog *entity.EmailLog, at time.Time) {
	if uc.Publisher == nil {
		return
	}
	event := queue.EngagementEvent{
		Type:       eventType,
		LogID:      emailLog.ID,
		UserID:     emailLog.UserID,
		OccurredAt: at.UTC(),
	}
	if emailLog.LeadID != nil {
		event.LeadID = *emailLog.LeadID
	}
	if err := uc.Publisher.PublishEngagement(ctx, event); err != nil {
		log.Printf("⚠️ [TRACK] falha ao publicar evento %s do email %s: %v", eventType, emailLog.ID, err)
	}
}

func (uc *TrackEngagementUseCase) now() time.Time {
	if uc.Now == nil {
		return time.Now()
	}
	return uc.Now()
}
