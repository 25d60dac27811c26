package usecase

import (
	"context"

	"github.com/xavierca1/leadmail/internal/entity"
)

const (
	DefaultEmailLogLimit = 50
	MaxEmailLogLimit     = 200
)

type ListEmailLogsUseCase struct {
	LogRepo entity.EmailLogRepositoryInterface
}

func NewListEmailLogsUseCase(logRepo entity.EmailLogRepositoryInterface) *ListEmailLogsUseCase {
	return &ListEmailLogsUseCase{LogRepo: logRepo}
}

// Execute returns the newest logs first. Out-of-range limits are clamped.
func (uc *ListEmailLogsUseCase) Execute(ctx context.Context, input ListEmailLogsInput) (*ListEmailLogsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultEmailLogLimit
	}
	if limit > MaxEmailLogLimit {
		limit = MaxEmailLogLimit
	}

	logs, err := uc.LogRepo.ListByUser(ctx, input.UserID, limit)
	if err != nil {
		return nil, databaseError("failed to list email logs", err)
	}
	if logs == nil {
		logs = []*entity.EmailLog{}
	}

	return &ListEmailLogsOutput{Logs: logs}, nil
}
