package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/leadmail/internal/entity"
	"github.com/xavierca1/leadmail/internal/infra/integration/claude"
	"github.com/xavierca1/leadmail/internal/infra/integration/openai"
	"github.com/xavierca1/leadmail/internal/infra/mail"
	"github.com/xavierca1/leadmail/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadRepository) TransitionStatus(ctx context.Context, id, to string, from []string) (bool, error) {
	args := m.Called(ctx, id, to, from)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeadRepository) TransitionStatusUnless(ctx context.Context, id, to string, blocked []string) (bool, error) {
	args := m.Called(ctx, id, to, blocked)
	return args.Bool(0), args.Error(1)
}

// MockEmailLogRepository
type MockEmailLogRepository struct {
	mock.Mock
}

func (m *MockEmailLogRepository) Create(ctx context.Context, l *entity.EmailLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockEmailLogRepository) FindByID(ctx context.Context, id string) (*entity.EmailLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EmailLog), args.Error(1)
}

func (m *MockEmailLogRepository) CountSentSince(ctx context.Context, userID string, since time.Time) (int, error) {
	args := m.Called(ctx, userID, since)
	return args.Int(0), args.Error(1)
}

func (m *MockEmailLogRepository) MarkOpened(ctx context.Context, id string, at time.Time) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmailLogRepository) MarkClicked(ctx context.Context, id string, at time.Time) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmailLogRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.EmailLog, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.EmailLog), args.Error(1)
}

// MockSmtpSettingsRepository
type MockSmtpSettingsRepository struct {
	mock.Mock
}

func (m *MockSmtpSettingsRepository) FindByUserID(ctx context.Context, userID string) (*entity.SmtpSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SmtpSettings), args.Error(1)
}

// MockWarmupSettingsRepository
type MockWarmupSettingsRepository struct {
	mock.Mock
}

func (m *MockWarmupSettingsRepository) FindByUserID(ctx context.Context, userID string) (*entity.WarmupSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WarmupSettings), args.Error(1)
}

func (m *MockWarmupSettingsRepository) RampDaily(ctx context.Context, day time.Time) ([]entity.WarmupRamp, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.WarmupRamp), args.Error(1)
}

// MockEmailSender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, settings *entity.SmtpSettings, msg mail.Message) error {
	args := m.Called(ctx, settings, msg)
	return args.Error(0)
}

// MockEngagementPublisher
type MockEngagementPublisher struct {
	mock.Mock
}

func (m *MockEngagementPublisher) PublishEngagement(ctx context.Context, event queue.EngagementEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockOpenAIClient
type MockOpenAIClient struct {
	mock.Mock
}

func (m *MockOpenAIClient) CreateChatCompletion(ctx context.Context, input openai.ChatRequest) (*openai.ChatResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*openai.ChatResponse), args.Error(1)
}

// MockClaudeClient
type MockClaudeClient struct {
	mock.Mock
}

func (m *MockClaudeClient) CreateMessage(ctx context.Context, input claude.MessagesRequest) (*claude.MessagesResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*claude.MessagesResponse), args.Error(1)
}
