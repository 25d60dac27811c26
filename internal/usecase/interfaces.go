package usecase

import (
	"context"

	"github.com/xavierca1/leadmail/internal/entity"
	"github.com/xavierca1/leadmail/internal/infra/integration/claude"
	"github.com/xavierca1/leadmail/internal/infra/integration/openai"
	"github.com/xavierca1/leadmail/internal/infra/mail"
	"github.com/xavierca1/leadmail/internal/infra/queue"
)

// EmailSender delivers one message over a fresh SMTP session.
type EmailSender interface {
	Send(ctx context.Context, settings *entity.SmtpSettings, msg mail.Message) error
}

type EngagementPublisher interface {
	PublishEngagement(ctx context.Context, event queue.EngagementEvent) error
}

type OpenAIClient interface {
	CreateChatCompletion(ctx context.Context, input openai.ChatRequest) (*openai.ChatResponse, error)
}

type ClaudeClient interface {
	CreateMessage(ctx context.Context, input claude.MessagesRequest) (*claude.MessagesResponse, error)
}
