package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/xavierca1/leadmail/internal/infra/integration/claude"
	"github.com/xavierca1/leadmail/internal/infra/integration/openai"
)

const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"

	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultClaudeModel = "claude-3-5-sonnet-20241022"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1000
)

// ChatCompletionUseCase proxies a chat to one provider and normalizes the
// reply. A nil client means its API key is not configured.
type ChatCompletionUseCase struct {
	OpenAI OpenAIClient
	Claude ClaudeClient
}

func NewChatCompletionUseCase(openAI OpenAIClient, claudeClient ClaudeClient) *ChatCompletionUseCase {
	return &ChatCompletionUseCase{
		OpenAI: openAI,
		Claude: claudeClient,
	}
}

func (uc *ChatCompletionUseCase) Execute(ctx context.Context, input ChatCompletionInput) (*ChatCompletionOutput, error) {
	provider := strings.ToLower(strings.TrimSpace(input.Provider))
	if provider != ProviderOpenAI && provider != ProviderClaude {
		return nil, &DomainError{
			Code:    CodeUnsupportedProvider,
			Message: fmt.Sprintf("Unsupported provider: %s", input.Provider),
		}
	}

	if errs := ValidateChatCompletionInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	temperature := DefaultTemperature
	if input.Temperature != nil {
		temperature = *input.Temperature
	}
	maxTokens := DefaultMaxTokens
	if input.MaxTokens != nil {
		maxTokens = *input.MaxTokens
	}

	if provider == ProviderOpenAI {
		return uc.completeOpenAI(ctx, input, temperature, maxTokens)
	}
	return uc.completeClaude(ctx, input, temperature, maxTokens)
}

func (uc *ChatCompletionUseCase) completeOpenAI(ctx context.Context, input ChatCompletionInput, temperature float64, maxTokens int) (*ChatCompletionOutput, error) {
	if uc.OpenAI == nil {
		return nil, configError("OpenAI API key not configured")
	}

	model := input.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	messages := make([]openai.Message, 0, len(input.Messages))
	for _, m := range input.Messages {
		messages = append(messages, openai.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := uc.OpenAI.CreateChatCompletion(ctx, openai.ChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, upstreamError(ProviderOpenAI, err)
	}

	var content string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}

	return &ChatCompletionOutput{
		Content: content,
		Usage: ChatUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func (uc *ChatCompletionUseCase) completeClaude(ctx context.Context, input ChatCompletionInput, temperature float64, maxTokens int) (*ChatCompletionOutput, error) {
	if uc.Claude == nil {
		return nil, configError("Claude API key not configured")
	}

	model := input.Model
	if model == "" {
		model = DefaultClaudeModel
	}

	// System turns move to the top-level field; the rest keep their order.
	var system []string
	messages := make([]claude.Message, 0, len(input.Messages))
	for _, m := range input.Messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		messages = append(messages, claude.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := uc.Claude.CreateMessage(ctx, claude.MessagesRequest{
		Model:       model,
		System:      strings.Join(system, "\n\n"),
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, upstreamError(ProviderClaude, err)
	}

	return &ChatCompletionOutput{
		Content: resp.Text(),
		Usage: ChatUsage{
			PromptTokens:     resp.Usage.InputTokens,
			CompletionTokens: resp.Usage.OutputTokens,
			TotalTokens:      resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}, nil
}

// upstreamError surfaces the provider's own message when it sent one.
func upstreamError(provider string, err error) error {
	log.Printf("❌ [LLM] %s falhou: %v", provider, err)

	msg := err.Error()
	var openaiErr *openai.APIError
	var claudeErr *claude.APIError
	switch {
	case errors.As(err, &openaiErr):
		msg = openaiErr.Message
	case errors.As(err, &claudeErr):
		msg = claudeErr.Message
	}

	return &DomainError{
		Code:    CodeUpstream,
		Message: fmt.Sprintf("%s API error: %s", provider, msg),
	}
}
