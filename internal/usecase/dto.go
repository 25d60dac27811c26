package usecase

import "github.com/xavierca1/leadmail/internal/entity"

type SendEmailInput struct {
	UserID  string `json:"-"`
	LeadID  string `json:"leadId"`
	ToEmail string `json:"toEmail"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

type SendEmailOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	LogID   string `json:"logId,omitempty"`
}

type TestSmtpInput struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name,omitempty"`
}

type TestSmtpOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionInput struct {
	Provider    string        `json:"provider"`
	Messages    []ChatMessage `json:"messages"`
	Model       string        `json:"model,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"maxTokens,omitempty"`
}

type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ChatCompletionOutput struct {
	Content string    `json:"content"`
	Usage   ChatUsage `json:"usage"`
}

type ListEmailLogsInput struct {
	UserID string
	Limit  int
}

type ListEmailLogsOutput struct {
	Logs []*entity.EmailLog `json:"logs"`
}
