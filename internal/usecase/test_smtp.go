package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/leadmail/internal/entity"
	"github.com/xavierca1/leadmail/internal/infra/mail"
)

const testSmtpBody = "This is a test email confirming your SMTP settings work."

// TestSmtpUseCase checks unsaved credentials by sending one message to the
// from address.
type TestSmtpUseCase struct {
	Sender EmailSender
}

func NewTestSmtpUseCase(sender EmailSender) *TestSmtpUseCase {
	return &TestSmtpUseCase{Sender: sender}
}

func (uc *TestSmtpUseCase) Execute(ctx context.Context, input TestSmtpInput) (*TestSmtpOutput, error) {
	if errs := ValidateTestSmtpInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	settings := &entity.SmtpSettings{
		Host:      input.Host,
		Port:      input.Port,
		Username:  input.Username,
		Password:  input.Password,
		FromEmail: input.FromEmail,
		FromName:  input.FromName,
	}

	msg := mail.Message{
		FromEmail: settings.FromEmail,
		FromName:  settings.FromName,
		To:        settings.FromEmail,
		Subject:   "SMTP Test",
		TextBody:  testSmtpBody,
		HTMLBody:  "<p>" + testSmtpBody + "</p>",
	}

	if err := uc.Sender.Send(ctx, settings, msg); err != nil {
		log.Printf("❌ [SMTP-TEST] %s:%d falhou: %v", input.Host, input.Port, err)
		return nil, deliveryFailed(err)
	}

	return &TestSmtpOutput{
		Success: true,
		Message: "SMTP connection successful",
	}, nil
}
