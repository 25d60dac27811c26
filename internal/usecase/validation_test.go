package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSendEmailInput(t *testing.T) {
	tests := []struct {
		name   string
		input  SendEmailInput
		fields []string
	}{
		{"valid", SendEmailInput{UserID: "u", ToEmail: "jane@example.com"}, nil},
		{"missing everything", SendEmailInput{}, []string{"user_id", "toEmail"}},
		{"invalid address", SendEmailInput{UserID: "u", ToEmail: "jane@"}, []string{"toEmail"}},
		{"display name form", SendEmailInput{UserID: "u", ToEmail: "Jane <jane@example.com>"}, []string{"toEmail"}},
		{"subject too long", SendEmailInput{UserID: "u", ToEmail: "jane@example.com", Subject: strings.Repeat("a", 999)}, []string{"subject"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSendEmailInput(tt.input)
			assert.Equal(t, tt.fields, fieldsOf(errs))
		})
	}
}

func TestValidateTestSmtpInput(t *testing.T) {
	assert.Empty(t, ValidateTestSmtpInput(smtpTestInput()))

	errs := ValidateTestSmtpInput(TestSmtpInput{Host: "h", Port: 70000, FromEmail: "bad"})
	assert.Equal(t, []string{"port", "from_email"}, fieldsOf(errs))
}

func TestValidateChatCompletionInput(t *testing.T) {
	hot := 2.5
	zero := 0

	errs := ValidateChatCompletionInput(ChatCompletionInput{
		Provider:    "openai",
		Messages:    []ChatMessage{{Role: RoleUser}, {Role: "bot"}},
		Temperature: &hot,
		MaxTokens:   &zero,
	})

	assert.Equal(t, []string{"messages[1].role", "temperature", "maxTokens"}, fieldsOf(errs))
	assert.Equal(t, []string{"messages"}, fieldsOf(ValidateChatCompletionInput(ChatCompletionInput{Provider: "claude"})))
}

func TestValidationFailedIsDomainError(t *testing.T) {
	err := validationFailed([]ValidationError{{"toEmail", "is required"}})

	var de *DomainError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, CodeValidation, de.Code)
	assert.Equal(t, "validation failed: toEmail (is required)", err.Error())
}

func fieldsOf(errs []ValidationError) []string {
	var fields []string
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}
