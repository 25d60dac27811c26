package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateSendEmailInput(input SendEmailInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.UserID) == "" {
		errors = append(errors, ValidationError{"user_id", "is required"})
	}

	if strings.TrimSpace(input.ToEmail) == "" {
		errors = append(errors, ValidationError{"toEmail", "is required"})
	} else if !isValidEmail(input.ToEmail) {
		errors = append(errors, ValidationError{"toEmail", "is invalid"})
	}

	if len(input.Subject) > 998 {
		errors = append(errors, ValidationError{"subject", "must not exceed 998 characters"})
	}

	return errors
}

func ValidateTestSmtpInput(input TestSmtpInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Host) == "" {
		errors = append(errors, ValidationError{"host", "is required"})
	}

	if input.Port <= 0 || input.Port > 65535 {
		errors = append(errors, ValidationError{"port", "must be between 1 and 65535"})
	}

	if strings.TrimSpace(input.FromEmail) == "" {
		errors = append(errors, ValidationError{"from_email", "is required"})
	} else if !isValidEmail(input.FromEmail) {
		errors = append(errors, ValidationError{"from_email", "is invalid"})
	}

	return errors
}

func ValidateChatCompletionInput(input ChatCompletionInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Provider) == "" {
		errors = append(errors, ValidationError{"provider", "is required"})
	}

	if len(input.Messages) == 0 {
		errors = append(errors, ValidationError{"messages", "must not be empty"})
	}
	for i, m := range input.Messages {
		switch m.Role {
		case RoleSystem, RoleUser, RoleAssistant:
		default:
			errors = append(errors, ValidationError{fmt.Sprintf("messages[%d].role", i), "must be system, user or assistant"})
		}
	}

	if input.Temperature != nil && (*input.Temperature < 0 || *input.Temperature > 2) {
		errors = append(errors, ValidationError{"temperature", "must be between 0 and 2"})
	}

	if input.MaxTokens != nil && *input.MaxTokens <= 0 {
		errors = append(errors, ValidationError{"maxTokens", "must be positive"})
	}

	return errors
}

func isValidEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return false
	}
	// Reject display-name forms like "Jane <jane@x.com>".
	return parsed.Address == strings.TrimSpace(addr)
}

// validationFailed folds a list of field errors into one VALIDATION_ERROR.
func validationFailed(errs []ValidationError) error {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
	}
}
