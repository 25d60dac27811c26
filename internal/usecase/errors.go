package usecase

import "errors"

const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeConfig              = "CONFIG_ERROR"
	CodeRateLimited         = "RATE_LIMITED"
	CodeUnsupportedProvider = "UNSUPPORTED_PROVIDER"
	CodeUpstream            = "UPSTREAM_ERROR"
	CodeDeliveryFailed      = "DELIVERY_FAILED"
	CodeDatabase            = "DATABASE_ERROR"
)

// DomainError is a failure the caller can act on. Its message is returned to
// the client verbatim.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError wraps an infrastructure failure (database, SMTP, provider).
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// ErrorCode extracts the code of a DomainError or TechnicalError, or "" for
// anything else.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	var te *TechnicalError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

func configError(msg string) error {
	return &DomainError{Code: CodeConfig, Message: msg}
}

func rateLimited(reason string) error {
	return &DomainError{Code: CodeRateLimited, Message: reason}
}

func deliveryFailed(err error) error {
	return &TechnicalError{Code: CodeDeliveryFailed, Message: "failed to send email: " + err.Error(), Err: err}
}

func databaseError(msg string, err error) error {
	return &TechnicalError{Code: CodeDatabase, Message: msg + ": " + err.Error(), Err: err}
}
