package entity

import "context"

// SMTPSSLPort is the only port that selects implicit TLS.
const SMTPSSLPort = 465

type SmtpSettings struct {
	UserID    string `json:"user_id"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"-"`
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name"`
}

func (s *SmtpSettings) UseSSL() bool {
	return s.Port == SMTPSSLPort
}

// SenderName falls back to the from address when no display name is set.
func (s *SmtpSettings) SenderName() string {
	if s.FromName != "" {
		return s.FromName
	}
	return s.FromEmail
}

type SmtpSettingsRepositoryInterface interface {
	FindByUserID(ctx context.Context, userID string) (*SmtpSettings, error)
}
