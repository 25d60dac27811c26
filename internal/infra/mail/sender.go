package mail

import (
	"context"
	"fmt"

	"github.com/xavierca1/leadmail/internal/entity"
	"gopkg.in/gomail.v2"
)

// Dialer opens one SMTP session. *gomail.Dialer satisfies it.
type Dialer interface {
	Dial() (gomail.SendCloser, error)
}

type DialerFactory func(host string, port int, username, password string, ssl bool) Dialer

type SMTPSender struct {
	newDialer DialerFactory
}

func NewSMTPSender() *SMTPSender {
	return &SMTPSender{newDialer: gomailDialer}
}

func NewSMTPSenderWithDialer(factory DialerFactory) *SMTPSender {
	return &SMTPSender{newDialer: factory}
}

func gomailDialer(host string, port int, username, password string, ssl bool) Dialer {
	d := gomail.NewDialer(host, port, username, password)
	d.SSL = ssl
	return d
}

// Send delivers msg in a session of its own. Implicit TLS is used only on
// port 465; other ports rely on STARTTLS negotiation by gomail. The session
// is closed on every path once it has been opened.
func (s *SMTPSender) Send(ctx context.Context, settings *entity.SmtpSettings, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d := s.newDialer(settings.Host, settings.Port, settings.Username, settings.Password, settings.UseSSL())

	sc, err := d.Dial()
	if err != nil {
		return fmt.Errorf("erro ao conectar no SMTP %s:%d: %w", settings.Host, settings.Port, err)
	}
	defer sc.Close()

	if err := gomail.Send(sc, buildMessage(msg)); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

func buildMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	if msg.FromName != "" {
		m.SetAddressHeader("From", msg.FromEmail, msg.FromName)
	} else {
		m.SetHeader("From", msg.FromEmail)
	}
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}
	return m
}
