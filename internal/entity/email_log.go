package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	EmailStatusSent    = "sent"
	EmailStatusOpened  = "opened"
	EmailStatusClicked = "clicked"
)

var ErrNotFound = errors.New("registro não encontrado")

// EmailLog is one delivered message. OpenedAt and ClickedAt are write-once.
type EmailLog struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	LeadID    *string    `json:"lead_id,omitempty"`
	ToEmail   string     `json:"to_email"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Status    string     `json:"status"`
	SentAt    time.Time  `json:"sent_at"`
	OpenedAt  *time.Time `json:"opened_at,omitempty"`
	ClickedAt *time.Time `json:"clicked_at,omitempty"`
}

// NewEmailLogID returns the identifier embedded in tracking links before the
// row itself exists.
func NewEmailLogID() string {
	return uuid.New().String()
}

func NewEmailLog(id, userID, leadID, to, subject, body string, sentAt time.Time) *EmailLog {
	if id == "" {
		id = NewEmailLogID()
	}
	log := &EmailLog{
		ID:      id,
		UserID:  userID,
		ToEmail: to,
		Subject: subject,
		Body:    body,
		Status:  EmailStatusSent,
		SentAt:  sentAt,
	}
	if leadID != "" {
		log.LeadID = &leadID
	}
	return log
}

type EmailLogRepositoryInterface interface {
	Create(ctx context.Context, log *EmailLog) error
	FindByID(ctx context.Context, id string) (*EmailLog, error)
	CountSentSince(ctx context.Context, userID string, since time.Time) (int, error)
	// MarkOpened sets opened_at only while it is still null; false means an
	// earlier open already won.
	MarkOpened(ctx context.Context, id string, at time.Time) (bool, error)
	// MarkClicked is the click counterpart of MarkOpened.
	MarkClicked(ctx context.Context, id string, at time.Time) (bool, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*EmailLog, error)
}
