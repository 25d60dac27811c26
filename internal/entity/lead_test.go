package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFunnelRank(t *testing.T) {
	assert.Equal(t, 0, FunnelRank(LeadStatusNew))
	assert.Equal(t, FunnelRank(LeadStatusSent), FunnelRank(LeadStatusIntroSent))
	assert.Less(t, FunnelRank(LeadStatusSent), FunnelRank(LeadStatusOpened))
	assert.Less(t, FunnelRank(LeadStatusOpened), FunnelRank(LeadStatusClicked))
	assert.Less(t, FunnelRank(LeadStatusClicked), FunnelRank(LeadStatusReplied))
	assert.Less(t, FunnelRank(LeadStatusReplied), FunnelRank(LeadStatusMeeting))
	assert.Equal(t, FunnelRank(LeadStatusWon), FunnelRank(LeadStatusLost))
	assert.Equal(t, 2, FunnelRank(" Opened "))
	assert.Equal(t, -1, FunnelRank("archived"))
}

func TestStatusesAbove(t *testing.T) {
	assert.Equal(t,
		[]string{LeadStatusClicked, LeadStatusLost, LeadStatusMeeting, LeadStatusOpened, LeadStatusReplied, LeadStatusWon},
		StatusesAbove(LeadStatusSent),
	)
	assert.Empty(t, StatusesAbove(LeadStatusWon))
}

func TestLeadFirstName(t *testing.T) {
	assert.Equal(t, "Jane", (&Lead{Name: "Jane Doe"}).FirstName())
	assert.Equal(t, "Jane", (&Lead{Name: "  Jane\tMary Doe "}).FirstName())
	assert.Equal(t, "", (&Lead{Name: "   "}).FirstName())
}

func TestNewEmailLog(t *testing.T) {
	sentAt := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	withLead := NewEmailLog("log-1", "user-1", "lead-1", "jane@example.com", "Hi", "Body", sentAt)
	assert.Equal(t, "log-1", withLead.ID)
	assert.Equal(t, EmailStatusSent, withLead.Status)
	if assert.NotNil(t, withLead.LeadID) {
		assert.Equal(t, "lead-1", *withLead.LeadID)
	}
	assert.Nil(t, withLead.OpenedAt)
	assert.Nil(t, withLead.ClickedAt)

	withoutLead := NewEmailLog("", "user-1", "", "jane@example.com", "Hi", "Body", sentAt)
	assert.NotEmpty(t, withoutLead.ID)
	assert.Nil(t, withoutLead.LeadID)
}

func TestSmtpSettings(t *testing.T) {
	s := &SmtpSettings{Host: "smtp.example.com", Port: 465, FromEmail: "me@example.com"}
	assert.True(t, s.UseSSL())
	assert.Equal(t, "me@example.com", s.SenderName())

	s.Port = 587
	s.FromName = "Me"
	assert.False(t, s.UseSSL())
	assert.Equal(t, "Me", s.SenderName())
}
