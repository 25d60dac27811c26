package entity

import (
	"context"
	"sort"
	"strings"
	"time"
)

// Lead funnel statuses. The set is open: rows written by other tools may carry
// values outside this list and are left alone by every guarded transition.
const (
	LeadStatusNew       = "new"
	LeadStatusIntroSent = "intro_sent"
	LeadStatusSent      = "sent"
	LeadStatusOpened    = "opened"
	LeadStatusClicked   = "clicked"
	LeadStatusReplied   = "replied"
	LeadStatusMeeting   = "meeting"
	LeadStatusWon       = "won"
	LeadStatusLost      = "lost"
)

// TerminalLeadStatuses are never changed by engagement tracking.
var TerminalLeadStatuses = []string{
	LeadStatusReplied,
	LeadStatusMeeting,
	LeadStatusWon,
	LeadStatusLost,
}

// OpenableLeadStatuses are the only statuses an open event may advance.
var OpenableLeadStatuses = []string{
	LeadStatusSent,
	LeadStatusIntroSent,
}

var funnelRank = map[string]int{
	LeadStatusNew:       0,
	LeadStatusIntroSent: 1,
	LeadStatusSent:      1,
	LeadStatusOpened:    2,
	LeadStatusClicked:   3,
	LeadStatusReplied:   4,
	LeadStatusMeeting:   5,
	LeadStatusWon:       6,
	LeadStatusLost:      6,
}

type Lead struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Position    string    `json:"position,omitempty"`
	Requirement string    `json:"requirement,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FirstName is the first whitespace-delimited token of Name.
func (l *Lead) FirstName() string {
	fields := strings.Fields(l.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// FunnelRank orders statuses along the outreach funnel. Unknown statuses rank -1.
func FunnelRank(status string) int {
	rank, ok := funnelRank[strings.ToLower(strings.TrimSpace(status))]
	if !ok {
		return -1
	}
	return rank
}

// StatusesAbove lists, sorted, the known statuses ranked strictly above status.
func StatusesAbove(status string) []string {
	base := FunnelRank(status)
	var above []string
	for s, rank := range funnelRank {
		if rank > base {
			above = append(above, s)
		}
	}
	sort.Strings(above)
	return above
}

type LeadRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*Lead, error)
	// UpdateStatus overwrites the status with no guard.
	UpdateStatus(ctx context.Context, id, status string) error
	// TransitionStatus sets status only when the current one is in from.
	TransitionStatus(ctx context.Context, id, to string, from []string) (bool, error)
	// TransitionStatusUnless sets status only when the current one is not in blocked.
	TransitionStatusUnless(ctx context.Context, id, to string, blocked []string) (bool, error)
}
