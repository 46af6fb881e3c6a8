// Package models holds the admission ticket record.
package models

import (
	"strings"
	"time"

	id "convene/pkg/domain"
	dErrors "convene/pkg/domain-errors"
	"convene/pkg/platform/sentinel"
)

const codeLength = 12

// Ticket is a single-use admission credential scoped to one meeting.
// Redeemed flips exactly once; the stores enforce that atomically.
type Ticket struct {
	ID         id.TicketID  `json:"id"`
	MeetingID  id.MeetingID `json:"meeting_id"`
	Code       string       `json:"code"`
	Redeemed   bool         `json:"redeemed"`
	RedeemedAt *time.Time   `json:"redeemed_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// NewTicket builds an unredeemed ticket.
func NewTicket(ticketID id.TicketID, meetingID id.MeetingID, code string, now time.Time) (*Ticket, error) {
	if meetingID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "meeting id is required")
	}
	if len(code) != codeLength {
		return nil, dErrors.New(dErrors.CodeValidation, "ticket code has wrong length")
	}
	return &Ticket{
		ID:        ticketID,
		MeetingID: meetingID,
		Code:      code,
		CreatedAt: now.UTC(),
	}, nil
}

// NormalizeCode canonicalises a submitted code before lookup. Codes are
// issued uppercase; attendees retype them from paper.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateForRedeem reports whether the ticket may still be redeemed.
func (t *Ticket) ValidateForRedeem() error {
	if t.Redeemed {
		return sentinel.ErrAlreadyUsed
	}
	return nil
}

// MarkRedeemed flips the ticket to its spent state.
func (t *Ticket) MarkRedeemed(now time.Time) {
	redeemedAt := now.UTC()
	t.Redeemed = true
	t.RedeemedAt = &redeemedAt
}
