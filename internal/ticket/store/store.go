// Package store persists admission tickets.
//
// Redeem is the contract that matters: given a meeting id and a code it
// must atomically flip exactly one matching unredeemed ticket to redeemed
// and return it. A missing ticket yields sentinel.ErrNotFound and a spent
// one sentinel.ErrAlreadyUsed; callers collapse both into a uniform
// credential failure so the API never reveals which case occurred.
package store

import (
	"context"

	"convene/internal/ticket/models"
	id "convene/pkg/domain"
)

type TicketStore interface {
	// CreateBatch stores a freshly issued batch of tickets.
	CreateBatch(ctx context.Context, tickets []*models.Ticket) error
	// FindByID returns a ticket regardless of redemption state.
	FindByID(ctx context.Context, ticketID id.TicketID) (*models.Ticket, error)
	// ListByMeeting returns every ticket of a meeting, oldest first.
	ListByMeeting(ctx context.Context, meetingID id.MeetingID) ([]*models.Ticket, error)
	// Redeem performs the one-time compare-and-swap described above.
	Redeem(ctx context.Context, meetingID id.MeetingID, code string) (*models.Ticket, error)
}
