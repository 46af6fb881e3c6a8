package store

import (
	"context"
	"sort"
	"sync"

	"convene/internal/ticket/models"
	id "convene/pkg/domain"
	"convene/pkg/platform/sentinel"
	"convene/pkg/requestcontext"
)

// InMemory keeps tickets in a map guarded by one mutex. Redeem holds the
// write lock across lookup and flip, which is the whole CAS.
type InMemory struct {
	mu      sync.RWMutex
	tickets map[id.TicketID]models.Ticket
	// byCode indexes meeting+code pairs for O(1) redemption lookups.
	byCode map[codeKey]id.TicketID
}

type codeKey struct {
	meetingID id.MeetingID
	code      string
}

func NewInMemory() *InMemory {
	return &InMemory{
		tickets: make(map[id.TicketID]models.Ticket),
		byCode:  make(map[codeKey]id.TicketID),
	}
}

func (s *InMemory) CreateBatch(_ context.Context, tickets []*models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tickets {
		key := codeKey{meetingID: t.MeetingID, code: t.Code}
		if _, exists := s.byCode[key]; exists {
			return sentinel.ErrConflict
		}
	}
	for _, t := range tickets {
		s.tickets[t.ID] = *t
		s.byCode[codeKey{meetingID: t.MeetingID, code: t.Code}] = t.ID
	}
	return nil
}

func (s *InMemory) FindByID(_ context.Context, ticketID id.TicketID) (*models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tickets[ticketID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &t, nil
}

func (s *InMemory) ListByMeeting(_ context.Context, meetingID id.MeetingID) ([]*models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Ticket
	for _, t := range s.tickets {
		if t.MeetingID == meetingID {
			t := t
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *InMemory) Redeem(ctx context.Context, meetingID id.MeetingID, code string) (*models.Ticket, error) {
	now := requestcontext.Now(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	ticketID, ok := s.byCode[codeKey{meetingID: meetingID, code: code}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	t := s.tickets[ticketID]
	if err := t.ValidateForRedeem(); err != nil {
		return nil, err
	}
	t.MarkRedeemed(now)
	s.tickets[ticketID] = t
	return &t, nil
}
