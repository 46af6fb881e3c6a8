package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"convene/internal/ticket/models"
	id "convene/pkg/domain"
	"convene/pkg/platform/sentinel"
	"convene/pkg/requestcontext"
)

// Redis keeps tickets as JSON values with a per-meeting code index. The
// one-time redemption is a SET NX on a marker key: exactly one concurrent
// redeemer can create the marker, everyone else gets ErrAlreadyUsed.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis builds a ticket store over an established redis client. Tickets
// and markers share ttl so a meeting's credentials age out together; zero
// means no expiry.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func ticketKey(ticketID id.TicketID) string {
	return fmt.Sprintf("ticket:%s", ticketID)
}

func codeIndexKey(meetingID id.MeetingID, code string) string {
	return fmt.Sprintf("ticket:code:%s:%s", meetingID, code)
}

func meetingIndexKey(meetingID id.MeetingID) string {
	return fmt.Sprintf("ticket:meeting:%s", meetingID)
}

func redeemedMarkerKey(meetingID id.MeetingID, code string) string {
	return fmt.Sprintf("ticket:redeemed:%s:%s", meetingID, code)
}

func (s *Redis) CreateBatch(ctx context.Context, tickets []*models.Ticket) error {
	for _, t := range tickets {
		exists, err := s.client.Exists(ctx, codeIndexKey(t.MeetingID, t.Code)).Result()
		if err != nil {
			return err
		}
		if exists > 0 {
			return sentinel.ErrConflict
		}
	}

	pipe := s.client.TxPipeline()
	for _, t := range tickets {
		payload, err := json.Marshal(t)
		if err != nil {
			return err
		}
		pipe.Set(ctx, ticketKey(t.ID), payload, s.ttl)
		pipe.Set(ctx, codeIndexKey(t.MeetingID, t.Code), t.ID.String(), s.ttl)
		pipe.SAdd(ctx, meetingIndexKey(t.MeetingID), t.ID.String())
		if s.ttl > 0 {
			pipe.Expire(ctx, meetingIndexKey(t.MeetingID), s.ttl)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Redis) FindByID(ctx context.Context, ticketID id.TicketID) (*models.Ticket, error) {
	payload, err := s.client.Get(ctx, ticketKey(ticketID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var t models.Ticket
	if err := json.Unmarshal(payload, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Redis) ListByMeeting(ctx context.Context, meetingID id.MeetingID) ([]*models.Ticket, error) {
	ids, err := s.client.SMembers(ctx, meetingIndexKey(meetingID)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]*models.Ticket, 0, len(ids))
	for _, raw := range ids {
		ticketID, err := id.ParseTicketID(raw)
		if err != nil {
			continue
		}
		t, err := s.FindByID(ctx, ticketID)
		if errors.Is(err, sentinel.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *Redis) Redeem(ctx context.Context, meetingID id.MeetingID, code string) (*models.Ticket, error) {
	now := requestcontext.Now(ctx)

	rawID, err := s.client.Get(ctx, codeIndexKey(meetingID, code)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	ticketID, err := id.ParseTicketID(rawID)
	if err != nil {
		return nil, sentinel.ErrNotFound
	}

	// The marker write is the atomic step. Losing the race means someone
	// else redeemed this code first.
	won, err := s.client.SetNX(ctx, redeemedMarkerKey(meetingID, code), now.UTC().Format(time.RFC3339Nano), s.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, sentinel.ErrAlreadyUsed
	}

	t, err := s.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	t.MarkRedeemed(now)
	payload, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, ticketKey(t.ID), payload, s.ttl).Err(); err != nil {
		return nil, err
	}
	return t, nil
}
