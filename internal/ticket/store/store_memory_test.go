package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"convene/internal/ticket/models"
	id "convene/pkg/domain"
	"convene/pkg/platform/sentinel"
	"convene/pkg/requestcontext"
)

func newTestTicket(t *testing.T, meetingID id.MeetingID, code string) *models.Ticket {
	t.Helper()
	ticket, err := models.NewTicket(id.TicketID(uuid.New()), meetingID, code, time.Now())
	require.NoError(t, err)
	return ticket
}

func TestInMemory_CreateBatch(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	meetingID := id.MeetingID(uuid.New())

	t.Run("stores a batch", func(t *testing.T) {
		batch := []*models.Ticket{
			newTestTicket(t, meetingID, "AAAAAAAAAAAA"),
			newTestTicket(t, meetingID, "BBBBBBBBBBBB"),
		}
		require.NoError(t, store.CreateBatch(ctx, batch))

		tickets, err := store.ListByMeeting(ctx, meetingID)
		require.NoError(t, err)
		assert.Len(t, tickets, 2)
	})

	t.Run("rejects duplicate code within a meeting", func(t *testing.T) {
		dup := newTestTicket(t, meetingID, "AAAAAAAAAAAA")
		err := store.CreateBatch(ctx, []*models.Ticket{dup})
		require.ErrorIs(t, err, sentinel.ErrConflict)
	})

	t.Run("same code under another meeting is fine", func(t *testing.T) {
		other := newTestTicket(t, id.MeetingID(uuid.New()), "AAAAAAAAAAAA")
		require.NoError(t, store.CreateBatch(ctx, []*models.Ticket{other}))
	})
}

func TestInMemory_Redeem(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)
	meetingID := id.MeetingID(uuid.New())

	t.Run("first redemption wins", func(t *testing.T) {
		store := NewInMemory()
		ticket := newTestTicket(t, meetingID, "CCCCCCCCCCCC")
		require.NoError(t, store.CreateBatch(ctx, []*models.Ticket{ticket}))

		redeemed, err := store.Redeem(ctx, meetingID, "CCCCCCCCCCCC")
		require.NoError(t, err)
		assert.True(t, redeemed.Redeemed)
		require.NotNil(t, redeemed.RedeemedAt)
		assert.Equal(t, now, *redeemed.RedeemedAt)
	})

	t.Run("second redemption fails", func(t *testing.T) {
		store := NewInMemory()
		ticket := newTestTicket(t, meetingID, "CCCCCCCCCCCC")
		require.NoError(t, store.CreateBatch(ctx, []*models.Ticket{ticket}))

		_, err := store.Redeem(ctx, meetingID, "CCCCCCCCCCCC")
		require.NoError(t, err)
		_, err = store.Redeem(ctx, meetingID, "CCCCCCCCCCCC")
		require.ErrorIs(t, err, sentinel.ErrAlreadyUsed)
	})

	t.Run("unknown code", func(t *testing.T) {
		store := NewInMemory()
		_, err := store.Redeem(ctx, meetingID, "NOPENOPENOPE")
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("valid code against the wrong meeting", func(t *testing.T) {
		store := NewInMemory()
		ticket := newTestTicket(t, meetingID, "CCCCCCCCCCCC")
		require.NoError(t, store.CreateBatch(ctx, []*models.Ticket{ticket}))

		_, err := store.Redeem(ctx, id.MeetingID(uuid.New()), "CCCCCCCCCCCC")
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}

// TestInMemory_Redeem_ConcurrentSingleWinner drives many goroutines at one
// code and requires exactly one of them to succeed.
func TestInMemory_Redeem_ConcurrentSingleWinner(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	meetingID := id.MeetingID(uuid.New())
	ticket := newTestTicket(t, meetingID, "DDDDDDDDDDDD")
	require.NoError(t, store.CreateBatch(ctx, []*models.Ticket{ticket}))

	const attempts = 64
	var (
		wg      sync.WaitGroup
		winners int64
		mu      sync.Mutex
	)
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := store.Redeem(ctx, meetingID, "DDDDDDDDDDDD"); err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, winners)
}
