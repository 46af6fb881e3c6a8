package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	meetingmodels "convene/internal/meeting/models"
	"convene/internal/sessiontoken"
	"convene/internal/ticket/models"
	"convene/internal/ticket/service"
	"convene/internal/ticket/service/mocks"
	id "convene/pkg/domain"
	dErrors "convene/pkg/domain-errors"
	"convene/pkg/platform/sentinel"
	"convene/pkg/requestcontext"
)

type fixture struct {
	tickets  *mocks.MockTicketStore
	meetings *mocks.MockMeetingLookup
	sessions *sessiontoken.Service
	svc      *service.Service
	ctx      context.Context
	now      time.Time
}

// newFixture pins the request time so issuance is deterministic within a run.
// The pin is anchored to the wall clock, not a fixed date: Validate checks
// token expiry against real time, so a token minted at a frozen past instant
// would be dead on arrival.
func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		tickets:  mocks.NewMockTicketStore(ctrl),
		meetings: mocks.NewMockMeetingLookup(ctrl),
		sessions: sessiontoken.New("test-signing-key", 2*time.Hour),
		now:      time.Now().UTC(),
	}
	f.svc = service.New(f.tickets, f.meetings, f.sessions)
	f.ctx = requestcontext.WithTime(context.Background(), f.now)
	return f
}

func openMeeting() *meetingmodels.Meeting {
	return &meetingmodels.Meeting{
		ID:     id.MeetingID(uuid.New()),
		Status: meetingmodels.MeetingStatusInProgress,
	}
}

func TestIssueTickets(t *testing.T) {
	t.Run("issues a batch with distinct codes", func(t *testing.T) {
		f := newFixture(t)
		meeting := openMeeting()
		f.meetings.EXPECT().FindByID(gomock.Any(), meeting.ID).Return(meeting, nil)

		var stored []*models.Ticket
		f.tickets.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, batch []*models.Ticket) error {
				stored = batch
				return nil
			})

		tickets, err := f.svc.IssueTickets(f.ctx, meeting.ID, 5)
		require.NoError(t, err)
		require.Len(t, tickets, 5)
		require.Len(t, stored, 5)

		seen := make(map[string]bool)
		for _, ticket := range tickets {
			assert.Equal(t, meeting.ID, ticket.MeetingID)
			assert.False(t, ticket.Redeemed)
			assert.Len(t, ticket.Code, 12)
			assert.False(t, seen[ticket.Code], "codes must be unique")
			seen[ticket.Code] = true
		}
	})

	t.Run("rejects non-positive count", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.IssueTickets(f.ctx, id.MeetingID(uuid.New()), 0)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects oversized batch", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.IssueTickets(f.ctx, id.MeetingID(uuid.New()), 100000)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("unknown meeting", func(t *testing.T) {
		f := newFixture(t)
		meetingID := id.MeetingID(uuid.New())
		f.meetings.EXPECT().FindByID(gomock.Any(), meetingID).Return(nil, sentinel.ErrNotFound)

		_, err := f.svc.IssueTickets(f.ctx, meetingID, 3)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("finished meeting rejects issuance", func(t *testing.T) {
		f := newFixture(t)
		meeting := &meetingmodels.Meeting{ID: id.MeetingID(uuid.New()), Status: meetingmodels.MeetingStatusFinished}
		f.meetings.EXPECT().FindByID(gomock.Any(), meeting.ID).Return(meeting, nil)

		_, err := f.svc.IssueTickets(f.ctx, meeting.ID, 3)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidState))
	})
}

func TestRedeemTicket(t *testing.T) {
	t.Run("successful redemption issues a scoped session", func(t *testing.T) {
		f := newFixture(t)
		meetingID := id.MeetingID(uuid.New())
		ticketID := id.TicketID(uuid.New())
		f.tickets.EXPECT().Redeem(gomock.Any(), meetingID, "AAAAAAAAAAAA").
			Return(&models.Ticket{ID: ticketID, MeetingID: meetingID, Code: "AAAAAAAAAAAA", Redeemed: true}, nil)

		session, err := f.svc.RedeemTicket(f.ctx, meetingID, "AAAAAAAAAAAA")
		require.NoError(t, err)
		assert.Equal(t, meetingID, session.MeetingID)
		assert.Equal(t, ticketID, session.TicketID)
		assert.Equal(t, f.now.Add(2*time.Hour), session.ExpiresAt)

		validated, err := f.sessions.Validate(session.Token, meetingID)
		require.NoError(t, err)
		assert.Equal(t, ticketID, validated.TicketID)
	})

	t.Run("normalises the submitted code", func(t *testing.T) {
		f := newFixture(t)
		meetingID := id.MeetingID(uuid.New())
		f.tickets.EXPECT().Redeem(gomock.Any(), meetingID, "AAAAAAAAAAAA").
			Return(&models.Ticket{ID: id.TicketID(uuid.New()), MeetingID: meetingID, Redeemed: true}, nil)

		_, err := f.svc.RedeemTicket(f.ctx, meetingID, "  aaaaaaaaaaaa  ")
		require.NoError(t, err)
	})

	// The failure reason must be indistinguishable to the caller in every
	// rejection case.
	t.Run("uniform failures", func(t *testing.T) {
		cases := []struct {
			name     string
			storeErr error
		}{
			{"unknown code", sentinel.ErrNotFound},
			{"already redeemed", sentinel.ErrAlreadyUsed},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				meetingID := id.MeetingID(uuid.New())
				f.tickets.EXPECT().Redeem(gomock.Any(), meetingID, gomock.Any()).Return(nil, tc.storeErr)

				_, err := f.svc.RedeemTicket(f.ctx, meetingID, "AAAAAAAAAAAA")
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidCredential))
			})
		}
	})

	t.Run("blank code fails without a store call", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.RedeemTicket(f.ctx, id.MeetingID(uuid.New()), "   ")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidCredential))
	})

	t.Run("infrastructure failure stays internal", func(t *testing.T) {
		f := newFixture(t)
		meetingID := id.MeetingID(uuid.New())
		f.tickets.EXPECT().Redeem(gomock.Any(), meetingID, gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := f.svc.RedeemTicket(f.ctx, meetingID, "AAAAAAAAAAAA")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
		assert.False(t, dErrors.HasCode(err, dErrors.CodeInvalidCredential))
	})
}

func TestValidateSession(t *testing.T) {
	t.Run("valid token yields attendee claims", func(t *testing.T) {
		f := newFixture(t)
		meetingID := id.MeetingID(uuid.New())
		ticketID := id.TicketID(uuid.New())

		session, err := f.sessions.Issue(meetingID, ticketID, f.now)
		require.NoError(t, err)

		attendee, err := f.svc.ValidateSession(f.ctx, session.Token, meetingID)
		require.NoError(t, err)
		assert.Equal(t, meetingID, attendee.MeetingID)
		assert.Equal(t, ticketID, attendee.TicketID)
	})

	t.Run("session issued before the ttl window rejected", func(t *testing.T) {
		f := newFixture(t)
		meetingID := id.MeetingID(uuid.New())

		session, err := f.sessions.Issue(meetingID, id.TicketID(uuid.New()), time.Now().Add(-3*time.Hour))
		require.NoError(t, err)

		_, err = f.svc.ValidateSession(f.ctx, session.Token, meetingID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("token for another meeting rejected", func(t *testing.T) {
		f := newFixture(t)
		session, err := f.sessions.Issue(id.MeetingID(uuid.New()), id.TicketID(uuid.New()), f.now)
		require.NoError(t, err)

		_, err = f.svc.ValidateSession(f.ctx, session.Token, id.MeetingID(uuid.New()))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}
