// Package service implements ticket issuance, one-time redemption and
// attendee session validation.
//
// Redemption failures are deliberately uniform: an unknown meeting, an
// unknown code and an already-spent code all come back as the same
// invalid-credential error so the endpoint cannot be used to enumerate
// live codes.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"convene/internal/audit"
	meetingmodels "convene/internal/meeting/models"
	"convene/internal/sessiontoken"
	ticketmetrics "convene/internal/ticket/metrics"
	"convene/internal/ticket/models"
	id "convene/pkg/domain"
	dErrors "convene/pkg/domain-errors"
	"convene/pkg/platform/sentinel"
	"convene/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

const maxBatchSize = 1000

// MeetingLookup is the slice of the meeting store this service needs.
type MeetingLookup interface {
	FindByID(ctx context.Context, meetingID id.MeetingID) (*meetingmodels.Meeting, error)
}

type TicketStore interface {
	CreateBatch(ctx context.Context, tickets []*models.Ticket) error
	ListByMeeting(ctx context.Context, meetingID id.MeetingID) ([]*models.Ticket, error)
	Redeem(ctx context.Context, meetingID id.MeetingID, code string) (*models.Ticket, error)
}

// Service handles the admission flow.
type Service struct {
	tickets  TicketStore
	meetings MeetingLookup
	sessions *sessiontoken.Service
	logger   *slog.Logger
	metrics  *ticketmetrics.Metrics
	auditor  audit.Publisher
	tracer   trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *ticketmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditPublisher(p audit.Publisher) Option {
	return func(s *Service) { s.auditor = p }
}

func New(tickets TicketStore, meetings MeetingLookup, sessions *sessiontoken.Service, opts ...Option) *Service {
	s := &Service{
		tickets:  tickets,
		meetings: meetings,
		sessions: sessions,
		logger:   slog.Default(),
		auditor:  audit.Noop{},
		tracer:   otel.Tracer("convene/ticket"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssueTickets mints count single-use codes for a meeting. Issuance stops
// once a meeting has finished.
func (s *Service) IssueTickets(ctx context.Context, meetingID id.MeetingID, count int) ([]*models.Ticket, error) {
	if count < 1 || count > maxBatchSize {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("count must be between 1 and %d", maxBatchSize))
	}
	meeting, err := s.meetings.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "meeting not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "store failure")
	}
	if meeting.Status == meetingmodels.MeetingStatusFinished {
		return nil, dErrors.New(dErrors.CodeInvalidState, "meeting has finished")
	}

	now := requestcontext.Now(ctx)
	tickets := make([]*models.Ticket, 0, count)
	for i := 0; i < count; i++ {
		code, err := newCode()
		if err != nil {
			return nil, err
		}
		ticket, err := models.NewTicket(id.TicketID(uuid.New()), meetingID, code, now)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	if err := s.tickets.CreateBatch(ctx, tickets); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "store tickets")
	}

	s.metrics.IncrementIssued(count)
	s.emit(ctx, audit.ActionTicketsIssued, meetingID.String(), meetingID.String(), fmt.Sprintf("count=%d", count))
	return tickets, nil
}

// ListTickets returns a meeting's tickets for the organiser view.
func (s *Service) ListTickets(ctx context.Context, meetingID id.MeetingID) ([]*models.Ticket, error) {
	if _, err := s.meetings.FindByID(ctx, meetingID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "meeting not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "store failure")
	}
	tickets, err := s.tickets.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "store failure")
	}
	return tickets, nil
}

// RedeemTicket spends a code and issues a meeting-scoped attendee session.
// All credential failures collapse into CodeInvalidCredential.
func (s *Service) RedeemTicket(ctx context.Context, meetingID id.MeetingID, code string) (sessiontoken.AttendeeSession, error) {
	ctx, span := s.tracer.Start(ctx, "ticket.Redeem")
	defer span.End()

	defer s.metrics.ObserveRedeem(time.Now())

	now := requestcontext.Now(ctx)

	code = models.NormalizeCode(code)
	if code == "" {
		s.metrics.IncrementFailure()
		return sessiontoken.AttendeeSession{}, invalidCredential()
	}

	ticket, err := s.tickets.Redeem(ctx, meetingID, code)
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound), errors.Is(err, sentinel.ErrAlreadyUsed):
			s.metrics.IncrementFailure()
			s.logger.InfoContext(ctx, "ticket redemption rejected", "meeting_id", meetingID)
			return sessiontoken.AttendeeSession{}, invalidCredential()
		default:
			return sessiontoken.AttendeeSession{}, dErrors.Wrap(err, dErrors.CodeInternal, "redeem ticket")
		}
	}

	session, err := s.sessions.Issue(meetingID, ticket.ID, now)
	if err != nil {
		return sessiontoken.AttendeeSession{}, err
	}

	s.metrics.IncrementRedeemed()
	s.emit(ctx, audit.ActionTicketRedeemed, ticket.ID.String(), meetingID.String(), "")
	return session, nil
}

// ValidateSession checks a bearer token against the meeting it claims. It
// satisfies the attendee middleware's validator contract.
func (s *Service) ValidateSession(ctx context.Context, token string, meetingID id.MeetingID) (requestcontext.Attendee, error) {
	session, err := s.sessions.Validate(token, meetingID)
	if err != nil {
		return requestcontext.Attendee{}, err
	}
	return requestcontext.Attendee{
		MeetingID: session.MeetingID,
		TicketID:  session.TicketID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func invalidCredential() error {
	return dErrors.New(dErrors.CodeInvalidCredential, "invalid ticket")
}

func (s *Service) emit(ctx context.Context, action audit.Action, subject, meetingID, detail string) {
	event := audit.Event{
		Action:    action,
		Subject:   subject,
		MeetingID: meetingID,
		Detail:    detail,
		RequestID: requestcontext.RequestID(ctx),
		Timestamp: requestcontext.Now(ctx),
	}
	if err := s.auditor.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", action, "error", err)
	}
}
