package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"convene/internal/audit"
	meetingmetrics "convene/internal/meeting/metrics"
	"convene/internal/meeting/models"
	id "convene/pkg/domain"
	dErrors "convene/pkg/domain-errors"
	"convene/pkg/platform/sentinel"
	"convene/pkg/requestcontext"
)

// Store interfaces are re-declared here so the service owns exactly the
// surface it depends on and mockgen can generate doubles from this file.

type OrganisationStore interface {
	Create(ctx context.Context, org *models.Organisation) error
	FindByID(ctx context.Context, orgID id.OrganisationID) (*models.Organisation, error)
}

type DivisionStore interface {
	Create(ctx context.Context, division *models.Division) error
	FindByID(ctx context.Context, divisionID id.DivisionID) (*models.Division, error)
	ListByOrganisation(ctx context.Context, orgID id.OrganisationID) ([]*models.Division, error)
}

type MeetingStore interface {
	Create(ctx context.Context, meeting *models.Meeting) error
	FindByID(ctx context.Context, meetingID id.MeetingID) (*models.Meeting, error)
	ListByDivision(ctx context.Context, divisionID id.DivisionID) ([]*models.Meeting, error)
	Execute(ctx context.Context, meetingID id.MeetingID, validate func(*models.Meeting) error, mutate func(*models.Meeting)) (*models.Meeting, error)
}

type AgendaStore interface {
	CreateItem(ctx context.Context, item *models.AgendaItem) error
	FindItem(ctx context.Context, meetingID id.MeetingID, itemID id.AgendaItemID) (*models.AgendaItem, error)
	ListItems(ctx context.Context, meetingID id.MeetingID) ([]*models.AgendaItem, error)
	DeleteItem(ctx context.Context, meetingID id.MeetingID, itemID id.AgendaItemID) error
	CreateProposition(ctx context.Context, prop *models.Proposition) error
	FindProposition(ctx context.Context, itemID id.AgendaItemID, propID id.PropositionID) (*models.Proposition, error)
	ListPropositions(ctx context.Context, itemID id.AgendaItemID) ([]*models.Proposition, error)
	DeleteProposition(ctx context.Context, itemID id.AgendaItemID, propID id.PropositionID) error
}

// Service orchestrates meeting content management. Every mutation of agenda
// items and propositions goes through guardMeeting, the single call site of
// the lifecycle guard.
type Service struct {
	organisations OrganisationStore
	divisions     DivisionStore
	meetings      MeetingStore
	agenda        AgendaStore
	logger        *slog.Logger
	metrics       *meetingmetrics.Metrics
	auditor       audit.Publisher
	tracer        trace.Tracer
}

// Option configures optional service dependencies.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the meeting module metrics.
func WithMetrics(m *meetingmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithAuditPublisher sets the audit sink.
func WithAuditPublisher(p audit.Publisher) Option {
	return func(s *Service) { s.auditor = p }
}

// New constructs the content mutation service.
func New(organisations OrganisationStore, divisions DivisionStore, meetings MeetingStore, agenda AgendaStore, opts ...Option) *Service {
	s := &Service{
		organisations: organisations,
		divisions:     divisions,
		meetings:      meetings,
		agenda:        agenda,
		logger:        slog.Default(),
		auditor:       audit.Noop{},
		tracer:        otel.Tracer("convene/meeting"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// wrapStoreErr translates store sentinels into coded domain errors.
func wrapStoreErr(err error, entity string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, entity+" not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, entity+" already exists")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "store failure")
	}
}

func (s *Service) emit(ctx context.Context, action audit.Action, subject string, meetingID string, detail string) {
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

// CreateOrganisation creates the root of a new containment tree.
func (s *Service) CreateOrganisation(ctx context.Context, name string) (*models.Organisation, error) {
	org, err := models.NewOrganisation(id.OrganisationID(uuid.New()), name, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.organisations.Create(ctx, org); err != nil {
		return nil, wrapStoreErr(err, "organisation")
	}
	s.emit(ctx, audit.ActionOrganisationCreated, org.ID.String(), "", org.Name)
	s.metrics.IncrementMutation("create_organisation")
	return org, nil
}

// GetOrganisation returns an organisation with its divisions.
func (s *Service) GetOrganisation(ctx context.Context, orgID id.OrganisationID) (*models.Organisation, []*models.Division, error) {
	org, err := s.organisations.FindByID(ctx, orgID)
	if err != nil {
		return nil, nil, wrapStoreErr(err, "organisation")
	}
	divisions, err := s.divisions.ListByOrganisation(ctx, orgID)
	if err != nil {
		return nil, nil, wrapStoreErr(err, "division")
	}
	return org, divisions, nil
}

// CreateDivision creates a division under an existing organisation.
func (s *Service) CreateDivision(ctx context.Context, orgID id.OrganisationID, name string) (*models.Division, error) {
	if _, err := s.organisations.FindByID(ctx, orgID); err != nil {
		return nil, wrapStoreErr(err, "organisation")
	}
	division, err := models.NewDivision(id.DivisionID(uuid.New()), orgID, name, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.divisions.Create(ctx, division); err != nil {
		return nil, wrapStoreErr(err, "division")
	}
	s.emit(ctx, audit.ActionDivisionCreated, division.ID.String(), "", division.Name)
	s.metrics.IncrementMutation("create_division")
	return division, nil
}

// ListDivisions returns the divisions of an organisation.
func (s *Service) ListDivisions(ctx context.Context, orgID id.OrganisationID) ([]*models.Division, error) {
	if _, err := s.organisations.FindByID(ctx, orgID); err != nil {
		return nil, wrapStoreErr(err, "organisation")
	}
	divisions, err := s.divisions.ListByOrganisation(ctx, orgID)
	if err != nil {
		return nil, wrapStoreErr(err, "division")
	}
	return divisions, nil
}

// CreateMeeting schedules a new draft meeting under a division.
func (s *Service) CreateMeeting(ctx context.Context, divisionID id.DivisionID, title string, startsAt time.Time) (*models.Meeting, error) {
	if _, err := s.divisions.FindByID(ctx, divisionID); err != nil {
		return nil, wrapStoreErr(err, "division")
	}
	meeting, err := models.NewMeeting(id.MeetingID(uuid.New()), divisionID, title, startsAt, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, wrapStoreErr(err, "meeting")
	}
	s.emit(ctx, audit.ActionMeetingCreated, meeting.ID.String(), meeting.ID.String(), meeting.Title)
	s.metrics.IncrementMutation("create_meeting")
	return meeting, nil
}

// GetMeeting returns a single meeting.
func (s *Service) GetMeeting(ctx context.Context, meetingID id.MeetingID) (*models.Meeting, error) {
	meeting, err := s.meetings.FindByID(ctx, meetingID)
	if err != nil {
		return nil, wrapStoreErr(err, "meeting")
	}
	return meeting, nil
}

// ListMeetings returns the meetings of a division ordered by start time.
func (s *Service) ListMeetings(ctx context.Context, divisionID id.DivisionID) ([]*models.Meeting, error) {
	if _, err := s.divisions.FindByID(ctx, divisionID); err != nil {
		return nil, wrapStoreErr(err, "division")
	}
	meetings, err := s.meetings.ListByDivision(ctx, divisionID)
	if err != nil {
		return nil, wrapStoreErr(err, "meeting")
	}
	return meetings, nil
}

// TransitionMeeting advances a meeting's status. The store runs validate and
// mutate atomically so concurrent transitions cannot skip a state.
func (s *Service) TransitionMeeting(ctx context.Context, meetingID id.MeetingID, target models.MeetingStatus) (*models.Meeting, error) {
	ctx, span := s.tracer.Start(ctx, "meeting.Transition")
	defer span.End()

	if !target.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown meeting status")
	}
	now := requestcontext.Now(ctx)
	meeting, err := s.meetings.Execute(ctx, meetingID,
		func(m *models.Meeting) error { return m.CanTransitionTo(target) },
		func(m *models.Meeting) { m.ApplyTransition(target, now) },
	)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvalidState) {
			return nil, err
		}
		return nil, wrapStoreErr(err, "meeting")
	}
	s.emit(ctx, audit.ActionMeetingTransitioned, meeting.ID.String(), meeting.ID.String(), string(target))
	s.metrics.IncrementMutation("transition_meeting")
	return meeting, nil
}
