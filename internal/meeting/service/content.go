package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"convene/internal/audit"
	"convene/internal/meeting/lifecycle"
	"convene/internal/meeting/models"
	id "convene/pkg/domain"
	dErrors "convene/pkg/domain-errors"
	"convene/pkg/requestcontext"
)

// guardMeeting loads a meeting and rejects content mutation once it has
// finished. All agenda item and proposition writes funnel through here.
func (s *Service) guardMeeting(ctx context.Context, meetingID id.MeetingID) (*models.Meeting, error) {
	meeting, err := s.meetings.FindByID(ctx, meetingID)
	if err != nil {
		return nil, wrapStoreErr(err, "meeting")
	}
	if !lifecycle.CanMutateContent(meeting.Status) {
		s.metrics.IncrementGuardRejection()
		return nil, dErrors.New(dErrors.CodeInvalidState, "meeting has finished and its content is read-only")
	}
	return meeting, nil
}

// GetAgenda returns the agenda items of a meeting in position order, together
// with the propositions of each item.
func (s *Service) GetAgenda(ctx context.Context, meetingID id.MeetingID) ([]*models.AgendaItem, map[id.AgendaItemID][]*models.Proposition, error) {
	if _, err := s.meetings.FindByID(ctx, meetingID); err != nil {
		return nil, nil, wrapStoreErr(err, "meeting")
	}
	items, err := s.agenda.ListItems(ctx, meetingID)
	if err != nil {
		return nil, nil, wrapStoreErr(err, "agenda item")
	}
	propositions := make(map[id.AgendaItemID][]*models.Proposition, len(items))
	for _, item := range items {
		props, err := s.agenda.ListPropositions(ctx, item.ID)
		if err != nil {
			return nil, nil, wrapStoreErr(err, "proposition")
		}
		propositions[item.ID] = props
	}
	return items, propositions, nil
}

// CreateAgendaItem appends an agenda item to a meeting that is still open for
// content changes.
func (s *Service) CreateAgendaItem(ctx context.Context, meetingID id.MeetingID, title, description string, position int) (*models.AgendaItem, error) {
	if _, err := s.guardMeeting(ctx, meetingID); err != nil {
		return nil, err
	}
	item, err := models.NewAgendaItem(id.AgendaItemID(uuid.New()), meetingID, title, description, position, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.agenda.CreateItem(ctx, item); err != nil {
		return nil, wrapStoreErr(err, "agenda item")
	}
	s.emit(ctx, audit.ActionAgendaItemCreated, item.ID.String(), meetingID.String(), item.Title)
	s.metrics.IncrementMutation("create_agenda_item")
	return item, nil
}

// DeleteAgendaItem removes an agenda item and every proposition attached to
// it in one atomic store operation.
func (s *Service) DeleteAgendaItem(ctx context.Context, meetingID id.MeetingID, itemID id.AgendaItemID) error {
	ctx, span := s.tracer.Start(ctx, "meeting.DeleteAgendaItem")
	defer span.End()
	span.SetAttributes(attribute.String("agenda_item.id", itemID.String()))

	if _, err := s.guardMeeting(ctx, meetingID); err != nil {
		return err
	}
	if _, err := s.agenda.FindItem(ctx, meetingID, itemID); err != nil {
		return wrapStoreErr(err, "agenda item")
	}
	start := time.Now()
	if err := s.agenda.DeleteItem(ctx, meetingID, itemID); err != nil {
		return wrapStoreErr(err, "agenda item")
	}
	s.metrics.ObserveCascadeDelete(start)
	s.emit(ctx, audit.ActionAgendaItemDeleted, itemID.String(), meetingID.String(), "")
	s.metrics.IncrementMutation("delete_agenda_item")
	return nil
}

// CreateProposition attaches a proposition to an agenda item of an open
// meeting. The item must belong to the addressed meeting.
func (s *Service) CreateProposition(ctx context.Context, meetingID id.MeetingID, itemID id.AgendaItemID, text string) (*models.Proposition, error) {
	if _, err := s.guardMeeting(ctx, meetingID); err != nil {
		return nil, err
	}
	if _, err := s.agenda.FindItem(ctx, meetingID, itemID); err != nil {
		return nil, wrapStoreErr(err, "agenda item")
	}
	prop, err := models.NewProposition(id.PropositionID(uuid.New()), itemID, text, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.agenda.CreateProposition(ctx, prop); err != nil {
		return nil, wrapStoreErr(err, "proposition")
	}
	s.emit(ctx, audit.ActionPropositionCreated, prop.ID.String(), meetingID.String(), fmt.Sprintf("item=%s", itemID))
	s.metrics.IncrementMutation("create_proposition")
	return prop, nil
}

// DeleteProposition removes a proposition. The full containment chain is
// validated so a proposition cannot be deleted through a foreign meeting or
// item path.
func (s *Service) DeleteProposition(ctx context.Context, meetingID id.MeetingID, itemID id.AgendaItemID, propID id.PropositionID) error {
	if _, err := s.guardMeeting(ctx, meetingID); err != nil {
		return err
	}
	if _, err := s.agenda.FindItem(ctx, meetingID, itemID); err != nil {
		return wrapStoreErr(err, "agenda item")
	}
	if _, err := s.agenda.FindProposition(ctx, itemID, propID); err != nil {
		return wrapStoreErr(err, "proposition")
	}
	if err := s.agenda.DeleteProposition(ctx, itemID, propID); err != nil {
		return wrapStoreErr(err, "proposition")
	}
	s.emit(ctx, audit.ActionPropositionDeleted, propID.String(), meetingID.String(), fmt.Sprintf("item=%s", itemID))
	s.metrics.IncrementMutation("delete_proposition")
	return nil
}
