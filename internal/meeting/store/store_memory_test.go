package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"convene/internal/meeting/models"
	id "convene/pkg/domain"
	dErrors "convene/pkg/domain-errors"
	"convene/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
	now   time.Time
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func (s *InMemoryStoreSuite) seedOrganisation(name string) *models.Organisation {
	org, err := models.NewOrganisation(id.OrganisationID(uuid.New()), name, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Organisations().Create(s.ctx, org))
	return org
}

func (s *InMemoryStoreSuite) seedDivision(orgID id.OrganisationID, name string) *models.Division {
	division, err := models.NewDivision(id.DivisionID(uuid.New()), orgID, name, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Divisions().Create(s.ctx, division))
	return division
}

func (s *InMemoryStoreSuite) seedMeeting(divisionID id.DivisionID, title string, startsAt time.Time) *models.Meeting {
	meeting, err := models.NewMeeting(id.MeetingID(uuid.New()), divisionID, title, startsAt, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Meetings().Create(s.ctx, meeting))
	return meeting
}

func (s *InMemoryStoreSuite) seedItem(meetingID id.MeetingID, title string, position int) *models.AgendaItem {
	item, err := models.NewAgendaItem(id.AgendaItemID(uuid.New()), meetingID, title, "", position, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Agenda().CreateItem(s.ctx, item))
	return item
}

func (s *InMemoryStoreSuite) seedProposition(itemID id.AgendaItemID, text string, at time.Time) *models.Proposition {
	prop, err := models.NewProposition(id.PropositionID(uuid.New()), itemID, text, at)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Agenda().CreateProposition(s.ctx, prop))
	return prop
}

func (s *InMemoryStoreSuite) TestOrganisationNameUniqueness() {
	s.seedOrganisation("City Assembly")

	dup, err := models.NewOrganisation(id.OrganisationID(uuid.New()), "city assembly", s.now)
	s.Require().NoError(err)
	err = s.store.Organisations().Create(s.ctx, dup)
	s.Require().ErrorIs(err, sentinel.ErrConflict)
}

func (s *InMemoryStoreSuite) TestDivisionRequiresOrganisation() {
	division, err := models.NewDivision(id.DivisionID(uuid.New()), id.OrganisationID(uuid.New()), "Finance", s.now)
	s.Require().NoError(err)
	err = s.store.Divisions().Create(s.ctx, division)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestListDivisionsSortedByName() {
	org := s.seedOrganisation("City Assembly")
	s.seedDivision(org.ID, "Transport")
	s.seedDivision(org.ID, "Finance")

	divisions, err := s.store.Divisions().ListByOrganisation(s.ctx, org.ID)
	s.Require().NoError(err)
	s.Require().Len(divisions, 2)
	s.Equal("Finance", divisions[0].Name)
	s.Equal("Transport", divisions[1].Name)
}

func (s *InMemoryStoreSuite) TestListMeetingsOrderedByStart() {
	org := s.seedOrganisation("City Assembly")
	division := s.seedDivision(org.ID, "Finance")
	later := s.seedMeeting(division.ID, "Later sitting", s.now.Add(72*time.Hour))
	earlier := s.seedMeeting(division.ID, "Earlier sitting", s.now.Add(24*time.Hour))

	meetings, err := s.store.Meetings().ListByDivision(s.ctx, division.ID)
	s.Require().NoError(err)
	s.Require().Len(meetings, 2)
	s.Equal(earlier.ID, meetings[0].ID)
	s.Equal(later.ID, meetings[1].ID)
}

func (s *InMemoryStoreSuite) TestFindReturnsCopy() {
	org := s.seedOrganisation("City Assembly")

	found, err := s.store.Organisations().FindByID(s.ctx, org.ID)
	s.Require().NoError(err)
	found.Name = "mutated"

	again, err := s.store.Organisations().FindByID(s.ctx, org.ID)
	s.Require().NoError(err)
	s.Equal("City Assembly", again.Name)
}

func (s *InMemoryStoreSuite) TestExecuteValidateThenMutate() {
	org := s.seedOrganisation("City Assembly")
	division := s.seedDivision(org.ID, "Finance")
	meeting := s.seedMeeting(division.ID, "Budget sitting", s.now.Add(24*time.Hour))

	s.Run("successful transition persists", func() {
		updated, err := s.store.Meetings().Execute(s.ctx, meeting.ID,
			func(m *models.Meeting) error { return m.CanTransitionTo(models.MeetingStatusScheduled) },
			func(m *models.Meeting) { m.ApplyTransition(models.MeetingStatusScheduled, s.now) },
		)
		s.Require().NoError(err)
		s.Equal(models.MeetingStatusScheduled, updated.Status)

		stored, err := s.store.Meetings().FindByID(s.ctx, meeting.ID)
		s.Require().NoError(err)
		s.Equal(models.MeetingStatusScheduled, stored.Status)
	})

	s.Run("failed validation leaves meeting untouched", func() {
		_, err := s.store.Meetings().Execute(s.ctx, meeting.ID,
			func(m *models.Meeting) error { return m.CanTransitionTo(models.MeetingStatusDraft) },
			func(m *models.Meeting) { m.ApplyTransition(models.MeetingStatusDraft, s.now) },
		)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))

		stored, err := s.store.Meetings().FindByID(s.ctx, meeting.ID)
		s.Require().NoError(err)
		s.Equal(models.MeetingStatusScheduled, stored.Status)
	})

	s.Run("unknown meeting", func() {
		_, err := s.store.Meetings().Execute(s.ctx, id.MeetingID(uuid.New()),
			func(*models.Meeting) error { return nil },
			func(*models.Meeting) {},
		)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestAgendaScoping() {
	org := s.seedOrganisation("City Assembly")
	division := s.seedDivision(org.ID, "Finance")
	meetingA := s.seedMeeting(division.ID, "Sitting A", s.now.Add(24*time.Hour))
	meetingB := s.seedMeeting(division.ID, "Sitting B", s.now.Add(48*time.Hour))
	item := s.seedItem(meetingA.ID, "Opening remarks", 0)

	s.Run("find through owning meeting succeeds", func() {
		found, err := s.store.Agenda().FindItem(s.ctx, meetingA.ID, item.ID)
		s.Require().NoError(err)
		s.Equal(item.ID, found.ID)
	})

	s.Run("find through foreign meeting fails", func() {
		_, err := s.store.Agenda().FindItem(s.ctx, meetingB.ID, item.ID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("delete through foreign meeting fails", func() {
		err := s.store.Agenda().DeleteItem(s.ctx, meetingB.ID, item.ID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestListItemsSortedByPosition() {
	org := s.seedOrganisation("City Assembly")
	division := s.seedDivision(org.ID, "Finance")
	meeting := s.seedMeeting(division.ID, "Sitting", s.now.Add(24*time.Hour))
	s.seedItem(meeting.ID, "Second", 2)
	s.seedItem(meeting.ID, "First", 1)

	items, err := s.store.Agenda().ListItems(s.ctx, meeting.ID)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal("First", items[0].Title)
	s.Equal("Second", items[1].Title)
}

func (s *InMemoryStoreSuite) TestDeleteItemCascades() {
	org := s.seedOrganisation("City Assembly")
	division := s.seedDivision(org.ID, "Finance")
	meeting := s.seedMeeting(division.ID, "Sitting", s.now.Add(24*time.Hour))
	item := s.seedItem(meeting.ID, "Budget", 0)
	other := s.seedItem(meeting.ID, "Transport", 1)
	doomed := s.seedProposition(item.ID, "Adopt the budget", s.now)
	survivor := s.seedProposition(other.ID, "Extend the tram line", s.now)

	s.Require().NoError(s.store.Agenda().DeleteItem(s.ctx, meeting.ID, item.ID))

	_, err := s.store.Agenda().FindItem(s.ctx, meeting.ID, item.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.store.Agenda().FindProposition(s.ctx, item.ID, doomed.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	kept, err := s.store.Agenda().FindProposition(s.ctx, other.ID, survivor.ID)
	s.Require().NoError(err)
	s.Equal(survivor.ID, kept.ID)
}

func (s *InMemoryStoreSuite) TestPropositionScoping() {
	org := s.seedOrganisation("City Assembly")
	division := s.seedDivision(org.ID, "Finance")
	meeting := s.seedMeeting(division.ID, "Sitting", s.now.Add(24*time.Hour))
	itemA := s.seedItem(meeting.ID, "Budget", 0)
	itemB := s.seedItem(meeting.ID, "Transport", 1)
	prop := s.seedProposition(itemA.ID, "Adopt the budget", s.now)

	_, err := s.store.Agenda().FindProposition(s.ctx, itemB.ID, prop.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	err = s.store.Agenda().DeleteProposition(s.ctx, itemB.ID, prop.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.Agenda().DeleteProposition(s.ctx, itemA.ID, prop.ID))
}

func (s *InMemoryStoreSuite) TestListPropositionsOrderedByCreation() {
	org := s.seedOrganisation("City Assembly")
	division := s.seedDivision(org.ID, "Finance")
	meeting := s.seedMeeting(division.ID, "Sitting", s.now.Add(24*time.Hour))
	item := s.seedItem(meeting.ID, "Budget", 0)
	second := s.seedProposition(item.ID, "Second motion", s.now.Add(time.Minute))
	first := s.seedProposition(item.ID, "First motion", s.now)

	props, err := s.store.Agenda().ListPropositions(s.ctx, item.ID)
	s.Require().NoError(err)
	s.Require().Len(props, 2)
	s.Equal(first.ID, props[0].ID)
	s.Equal(second.ID, props[1].ID)
}
