//go:build integration

package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"convene/internal/meeting/models"
	"convene/internal/meeting/store"
	id "convene/pkg/domain"
	dErrors "convene/pkg/domain-errors"
	"convene/pkg/platform/sentinel"
	"convene/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
	ctx      context.Context
	now      time.Time
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	// Truncate in dependency order
	err := s.postgres.TruncateTables(s.ctx, "tickets", "propositions", "agenda_items", "meetings", "divisions", "organisations")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) seedTree() (*models.Organisation, *models.Division, *models.Meeting) {
	org, err := models.NewOrganisation(id.OrganisationID(uuid.New()), "City Assembly "+uuid.NewString(), s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Organisations().Create(s.ctx, org))

	division, err := models.NewDivision(id.DivisionID(uuid.New()), org.ID, "Finance", s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Divisions().Create(s.ctx, division))

	meeting, err := models.NewMeeting(id.MeetingID(uuid.New()), division.ID, "Budget sitting", s.now.Add(24*time.Hour), s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Meetings().Create(s.ctx, meeting))

	return org, division, meeting
}

func (s *PostgresStoreSuite) TestOrganisationRoundTrip() {
	org, _, _ := s.seedTree()

	found, err := s.store.Organisations().FindByID(s.ctx, org.ID)
	s.Require().NoError(err)
	s.Equal(org.Name, found.Name)
	s.WithinDuration(org.CreatedAt, found.CreatedAt, time.Millisecond)
}

func (s *PostgresStoreSuite) TestOrganisationNameConflict() {
	org, _, _ := s.seedTree()

	dup, err := models.NewOrganisation(id.OrganisationID(uuid.New()), org.Name, s.now)
	s.Require().NoError(err)
	err = s.store.Organisations().Create(s.ctx, dup)
	s.Require().ErrorIs(err, sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestDivisionForeignKey() {
	division, err := models.NewDivision(id.DivisionID(uuid.New()), id.OrganisationID(uuid.New()), "Orphan", s.now)
	s.Require().NoError(err)
	err = s.store.Divisions().Create(s.ctx, division)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListMeetingsOrderedByStart() {
	_, division, first := s.seedTree()

	second, err := models.NewMeeting(id.MeetingID(uuid.New()), division.ID, "Earlier sitting", s.now.Add(2*time.Hour), s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Meetings().Create(s.ctx, second))

	meetings, err := s.store.Meetings().ListByDivision(s.ctx, division.ID)
	s.Require().NoError(err)
	s.Require().Len(meetings, 2)
	s.Equal(second.ID, meetings[0].ID)
	s.Equal(first.ID, meetings[1].ID)
}

func (s *PostgresStoreSuite) TestExecuteTransition() {
	_, _, meeting := s.seedTree()

	updated, err := s.store.Meetings().Execute(s.ctx, meeting.ID,
		func(m *models.Meeting) error { return m.CanTransitionTo(models.MeetingStatusScheduled) },
		func(m *models.Meeting) { m.ApplyTransition(models.MeetingStatusScheduled, s.now) },
	)
	s.Require().NoError(err)
	s.Equal(models.MeetingStatusScheduled, updated.Status)

	stored, err := s.store.Meetings().FindByID(s.ctx, meeting.ID)
	s.Require().NoError(err)
	s.Equal(models.MeetingStatusScheduled, stored.Status)
}

func (s *PostgresStoreSuite) TestExecuteRollsBackOnValidationFailure() {
	_, _, meeting := s.seedTree()

	_, err := s.store.Meetings().Execute(s.ctx, meeting.ID,
		func(m *models.Meeting) error { return m.CanTransitionTo(models.MeetingStatusDraft) },
		func(m *models.Meeting) { m.ApplyTransition(models.MeetingStatusDraft, s.now) },
	)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))

	stored, err := s.store.Meetings().FindByID(s.ctx, meeting.ID)
	s.Require().NoError(err)
	s.Equal(models.MeetingStatusDraft, stored.Status)
}

func (s *PostgresStoreSuite) TestConcurrentTransitionsOnlyOneWins() {
	_, _, meeting := s.seedTree()

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.Meetings().Execute(s.ctx, meeting.ID,
				func(m *models.Meeting) error { return m.CanTransitionTo(models.MeetingStatusScheduled) },
				func(m *models.Meeting) { m.ApplyTransition(models.MeetingStatusScheduled, s.now) },
			)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		if err == nil {
			wins++
		} else {
			losses++
		}
	}
	s.Equal(1, wins)
	s.Equal(workers-1, losses)
}

func (s *PostgresStoreSuite) TestAgendaCascadeDelete() {
	_, _, meeting := s.seedTree()

	item, err := models.NewAgendaItem(id.AgendaItemID(uuid.New()), meeting.ID, "Budget", "", 0, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Agenda().CreateItem(s.ctx, item))

	prop, err := models.NewProposition(id.PropositionID(uuid.New()), item.ID, "Adopt the budget", s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Agenda().CreateProposition(s.ctx, prop))

	s.Require().NoError(s.store.Agenda().DeleteItem(s.ctx, meeting.ID, item.ID))

	_, err = s.store.Agenda().FindItem(s.ctx, meeting.ID, item.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.store.Agenda().FindProposition(s.ctx, item.ID, prop.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestAgendaItemScopedLookup() {
	_, division, meetingA := s.seedTree()

	meetingB, err := models.NewMeeting(id.MeetingID(uuid.New()), division.ID, "Other sitting", s.now.Add(48*time.Hour), s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Meetings().Create(s.ctx, meetingB))

	item, err := models.NewAgendaItem(id.AgendaItemID(uuid.New()), meetingA.ID, "Budget", "", 0, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Agenda().CreateItem(s.ctx, item))

	_, err = s.store.Agenda().FindItem(s.ctx, meetingB.ID, item.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	err = s.store.Agenda().DeleteItem(s.ctx, meetingB.ID, item.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
