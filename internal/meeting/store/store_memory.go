package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"convene/internal/meeting/models"
	id "convene/pkg/domain"
	"convene/pkg/platform/sentinel"
)

// InMemory keeps the whole containment tree behind one mutex. A single lock
// is what makes cascade deletion and validate-then-mutate transitions atomic
// without a transaction mechanism; contention is irrelevant at test/dev
// scale. Per-entity views (Organisations, Divisions, Meetings, Agenda)
// satisfy the store interfaces while sharing the lock.
type InMemory struct {
	mu            sync.RWMutex
	organisations map[id.OrganisationID]*models.Organisation
	divisions     map[id.DivisionID]*models.Division
	meetings      map[id.MeetingID]*models.Meeting
	items         map[id.AgendaItemID]*models.AgendaItem
	propositions  map[id.PropositionID]*models.Proposition
}

// NewInMemory constructs an empty in-memory store.
func NewInMemory() *InMemory {
	return &InMemory{
		organisations: make(map[id.OrganisationID]*models.Organisation),
		divisions:     make(map[id.DivisionID]*models.Division),
		meetings:      make(map[id.MeetingID]*models.Meeting),
		items:         make(map[id.AgendaItemID]*models.AgendaItem),
		propositions:  make(map[id.PropositionID]*models.Proposition),
	}
}

// Organisations returns the OrganisationStore view.
func (s *InMemory) Organisations() OrganisationStore { return memOrganisations{s} }

// Divisions returns the DivisionStore view.
func (s *InMemory) Divisions() DivisionStore { return memDivisions{s} }

// Meetings returns the MeetingStore view.
func (s *InMemory) Meetings() MeetingStore { return memMeetings{s} }

// Agenda returns the AgendaStore view.
func (s *InMemory) Agenda() AgendaStore { return memAgenda{s} }

type memOrganisations struct{ s *InMemory }

func (m memOrganisations) Create(_ context.Context, org *models.Organisation) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, existing := range m.s.organisations {
		if strings.EqualFold(existing.Name, org.Name) {
			return fmt.Errorf("organisation name taken: %w", sentinel.ErrConflict)
		}
	}
	copied := *org
	m.s.organisations[org.ID] = &copied
	return nil
}

func (m memOrganisations) FindByID(_ context.Context, orgID id.OrganisationID) (*models.Organisation, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	org, ok := m.s.organisations[orgID]
	if !ok {
		return nil, fmt.Errorf("organisation not found: %w", sentinel.ErrNotFound)
	}
	copied := *org
	return &copied, nil
}

type memDivisions struct{ s *InMemory }

func (m memDivisions) Create(_ context.Context, division *models.Division) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.organisations[division.OrganisationID]; !ok {
		return fmt.Errorf("organisation not found: %w", sentinel.ErrNotFound)
	}
	copied := *division
	m.s.divisions[division.ID] = &copied
	return nil
}

func (m memDivisions) FindByID(_ context.Context, divisionID id.DivisionID) (*models.Division, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	division, ok := m.s.divisions[divisionID]
	if !ok {
		return nil, fmt.Errorf("division not found: %w", sentinel.ErrNotFound)
	}
	copied := *division
	return &copied, nil
}

func (m memDivisions) ListByOrganisation(_ context.Context, orgID id.OrganisationID) ([]*models.Division, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	divisions := make([]*models.Division, 0)
	for _, division := range m.s.divisions {
		if division.OrganisationID == orgID {
			copied := *division
			divisions = append(divisions, &copied)
		}
	}
	sort.Slice(divisions, func(i, j int) bool { return divisions[i].Name < divisions[j].Name })
	return divisions, nil
}

type memMeetings struct{ s *InMemory }

func (m memMeetings) Create(_ context.Context, meeting *models.Meeting) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.divisions[meeting.DivisionID]; !ok {
		return fmt.Errorf("division not found: %w", sentinel.ErrNotFound)
	}
	copied := *meeting
	m.s.meetings[meeting.ID] = &copied
	return nil
}

func (m memMeetings) FindByID(_ context.Context, meetingID id.MeetingID) (*models.Meeting, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	meeting, ok := m.s.meetings[meetingID]
	if !ok {
		return nil, fmt.Errorf("meeting not found: %w", sentinel.ErrNotFound)
	}
	copied := *meeting
	return &copied, nil
}

func (m memMeetings) ListByDivision(_ context.Context, divisionID id.DivisionID) ([]*models.Meeting, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	meetings := make([]*models.Meeting, 0)
	for _, meeting := range m.s.meetings {
		if meeting.DivisionID == divisionID {
			copied := *meeting
			meetings = append(meetings, &copied)
		}
	}
	sort.Slice(meetings, func(i, j int) bool { return meetings[i].StartsAt.Before(meetings[j].StartsAt) })
	return meetings, nil
}

func (m memMeetings) Execute(_ context.Context, meetingID id.MeetingID, validate func(*models.Meeting) error, mutate func(*models.Meeting)) (*models.Meeting, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	meeting, ok := m.s.meetings[meetingID]
	if !ok {
		return nil, fmt.Errorf("meeting not found: %w", sentinel.ErrNotFound)
	}
	if err := validate(meeting); err != nil {
		return nil, err
	}
	mutate(meeting)
	copied := *meeting
	return &copied, nil
}

type memAgenda struct{ s *InMemory }

func (m memAgenda) CreateItem(_ context.Context, item *models.AgendaItem) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.meetings[item.MeetingID]; !ok {
		return fmt.Errorf("meeting not found: %w", sentinel.ErrNotFound)
	}
	copied := *item
	m.s.items[item.ID] = &copied
	return nil
}

func (m memAgenda) FindItem(_ context.Context, meetingID id.MeetingID, itemID id.AgendaItemID) (*models.AgendaItem, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	item, ok := m.s.items[itemID]
	if !ok || item.MeetingID != meetingID {
		return nil, fmt.Errorf("agenda item not found: %w", sentinel.ErrNotFound)
	}
	copied := *item
	return &copied, nil
}

func (m memAgenda) ListItems(_ context.Context, meetingID id.MeetingID) ([]*models.AgendaItem, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	items := make([]*models.AgendaItem, 0)
	for _, item := range m.s.items {
		if item.MeetingID == meetingID {
			copied := *item
			items = append(items, &copied)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	return items, nil
}

func (m memAgenda) DeleteItem(_ context.Context, meetingID id.MeetingID, itemID id.AgendaItemID) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	item, ok := m.s.items[itemID]
	if !ok || item.MeetingID != meetingID {
		return fmt.Errorf("agenda item not found: %w", sentinel.ErrNotFound)
	}
	// Subtree removal under one lock: the item and its propositions vanish
	// together or not at all.
	for propID, prop := range m.s.propositions {
		if prop.AgendaItemID == itemID {
			delete(m.s.propositions, propID)
		}
	}
	delete(m.s.items, itemID)
	return nil
}

func (m memAgenda) CreateProposition(_ context.Context, prop *models.Proposition) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.items[prop.AgendaItemID]; !ok {
		return fmt.Errorf("agenda item not found: %w", sentinel.ErrNotFound)
	}
	copied := *prop
	m.s.propositions[prop.ID] = &copied
	return nil
}

func (m memAgenda) FindProposition(_ context.Context, itemID id.AgendaItemID, propID id.PropositionID) (*models.Proposition, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	prop, ok := m.s.propositions[propID]
	if !ok || prop.AgendaItemID != itemID {
		return nil, fmt.Errorf("proposition not found: %w", sentinel.ErrNotFound)
	}
	copied := *prop
	return &copied, nil
}

func (m memAgenda) ListPropositions(_ context.Context, itemID id.AgendaItemID) ([]*models.Proposition, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	props := make([]*models.Proposition, 0)
	for _, prop := range m.s.propositions {
		if prop.AgendaItemID == itemID {
			copied := *prop
			props = append(props, &copied)
		}
	}
	sort.Slice(props, func(i, j int) bool { return props[i].CreatedAt.Before(props[j].CreatedAt) })
	return props, nil
}

func (m memAgenda) DeleteProposition(_ context.Context, itemID id.AgendaItemID, propID id.PropositionID) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	prop, ok := m.s.propositions[propID]
	if !ok || prop.AgendaItemID != itemID {
		return fmt.Errorf("proposition not found: %w", sentinel.ErrNotFound)
	}
	delete(m.s.propositions, propID)
	return nil
}
