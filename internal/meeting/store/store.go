// Package store persists the meeting containment tree. Stores are
// interface-driven so services stay testable and the in-memory and
// PostgreSQL implementations remain swappable without rewiring business
// code.
//
// Error contract: store methods return sentinel.ErrNotFound when the
// requested entity does not exist in the claimed scope, sentinel.ErrConflict
// on uniqueness violations, and wrapped infrastructure errors otherwise.
// Child lookups are always scoped by the claimed parent id in the same
// predicate; fetching by child id alone and checking the parent afterward is
// not offered by this interface.
package store

import (
	"context"

	"convene/internal/meeting/models"
	id "convene/pkg/domain"
)

type OrganisationStore interface {
	// Create persists a new organisation; names are unique case-insensitively.
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
	// ListByDivision returns meetings ordered non-decreasing by StartsAt.
	ListByDivision(ctx context.Context, divisionID id.DivisionID) ([]*models.Meeting, error)
	// Execute runs validate and mutate on the meeting under the store's lock
	// (mutex or SELECT ... FOR UPDATE) so status transitions are atomic
	// validate-then-mutate. It returns the meeting as persisted.
	Execute(ctx context.Context, meetingID id.MeetingID, validate func(*models.Meeting) error, mutate func(*models.Meeting)) (*models.Meeting, error)
}

type AgendaStore interface {
	CreateItem(ctx context.Context, item *models.AgendaItem) error
	// FindItem resolves an agenda item scoped to its claimed meeting; an item
	// that exists under a different meeting is ErrNotFound.
	FindItem(ctx context.Context, meetingID id.MeetingID, itemID id.AgendaItemID) (*models.AgendaItem, error)
	// ListItems returns a meeting's agenda ordered by position.
	ListItems(ctx context.Context, meetingID id.MeetingID) ([]*models.AgendaItem, error)
	// DeleteItem removes the item and all propositions under it as one atomic
	// unit: either the whole subtree is gone or none of it is.
	DeleteItem(ctx context.Context, meetingID id.MeetingID, itemID id.AgendaItemID) error

	CreateProposition(ctx context.Context, prop *models.Proposition) error
	// FindProposition resolves a proposition scoped to its claimed agenda item.
	FindProposition(ctx context.Context, itemID id.AgendaItemID, propID id.PropositionID) (*models.Proposition, error)
	ListPropositions(ctx context.Context, itemID id.AgendaItemID) ([]*models.Proposition, error)
	DeleteProposition(ctx context.Context, itemID id.AgendaItemID, propID id.PropositionID) error
}
