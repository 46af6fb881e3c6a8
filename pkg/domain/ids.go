// Package domain defines typed identifiers shared across the service.
//
// Every entity gets its own UUID-backed type so the compiler rejects
// cross-entity identifier confusion (passing a MeetingID where an
// AgendaItemID is expected, and so on). Construct IDs from external input
// via the ParseXxxID functions; direct casting bypasses validation and is
// reserved for internal code that already holds a valid UUID.
package domain

import (
	"database/sql/driver"
	"strings"

	"github.com/google/uuid"

	dErrors "convene/pkg/domain-errors"
)

type (
	// OrganisationID identifies an organisation, the root of the containment tree.
	OrganisationID uuid.UUID
	// DivisionID identifies a division within an organisation.
	DivisionID uuid.UUID
	// MeetingID identifies a meeting within a division.
	MeetingID uuid.UUID
	// AgendaItemID identifies an agenda item within a meeting.
	AgendaItemID uuid.UUID
	// PropositionID identifies a proposition under an agenda item.
	PropositionID uuid.UUID
	// TicketID identifies an issued admission ticket.
	TicketID uuid.UUID
)

// parseUUID enforces the shared parsing invariant: IDs must be valid,
// non-empty, non-nil UUIDs. Whitespace-only and oversized inputs are
// rejected before uuid.Parse so attack strings fail fast.
func parseUUID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, "id cannot be empty")
	}
	if len(s) > 64 {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, "id is too long")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, "id is not a valid UUID")
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, "id cannot be the nil UUID")
	}
	return parsed, nil
}

// ParseOrganisationID constructs an OrganisationID from external input.
func ParseOrganisationID(s string) (OrganisationID, error) {
	parsed, err := parseUUID(s)
	if err != nil {
		return OrganisationID{}, err
	}
	return OrganisationID(parsed), nil
}

// ParseDivisionID constructs a DivisionID from external input.
func ParseDivisionID(s string) (DivisionID, error) {
	parsed, err := parseUUID(s)
	if err != nil {
		return DivisionID{}, err
	}
	return DivisionID(parsed), nil
}

// ParseMeetingID constructs a MeetingID from external input.
func ParseMeetingID(s string) (MeetingID, error) {
	parsed, err := parseUUID(s)
	if err != nil {
		return MeetingID{}, err
	}
	return MeetingID(parsed), nil
}

// ParseAgendaItemID constructs an AgendaItemID from external input.
func ParseAgendaItemID(s string) (AgendaItemID, error) {
	parsed, err := parseUUID(s)
	if err != nil {
		return AgendaItemID{}, err
	}
	return AgendaItemID(parsed), nil
}

// ParsePropositionID constructs a PropositionID from external input.
func ParsePropositionID(s string) (PropositionID, error) {
	parsed, err := parseUUID(s)
	if err != nil {
		return PropositionID{}, err
	}
	return PropositionID(parsed), nil
}

// ParseTicketID constructs a TicketID from external input.
func ParseTicketID(s string) (TicketID, error) {
	parsed, err := parseUUID(s)
	if err != nil {
		return TicketID{}, err
	}
	return TicketID(parsed), nil
}

func (id OrganisationID) String() string { return uuid.UUID(id).String() }
func (id DivisionID) String() string     { return uuid.UUID(id).String() }
func (id MeetingID) String() string      { return uuid.UUID(id).String() }
func (id AgendaItemID) String() string   { return uuid.UUID(id).String() }
func (id PropositionID) String() string  { return uuid.UUID(id).String() }
func (id TicketID) String() string       { return uuid.UUID(id).String() }

// MarshalText/UnmarshalText keep the typed IDs JSON- and text-compatible;
// defined types do not inherit uuid.UUID's encoding methods.
func (id OrganisationID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id DivisionID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id MeetingID) MarshalText() ([]byte, error)      { return []byte(id.String()), nil }
func (id AgendaItemID) MarshalText() ([]byte, error)   { return []byte(id.String()), nil }
func (id PropositionID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }
func (id TicketID) MarshalText() ([]byte, error)       { return []byte(id.String()), nil }

func (id *OrganisationID) UnmarshalText(b []byte) error {
	parsed, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = OrganisationID(parsed)
	return nil
}

func (id *DivisionID) UnmarshalText(b []byte) error {
	parsed, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = DivisionID(parsed)
	return nil
}

func (id *MeetingID) UnmarshalText(b []byte) error {
	parsed, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = MeetingID(parsed)
	return nil
}

func (id *AgendaItemID) UnmarshalText(b []byte) error {
	parsed, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = AgendaItemID(parsed)
	return nil
}

func (id *PropositionID) UnmarshalText(b []byte) error {
	parsed, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = PropositionID(parsed)
	return nil
}

func (id *TicketID) UnmarshalText(b []byte) error {
	parsed, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = TicketID(parsed)
	return nil
}

func (id OrganisationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id DivisionID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id MeetingID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id AgendaItemID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id PropositionID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id TicketID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }

// Scan/Value delegate to uuid.UUID so the typed IDs work directly with
// database/sql columns.
func (id *OrganisationID) Scan(src any) error { return (*uuid.UUID)(id).Scan(src) }
func (id *DivisionID) Scan(src any) error     { return (*uuid.UUID)(id).Scan(src) }
func (id *MeetingID) Scan(src any) error      { return (*uuid.UUID)(id).Scan(src) }
func (id *AgendaItemID) Scan(src any) error   { return (*uuid.UUID)(id).Scan(src) }
func (id *PropositionID) Scan(src any) error  { return (*uuid.UUID)(id).Scan(src) }
func (id *TicketID) Scan(src any) error       { return (*uuid.UUID)(id).Scan(src) }

func (id OrganisationID) Value() (driver.Value, error) { return id.String(), nil }
func (id DivisionID) Value() (driver.Value, error)     { return id.String(), nil }
func (id MeetingID) Value() (driver.Value, error)      { return id.String(), nil }
func (id AgendaItemID) Value() (driver.Value, error)   { return id.String(), nil }
func (id PropositionID) Value() (driver.Value, error)  { return id.String(), nil }
func (id TicketID) Value() (driver.Value, error)       { return id.String(), nil }
