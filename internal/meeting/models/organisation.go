package models

import (
	"strings"
	"time"

	id "convene/pkg/domain"
	dErrors "convene/pkg/domain-errors"
)

const maxNameLength = 128

// Organisation is the root of the containment tree. Divisions reference it;
// the store refuses to delete an organisation that still has divisions.
//
// Invariants:
//   - Name is non-blank after trimming and at most 128 characters
type Organisation struct {
	ID        id.OrganisationID `json:"id"`
	Name      string            `json:"name"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewOrganisation validates and constructs an organisation. The name is
// trimmed of surrounding whitespace before validation.
func NewOrganisation(orgID id.OrganisationID, name string, now time.Time) (*Organisation, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	return &Organisation{
		ID:        orgID,
		Name:      name,
		CreatedAt: now,
	}, nil
}

// Division is a unit within an organisation that holds meetings.
//
// Invariants:
//   - OrganisationID references an existing organisation (enforced by the
//     service before the store write)
//   - Name is non-blank after trimming and at most 128 characters
type Division struct {
	ID             id.DivisionID     `json:"id"`
	OrganisationID id.OrganisationID `json:"organisation_id"`
	Name           string            `json:"name"`
	CreatedAt      time.Time         `json:"created_at"`
}

// NewDivision validates and constructs a division.
func NewDivision(divisionID id.DivisionID, orgID id.OrganisationID, name string, now time.Time) (*Division, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if orgID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "organisation id is required")
	}
	return &Division{
		ID:             divisionID,
		OrganisationID: orgID,
		Name:           name,
		CreatedAt:      now,
	}, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", dErrors.New(dErrors.CodeValidation, "name cannot be blank")
	}
	if len(name) > maxNameLength {
		return "", dErrors.New(dErrors.CodeValidation, "name must be 128 characters or less")
	}
	return name, nil
}
