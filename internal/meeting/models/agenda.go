package models

import (
	"strings"
	"time"

	id "convene/pkg/domain"
	dErrors "convene/pkg/domain-errors"
)

// AgendaItem is one item of business under a meeting. Deleting an item
// removes all propositions under it in the same transaction.
type AgendaItem struct {
	ID          id.AgendaItemID `json:"id"`
	MeetingID   id.MeetingID    `json:"meeting_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Position    int             `json:"position"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewAgendaItem validates and constructs an agenda item.
func NewAgendaItem(itemID id.AgendaItemID, meetingID id.MeetingID, title, description string, position int, now time.Time) (*AgendaItem, error) {
	title, err := validateName(title)
	if err != nil {
		return nil, err
	}
	if meetingID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "meeting id is required")
	}
	if position < 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "position cannot be negative")
	}
	return &AgendaItem{
		ID:          itemID,
		MeetingID:   meetingID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Position:    position,
		CreatedAt:   now,
	}, nil
}

// Proposition is a motion under an agenda item. Voting fields live with the
// tallying service, not here.
type Proposition struct {
	ID           id.PropositionID `json:"id"`
	AgendaItemID id.AgendaItemID  `json:"agenda_item_id"`
	Text         string           `json:"text"`
	CreatedAt    time.Time        `json:"created_at"`
}

// NewProposition validates and constructs a proposition.
func NewProposition(propID id.PropositionID, itemID id.AgendaItemID, text string, now time.Time) (*Proposition, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "proposition text cannot be blank")
	}
	if itemID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "agenda item id is required")
	}
	return &Proposition{
		ID:           propID,
		AgendaItemID: itemID,
		Text:         text,
		CreatedAt:    now,
	}, nil
}
