// Package audit records who changed meeting content and when. Events are
// best-effort: a failed publish is logged, never allowed to fail the
// operation that produced it.
package audit

import "time"

// Action identifies what happened.
type Action string

const (
	ActionOrganisationCreated Action = "organisation.created"
	ActionDivisionCreated     Action = "division.created"
	ActionMeetingCreated      Action = "meeting.created"
	ActionMeetingTransitioned Action = "meeting.transitioned"
	ActionAgendaItemCreated   Action = "agenda_item.created"
	ActionAgendaItemDeleted   Action = "agenda_item.deleted"
	ActionPropositionCreated  Action = "proposition.created"
	ActionPropositionDeleted  Action = "proposition.deleted"
	ActionTicketsIssued       Action = "tickets.issued"
	ActionTicketRedeemed      Action = "ticket.redeemed"
)

// Event is one audit record. Subject is the id of the entity acted on;
// MeetingID is set whenever the action is meeting-scoped so downstream
// consumers can partition by meeting.
type Event struct {
	Action    Action    `json:"action"`
	Subject   string    `json:"subject"`
	MeetingID string    `json:"meeting_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
