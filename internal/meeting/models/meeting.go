package models

import (
	"time"

	id "convene/pkg/domain"
	dErrors "convene/pkg/domain-errors"
)

// MeetingStatus is the ordered lifecycle of a meeting.
type MeetingStatus string

const (
	MeetingStatusDraft      MeetingStatus = "draft"
	MeetingStatusScheduled  MeetingStatus = "scheduled"
	MeetingStatusInProgress MeetingStatus = "in_progress"
	MeetingStatusFinished   MeetingStatus = "finished"
)

// statusOrder is the single source of truth for the lifecycle ordering.
// Transitions only move forward; finished is terminal.
var statusOrder = map[MeetingStatus]int{
	MeetingStatusDraft:      0,
	MeetingStatusScheduled:  1,
	MeetingStatusInProgress: 2,
	MeetingStatusFinished:   3,
}

// ParseMeetingStatus constructs a MeetingStatus from external input.
func ParseMeetingStatus(s string) (MeetingStatus, error) {
	status := MeetingStatus(s)
	if !status.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "invalid meeting status")
	}
	return status, nil
}

// IsValid checks if the status is one of the supported lifecycle states.
func (s MeetingStatus) IsValid() bool {
	_, ok := statusOrder[s]
	return ok
}

// CanTransitionTo reports whether the lifecycle permits moving to the given
// status. Only strictly forward moves are allowed.
func (s MeetingStatus) CanTransitionTo(to MeetingStatus) bool {
	from, okFrom := statusOrder[s]
	target, okTo := statusOrder[to]
	if !okFrom || !okTo {
		return false
	}
	return target > from
}

func (s MeetingStatus) String() string { return string(s) }

// Meeting is a scheduled sitting of a division.
//
// Invariants:
//   - Title is non-blank after trimming and at most 128 characters
//   - Status only moves forward through the lifecycle; finished is terminal
//   - Once Status == finished, no agenda item or proposition belonging to
//     this meeting may be created, modified, or deleted (enforced by the
//     lifecycle guard, consulted by every content-mutating operation)
type Meeting struct {
	ID         id.MeetingID  `json:"id"`
	DivisionID id.DivisionID `json:"division_id"`
	Title      string        `json:"title"`
	StartsAt   time.Time     `json:"starts_at"`
	Status     MeetingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// NewMeeting validates and constructs a draft meeting.
func NewMeeting(meetingID id.MeetingID, divisionID id.DivisionID, title string, startsAt time.Time, now time.Time) (*Meeting, error) {
	title, err := validateName(title)
	if err != nil {
		return nil, err
	}
	if divisionID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "division id is required")
	}
	if startsAt.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "start time is required")
	}
	return &Meeting{
		ID:         meetingID,
		DivisionID: divisionID,
		Title:      title,
		StartsAt:   startsAt.UTC(),
		Status:     MeetingStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// CanTransitionTo checks whether the meeting may move to the given status.
// Use with ApplyTransition inside the store's Execute callback so validation
// and mutation happen under one lock.
func (m *Meeting) CanTransitionTo(to MeetingStatus) error {
	if !to.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "invalid meeting status")
	}
	if !m.Status.CanTransitionTo(to) {
		return dErrors.New(dErrors.CodeInvalidState, "meeting lifecycle only moves forward")
	}
	return nil
}

// ApplyTransition moves the meeting to the given status. Call
// CanTransitionTo first to validate the move.
func (m *Meeting) ApplyTransition(to MeetingStatus, now time.Time) {
	m.Status = to
	m.UpdatedAt = now
}
