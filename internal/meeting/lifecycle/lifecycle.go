// Package lifecycle is the single decision point for meeting-status gating.
//
// Every content-mutating operation on agenda items and propositions must
// consult CanMutateContent and short-circuit on a negative result before
// touching the store. Centralizing the check here prevents individual
// handlers from re-deriving it and drifting apart.
package lifecycle

import "convene/internal/meeting/models"

// CanMutateContent reports whether a meeting in the given status still
// accepts content mutations. Pure function: false if and only if the meeting
// is finished.
//
// Status transition rules live on models.MeetingStatus; this package only
// gates content mutation.
func CanMutateContent(status models.MeetingStatus) bool {
	return status != models.MeetingStatusFinished
}
