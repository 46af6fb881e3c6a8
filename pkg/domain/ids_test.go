package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "convene/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// IDs must be valid, non-empty, non-nil UUIDs.
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseMeetingID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseMeetingID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseMeetingID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects oversized input", func(t *testing.T) {
		_, err := ParseMeetingID(strings.Repeat("a", 65))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		meetingID, err := ParseMeetingID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, MeetingID(validUUID), meetingID)
	})
}

// TestTypeDistinction verifies the compiler enforces type safety between
// the containment levels.
func TestTypeDistinction(t *testing.T) {
	meetingID := MeetingID(uuid.New())
	ticketID := TicketID(uuid.New())

	// These would fail to compile if types were interchangeable:
	// var _ MeetingID = ticketID   // compile error
	// var _ TicketID = meetingID   // compile error

	assert.NotEqual(t, uuid.UUID(meetingID), uuid.UUID(ticketID))
}

// TestParseConsistency checks that every parse function applies the same
// rules, so no entity level becomes a weaker trust boundary than another.
func TestParseConsistency(t *testing.T) {
	inputs := []string{"", "nope", uuid.Nil.String(), uuid.New().String()}
	for _, input := range inputs {
		_, errOrg := ParseOrganisationID(input)
		_, errDiv := ParseDivisionID(input)
		_, errMeeting := ParseMeetingID(input)
		_, errItem := ParseAgendaItemID(input)
		_, errProp := ParsePropositionID(input)
		_, errTicket := ParseTicketID(input)

		want := errOrg != nil
		assert.Equal(t, want, errDiv != nil, "input %q", input)
		assert.Equal(t, want, errMeeting != nil, "input %q", input)
		assert.Equal(t, want, errItem != nil, "input %q", input)
		assert.Equal(t, want, errProp != nil, "input %q", input)
		assert.Equal(t, want, errTicket != nil, "input %q", input)
	}
}

func TestID_TextRoundTrip(t *testing.T) {
	original := MeetingID(uuid.New())

	text, err := original.MarshalText()
	require.NoError(t, err)

	var decoded MeetingID
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, original, decoded)
}

func TestID_String(t *testing.T) {
	raw := uuid.New()
	assert.Equal(t, raw.String(), OrganisationID(raw).String())
}

func TestID_IsNil(t *testing.T) {
	assert.True(t, DivisionID(uuid.Nil).IsNil())
	assert.False(t, DivisionID(uuid.New()).IsNil())
}
