//go:build go1.18

package domain

import (
	"testing"
)

// FuzzParseMeetingID tests that parsing never panics on arbitrary input
// and that every accepted value round-trips unchanged.
func FuzzParseMeetingID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add("'; DROP TABLE meetings;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("550e8400-e29b-41d4-a716-446655440000\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		meetingID, err := ParseMeetingID(input)
		if err != nil {
			return
		}
		roundTrip, err := ParseMeetingID(meetingID.String())
		if err != nil {
			t.Errorf("accepted ID failed round-trip: %v", err)
		}
		if roundTrip != meetingID {
			t.Error("round-trip changed ID value")
		}
	})
}
