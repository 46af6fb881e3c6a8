package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"convene/internal/meeting/models"
)

func TestCanMutateContent(t *testing.T) {
	tests := []struct {
		status models.MeetingStatus
		want   bool
	}{
		{models.MeetingStatusDraft, true},
		{models.MeetingStatusScheduled, true},
		{models.MeetingStatusInProgress, true},
		{models.MeetingStatusFinished, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutateContent(tt.status))
		})
	}
}
