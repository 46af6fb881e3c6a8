package handler

import (
	"time"

	"convene/internal/meeting/models"
	dErrors "convene/pkg/domain-errors"
)

type createOrganisationRequest struct {
	Name string `json:"name"`
}

type createDivisionRequest struct {
	Name string `json:"name"`
}

type createMeetingRequest struct {
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
}

type transitionMeetingRequest struct {
	Status string `json:"status"`
}

func (r transitionMeetingRequest) ParsedStatus() (models.MeetingStatus, error) {
	status, err := models.ParseMeetingStatus(r.Status)
	if err != nil {
		return "", dErrors.New(dErrors.CodeValidation, "unknown meeting status")
	}
	return status, nil
}

type createAgendaItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

type createPropositionRequest struct {
	Text string `json:"text"`
}
