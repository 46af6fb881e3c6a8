package handler

import (
	"convene/internal/meeting/models"
	id "convene/pkg/domain"
)

type organisationResponse struct {
	*models.Organisation
	Divisions []*models.Division `json:"divisions,omitempty"`
}

type agendaItemResponse struct {
	*models.AgendaItem
	Propositions []*models.Proposition `json:"propositions"`
}

type agendaResponse struct {
	MeetingID id.MeetingID          `json:"meeting_id"`
	Items     []*agendaItemResponse `json:"items"`
}

func newAgendaResponse(meetingID id.MeetingID, items []*models.AgendaItem, propositions map[id.AgendaItemID][]*models.Proposition) agendaResponse {
	resp := agendaResponse{MeetingID: meetingID, Items: make([]*agendaItemResponse, 0, len(items))}
	for _, item := range items {
		props := propositions[item.ID]
		if props == nil {
			props = []*models.Proposition{}
		}
		resp.Items = append(resp.Items, &agendaItemResponse{AgendaItem: item, Propositions: props})
	}
	return resp
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}

func newListResponse[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items}
}
