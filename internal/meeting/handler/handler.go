// Package handler exposes organisation, division, meeting and agenda
// endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"convene/internal/meeting/models"
	id "convene/pkg/domain"
	"convene/pkg/platform/httputil"
	"convene/pkg/requestcontext"
)

// Service defines the content mutation operations the handler exposes.
type Service interface {
	CreateOrganisation(ctx context.Context, name string) (*models.Organisation, error)
	GetOrganisation(ctx context.Context, orgID id.OrganisationID) (*models.Organisation, []*models.Division, error)
	CreateDivision(ctx context.Context, orgID id.OrganisationID, name string) (*models.Division, error)
	ListDivisions(ctx context.Context, orgID id.OrganisationID) ([]*models.Division, error)
	CreateMeeting(ctx context.Context, divisionID id.DivisionID, title string, startsAt time.Time) (*models.Meeting, error)
	GetMeeting(ctx context.Context, meetingID id.MeetingID) (*models.Meeting, error)
	ListMeetings(ctx context.Context, divisionID id.DivisionID) ([]*models.Meeting, error)
	TransitionMeeting(ctx context.Context, meetingID id.MeetingID, target models.MeetingStatus) (*models.Meeting, error)
	GetAgenda(ctx context.Context, meetingID id.MeetingID) ([]*models.AgendaItem, map[id.AgendaItemID][]*models.Proposition, error)
	CreateAgendaItem(ctx context.Context, meetingID id.MeetingID, title, description string, position int) (*models.AgendaItem, error)
	DeleteAgendaItem(ctx context.Context, meetingID id.MeetingID, itemID id.AgendaItemID) error
	CreateProposition(ctx context.Context, meetingID id.MeetingID, itemID id.AgendaItemID, text string) (*models.Proposition, error)
	DeleteProposition(ctx context.Context, meetingID id.MeetingID, itemID id.AgendaItemID, propID id.PropositionID) error
}

// Handler wires meeting content endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a meeting handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the meeting content endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/organisations", h.HandleCreateOrganisation)
	r.Get("/organisations/{orgID}", h.HandleGetOrganisation)
	r.Post("/organisations/{orgID}/divisions", h.HandleCreateDivision)
	r.Get("/organisations/{orgID}/divisions", h.HandleListDivisions)
	r.Post("/divisions/{divisionID}/meetings", h.HandleCreateMeeting)
	r.Get("/divisions/{divisionID}/meetings", h.HandleListMeetings)
	r.Get("/meetings/{meetingID}", h.HandleGetMeeting)
	r.Post("/meetings/{meetingID}/transition", h.HandleTransitionMeeting)
	r.Get("/meetings/{meetingID}/agenda", h.HandleGetAgenda)
	r.Post("/meetings/{meetingID}/agenda", h.HandleCreateAgendaItem)
	r.Delete("/meetings/{meetingID}/agenda/{itemID}", h.HandleDeleteAgendaItem)
	r.Post("/meetings/{meetingID}/agenda/{itemID}/propositions", h.HandleCreateProposition)
	r.Delete("/meetings/{meetingID}/agenda/{itemID}/propositions/{propositionID}", h.HandleDeleteProposition)
}

func (h *Handler) HandleCreateOrganisation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.Decode[createOrganisationRequest](w, r, h.logger, ctx)
	if !ok {
		return
	}
	org, err := h.service.CreateOrganisation(ctx, req.Name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "organisation created",
		"request_id", requestcontext.RequestID(ctx),
		"organisation_id", org.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, org)
}

func (h *Handler) HandleGetOrganisation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID, err := id.ParseOrganisationID(chi.URLParam(r, "orgID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	org, divisions, err := h.service.GetOrganisation(ctx, orgID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, organisationResponse{Organisation: org, Divisions: divisions})
}

func (h *Handler) HandleCreateDivision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID, err := id.ParseOrganisationID(chi.URLParam(r, "orgID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[createDivisionRequest](w, r, h.logger, ctx)
	if !ok {
		return
	}
	division, err := h.service.CreateDivision(ctx, orgID, req.Name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "division created",
		"request_id", requestcontext.RequestID(ctx),
		"organisation_id", orgID,
		"division_id", division.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, division)
}

func (h *Handler) HandleListDivisions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID, err := id.ParseOrganisationID(chi.URLParam(r, "orgID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	divisions, err := h.service.ListDivisions(ctx, orgID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newListResponse(divisions))
}

func (h *Handler) HandleCreateMeeting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	divisionID, err := id.ParseDivisionID(chi.URLParam(r, "divisionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[createMeetingRequest](w, r, h.logger, ctx)
	if !ok {
		return
	}
	meeting, err := h.service.CreateMeeting(ctx, divisionID, req.Title, req.StartsAt)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "meeting created",
		"request_id", requestcontext.RequestID(ctx),
		"division_id", divisionID,
		"meeting_id", meeting.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, meeting)
}

func (h *Handler) HandleGetMeeting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	meetingID, err := id.ParseMeetingID(chi.URLParam(r, "meetingID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	meeting, err := h.service.GetMeeting(ctx, meetingID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, meeting)
}

func (h *Handler) HandleListMeetings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	divisionID, err := id.ParseDivisionID(chi.URLParam(r, "divisionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	meetings, err := h.service.ListMeetings(ctx, divisionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newListResponse(meetings))
}

func (h *Handler) HandleTransitionMeeting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	meetingID, err := id.ParseMeetingID(chi.URLParam(r, "meetingID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[transitionMeetingRequest](w, r, h.logger, ctx)
	if !ok {
		return
	}
	status, err := req.ParsedStatus()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	meeting, err := h.service.TransitionMeeting(ctx, meetingID, status)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "meeting transitioned",
		"request_id", requestcontext.RequestID(ctx),
		"meeting_id", meetingID,
		"status", meeting.Status,
	)
	httputil.WriteJSON(w, http.StatusOK, meeting)
}

func (h *Handler) HandleGetAgenda(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	meetingID, err := id.ParseMeetingID(chi.URLParam(r, "meetingID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	items, propositions, err := h.service.GetAgenda(ctx, meetingID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newAgendaResponse(meetingID, items, propositions))
}

func (h *Handler) HandleCreateAgendaItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	meetingID, err := id.ParseMeetingID(chi.URLParam(r, "meetingID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[createAgendaItemRequest](w, r, h.logger, ctx)
	if !ok {
		return
	}
	item, err := h.service.CreateAgendaItem(ctx, meetingID, req.Title, req.Description, req.Position)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) HandleDeleteAgendaItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	meetingID, err := id.ParseMeetingID(chi.URLParam(r, "meetingID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	itemID, err := id.ParseAgendaItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteAgendaItem(ctx, meetingID, itemID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "agenda item deleted",
		"request_id", requestcontext.RequestID(ctx),
		"meeting_id", meetingID,
		"agenda_item_id", itemID,
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleCreateProposition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	meetingID, err := id.ParseMeetingID(chi.URLParam(r, "meetingID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	itemID, err := id.ParseAgendaItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[createPropositionRequest](w, r, h.logger, ctx)
	if !ok {
		return
	}
	prop, err := h.service.CreateProposition(ctx, meetingID, itemID, req.Text)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, prop)
}

func (h *Handler) HandleDeleteProposition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	meetingID, err := id.ParseMeetingID(chi.URLParam(r, "meetingID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	itemID, err := id.ParseAgendaItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	propID, err := id.ParsePropositionID(chi.URLParam(r, "propositionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteProposition(ctx, meetingID, itemID, propID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
