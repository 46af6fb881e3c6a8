// Package handler exposes ticket issuance, redemption and attendee session
// introspection endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"convene/internal/platform/middleware"
	"convene/internal/sessiontoken"
	"convene/internal/ticket/models"
	id "convene/pkg/domain"
	dErrors "convene/pkg/domain-errors"
	"convene/pkg/platform/httputil"
	"convene/pkg/requestcontext"
)

// Service covers the admission flow the handler exposes.
type Service interface {
	IssueTickets(ctx context.Context, meetingID id.MeetingID, count int) ([]*models.Ticket, error)
	ListTickets(ctx context.Context, meetingID id.MeetingID) ([]*models.Ticket, error)
	RedeemTicket(ctx context.Context, meetingID id.MeetingID, code string) (sessiontoken.AttendeeSession, error)
	ValidateSession(ctx context.Context, token string, meetingID id.MeetingID) (requestcontext.Attendee, error)
}

// Handler wires admission endpoints to the ticket service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a ticket handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the admission endpoints. The session introspection route
// sits behind the attendee middleware; redemption is anonymous.
func (h *Handler) Register(r chi.Router) {
	r.Post("/meetings/{meetingID}/tickets", h.HandleIssueTickets)
	r.Get("/meetings/{meetingID}/tickets", h.HandleListTickets)
	r.Post("/meetings/{meetingID}/tickets/redeem", h.HandleRedeemTicket)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAttendee(h.service, h.logger))
		r.Get("/meetings/{meetingID}/attendee/session", h.HandleAttendeeSession)
	})
}

type issueTicketsRequest struct {
	Count int `json:"count"`
}

type issueTicketsResponse struct {
	MeetingID id.MeetingID     `json:"meeting_id"`
	Tickets   []*models.Ticket `json:"tickets"`
}

type redeemTicketRequest struct {
	Code string `json:"code"`
}

type sessionResponse struct {
	MeetingID id.MeetingID `json:"meeting_id"`
	TicketID  id.TicketID  `json:"ticket_id"`
	ExpiresAt time.Time    `json:"expires_at"`
	Token     string       `json:"token,omitempty"`
}

func (h *Handler) HandleIssueTickets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	meetingID, err := id.ParseMeetingID(chi.URLParam(r, "meetingID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[issueTicketsRequest](w, r, h.logger, ctx)
	if !ok {
		return
	}
	tickets, err := h.service.IssueTickets(ctx, meetingID, req.Count)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "tickets issued",
		"request_id", requestcontext.RequestID(ctx),
		"meeting_id", meetingID,
		"count", len(tickets),
	)
	httputil.WriteJSON(w, http.StatusCreated, issueTicketsResponse{MeetingID: meetingID, Tickets: tickets})
}

func (h *Handler) HandleListTickets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	meetingID, err := id.ParseMeetingID(chi.URLParam(r, "meetingID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	tickets, err := h.service.ListTickets(ctx, meetingID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if tickets == nil {
		tickets = []*models.Ticket{}
	}
	httputil.WriteJSON(w, http.StatusOK, issueTicketsResponse{MeetingID: meetingID, Tickets: tickets})
}

func (h *Handler) HandleRedeemTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	meetingID, err := id.ParseMeetingID(chi.URLParam(r, "meetingID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[redeemTicketRequest](w, r, h.logger, ctx)
	if !ok {
		return
	}
	session, err := h.service.RedeemTicket(ctx, meetingID, req.Code)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "ticket redeemed",
		"request_id", requestcontext.RequestID(ctx),
		"meeting_id", meetingID,
	)
	httputil.WriteJSON(w, http.StatusOK, sessionResponse{
		MeetingID: session.MeetingID,
		TicketID:  session.TicketID,
		ExpiresAt: session.ExpiresAt,
		Token:     session.Token,
	})
}

func (h *Handler) HandleAttendeeSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	attendee, ok := requestcontext.AttendeeSession(ctx)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "attendee session required"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sessionResponse{
		MeetingID: attendee.MeetingID,
		TicketID:  attendee.TicketID,
		ExpiresAt: attendee.ExpiresAt,
	})
}
