package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	id "convene/pkg/domain"
	dErrors "convene/pkg/domain-errors"
	"convene/pkg/platform/httputil"
	"convene/pkg/requestcontext"
)

// SessionValidator verifies an attendee session token against the meeting
// the caller is acting on.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string, meetingID id.MeetingID) (requestcontext.Attendee, error)
}

// RequireAttendee guards meeting-scoped attendee routes. It extracts the
// Bearer token, validates it against the {meetingID} URL parameter, and
// injects the attendee claims into the request context. Expired tokens and
// tokens scoped to a different meeting both fail unauthorized.
func RequireAttendee(validator SessionValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const bearerPrefix = "Bearer "
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "attendee session required"))
				return
			}
			token := strings.TrimPrefix(authHeader, bearerPrefix)

			meetingID, err := id.ParseMeetingID(chi.URLParam(r, "meetingID"))
			if err != nil {
				httputil.WriteError(w, err)
				return
			}

			attendee, err := validator.ValidateSession(r.Context(), token, meetingID)
			if err != nil {
				logger.WarnContext(r.Context(), "attendee session rejected",
					"request_id", requestcontext.RequestID(r.Context()),
					"meeting_id", meetingID,
				)
				httputil.WriteError(w, err)
				return
			}

			ctx := requestcontext.WithAttendeeSession(r.Context(), attendee)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
