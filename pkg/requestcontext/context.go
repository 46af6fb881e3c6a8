// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Middleware sets these values; services consume them. Keeping the package
// free of net/http lets services import only what they need.
//
// Usage in services (read values):
//
//	now := requestcontext.Now(ctx)
//	requestID := requestcontext.RequestID(ctx)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"

	id "convene/pkg/domain"
)

// Context key types (unexported for encapsulation).
type (
	requestIDKey   struct{}
	requestTimeKey struct{}
	attendeeKey    struct{}
)

// Attendee carries the validated attendee-session claims for the current
// request. It is set by the attendee middleware after a ticket-scoped JWT
// has been verified.
type Attendee struct {
	MeetingID id.MeetingID
	TicketID  id.TicketID
	ExpiresAt time.Time
}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() for non-HTTP contexts (workers, CLI, tests that
// don't care about determinism).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Useful for service unit
// tests that don't run the full HTTP middleware chain, and for batch jobs
// that need one consistent timestamp.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}

// AttendeeSession retrieves the validated attendee claims from the context.
// The second return is false when the request carries no attendee session.
func AttendeeSession(ctx context.Context) (Attendee, bool) {
	a, ok := ctx.Value(attendeeKey{}).(Attendee)
	return a, ok
}

// WithAttendeeSession injects validated attendee claims into the context.
func WithAttendeeSession(ctx context.Context, a Attendee) context.Context {
	return context.WithValue(ctx, attendeeKey{}, a)
}
