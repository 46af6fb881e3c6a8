// Package sessiontoken issues and validates the signed attendee session
// tokens handed out when a ticket is redeemed. Tokens are HS256 JWTs scoped
// to exactly one meeting.
package sessiontoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	id "convene/pkg/domain"
	dErrors "convene/pkg/domain-errors"
)

const issuer = "convene"

// Claims carries the meeting scope of an attendee session.
type Claims struct {
	MeetingID string `json:"mid"`
	TicketID  string `json:"tid"`
	jwt.RegisteredClaims
}

// AttendeeSession is the decoded, validated content of a session token.
type AttendeeSession struct {
	MeetingID id.MeetingID
	TicketID  id.TicketID
	IssuedAt  time.Time
	ExpiresAt time.Time
	Token     string
}

// Service signs and verifies session tokens with a shared HS256 key.
type Service struct {
	signingKey []byte
	ttl        time.Duration
}

func New(signingKey string, ttl time.Duration) *Service {
	return &Service{signingKey: []byte(signingKey), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue mints a session token bound to one meeting and the ticket that
// admitted the holder.
func (s *Service) Issue(meetingID id.MeetingID, ticketID id.TicketID, now time.Time) (AttendeeSession, error) {
	issuedAt := now.UTC()
	expiresAt := issuedAt.Add(s.ttl)
	claims := Claims{
		MeetingID: meetingID.String(),
		TicketID:  ticketID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   ticketID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return AttendeeSession{}, dErrors.Wrap(err, dErrors.CodeInternal, "sign session token")
	}
	return AttendeeSession{
		MeetingID: meetingID,
		TicketID:  ticketID,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
		Token:     token,
	}, nil
}

// Validate verifies signature, expiry and meeting scope. Every failure mode
// maps to CodeUnauthorized so callers cannot distinguish a forged token from
// an expired or misscoped one.
func (s *Service) Validate(token string, meetingID id.MeetingID) (AttendeeSession, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return AttendeeSession{}, dErrors.Wrap(err, dErrors.CodeUnauthorized, "session expired")
		}
		return AttendeeSession{}, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid session token")
	}
	if !parsed.Valid {
		return AttendeeSession{}, dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}

	claimMeetingID, err := id.ParseMeetingID(claims.MeetingID)
	if err != nil {
		return AttendeeSession{}, dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}
	if claimMeetingID != meetingID {
		return AttendeeSession{}, dErrors.New(dErrors.CodeUnauthorized, "session is scoped to a different meeting")
	}
	ticketID, err := id.ParseTicketID(claims.TicketID)
	if err != nil {
		return AttendeeSession{}, dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}

	session := AttendeeSession{
		MeetingID: claimMeetingID,
		TicketID:  ticketID,
		Token:     token,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
