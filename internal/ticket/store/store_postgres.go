package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"convene/internal/ticket/models"
	id "convene/pkg/domain"
	"convene/pkg/platform/sentinel"
	txcontext "convene/pkg/platform/tx"
	"convene/pkg/requestcontext"
)

// Postgres stores tickets in the tickets table. The redemption CAS is a
// single conditional UPDATE, so concurrent redeemers race on the row and
// exactly one sees RETURNING fire.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Postgres) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func translatePQ(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return sentinel.ErrConflict
		case "foreign_key_violation":
			return sentinel.ErrNotFound
		}
	}
	return err
}

func (s *Postgres) CreateBatch(ctx context.Context, tickets []*models.Ticket) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO tickets (id, meeting_id, code, redeemed, created_at)
		VALUES ($1, $2, $3, FALSE, $4)`
	for _, t := range tickets {
		if _, err := tx.ExecContext(ctx, query, t.ID, t.MeetingID, t.Code, t.CreatedAt); err != nil {
			return translatePQ(err)
		}
	}
	return tx.Commit()
}

func (s *Postgres) FindByID(ctx context.Context, ticketID id.TicketID) (*models.Ticket, error) {
	const query = `
		SELECT id, meeting_id, code, redeemed, redeemed_at, created_at
		FROM tickets WHERE id = $1`
	return scanTicket(s.execer(ctx).QueryRowContext(ctx, query, ticketID))
}

func (s *Postgres) ListByMeeting(ctx context.Context, meetingID id.MeetingID) ([]*models.Ticket, error) {
	const query = `
		SELECT id, meeting_id, code, redeemed, redeemed_at, created_at
		FROM tickets WHERE meeting_id = $1 ORDER BY created_at`
	rows, err := s.execer(ctx).QueryContext(ctx, query, meetingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Redeem flips the ticket iff it is still unredeemed. Zero rows back means
// the ticket is missing or already spent; a second lookup distinguishes the
// two for the caller's sentinel without weakening the CAS.
func (s *Postgres) Redeem(ctx context.Context, meetingID id.MeetingID, code string) (*models.Ticket, error) {
	now := requestcontext.Now(ctx)
	const query = `
		UPDATE tickets SET redeemed = TRUE, redeemed_at = $3
		WHERE meeting_id = $1 AND code = $2 AND redeemed = FALSE
		RETURNING id, meeting_id, code, redeemed, redeemed_at, created_at`
	t, err := scanTicket(s.execer(ctx).QueryRowContext(ctx, query, meetingID, code, now.UTC()))
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, err
	}

	const probe = `SELECT redeemed FROM tickets WHERE meeting_id = $1 AND code = $2`
	var redeemed bool
	switch probeErr := s.execer(ctx).QueryRowContext(ctx, probe, meetingID, code).Scan(&redeemed); {
	case errors.Is(probeErr, sql.ErrNoRows):
		return nil, sentinel.ErrNotFound
	case probeErr != nil:
		return nil, probeErr
	case redeemed:
		return nil, sentinel.ErrAlreadyUsed
	default:
		return nil, sentinel.ErrNotFound
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner) (*models.Ticket, error) {
	var (
		t          models.Ticket
		redeemedAt sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.MeetingID, &t.Code, &t.Redeemed, &redeemedAt, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	if redeemedAt.Valid {
		at := redeemedAt.Time.UTC()
		t.RedeemedAt = &at
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return &t, nil
}
