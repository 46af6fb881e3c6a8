package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"convene/internal/meeting/models"
	id "convene/pkg/domain"
	"convene/pkg/platform/sentinel"
	txcontext "convene/pkg/platform/tx"
)

// Postgres persists the containment tree in PostgreSQL. Child rows are
// always addressed through their claimed parent in the WHERE clause, and
// cascade deletion is an explicit transaction rather than ON DELETE CASCADE
// so the atomicity guarantee is visible and testable here.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Organisations returns the OrganisationStore view.
func (p *Postgres) Organisations() OrganisationStore { return pgOrganisations{p} }

// Divisions returns the DivisionStore view.
func (p *Postgres) Divisions() DivisionStore { return pgDivisions{p} }

// Meetings returns the MeetingStore view.
func (p *Postgres) Meetings() MeetingStore { return pgMeetings{p} }

// Agenda returns the AgendaStore view.
func (p *Postgres) Agenda() AgendaStore { return pgAgenda{p} }

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (p *Postgres) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return p.db
}

// translatePQ converts PostgreSQL constraint failures to sentinels.
func translatePQ(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return fmt.Errorf("%s: %w", pqErr.Constraint, sentinel.ErrConflict)
		case "foreign_key_violation":
			return fmt.Errorf("%s: %w", pqErr.Constraint, sentinel.ErrNotFound)
		}
	}
	return err
}

type pgOrganisations struct{ p *Postgres }

func (s pgOrganisations) Create(ctx context.Context, org *models.Organisation) error {
	query := `
		INSERT INTO organisations (id, name, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := s.p.execer(ctx).ExecContext(ctx, query, org.ID.String(), org.Name, org.CreatedAt)
	if err != nil {
		return fmt.Errorf("create organisation: %w", translatePQ(err))
	}
	return nil
}

func (s pgOrganisations) FindByID(ctx context.Context, orgID id.OrganisationID) (*models.Organisation, error) {
	var org models.Organisation
	err := s.p.execer(ctx).QueryRowContext(ctx,
		`SELECT id, name, created_at FROM organisations WHERE id = $1`,
		orgID.String(),
	).Scan(&org.ID, &org.Name, &org.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("organisation not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find organisation: %w", err)
	}
	return &org, nil
}

type pgDivisions struct{ p *Postgres }

func (s pgDivisions) Create(ctx context.Context, division *models.Division) error {
	query := `
		INSERT INTO divisions (id, organisation_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.p.execer(ctx).ExecContext(ctx, query,
		division.ID.String(), division.OrganisationID.String(), division.Name, division.CreatedAt)
	if err != nil {
		return fmt.Errorf("create division: %w", translatePQ(err))
	}
	return nil
}

func (s pgDivisions) FindByID(ctx context.Context, divisionID id.DivisionID) (*models.Division, error) {
	var division models.Division
	err := s.p.execer(ctx).QueryRowContext(ctx,
		`SELECT id, organisation_id, name, created_at FROM divisions WHERE id = $1`,
		divisionID.String(),
	).Scan(&division.ID, &division.OrganisationID, &division.Name, &division.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("division not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find division: %w", err)
	}
	return &division, nil
}

func (s pgDivisions) ListByOrganisation(ctx context.Context, orgID id.OrganisationID) ([]*models.Division, error) {
	rows, err := s.p.execer(ctx).QueryContext(ctx,
		`SELECT id, organisation_id, name, created_at FROM divisions WHERE organisation_id = $1 ORDER BY name`,
		orgID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	defer rows.Close()

	divisions := make([]*models.Division, 0)
	for rows.Next() {
		var division models.Division
		if err := rows.Scan(&division.ID, &division.OrganisationID, &division.Name, &division.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan division: %w", err)
		}
		divisions = append(divisions, &division)
	}
	return divisions, rows.Err()
}

type pgMeetings struct{ p *Postgres }

func (s pgMeetings) Create(ctx context.Context, meeting *models.Meeting) error {
	query := `
		INSERT INTO meetings (id, division_id, title, starts_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.p.execer(ctx).ExecContext(ctx, query,
		meeting.ID.String(), meeting.DivisionID.String(), meeting.Title,
		meeting.StartsAt, string(meeting.Status), meeting.CreatedAt, meeting.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create meeting: %w", translatePQ(err))
	}
	return nil
}

func (s pgMeetings) FindByID(ctx context.Context, meetingID id.MeetingID) (*models.Meeting, error) {
	return scanMeeting(s.p.execer(ctx).QueryRowContext(ctx,
		`SELECT id, division_id, title, starts_at, status, created_at, updated_at
		 FROM meetings WHERE id = $1`,
		meetingID.String(),
	))
}

func (s pgMeetings) ListByDivision(ctx context.Context, divisionID id.DivisionID) ([]*models.Meeting, error) {
	rows, err := s.p.execer(ctx).QueryContext(ctx,
		`SELECT id, division_id, title, starts_at, status, created_at, updated_at
		 FROM meetings WHERE division_id = $1 ORDER BY starts_at`,
		divisionID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer rows.Close()

	meetings := make([]*models.Meeting, 0)
	for rows.Next() {
		var meeting models.Meeting
		var status string
		if err := rows.Scan(&meeting.ID, &meeting.DivisionID, &meeting.Title,
			&meeting.StartsAt, &status, &meeting.CreatedAt, &meeting.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		meeting.Status = models.MeetingStatus(status)
		meetings = append(meetings, &meeting)
	}
	return meetings, rows.Err()
}

// Execute locks the meeting row FOR UPDATE so validation and mutation happen
// against a status no other transaction can move underneath us.
func (s pgMeetings) Execute(ctx context.Context, meetingID id.MeetingID, validate func(*models.Meeting) error, mutate func(*models.Meeting)) (*models.Meeting, error) {
	tx, err := s.p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transition: %w", err)
	}
	defer tx.Rollback()

	meeting, err := scanMeeting(tx.QueryRowContext(ctx,
		`SELECT id, division_id, title, starts_at, status, created_at, updated_at
		 FROM meetings WHERE id = $1 FOR UPDATE`,
		meetingID.String(),
	))
	if err != nil {
		return nil, err
	}
	if err := validate(meeting); err != nil {
		return nil, err
	}
	mutate(meeting)

	_, err = tx.ExecContext(ctx,
		`UPDATE meetings SET status = $2, updated_at = $3 WHERE id = $1`,
		meetingID.String(), string(meeting.Status), meeting.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update meeting: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transition: %w", err)
	}
	return meeting, nil
}

func scanMeeting(row *sql.Row) (*models.Meeting, error) {
	var meeting models.Meeting
	var status string
	err := row.Scan(&meeting.ID, &meeting.DivisionID, &meeting.Title,
		&meeting.StartsAt, &status, &meeting.CreatedAt, &meeting.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("meeting not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find meeting: %w", err)
	}
	meeting.Status = models.MeetingStatus(status)
	return &meeting, nil
}

type pgAgenda struct{ p *Postgres }

func (s pgAgenda) CreateItem(ctx context.Context, item *models.AgendaItem) error {
	query := `
		INSERT INTO agenda_items (id, meeting_id, title, description, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.p.execer(ctx).ExecContext(ctx, query,
		item.ID.String(), item.MeetingID.String(), item.Title, item.Description, item.Position, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("create agenda item: %w", translatePQ(err))
	}
	return nil
}

func (s pgAgenda) FindItem(ctx context.Context, meetingID id.MeetingID, itemID id.AgendaItemID) (*models.AgendaItem, error) {
	var item models.AgendaItem
	err := s.p.execer(ctx).QueryRowContext(ctx,
		`SELECT id, meeting_id, title, description, position, created_at
		 FROM agenda_items WHERE id = $1 AND meeting_id = $2`,
		itemID.String(), meetingID.String(),
	).Scan(&item.ID, &item.MeetingID, &item.Title, &item.Description, &item.Position, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("agenda item not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find agenda item: %w", err)
	}
	return &item, nil
}

func (s pgAgenda) ListItems(ctx context.Context, meetingID id.MeetingID) ([]*models.AgendaItem, error) {
	rows, err := s.p.execer(ctx).QueryContext(ctx,
		`SELECT id, meeting_id, title, description, position, created_at
		 FROM agenda_items WHERE meeting_id = $1 ORDER BY position`,
		meetingID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list agenda items: %w", err)
	}
	defer rows.Close()

	items := make([]*models.AgendaItem, 0)
	for rows.Next() {
		var item models.AgendaItem
		if err := rows.Scan(&item.ID, &item.MeetingID, &item.Title, &item.Description, &item.Position, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan agenda item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// DeleteItem removes the item and its propositions in one transaction.
func (s pgAgenda) DeleteItem(ctx context.Context, meetingID id.MeetingID, itemID id.AgendaItemID) error {
	tx, err := s.p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cascade delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM propositions WHERE agenda_item_id = $1`, itemID.String()); err != nil {
		return fmt.Errorf("delete propositions: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM agenda_items WHERE id = $1 AND meeting_id = $2`,
		itemID.String(), meetingID.String())
	if err != nil {
		return fmt.Errorf("delete agenda item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete agenda item: %w", err)
	}
	if affected == 0 {
		// Rollback also undoes the proposition delete above, so a bad
		// (meetingID, itemID) pair leaves the subtree untouched.
		return fmt.Errorf("agenda item not found: %w", sentinel.ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cascade delete: %w", err)
	}
	return nil
}

func (s pgAgenda) CreateProposition(ctx context.Context, prop *models.Proposition) error {
	query := `
		INSERT INTO propositions (id, agenda_item_id, text, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.p.execer(ctx).ExecContext(ctx, query,
		prop.ID.String(), prop.AgendaItemID.String(), prop.Text, prop.CreatedAt)
	if err != nil {
		return fmt.Errorf("create proposition: %w", translatePQ(err))
	}
	return nil
}

func (s pgAgenda) FindProposition(ctx context.Context, itemID id.AgendaItemID, propID id.PropositionID) (*models.Proposition, error) {
	var prop models.Proposition
	err := s.p.execer(ctx).QueryRowContext(ctx,
		`SELECT id, agenda_item_id, text, created_at
		 FROM propositions WHERE id = $1 AND agenda_item_id = $2`,
		propID.String(), itemID.String(),
	).Scan(&prop.ID, &prop.AgendaItemID, &prop.Text, &prop.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("proposition not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find proposition: %w", err)
	}
	return &prop, nil
}

func (s pgAgenda) ListPropositions(ctx context.Context, itemID id.AgendaItemID) ([]*models.Proposition, error) {
	rows, err := s.p.execer(ctx).QueryContext(ctx,
		`SELECT id, agenda_item_id, text, created_at
		 FROM propositions WHERE agenda_item_id = $1 ORDER BY created_at`,
		itemID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list propositions: %w", err)
	}
	defer rows.Close()

	props := make([]*models.Proposition, 0)
	for rows.Next() {
		var prop models.Proposition
		if err := rows.Scan(&prop.ID, &prop.AgendaItemID, &prop.Text, &prop.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan proposition: %w", err)
		}
		props = append(props, &prop)
	}
	return props, rows.Err()
}

func (s pgAgenda) DeleteProposition(ctx context.Context, itemID id.AgendaItemID, propID id.PropositionID) error {
	res, err := s.p.execer(ctx).ExecContext(ctx,
		`DELETE FROM propositions WHERE id = $1 AND agenda_item_id = $2`,
		propID.String(), itemID.String())
	if err != nil {
		return fmt.Errorf("delete proposition: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete proposition: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("proposition not found: %w", sentinel.ErrNotFound)
	}
	return nil
}
