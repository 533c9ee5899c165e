package manager

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shiva/reservation/internal/conflict"
	"github.com/shiva/reservation/internal/model"
)

const (
	sqlReserve = `
		INSERT INTO rsvp.reservations (user_id, resource_id, timespan, note, status)
		VALUES ($1, $2, tstzrange($3, $4, '[)'), $5, $6::rsvp.reservation_status)
		RETURNING id, user_id, resource_id, lower(timespan), upper(timespan), note, status
	`

	sqlConfirm = `
		UPDATE rsvp.reservations
		SET status = CASE WHEN status = 'pending' THEN 'confirmed' ELSE status END::rsvp.reservation_status
		WHERE id = $1
		RETURNING id, user_id, resource_id, lower(timespan), upper(timespan), note, status
	`

	sqlUpdateNote = `
		UPDATE rsvp.reservations
		SET note = $2
		WHERE id = $1
		RETURNING id, user_id, resource_id, lower(timespan), upper(timespan), note, status
	`

	sqlCancel = `
		DELETE FROM rsvp.reservations
		WHERE id = $1
		RETURNING id, user_id, resource_id, lower(timespan), upper(timespan), note, status
	`

	sqlGet = `
		SELECT id, user_id, resource_id, lower(timespan), upper(timespan), note, status
		FROM rsvp.reservations
		WHERE id = $1
	`

	sqlQuery = `
		SELECT id, user_id, resource_id, lower(timespan), upper(timespan), note, status
		FROM rsvp.reservations
		WHERE (($1 = '') OR user_id = $1)
		  AND (($2 = '') OR resource_id = $2)
		  AND (($3 = '') OR status = $3::rsvp.reservation_status)
		  AND tstzrange($4, $5, '[)') @> timespan
		ORDER BY id %s
	`
)

// reservationRow is the destination of every `RETURNING`/`SELECT` above.
type reservationRow struct {
	id         int64
	userID     string
	resourceID string
	start      time.Time
	end        time.Time
	note       string
	status     string
}

func scanReservation(row pgx.Row) (*model.Reservation, error) {
	var r reservationRow
	if err := row.Scan(&r.id, &r.userID, &r.resourceID, &r.start, &r.end, &r.note, &r.status); err != nil {
		return nil, err
	}
	return &model.Reservation{
		ID:         r.id,
		UserID:     r.userID,
		ResourceID: r.resourceID,
		Start:      r.start,
		End:        r.end,
		Note:       r.note,
		Status:     model.ParseStatus(r.status),
	}, nil
}

// classifyError turns a raw pgx/pgconn error into the closed domain error
// taxonomy: an exclusion-constraint violation on the reservations table
// becomes a parsed ConflictReservation, a no-rows result becomes NotFound,
// anything else is an opaque DbError.
func classifyError(err error) *model.Error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound()
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23P01" && pgErr.SchemaName == "rsvp" && pgErr.TableName == "reservations" {
			info := conflict.Parse(pgErr.Detail)
			return model.ErrConflictReservation(&info)
		}
	}

	return model.WrapDbError(err)
}
