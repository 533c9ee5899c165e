package model

import (
	"fmt"
	"math"
	"strings"
)

// ReservationFilter selects an id-ordered, cursor-paginated page of
// reservations for a user/resource pair and status.
type ReservationFilter struct {
	UserID     string
	ResourceID string
	Status     Status
	CursorSet  bool
	Cursor     int64
	Desc       bool
	PageSize   int32
}

// Normalize applies the one implicit default: an unset Status means
// Pending, not "any status" — unlike ReservationQuery, Filter always
// scopes to a single status.
func (f *ReservationFilter) Normalize() {
	if f.Status == Unknown {
		f.Status = Pending
	}
}

// Validate enforces the page-size and cursor bounds. PageSize of 0 is
// treated as unset and rejected just like any out-of-range value — a
// caller that wants defaults applies them before calling Validate.
func (f *ReservationFilter) Validate() *Error {
	if f.PageSize < 10 || f.PageSize > 100 {
		return ErrInvalidPageSize()
	}
	if f.CursorSet && f.Cursor <= 0 {
		return ErrInvalidCursor()
	}
	return nil
}

// GetCursor returns the effective cursor: the caller-supplied one, or the
// sentinel edge of the id space in the scan direction when none was given.
func (f *ReservationFilter) GetCursor() int64 {
	if f.CursorSet {
		return f.Cursor
	}
	if f.Desc {
		return math.MaxInt64
	}
	return 0
}

// Limit is the over-fetch row count: page_size + 1, plus one more when a
// cursor was supplied. ToSQL's cursor bound is exclusive, so the cursor's
// own row is not among the fetched rows; Pager trims the result to PageSize.
func (f *ReservationFilter) Limit() int64 {
	limit := int64(f.PageSize) + 1
	if f.CursorSet {
		limit++
	}
	return limit
}

// ToSQL renders the exact query string the storage layer executes. The
// literal values are interpolated directly, mirroring the source
// implementation byte for byte; user_id and resource_id arrive unchecked
// from the request, so single quotes in them are doubled to keep each one
// inside its string literal.
func (f *ReservationFilter) ToSQL() string {
	cursorCond := fmt.Sprintf("id > %d", f.GetCursor())
	if f.Desc {
		cursorCond = fmt.Sprintf("id < %d", f.GetCursor())
	}

	userID := strings.ReplaceAll(f.UserID, "'", "''")
	resourceID := strings.ReplaceAll(f.ResourceID, "'", "''")

	var scopeCond string
	switch {
	case f.UserID == "" && f.ResourceID == "":
		scopeCond = "TRUE"
	case f.UserID == "" && f.ResourceID != "":
		scopeCond = fmt.Sprintf("resource_id = '%s'", resourceID)
	case f.UserID != "" && f.ResourceID == "":
		scopeCond = fmt.Sprintf("user_id = '%s'", userID)
	default:
		scopeCond = fmt.Sprintf("user_id = '%s' AND resource_id = '%s'", userID, resourceID)
	}

	direction := "ASC"
	if f.Desc {
		direction = "DESC"
	}

	return fmt.Sprintf(
		"SELECT * FROM rsvp.reservations WHERE status = '%s'::rsvp.reservation_status AND %s AND %s ORDER BY id %s LIMIT %d",
		f.Status, cursorCond, scopeCond, direction, f.Limit(),
	)
}
