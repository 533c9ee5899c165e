package model

import "time"

// ReservationQuery selects a time-window slice of reservations for a
// user/resource pair, optionally narrowed by status, read back in id
// order (ascending unless Desc).
type ReservationQuery struct {
	UserID     string
	ResourceID string
	Status     Status
	Start      time.Time
	End        time.Time
	Desc       bool
}

// Validate enforces the shared time-range rule; an empty UserID or
// ResourceID means "any" and is not an error, and with both empty the
// query matches every user and resource in the window.
func (q *ReservationQuery) Validate() *Error {
	return ValidateRange(q.Start, q.End)
}
