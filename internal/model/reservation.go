package model

import "time"

// Reservation is a single hold on a resource for a user over a time span.
type Reservation struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	ResourceID string    `json:"resource_id"`
	Status     Status    `json:"status"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Note       string    `json:"note"`
}

// NewPending builds an unsaved Reservation in the Pending state, the shape
// ReservationManager.Reserve hands to the insert statement.
func NewPending(userID, resourceID string, start, end time.Time, note string) *Reservation {
	return &Reservation{
		UserID:     userID,
		ResourceID: resourceID,
		Status:     Pending,
		Start:      start,
		End:        end,
		Note:       note,
	}
}

// ValidateRange enforces that both bounds are set and Start is strictly
// before End — the one shared time-range rule used by Reservation,
// ReservationQuery and anywhere else a window is accepted from a caller.
func ValidateRange(start, end time.Time) *Error {
	if start.IsZero() || end.IsZero() {
		return ErrInvalidTime()
	}
	if !start.Before(end) {
		return ErrInvalidTime()
	}
	return nil
}

// GetID satisfies pager.Ided so a []*Reservation can be paginated directly.
func (r *Reservation) GetID() int64 {
	return r.ID
}

// ValidateReservationID enforces the one rule ids must satisfy before any
// confirm/update_note/cancel/get call reaches the store: ids are strictly
// positive, 0 meaning "not yet persisted" and never a valid lookup key.
func ValidateReservationID(id int64) *Error {
	if id <= 0 {
		return ErrInvalidReservationId()
	}
	return nil
}

// Validate checks the fields required before a Reservation can be inserted.
func (r *Reservation) Validate() *Error {
	if r.UserID == "" {
		return ErrInvalidUserId()
	}
	if r.ResourceID == "" {
		return ErrInvalidResourceId()
	}
	if err := ValidateRange(r.Start, r.End); err != nil {
		return err
	}
	return nil
}
