package model

import "fmt"

// Kind is the closed set of domain error kinds a caller can switch on.
type Kind int

const (
	KindUnknown Kind = iota
	KindDbError
	KindConfigReadError
	KindConfigParseError
	KindInvalidUserId
	KindInvalidResourceId
	KindInvalidReservationId
	KindInvalidTime
	KindInvalidStatus
	KindInvalidPageSize
	KindInvalidCursor
	KindConflictReservation
	KindNotFound
)

// Error is the domain error type every manager and rpc operation returns.
// Conflict errors carry the parsed conflict windows in Conflict; all other
// kinds carry an optional wrapped cause in Cause.
type Error struct {
	Kind     Kind
	Message  string
	Cause    error
	Conflict *ConflictInfo
}

func (e *Error) Error() string {
	if e.Conflict != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Conflict.Raw)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newErr(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func WrapDbError(cause error) *Error {
	return &Error{Kind: KindDbError, Message: "database error", Cause: cause}
}

func WrapConfigReadError(cause error) *Error {
	return &Error{Kind: KindConfigReadError, Message: "failed to read config file", Cause: cause}
}

func WrapConfigParseError(cause error) *Error {
	return &Error{Kind: KindConfigParseError, Message: "failed to parse config file", Cause: cause}
}

func ErrInvalidUserId() *Error {
	return newErr(KindInvalidUserId, "invalid user id")
}

func ErrInvalidResourceId() *Error {
	return newErr(KindInvalidResourceId, "invalid resource id")
}

func ErrInvalidReservationId() *Error {
	return newErr(KindInvalidReservationId, "invalid reservation id")
}

func ErrInvalidTime() *Error {
	return newErr(KindInvalidTime, "invalid start or end time")
}

func ErrInvalidStatus() *Error {
	return newErr(KindInvalidStatus, "invalid reservation status")
}

func ErrInvalidPageSize() *Error {
	return newErr(KindInvalidPageSize, "invalid page size")
}

func ErrInvalidCursor() *Error {
	return newErr(KindInvalidCursor, "invalid cursor")
}

func ErrNotFound() *Error {
	return newErr(KindNotFound, "reservation not found")
}

func ErrConflictReservation(info *ConflictInfo) *Error {
	return &Error{Kind: KindConflictReservation, Message: "reservation conflicts with an existing one", Conflict: info}
}

// Is lets errors.Is(err, model.ErrNotFound()) compare by Kind, not identity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
