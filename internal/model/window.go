package model

import "time"

// Window is a resource's half-open reservation span [Start, End).
type Window struct {
	ResourceID string
	Start      time.Time
	End        time.Time
}

// ConflictInfo describes why a reserve/update call collided with the
// GIST exclusion constraint. Parsed is false when the diagnostic text
// didn't match the expected Postgres DETAIL shape, in which case New/Old
// are zero and Raw holds the original diagnostic for logging.
type ConflictInfo struct {
	Parsed bool
	New    Window
	Old    Window
	Raw    string
}
