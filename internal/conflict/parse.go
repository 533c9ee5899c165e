// Package conflict parses the DETAIL diagnostic of a Postgres GIST
// exclusion-constraint violation into the two colliding windows.
package conflict

import (
	"regexp"
	"time"

	"github.com/shiva/reservation/internal/model"
)

// detailPattern matches a DETAIL string of the shape Postgres emits for an
// exclusion violation on (resource_id, timespan), e.g.:
//
//	Key (resource_id, timespan)=(room-1, ["2022-12-25 15:00:00-07","2022-12-27 12:00:00-07")) conflicts with existing key (resource_id, timespan)=(room-1, ["2022-12-25 15:00:00-07","2022-12-28 12:00:00-07")).
var detailPattern = regexp.MustCompile(
	`^Key \(resource_id, timespan\)=\(([^,]+), \["([^"]+)","([^"]+)"\)\) conflicts with existing key \(resource_id, timespan\)=\(([^,]+), \["([^"]+)","([^"]+)"\)\)\.$`,
)

const pgTimestampLayout = "2006-01-02 15:04:05-07"

// Parse attempts to decode raw into a model.ConflictInfo. If raw doesn't
// match the expected shape, the returned ConflictInfo has Parsed = false
// and Raw set, so callers can still log the original diagnostic.
func Parse(raw string) model.ConflictInfo {
	m := detailPattern.FindStringSubmatch(raw)
	if m == nil {
		return model.ConflictInfo{Raw: raw}
	}

	newStart, err := time.Parse(pgTimestampLayout, m[2])
	if err != nil {
		return model.ConflictInfo{Raw: raw}
	}
	newEnd, err := time.Parse(pgTimestampLayout, m[3])
	if err != nil {
		return model.ConflictInfo{Raw: raw}
	}
	oldStart, err := time.Parse(pgTimestampLayout, m[5])
	if err != nil {
		return model.ConflictInfo{Raw: raw}
	}
	oldEnd, err := time.Parse(pgTimestampLayout, m[6])
	if err != nil {
		return model.ConflictInfo{Raw: raw}
	}

	return model.ConflictInfo{
		Parsed: true,
		New:    model.Window{ResourceID: m[1], Start: newStart, End: newEnd},
		Old:    model.Window{ResourceID: m[4], Start: oldStart, End: oldEnd},
		Raw:    raw,
	}
}
