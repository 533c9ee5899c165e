package conflict

import "testing"

func TestParse(t *testing.T) {
	raw := `Key (resource_id, timespan)=(ocean-view-room-713, ["2022-12-25 15:00:00-07","2022-12-27 12:00:00-07")) conflicts with existing key (resource_id, timespan)=(ocean-view-room-713, ["2022-12-25 15:00:00-07","2022-12-28 12:00:00-07")).`

	info := Parse(raw)
	if !info.Parsed {
		t.Fatalf("Parse() did not match, raw = %q", raw)
	}
	if info.New.ResourceID != "ocean-view-room-713" || info.Old.ResourceID != "ocean-view-room-713" {
		t.Errorf("resource ids = %q / %q, want ocean-view-room-713", info.New.ResourceID, info.Old.ResourceID)
	}
	if info.New.End.Before(info.New.Start) {
		t.Errorf("new window end before start")
	}
	if info.Old.End.Equal(info.New.End) {
		t.Errorf("expected distinct end times for new vs existing window")
	}
}

func TestParseUnmatched(t *testing.T) {
	info := Parse("not a diagnostic string")
	if info.Parsed {
		t.Errorf("Parse() matched unexpectedly")
	}
	if info.Raw != "not a diagnostic string" {
		t.Errorf("Raw = %q, want original input preserved", info.Raw)
	}
}
