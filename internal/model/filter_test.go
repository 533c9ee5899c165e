package model

import "testing"

func TestFilterToSQL(t *testing.T) {
	f := &ReservationFilter{
		UserID:   "tyrchen",
		Status:   Pending,
		PageSize: 10,
	}

	got := f.ToSQL()
	want := "SELECT * FROM rsvp.reservations WHERE status = 'pending'::rsvp.reservation_status AND id > 0 AND user_id = 'tyrchen' ORDER BY id ASC LIMIT 11"
	if got != want {
		t.Errorf("ToSQL() = %q, want %q", got, want)
	}
}

func TestFilterToSQLDescWithCursor(t *testing.T) {
	f := &ReservationFilter{
		ResourceID: "ocean-view-room-713",
		Status:     Confirmed,
		CursorSet:  true,
		Cursor:     100,
		Desc:       true,
		PageSize:   20,
	}

	got := f.ToSQL()
	want := "SELECT * FROM rsvp.reservations WHERE status = 'confirmed'::rsvp.reservation_status AND id < 100 AND resource_id = 'ocean-view-room-713' ORDER BY id DESC LIMIT 22"
	if got != want {
		t.Errorf("ToSQL() = %q, want %q", got, want)
	}
}

func TestFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		f       ReservationFilter
		wantErr Kind
	}{
		{"too small", ReservationFilter{PageSize: 5}, KindInvalidPageSize},
		{"too big", ReservationFilter{PageSize: 200}, KindInvalidPageSize},
		{"bad cursor", ReservationFilter{PageSize: 10, CursorSet: true, Cursor: 0}, KindInvalidCursor},
		{"ok", ReservationFilter{PageSize: 10}, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.f.Validate()
			if tt.wantErr == KindUnknown {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Kind != tt.wantErr {
				t.Fatalf("Validate() = %v, want kind %v", err, tt.wantErr)
			}
		})
	}
}

func TestFilterNormalize(t *testing.T) {
	f := &ReservationFilter{Status: Unknown}
	f.Normalize()
	if f.Status != Pending {
		t.Errorf("Normalize() left Status = %v, want Pending", f.Status)
	}
}

func TestFilterGetCursor(t *testing.T) {
	f := &ReservationFilter{}
	if got := f.GetCursor(); got != 0 {
		t.Errorf("GetCursor() ascending default = %d, want 0", got)
	}
	f.Desc = true
	if got := f.GetCursor(); got == 0 {
		t.Errorf("GetCursor() descending default should not be 0")
	}
	f.CursorSet = true
	f.Cursor = 42
	if got := f.GetCursor(); got != 42 {
		t.Errorf("GetCursor() = %d, want 42", got)
	}
}
