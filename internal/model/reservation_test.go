package model

import (
	"testing"
	"time"
)

func TestValidateRange(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Hour)

	tests := []struct {
		name       string
		start, end time.Time
		wantErr    bool
	}{
		{"ok", now, later, false},
		{"zero start", time.Time{}, later, true},
		{"zero end", now, time.Time{}, true},
		{"start after end", later, now, true},
		{"start equals end", now, now, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(tt.start, tt.end)
			if tt.wantErr && err == nil {
				t.Fatalf("ValidateRange() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ValidateRange() = %v, want nil", err)
			}
		})
	}
}

func TestReservationValidate(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Hour)

	r := NewPending("sskid", "ocean-view-room-713", now, later, "")
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	r.UserID = ""
	if err := r.Validate(); err == nil || err.Kind != KindInvalidUserId {
		t.Fatalf("Validate() with empty UserID = %v, want KindInvalidUserId", err)
	}
}

func TestValidateReservationID(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		wantErr bool
	}{
		{"positive", 1, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReservationID(tt.id)
			if tt.wantErr && (err == nil || err.Kind != KindInvalidReservationId) {
				t.Fatalf("ValidateReservationID(%d) = %v, want KindInvalidReservationId", tt.id, err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ValidateReservationID(%d) = %v, want nil", tt.id, err)
			}
		})
	}
}
