package rpc

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shiva/reservation/internal/model"
)

func TestWriteManagerErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *model.Error
		want int
	}{
		{"invalid argument", model.ErrInvalidCursor(), http.StatusBadRequest},
		{"not found", model.ErrNotFound(), http.StatusNotFound},
		{"conflict", model.ErrConflictReservation(&model.ConflictInfo{}), http.StatusConflict},
		{"db error", model.WrapDbError(nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeManagerError(rec, tt.err)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
