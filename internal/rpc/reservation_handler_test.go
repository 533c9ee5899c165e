package rpc

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func TestReserveRejectsInvalidBody(t *testing.T) {
	h := NewReservationHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.Reserve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestPathIDRejectsNonInteger(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/reservations/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	if _, ok := pathID(req); ok {
		t.Errorf("pathID() with id %q should fail, got ok = true", "abc")
	}
}
