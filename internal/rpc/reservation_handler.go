package rpc

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/shiva/reservation/internal/manager"
	"github.com/shiva/reservation/internal/model"
)

// ReservationHandler dispatches the non-streaming reservation operations
// (reserve, confirm, update, cancel, get, filter) to a manager.Manager.
type ReservationHandler struct {
	mgr *manager.Manager
}

// NewReservationHandler wires a handler to the given manager.
func NewReservationHandler(mgr *manager.Manager) *ReservationHandler {
	return &ReservationHandler{mgr: mgr}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil
}

// Reserve handles POST /v1/reservations.
func (h *ReservationHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_body", Message: err.Error()})
		return
	}

	saved, mErr := h.mgr.Reserve(r.Context(), req.toReservation())
	if mErr != nil {
		writeManagerError(w, mErr)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// Confirm handles POST /v1/reservations/{id}/confirm.
func (h *ReservationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeManagerError(w, model.ErrInvalidReservationId())
		return
	}
	saved, err := h.mgr.Confirm(r.Context(), id)
	if err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// Update handles PATCH /v1/reservations/{id}.
func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeManagerError(w, model.ErrInvalidReservationId())
		return
	}

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_body", Message: err.Error()})
		return
	}

	saved, err := h.mgr.UpdateNote(r.Context(), id, req.Note)
	if err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// Cancel handles DELETE /v1/reservations/{id}.
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeManagerError(w, model.ErrInvalidReservationId())
		return
	}
	saved, err := h.mgr.Cancel(r.Context(), id)
	if err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// Get handles GET /v1/reservations/{id}.
func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeManagerError(w, model.ErrInvalidReservationId())
		return
	}
	saved, err := h.mgr.Get(r.Context(), id)
	if err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// Filter handles GET /v1/reservations:filter.
func (h *ReservationHandler) Filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pageSize, _ := strconv.ParseInt(q.Get("page_size"), 10, 32)
	if pageSize == 0 {
		pageSize = 10
	}

	f := &model.ReservationFilter{
		UserID:     q.Get("user_id"),
		ResourceID: q.Get("resource_id"),
		Status:     model.ParseStatus(q.Get("status")),
		Desc:       q.Get("desc") == "true",
		PageSize:   int32(pageSize),
	}
	if cursor := q.Get("cursor"); cursor != "" {
		c, err := strconv.ParseInt(cursor, 10, 64)
		if err != nil {
			writeManagerError(w, model.ErrInvalidCursor())
			return
		}
		f.CursorSet = true
		f.Cursor = c
	}

	rows, info, err := h.mgr.Filter(r.Context(), f)
	if err != nil {
		writeManagerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, filterResponse{
		Reservations: rows,
		Prev:         info.Prev,
		Next:         info.Next,
		Total:        info.Total,
	})
}
