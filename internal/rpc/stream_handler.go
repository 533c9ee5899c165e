package rpc

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shiva/reservation/internal/manager"
	"github.com/shiva/reservation/internal/model"
)

// StreamHandler dispatches the two streaming operations (query, listen),
// each wrapping a manager.Result channel into newline-delimited JSON
// flushed to the client one item at a time.
type StreamHandler struct {
	mgr *manager.Manager
}

// NewStreamHandler wires a handler to the given manager.
func NewStreamHandler(mgr *manager.Manager) *StreamHandler {
	return &StreamHandler{mgr: mgr}
}

// streamLine is one line of the NDJSON response body.
type streamLine struct {
	Reservation *model.Reservation `json:"reservation,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// drain copies a manager.Result channel onto the response as NDJSON,
// flushing after every line so the client observes rows as they arrive
// instead of buffered until the connection closes. It returns once the
// channel closes or the client disconnects (r.Context().Done()).
func drain(w http.ResponseWriter, r *http.Request, ch <-chan manager.Result) {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)

	flusher, canFlush := w.(http.Flusher)
	enc := json.NewEncoder(w)

	for {
		select {
		case <-r.Context().Done():
			return
		case item, ok := <-ch:
			if !ok {
				return
			}
			line := streamLine{Reservation: item.Value}
			if item.Err != nil {
				line.Error = item.Err.Error()
			}
			if err := enc.Encode(line); err != nil {
				return
			}
			if canFlush {
				flusher.Flush()
			}
		}
	}
}

// Query handles GET /v1/reservations, streamed.
func (h *StreamHandler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err1 := time.Parse(time.RFC3339, q.Get("start"))
	end, err2 := time.Parse(time.RFC3339, q.Get("end"))
	if err1 != nil || err2 != nil {
		writeManagerError(w, model.ErrInvalidTime())
		return
	}

	query := &model.ReservationQuery{
		UserID:     q.Get("user_id"),
		ResourceID: q.Get("resource_id"),
		Status:     model.ParseStatus(q.Get("status")),
		Start:      start,
		End:        end,
		Desc:       q.Get("desc") == "true",
	}

	ch, mErr := h.mgr.Query(r.Context(), query)
	if mErr != nil {
		writeManagerError(w, mErr)
		return
	}
	drain(w, r, ch)
}

// Listen handles GET /v1/reservations:listen, streamed.
func (h *StreamHandler) Listen(w http.ResponseWriter, r *http.Request) {
	ch, mErr := h.mgr.Listen(r.Context())
	if mErr != nil {
		writeManagerError(w, mErr)
		return
	}
	drain(w, r, ch)
}
