package rpc

import (
	"time"

	"github.com/shiva/reservation/internal/model"
)

// createReservationRequest is the wire body of POST /v1/reservations.
type createReservationRequest struct {
	UserID     string    `json:"user_id"`
	ResourceID string    `json:"resource_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Note       string    `json:"note"`
	Status     string    `json:"status"`
}

func (req *createReservationRequest) toReservation() *model.Reservation {
	r := model.NewPending(req.UserID, req.ResourceID, req.Start, req.End, req.Note)
	if req.Status != "" {
		r.Status = model.ParseStatus(req.Status)
	}
	return r
}

// updateNoteRequest is the wire body of PATCH /v1/reservations/{id}.
type updateNoteRequest struct {
	Note string `json:"note"`
}

// filterResponse is the wire body of GET /v1/reservations:filter.
type filterResponse struct {
	Reservations []*model.Reservation `json:"reservations"`
	Prev         int64                `json:"prev"`
	Next         int64                `json:"next"`
	Total        int64                `json:"total"`
}
