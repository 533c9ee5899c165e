package rpc

import (
	"log"
	"net/http"

	"github.com/shiva/reservation/internal/model"
)

// writeManagerError maps a model.Error's Kind to an HTTP status and body,
// the same "classify at the boundary, switch on Kind" pattern the teacher
// uses in its handlers (there over sentinel errors, here over a Kind enum).
func writeManagerError(w http.ResponseWriter, err *model.Error) {
	switch err.Kind {
	case model.KindInvalidUserId, model.KindInvalidResourceId, model.KindInvalidReservationId,
		model.KindInvalidTime, model.KindInvalidStatus, model.KindInvalidPageSize, model.KindInvalidCursor:
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_argument", Message: err.Error()})
	case model.KindNotFound:
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found", Message: err.Error()})
	case model.KindConflictReservation:
		writeJSON(w, http.StatusConflict, errorBody{Error: "conflict", Message: err.Error()})
	case model.KindConfigReadError, model.KindConfigParseError, model.KindDbError:
		log.Printf("[rpc] internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal_error"})
	default:
		log.Printf("[rpc] unclassified error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal_error"})
	}
}
