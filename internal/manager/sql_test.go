package manager

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shiva/reservation/internal/model"
)

func TestClassifyErrorNoRows(t *testing.T) {
	got := classifyError(pgx.ErrNoRows)
	if got.Kind != model.KindNotFound {
		t.Fatalf("classifyError(ErrNoRows).Kind = %v, want KindNotFound", got.Kind)
	}
}

func TestClassifyErrorConflict(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23P01",
		SchemaName: "rsvp",
		TableName:  "reservations",
		Detail: `Key (resource_id, timespan)=(ocean-view-room-713, ["2022-12-25 15:00:00-07","2022-12-27 12:00:00-07")) ` +
			`conflicts with existing key (resource_id, timespan)=(ocean-view-room-713, ["2022-12-25 15:00:00-07","2022-12-28 12:00:00-07")).`,
	}

	got := classifyError(pgErr)
	if got.Kind != model.KindConflictReservation {
		t.Fatalf("classifyError(exclusion violation).Kind = %v, want KindConflictReservation", got.Kind)
	}
	if got.Conflict == nil || !got.Conflict.Parsed {
		t.Fatalf("classifyError(exclusion violation).Conflict not parsed: %+v", got.Conflict)
	}
}

func TestClassifyErrorOtherSchemaIsDbError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23P01", SchemaName: "other", TableName: "reservations"}
	got := classifyError(pgErr)
	if got.Kind != model.KindDbError {
		t.Fatalf("classifyError(unrelated exclusion violation).Kind = %v, want KindDbError", got.Kind)
	}
}

func TestClassifyErrorGeneric(t *testing.T) {
	got := classifyError(errors.New("boom"))
	if got.Kind != model.KindDbError {
		t.Fatalf("classifyError(generic).Kind = %v, want KindDbError", got.Kind)
	}
}
