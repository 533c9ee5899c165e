// Package pager implements the cursor-window trim for id-ordered,
// over-fetched result sets: given page_size+1(+1) rows fetched after (or
// starting at) a cursor, it decides which rows belong on the page and
// whether a previous/next page exists.
package pager

// Ided is the minimal shape pager needs from a row: its id, for comparing
// against the requested cursor.
type Ided interface {
	GetID() int64
}

// Info carries the prev/next cursors for a page. A value of -1 means
// "no such page" — the sentinel the wire protocol and the source
// implementation both use in place of an optional integer.
type Info struct {
	Prev  int64
	Next  int64
	Total int64
}

const NoCursor int64 = -1

// Page trims rows (fetched with limit = pageSize + 1 + (cursorSet?1:0) in
// the requested id order, after or starting at the cursor) down to at most
// pageSize rows plus Info describing its neighbors. A leading row whose id
// is the cursor is dropped. Prev is the cursor whenever one was given, and
// Next is the id of the last kept row when more rows follow. cursorSet must
// match whether the caller's filter carried an explicit cursor; cursor is
// only read when cursorSet is true.
func Page[T Ided](rows []T, pageSize int32, cursorSet bool, cursor int64) ([]T, Info) {
	hasCursorRow := cursorSet && len(rows) > 0 && rows[0].GetID() == cursor
	start := 0
	if hasCursorRow {
		start = 1
	}

	hasNext := len(rows)-start > int(pageSize)
	end := len(rows)
	if hasNext {
		end = start + int(pageSize)
	}

	info := Info{Prev: NoCursor, Next: NoCursor}
	if cursorSet {
		info.Prev = cursor
	}
	if hasNext {
		info.Next = rows[end-1].GetID()
	}

	return rows[start:end], info
}
