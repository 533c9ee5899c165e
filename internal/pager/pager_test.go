package pager

import (
	"reflect"
	"testing"
)

type row struct{ id int64 }

func (r row) GetID() int64 { return r.id }

func rows(ids ...int64) []row {
	out := make([]row, len(ids))
	for i, id := range ids {
		out[i] = row{id: id}
	}
	return out
}

func ids(rs []row) []int64 {
	out := make([]int64, len(rs))
	for i, r := range rs {
		out[i] = r.id
	}
	return out
}

func TestPageNoCursorHasNext(t *testing.T) {
	// page_size=3, no cursor: fetch limit 4, the fetch filled the limit.
	page, info := Page(rows(1, 2, 3, 4), 3, false, 0)
	if !reflect.DeepEqual(ids(page), []int64{1, 2, 3}) {
		t.Errorf("page ids = %v", ids(page))
	}
	if info.Prev != NoCursor {
		t.Errorf("Prev = %d, want NoCursor", info.Prev)
	}
	if info.Next != 3 {
		t.Errorf("Next = %d, want 3", info.Next)
	}
}

func TestPageNoCursorNoNext(t *testing.T) {
	page, info := Page(rows(1, 2), 3, false, 0)
	if !reflect.DeepEqual(ids(page), []int64{1, 2}) {
		t.Errorf("page ids = %v", ids(page))
	}
	if info.Next != NoCursor {
		t.Errorf("Next = %d, want NoCursor", info.Next)
	}
}

func TestPageWithCursorHasPrevAndNext(t *testing.T) {
	// cursor=3 present as first row, page_size=2: fetch limit 4.
	page, info := Page(rows(3, 4, 5, 6), 2, true, 3)
	if !reflect.DeepEqual(ids(page), []int64{4, 5}) {
		t.Errorf("page ids = %v", ids(page))
	}
	if info.Prev != 3 {
		t.Errorf("Prev = %d, want 3", info.Prev)
	}
	if info.Next != 5 {
		t.Errorf("Next = %d, want 5", info.Next)
	}
}

func TestPageWithCursorLastPage(t *testing.T) {
	page, info := Page(rows(3, 4, 5), 2, true, 3)
	if !reflect.DeepEqual(ids(page), []int64{4, 5}) {
		t.Errorf("page ids = %v", ids(page))
	}
	if info.Prev != 3 {
		t.Errorf("Prev = %d, want 3", info.Prev)
	}
	if info.Next != NoCursor {
		t.Errorf("Next = %d, want NoCursor", info.Next)
	}
}
