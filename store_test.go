package arcs

import (
	"testing"
)

func storeWith(t *testing.T, names ...string) *Store {
	t.Helper()
	s := NewStore()
	for _, name := range names {
		q := NewQuote(name, "USD")
		q.ID = name // deterministic ids keep the assertions readable
		if err := s.Add(q); err != nil {
			t.Fatalf("Add(%q) returned an unexpected error: %v", name, err)
		}
	}
	return s
}

func order(s *Store) []string {
	var ids []string
	for q := range s.Quotes() {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestStore_AddDuplicate(t *testing.T) {
	s := storeWith(t, "a")
	q := NewQuote("other", "USD")
	q.ID = "a"
	if err := s.Add(q); err == nil {
		t.Fatalf("Add() accepted a duplicate id")
	}
}

func TestStore_Delete(t *testing.T) {
	s := storeWith(t, "a", "b", "c", "d")

	if err := s.Delete("b"); err != nil {
		t.Fatalf("Delete() returned an unexpected error: %v", err)
	}

	want := []string{"a", "c", "d"}
	got := order(s)
	if len(got) != len(want) {
		t.Fatalf("Delete() left %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Delete() left %v, want %v", got, want)
		}
	}
	if s.Get("b") != nil {
		t.Errorf("Get() still finds the deleted quote")
	}
	if err := s.Delete("b"); err == nil {
		t.Errorf("Delete() of an unknown id did not fail")
	}
}

func TestStore_Upsert(t *testing.T) {
	s := storeWith(t, "a", "b", "c")

	replacement := NewQuote("b updated", "USD")
	replacement.ID = "b"
	if err := s.Upsert(replacement); err != nil {
		t.Fatalf("Upsert() returned an unexpected error: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Upsert() changed the store size: %d, want 3", s.Len())
	}
	// replaced in place, order preserved
	got := order(s)
	if got[1] != "b" || s.Get("b").Name != "b updated" {
		t.Errorf("Upsert() did not replace in place: %v", got)
	}

	fresh := NewQuote("new", "USD")
	if err := s.Upsert(fresh); err != nil {
		t.Fatalf("Upsert() returned an unexpected error: %v", err)
	}
	if s.Len() != 4 {
		t.Errorf("Upsert() of a new quote did not append")
	}
}

func TestStore_Find(t *testing.T) {
	s := NewStore()
	q1 := NewQuote("ARCS 2025-08-01", "USD")
	q1.ID = "11111111-aaaa"
	q2 := NewQuote("ARCS 2025-08-02", "USD")
	q2.ID = "12222222-bbbb"
	q2.PONumber = "PO-1042"
	for _, q := range []*Quote{q1, q2} {
		if err := s.Add(q); err != nil {
			t.Fatalf("Add() returned an unexpected error: %v", err)
		}
	}

	testCases := []struct {
		name    string
		query   string
		wantID  string
		wantErr bool
	}{
		{name: "exact id", query: "11111111-aaaa", wantID: "11111111-aaaa"},
		{name: "id prefix", query: "122", wantID: "12222222-bbbb"},
		{name: "exact name", query: "ARCS 2025-08-01", wantID: "11111111-aaaa"},
		{name: "po number", query: "PO-1042", wantID: "12222222-bbbb"},
		{name: "ambiguous prefix", query: "1", wantErr: true},
		{name: "unknown", query: "zzz", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := s.Find(tc.query)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Find(%q) = %v, want an error", tc.query, q.ID)
				}
				return
			}
			if err != nil {
				t.Fatalf("Find(%q) returned an unexpected error: %v", tc.query, err)
			}
			if q.ID != tc.wantID {
				t.Errorf("Find(%q) = %s, want %s", tc.query, q.ID, tc.wantID)
			}
		})
	}
}
