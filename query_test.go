package arcs

import (
	"strings"
	"testing"
)

func TestQuery(t *testing.T) {
	s := NewStore()
	for _, q := range []*Quote{
		testQuote("a1", "ARCS 2025-08-01"),
		testQuote("b2", "ARCS 2025-08-02"),
	} {
		if err := s.Add(q); err != nil {
			t.Fatalf("Add() returned an unexpected error: %v", err)
		}
	}

	tests := []struct {
		path string
		want []string
	}{
		{"$[*].name", []string{"ARCS 2025-08-01", "ARCS 2025-08-02"}},
		{"$[0].items[*].part_number", []string{"WDG-7", "BRK-2"}},
		{"$[1].po_number", []string{"PO-1042"}},
	}
	for _, tc := range tests {
		got, err := Query(s, tc.path)
		if err != nil {
			t.Errorf("Query(%q) returned an unexpected error: %v", tc.path, err)
			continue
		}
		for _, w := range tc.want {
			if !strings.Contains(got, w) {
				t.Errorf("Query(%q) = %s, missing %q", tc.path, got, w)
			}
		}
	}
}

func TestQuery_BadPath(t *testing.T) {
	s := NewStore()
	if _, err := Query(s, "$["); err == nil {
		t.Error("Query() with a malformed path did not fail")
	}
}
