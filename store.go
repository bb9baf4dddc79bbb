package arcs

import (
	"fmt"
	"iter"
	"strings"

	"github.com/google/uuid"
)

// Store is the collection of all quotes known to the application.
//
// Quotes keep their stored order; the id index only serves lookups.
type Store struct {
	quotes []*Quote
	index  map[string]*Quote
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		quotes: make([]*Quote, 0),
		index:  make(map[string]*Quote),
	}
}

// Len returns the number of quotes in the store.
func (s *Store) Len() int { return len(s.quotes) }

// Quotes iterates over the quotes in stored order.
func (s *Store) Quotes() iter.Seq[*Quote] {
	return func(yield func(*Quote) bool) {
		for _, q := range s.quotes {
			if !yield(q) {
				return
			}
		}
	}
}

// Get returns the quote with this id, or nil if unknown.
func (s *Store) Get(id string) *Quote {
	return s.index[id]
}

// Add appends a quote. Adding a duplicate id is an error.
func (s *Store) Add(q *Quote) error {
	if q.ID == "" {
		return validationf("quote has no id")
	}
	if _, exists := s.index[q.ID]; exists {
		return validationf("quote id %q already exists", q.ID)
	}
	s.quotes = append(s.quotes, q)
	s.index[q.ID] = q
	return nil
}

// Upsert replaces the stored quote with the same id in place, or appends the
// quote when the id is new. This is the explicit-save semantics: the whole
// store is flushed to disk afterwards by the caller.
func (s *Store) Upsert(q *Quote) error {
	if q.ID == "" {
		return validationf("quote has no id")
	}
	if _, exists := s.index[q.ID]; exists {
		for i, old := range s.quotes {
			if old.ID == q.ID {
				s.quotes[i] = q
				break
			}
		}
		s.index[q.ID] = q
		return nil
	}
	return s.Add(q)
}

// Delete removes exactly the quote with this id, leaving the others and
// their order unchanged. Deleting an unknown id is an error.
func (s *Store) Delete(id string) error {
	if _, exists := s.index[id]; !exists {
		return fmt.Errorf("no quote with id %q", id)
	}
	for i, q := range s.quotes {
		if q.ID == id {
			s.quotes = append(s.quotes[:i], s.quotes[i+1:]...)
			break
		}
	}
	delete(s.index, id)
	return nil
}

// Find returns the unique quote matching the query.
// A query matches on exact id, id prefix, exact name, or exact PO number.
// An ambiguous or unknown query is an error.
func (s *Store) Find(query string) (*Quote, error) {
	if q, ok := s.index[query]; ok {
		return q, nil
	}
	var matches []*Quote
	for _, q := range s.quotes {
		if strings.HasPrefix(q.ID, query) || q.Name == query ||
			(q.PONumber != "" && q.PONumber == query) {
			matches = append(matches, q)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("could not find quote %q", query)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("multiple quotes match %q", query)
	}
}

// FreshID returns an id not present in the store.
func (s *Store) FreshID() string {
	for {
		id := uuid.NewString()
		if _, exists := s.index[id]; !exists {
			return id
		}
	}
}
