package gocda

import (
	"fmt"
	"net/url"
)

type EntriesService service

// Get returns the raw response body for an entries query.
func (s *EntriesService) Get(query url.Values) ([]byte, error) {
	path := fmt.Sprintf(pathEntries, s.client.Options.SpaceID)
	return s.client.get(path, query)
}

// Fetch runs an entries query and returns the fully built batch: every
// primary and included resource typed, links resolved, models bound.
func (s *EntriesService) Fetch(q *Query) (*Array, error) {
	body, err := s.Get(q.Values())
	if err != nil {
		return nil, err
	}
	return BuildCollection(body, s.client.types, s.client.registry)
}

// First fetches a single matching entry, nil when nothing matches.
func (s *EntriesService) First(q *Query) (*Entry, error) {
	if q == nil {
		q = NewQuery()
	}
	arr, err := s.Fetch(q.Limit(1))
	if err != nil {
		return nil, err
	}
	if arr.Len() == 0 {
		return nil, nil
	}
	if e, ok := arr.At(0).(*Entry); ok {
		return e, nil
	}
	return nil, nil
}
