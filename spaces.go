package gocda

import (
	"encoding/json"
	"fmt"
	"net/url"
)

type SpacesService service

func (s *SpacesService) Get(query url.Values) ([]byte, error) {
	path := fmt.Sprintf(pathSpace, s.client.Options.SpaceID)
	return s.client.get(path, query)
}

// Fetch returns the space the client is configured for.
func (s *SpacesService) Fetch() (*Space, error) {
	body, err := s.Get(nil)
	if err != nil {
		return nil, err
	}
	var sp Space
	if err := json.Unmarshal(body, &sp); err != nil {
		return nil, err
	}
	return &sp, nil
}
