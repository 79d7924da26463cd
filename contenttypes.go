package gocda

import (
	"encoding/json"
	"fmt"
	"net/url"
)

type ContentTypesService service

func (s *ContentTypesService) Get(query url.Values) ([]byte, error) {
	path := fmt.Sprintf(pathContentTypes, s.client.Options.SpaceID)
	return s.client.get(path, query)
}

func (s *ContentTypesService) GetSingle(contentTypeID string) ([]byte, error) {
	path := fmt.Sprintf(pathContentType, s.client.Options.SpaceID, contentTypeID)
	return s.client.get(path, nil)
}

// Fetch returns every content type of the space.
func (s *ContentTypesService) Fetch() ([]*ContentType, error) {
	body, err := s.Get(nil)
	if err != nil {
		return nil, err
	}
	var types ContentTypes
	if err := json.Unmarshal(body, &types); err != nil {
		return nil, err
	}
	return types.Items, nil
}

// FetchOne returns a single content type schema by id.
func (s *ContentTypesService) FetchOne(contentTypeID string) (*ContentType, error) {
	body, err := s.GetSingle(contentTypeID)
	if err != nil {
		return nil, err
	}
	var ct ContentType
	if err := json.Unmarshal(body, &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}
