package gocda

import (
	"fmt"
	"net/url"
)

type AssetsService service

func (s *AssetsService) Get(query url.Values) ([]byte, error) {
	path := fmt.Sprintf(pathAssets, s.client.Options.SpaceID)
	return s.client.get(path, query)
}

func (s *AssetsService) GetSingle(id string) ([]byte, error) {
	path := fmt.Sprintf(pathAsset, s.client.Options.SpaceID, id)
	return s.client.get(path, nil)
}

// FetchOne builds a single asset by id.
func (s *AssetsService) FetchOne(id string) (*Asset, error) {
	body, err := s.GetSingle(id)
	if err != nil {
		return nil, err
	}
	r, err := BuildResource(body, s.client.types)
	if err != nil {
		return nil, err
	}
	a, ok := r.(*Asset)
	if !ok {
		return nil, &MalformedResourceError{ID: id, Type: TypeAsset}
	}
	return a, nil
}
