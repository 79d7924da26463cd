package gocda

import (
	"errors"
	"fmt"
)

// ErrDuplicateModel is returned by Register under RejectDuplicates when a
// model is already bound to the content type id.
var ErrDuplicateModel = errors.New("model already registered for content type")

// APIError carries a non-2xx response from the delivery API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// MalformedResourceError marks a single response item whose sys.type is
// missing or unrecognized. The rest of the batch is unaffected.
type MalformedResourceError struct {
	ID   string
	Type string
}

func (e *MalformedResourceError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("malformed resource %q: missing sys.type", e.ID)
	}
	return fmt.Sprintf("malformed resource %q: unrecognized sys.type %q", e.ID, e.Type)
}

// NotFoundError is returned by manual link resolution when the target does
// not exist remotely.
type NotFoundError struct {
	Link ResourceLink
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Link.Kind, e.Link.ID)
}
