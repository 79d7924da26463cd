package gocda

import (
	"net/url"
	"strconv"
)

// Query accumulates delivery API query parameters.
type Query struct {
	values url.Values
}

func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

func (q *Query) ContentType(id string) *Query {
	q.values.Set("content_type", id)
	return q
}

func (q *Query) ID(id string) *Query {
	q.values.Set("sys.id", id)
	return q
}

func (q *Query) Limit(n int) *Query {
	q.values.Set("limit", strconv.Itoa(n))
	return q
}

func (q *Query) Skip(n int) *Query {
	q.values.Set("skip", strconv.Itoa(n))
	return q
}

// Include sets how many levels of linked resources the API bundles into
// the includes section.
func (q *Query) Include(depth int) *Query {
	q.values.Set("include", strconv.Itoa(depth))
	return q
}

func (q *Query) Locale(code string) *Query {
	q.values.Set("locale", code)
	return q
}

func (q *Query) Param(key, value string) *Query {
	q.values.Set(key, value)
	return q
}

func (q *Query) Values() url.Values {
	if q == nil {
		return nil
	}
	return q.values
}
