package gocda

import (
	"encoding/json"
	"errors"
)

// Array is the result collection of one response: the primary items in
// response order plus the paging numbers reported by the API. Includes are
// not items, they are only reachable through resolved references and Lookup.
type Array struct {
	Sys   *Sys
	Total int
	Skip  int
	Limit int
	Items []Resource

	mapped map[resourceKey]Resource
}

func (a *Array) Len() int { return len(a.Items) }

func (a *Array) At(i int) Resource { return a.Items[i] }

// Slice returns items in [from, to), clamped to the collection bounds.
func (a *Array) Slice(from, to int) []Resource {
	if from < 0 {
		from = 0
	}
	if to > len(a.Items) {
		to = len(a.Items)
	}
	if from >= to {
		return nil
	}
	return a.Items[from:to]
}

// Lookup finds a batch member (primary or included) by kind and id.
func (a *Array) Lookup(kind, id string) (Resource, bool) {
	r, ok := a.mapped[resourceKey{kind: kind, id: id}]
	return r, ok
}

// Entries returns the primary items that are entries, in response order.
func (a *Array) Entries() []*Entry {
	var out []*Entry
	for _, r := range a.Items {
		if e, ok := r.(*Entry); ok {
			out = append(out, e)
		}
	}
	return out
}

// BuildCollection parses a collection response body, builds every item and
// included resource, resolves links across the whole batch and binds
// registered models. Malformed items are skipped and reported through the
// returned error (joined per item) while the rest of the batch goes through.
func BuildCollection(body []byte, types ContentTypeLookup, registry *ModelRegistry) (*Array, error) {
	var col Collection
	if err := json.Unmarshal(body, &col); err != nil {
		return nil, err
	}

	arr := &Array{
		Sys:    col.Sys,
		Total:  col.Total,
		Skip:   col.Skip,
		Limit:  col.Limit,
		mapped: make(map[resourceKey]Resource),
	}

	var errs []error
	batch := make([]Resource, 0, len(col.Items))

	for _, raw := range col.Items {
		r, err := BuildResource(raw, types)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		arr.Items = append(arr.Items, r)
		batch = append(batch, r)
	}

	if col.Includes != nil {
		for _, includes := range [][]json.RawMessage{col.Includes.Entry, col.Includes.Asset} {
			for _, raw := range includes {
				r, err := BuildResource(raw, types)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				batch = append(batch, r)
			}
		}
	}

	ResolveBatch(batch)

	for _, r := range batch {
		if k, ok := keyFor(r); ok {
			arr.mapped[k] = r
		}
		if e, ok := r.(*Entry); ok && registry != nil {
			// Binding is best-effort, a model that fails to decode
			// leaves the generic entry untouched.
			if model, err := registry.Bind(e); err == nil {
				e.Model = model
			}
		}
	}

	return arr, errors.Join(errs...)
}
