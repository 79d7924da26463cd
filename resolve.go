package gocda

// Batch link resolution. The index over every built resource is completed
// before any field is rewired, so traversal order cannot change the
// outcome and cycles need no special handling: a cycle is just two
// resolved references pointing at each other.

type resourceKey struct {
	kind string
	id   string
}

func keyFor(r Resource) (resourceKey, bool) {
	sys := r.ResourceSys()
	if sys == nil || sys.ID == "" {
		return resourceKey{}, false
	}
	switch sys.Type {
	case TypeEntry, TypeAsset:
		return resourceKey{kind: sys.Type, id: sys.ID}, true
	}
	return resourceKey{}, false
}

// ResolveBatch rewires link stubs in every entry's fields to direct
// references wherever the target entry or asset exists in the batch.
// Stubs whose target is absent stay in place. Resolving an already
// resolved batch is a no-op.
func ResolveBatch(resources []Resource) {
	index := make(map[resourceKey]Resource, len(resources))
	for _, r := range resources {
		if k, ok := keyFor(r); ok {
			index[k] = r
		}
	}

	for _, r := range resources {
		if e, ok := r.(*Entry); ok {
			resolveFields(e.Fields, index)
		}
	}
}

func resolveFields(fields map[string]Value, index map[resourceKey]Resource) {
	for id, v := range fields {
		fields[id] = resolveValue(v, index)
	}
}

func resolveValue(v Value, index map[resourceKey]Resource) Value {
	switch v.Kind() {
	case ValueLink:
		link, _ := v.Link()
		if target, ok := index[resourceKey{kind: link.Kind, id: link.ID}]; ok {
			return ResourceOf(target)
		}
		return v
	case ValueList:
		list := v.List()
		for i, e := range list {
			list[i] = resolveValue(e, index)
		}
		return ListOf(list)
	}
	return v
}
