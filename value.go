package gocda

// ValueKind discriminates the variants a field value can take.
type ValueKind int

const (
	ValueScalar ValueKind = iota
	ValueList
	ValueLink     // unresolved ResourceLink stub
	ValueResource // resolved reference into the batch
)

// Value is the tagged variant held in Entry.Fields. A value is either a
// scalar, an ordered list of values, an unresolved link stub, or a resolved
// reference to another resource in the same batch.
type Value struct {
	kind   ValueKind
	scalar interface{}
	list   []Value
	link   ResourceLink
	res    Resource
}

func Scalar(v interface{}) Value { return Value{kind: ValueScalar, scalar: v} }

func ListOf(vs []Value) Value { return Value{kind: ValueList, list: vs} }

func LinkOf(l ResourceLink) Value { return Value{kind: ValueLink, link: l} }

func ResourceOf(r Resource) Value { return Value{kind: ValueResource, res: r} }

func (v Value) Kind() ValueKind { return v.kind }

// Scalar returns the scalar payload, nil for non-scalar values.
func (v Value) Scalar() interface{} {
	if v.kind != ValueScalar {
		return nil
	}
	return v.scalar
}

// List returns the element values, nil for non-list values.
func (v Value) List() []Value {
	if v.kind != ValueList {
		return nil
	}
	return v.list
}

// Link returns the unresolved stub, false when the value is not a stub.
func (v Value) Link() (ResourceLink, bool) {
	if v.kind != ValueLink {
		return ResourceLink{}, false
	}
	return v.link, true
}

// Resource returns the resolved reference, false when not resolved.
func (v Value) Resource() (Resource, bool) {
	if v.kind != ValueResource {
		return nil, false
	}
	return v.res, true
}

// Interface unwraps the value into a plain Go value: scalars as-is, lists as
// []interface{}, stubs as ResourceLink and resolved references as Resource.
func (v Value) Interface() interface{} {
	switch v.kind {
	case ValueList:
		out := make([]interface{}, len(v.list))
		for i, e := range v.list {
			out[i] = e.Interface()
		}
		return out
	case ValueLink:
		return v.link
	case ValueResource:
		return v.res
	default:
		return v.scalar
	}
}
