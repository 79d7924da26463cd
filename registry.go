package gocda

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DuplicatePolicy controls what Register does when a content type id is
// already bound to a model.
type DuplicatePolicy int

const (
	// OverwriteDuplicates makes the last registration win.
	OverwriteDuplicates DuplicatePolicy = iota
	// RejectDuplicates makes Register return ErrDuplicateModel.
	RejectDuplicates
)

// ModelField declares one attribute of a custom model: which entry field it
// is populated from and how that field is typed.
type ModelField struct {
	Attr     string // key on the target struct (mapstructure tag or field name)
	FieldID  string // entry field id
	Type     string // declared field type, one of the FieldType constants
	LinkType string // target kind for Link fields (TypeEntry or TypeAsset)
	ItemType string // element type for Array fields
}

// ModelDescriptor binds a content type id to a model constructor and its
// field table. When New is nil the model materializes as map[string]interface{}.
type ModelDescriptor struct {
	ContentType string
	New         func() interface{}
	Fields      []ModelField
}

// ModelRegistry associates content type ids with model descriptors. It is
// owned by the client, configured before fetching and only read afterwards.
type ModelRegistry struct {
	onDuplicate DuplicatePolicy
	models      map[string]*ModelDescriptor
}

func NewModelRegistry(onDuplicate DuplicatePolicy) *ModelRegistry {
	return &ModelRegistry{
		onDuplicate: onDuplicate,
		models:      make(map[string]*ModelDescriptor),
	}
}

func (r *ModelRegistry) Register(d *ModelDescriptor) error {
	if d == nil || d.ContentType == "" {
		return fmt.Errorf("model descriptor requires a content type id")
	}
	if _, exists := r.models[d.ContentType]; exists && r.onDuplicate == RejectDuplicates {
		return fmt.Errorf("%w: %s", ErrDuplicateModel, d.ContentType)
	}
	r.models[d.ContentType] = d
	return nil
}

func (r *ModelRegistry) ModelFor(contentType string) (*ModelDescriptor, bool) {
	if r == nil {
		return nil, false
	}
	d, ok := r.models[contentType]
	return d, ok
}

// Bind populates a model instance for the entry from its field values,
// walking the descriptor's field table. Link-valued attributes should be
// declared as interface{} on the target struct so resolved references keep
// their identity. Entries of unregistered content types bind to nil.
func (r *ModelRegistry) Bind(e *Entry) (interface{}, error) {
	d, ok := r.ModelFor(e.ContentTypeID())
	if !ok {
		return nil, nil
	}

	attrs := make(map[string]interface{}, len(d.Fields))
	for _, mf := range d.Fields {
		v, ok := e.Fields[mf.FieldID]
		if !ok {
			continue
		}
		// Scalars may have been built without schema metadata; the
		// descriptor's declared type gets a second chance at coercion.
		if v.Kind() == ValueScalar && mf.Type != "" {
			v = coerceValue(v.Scalar(), mf.Type, nil)
		}
		attrs[mf.Attr] = v.Interface()
	}

	var instance interface{}
	if d.New != nil {
		instance = d.New()
	} else {
		instance = &map[string]interface{}{}
	}
	if err := mapstructure.Decode(attrs, instance); err != nil {
		return nil, fmt.Errorf("bind model %s: %w", d.ContentType, err)
	}
	if m, ok := instance.(*map[string]interface{}); ok {
		return *m, nil
	}
	return instance, nil
}
