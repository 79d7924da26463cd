package gocda

import (
	"encoding/json"
	"sort"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type sysEnvelope struct {
	Sys *Sys `json:"sys"`
}

// BuildResource turns one raw response item into a typed resource,
// dispatching on sys.type. Entry link fields come back as unresolved stubs,
// batch resolution rewires them afterwards. A missing or unrecognized
// sys.type yields a MalformedResourceError for this item only.
func BuildResource(raw json.RawMessage, types ContentTypeLookup) (Resource, error) {
	var env sysEnvelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Sys == nil || env.Sys.Type == "" {
		id := ""
		if env.Sys != nil {
			id = env.Sys.ID
		}
		return nil, &MalformedResourceError{ID: id}
	}

	switch env.Sys.Type {
	case TypeEntry:
		return buildEntry(raw, types)
	case TypeAsset:
		return buildAsset(raw)
	case TypeContentType:
		var ct ContentType
		if err := json.Unmarshal(raw, &ct); err != nil {
			return nil, &MalformedResourceError{ID: env.Sys.ID, Type: env.Sys.Type}
		}
		return &ct, nil
	case TypeSpace:
		var sp Space
		if err := json.Unmarshal(raw, &sp); err != nil {
			return nil, &MalformedResourceError{ID: env.Sys.ID, Type: env.Sys.Type}
		}
		return &sp, nil
	case TypeDeletedEntry, TypeDeletedAsset:
		return &DeletedResource{Sys: env.Sys}, nil
	}

	return nil, &MalformedResourceError{ID: env.Sys.ID, Type: env.Sys.Type}
}

func buildEntry(raw json.RawMessage, types ContentTypeLookup) (*Entry, error) {
	var item rawItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, &MalformedResourceError{Type: TypeEntry}
	}

	e := &Entry{
		Sys:    item.Sys,
		Locale: item.Locale,
		Fields: make(map[string]Value, len(item.Fields)),
		Raw:    item.Fields,
	}

	schema := types[e.ContentTypeID()]
	for id, v := range item.Fields {
		if schema != nil {
			if f := schema.Field(id); f != nil {
				e.Fields[id] = coerceValue(v, f.Type, f.Items)
				continue
			}
		}
		// Degraded mode: no schema for this field, coerce by shape.
		e.Fields[id] = coerceValue(v, inferFieldType(v), nil)
	}

	return e, nil
}

func buildAsset(raw json.RawMessage) (*Asset, error) {
	var item rawItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, &MalformedResourceError{Type: TypeAsset}
	}

	a := &Asset{
		Sys: item.Sys,
		Raw: item.Fields,
	}
	a.Title, _ = item.Fields["title"].(string)
	a.Description, _ = item.Fields["description"].(string)

	if file, ok := item.Fields["file"].(map[string]interface{}); ok {
		var af AssetFile
		if err := mapstructure.Decode(file, &af); err == nil {
			a.File = &af
		}
	}

	return a, nil
}

// InferContentType fabricates a schema for an entry whose content type
// metadata was not part of the batch, deriving field types from the raw
// value shapes. Display names are title-cased field ids.
func InferContentType(id string, fields map[string]interface{}) *ContentType {
	ct := &ContentType{
		Sys:  &Sys{ID: id, Type: TypeContentType},
		Name: cases.Title(language.Und).String(id),
	}

	ids := make([]string, 0, len(fields))
	for fid := range fields {
		ids = append(ids, fid)
	}
	sort.Strings(ids)

	for _, fid := range ids {
		f := &Field{
			ID:   fid,
			Name: cases.Title(language.Und).String(fid),
			Type: inferFieldType(fields[fid]),
		}
		if f.Type == FieldTypeLink {
			if link, ok := extractLink(fields[fid]); ok {
				f.LinkType = link.Kind
			}
		}
		ct.Fields = append(ct.Fields, f)
	}

	return ct
}
