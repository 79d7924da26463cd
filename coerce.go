package gocda

import (
	"math"
	"time"

	"github.com/mitchellh/mapstructure"
)

// coerceValue converts a raw wire value into a Value for the declared field
// type. Coercion is permissive: a value that does not match its declared
// type is kept as-is rather than failing the resource build. Link wrappers
// are always turned into stubs, whatever the declared type says.
func coerceValue(raw interface{}, fieldType string, item *FieldTypeArrayItem) Value {
	if link, ok := extractLink(raw); ok {
		return LinkOf(link)
	}

	switch fieldType {
	case FieldTypeSymbol, FieldTypeText:
		if s, ok := raw.(string); ok {
			return Scalar(s)
		}

	case FieldTypeInteger:
		if f, ok := raw.(float64); ok && f == math.Trunc(f) {
			return Scalar(int64(f))
		}

	case FieldTypeNumber:
		if f, ok := raw.(float64); ok {
			return Scalar(f)
		}

	case FieldTypeBoolean:
		if b, ok := raw.(bool); ok {
			return Scalar(b)
		}

	case FieldTypeDate:
		if s, ok := raw.(string); ok {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				return Scalar(t)
			}
		}

	case FieldTypeLocation:
		if m, ok := raw.(map[string]interface{}); ok {
			var loc Location
			if err := mapstructure.Decode(m, &loc); err == nil {
				return Scalar(&loc)
			}
		}

	case FieldTypeArray:
		if arr, ok := raw.([]interface{}); ok {
			return coerceList(arr, item)
		}
	}

	// Unknown and Object types pass through, as does anything that failed
	// its declared type above.
	if arr, ok := raw.([]interface{}); ok {
		return coerceList(arr, item)
	}
	return Scalar(raw)
}

func coerceList(arr []interface{}, item *FieldTypeArrayItem) Value {
	itemType := ""
	if item != nil {
		itemType = item.Type
	}
	vs := make([]Value, len(arr))
	for i, e := range arr {
		vs[i] = coerceValue(e, itemType, nil)
	}
	return ListOf(vs)
}

// extractLink recognizes the {sys: {type: "Link", linkType, id}} wrapper.
func extractLink(raw interface{}) (ResourceLink, bool) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return ResourceLink{}, false
	}
	sys, ok := m["sys"].(map[string]interface{})
	if !ok {
		return ResourceLink{}, false
	}
	if t, _ := sys["type"].(string); t != TypeLink {
		return ResourceLink{}, false
	}
	kind, _ := sys["linkType"].(string)
	id, _ := sys["id"].(string)
	if id == "" || (kind != TypeEntry && kind != TypeAsset) {
		return ResourceLink{}, false
	}
	return ResourceLink{Kind: kind, ID: id}, true
}

// inferFieldType guesses a declared type from the shape of a raw value.
// Used when an entry's content type schema was not part of the batch.
func inferFieldType(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return FieldTypeSymbol
	case float64:
		return FieldTypeNumber
	case bool:
		return FieldTypeBoolean
	case []interface{}:
		return FieldTypeArray
	case map[string]interface{}:
		if _, ok := extractLink(v); ok {
			return FieldTypeLink
		}
		return FieldTypeObject
	}
	return ""
}
