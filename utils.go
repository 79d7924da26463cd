package gocda

import (
	"regexp"
	"strings"
)

func fmtTableName(contentType string) string {
	return toSnakeCase(strings.ToLower(contentType))
}

var camel = regexp.MustCompile("(^[^A-Z]*|[A-Z]*)([A-Z][^A-Z]+|$)")

func toSnakeCase(s string) string {
	var a []string
	for _, sub := range camel.FindAllStringSubmatch(s, -1) {
		if sub[1] != "" {
			a = append(a, sub[1])
		}
		if sub[2] != "" {
			a = append(a, sub[2])
		}
	}
	return strings.ToLower(strings.Join(a, "_"))
}

func displayFieldValue(e *Entry, types ContentTypeLookup) string {
	ct := types[e.ContentTypeID()]
	if ct != nil && ct.DisplayField != "" {
		if v, ok := e.Fields[ct.DisplayField]; ok {
			if s, ok := v.Scalar().(string); ok && s != "" {
				return s
			}
		}
	}
	if e.Sys != nil {
		return e.Sys.ID
	}
	return ""
}
