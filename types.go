package gocda

import (
	"encoding/json"
)

// Resource type discriminators as they appear in sys.type / sys.linkType.
const (
	TypeArray        = "Array"
	TypeEntry        = "Entry"
	TypeAsset        = "Asset"
	TypeContentType  = "ContentType"
	TypeSpace        = "Space"
	TypeLink         = "Link"
	TypeDeletedEntry = "DeletedEntry"
	TypeDeletedAsset = "DeletedAsset"
)

// Field types as declared on content type schemas.
const (
	FieldTypeSymbol   = "Symbol"
	FieldTypeText     = "Text"
	FieldTypeInteger  = "Integer"
	FieldTypeNumber   = "Number"
	FieldTypeBoolean  = "Boolean"
	FieldTypeDate     = "Date"
	FieldTypeLocation = "Location"
	FieldTypeArray    = "Array"
	FieldTypeLink     = "Link"
	FieldTypeObject   = "Object"
)

type Sys struct {
	ID          string          `json:"id,omitempty"`
	Type        string          `json:"type,omitempty"`
	LinkType    string          `json:"linkType,omitempty"`
	CreatedAt   string          `json:"createdAt,omitempty"`
	UpdatedAt   string          `json:"updatedAt,omitempty"`
	DeletedAt   string          `json:"deletedAt,omitempty"`
	Revision    int             `json:"revision,omitempty"`
	Version     int             `json:"version,omitempty"`
	ContentType *ContentTypeRef `json:"contentType,omitempty"`
}

type ContentTypeRef struct {
	Sys *Sys `json:"sys"`
}

// Collection is the raw envelope of a multi-resource response. Items and
// includes stay unparsed here, the builder dispatches each one on sys.type.
type Collection struct {
	Sys      *Sys              `json:"sys"`
	Total    int               `json:"total"`
	Skip     int               `json:"skip"`
	Limit    int               `json:"limit"`
	Items    []json.RawMessage `json:"items"`
	Includes *Include          `json:"includes,omitempty"`
}

type Include struct {
	Entry []json.RawMessage `json:"Entry,omitempty"`
	Asset []json.RawMessage `json:"Asset,omitempty"`
}

// rawItem is the wire shape shared by entries and assets.
type rawItem struct {
	Sys    *Sys                   `json:"sys"`
	Locale string                 `json:"locale,omitempty"`
	Fields map[string]interface{} `json:"fields"`
}

type ContentType struct {
	Sys          *Sys     `json:"sys"`
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	DisplayField string   `json:"displayField,omitempty"`
	Fields       []*Field `json:"fields,omitempty"`
}

func (t *ContentType) ResourceSys() *Sys { return t.Sys }

// Field lookup by id, nil when the schema has no such field.
func (t *ContentType) Field(id string) *Field {
	for _, f := range t.Fields {
		if f.ID == id {
			return f
		}
	}
	return nil
}

type Field struct {
	ID          string              `json:"id,omitempty"`
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	LinkType    string              `json:"linkType,omitempty"`
	Items       *FieldTypeArrayItem `json:"items,omitempty"`
	Required    bool                `json:"required,omitempty"`
	Localized   bool                `json:"localized,omitempty"`
	Disabled    bool                `json:"disabled,omitempty"`
	Omitted     bool                `json:"omitted,omitempty"`
	Validations []FieldValidation   `json:"validations,omitempty"`
}

type FieldTypeArrayItem struct {
	Type        string            `json:"type,omitempty"`
	LinkType    string            `json:"linkType,omitempty"`
	Validations []FieldValidation `json:"validations,omitempty"`
}

type FieldValidation struct {
	LinkContentType   []string `json:"linkContentType,omitempty"`
	LinkMimetypeGroup []string `json:"linkMimetypeGroup,omitempty"`
}

type ContentTypes struct {
	Total int            `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
	Items []*ContentType `json:"items"`
}

// ContentTypeLookup maps content type ids to their fetched schemas.
type ContentTypeLookup map[string]*ContentType

func NewContentTypeLookup(types []*ContentType) ContentTypeLookup {
	lookup := make(ContentTypeLookup)
	for _, t := range types {
		if t.Sys != nil {
			lookup[t.Sys.ID] = t
		}
	}
	return lookup
}

type Space struct {
	Sys     *Sys     `json:"sys"`
	Name    string   `json:"name"`
	Locales []Locale `json:"locales"`
}

func (s *Space) ResourceSys() *Sys { return s.Sys }

type Locale struct {
	Code         string `json:"code"`
	Default      bool   `json:"default"`
	Name         string `json:"name"`
	FallbackCode string `json:"fallbackCode"`
}

type AssetFile struct {
	URL         string       `json:"url" mapstructure:"url"`
	FileName    string       `json:"fileName" mapstructure:"fileName"`
	ContentType string       `json:"contentType" mapstructure:"contentType"`
	Details     *FileDetails `json:"details,omitempty" mapstructure:"details"`
}

type FileDetails struct {
	Size  int64         `json:"size,omitempty" mapstructure:"size"`
	Image *ImageDetails `json:"image,omitempty" mapstructure:"image"`
}

type ImageDetails struct {
	Width  int `json:"width,omitempty" mapstructure:"width"`
	Height int `json:"height,omitempty" mapstructure:"height"`
}

// Location is the coerced value of a Location typed field.
type Location struct {
	Lat float64 `json:"lat" mapstructure:"lat"`
	Lon float64 `json:"lon" mapstructure:"lon"`
}

type errorResponse struct {
	Message string `json:"message,omitempty"`
}
